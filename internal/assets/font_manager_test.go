package assets

import (
	"os"
	"path/filepath"
	"testing"
)

func TestFaceIsCachedPerSize(t *testing.T) {
	m, err := NewFontManager()
	if err != nil {
		t.Fatalf("NewFontManager failed: %v", err)
	}
	defer m.Cleanup()

	a := m.Face(18)
	if a == nil {
		t.Fatal("Expected a face for size 18")
	}
	if b := m.Face(18); b != a {
		t.Error("same size must return the cached face")
	}
	if c := m.Face(24); c == a {
		t.Error("different sizes must not share a face")
	}
}

func TestLoadFontManagerErrors(t *testing.T) {
	if _, err := LoadFontManager(filepath.Join(t.TempDir(), "missing.ttf")); err == nil {
		t.Error("Expected error for missing font file")
	}

	bad := filepath.Join(t.TempDir(), "bad.ttf")
	if err := os.WriteFile(bad, []byte("not a font"), 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := LoadFontManager(bad); err == nil {
		t.Error("Expected error for garbage font data")
	}

	m, err := LoadFontManager("")
	if err != nil || m == nil {
		t.Errorf("empty path must fall back to the built-in font, got %v", err)
	}
}
