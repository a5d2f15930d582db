package assets

import (
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"
)

// FontManager разбирает TTF один раз и кэширует начертания по размеру.
type FontManager struct {
	font  *opentype.Font
	faces map[float64]font.Face
}

// NewFontManager загружает встроенный Go Regular.
func NewFontManager() (*FontManager, error) {
	return newFontManager(goregular.TTF, "goregular")
}

// LoadFontManager загружает TTF с диска. Пустой путь - встроенный шрифт.
func LoadFontManager(path string) (*FontManager, error) {
	if path == "" {
		return NewFontManager()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read font %s: %w", path, err)
	}
	return newFontManager(data, path)
}

func newFontManager(data []byte, name string) (*FontManager, error) {
	tt, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font %s: %w", name, err)
	}
	log.Printf("Successfully loaded font %s", name)
	return &FontManager{font: tt, faces: make(map[float64]font.Face)}, nil
}

// Face возвращает начертание нужного кегля, создавая его при первом запросе.
// При ошибке возвращает nil, вызывающий должен пропустить текст.
func (m *FontManager) Face(size float64) font.Face {
	if face, ok := m.faces[size]; ok {
		return face
	}
	face, err := opentype.NewFace(m.font, &opentype.FaceOptions{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		log.Printf("WARNING: Failed to create font face of size %.0f: %v", size, err)
		return nil
	}
	m.faces[size] = face
	return face
}

// Cleanup закрывает все созданные начертания.
func (m *FontManager) Cleanup() {
	for size, face := range m.faces {
		face.Close()
		delete(m.faces, size)
	}
}
