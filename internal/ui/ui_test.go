package ui

import (
	"testing"

	"go-space-fighter/internal/component"
	"go-space-fighter/internal/defs"
	"go-space-fighter/pkg/render"
)

func TestToRoman(t *testing.T) {
	tests := map[int]string{0: "", 1: "I", 4: "IV", 6: "VI", 9: "IX", 14: "XIV", 40: "XL"}
	for n, want := range tests {
		if got := toRoman(n); got != want {
			t.Errorf("toRoman(%d) = %q, want %q", n, got, want)
		}
	}
}

func TestWaveLabel(t *testing.T) {
	if got := WaveLabel(3, 5, false); got != "Wave 3/5" {
		t.Errorf("Expected 'Wave 3/5', got %q", got)
	}
	if got := WaveLabel(6, 5, true); got != "BOSS" {
		t.Errorf("Expected 'BOSS', got %q", got)
	}
}

func TestMenuMoveWraps(t *testing.T) {
	m := NewMenu(100, 200, 40, 10, "a", "b", "c")
	m.Move(-1)
	if m.Selected != 2 {
		t.Errorf("Expected wrap to last item, got %d", m.Selected)
	}
	m.Move(1)
	if m.Selected != 0 {
		t.Errorf("Expected wrap to first item, got %d", m.Selected)
	}
}

func TestComboIndicatorPulsesOnIncrease(t *testing.T) {
	c := NewComboIndicator(0, 0, 20)
	var r render.Recorder
	c.Draw(&r, 1, 0)
	if len(r.Ops) != 0 {
		t.Error("combo x1 must not be drawn")
	}
	c.Draw(&r, 3, 5000)
	if !r.HasText("x3") {
		t.Error("Expected combo text x3")
	}
	if s := c.Scale(5000); s < 1.29 {
		t.Errorf("Expected pulse right after increase, scale %v", s)
	}
	if s := c.Scale(7000); s > 1.01 {
		t.Errorf("Expected pulse to decay, scale %v", s)
	}
}

func TestHUDDrawsBossBar(t *testing.T) {
	gs := component.NewGameState(defs.DifficultyNormal)
	p := component.NewPlayer(1, 0)
	boss := &component.Boss{Name: "Sector Guardian", Health: 50, MaxHealth: 200}
	var r render.Recorder
	NewHUD().Draw(&r, gs, p, boss, 0)

	if !r.HasText("Sector Guardian") {
		t.Error("Expected boss name in HUD")
	}
	var found bool
	for _, op := range r.Ops {
		if op.Method == "bar" && op.Fraction == 0.25 {
			found = true
		}
	}
	if !found {
		t.Error("Expected boss bar at 25%")
	}
	if !r.HasText("Sector I") {
		t.Error("Expected sector in roman numerals")
	}
}
