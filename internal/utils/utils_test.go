package utils

import (
	"go-space-fighter/internal/defs"
	"math"
	"testing"
)

func TestChooseWeightedIsDeterministicPerSeed(t *testing.T) {
	entries := defs.SpawnTableFor(5)
	a, b := NewPRNGService(42), NewPRNGService(42)
	for i := 0; i < 100; i++ {
		if x, y := a.ChooseWeighted(entries), b.ChooseWeighted(entries); x != y {
			t.Fatalf("draw %d differs: %s vs %s", i, x, y)
		}
	}
}

func TestChooseWeightedSkipsZeroWeights(t *testing.T) {
	s := NewPRNGService(7)
	entries := []defs.SpawnEntry{{Type: defs.EnemyElite, Weight: 0}, {Type: defs.EnemyBasic, Weight: 3}}
	for i := 0; i < 50; i++ {
		if got := s.ChooseWeighted(entries); got != defs.EnemyBasic {
			t.Fatalf("zero-weight entry chosen: %s", got)
		}
	}
	if got := s.ChooseWeighted(nil); got != defs.EnemyBasic {
		t.Errorf("empty table must fall back to basic, got %s", got)
	}
}

func TestRanges(t *testing.T) {
	s := NewPRNGService(1)
	for i := 0; i < 200; i++ {
		if v := s.IntRange(2, 4); v < 2 || v > 4 {
			t.Fatalf("IntRange out of bounds: %d", v)
		}
		if v := s.Range(-1, 1); v < -1 || v >= 1 {
			t.Fatalf("Range out of bounds: %f", v)
		}
	}
	if s.Chance(0) {
		t.Error("Chance(0) must be false")
	}
	if !s.Chance(1) {
		t.Error("Chance(1) must be true")
	}
}

func TestVectorHelpers(t *testing.T) {
	x, y := Normalize(3, 4, 10)
	if math.Abs(x-6) > 1e-9 || math.Abs(y-8) > 1e-9 {
		t.Errorf("Normalize(3,4,10) = (%f, %f)", x, y)
	}
	if x, y := Normalize(0, 0, 5); x != 0 || y != 0 {
		t.Errorf("zero vector must stay zero, got (%f, %f)", x, y)
	}
	rx, ry := Rotate(1, 0, math.Pi/2)
	if math.Abs(rx) > 1e-9 || math.Abs(ry-1) > 1e-9 {
		t.Errorf("Rotate by 90° = (%f, %f)", rx, ry)
	}
	vx, vy := AngleVelocity(0, 6, 1)
	if math.Abs(vx) > 1e-9 || math.Abs(vy-6) > 1e-9 {
		t.Errorf("AngleVelocity straight down = (%f, %f)", vx, vy)
	}
	if a := NormalizeAngle(2.5 * math.Pi); math.Abs(a-math.Pi/2) > 1e-9 {
		t.Errorf("NormalizeAngle(2.5π) = %f", a)
	}
}
