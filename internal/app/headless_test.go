package app

import (
	"bytes"
	"strings"
	"testing"

	"go-space-fighter/internal/defs"
)

func TestSimulateIsDeterministic(t *testing.T) {
	opts := Options{Seed: 42, Difficulty: defs.DifficultyNormal}
	g1, s1 := Simulate(opts, 900)
	g2, s2 := Simulate(opts, 900)

	if g1.State().Score != g2.State().Score {
		t.Errorf("same seed, different score: %d vs %d", g1.State().Score, g2.State().Score)
	}
	if s1.Ticks != s2.Ticks || s1.TotalKills() != s2.TotalKills() || s1.WavesCleared != s2.WavesCleared {
		t.Errorf("same seed, different runs: %+v vs %+v", s1, s2)
	}
}

func TestSimulateStopsAtTickLimit(t *testing.T) {
	_, s := Simulate(Options{Seed: 3}, 120)
	if s.Ticks > 120 {
		t.Errorf("Expected at most 120 ticks, got %d", s.Ticks)
	}
	if s.Ticks == 0 {
		t.Error("Expected the simulation to run")
	}
}

func TestStatsReport(t *testing.T) {
	s := newStats()
	s.Kills[defs.EnemyBasic] = 3
	s.Kills[defs.EnemyElite] = 1
	var buf bytes.Buffer
	if _, err := s.WriteTo(&buf); err != nil {
		t.Fatal(err)
	}
	out := buf.String()
	if !strings.Contains(out, "basic") || !strings.Contains(out, "elite") {
		t.Errorf("Expected per-type kills in report, got:\n%s", out)
	}
	if s.TotalKills() != 4 {
		t.Errorf("Expected 4 kills, got %d", s.TotalKills())
	}
}
