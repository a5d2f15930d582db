package defs

import (
	"os"
	"path/filepath"
	"testing"
)

func TestParseDifficulty(t *testing.T) {
	for _, s := range []string{"easy", "Normal", " HARD "} {
		if _, err := ParseDifficulty(s); err != nil {
			t.Errorf("ParseDifficulty(%q) returned error: %v", s, err)
		}
	}
	if _, err := ParseDifficulty("nightmare"); err == nil {
		t.Error("Expected error for unknown difficulty")
	}
}

func TestNextWeaponWraps(t *testing.T) {
	p := Profile(DifficultyNormal)
	if got := p.NextWeapon(WeaponHoming); got != WeaponNormal {
		t.Errorf("Expected wrap to normal, got %s", got)
	}
	hard := Profile(DifficultyHard)
	if got := hard.NextWeapon(WeaponSpread); got != WeaponNormal {
		t.Errorf("Expected hard rotation to wrap to normal, got %s", got)
	}
	for _, w := range hard.WeaponRotation {
		if w == WeaponBouncing || w == WeaponHoming {
			t.Errorf("hard rotation must not contain %s", w)
		}
	}
}

func TestResourcesPerKillFavoursEasy(t *testing.T) {
	easy, normal, hard := Profile(DifficultyEasy), Profile(DifficultyNormal), Profile(DifficultyHard)
	if !(easy.ResourcesPerKill > normal.ResourcesPerKill && normal.ResourcesPerKill > hard.ResourcesPerKill) {
		t.Errorf("resources per kill must decrease with difficulty: %d %d %d",
			easy.ResourcesPerKill, normal.ResourcesPerKill, hard.ResourcesPerKill)
	}
	if !(hard.ShootDelayMultiplier < normal.ShootDelayMultiplier) {
		t.Error("hard enemies must shoot more often")
	}
}

func TestBossForSector(t *testing.T) {
	b := BossForSector(3, 0)
	if b.Health != 1200 || b.ShootDelay != 600 {
		t.Errorf("Unexpected sector 3 boss: %+v", b)
	}
	endless := BossForSector(8, 1)
	if endless.Health != 1600 { // 800 * (1 + 0.5*2)
		t.Errorf("Expected endless health 1600, got %d", endless.Health)
	}
	if endless.ShootDelay != 567 { // 700 * 0.81
		t.Errorf("Expected endless delay 567, got %d", endless.ShootDelay)
	}
	far := BossForSector(40, 5)
	if far.ShootDelay != EndlessMinDelay {
		t.Errorf("Expected delay floor %d, got %d", EndlessMinDelay, far.ShootDelay)
	}
}

func TestSpawnTableUnlocks(t *testing.T) {
	has := func(entries []SpawnEntry, typ EnemyType) bool {
		for _, e := range entries {
			if e.Type == typ {
				return true
			}
		}
		return false
	}
	if has(SpawnTableFor(1), EnemyBladeSpinner) {
		t.Error("blade spinner must not appear in sector 1")
	}
	if !has(SpawnTableFor(9), EnemyBladeSpinner) {
		t.Error("endless sectors must use the full table")
	}
	for typ := range EnemyLibrary {
		if !has(SpawnTableFor(5), typ) {
			t.Errorf("sector 5 table is missing %s", typ)
		}
	}
}

func TestParseDifficultyTableOverrides(t *testing.T) {
	data := []byte("hard:\n  drop_rate: 0.5\n  weapon_rotation: [normal, homing]\n")
	table, err := ParseDifficultyTable(data)
	if err != nil {
		t.Fatalf("ParseDifficultyTable: %v", err)
	}
	hard := table[DifficultyHard]
	if hard.DropRate != 0.5 {
		t.Errorf("Expected drop rate 0.5, got %f", hard.DropRate)
	}
	if hard.SplitCount != 3 {
		t.Errorf("Missing keys must keep built-in values, got split %d", hard.SplitCount)
	}
	if len(hard.WeaponRotation) != 2 || hard.WeaponRotation[1] != WeaponHoming {
		t.Errorf("Unexpected rotation %v", hard.WeaponRotation)
	}
	if len(DifficultyTable[DifficultyHard].WeaponRotation) != 2 ||
		DifficultyTable[DifficultyHard].WeaponRotation[1] != WeaponSpread {
		t.Error("parsing must not mutate the built-in table")
	}
}

func TestParseDifficultyTableRejectsBadValues(t *testing.T) {
	cases := []string{
		"nightmare:\n  drop_rate: 0.1\n",
		"easy:\n  drop_rate: 2\n",
		"easy:\n  weapon_rotation: [laser]\n",
		"easy: [1, 2\n",
	}
	for _, c := range cases {
		if _, err := ParseDifficultyTable([]byte(c)); err == nil {
			t.Errorf("Expected error for %q", c)
		}
	}
}

func TestLoadDifficultyTable(t *testing.T) {
	saved := DifficultyTable[DifficultyEasy]
	defer func() { DifficultyTable[DifficultyEasy] = saved }()

	path := filepath.Join(t.TempDir(), "difficulty.yaml")
	if err := os.WriteFile(path, []byte("easy:\n  resources_per_kill: 12\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := LoadDifficultyTable(path); err != nil {
		t.Fatalf("LoadDifficultyTable: %v", err)
	}
	if got := Profile(DifficultyEasy).ResourcesPerKill; got != 12 {
		t.Errorf("Expected 12 resources per kill, got %d", got)
	}
	if err := LoadDifficultyTable(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("Expected error for missing file")
	}
}
