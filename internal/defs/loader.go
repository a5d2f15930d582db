// internal/defs/loader.go
package defs

import (
	"fmt"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LoadDifficultyTable reads a YAML file with per-difficulty overrides and
// merges it into DifficultyTable. Keys that are missing keep built-in values.
func LoadDifficultyTable(path string) error {
	file, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read difficulty file: %w", err)
	}
	table, err := ParseDifficultyTable(file)
	if err != nil {
		return err
	}
	for d, p := range table {
		DifficultyTable[d] = p
	}
	log.Printf("Loaded %d difficulty profiles from %s", len(table), path)
	return nil
}

// ParseDifficultyTable decodes YAML on top of the built-in profiles.
func ParseDifficultyTable(data []byte) (map[Difficulty]DifficultyProfile, error) {
	var raw map[string]yaml.Node
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("failed to unmarshal difficulty table: %w", err)
	}

	out := make(map[Difficulty]DifficultyProfile, len(raw))
	for name, node := range raw {
		d, err := ParseDifficulty(name)
		if err != nil {
			return nil, err
		}
		profile := Profile(d)
		// yaml.v3 не обнуляет поля, которых нет в документе
		profile.WeaponRotation = append([]WeaponType(nil), profile.WeaponRotation...)
		if err := node.Decode(&profile); err != nil {
			return nil, fmt.Errorf("failed to decode %s profile: %w", name, err)
		}
		if err := validateProfile(profile); err != nil {
			return nil, fmt.Errorf("invalid %s profile: %w", name, err)
		}
		out[d] = profile
	}
	return out, nil
}

func validateProfile(p DifficultyProfile) error {
	if p.SpeedMultiplier <= 0 || p.HealthMultiplier <= 0 || p.ShootDelayMultiplier <= 0 {
		return fmt.Errorf("multipliers must be positive")
	}
	if p.DropRate < 0 || p.DropRate > 1 || p.ReflectChance < 0 || p.ReflectChance > 1 {
		return fmt.Errorf("probabilities must be within [0, 1]")
	}
	if len(p.WeaponRotation) == 0 {
		return fmt.Errorf("weapon rotation is empty")
	}
	for _, w := range p.WeaponRotation {
		switch w {
		case WeaponNormal, WeaponSpread, WeaponBouncing, WeaponHoming:
		default:
			return fmt.Errorf("unknown weapon %q", w)
		}
	}
	return nil
}
