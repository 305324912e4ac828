package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParsePreset converts a CLI value into a preset. Empty means normal.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch DifficultyPreset(s) {
	case "", DifficultyNormal:
		return DifficultyNormal, nil
	case DifficultyEasy:
		return DifficultyEasy, nil
	case DifficultyHard:
		return DifficultyHard, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyHunterPreset modifies the config based on a difficulty preset.
// Normal leaves the config untouched.
func ApplyHunterPreset(cfg *HunterConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Player.MaxHealth += 2
		cfg.Player.MaxLives++
		cfg.Collectible.Cadence = max(60, cfg.Collectible.Cadence-60)
		scaleCadence(cfg, 10)
	case DifficultyHard:
		cfg.Player.MaxHealth = max(1, cfg.Player.MaxHealth-2)
		cfg.Player.MaxLives = max(1, cfg.Player.MaxLives-1)
		cfg.Collectible.Cadence += 120
		scaleCadence(cfg, -10)
	}
}

// scaleCadence shifts every level's spawn cadence, keeping it above a playable floor.
func scaleCadence(cfg *HunterConfig, delta int) {
	for i := range cfg.Levels {
		cfg.Levels[i].Cadence = max(10, cfg.Levels[i].Cadence+delta)
	}
}
