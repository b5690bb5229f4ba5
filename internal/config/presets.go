package config

import "fmt"

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
)

// ParseDifficultyPreset validates a --difficulty flag value.
// The empty string means "no preset" and is accepted.
func ParseDifficultyPreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case "", DifficultyEasy, DifficultyNormal, DifficultyHard:
		return p, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q (want easy, normal or hard)", s)
	}
}

// ApplyPreset scales the starting speed and catch window.
// The per-level speed increment is left alone: speed always grows linearly with level.
func ApplyPreset(cfg *EvolutionConfig, preset DifficultyPreset) {
	switch preset {
	case DifficultyEasy:
		cfg.Physics.BaseSpeed *= 0.75
		cfg.Catch.Window *= 1.3
	case DifficultyHard:
		cfg.Physics.BaseSpeed *= 1.5
		cfg.Catch.Window *= 0.7
	}
}
