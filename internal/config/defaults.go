package config

import (
	_ "embed"
)

//go:embed defaults/evolution.yaml
var defaultEvolutionYAML []byte

// DefaultEvolutionConfig returns the built-in configuration.
// It mirrors defaults/evolution.yaml and is used if the embedded file cannot be parsed.
func DefaultEvolutionConfig() EvolutionConfig {
	return EvolutionConfig{
		Physics: Physics{
			BaseSpeed:      3.0,
			SpeedIncrement: 0.5,
		},
		Catch: Catch{
			Window:            150,
			VerticalTolerance: 100,
			LowerBound:        50,
			ImpactMargin:      20,
		},
		Timing: Timing{
			SuccessDisplayMs:   500,
			MissDurationMs:     500,
			ExplosionDisplayMs: 1000,
			EvolutionPauseMs:   2500,
			EvolutionBannerMs:  2000,
			ResultTextLeadMs:   200,
		},
		Evolution: Evolution{
			LevelInterval: 5,
			MaxStage:      5,
		},
		Layout: Layout{
			AlienX:        0.5,
			AlienY:        0.75,
			AlienSize:     120,
			MeteoriteSize: 80,
			CellWidthPx:   8,
			CellHeightPx:  16,
		},
	}
}

// DefaultYAML returns the embedded default configuration document.
func DefaultYAML() []byte {
	return defaultEvolutionYAML
}
