// Package config provides YAML-based game configuration loading and
// difficulty presets.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/alien-evolution/internal/evolution"
)

// EvolutionConfig contains all tuning for the meteorite-catching game.
// Distances are in canvas pixels, durations in milliseconds.
type EvolutionConfig struct {
	Physics   Physics   `yaml:"physics"`
	Catch     Catch     `yaml:"catch"`
	Timing    Timing    `yaml:"timing"`
	Evolution Evolution `yaml:"evolution"`
	Layout    Layout    `yaml:"layout"`
}

// Physics defines how fast meteorites fall.
type Physics struct {
	BaseSpeed      float64 `yaml:"base_speed"`      // Pixels per tick at level 0
	SpeedIncrement float64 `yaml:"speed_increment"` // Added to the multiplier per level
}

// Catch defines the catch window around the alien.
type Catch struct {
	Window            float64 `yaml:"window"`             // Full horizontal width
	VerticalTolerance float64 `yaml:"vertical_tolerance"` // How far above the alien a catch counts
	LowerBound        float64 `yaml:"lower_bound"`        // How far below the alien a catch counts (exclusive)
	ImpactMargin      float64 `yaml:"impact_margin"`      // Auto-impact triggers this far above the alien's bottom edge
}

// Timing defines state display durations in milliseconds.
type Timing struct {
	SuccessDisplayMs   int `yaml:"success_display"`
	MissDurationMs     int `yaml:"miss_duration"`
	ExplosionDisplayMs int `yaml:"explosion_display"`
	EvolutionPauseMs   int `yaml:"evolution_pause"`  // Result duration right after an evolution
	EvolutionBannerMs  int `yaml:"evolution_banner"` // How long the "EVOLVED!" banner stays up
	ResultTextLeadMs   int `yaml:"result_text_lead"` // Result text hides this long before its state ends
}

// Evolution defines stage progression.
type Evolution struct {
	LevelInterval int `yaml:"level_interval"`
	MaxStage      int `yaml:"max_stage"`
}

// Layout defines sizes and the alien anchor.
type Layout struct {
	AlienX        float64 `yaml:"alien_x"` // Anchor as a fraction of canvas width
	AlienY        float64 `yaml:"alien_y"` // Anchor as a fraction of canvas height
	AlienSize     float64 `yaml:"alien_size"`
	MeteoriteSize float64 `yaml:"meteorite_size"`
	CellWidthPx   int     `yaml:"cell_width_px"`  // Canvas pixels per terminal column
	CellHeightPx  int     `yaml:"cell_height_px"` // Canvas pixels per terminal row
}

func ms(v int) time.Duration {
	return time.Duration(v) * time.Millisecond
}

// SuccessDisplay is how long Success lasts, and Result after a plain catch.
func (t Timing) SuccessDisplay() time.Duration { return ms(t.SuccessDisplayMs) }

// MissDuration is how long a Miss lasts before the meteorite respawns.
func (t Timing) MissDuration() time.Duration { return ms(t.MissDurationMs) }

// ExplosionDisplay is how long Explosion lasts.
func (t Timing) ExplosionDisplay() time.Duration { return ms(t.ExplosionDisplayMs) }

// EvolutionPause is how long Result lasts right after an evolution.
func (t Timing) EvolutionPause() time.Duration { return ms(t.EvolutionPauseMs) }

// EvolutionBanner is how long the evolution banner is shown.
func (t Timing) EvolutionBanner() time.Duration { return ms(t.EvolutionBannerMs) }

// ResultTextLead is how early result text hides before its state ends.
func (t Timing) ResultTextLead() time.Duration { return ms(t.ResultTextLeadMs) }

// Validate reports every invalid field at once.
func (c EvolutionConfig) Validate() error {
	var errs []error
	positive := func(name string, v float64) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %v", name, v))
		}
	}
	fraction := func(name string, v float64) {
		if v < 0 || v > 1 {
			errs = append(errs, fmt.Errorf("%s must be within [0, 1], got %v", name, v))
		}
	}

	positive("physics.base_speed", c.Physics.BaseSpeed)
	if c.Physics.SpeedIncrement < 0 {
		errs = append(errs, fmt.Errorf("physics.speed_increment must not be negative, got %v", c.Physics.SpeedIncrement))
	}

	positive("catch.window", c.Catch.Window)
	positive("catch.vertical_tolerance", c.Catch.VerticalTolerance)
	positive("catch.lower_bound", c.Catch.LowerBound)
	if c.Catch.ImpactMargin < 0 {
		errs = append(errs, fmt.Errorf("catch.impact_margin must not be negative, got %v", c.Catch.ImpactMargin))
	}

	positive("timing.success_display", float64(c.Timing.SuccessDisplayMs))
	positive("timing.miss_duration", float64(c.Timing.MissDurationMs))
	positive("timing.explosion_display", float64(c.Timing.ExplosionDisplayMs))
	positive("timing.evolution_pause", float64(c.Timing.EvolutionPauseMs))
	if c.Timing.EvolutionBannerMs < 0 || c.Timing.ResultTextLeadMs < 0 {
		errs = append(errs, errors.New("timing.evolution_banner and timing.result_text_lead must not be negative"))
	}

	positive("evolution.level_interval", float64(c.Evolution.LevelInterval))
	if c.Evolution.MaxStage < evolution.MinStage || c.Evolution.MaxStage > evolution.MaxStage {
		errs = append(errs, fmt.Errorf("evolution.max_stage must be within [%d, %d], got %d",
			evolution.MinStage, evolution.MaxStage, c.Evolution.MaxStage))
	}

	fraction("layout.alien_x", c.Layout.AlienX)
	fraction("layout.alien_y", c.Layout.AlienY)
	positive("layout.alien_size", c.Layout.AlienSize)
	positive("layout.meteorite_size", c.Layout.MeteoriteSize)
	positive("layout.cell_width_px", float64(c.Layout.CellWidthPx))
	positive("layout.cell_height_px", float64(c.Layout.CellHeightPx))

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid evolution config: %w", errors.Join(errs...))
	}
	return nil
}
