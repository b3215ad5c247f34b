// Package config provides YAML-based game configuration loading,
// validation and the difficulty ramp.
package config

import (
	"errors"
	"fmt"
	"time"
)

// FlappyConfig contains all tunable parameters of a game session.
type FlappyConfig struct {
	Board      BoardConfig      `yaml:"board"`
	Actor      ActorConfig      `yaml:"actor"`
	Physics    PhysicsConfig    `yaml:"physics"`
	Obstacles  ObstacleConfig   `yaml:"obstacles"`
	Timing     TimingConfig     `yaml:"timing"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// BoardConfig is the logical play field in board units.
type BoardConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// ActorConfig defines the bird's initial pose and hitbox.
type ActorConfig struct {
	X      int `yaml:"x"`
	Y      int `yaml:"y"`
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// PhysicsConfig defines integer per-tick physics.
type PhysicsConfig struct {
	Gravity      int     `yaml:"gravity"`
	FlapStrength int     `yaml:"flap_strength"` // Negative = up
	MaxVelocity  int     `yaml:"max_velocity"`  // Downward cap
	TiltFactor   float64 `yaml:"tilt_factor"`   // Degrees per unit of velocity
	MaxTilt      float64 `yaml:"max_tilt"`
}

// ObstacleConfig defines obstacle geometry and the starting scroll state.
type ObstacleConfig struct {
	Width        int `yaml:"width"`
	Height       int `yaml:"height"`
	InitialSpeed int `yaml:"initial_speed"` // Units moved left per tick
	InitialGap   int `yaml:"initial_gap"`   // 0 = board height / 4
	MinGap       int `yaml:"min_gap"`       // 0 = board height / 6
}

// TimingConfig defines the clock cadences.
type TimingConfig struct {
	TickRate      int           `yaml:"tick_rate"`
	SpawnInterval time.Duration `yaml:"spawn_interval"`
}

// DifficultyConfig defines the stepwise difficulty ramp.
type DifficultyConfig struct {
	Enabled       bool    `yaml:"enabled"`
	Trigger       Trigger `yaml:"trigger"`
	ScoreStep     int     `yaml:"score_step"`     // Ramp fires on multiples of this
	SpeedIncrease int     `yaml:"speed_increase"` // Added to horizontal speed
	GapDecrease   int     `yaml:"gap_decrease"`   // Removed from gap height
}

// Trigger selects how the ramp condition is evaluated.
type Trigger string

const (
	// TriggerEveryTick fires on every tick while the score sits on a
	// multiple of ScoreStep.
	TriggerEveryTick Trigger = "every_tick"
	// TriggerOnCross fires once per multiple of ScoreStep.
	TriggerOnCross Trigger = "on_cross"
)

// StartGap returns the gap height a fresh game starts with.
func (c FlappyConfig) StartGap() int {
	if c.Obstacles.InitialGap > 0 {
		return c.Obstacles.InitialGap
	}
	return c.Board.Height / 4
}

// FloorGap returns the smallest gap height the ramp may produce.
func (c FlappyConfig) FloorGap() int {
	if c.Obstacles.MinGap > 0 {
		return c.Obstacles.MinGap
	}
	return c.Board.Height / 6
}

// TickInterval returns the duration of one simulation tick.
func (c FlappyConfig) TickInterval() time.Duration {
	return time.Second / time.Duration(c.Timing.TickRate)
}

// Validate checks the config for values the simulation cannot run with.
// All problems are reported together.
func (c FlappyConfig) Validate() error {
	var errs []error
	positive := func(name string, v int) {
		if v <= 0 {
			errs = append(errs, fmt.Errorf("%s must be positive, got %d", name, v))
		}
	}
	nonNegative := func(name string, v int) {
		if v < 0 {
			errs = append(errs, fmt.Errorf("%s must not be negative, got %d", name, v))
		}
	}

	positive("board.width", c.Board.Width)
	positive("board.height", c.Board.Height)
	positive("actor.width", c.Actor.Width)
	positive("actor.height", c.Actor.Height)
	positive("physics.max_velocity", c.Physics.MaxVelocity)
	positive("obstacles.width", c.Obstacles.Width)
	positive("obstacles.height", c.Obstacles.Height)
	positive("obstacles.initial_speed", c.Obstacles.InitialSpeed)
	positive("timing.tick_rate", c.Timing.TickRate)
	nonNegative("obstacles.initial_gap", c.Obstacles.InitialGap)
	nonNegative("obstacles.min_gap", c.Obstacles.MinGap)

	if c.Obstacles.Height > 0 && c.Obstacles.Height/2 <= 0 {
		errs = append(errs, fmt.Errorf("obstacles.height must be at least 2, got %d", c.Obstacles.Height))
	}
	if c.Physics.FlapStrength >= 0 {
		errs = append(errs, fmt.Errorf("physics.flap_strength must be negative, got %d", c.Physics.FlapStrength))
	}
	if c.Physics.MaxTilt < 0 {
		errs = append(errs, fmt.Errorf("physics.max_tilt must not be negative, got %g", c.Physics.MaxTilt))
	}
	if c.Timing.SpawnInterval <= 0 {
		errs = append(errs, fmt.Errorf("timing.spawn_interval must be positive, got %s", c.Timing.SpawnInterval))
	}
	if c.Board.Height > 0 && c.FloorGap() > c.StartGap() {
		errs = append(errs, fmt.Errorf("obstacles.min_gap (%d) exceeds initial gap (%d)", c.FloorGap(), c.StartGap()))
	}

	if c.Difficulty.Enabled {
		positive("difficulty.score_step", c.Difficulty.ScoreStep)
		nonNegative("difficulty.speed_increase", c.Difficulty.SpeedIncrease)
		nonNegative("difficulty.gap_decrease", c.Difficulty.GapDecrease)
		switch c.Difficulty.Trigger {
		case TriggerEveryTick, TriggerOnCross:
		default:
			errs = append(errs, fmt.Errorf("difficulty.trigger must be %q or %q, got %q",
				TriggerEveryTick, TriggerOnCross, c.Difficulty.Trigger))
		}
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid: %w", errors.Join(errs...))
	}
	return nil
}
