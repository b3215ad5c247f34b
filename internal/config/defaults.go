package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

// DefaultFlappyConfig returns the built-in configuration. It matches the
// embedded defaults/flappy.yaml and is used when that cannot be parsed.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Board: BoardConfig{
			Width:  360,
			Height: 640,
		},
		Actor: ActorConfig{
			X:      360 / 8,
			Y:      360 / 2,
			Width:  34,
			Height: 24,
		},
		Physics: PhysicsConfig{
			Gravity:      1,
			FlapStrength: -9,
			MaxVelocity:  10,
			TiltFactor:   5,
			MaxTilt:      45,
		},
		Obstacles: ObstacleConfig{
			Width:        64,
			Height:       512,
			InitialSpeed: 4,
		},
		Timing: TimingConfig{
			TickRate:      60,
			SpawnInterval: 1500 * time.Millisecond,
		},
		Difficulty: DifficultyConfig{
			Enabled:       true,
			Trigger:       TriggerEveryTick,
			ScoreStep:     10,
			SpeedIncrease: 1,
			GapDecrease:   5,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultFlappyYAML
}
