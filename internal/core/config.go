package core

import "time"

// RuntimeConfig contains settings the platform passes to a game session.
type RuntimeConfig struct {
	ScreenW  int   // Terminal width in characters
	ScreenH  int   // Terminal height in characters
	TickRate int   // Frames drawn per second (default 60)
	Seed     int64 // RNG seed for deterministic obstacle placement; any value is valid
}

// DefaultConfig returns an 80x24, 60 fps config seeded from the clock.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 60,
		Seed:     time.Now().UnixNano(),
	}
}
