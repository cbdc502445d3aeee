package core

import "time"

// RuntimeConfig contains configuration passed to a play session at startup.
// Games use this to adapt to screen size and for deterministic simulation.
type RuntimeConfig struct {
	ScreenW   int           // Screen width in characters
	ScreenH   int           // Screen height in characters
	BaseDelay time.Duration // Tick delay at speed factor 1
	MenuPoll  time.Duration // Poll interval while a menu is open
	Seed      int64         // RNG seed for deterministic gameplay
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:   80,
		ScreenH:   24,
		BaseDelay: 100 * time.Millisecond,
		MenuPoll:  100 * time.Millisecond,
		Seed:      0, // 0 means use current time in platform layer
	}
}
