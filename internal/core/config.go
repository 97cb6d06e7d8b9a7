package core

import "time"

// RuntimeConfig contains terminal and timing parameters passed to the
// platform layer when a duel starts.
type RuntimeConfig struct {
	ScreenW      int           // Screen width in characters
	ScreenH      int           // Screen height in characters
	TickInterval time.Duration // Wall-clock time between simulation ticks
	FrameRate    int           // Redraw and input polling rate (frames per second)
	Seed         int64         // RNG seed, 0 means use current time
}

// DefaultConfig returns a RuntimeConfig with sensible defaults.
func DefaultConfig() RuntimeConfig {
	return RuntimeConfig{
		ScreenW:      80,
		ScreenH:      24,
		TickInterval: 150 * time.Millisecond,
		FrameRate:    30,
		Seed:         0,
	}
}
