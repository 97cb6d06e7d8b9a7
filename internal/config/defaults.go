package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/duel.yaml
var defaultYAML []byte

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultYAML
}

// Default returns the built-in configuration: a 20x20 board with 5 rocks,
// no wrap and no portals, ticking every 150ms.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Width:  20,
			Height: 20,
		},
		Rocks:        5,
		TickInterval: 150 * time.Millisecond,
		FrameRate:    30,
	}
}
