// Package config provides YAML-based duel configuration: board size,
// hazards, timing and rules, with validation and conversion into
// simulation settings.
package config

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/vovakirdan/snake-duel/internal/core"
	"github.com/vovakirdan/snake-duel/internal/games/duel"
)

// ErrInvalid is wrapped by every validation failure.
var ErrInvalid = errors.New("invalid configuration")

// Config contains everything needed to start a duel.
type Config struct {
	Grid         GridConfig    `yaml:"grid"`
	Rocks        int           `yaml:"rocks"`
	Portals      bool          `yaml:"portals"`
	TickInterval time.Duration `yaml:"tick_interval"`
	FrameRate    int           `yaml:"frame_rate"`
	Spawn        SpawnConfig   `yaml:"spawn"`
	Food         *PointConfig  `yaml:"food,omitempty"` // nil places the food at the grid center
	Rules        RulesConfig   `yaml:"rules"`
}

// GridConfig defines the board topology.
type GridConfig struct {
	Width  int  `yaml:"width"`
	Height int  `yaml:"height"`
	Wrap   bool `yaml:"wrap"`
}

// SpawnConfig holds the head cell of each starting snake.
// A nil entry is derived from the grid size.
type SpawnConfig struct {
	Player1 *PointConfig `yaml:"player1,omitempty"`
	Player2 *PointConfig `yaml:"player2,omitempty"`
}

// PointConfig is a grid cell in YAML form.
type PointConfig struct {
	X int `yaml:"x"`
	Y int `yaml:"y"`
}

// RulesConfig toggles optional rules.
type RulesConfig struct {
	SelfCollision     bool `yaml:"self_collision"`
	PlacementAttempts int  `yaml:"placement_attempts"` // 0 = 4x the cell count
}

func (p PointConfig) point() core.Point {
	return core.Point{X: p.X, Y: p.Y}
}

// Layout returns the spawn cells and the starting food cell. Unset values
// follow the grid: player 1 a quarter of the way in, player 2 three
// quarters, food in the center. On a 20x20 grid that is (5,5), (15,15)
// and (10,10).
func (c Config) Layout() (spawn1, spawn2, food core.Point) {
	w, h := c.Grid.Width, c.Grid.Height
	minX := 0
	if !c.Grid.Wrap {
		minX = duel.StartLength - 1
	}

	spawn1 = core.Point{X: max(w/4, minX), Y: h / 4}
	spawn2 = core.Point{X: max(3*w/4, minX), Y: 3 * h / 4}
	food = core.Point{X: w / 2, Y: h / 2}

	if c.Spawn.Player1 != nil {
		spawn1 = c.Spawn.Player1.point()
	}
	if c.Spawn.Player2 != nil {
		spawn2 = c.Spawn.Player2.point()
	}
	if c.Food != nil {
		food = c.Food.point()
	}
	return spawn1, spawn2, food
}

// Validate reports every problem in the configuration, wrapped in ErrInvalid.
func (c Config) Validate() error {
	var problems []string
	add := func(format string, args ...any) {
		problems = append(problems, fmt.Sprintf(format, args...))
	}

	if c.Grid.Width <= 0 {
		add("grid width must be positive, got %d", c.Grid.Width)
	}
	if c.Grid.Height <= 0 {
		add("grid height must be positive, got %d", c.Grid.Height)
	}
	if c.Rocks < 0 {
		add("rocks must not be negative, got %d", c.Rocks)
	}
	if c.TickInterval <= 0 {
		add("tick_interval must be positive, got %s", c.TickInterval)
	}
	if c.FrameRate <= 0 {
		add("frame_rate must be positive, got %d", c.FrameRate)
	}
	if c.Rules.PlacementAttempts < 0 {
		add("placement_attempts must not be negative, got %d", c.Rules.PlacementAttempts)
	}

	if len(problems) == 0 {
		grid := c.Grid.core()
		spawn1, spawn2, _ := c.Layout()
		snake2 := duel.NewSnake(spawn2, grid)
		body1 := duel.NewSnake(spawn1, grid).Body()
		for i, body := range [][]core.Point{body1, snake2.Body()} {
			for _, p := range body {
				if !grid.Contains(p) {
					add("player %d spawn %s does not fit a %d-cell snake on a %dx%d grid",
						i+1, body[0], duel.StartLength, grid.Width, grid.Height)
					break
				}
			}
		}
		for _, p := range body1 {
			if snake2.Contains(p) {
				add("player spawns overlap at %s", p)
				break
			}
		}
	}

	if len(problems) > 0 {
		return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(problems, "; "))
	}
	return nil
}

func (g GridConfig) core() core.Grid {
	return core.Grid{Width: g.Width, Height: g.Height, Wrap: g.Wrap}
}

// Settings converts the configuration into simulation settings.
func (c Config) Settings() duel.Settings {
	spawn1, spawn2, food := c.Layout()
	return duel.Settings{
		Grid:              c.Grid.core(),
		Rocks:             c.Rocks,
		Portals:           c.Portals,
		Spawn1:            spawn1,
		Spawn2:            spawn2,
		FoodStart:         food,
		SelfCollision:     c.Rules.SelfCollision,
		PlacementAttempts: c.Rules.PlacementAttempts,
	}
}

// Runtime returns the platform timing for this configuration.
func (c Config) Runtime(seed int64) core.RuntimeConfig {
	rc := core.DefaultConfig()
	rc.ScreenW, rc.ScreenH = duel.BoardSize(c.Grid.core())
	rc.ScreenH++ // help footer
	rc.TickInterval = c.TickInterval
	rc.FrameRate = c.FrameRate
	rc.Seed = seed
	return rc
}
