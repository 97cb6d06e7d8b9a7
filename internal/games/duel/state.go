// Package duel implements the two-player snake simulation: movement,
// food and rock placement, portals, and per-tick collision resolution.
// It has no knowledge of terminals, keys or wall-clock time.
package duel

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// ErrInvalidSettings is returned by New for settings that cannot form a board.
var ErrInvalidSettings = errors.New("invalid duel settings")

// Settings holds everything New needs to lay out a board.
type Settings struct {
	Grid              core.Grid
	Rocks             int
	Portals           bool
	Spawn1            core.Point // Head of player 1's starting snake
	Spawn2            core.Point // Head of player 2's starting snake
	FoodStart         core.Point
	SelfCollision     bool // End the game when a snake runs into itself
	PlacementAttempts int  // Random samples before falling back to a scan, <= 0 for 4x cells
}

// State owns both snakes, the food, the rocks and the optional portal
// pair, and advances them one tick at a time.
type State struct {
	settings Settings
	rng      Rand

	snake1  *Snake
	snake2  *Snake
	food    Food
	rocks   []Rock
	portals *core.PortalPair

	tick     uint64
	gameOver bool
	outcome  Outcome
}

// New lays out a fresh board: snakes at their spawn cells, food at its
// start cell (moved if a snake covers it), rocks, then portals.
func New(cfg Settings, rng Rand) (*State, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}

	s := &State{
		settings: cfg,
		rng:      rng,
		snake1:   NewSnake(cfg.Spawn1, cfg.Grid),
		snake2:   NewSnake(cfg.Spawn2, cfg.Grid),
		food:     Food{Position: cfg.FoodStart},
	}

	if !cfg.Grid.Contains(s.food.Position) || s.snake1.Contains(s.food.Position) || s.snake2.Contains(s.food.Position) {
		if err := s.food.Relocate(rng, cfg.Grid, cfg.PlacementAttempts, s.snake1, s.snake2); err != nil {
			return nil, fmt.Errorf("placing food: %w", err)
		}
	}

	s.rocks = make([]Rock, 0, cfg.Rocks)
	for i := range cfg.Rocks {
		rock, err := PlaceRock(rng, cfg.Grid, cfg.PlacementAttempts, s.snake1, s.snake2, s.food)
		if err != nil {
			return nil, fmt.Errorf("placing rock %d: %w", i+1, err)
		}
		s.rocks = append(s.rocks, rock)
	}

	if cfg.Portals {
		portals, err := NewPortalPair(rng, cfg.Grid, cfg.PlacementAttempts)
		if err != nil {
			return nil, fmt.Errorf("placing portals: %w", err)
		}
		s.portals = portals
	}

	return s, nil
}

func (cfg Settings) validate() error {
	g := cfg.Grid
	if g.Width <= 0 || g.Height <= 0 {
		return fmt.Errorf("%w: grid %dx%d must be positive", ErrInvalidSettings, g.Width, g.Height)
	}
	if cfg.Rocks < 0 {
		return fmt.Errorf("%w: rock count %d is negative", ErrInvalidSettings, cfg.Rocks)
	}
	if g.Wrap {
		return nil
	}
	for _, spawn := range []core.Point{cfg.Spawn1, cfg.Spawn2} {
		tail := core.Point{X: spawn.X - (StartLength - 1), Y: spawn.Y}
		if !g.Contains(spawn) || !g.Contains(tail) {
			return fmt.Errorf("%w: spawn %s does not fit a %d-cell snake on a %dx%d grid",
				ErrInvalidSettings, spawn, StartLength, g.Width, g.Height)
		}
	}
	return nil
}

// Tick advances the simulation by one step. The order is fixed: move
// snake 1, move snake 2, feed snake 1, feed snake 2, resolve collisions.
// Both snakes always get a move attempt, and every collision rule runs,
// so a later rule overwrites the outcome of an earlier one.
func (s *State) Tick() {
	if s.gameOver {
		return
	}
	s.tick++

	grid := s.settings.Grid
	if err := s.snake1.MoveForward(grid, s.portals); err != nil {
		s.finish(OutcomePlayer2Wins)
	}
	if err := s.snake2.MoveForward(grid, s.portals); err != nil {
		s.finish(OutcomePlayer1Wins)
	}

	s.feed(s.snake1)
	s.feed(s.snake2)

	s.resolveCollisions()
}

// feed grows sn and moves the food when its head is on the food.
func (s *State) feed(sn *Snake) {
	if sn.Head() != s.food.Position {
		return
	}
	sn.Grow()
	//nolint:errcheck // A full grid leaves the food where it is
	s.food.Relocate(s.rng, s.settings.Grid, s.settings.PlacementAttempts, s.snake1, s.snake2)
}

// resolveCollisions applies the snake, draw, rock and self-collision
// rules in order. Each matching rule overwrites the outcome.
func (s *State) resolveCollisions() {
	head1 := s.snake1.Head()
	head2 := s.snake2.Head()

	switch {
	case s.snake2.Contains(head1):
		s.finish(OutcomePlayer1Wins)
	case s.snake1.Contains(head2):
		s.finish(OutcomePlayer2Wins)
	}

	if head1 == head2 {
		s.finish(OutcomeDraw)
	}

	for _, rock := range s.rocks {
		if head1 == rock.Position {
			s.finish(OutcomePlayer2Wins)
		} else if head2 == rock.Position {
			s.finish(OutcomePlayer1Wins)
		}
	}

	if s.settings.SelfCollision {
		for _, p := range []core.PlayerID{core.Player1, core.Player2} {
			if s.snake(p).CheckSelfCollision() {
				s.finish(winFor(p.Other()))
			}
		}
	}
}

func (s *State) finish(o Outcome) {
	s.gameOver = true
	s.outcome = o
}

// ChangeDirection sets a player's heading for the next tick.
// It does not reject reversals; the input layer does.
func (s *State) ChangeDirection(p core.PlayerID, d core.Direction) {
	if sn := s.snake(p); sn != nil {
		sn.ChangeDirection(d)
	}
}

// Heading returns a player's current heading.
func (s *State) Heading(p core.PlayerID) core.Direction {
	if sn := s.snake(p); sn != nil {
		return sn.Direction()
	}
	return core.DirRight
}

// Steer applies a direction change unless it would reverse the snake onto
// its own neck.
func (s *State) Steer(cmd core.Steer) bool {
	if cmd.Dir.IsOpposite(s.Heading(cmd.Player)) {
		return false
	}
	s.ChangeDirection(cmd.Player, cmd.Dir)
	return true
}

func (s *State) snake(p core.PlayerID) *Snake {
	switch p {
	case core.Player1:
		return s.snake1
	case core.Player2:
		return s.snake2
	}
	return nil
}

// GameOver reports whether the duel has ended. Once true it stays true.
func (s *State) GameOver() bool {
	return s.gameOver
}

// Outcome returns the result, OutcomeNone while the duel is running.
func (s *State) Outcome() Outcome {
	return s.outcome
}

// Ticks returns how many ticks have been simulated.
func (s *State) Ticks() uint64 {
	return s.tick
}

// Grid returns the board topology.
func (s *State) Grid() core.Grid {
	return s.settings.Grid
}
