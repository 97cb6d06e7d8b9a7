package duel

import (
	"errors"
	"math/rand"
	"reflect"
	"testing"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// newTestState builds a board directly so tests control every position.
func newTestState(grid core.Grid, body1 []core.Point, dir1 core.Direction, body2 []core.Point, dir2 core.Direction, food core.Point) *State {
	return &State{
		settings: Settings{Grid: grid},
		rng:      rand.New(rand.NewSource(1)),
		snake1:   NewSnakeFromBody(body1, dir1),
		snake2:   NewSnakeFromBody(body2, dir2),
		food:     Food{Position: food},
	}
}

func defaultSettings() Settings {
	return Settings{
		Grid:      core.Grid{Width: 20, Height: 20},
		Rocks:     5,
		Portals:   true,
		Spawn1:    core.Point{X: 5, Y: 5},
		Spawn2:    core.Point{X: 15, Y: 15},
		FoodStart: core.Point{X: 10, Y: 10},
	}
}

func TestNew(t *testing.T) {
	s, err := New(defaultSettings(), rand.New(rand.NewSource(42)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	snap := s.Snapshot()

	if !reflect.DeepEqual(snap.Snake1, pts(5, 5, 4, 5, 3, 5)) {
		t.Errorf("Snake1 = %v", snap.Snake1)
	}
	if !reflect.DeepEqual(snap.Snake2, pts(15, 15, 14, 15, 13, 15)) {
		t.Errorf("Snake2 = %v", snap.Snake2)
	}
	if snap.Food != (core.Point{X: 10, Y: 10}) {
		t.Errorf("Food = %v, expected (10, 10)", snap.Food)
	}
	if len(snap.Rocks) != 5 {
		t.Fatalf("expected 5 rocks, got %d", len(snap.Rocks))
	}
	for _, r := range snap.Rocks {
		if s.snake1.Contains(r) || s.snake2.Contains(r) || r == snap.Food {
			t.Errorf("rock at %v overlaps a snake or the food", r)
		}
	}
	if snap.Portals == nil || snap.Portals.A == snap.Portals.B {
		t.Errorf("expected two distinct portals, got %+v", snap.Portals)
	}
	if snap.GameOver || snap.Outcome != OutcomeNone {
		t.Error("new game should be running")
	}
}

func TestNewWithoutPortals(t *testing.T) {
	cfg := defaultSettings()
	cfg.Portals = false
	cfg.Rocks = 0

	s, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	snap := s.Snapshot()
	if snap.Portals != nil {
		t.Errorf("expected no portals, got %+v", snap.Portals)
	}
	if len(snap.Rocks) != 0 {
		t.Errorf("expected no rocks, got %v", snap.Rocks)
	}
}

func TestNewRelocatesCoveredFood(t *testing.T) {
	cfg := defaultSettings()
	cfg.FoodStart = core.Point{X: 4, Y: 5} // on snake 1

	s, err := New(cfg, rand.New(rand.NewSource(3)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if s.snake1.Contains(s.food.Position) || s.snake2.Contains(s.food.Position) {
		t.Errorf("food left on a snake at %v", s.food.Position)
	}
}

func TestNewInvalidSettings(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*Settings)
	}{
		{"zero width", func(c *Settings) { c.Grid.Width = 0 }},
		{"negative height", func(c *Settings) { c.Grid.Height = -3 }},
		{"negative rocks", func(c *Settings) { c.Rocks = -1 }},
		{"spawn tail off grid", func(c *Settings) { c.Spawn1 = core.Point{X: 1, Y: 5} }},
		{"spawn head off grid", func(c *Settings) { c.Spawn2 = core.Point{X: 25, Y: 5} }},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := defaultSettings()
			tc.modify(&cfg)
			_, err := New(cfg, rand.New(rand.NewSource(1)))
			if !errors.Is(err, ErrInvalidSettings) {
				t.Errorf("expected ErrInvalidSettings, got %v", err)
			}
		})
	}
}

func TestNewSpawnWrapsWhenWrapping(t *testing.T) {
	cfg := defaultSettings()
	cfg.Grid.Wrap = true
	cfg.Spawn1 = core.Point{X: 1, Y: 5}

	s, err := New(cfg, rand.New(rand.NewSource(1)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}
	if !reflect.DeepEqual(s.snake1.Body(), pts(1, 5, 0, 5, 19, 5)) {
		t.Errorf("Snake1 = %v", s.snake1.Body())
	}
}

func TestNewFullGrid(t *testing.T) {
	cfg := Settings{
		Grid:      core.Grid{Width: 3, Height: 2},
		Spawn1:    core.Point{X: 2, Y: 0},
		Spawn2:    core.Point{X: 2, Y: 1},
		FoodStart: core.Point{X: 0, Y: 0},
	}
	_, err := New(cfg, rand.New(rand.NewSource(1)))
	if !errors.Is(err, ErrNoFreeCell) {
		t.Errorf("expected ErrNoFreeCell, got %v", err)
	}
}

func TestTickWallLoss(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	body1 := pts(9, 5, 8, 5, 7, 5)
	s := newTestState(grid, body1, core.DirRight, pts(2, 1, 1, 1, 0, 1), core.DirRight, core.Point{X: 0, Y: 9})

	s.Tick()

	if !s.GameOver() {
		t.Fatal("game should be over after snake 1 leaves the grid")
	}
	if s.Outcome() != OutcomePlayer2Wins {
		t.Errorf("Outcome() = %v, expected player2_wins", s.Outcome())
	}
	if !reflect.DeepEqual(s.snake1.Body(), body1) {
		t.Errorf("snake 1 body changed: %v", s.snake1.Body())
	}
	// Snake 2 still moved this tick
	if s.snake2.Head() != (core.Point{X: 3, Y: 1}) {
		t.Errorf("snake 2 head = %v, expected (3, 1)", s.snake2.Head())
	}
}

func TestTickBothLeaveGrid(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(9, 2, 8, 2, 7, 2), core.DirRight, pts(9, 7, 8, 7, 7, 7), core.DirRight, core.Point{X: 0, Y: 0})

	s.Tick()

	// Snake 2's failure is recorded last
	if s.Outcome() != OutcomePlayer1Wins {
		t.Errorf("Outcome() = %v, expected player1_wins", s.Outcome())
	}
}

func TestTickWrapAround(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10, Wrap: true}
	s := newTestState(grid, pts(9, 5, 8, 5, 7, 5), core.DirRight, pts(2, 1, 1, 1, 0, 1), core.DirRight, core.Point{X: 0, Y: 9})

	s.Tick()

	if s.GameOver() {
		t.Fatal("wrapping grid should not end the game at the edge")
	}
	if s.snake1.Head() != (core.Point{X: 0, Y: 5}) {
		t.Errorf("snake 1 head = %v, expected (0, 5)", s.snake1.Head())
	}
}

func TestTickEatsFood(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(3, 4, 2, 4, 1, 4), core.DirRight, pts(5, 8, 4, 8, 3, 8), core.DirRight, core.Point{X: 4, Y: 4})

	s.Tick()

	if s.snake1.Len() != 4 {
		t.Errorf("snake 1 length = %d, expected 4", s.snake1.Len())
	}
	if s.snake2.Len() != 3 {
		t.Errorf("snake 2 length = %d, expected 3", s.snake2.Len())
	}
	if s.food.Position == (core.Point{X: 4, Y: 4}) {
		t.Error("food should have moved")
	}
	if s.snake1.Contains(s.food.Position) || s.snake2.Contains(s.food.Position) {
		t.Errorf("food relocated onto a snake at %v", s.food.Position)
	}
	if s.GameOver() {
		t.Error("eating should not end the game")
	}

	// The growth shows up after the next move
	s.food.Position = core.Point{X: 0, Y: 0}
	s.Tick()
	if !reflect.DeepEqual(s.snake1.Body(), pts(5, 4, 4, 4, 3, 4, 2, 4)) {
		t.Errorf("snake 1 body = %v", s.snake1.Body())
	}
}

func TestTickHeadToHeadIsDraw(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(3, 5, 2, 5, 1, 5), core.DirRight, pts(5, 5, 6, 5, 7, 5), core.DirLeft, core.Point{X: 0, Y: 0})

	s.Tick()

	if !s.GameOver() {
		t.Fatal("head-on collision should end the game")
	}
	if s.Outcome() != OutcomeDraw {
		t.Errorf("Outcome() = %v, expected draw", s.Outcome())
	}
}

func TestTickBothHeadsOnFood(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(3, 5, 2, 5, 1, 5), core.DirRight, pts(5, 5, 6, 5, 7, 5), core.DirLeft, core.Point{X: 4, Y: 5})

	s.Tick()

	// Snake 1 eats first; snake 2 is checked against the relocated food.
	if s.snake1.Len() != 4 || s.snake2.Len() != 3 {
		t.Errorf("lengths = %d, %d; expected 4, 3", s.snake1.Len(), s.snake2.Len())
	}
	if s.Outcome() != OutcomeDraw {
		t.Errorf("Outcome() = %v, expected draw", s.Outcome())
	}
}

func TestTickSnakeIntoBody(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}

	tests := []struct {
		name     string
		body1    []core.Point
		dir1     core.Direction
		body2    []core.Point
		dir2     core.Direction
		expected Outcome
	}{
		{
			name:     "snake 1 head into middle of snake 2",
			body1:    pts(2, 5, 1, 5, 0, 5),
			dir1:     core.DirRight,
			body2:    pts(3, 4, 3, 5, 3, 6, 3, 7),
			dir2:     core.DirUp,
			expected: OutcomePlayer1Wins,
		},
		{
			name:     "snake 2 head into snake 1",
			body1:    pts(5, 5, 4, 5, 3, 5),
			dir1:     core.DirRight,
			body2:    pts(4, 6, 4, 7, 4, 8),
			dir2:     core.DirUp,
			expected: OutcomePlayer2Wins,
		},
		{
			name:     "snake 1 head into snake 2 mirrored",
			body1:    pts(4, 6, 4, 7, 4, 8),
			dir1:     core.DirUp,
			body2:    pts(5, 5, 4, 5, 3, 5),
			dir2:     core.DirRight,
			expected: OutcomePlayer1Wins,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(grid, tc.body1, tc.dir1, tc.body2, tc.dir2, core.Point{X: 0, Y: 0})
			s.Tick()
			if !s.GameOver() {
				t.Fatal("game should be over")
			}
			if s.Outcome() != tc.expected {
				t.Errorf("Outcome() = %v, expected %v", s.Outcome(), tc.expected)
			}
		})
	}
}

func TestTickRockCollision(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}

	t.Run("snake 2 on rock", func(t *testing.T) {
		s := newTestState(grid, pts(5, 8, 4, 8, 3, 8), core.DirRight, pts(2, 3, 1, 3, 0, 3), core.DirRight, core.Point{X: 0, Y: 0})
		s.rocks = []Rock{{Position: core.Point{X: 3, Y: 3}}}
		s.Tick()
		if s.Outcome() != OutcomePlayer1Wins {
			t.Errorf("Outcome() = %v, expected player1_wins", s.Outcome())
		}
	})

	t.Run("snake 1 on rock", func(t *testing.T) {
		s := newTestState(grid, pts(2, 3, 1, 3, 0, 3), core.DirRight, pts(5, 8, 4, 8, 3, 8), core.DirRight, core.Point{X: 0, Y: 0})
		s.rocks = []Rock{{Position: core.Point{X: 3, Y: 3}}}
		s.Tick()
		if s.Outcome() != OutcomePlayer2Wins {
			t.Errorf("Outcome() = %v, expected player2_wins", s.Outcome())
		}
	})
}

func TestTickRockOrderDecidesOutcome(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	rock1 := Rock{Position: core.Point{X: 3, Y: 3}} // snake 1's next head
	rock2 := Rock{Position: core.Point{X: 6, Y: 8}} // snake 2's next head

	tests := []struct {
		name     string
		rocks    []Rock
		expected Outcome
	}{
		{"snake 2 rock last", []Rock{rock1, rock2}, OutcomePlayer1Wins},
		{"snake 1 rock last", []Rock{rock2, rock1}, OutcomePlayer2Wins},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			s := newTestState(grid, pts(2, 3, 1, 3, 0, 3), core.DirRight, pts(5, 8, 4, 8, 3, 8), core.DirRight, core.Point{X: 0, Y: 0})
			s.rocks = tc.rocks
			s.Tick()
			if s.Outcome() != tc.expected {
				t.Errorf("Outcome() = %v, expected %v", s.Outcome(), tc.expected)
			}
		})
	}
}

func TestTickRockOverridesWallLoss(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	// Snake 1 leaves the grid (player 2 wins), then snake 2 lands on a rock.
	s := newTestState(grid, pts(9, 1, 8, 1, 7, 1), core.DirRight, pts(2, 3, 1, 3, 0, 3), core.DirRight, core.Point{X: 0, Y: 0})
	s.rocks = []Rock{{Position: core.Point{X: 3, Y: 3}}}

	s.Tick()

	if s.Outcome() != OutcomePlayer1Wins {
		t.Errorf("Outcome() = %v, expected player1_wins", s.Outcome())
	}
}

func TestTickThroughPortal(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(3, 5, 2, 5, 1, 5), core.DirRight, pts(5, 8, 4, 8, 3, 8), core.DirRight, core.Point{X: 0, Y: 0})
	s.portals = &core.PortalPair{A: core.Point{X: 4, Y: 5}, B: core.Point{X: 1, Y: 1}}

	s.Tick()

	if s.snake1.Head() != (core.Point{X: 1, Y: 1}) {
		t.Errorf("snake 1 head = %v, expected portal exit (1, 1)", s.snake1.Head())
	}
}

func TestSelfCollisionRule(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	curl := pts(5, 5, 5, 6, 6, 6, 6, 5, 6, 4, 6, 3)

	t.Run("disabled by default", func(t *testing.T) {
		s := newTestState(grid, curl, core.DirRight, pts(2, 9, 1, 9, 0, 9), core.DirRight, core.Point{X: 0, Y: 0})
		s.Tick()
		if !s.snake1.CheckSelfCollision() {
			t.Fatal("test setup should produce a self collision")
		}
		if s.GameOver() {
			t.Error("self collision should not end the game unless enabled")
		}
	})

	t.Run("enabled", func(t *testing.T) {
		s := newTestState(grid, curl, core.DirRight, pts(2, 9, 1, 9, 0, 9), core.DirRight, core.Point{X: 0, Y: 0})
		s.settings.SelfCollision = true
		s.Tick()
		if s.Outcome() != OutcomePlayer2Wins {
			t.Errorf("Outcome() = %v, expected player2_wins", s.Outcome())
		}
	})
}

func TestGameOverIsFinal(t *testing.T) {
	grid := core.Grid{Width: 10, Height: 10}
	s := newTestState(grid, pts(9, 5, 8, 5, 7, 5), core.DirRight, pts(2, 1, 1, 1, 0, 1), core.DirRight, core.Point{X: 0, Y: 9})

	s.Tick()
	before := s.Snapshot()

	for range 5 {
		s.Tick()
	}

	if !reflect.DeepEqual(s.Snapshot(), before) {
		t.Error("ticks after game over should not change the board")
	}
	if !s.GameOver() {
		t.Error("game over flag was reset")
	}
}

func TestSteer(t *testing.T) {
	s, err := New(defaultSettings(), rand.New(rand.NewSource(5)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	if s.Steer(core.Steer{Player: core.Player1, Dir: core.DirLeft}) {
		t.Error("reversal should be rejected")
	}
	if s.Heading(core.Player1) != core.DirRight {
		t.Errorf("Heading() = %v, expected right", s.Heading(core.Player1))
	}

	if !s.Steer(core.Steer{Player: core.Player1, Dir: core.DirUp}) {
		t.Error("turn should be accepted")
	}
	if s.Steer(core.Steer{Player: core.Player1, Dir: core.DirDown}) {
		t.Error("reversal of the new heading should be rejected")
	}

	// Player 2 is independent
	if !s.Steer(core.Steer{Player: core.Player2, Dir: core.DirDown}) {
		t.Error("player 2 turn should be accepted")
	}
	if s.Heading(core.Player2) != core.DirDown || s.Heading(core.Player1) != core.DirUp {
		t.Errorf("headings = %v, %v", s.Heading(core.Player1), s.Heading(core.Player2))
	}

	// ChangeDirection itself never guards
	s.ChangeDirection(core.Player1, core.DirDown)
	if s.Heading(core.Player1) != core.DirDown {
		t.Errorf("ChangeDirection should overwrite, got %v", s.Heading(core.Player1))
	}
}

func TestDeterminism(t *testing.T) {
	cfg := defaultSettings()
	cfg.Grid.Wrap = true

	run := func() Snapshot {
		s, err := New(cfg, rand.New(rand.NewSource(12345)))
		if err != nil {
			t.Fatalf("New() error: %v", err)
		}
		for i := range 60 {
			switch i {
			case 10:
				s.Steer(core.Steer{Player: core.Player1, Dir: core.DirDown})
			case 20:
				s.Steer(core.Steer{Player: core.Player2, Dir: core.DirUp})
			case 35:
				s.Steer(core.Steer{Player: core.Player1, Dir: core.DirLeft})
			}
			s.Tick()
		}
		return s.Snapshot()
	}

	if !reflect.DeepEqual(run(), run()) {
		t.Error("same seed and inputs should produce identical snapshots")
	}
}

func TestSnapshotIsACopy(t *testing.T) {
	s, err := New(defaultSettings(), rand.New(rand.NewSource(8)))
	if err != nil {
		t.Fatalf("New() error: %v", err)
	}

	snap := s.Snapshot()
	snap.Snake1[0] = core.Point{X: -1, Y: -1}
	snap.Rocks[0] = core.Point{X: -1, Y: -1}
	snap.Portals.A = core.Point{X: -1, Y: -1}

	again := s.Snapshot()
	if again.Snake1[0] == snap.Snake1[0] || again.Rocks[0] == snap.Rocks[0] || again.Portals.A == snap.Portals.A {
		t.Error("mutating a snapshot changed the game")
	}
	if again.Len(core.Player1) != 3 || again.Len(core.Player2) != 3 {
		t.Errorf("Len() = %d, %d", again.Len(core.Player1), again.Len(core.Player2))
	}
}

func TestOutcome(t *testing.T) {
	if OutcomePlayer1Wins.Winner() != core.Player1 || OutcomePlayer2Wins.Winner() != core.Player2 {
		t.Error("Winner() mismatch")
	}
	if OutcomeDraw.Winner() != 0 || OutcomeNone.Winner() != 0 {
		t.Error("draw and none should have no winner")
	}
	if winFor(core.Player2) != OutcomePlayer2Wins {
		t.Error("winFor(Player2) mismatch")
	}
	if OutcomeDraw.String() != "draw" {
		t.Errorf("String() = %q", OutcomeDraw.String())
	}
}
