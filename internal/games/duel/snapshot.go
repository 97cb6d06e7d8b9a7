package duel

import "github.com/vovakirdan/snake-duel/internal/core"

// Snapshot is a read-only copy of the board for one frame.
// Bodies are head first.
type Snapshot struct {
	Tick     uint64
	Grid     core.Grid
	Snake1   []core.Point
	Snake2   []core.Point
	Dir1     core.Direction
	Dir2     core.Direction
	Food     core.Point
	Rocks    []core.Point
	Portals  *core.PortalPair
	GameOver bool
	Outcome  Outcome
}

// Snapshot copies the current state. Mutating the result does not affect
// the game.
func (s *State) Snapshot() Snapshot {
	rocks := make([]core.Point, len(s.rocks))
	for i, r := range s.rocks {
		rocks[i] = r.Position
	}

	var portals *core.PortalPair
	if s.portals != nil {
		pair := *s.portals
		portals = &pair
	}

	return Snapshot{
		Tick:     s.tick,
		Grid:     s.settings.Grid,
		Snake1:   s.snake1.Body(),
		Snake2:   s.snake2.Body(),
		Dir1:     s.snake1.Direction(),
		Dir2:     s.snake2.Direction(),
		Food:     s.food.Position,
		Rocks:    rocks,
		Portals:  portals,
		GameOver: s.gameOver,
		Outcome:  s.outcome,
	}
}

// Len returns the body length of a player's snake.
func (snap Snapshot) Len(p core.PlayerID) int {
	if p == core.Player1 {
		return len(snap.Snake1)
	}
	return len(snap.Snake2)
}
