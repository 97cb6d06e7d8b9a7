package duel

import "github.com/vovakirdan/snake-duel/internal/core"

// Food is the single edible cell on the board.
type Food struct {
	Position core.Point
}

// Relocate moves the food to a random cell not covered by either snake.
// On ErrNoFreeCell the position is left unchanged.
func (f *Food) Relocate(rng Rand, grid core.Grid, maxAttempts int, s1, s2 *Snake) error {
	p, err := randomFreeCell(rng, grid, maxAttempts, func(p core.Point) bool {
		return s1.Contains(p) || s2.Contains(p)
	})
	if err != nil {
		return err
	}
	f.Position = p
	return nil
}
