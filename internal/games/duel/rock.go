package duel

import "github.com/vovakirdan/snake-duel/internal/core"

// Rock is a static obstacle placed once when the game starts.
type Rock struct {
	Position core.Point
}

// PlaceRock picks a random cell that is neither on a snake nor on the food.
// Rocks may stack on each other, as only snakes and food are excluded.
func PlaceRock(rng Rand, grid core.Grid, maxAttempts int, s1, s2 *Snake, food Food) (Rock, error) {
	p, err := randomFreeCell(rng, grid, maxAttempts, func(p core.Point) bool {
		return s1.Contains(p) || s2.Contains(p) || p == food.Position
	})
	if err != nil {
		return Rock{}, err
	}
	return Rock{Position: p}, nil
}
