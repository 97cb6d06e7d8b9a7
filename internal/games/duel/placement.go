package duel

import (
	"errors"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// ErrNoFreeCell is returned when every grid cell is occupied.
var ErrNoFreeCell = errors.New("no free cell on grid")

// Rand is the randomness source used for placement. *math/rand.Rand
// satisfies it; tests inject seeded sources.
type Rand interface {
	Intn(n int) int
}

// randomCell samples a uniformly random grid cell.
func randomCell(rng Rand, grid core.Grid) core.Point {
	return core.Point{X: rng.Intn(grid.Width), Y: rng.Intn(grid.Height)}
}

// randomFreeCell samples cells until one is not occupied. After
// maxAttempts misses it falls back to picking uniformly among the free
// cells found by a full scan. maxAttempts <= 0 selects 4x the cell count.
func randomFreeCell(rng Rand, grid core.Grid, maxAttempts int, occupied func(core.Point) bool) (core.Point, error) {
	if maxAttempts <= 0 {
		maxAttempts = 4 * grid.Cells()
	}
	for range maxAttempts {
		p := randomCell(rng, grid)
		if !occupied(p) {
			return p, nil
		}
	}

	var free []core.Point
	for y := range grid.Height {
		for x := range grid.Width {
			p := core.Point{X: x, Y: y}
			if !occupied(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{}, ErrNoFreeCell
	}
	return free[rng.Intn(len(free))], nil
}

// NewPortalPair picks two distinct random cells. Portals may overlap
// snakes, food or rocks.
func NewPortalPair(rng Rand, grid core.Grid, maxAttempts int) (*core.PortalPair, error) {
	a := randomCell(rng, grid)
	b, err := randomFreeCell(rng, grid, maxAttempts, func(p core.Point) bool {
		return p == a
	})
	if err != nil {
		return nil, err
	}
	return &core.PortalPair{A: a, B: b}, nil
}
