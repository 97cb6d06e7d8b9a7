// Package core provides fundamental types and utilities for the duel.
// It contains no external dependencies (especially no Bubble Tea) to keep game
// logic pure and testable.
package core

import (
	"errors"
	"fmt"
)

// ErrOutOfBounds is returned by ResolveBounds when a position leaves a
// non-wrapping grid.
var ErrOutOfBounds = errors.New("position out of bounds")

// Point represents a grid cell.
type Point struct {
	X, Y int
}

// String returns the point as "(x, y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

// Direction represents a snake heading.
type Direction int

const (
	DirRight Direction = iota
	DirDown
	DirLeft
	DirUp
)

// Opposite returns the reverse heading.
func (d Direction) Opposite() Direction {
	switch d {
	case DirUp:
		return DirDown
	case DirDown:
		return DirUp
	case DirLeft:
		return DirRight
	default:
		return DirLeft
	}
}

// IsOpposite reports whether two headings point in reverse directions.
func (d Direction) IsOpposite(other Direction) bool {
	return d.Opposite() == other
}

func (d Direction) String() string {
	switch d {
	case DirUp:
		return "up"
	case DirDown:
		return "down"
	case DirLeft:
		return "left"
	case DirRight:
		return "right"
	default:
		return "unknown"
	}
}

// Advance moves p one cell in direction d.
func Advance(p Point, d Direction) Point {
	switch d {
	case DirUp:
		return Point{X: p.X, Y: p.Y - 1}
	case DirDown:
		return Point{X: p.X, Y: p.Y + 1}
	case DirLeft:
		return Point{X: p.X - 1, Y: p.Y}
	case DirRight:
		return Point{X: p.X + 1, Y: p.Y}
	}
	return p
}

// PortalPair links two distinct cells. A head entering one endpoint
// leaves from the other.
type PortalPair struct {
	A, B Point
}

// ApplyPortal swaps p for the opposite endpoint when it lands on a portal.
// A nil pair leaves p unchanged.
func ApplyPortal(p Point, portals *PortalPair) Point {
	if portals == nil {
		return p
	}
	switch p {
	case portals.A:
		return portals.B
	case portals.B:
		return portals.A
	}
	return p
}

// ResolveBounds maps p onto a width x height grid.
// With wrap the position is folded onto the opposite edge; without it,
// anything outside [0,width) x [0,height) yields ErrOutOfBounds.
func ResolveBounds(p Point, width, height int, wrap bool) (Point, error) {
	if wrap {
		return Point{X: mod(p.X, width), Y: mod(p.Y, height)}, nil
	}
	if p.X < 0 || p.X >= width || p.Y < 0 || p.Y >= height {
		return p, fmt.Errorf("%w: %s on %dx%d grid", ErrOutOfBounds, p, width, height)
	}
	return p, nil
}

// mod is a modulo that never returns a negative result.
func mod(v, n int) int {
	return ((v % n) + n) % n
}

// Grid describes the playing field topology.
type Grid struct {
	Width  int
	Height int
	Wrap   bool
}

// Contains returns true if p lies inside the grid.
func (g Grid) Contains(p Point) bool {
	return p.X >= 0 && p.X < g.Width && p.Y >= 0 && p.Y < g.Height
}

// Resolve applies ResolveBounds with the grid's parameters.
func (g Grid) Resolve(p Point) (Point, error) {
	return ResolveBounds(p, g.Width, g.Height, g.Wrap)
}

// Cells returns the number of cells on the grid.
func (g Grid) Cells() int {
	return g.Width * g.Height
}

// Rect represents an axis-aligned box on the screen.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Clamp restricts a value to be within [lo, hi].
func Clamp(val, lo, hi int) int {
	if val < lo {
		return lo
	}
	if val > hi {
		return hi
	}
	return val
}
