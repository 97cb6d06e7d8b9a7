package duel

import (
	"errors"
	"fmt"

	"github.com/vovakirdan/snake-duel/internal/core"
)

// ErrTerminated is returned by MoveForward when the move leaves a
// non-wrapping grid. The caller ends the game against this snake.
var ErrTerminated = errors.New("snake terminated")

// StartLength is the number of cells a new snake spawns with.
const StartLength = 3

// Snake is an ordered body of grid cells plus a heading.
// The body lives in a ring buffer so that moving (push front, pop back)
// and growing (push back) are O(1).
type Snake struct {
	ring []core.Point
	head int // ring index of body[0]
	n    int
	dir  core.Direction
}

// NewSnake spawns a snake whose head sits on seed with the rest of the
// body trailing to the left, facing right. On a wrapping grid the trailing
// cells are folded onto the grid.
func NewSnake(seed core.Point, grid core.Grid) *Snake {
	body := make([]core.Point, 0, StartLength)
	for i := range StartLength {
		p := core.Point{X: seed.X - i, Y: seed.Y}
		if grid.Wrap {
			p, _ = grid.Resolve(p)
		}
		body = append(body, p)
	}
	return NewSnakeFromBody(body, core.DirRight)
}

// NewSnakeFromBody builds a snake from an explicit head-first body.
// Panics on an empty body.
func NewSnakeFromBody(body []core.Point, dir core.Direction) *Snake {
	if len(body) == 0 {
		panic("duel: snake body must have at least one cell")
	}
	capacity := 8
	for capacity < len(body)*2 {
		capacity *= 2
	}
	s := &Snake{ring: make([]core.Point, capacity), dir: dir}
	for _, p := range body {
		s.pushBack(p)
	}
	return s
}

// Head returns body[0]. An empty body is an internal invariant violation.
func (s *Snake) Head() core.Point {
	if s.n == 0 {
		panic("duel: snake has no body")
	}
	return s.ring[s.head]
}

// Tail returns the last body cell.
func (s *Snake) Tail() core.Point {
	if s.n == 0 {
		panic("duel: snake has no body")
	}
	return s.at(s.n - 1)
}

// Len returns the number of body cells.
func (s *Snake) Len() int {
	return s.n
}

// Direction returns the current heading.
func (s *Snake) Direction() core.Direction {
	return s.dir
}

// Body returns a head-first copy of the body.
func (s *Snake) Body() []core.Point {
	body := make([]core.Point, s.n)
	for i := range s.n {
		body[i] = s.at(i)
	}
	return body
}

// Contains reports whether any body cell, head included, is on p.
func (s *Snake) Contains(p core.Point) bool {
	for i := range s.n {
		if s.at(i) == p {
			return true
		}
	}
	return false
}

// MoveForward advances the head one cell: step, then portal swap, then
// bounds resolution. On ErrTerminated the body is left untouched.
func (s *Snake) MoveForward(grid core.Grid, portals *core.PortalPair) error {
	next := core.ApplyPortal(core.Advance(s.Head(), s.dir), portals)
	next, err := grid.Resolve(next)
	if err != nil {
		return fmt.Errorf("%w: %w", ErrTerminated, err)
	}
	s.pushFront(next)
	s.popBack()
	return nil
}

// Grow duplicates the tail cell. The duplicate is dropped by the next
// move, so the snake ends up one cell longer.
func (s *Snake) Grow() {
	s.pushBack(s.Tail())
}

// ChangeDirection overwrites the heading. Reversal checks belong to the
// input layer.
func (s *Snake) ChangeDirection(d core.Direction) {
	s.dir = d
}

// CheckSelfCollision reports whether the head overlaps any other body cell.
func (s *Snake) CheckSelfCollision() bool {
	head := s.Head()
	for i := 1; i < s.n; i++ {
		if s.at(i) == head {
			return true
		}
	}
	return false
}

func (s *Snake) at(i int) core.Point {
	return s.ring[(s.head+i)%len(s.ring)]
}

func (s *Snake) pushFront(p core.Point) {
	s.ensureRoom()
	s.head = (s.head - 1 + len(s.ring)) % len(s.ring)
	s.ring[s.head] = p
	s.n++
}

func (s *Snake) pushBack(p core.Point) {
	s.ensureRoom()
	s.ring[(s.head+s.n)%len(s.ring)] = p
	s.n++
}

func (s *Snake) popBack() {
	if s.n > 0 {
		s.n--
	}
}

// ensureRoom doubles the ring when it is full, unrolling it so the head
// moves back to index 0.
func (s *Snake) ensureRoom() {
	if s.n < len(s.ring) {
		return
	}
	grown := make([]core.Point, len(s.ring)*2)
	for i := range s.n {
		grown[i] = s.at(i)
	}
	s.ring = grown
	s.head = 0
}
