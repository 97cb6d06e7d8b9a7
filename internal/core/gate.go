package core

import "time"

// TickGate decides when the simulation may advance. Frames arrive faster
// than ticks; a tick is allowed only once strictly more than Interval has
// elapsed since the previous one.
type TickGate struct {
	Interval time.Duration
	last     time.Time
}

// NewTickGate creates a gate whose interval starts counting at now.
func NewTickGate(interval time.Duration, now time.Time) *TickGate {
	return &TickGate{Interval: interval, last: now}
}

// Ready reports whether a tick should fire at now and, if so, restarts
// the interval from now.
func (g *TickGate) Ready(now time.Time) bool {
	if now.Sub(g.last) <= g.Interval {
		return false
	}
	g.last = now
	return true
}

// Reset restarts the interval from now without firing.
func (g *TickGate) Reset(now time.Time) {
	g.last = now
}
