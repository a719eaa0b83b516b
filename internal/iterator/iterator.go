// Package iterator provides a pull-based walker over an
// OccurrenceEngine search, mirroring original_source's
// CronIterator: the first call honors the caller's inclusive flag,
// every subsequent call excludes the time just returned so a repeated
// Next never yields the same instant twice.
package iterator

import (
	"time"

	"github.com/hzerrad/cronic/internal/cronx"
)

// Direction selects which way a Cursor walks the schedule.
type Direction int

const (
	Forward Direction = iota
	Backward
)

// Cursor walks a Pattern's occurrences one at a time in a single
// direction, starting from an anchor instant.
type Cursor struct {
	engine    *cronx.OccurrenceEngine
	pattern   *cronx.Pattern
	current   time.Time
	isFirst   bool
	inclusive bool
	direction Direction
}

// New builds a Cursor over pattern, anchored at start. When inclusive
// is true and start itself matches the pattern, the first Next call
// returns start; every call after the first is exclusive of whatever
// time was last returned.
func New(engine *cronx.OccurrenceEngine, pattern *cronx.Pattern, start time.Time, inclusive bool, direction Direction) *Cursor {
	return &Cursor{
		engine:    engine,
		pattern:   pattern,
		current:   start,
		isFirst:   true,
		inclusive: inclusive,
		direction: direction,
	}
}

// Next returns the next occurrence in the Cursor's direction, or
// ok=false once the search exhausts the engine's horizon or the
// pattern turns out to be unsatisfiable.
func (c *Cursor) Next() (t time.Time, ok bool) {
	inclusiveSearch := false
	if c.isFirst {
		inclusiveSearch = c.inclusive
		c.isFirst = false
	}

	var found time.Time
	var err error
	switch c.direction {
	case Forward:
		found, err = c.engine.FindNext(c.pattern, c.current, inclusiveSearch)
	case Backward:
		found, err = c.engine.FindPrev(c.pattern, c.current, inclusiveSearch)
	}
	if err != nil {
		return time.Time{}, false
	}

	c.current = found
	return found, true
}

// Take collects up to n occurrences from the Cursor, stopping early if
// the underlying search is exhausted first.
func (c *Cursor) Take(n int) []time.Time {
	out := make([]time.Time, 0, n)
	for i := 0; i < n; i++ {
		t, ok := c.Next()
		if !ok {
			break
		}
		out = append(out, t)
	}
	return out
}

// Seq adapts the Cursor to a Go 1.23 range-over-func iterator, so
// callers can write `for t := range cur.Seq() { ... }` and break out
// early without needing a sentinel length.
func (c *Cursor) Seq() func(yield func(time.Time) bool) {
	return func(yield func(time.Time) bool) {
		for {
			t, ok := c.Next()
			if !ok || !yield(t) {
				return
			}
		}
	}
}
