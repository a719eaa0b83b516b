package task

import (
	"context"
	"time"
)

// PanicHandler is invoked, off the Pool's run loop, when a Job panics.
type PanicHandler func(tag interface{}, recovered interface{})

// Option configures a Pool at construction time, following
// cnotch-scheduler's functional-options shape.
type Option interface {
	apply(*Pool)
}

type optionFunc func(*Pool)

func (f optionFunc) apply(p *Pool) { f(p) }

// WithContext ties the Pool's lifetime to ctx: canceling ctx ends the
// run loop as Stop does, but does not change the value State reports.
func WithContext(ctx context.Context) Option {
	return optionFunc(func(p *Pool) {
		p.ctx, p.cancel = context.WithCancel(ctx)
	})
}

// WithLocation sets the time.Location the Pool evaluates patterns
// against. Defaults to time.Local.
func WithLocation(loc *time.Location) Option {
	return optionFunc(func(p *Pool) { p.loc = loc })
}

// WithPanicHandler overrides the default panic handler (which is a
// no-op; a silently dropped panic is preferable to crashing the whole
// Pool's run loop).
func WithPanicHandler(h PanicHandler) Option {
	return optionFunc(func(p *Pool) {
		if h != nil {
			p.panicHandler = h
		}
	})
}

// WithWorkers sets how many goroutines execute due jobs concurrently.
// Defaults to 1.
func WithWorkers(n int) Option {
	return optionFunc(func(p *Pool) { p.workerCount = n })
}
