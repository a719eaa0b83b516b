package task

import (
	"time"

	"github.com/hzerrad/cronic/internal/cronx"
)

// Job is executed by a Pool when its Pattern's next occurrence
// arrives, following cnotch-scheduler's Job/JobFunc split.
type Job interface {
	Run()
}

// JobFunc adapts an ordinary function to the Job interface.
type JobFunc func()

// Run invokes the wrapped function.
func (f JobFunc) Run() { f() }

// ScheduledJob is the handle a caller holds for a job registered with
// a Pool: it exposes the job's tag and lets the caller cancel it.
type ScheduledJob struct {
	index int // position in the Pool's jobQueue heap

	tag     interface{}
	pattern *cronx.Pattern
	job     Job
	remove  chan *ScheduledJob

	next time.Time
}

// Cancel removes the job from its Pool. Safe to call after the Pool
// has already stopped; Cancel is then a no-op.
func (s *ScheduledJob) Cancel() {
	defer func() { recover() }()
	s.remove <- s
}

// Tag returns the tag supplied to Pool.Schedule.
func (s *ScheduledJob) Tag() interface{} { return s.tag }

// Next returns the job's next scheduled trigger time.
func (s *ScheduledJob) Next() time.Time { return s.next }
