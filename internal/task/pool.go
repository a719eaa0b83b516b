// Package task runs cron-scheduled jobs: a heap-ordered timer loop
// triggers each job at its pattern's next occurrence and hands it off
// to a small worker pool, following cnotch-scheduler's
// scheduler/jobqueue/job/options split (timer + heap) combined with
// original_source's scheduler.rs Running/Paused/Stopped state machine
// and threadpool.rs worker dispatch.
package task

import (
	"container/heap"
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/hzerrad/cronic/internal/cronx"
)

// State is a Pool's run state.
type State int32

const (
	StateRunning State = iota
	StatePaused
	StateStopped
)

// pausePollInterval bounds how long a paused Pool sleeps before
// re-checking its state, so Resume takes effect promptly without
// busy-looping while paused.
const pausePollInterval = 250 * time.Millisecond

// Pool runs Jobs against cronx Patterns on a single background
// goroutine that dispatches due jobs to a fixed-size worker pool.
type Pool struct {
	engine *cronx.OccurrenceEngine
	loc    *time.Location

	workerCount int
	workers     *workerPool

	panicHandler PanicHandler

	add    chan *ScheduledJob
	remove chan *ScheduledJob

	ctx    context.Context
	cancel context.CancelFunc

	state      int32 // State, accessed atomically
	terminated int32
	count      int64
}

// New builds a Pool that resolves occurrences with engine and starts
// its run loop immediately, in StateRunning.
func New(engine *cronx.OccurrenceEngine, opts ...Option) *Pool {
	p := &Pool{
		engine:      engine,
		loc:         time.Local,
		workerCount: 1,
		add:         make(chan *ScheduledJob),
		remove:      make(chan *ScheduledJob),
		state:       int32(StateRunning),
	}
	for _, o := range opts {
		o.apply(p)
	}
	if p.ctx == nil {
		p.ctx, p.cancel = context.WithCancel(context.Background())
	}
	if p.panicHandler == nil {
		p.panicHandler = func(interface{}, interface{}) {}
	}

	p.workers = newWorkerPool(p.workerCount)
	go p.run()
	return p
}

// Schedule registers job to run at every occurrence of pattern,
// tagged for later identification (e.g. in a PanicHandler or Cancel
// caller). It returns an error if the Pool has already stopped or if
// pattern has no remaining occurrence within the engine's horizon.
func (p *Pool) Schedule(tag interface{}, pattern *cronx.Pattern, job Job) (sj *ScheduledJob, err error) {
	defer func() {
		if r := recover(); r != nil {
			sj, err = nil, errors.New("task: pool is stopped")
		}
	}()

	if p.ctx.Err() != nil {
		return nil, errors.New("task: pool is stopped")
	}

	next, err := p.engine.FindNext(pattern, p.now(), true)
	if err != nil {
		return nil, err
	}

	j := &ScheduledJob{tag: tag, pattern: pattern, job: job, remove: p.remove, next: next}
	p.add <- j
	return j, nil
}

// ScheduleFunc is Schedule for a plain function.
func (p *Pool) ScheduleFunc(tag interface{}, pattern *cronx.Pattern, f func()) (*ScheduledJob, error) {
	return p.Schedule(tag, pattern, JobFunc(f))
}

// Pause stops new jobs from being launched without discarding the
// queue: due jobs simply wait until Resume.
func (p *Pool) Pause() { atomic.StoreInt32(&p.state, int32(StatePaused)) }

// Resume undoes Pause.
func (p *Pool) Resume() { atomic.StoreInt32(&p.state, int32(StateRunning)) }

// State reports the Pool's current run state.
func (p *Pool) State() State { return State(atomic.LoadInt32(&p.state)) }

// Stop ends the run loop; in-flight jobs are not waited for.
func (p *Pool) Stop() {
	atomic.StoreInt32(&p.state, int32(StateStopped))
	p.cancel()
}

// StopAndWait stops the run loop and blocks until every in-flight job
// finishes and the worker pool has drained.
func (p *Pool) StopAndWait() {
	p.Stop()
	for !p.Terminated() {
		time.Sleep(time.Millisecond)
	}
	p.workers.shutdown()
}

// Terminated reports whether the run loop has exited.
func (p *Pool) Terminated() bool { return atomic.LoadInt32(&p.terminated) != 0 }

// Count returns the number of currently scheduled jobs.
func (p *Pool) Count() int { return int(atomic.LoadInt64(&p.count)) }

func (p *Pool) now() time.Time { return time.Now().In(p.loc) }

func (p *Pool) run() {
	jobs := make(jobQueue, 0, 16)
	for {
		atomic.StoreInt64(&p.count, int64(len(jobs)))

		timer := time.NewTimer(p.nextWait(jobs))

		select {
		case <-p.ctx.Done():
			timer.Stop()
			atomic.StoreInt32(&p.terminated, 1)
			atomic.StoreInt64(&p.count, 0)
			close(p.add)
			close(p.remove)
			return

		case now := <-timer.C:
			if State(atomic.LoadInt32(&p.state)) == StateRunning {
				p.runDueJobs(now.In(p.loc), &jobs)
			}

		case newJob := <-p.add:
			timer.Stop()
			heap.Push(&jobs, newJob)

		case removeJob := <-p.remove:
			timer.Stop()
			p.cancelJob(removeJob, &jobs)
		}
	}
}

func (p *Pool) cancelJob(removeJob *ScheduledJob, jobs *jobQueue) {
	if removeJob.index < 0 || removeJob.index >= len(*jobs) {
		return
	}
	if removeJob == (*jobs)[removeJob.index] {
		heap.Remove(jobs, removeJob.index)
	}
}

func (p *Pool) nextWait(jobs jobQueue) time.Duration {
	if State(atomic.LoadInt32(&p.state)) != StateRunning {
		return pausePollInterval
	}
	if len(jobs) == 0 {
		return 24 * time.Hour
	}
	d := jobs[0].next.Sub(p.now())
	if d < 0 {
		d = 0
	}
	return d
}

func (p *Pool) runDueJobs(now time.Time, jobs *jobQueue) {
	for len(*jobs) > 0 {
		j := (*jobs)[0]
		if j.next.After(now) {
			return
		}

		p.workers.execute(p.safeRun(j))

		next, err := p.engine.FindNext(j.pattern, j.next, false)
		if err != nil {
			heap.Pop(jobs)
			continue
		}
		jobs.updateNext(j, next)
	}
}

func (p *Pool) safeRun(j *ScheduledJob) func() {
	return func() {
		defer func() {
			if r := recover(); r != nil {
				p.panicHandler(j.tag, r)
			}
		}()
		j.job.Run()
	}
}
