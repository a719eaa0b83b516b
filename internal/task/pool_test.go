package task

import (
	"sync/atomic"
	"testing"
	"time"

	"github.com/hzerrad/cronic/internal/cronx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func everySecondPattern(t *testing.T) *cronx.Pattern {
	t.Helper()
	pattern, err := cronx.NewParser(cronx.WithSeconds(cronx.Required)).Parse("* * * * * *")
	require.NoError(t, err)
	return pattern
}

func TestPool_RunsScheduledJob(t *testing.T) {
	pool := New(cronx.NewDefaultOccurrenceEngine(), WithWorkers(2))
	defer pool.StopAndWait()

	var runs int64
	_, err := pool.ScheduleFunc("tick", everySecondPattern(t), func() {
		atomic.AddInt64(&runs, 1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&runs) >= 2
	}, 3*time.Second, 20*time.Millisecond)
}

func TestPool_PauseStopsExecutionUntilResume(t *testing.T) {
	pool := New(cronx.NewDefaultOccurrenceEngine(), WithWorkers(1))
	defer pool.StopAndWait()

	var runs int64
	_, err := pool.ScheduleFunc("tick", everySecondPattern(t), func() {
		atomic.AddInt64(&runs, 1)
	})
	require.NoError(t, err)

	require.Eventually(t, func() bool { return atomic.LoadInt64(&runs) >= 1 }, 2*time.Second, 10*time.Millisecond)

	pool.Pause()
	assert.Equal(t, StatePaused, pool.State())
	paused := atomic.LoadInt64(&runs)
	time.Sleep(600 * time.Millisecond)
	assert.Equal(t, paused, atomic.LoadInt64(&runs), "no jobs should run while paused")

	pool.Resume()
	assert.Equal(t, StateRunning, pool.State())
	require.Eventually(t, func() bool {
		return atomic.LoadInt64(&runs) > paused
	}, 2*time.Second, 10*time.Millisecond)
}

func TestScheduledJob_CancelRemovesFromQueue(t *testing.T) {
	pool := New(cronx.NewDefaultOccurrenceEngine(), WithWorkers(1))
	defer pool.StopAndWait()

	var runs int64
	job, err := pool.ScheduleFunc("tick", everySecondPattern(t), func() {
		atomic.AddInt64(&runs, 1)
	})
	require.NoError(t, err)

	job.Cancel()
	require.Eventually(t, func() bool { return pool.Count() == 0 }, time.Second, 10*time.Millisecond)

	snapshot := atomic.LoadInt64(&runs)
	time.Sleep(300 * time.Millisecond)
	assert.Equal(t, snapshot, atomic.LoadInt64(&runs))
}

func TestPool_PanicHandlerReceivesRecoveredValue(t *testing.T) {
	var caught interface{}
	var mu atomicFlag

	pool := New(cronx.NewDefaultOccurrenceEngine(), WithWorkers(1), WithPanicHandler(func(tag, r interface{}) {
		caught = r
		mu.set()
	}))
	defer pool.StopAndWait()

	_, err := pool.ScheduleFunc("boom", everySecondPattern(t), func() {
		panic("kaboom")
	})
	require.NoError(t, err)

	require.Eventually(t, mu.isSet, 2*time.Second, 10*time.Millisecond)
	assert.Equal(t, "kaboom", caught)
}

func TestPool_StopPreventsFurtherScheduling(t *testing.T) {
	pool := New(cronx.NewDefaultOccurrenceEngine())
	pool.StopAndWait()

	_, err := pool.ScheduleFunc("late", everySecondPattern(t), func() {})
	assert.Error(t, err)
}

// atomicFlag is a tiny test helper for a bool set exactly once across
// goroutines without pulling in a mutex per call site.
type atomicFlag struct{ v int32 }

func (f *atomicFlag) set()          { atomic.StoreInt32(&f.v, 1) }
func (f *atomicFlag) isSet() bool   { return atomic.LoadInt32(&f.v) != 0 }
