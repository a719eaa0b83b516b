package task

import (
	"container/heap"
	"time"
)

// jobQueue is a min-heap of ScheduledJobs ordered by next trigger
// time, following cnotch-scheduler's jobQueue.
type jobQueue []*ScheduledJob

func (jobs jobQueue) Len() int { return len(jobs) }

func (jobs jobQueue) Less(i, j int) bool {
	return jobs[i].next.Before(jobs[j].next)
}

func (jobs jobQueue) Swap(i, j int) {
	jobs[i], jobs[j] = jobs[j], jobs[i]
	jobs[i].index = i
	jobs[j].index = j
}

func (jobs *jobQueue) Push(x interface{}) {
	n := len(*jobs)
	job := x.(*ScheduledJob)
	job.index = n
	*jobs = append(*jobs, job)
}

func (jobs *jobQueue) Pop() interface{} {
	old := *jobs
	n := len(old)
	job := old[n-1]
	old[n-1] = nil
	job.index = -1
	*jobs = old[:n-1]
	return job
}

func (jobs *jobQueue) updateNext(job *ScheduledJob, next time.Time) {
	job.next = next
	heap.Fix(jobs, job.index)
}
