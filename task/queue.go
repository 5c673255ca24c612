package task

import (
	"fmt"

	"github.com/gogpu/glitz/driver"
	"github.com/gogpu/glitz/state"
)

// Job is a suspended unit of work in a [FencedQueue]. It reports whether it
// finished; an unfinished job is fenced again.
type Job func(conn *state.Connection) (finished bool)

// fencedJob waits on fence. A zero fence means inserting the fence failed;
// Run retries it before the job can be progressed.
type fencedJob struct {
	fence driver.FenceID
	job   Job
}

// FencedQueue holds jobs waiting on GPU fences.
//
// Fences signal in insertion order, so [FencedQueue.Run] stops at the first
// job whose fence has not signaled: no later job can be ready. A FencedQueue
// is not safe for concurrent use.
type FencedQueue struct {
	jobs []fencedJob
}

// Push inserts a fence after the commands issued so far and queues job
// behind it. If the fence cannot be inserted the job is queued anyway and
// the error returned; Run inserts the fence once the driver accepts it.
func (q *FencedQueue) Push(conn *state.Connection, job Job) error {
	fence, err := conn.Device().FenceSync()
	if err != nil {
		q.jobs = append(q.jobs, fencedJob{job: job})
		return fmt.Errorf("task: insert fence: %w", err)
	}
	q.jobs = append(q.jobs, fencedJob{fence: fence, job: job})
	return nil
}

// Len returns the number of queued jobs.
func (q *FencedQueue) Len() int { return len(q.jobs) }

// Run progresses queued jobs in FIFO order until it reaches one whose fence
// has not signaled. Jobs that report they are unfinished are fenced again at
// the back of the queue. Run returns the number of jobs progressed.
func (q *FencedQueue) Run(conn *state.Connection) (int, error) {
	dev := conn.Device()
	// Jobs re-queued during this run wait for their new fence.
	pending := len(q.jobs)
	progressed := 0
	for progressed < pending {
		head := q.jobs[0]
		if head.fence == driver.InvalidID {
			fence, err := dev.FenceSync()
			if err != nil {
				return progressed, fmt.Errorf("task: insert fence: %w", err)
			}
			q.jobs[0].fence = fence
			break
		}
		if !dev.IsSignaled(head.fence) {
			break
		}
		q.jobs[0] = fencedJob{}
		q.jobs = q.jobs[1:]
		dev.DeleteSync(head.fence)
		progressed++

		if head.job(conn) {
			continue
		}
		if err := q.Push(conn, head.job); err != nil {
			return progressed, err
		}
	}
	if progressed > 0 {
		slogger().Debug("task: fenced jobs progressed", "context", conn.ID(), "progressed", progressed, "queued", len(q.jobs))
	}
	return progressed, nil
}
