package transfer

import (
	"sync"

	"github.com/sirupsen/logrus"
)

// Queue is a fixed-size worker pool for transfer execution units. Each task's
// run occupies one worker for its full duration; cleanup units are ordered
// after the run they belong to via SubmitAfter.
type Queue struct {
	tasks chan func()
	wg    sync.WaitGroup

	mu     sync.Mutex
	closed bool
}

// NewQueue creates a queue with the given number of workers. Workers below 1
// are clamped to 1.
func NewQueue(workers int) *Queue {
	if workers < 1 {
		workers = 1
	}

	q := &Queue{tasks: make(chan func(), workers*2)}
	for i := 0; i < workers; i++ {
		q.wg.Add(1)
		go q.worker()
	}

	logrus.WithFields(logrus.Fields{
		"function": "NewQueue",
		"workers":  workers,
	}).Debug("Transfer queue started")

	return q
}

func (q *Queue) worker() {
	defer q.wg.Done()
	for fn := range q.tasks {
		fn()
	}
}

// Submit enqueues fn for execution on a worker. Blocks while all workers are
// busy and the backlog is full. The lock is held across the send so Submit
// can never race Close onto a closed channel.
func (q *Queue) Submit(fn func()) error {
	q.mu.Lock()
	defer q.mu.Unlock()
	if q.closed {
		return ErrQueueClosed
	}
	q.tasks <- fn
	return nil
}

// SubmitAfter enqueues fn once dep is closed, so fn runs strictly after the
// unit that owns dep has finished. The wait happens off-worker; no worker is
// held while dep is still open.
func (q *Queue) SubmitAfter(dep <-chan struct{}, fn func()) {
	go func() {
		<-dep
		if err := q.Submit(fn); err != nil {
			// Queue shut down while the dependency was still running;
			// run inline so the unit is never lost.
			fn()
		}
	}()
}

// Close stops accepting work and waits for in-flight units to finish.
func (q *Queue) Close() {
	q.mu.Lock()
	if q.closed {
		q.mu.Unlock()
		return
	}
	q.closed = true
	q.mu.Unlock()

	close(q.tasks)
	q.wg.Wait()
}
