package transfer

import (
	"sync"
	"time"
)

// Delegate receives progress and terminal notifications for a task. The task
// never owns the delegate's lifetime; callbacks are delivered on the task's
// notifier goroutine, decoupled from the transfer loop, so a slow observer
// never stalls the next chunk.
type Delegate interface {
	// TransferProgress is called once per successfully written chunk with
	// the cumulative bytes sent and the total expected.
	TransferProgress(task *UploadTask, sent, expected int64)

	// TransferCompleted is called exactly once when a run reaches
	// StateCompleted, strictly after the last progress notification.
	TransferCompleted(task *UploadTask)

	// TransferFailed is called exactly once when a run terminates in
	// StateFailed or StateCancelled; err matches one of the package's
	// failure kinds via errors.Is.
	TransferFailed(task *UploadTask, err error)
}

// TimeProvider abstracts time operations for deterministic testing.
type TimeProvider interface {
	Now() time.Time
	Since(t time.Time) time.Duration
}

// DefaultTimeProvider uses the standard library time functions.
type DefaultTimeProvider struct{}

// Now returns the current time.
func (DefaultTimeProvider) Now() time.Time { return time.Now() }

// Since returns the duration since t.
func (DefaultTimeProvider) Since(t time.Time) time.Duration { return time.Since(t) }

// defaultTimeProvider is the package-level default time provider.
var defaultTimeProvider TimeProvider = DefaultTimeProvider{}

// notifier is a per-task serial dispatcher. Callbacks are appended to an
// unbounded FIFO and drained by a single goroutine, which gives two
// guarantees the transfer loop relies on: enqueueing never blocks, and
// callbacks are observed in submission order.
type notifier struct {
	mu      sync.Mutex
	cond    *sync.Cond
	pending []func()
	closed  bool
	done    chan struct{}
}

func newNotifier() *notifier {
	n := &notifier{done: make(chan struct{})}
	n.cond = sync.NewCond(&n.mu)
	go n.loop()
	return n
}

// dispatch enqueues fn for serial delivery. Calls after close are dropped;
// the terminal notification is always the last one enqueued.
func (n *notifier) dispatch(fn func()) {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.pending = append(n.pending, fn)
	n.cond.Signal()
}

// close stops the dispatcher after draining everything already enqueued.
// Idempotent.
func (n *notifier) close() {
	n.mu.Lock()
	defer n.mu.Unlock()
	if n.closed {
		return
	}
	n.closed = true
	n.cond.Signal()
}

// wait blocks until the dispatcher has delivered every enqueued callback.
func (n *notifier) wait() {
	<-n.done
}

func (n *notifier) loop() {
	defer close(n.done)
	for {
		n.mu.Lock()
		for len(n.pending) == 0 && !n.closed {
			n.cond.Wait()
		}
		if len(n.pending) == 0 && n.closed {
			n.mu.Unlock()
			return
		}
		fn := n.pending[0]
		n.pending = n.pending[1:]
		n.mu.Unlock()

		fn()
	}
}
