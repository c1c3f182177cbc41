package transfer

import (
	"errors"
	"fmt"
	"io"
	"os"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/opd-ai/smbshare/limits"
	"github.com/opd-ai/smbshare/smb"
)

// UploadTask moves one local file to a remote share in fixed-size chunks,
// with optional resume of a previously interrupted run and atomic publish of
// the finished file via a temporary-name rename.
//
// A task runs at most once. Construct it with NewUploadTask, submit it with
// Start, and observe it through its Delegate; after a terminal callback the
// task holds no resources beyond its state flag.
type UploadTask struct {
	id         uuid.UUID
	channel    smb.Channel
	dest       smb.Path
	fileName   string
	tempSuffix string
	sourcePath string

	mu              sync.Mutex
	state           TaskState
	cancelRequested bool
	started         bool
	remoteRef       *smb.Ref
	sent            int64
	total           int64
	lastChunkTime   time.Time
	speed           float64 // bytes per second, exponential moving average

	delegate     Delegate
	notifier     *notifier
	queue        *Queue
	execDone     chan struct{}
	timeProvider TimeProvider
}

// Option configures an UploadTask at construction time.
type Option func(*UploadTask)

// WithTempSuffix stages the upload under fileName+suffix and renames it to
// fileName only after every byte has been written. Without a suffix the file
// is written directly under its final name and resume is disabled, since a
// finished file cannot be told apart from a partial one.
func WithTempSuffix(suffix string) Option {
	return func(t *UploadTask) { t.tempSuffix = suffix }
}

// WithDelegate sets the observer receiving progress and terminal callbacks.
func WithDelegate(d Delegate) Option {
	return func(t *UploadTask) { t.delegate = d }
}

// WithQueue submits the task's execution and cleanup units to q instead of
// dedicated goroutines.
func WithQueue(q *Queue) Option {
	return func(t *UploadTask) { t.queue = q }
}

// WithTimeProvider sets a custom time provider for deterministic testing.
func WithTimeProvider(tp TimeProvider) Option {
	return func(t *UploadTask) { t.timeProvider = tp }
}

// NewUploadTask creates an upload task bound to a local source file and a
// remote destination. Nothing is opened or connected until Start.
func NewUploadTask(channel smb.Channel, dest smb.Path, fileName, sourcePath string, opts ...Option) *UploadTask {
	t := &UploadTask{
		id:           uuid.New(),
		channel:      channel,
		dest:         dest,
		fileName:     fileName,
		sourcePath:   sourcePath,
		state:        StateIdle,
		notifier:     newNotifier(),
		execDone:     make(chan struct{}),
		timeProvider: defaultTimeProvider,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.lastChunkTime = t.timeProvider.Now()

	logrus.WithFields(logrus.Fields{
		"function":    "NewUploadTask",
		"task_id":     t.id,
		"destination": dest.String(),
		"file_name":   fileName,
		"source":      sourcePath,
		"temp_suffix": t.tempSuffix,
	}).Info("Upload task created")

	return t
}

// ID returns the task's unique identifier.
func (t *UploadTask) ID() uuid.UUID { return t.id }

// FileName returns the final remote file name.
func (t *UploadTask) FileName() string { return t.fileName }

// State returns the task's current lifecycle state.
func (t *UploadTask) State() TaskState {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.state
}

// Progress returns the cumulative bytes sent and the total expected for the
// current run. Both are zero before the run has sized the source.
func (t *UploadTask) Progress() (sent, total int64) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.sent, t.total
}

// RemoteRef returns the resolved remote file identity, or nil if the run has
// not addressed the target yet. The ref is resolved at most once per run and
// never changes afterwards.
func (t *UploadTask) RemoteRef() *smb.Ref {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.remoteRef
}

// Speed returns the current transfer speed in bytes per second.
func (t *UploadTask) Speed() float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.speed
}

// EstimatedTimeRemaining returns the projected time to finish the run at the
// current speed, or zero when the task is not running or the speed is unknown.
func (t *UploadTask) EstimatedTimeRemaining() time.Duration {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != StateRunning || t.speed <= 0 {
		return 0
	}
	remaining := float64(t.total-t.sent) / t.speed
	return time.Duration(remaining * float64(time.Second))
}

// Wait blocks until the terminal notification for this run has been
// delivered. Only meaningful after Start or Cancel.
func (t *UploadTask) Wait() {
	t.notifier.wait()
}

// Start submits the task's execution unit. A task can be started at most
// once; the work runs on the configured queue, or on a dedicated goroutine
// when no queue is set.
func (t *UploadTask) Start() error {
	t.mu.Lock()
	if t.started {
		t.mu.Unlock()
		return errors.New("task already started")
	}
	if t.state.Terminal() {
		st := t.state
		t.mu.Unlock()
		return fmt.Errorf("task already %s", st)
	}
	t.started = true
	q := t.queue
	t.mu.Unlock()

	if q != nil {
		return q.Submit(t.run)
	}
	go t.run()
	return nil
}

// Cancel requests cooperative cancellation. It is a no-op once the task is in
// a terminal state. For a running task the state flips to StateCancelled
// immediately, the execution loop stops at its next check point, and a
// cleanup unit — ordered strictly after the execution unit — best-effort
// deletes the temporary and final remote names before delivering the terminal
// notification.
func (t *UploadTask) Cancel() {
	t.mu.Lock()
	if t.state.Terminal() {
		t.mu.Unlock()
		return
	}
	t.cancelRequested = true
	prev := t.state
	started := t.started
	t.state = StateCancelled
	t.mu.Unlock()

	logrus.WithFields(logrus.Fields{
		"function":   "Cancel",
		"task_id":    t.id,
		"prev_state": prev,
	}).Info("Upload cancellation requested")

	switch {
	case prev == StateRunning:
		t.scheduleCleanup()
	case !started:
		// Never submitted, and Start now refuses terminal tasks: deliver
		// the terminal notification directly.
		t.notifyFailure(ErrCancelled)
	}
	// A submitted but not yet running task observes the request at the top
	// of its run and terminates without any remote work.
}

func (t *UploadTask) cancelled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.cancelRequested
}

// transition atomically moves state from -> to, reporting whether it applied.
// The task's state is mutated from exactly two call sites, the execution unit
// and Cancel; both go through the same mutex so a cancellation can never be
// lost to a racing completion.
func (t *UploadTask) transition(from, to TaskState) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	if t.state != from {
		return false
	}
	t.state = to
	return true
}

// run is the task's execution unit: connect, resolve, resume, chunk loop,
// publish. All failures are translated to the package taxonomy and delivered
// through the delegate; nothing propagates past the task boundary.
func (t *UploadTask) run() {
	defer close(t.execDone)

	if !t.transition(StateIdle, StateRunning) {
		// Cancelled before the run was scheduled; no remote work happened
		// and none is attempted.
		t.notifyFailure(ErrCancelled)
		return
	}

	src, err := os.Open(t.sourcePath)
	if err != nil {
		t.fail(ErrFileNotFound, err)
		return
	}
	defer src.Close()

	if t.cancelled() {
		// Cancel has already scheduled the cleanup unit, which delivers
		// the terminal notification after this unit finishes.
		return
	}

	tree, err := t.channel.Connect(t.dest.Share)
	if err != nil {
		t.fail(ErrConnectionFailed, err)
		return
	}
	defer tree.Close()

	if err := smb.ValidateName(t.fileName); err != nil {
		t.fail(ErrUploadFailed, err)
		return
	}

	ref := smb.Ref{Share: t.dest.Share, Dir: t.dest.Dir, Name: t.fileName}
	t.mu.Lock()
	t.remoteRef = &ref
	t.mu.Unlock()

	finalPath := ref.Path()
	writePath := finalPath
	if t.tempSuffix != "" {
		writePath = t.dest.Join(t.fileName + t.tempSuffix)
	}

	fi, err := src.Stat()
	if err != nil {
		t.fail(ErrFileNotFound, err)
		return
	}
	total := fi.Size()

	// Resume check: only meaningful when staging under a temporary name.
	// A temp file larger than the source means the source changed since the
	// interrupted run; the resume state is discarded and the write restarts
	// from zero under create mode.
	var resume int64
	if t.tempSuffix != "" {
		if md, statErr := tree.Stat(writePath); statErr == nil && !md.Dir && md.Size <= total {
			resume = md.Size
		}
	}

	logrus.WithFields(logrus.Fields{
		"function":      "run",
		"task_id":       t.id,
		"remote":        ref.String(),
		"total_bytes":   total,
		"resume_offset": resume,
	}).Info("Upload started")

	mode := smb.AccessCreate
	if resume > 0 {
		mode = smb.AccessWrite
	}

	rf, err := tree.Open(writePath, mode)
	if err != nil {
		t.fail(ErrUploadFailed, err)
		return
	}

	if resume > 0 {
		pos, seekErr := rf.Seek(resume)
		if seekErr == nil && pos != resume {
			seekErr = fmt.Errorf("%w: seek positioned at %d, want %d", smb.ErrSeekFailed, pos, resume)
		}
		if seekErr == nil {
			_, seekErr = src.Seek(resume, io.SeekStart)
		}
		if seekErr != nil {
			// Inconsistent resume state. The partial file stays in place
			// for a future attempt.
			_ = rf.Close()
			t.fail(ErrUploadFailed, seekErr)
			return
		}
	}

	t.mu.Lock()
	t.sent = resume
	t.total = total
	t.mu.Unlock()

	// One fixed-size buffer per run, reused across every chunk.
	buf := make([]byte, limits.WriteChunkSize)
	sent := resume

	for sent < total {
		n := int64(len(buf))
		if remaining := total - sent; remaining < n {
			n = remaining
		}

		if _, rerr := io.ReadFull(src, buf[:n]); rerr != nil {
			_ = rf.Close()
			t.fail(ErrUploadFailed, rerr)
			return
		}

		w, werr := rf.Write(buf[:n])

		if t.cancelled() {
			// Stop at the chunk boundary; no progress is reported for this
			// chunk. Cleanup runs after this unit and deletes the partial
			// remote artifacts.
			_ = rf.Close()
			return
		}

		if werr != nil || int64(w) < n {
			if werr == nil {
				werr = fmt.Errorf("short write: %d of %d bytes", w, n)
			}
			// The partial file is left under the temporary name so a
			// future run can resume from it.
			_ = rf.Close()
			t.fail(ErrUploadFailed, werr)
			return
		}

		sent += int64(w)
		t.recordChunk(sent, int64(w))
	}

	_ = rf.Close()

	if t.cancelled() {
		return
	}

	if t.tempSuffix != "" {
		if moveErr := tree.Move(writePath, finalPath); moveErr != nil {
			t.fail(ErrUploadFailed, moveErr)
			return
		}
	}

	t.complete()
}

// recordChunk advances the cumulative counter, updates the speed estimate,
// and dispatches the progress notification asynchronously so the next
// chunk's read/write is never blocked by an observer.
func (t *UploadTask) recordChunk(sent, chunk int64) {
	t.mu.Lock()
	t.sent = sent
	now := t.timeProvider.Now()
	if elapsed := t.timeProvider.Since(t.lastChunkTime).Seconds(); elapsed > 0 {
		instant := float64(chunk) / elapsed
		if t.speed == 0 {
			t.speed = instant
		} else {
			t.speed = 0.7*t.speed + 0.3*instant
		}
	}
	t.lastChunkTime = now
	total := t.total
	d := t.delegate
	t.mu.Unlock()

	t.notifier.dispatch(func() {
		if d != nil {
			d.TransferProgress(t, sent, total)
		}
	})
}

// fail translates an error to the taxonomy, transitions to StateFailed, and
// delivers the terminal notification. A transition lost to a racing Cancel
// delivers nothing here; the cleanup unit owns the terminal in that case.
func (t *UploadTask) fail(kind, cause error) {
	if !t.transition(StateRunning, StateFailed) {
		return
	}

	err := kind
	if cause != nil && !errors.Is(cause, kind) {
		err = fmt.Errorf("%w: %v", kind, cause)
	}

	logrus.WithFields(logrus.Fields{
		"function": "fail",
		"task_id":  t.id,
		"error":    err.Error(),
	}).Error("Upload failed")

	t.notifyFailure(err)
}

func (t *UploadTask) complete() {
	if !t.transition(StateRunning, StateCompleted) {
		return
	}

	logrus.WithFields(logrus.Fields{
		"function": "complete",
		"task_id":  t.id,
		"remote":   t.RemoteRef().String(),
	}).Info("Upload completed")

	d := t.delegate
	t.notifier.dispatch(func() {
		if d != nil {
			d.TransferCompleted(t)
		}
	})
	t.notifier.close()
}

func (t *UploadTask) notifyFailure(err error) {
	d := t.delegate
	t.notifier.dispatch(func() {
		if d != nil {
			d.TransferFailed(t, err)
		}
	})
	t.notifier.close()
}

// scheduleCleanup orders a best-effort deletion of the temporary and final
// remote names strictly after the execution unit, so a delete can never
// overlap a live write. Deletion errors are ignored; the terminal
// notification is delivered once cleanup finishes.
func (t *UploadTask) scheduleCleanup() {
	cleanup := func() {
		logrus.WithFields(logrus.Fields{
			"function": "cleanup",
			"task_id":  t.id,
		}).Info("Cleaning up cancelled upload")

		if tree, err := t.channel.Connect(t.dest.Share); err == nil {
			// A publish cannot have happened for a cancelled run, but the
			// final name is deleted anyway in case one raced through.
			_ = tree.Delete(t.dest.Join(t.fileName))
			if t.tempSuffix != "" {
				_ = tree.Delete(t.dest.Join(t.fileName + t.tempSuffix))
			}
			_ = tree.Close()
		}

		t.notifyFailure(ErrCancelled)
	}

	if t.queue != nil {
		t.queue.SubmitAfter(t.execDone, cleanup)
		return
	}
	go func() {
		<-t.execDone
		cleanup()
	}()
}
