package transfer

// TaskState represents the lifecycle state of a transfer task.
type TaskState uint8

const (
	// StateIdle indicates the task has been constructed but not yet executed.
	StateIdle TaskState = iota
	// StateRunning indicates the task's execution unit is in progress.
	StateRunning
	// StateCompleted indicates every byte was written and, where applicable,
	// the atomic rename succeeded. Terminal.
	StateCompleted
	// StateCancelled indicates cancellation was requested before or during
	// execution. Terminal.
	StateCancelled
	// StateFailed indicates an unrecoverable I/O, connection, or protocol
	// error. Terminal.
	StateFailed
)

// String returns a human-readable name for the state.
func (s TaskState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateCompleted:
		return "completed"
	case StateCancelled:
		return "cancelled"
	case StateFailed:
		return "failed"
	default:
		return "unknown"
	}
}

// Terminal reports whether no further transition is legal out of s.
func (s TaskState) Terminal() bool {
	switch s {
	case StateCompleted, StateCancelled, StateFailed:
		return true
	default:
		return false
	}
}
