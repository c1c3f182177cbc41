package smb

import "time"

// AccessMode selects how a remote file is opened for writing.
type AccessMode uint8

const (
	// AccessCreate opens the target as a new file, truncating any existing
	// content. Used when a transfer starts from offset zero.
	AccessCreate AccessMode = iota
	// AccessWrite opens an existing file for writing without truncation.
	// Used when a transfer resumes a partially written file.
	AccessWrite
)

// String returns a human-readable name for the access mode.
func (m AccessMode) String() string {
	switch m {
	case AccessCreate:
		return "create"
	case AccessWrite:
		return "write"
	default:
		return "unknown"
	}
}

// FileInfo describes a remote file as reported by Tree.Stat.
type FileInfo struct {
	Size    int64
	Dir     bool
	ModTime time.Time
}

// File is an open remote file handle. Write advances an internal cursor;
// Seek repositions it. All calls are synchronous and blocking.
type File interface {
	// Seek moves the write cursor to offset bytes from the start of the file
	// and returns the position actually reached. Callers must compare the
	// returned offset against the requested one; a mismatch means the remote
	// cursor state is inconsistent.
	Seek(offset int64) (int64, error)

	// Write sends len(p) bytes at the current cursor and returns the number
	// of bytes the server reports as written.
	Write(p []byte) (int, error)

	// Close releases the remote handle.
	Close() error
}

// Tree is a connected view of a single share. A Tree is exclusively owned by
// one task for the duration of a run and must not be shared across tasks.
type Tree interface {
	// Open opens the file at path under the given access mode.
	Open(path string, mode AccessMode) (File, error)

	// Stat reports metadata for the file at path. A missing file yields an
	// error satisfying errors.Is(err, ErrNotFound).
	Stat(path string) (FileInfo, error)

	// Move renames oldPath to newPath within the share. Existing files at
	// newPath are replaced, which is what makes publish-by-rename atomic
	// from the observer's point of view.
	Move(oldPath, newPath string) error

	// Delete removes the file at path.
	Delete(path string) error

	// Close disconnects this tree from the share.
	Close() error
}

// Channel is the session-layer capability the transfer core runs against.
// Implementations own wire framing, authentication, and negotiation; the
// core only issues the calls below.
type Channel interface {
	// Connect attaches to the named share and returns a Tree scoped to it.
	Connect(share string) (Tree, error)
}
