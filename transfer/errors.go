package transfer

import "errors"

// Terminal failure kinds surfaced through Delegate.TransferFailed. Each maps
// to a distinct stage of the transfer; callers match with errors.Is to decide
// between retrying (connection, transient write failures) and surfacing
// permanently (missing local file, wrong remote target type).
var (
	// ErrCancelled is delivered when a run terminates because Cancel was
	// requested before or during execution.
	ErrCancelled = errors.New("transfer cancelled")

	// ErrConnectionFailed indicates the remote share could not be reached.
	ErrConnectionFailed = errors.New("connection failed")

	// ErrFileNotFound indicates the local source could not be opened for
	// reading. No remote side effects have occurred.
	ErrFileNotFound = errors.New("file not found")

	// ErrServerNotFound indicates the remote host could not be resolved.
	// Reserved for session-level flows; the upload path itself reports
	// ErrConnectionFailed.
	ErrServerNotFound = errors.New("server not found")

	// ErrDirectoryDownloaded indicates the remote target was a directory
	// where a regular file was expected. Reserved for the download flow.
	ErrDirectoryDownloaded = errors.New("remote target is a directory")

	// ErrUploadFailed indicates a remote open, seek, write, or publish
	// rename failed mid-transfer. The partial file remains under the
	// temporary name so a future run can resume.
	ErrUploadFailed = errors.New("upload failed")
)

// ErrQueueClosed is returned by Queue.Submit after Close.
var ErrQueueClosed = errors.New("task queue closed")
