package smb

import "errors"

// Sentinel errors returned by Channel, Tree, and File implementations.
// Callers match with errors.Is; implementations wrap these with context.
var (
	// ErrConnectionFailed indicates the share could not be reached or attached.
	ErrConnectionFailed = errors.New("connection to share failed")

	// ErrNotFound indicates the addressed remote file does not exist.
	ErrNotFound = errors.New("remote file not found")

	// ErrIsDirectory indicates the addressed remote path is a directory
	// where a regular file was expected.
	ErrIsDirectory = errors.New("remote path is a directory")

	// ErrOpenFailed indicates the remote file could not be opened.
	ErrOpenFailed = errors.New("remote open failed")

	// ErrSeekFailed indicates the remote cursor could not be positioned.
	ErrSeekFailed = errors.New("remote seek failed")

	// ErrMoveFailed indicates a rename within the share failed.
	ErrMoveFailed = errors.New("remote move failed")

	// ErrDeleteFailed indicates a remote delete failed.
	ErrDeleteFailed = errors.New("remote delete failed")
)
