// Package smb defines the remote-file channel surface the transfer core runs
// against: connect to a share, open a file for writing, seek, write, stat,
// move, and delete.
//
// # Overview
//
// The package deliberately contains no wire protocol. It models the
// session-layer capability as three small interfaces:
//
//   - [Channel]: attaches to a named share and yields a [Tree]
//   - [Tree]: a connected view of one share (open, stat, move, delete)
//   - [File]: an open remote file handle (seek, write, close)
//
// All calls are synchronous and blocking; a Tree and its Files are owned by
// exactly one task for the duration of one run.
//
// # Addressing
//
// Remote files are addressed by a [Path] (share + directory) and a name.
// Once a task has resolved its target it holds a [Ref], which is immutable
// for the rest of the run:
//
//	dest := smb.Path{Share: "public", Dir: "reports/2026"}
//	ref := smb.Ref{Share: dest.Share, Dir: dest.Dir, Name: "q3.pdf"}
//
// Names and directory paths are validated against directory traversal before
// any remote work:
//
//	if err := smb.ValidateName(name); err != nil {
//	    // err == smb.ErrDirectoryTraversal, limits.ErrNameTooLong, ...
//	}
//
// # Access Modes
//
// Open takes an [AccessMode] that distinguishes the two write paths the
// transfer core uses:
//
//   - [AccessCreate]: create a new file, truncating existing content
//   - [AccessWrite]: open an existing file without truncation, for resume
//
// A resumed file must never be truncated; the mode split makes that explicit
// at the interface boundary.
//
// # Error Taxonomy
//
// Implementations wrap the package sentinels so callers can match stages of
// failure with errors.Is:
//
//	ErrConnectionFailed  // Connect failed
//	ErrNotFound          // Stat on a missing file
//	ErrIsDirectory       // regular file expected
//	ErrOpenFailed        // Open failed
//	ErrSeekFailed        // Seek failed
//	ErrMoveFailed        // Move failed
//	ErrDeleteFailed      // Delete failed
//
// # Credentials
//
// [Credentials] and the NTLM helpers ([NTLMHash], [NTLMv2Hash]) provide the
// hashing primitive session implementations need for authentication. The
// transfer core itself never touches credentials.
package smb
