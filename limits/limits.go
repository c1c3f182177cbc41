// Package limits provides centralized transfer size limits for the smbshare client.
// This ensures consistent validation across different components of the system.
package limits

import (
	"errors"
	"fmt"
)

const (
	// WriteChunkSize is the fixed payload size for a single remote write (62 KiB).
	// This matches the largest write the channel's negotiated buffer can carry
	// and is never adapted to throughput at runtime.
	WriteChunkSize = 63488

	// MaxChunkSize is the maximum allowed chunk size for any channel write.
	// This prevents resource exhaustion from oversized buffers.
	MaxChunkSize = 65536

	// MaxFileNameLength is the maximum allowed remote file name length in bytes.
	// The value (255) matches typical filesystem limits and fits in a uint16.
	MaxFileNameLength = 255
)

var (
	// ErrNameEmpty indicates an empty file name was provided.
	ErrNameEmpty = errors.New("empty file name")

	// ErrNameTooLong indicates a file name exceeds MaxFileNameLength.
	ErrNameTooLong = errors.New("file name too long")

	// ErrChunkTooLarge indicates a chunk exceeds the maximum allowed size.
	ErrChunkTooLarge = errors.New("chunk size exceeds maximum allowed")
)

// ValidateFileName validates a remote file name against MaxFileNameLength.
// Returns an error with context if the name is empty or exceeds the limit.
func ValidateFileName(name string) error {
	if len(name) == 0 {
		return ErrNameEmpty
	}
	if len(name) > MaxFileNameLength {
		return fmt.Errorf("%w: length %d exceeds limit %d", ErrNameTooLong, len(name), MaxFileNameLength)
	}
	return nil
}

// ValidateChunkSize validates a write length against MaxChunkSize.
func ValidateChunkSize(n int) error {
	if n > MaxChunkSize {
		return fmt.Errorf("%w: size %d exceeds limit %d", ErrChunkTooLarge, n, MaxChunkSize)
	}
	return nil
}
