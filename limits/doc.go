// Package limits provides centralized size constants and validation functions
// for the smbshare transfer client. This package ensures consistent size
// enforcement across all components of the implementation.
//
// # Size Hierarchy
//
// The package defines a hierarchy of limits that support the stages of a
// chunked transfer:
//
//   - WriteChunkSize (63488 bytes): The fixed chunk size used for every remote
//     write. The transfer loop never grows or shrinks this based on throughput.
//
//   - MaxChunkSize (65536 bytes): The absolute maximum for any single channel
//     write. Buffers above this size are rejected before reaching the wire.
//
//   - MaxFileNameLength (255 bytes): The maximum remote file name length,
//     matching typical filesystem limits.
//
// # Validation Functions
//
// Each validation function returns a sentinel error wrapped with context:
//
//	err := limits.ValidateFileName(name)
//	if errors.Is(err, limits.ErrNameTooLong) {
//	    // reject before any remote work
//	}
//
// For write lengths, use ValidateChunkSize:
//
//	err := limits.ValidateChunkSize(len(buf))
//
// # Error Types
//
//   - ErrNameEmpty: Returned when an empty file name is provided
//   - ErrNameTooLong: Returned when a file name exceeds MaxFileNameLength
//   - ErrChunkTooLarge: Returned when a write exceeds MaxChunkSize
package limits
