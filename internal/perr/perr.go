// Package perr defines the core's error taxonomy: invalid input,
// numeric overflow, resource exhaustion, corrupt backup files and
// internal invariant violations. Every error returned across the
// public API wraps one of these sentinels via pkg/errors so callers
// can classify failures with errors.Is while still getting a wrapped
// message chain for diagnostics.
package perr

import "github.com/pkg/errors"

// Sentinel errors, one per taxonomy class (spec's error handling
// section).
var (
	ErrInvalidInput       = errors.New("invalid input")
	ErrOverflow           = errors.New("numeric overflow")
	ErrResourceExhaustion = errors.New("resource exhaustion")
	ErrCorruptBackup      = errors.New("corrupt backup file")
	ErrInternalInvariant  = errors.New("internal invariant violation")
)

// InvalidInput wraps ErrInvalidInput with context, e.g. a negative or
// out-of-range argument to a public API call.
func InvalidInput(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInvalidInput, format, args...)
}

// Overflow wraps ErrOverflow, raised when a computation would exceed
// the 128-bit range this package supports.
func Overflow(format string, args ...interface{}) error {
	return errors.Wrapf(ErrOverflow, format, args...)
}

// ResourceExhaustion wraps ErrResourceExhaustion, raised when a
// requested computation's memory or thread budget cannot be met.
func ResourceExhaustion(format string, args ...interface{}) error {
	return errors.Wrapf(ErrResourceExhaustion, format, args...)
}

// CorruptBackup wraps ErrCorruptBackup, raised when a resume file
// fails to parse or its checksum/shape is inconsistent.
func CorruptBackup(format string, args ...interface{}) error {
	return errors.Wrapf(ErrCorruptBackup, format, args...)
}

// InternalInvariant wraps ErrInternalInvariant, raised when an
// assertion the algorithm depends on (e.g. a Fenwick tree count going
// negative) does not hold; this always indicates a bug rather than
// bad input.
func InternalInvariant(format string, args ...interface{}) error {
	return errors.Wrapf(ErrInternalInvariant, format, args...)
}
