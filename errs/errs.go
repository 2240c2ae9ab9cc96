// Package errs defines the sentinel and structured error types shared across
// the segy module's packages.
//
// Simple, parameter-free conditions are exposed as sentinel errors so callers
// can compare with errors.Is. Conditions that carry diagnostic payloads
// (offending indices, expected vs. actual byte counts, ...) are exposed as
// structured types implementing error, so callers can recover the payload
// with errors.As. All errors returned by this module wrap with %w so both
// styles compose through layered calls.
package errs

import "fmt"

// Sentinel errors for conditions that carry no useful payload beyond their
// identity.
var (
	// ErrBadSlice is returned when a slice selector has a zero step.
	ErrBadSlice = fmt.Errorf("segy: slice step must not be zero")

	// ErrSchemaOverlap is returned when two structured fields occupy
	// overlapping byte ranges.
	ErrSchemaOverlap = fmt.Errorf("segy: structured fields overlap")

	// ErrSchemaOversize is returned when a field's span exceeds its parent's
	// declared item size.
	ErrSchemaOversize = fmt.Errorf("segy: field exceeds declared item size")

	// ErrDuplicateFieldName is returned when a structured descriptor is built
	// with two fields sharing the same name.
	ErrDuplicateFieldName = fmt.Errorf("segy: duplicate field name")

	// ErrCancelled is returned when the caller's context is cancelled while a
	// range-fetch operation is outstanding.
	ErrCancelled = fmt.Errorf("segy: operation cancelled")

	// ErrInvalidHeaderSize is returned when a fixed-size header buffer does
	// not match its declared size.
	ErrInvalidHeaderSize = fmt.Errorf("segy: invalid header buffer size")

	// ErrNoRevisionField is returned when auto-detecting the SEG-Y revision
	// from a Rev0 binary header, which carries no revision field.
	ErrNoRevisionField = fmt.Errorf("segy: binary header has no revision field, standard must be specified explicitly")
)

// TransportErrorKind classifies a failure surfaced by the range-fetch
// collaborator (see package rangefetch).
type TransportErrorKind uint8

const (
	// TransportNotFound indicates the remote object does not exist.
	TransportNotFound TransportErrorKind = iota + 1
	// TransportPermissionDenied indicates the caller lacks access.
	TransportPermissionDenied
	// TransportFailure indicates a generic transport failure; Retriable
	// on the enclosing TransportError distinguishes retriable from fatal.
	TransportFailure
)

func (k TransportErrorKind) String() string {
	switch k {
	case TransportNotFound:
		return "not_found"
	case TransportPermissionDenied:
		return "permission_denied"
	case TransportFailure:
		return "transport_failure"
	default:
		return "unknown"
	}
}

// OutOfBoundsError is returned when one or more requested trace indices fall
// outside [0, Max).
type OutOfBoundsError struct {
	Indices []int
	Max     int
}

func (e *OutOfBoundsError) Error() string {
	return fmt.Sprintf("segy: indices %v out of bounds, valid range is [0, %d)", e.Indices, e.Max)
}

// UnknownStandardError is returned by the registry when asked for a SEG-Y
// standard it has no descriptor for.
type UnknownStandardError struct {
	Standard fmt.Stringer
}

func (e *UnknownStandardError) Error() string {
	return fmt.Sprintf("segy: unknown or unregistered SEG-Y standard: %s", e.Standard)
}

// DecodeError reports a failure to decode a specific field from raw bytes.
type DecodeError struct {
	Field string
	Cause error
}

func (e *DecodeError) Error() string {
	return fmt.Sprintf("segy: failed to decode field %q: %v", e.Field, e.Cause)
}

func (e *DecodeError) Unwrap() error { return e.Cause }

// MisalignedFileError is an advisory, non-fatal error: the file's trace
// region size is not an exact multiple of the trace stride.
type MisalignedFileError struct {
	Remainder int64
}

func (e *MisalignedFileError) Error() string {
	return fmt.Sprintf("segy: trace region is misaligned, %d trailing bytes do not form a complete trace", e.Remainder)
}

// Warning marks MisalignedFileError as advisory: the reader can proceed, but
// the condition should be surfaced to the caller.
func (e *MisalignedFileError) Warning() bool { return true }

// ExtTextHeaderCountMismatchError is an advisory error raised when the
// binary header's declared extended-text-header count disagrees with the
// count implied by the file's actual layout.
type ExtTextHeaderCountMismatchError struct {
	Declared int
	Implied  int
}

func (e *ExtTextHeaderCountMismatchError) Error() string {
	return fmt.Sprintf("segy: binary header declares %d extended text headers, file layout implies %d", e.Declared, e.Implied)
}

func (e *ExtTextHeaderCountMismatchError) Warning() bool { return true }

// TransportError wraps a failure reported by the range-fetch collaborator.
type TransportError struct {
	Kind      TransportErrorKind
	Retriable bool
	Cause     error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("segy: transport error (%s, retriable=%t): %v", e.Kind, e.Retriable, e.Cause)
}

func (e *TransportError) Unwrap() error { return e.Cause }

// TruncatedBufferError is returned when a range-fetch call returns fewer
// bytes than the requested range's length.
type TruncatedBufferError struct {
	Expected int
	Actual   int
}

func (e *TruncatedBufferError) Error() string {
	return fmt.Sprintf("segy: truncated buffer, expected %d bytes, got %d", e.Expected, e.Actual)
}
