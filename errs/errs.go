// Package errs defines the small set of error classes the assembler
// surfaces to callers, per spec.md's error-handling design: every failure
// is one of InputFormat, DatasetEmpty, GraphInvariant, or Resource. Each
// class is a sentinel wrapped with github.com/pkg/errors context, so
// callers can classify with errors.Is while still getting a descriptive
// chain via Error().
package errs

import (
	"fmt"

	"github.com/pkg/errors"
)

// Sentinel classes. Wrap them with errors.Wrapf(ErrInputFormat, "...") so
// errors.Is(err, ErrInputFormat) still matches after wrapping.
var (
	// ErrInputFormat marks a malformed or unreadable sequence/overlap/group
	// input file.
	ErrInputFormat = errors.New("rala: input format error")

	// ErrDatasetEmpty marks the case where every read was filtered out
	// before assembly could produce anything (spec.md §7's "filtered all
	// sequences!" abort).
	ErrDatasetEmpty = errors.New("rala: dataset empty after filtering")

	// ErrGraphInvariant marks a violated internal invariant of the
	// assembly graph (e.g. a dangling edge reference) — a bug, not bad
	// input, so callers should treat it as fatal.
	ErrGraphInvariant = errors.New("rala: graph invariant violated")

	// ErrResource marks a failure to acquire an external resource (file
	// handle, memory, worker) unrelated to the input's validity.
	ErrResource = errors.New("rala: resource error")
)

// InputFormat wraps err as an ErrInputFormat with added context.
func InputFormat(err error, format string, args ...interface{}) error {
	return errors.Wrapf(joinCause(ErrInputFormat, err), format, args...)
}

// DatasetEmpty builds an ErrDatasetEmpty with added context.
func DatasetEmpty(format string, args ...interface{}) error {
	return errors.Wrapf(ErrDatasetEmpty, format, args...)
}

// GraphInvariant builds an ErrGraphInvariant with added context.
func GraphInvariant(format string, args ...interface{}) error {
	return errors.Wrapf(ErrGraphInvariant, format, args...)
}

// Resource wraps err as an ErrResource with added context.
func Resource(err error, format string, args ...interface{}) error {
	return errors.Wrapf(joinCause(ErrResource, err), format, args...)
}

// joinCause lets errors.Is still find sentinel even though errors.Wrapf
// only chains a single cause: when err is non-nil, both sentinel and err
// are chained with Go 1.20's multi-%w, so errors.Is matches the class and
// the underlying cause alike.
func joinCause(sentinel, err error) error {
	if err == nil {
		return sentinel
	}
	return fmt.Errorf("%w: %w", sentinel, err)
}
