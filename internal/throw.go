package internal

import "github.com/pkg/errors"

// Threading errors up and down through hull walking and legalization would add
// a ton of noise to the hot loop. Instead, we panic with a TriangulateError,
// and the entry points recover to convert it back to an error.

var (
	// Malformed coordinate buffer. Always fatal.
	ErrInvalidInput = errors.New("invalid input")
	// The input admits no triangulation, or the engine could not finish one.
	// Only surfaced as an error in strict mode.
	ErrDegenerateGeometry = errors.New("degenerate geometry")
)

type TriangulateError struct {
	err error
}

func (e TriangulateError) Error() string {
	return e.err.Error()
}

func (e TriangulateError) Unwrap() error {
	return e.err
}

// Panic with a TriangulateError wrapping cause.
func throw(cause error, format string, args ...interface{}) {
	panic(TriangulateError{errors.Wrapf(cause, format, args...)})
}

// Panic with a TriangulateError that doesn't wrap one of the sentinels. This is
// for internal invariants that should never break.
func fatalf(format string, args ...interface{}) {
	panic(TriangulateError{errors.Errorf(format, args...)})
}

func HandleTriangulatePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError.err
		}
		panic(r)
	}
	return nil
}
