package hull

import "github.com/pkg/errors"

// Threading errors up through the wrapping loop, the candidate scans and the
// tangent constructions would add a ton of complexity to the code. Instead,
// we use panics, and the public API recovers to convert to an error.

type hullError error

// Sentinel causes. Callers match them with errors.Is after the public API
// has recovered.
var (
	// ErrMalformedBoundary means the input violated a structural
	// precondition: open boundary, inconsistent convexity chain, or a
	// non-finite coordinate.
	ErrMalformedBoundary = errors.New("malformed boundary")

	// ErrIterationOverrun means the wrapping loop failed to close within its
	// round bound. It indicates a bug or a hostile numeric configuration,
	// never a property of well-formed input.
	ErrIterationOverrun = errors.New("hull failed to close")
)

// Panic with a hullError.
func fatalf(cause error, format string, args ...interface{}) {
	panic(hullError(errors.Wrapf(cause, format, args...)))
}

func fatal(err error) {
	panic(hullError(err))
}

func HandleHullPanicRecover(r interface{}) error {
	if r != nil {
		if err, ok := r.(hullError); ok {
			return err
		}
		panic(r)
	}
	return nil
}
