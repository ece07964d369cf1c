package internal

import "github.com/pkg/errors"

// Threading errors up through the sweep, the flip loop and the classifier
// would add a ton of complexity for conditions that are always caller or
// implementation bugs. Instead, we use panics, and the public API recovers
// to convert to an error.

type TriangulateError error

// Panic with a TriangulateError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandlePanicRecover(r interface{}) error {
	if r != nil {
		if triangulateError, ok := r.(TriangulateError); ok {
			return triangulateError
		}
		panic(r)
	}
	return nil
}
