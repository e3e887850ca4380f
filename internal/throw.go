package internal

import "github.com/pkg/errors"

// Internal invariant violations (splitting on an edge, fanning a degenerate
// loop) are bugs in the caller, not properties of the input. Rather than
// threading them through every helper, we panic, and the public API recovers
// to convert to an error.

// Wrapper so that only our own panics are recovered. Runtime errors also
// implement error and must keep panicking.
type decomposePanic struct {
	err error
}

// Panic with a recoverable decomposition error.
func fatalf(format string, args ...interface{}) {
	panic(decomposePanic{errors.Errorf(format, args...)})
}

func HandleDecomposePanicRecover(r interface{}) error {
	if r != nil {
		if p, ok := r.(decomposePanic); ok {
			return p.err
		}
		panic(r)
	}
	return nil
}
