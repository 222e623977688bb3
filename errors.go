package liveset

import (
	"errors"
	"fmt"

	"github.com/hupe1980/liveset/liveness"
)

var (
	// ErrNilFunction is returned when a nil function is passed to the analyzer.
	ErrNilFunction = errors.New("nil function")

	// ErrNoConvergence is returned when the configured pass limit is hit.
	ErrNoConvergence = errors.New("liveness did not converge")
)

// ErrInvalidFunction indicates a function whose variable or successor
// indices are out of range.
//
// The original underlying error can be accessed via errors.Unwrap.
type ErrInvalidFunction struct {
	Function string
	cause    error
}

func (e *ErrInvalidFunction) Error() string {
	return fmt.Sprintf("invalid function %q: %v", e.Function, e.cause)
}

func (e *ErrInvalidFunction) Unwrap() error { return e.cause }

// translateError maps liveness errors onto the public error set.
func translateError(name string, err error) error {
	if err == nil {
		return nil
	}

	if errors.Is(err, liveness.ErrNilFunction) {
		return fmt.Errorf("%w: %w", ErrNilFunction, err)
	}
	if errors.Is(err, liveness.ErrNoConvergence) {
		return fmt.Errorf("%w: %w", ErrNoConvergence, err)
	}

	var vr *liveness.ErrVariableOutOfRange
	if errors.As(err, &vr) {
		return &ErrInvalidFunction{Function: name, cause: err}
	}
	var is *liveness.ErrInvalidSuccessor
	if errors.As(err, &is) {
		return &ErrInvalidFunction{Function: name, cause: err}
	}
	if errors.Is(err, liveness.ErrNegativeVars) {
		return &ErrInvalidFunction{Function: name, cause: err}
	}

	return err
}
