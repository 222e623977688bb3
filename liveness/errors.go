package liveness

import (
	"errors"
	"fmt"
)

var (
	// ErrNilFunction is returned when a nil *Function is passed in.
	ErrNilFunction = errors.New("liveness: nil function")

	// ErrNegativeVars is returned when Function.NumVars is negative.
	ErrNegativeVars = errors.New("liveness: negative variable count")

	// ErrNoConvergence is returned when the pass limit is hit before a fixpoint.
	ErrNoConvergence = errors.New("liveness: no fixpoint within pass limit")

	// ErrResultMismatch is returned when a Result was not produced for the given Function.
	ErrResultMismatch = errors.New("liveness: result does not match function")
)

// ErrVariableOutOfRange reports an instruction referencing a variable outside [0, NumVars).
type ErrVariableOutOfRange struct {
	Block   int
	Instr   int
	Var     int
	NumVars int
}

func (e *ErrVariableOutOfRange) Error() string {
	return fmt.Sprintf("liveness: block %d instr %d: variable %d out of range [0, %d)",
		e.Block, e.Instr, e.Var, e.NumVars)
}

// ErrInvalidSuccessor reports a successor edge to a block that does not exist.
type ErrInvalidSuccessor struct {
	Block     int
	Succ      int
	NumBlocks int
}

func (e *ErrInvalidSuccessor) Error() string {
	return fmt.Sprintf("liveness: block %d: successor %d out of range [0, %d)",
		e.Block, e.Succ, e.NumBlocks)
}
