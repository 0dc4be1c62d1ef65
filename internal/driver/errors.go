package driver

import (
	"fmt"
)

// TaskError identifies the file task that stopped a run: a load failure or a
// recovered panic. Parse errors are issues, never TaskErrors.
type TaskError struct {
	Stage Stage
	Path  string
	Err   error
	// Stack is set for recovered panics.
	Stack []byte
}

func (e *TaskError) Error() string {
	return fmt.Sprintf("%s %s: %v", e.Stage, e.Path, e.Err)
}

func (e *TaskError) Unwrap() error { return e.Err }
