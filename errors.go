package scout

import (
	"errors"
	"fmt"
)

// Sentinel errors for common failure modes.
var (
	// ErrValidation indicates a request failed validation.
	ErrValidation = errors.New("validation error")

	// ErrIncompleteReasoning indicates the loop hit its step cap
	// without the model producing a final answer.
	ErrIncompleteReasoning = errors.New("incomplete reasoning: step limit reached without a final answer")

	// ErrToolNotFound indicates the requested tool does not exist.
	ErrToolNotFound = errors.New("tool not found")

	// ErrStreamClosed indicates an operation on a closed stream.
	ErrStreamClosed = errors.New("stream closed")

	// ErrEmptyQuery indicates a search was invoked with a blank query.
	ErrEmptyQuery = errors.New("empty query")
)

// ServiceError wraps a failure to reach or read the language model
// service. Service errors are transient: the query-level retry wrapper
// may re-run the whole loop.
type ServiceError struct {
	Provider string
	Err      error
}

func (e *ServiceError) Error() string {
	return fmt.Sprintf("%s: %v", e.Provider, e.Err)
}

func (e *ServiceError) Unwrap() error { return e.Err }

// ToolError wraps a failed tool invocation. The loop recovers from
// these locally by feeding a failure observation back to the model, so
// a ToolError only escapes a run when construction-time wiring is wrong.
type ToolError struct {
	Tool string
	Err  error
}

func (e *ToolError) Error() string {
	return fmt.Sprintf("%s: %v", e.Tool, e.Err)
}

func (e *ToolError) Unwrap() error { return e.Err }

// Transient reports whether err is worth retrying with a fresh run.
// Service failures and exhausted reasoning are transient; validation
// and wiring errors are permanent, and retrying them only wastes model
// calls.
func Transient(err error) bool {
	var se *ServiceError
	if errors.As(err, &se) {
		return true
	}
	return errors.Is(err, ErrIncompleteReasoning)
}
