package calc

import (
	"errors"
	"fmt"
)

var (
	// ErrIncompleteExpression is returned when the text is empty or ends in
	// an operator or decimal point. The editor state is left untouched.
	ErrIncompleteExpression = errors.New("incomplete expression")

	ErrNegativeFactorial = errors.New("factorial of a negative number")
	ErrInvalidLogBase    = errors.New("logarithm base must be positive and not 1")
)

// EvaluationError wraps a failure from the evaluator.
type EvaluationError struct {
	Expression string
	Suggestion string // Closest known name for an undefined identifier.
	Err        error
}

func (e *EvaluationError) Error() string {
	return fmt.Sprintf("evaluate %q: %s", e.Expression, e.Brief())
}

// Brief is the cause without the expression, for the status line.
func (e *EvaluationError) Brief() string {
	if e.Suggestion != "" {
		return fmt.Sprintf("%v (did you mean %s?)", e.Err, e.Suggestion)
	}
	return e.Err.Error()
}

func (e *EvaluationError) Unwrap() error {
	return e.Err
}
