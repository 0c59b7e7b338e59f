package checkmail

import (
	"errors"
	"fmt"
)

var (
	// ErrBadFormat matches every *FormatError.
	ErrBadFormat = errors.New("invalid format")

	// ErrUnexpected matches every *UnexpectedError.
	ErrUnexpected = errors.New("unexpected error")
)

// FormatError reports a candidate that does not satisfy the address grammar.
// Input is the candidate exactly as it was passed in.
type FormatError struct {
	Input string
}

func (e *FormatError) Error() string {
	return fmt.Sprintf("invalid format: %s", e.Input)
}

// Is reports whether target is ErrBadFormat.
func (e *FormatError) Is(target error) bool {
	return target == ErrBadFormat
}

// UnexpectedError reports a failure of the validator itself, such as a
// pattern that does not compile. It never describes a problem with the input.
type UnexpectedError struct {
	Message string
	Cause   error // Underlying error (e.g., regexp syntax error)
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("unexpected error (%s)", e.Message)
}

// Is reports whether target is ErrUnexpected.
func (e *UnexpectedError) Is(target error) bool {
	return target == ErrUnexpected
}

// Unwrap returns the underlying cause of the error.
func (e *UnexpectedError) Unwrap() error {
	return e.Cause
}
