package planner

import (
	"errors"
	"fmt"
)

// ErrorKind identifies the failure class of a planning attempt.
type ErrorKind string

const (
	KindNoTasks       ErrorKind = "NO_TASKS"
	KindNoResponse    ErrorKind = "NO_RESPONSE"
	KindInvalidFormat ErrorKind = "INVALID_FORMAT"
	KindParseError    ErrorKind = "PARSE_ERROR"
	KindUnknown       ErrorKind = "UNKNOWN_ERROR"
)

// Error is a classified planning failure. Retryable drives the orchestrator:
// non-retryable errors terminate the attempt loop immediately.
type Error struct {
	Kind      ErrorKind
	Message   string
	Retryable bool
	Err       error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %s: %v", e.Kind, e.Message, e.Err)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// NewNoTasksError reports an empty task list. Not retryable: retrying the
// same empty input can never succeed.
func NewNoTasksError() *Error {
	return &Error{
		Kind:      KindNoTasks,
		Message:   "no tasks provided",
		Retryable: false,
	}
}

// NewNoResponseError reports empty model output (transient upstream issue).
func NewNoResponseError() *Error {
	return &Error{
		Kind:      KindNoResponse,
		Message:   "empty response from model",
		Retryable: true,
	}
}

// NewInvalidFormatError reports a structurally or semantically malformed
// schedule. Retryable: a re-prompt may yield compliant output.
func NewInvalidFormatError(message string) *Error {
	return &Error{
		Kind:      KindInvalidFormat,
		Message:   message,
		Retryable: true,
	}
}

// NewParseError reports non-JSON model output.
func NewParseError(err error) *Error {
	return &Error{
		Kind:      KindParseError,
		Message:   "failed to parse model response as JSON",
		Retryable: true,
		Err:       err,
	}
}

// Classify returns err as a *Error, wrapping unclassified failures
// (transport errors and the like) as retryable UNKNOWN_ERROR.
func Classify(err error) *Error {
	var planErr *Error
	if errors.As(err, &planErr) {
		return planErr
	}
	return &Error{
		Kind:      KindUnknown,
		Message:   "planning attempt failed",
		Retryable: true,
		Err:       err,
	}
}
