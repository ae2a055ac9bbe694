package errors

import "fmt"

// HTTPError is an error carrying the HTTP status it should be served with.
type HTTPError struct {
	StatusCode int
	Code       int
	Message    string
}

// NewHTTPError creates an HTTPError with the given status and message.
// Code defaults to the status code unless overridden with WithCode.
func NewHTTPError(statusCode int, message string) *HTTPError {
	return &HTTPError{
		StatusCode: statusCode,
		Code:       statusCode,
		Message:    message,
	}
}

// WithCode overrides the application error code in the response envelope.
func (e *HTTPError) WithCode(code int) *HTTPError {
	e.Code = code
	return e
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.StatusCode, e.Message)
}
