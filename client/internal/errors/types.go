// Package errors defines the error values surfaced by the request pipeline.
// Transport failures are never wrapped here; only application failures
// (non-2xx responses) and response validation failures get a dedicated type.
package errors

import (
	"errors"
	"fmt"
)

// RequestError is the normalized application failure: the server answered
// with a status outside 200-299.
type RequestError struct {
	StatusCode int
	Message    string
}

// Error returns the normalized message verbatim.
func (e *RequestError) Error() string { return e.Message }

// ValidationError reports a response that decoded but failed validation.
type ValidationError struct {
	Endpoint string
	Err      error
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validate response from %s: %v", e.Endpoint, e.Err)
}

func (e *ValidationError) Unwrap() error { return e.Err }

// StatusCode extracts the HTTP status from a *RequestError anywhere in err's chain.
func StatusCode(err error) (int, bool) {
	var re *RequestError
	if errors.As(err, &re) {
		return re.StatusCode, true
	}
	return 0, false
}

// IsStatus reports whether err carries the given HTTP status.
func IsStatus(err error, code int) bool {
	got, ok := StatusCode(err)
	return ok && got == code
}
