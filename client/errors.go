package client

import (
	"errors"

	apierrors "github.com/nguyencmc/app-exam-test-online-sub002/client/internal/errors"
)

// ErrEmptyBaseURL is returned by New when no base URL is given.
var ErrEmptyBaseURL = errors.New("baseURL cannot be empty")

// ErrNilHTTPClient is returned by WithHTTPClient(nil).
var ErrNilHTTPClient = errors.New("nil http client")

// Re-export the pipeline errors so callers match against a single package.
type (
	// RequestError is returned for any response status outside 200-299.
	// Error() is the server's "message" field or
	// "Request failed with status {code}".
	RequestError = apierrors.RequestError

	// ValidationError is returned when a decoded response fails validation.
	ValidationError = apierrors.ValidationError
)

// StatusCode extracts the HTTP status carried by a *RequestError in err.
func StatusCode(err error) (int, bool) { return apierrors.StatusCode(err) }

// IsStatus reports whether err is a *RequestError with the given status.
func IsStatus(err error, code int) bool { return apierrors.IsStatus(err, code) }
