package client

import (
	"context"
	"net/http"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
)

// Generic verb entry points. Each performs exactly one request through the
// shared pipeline and decodes the success body into T:
//
//	courses, err := client.Get[[]client.Course](ctx, c, "/courses")
//	att, err := client.Post[client.ExamAttempt](ctx, c, "/exams/e1/attempts", req)
//
// A status outside 200-299 yields a *RequestError. Transport errors and JSON
// decode errors are returned as produced by net/http and encoding/json.

// Get issues a GET request for endpoint.
func Get[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (T, error) {
	return rest.Do[T](ctx, c.pipe, http.MethodGet, endpoint, nil, opts...)
}

// Post JSON-encodes body (when non-nil) and issues a POST request.
func Post[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (T, error) {
	return rest.Do[T](ctx, c.pipe, http.MethodPost, endpoint, body, opts...)
}

// Put JSON-encodes body (when non-nil) and issues a PUT request.
func Put[T any](ctx context.Context, c *Client, endpoint string, body any, opts ...RequestOption) (T, error) {
	return rest.Do[T](ctx, c.pipe, http.MethodPut, endpoint, body, opts...)
}

// Delete issues a DELETE request. Use NoContent as T for 204 responses.
func Delete[T any](ctx context.Context, c *Client, endpoint string, opts ...RequestOption) (T, error) {
	return rest.Do[T](ctx, c.pipe, http.MethodDelete, endpoint, nil, opts...)
}

// RequestOption customizes a single call.
type RequestOption = rest.Option

// NoContent is the result type for calls whose success body is ignored.
type NoContent = rest.NoContent

// WithHeader sets one header on a single call, replacing any default.
func WithHeader(key, value string) RequestOption { return rest.WithHeader(key, value) }

// WithHeaders sets several headers on a single call.
func WithHeaders(h map[string]string) RequestOption { return rest.WithHeaders(h) }

// WithRequestEditor lets the caller modify the built *http.Request.
func WithRequestEditor(fn func(*http.Request)) RequestOption { return rest.WithRequestEditor(fn) }
