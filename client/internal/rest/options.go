package rest

import "net/http"

// Option customizes a single request. Options run after the default headers
// are set, in the order given, so a caller header replaces a default one.
type Option func(*http.Request)

// WithHeader sets one header, replacing any default for the same name.
func WithHeader(key, value string) Option {
	return func(r *http.Request) { r.Header.Set(key, value) }
}

// WithHeaders sets every header in h.
func WithHeaders(h map[string]string) Option {
	return func(r *http.Request) {
		for k, v := range h {
			r.Header.Set(k, v)
		}
	}
}

// WithRequestEditor hands the fully built request to fn for arbitrary
// changes such as query parameters.
func WithRequestEditor(fn func(*http.Request)) Option {
	return func(r *http.Request) {
		if fn != nil {
			fn(r)
		}
	}
}

func applyOptions(r *http.Request, opts []Option) {
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
}
