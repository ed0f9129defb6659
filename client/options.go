package client

// This file defines functional options that configure the Client during
// construction. Keeping them in a standalone file avoids cluttering
// client.go and makes it easy to discover all available knobs at a glance.

import (
	"fmt"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
)

// Option configures a Client during construction in New.
type Option func(*Client) error

// WithHTTPClient injects a custom *http.Client (transport, TLS, proxies).
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) error {
		if hc == nil {
			return ErrNilHTTPClient
		}
		c.http = hc
		return nil
	}
}

// WithHTTPTimeout sets the underlying http.Client Timeout.
//
// The client enforces no deadline of its own; prefer per-call context
// deadlines. This is a coarse bound on a whole request including reading the
// response. The value must be greater than zero.
func WithHTTPTimeout(d time.Duration) Option {
	return func(c *Client) error {
		if d <= 0 {
			return fmt.Errorf("http timeout must be > 0")
		}
		c.http.Timeout = d
		return nil
	}
}

// WithTokenProvider sets where the bearer token comes from. Without it every
// request is anonymous.
func WithTokenProvider(p TokenProvider) Option {
	return func(c *Client) error {
		c.tokens = p
		return nil
	}
}

// WithStructValidation checks decoded responses against their `validate`
// struct tags. Types with a Validate method are checked regardless.
func WithStructValidation() Option {
	return func(c *Client) error {
		c.validate = validator.New(validator.WithRequiredStructEnabled())
		return nil
	}
}

// WithDebugLogging wraps the client's transport so each request/response is
// logged at debug level when enabled is true. Authorization values are
// redacted but bodies are not; do not enable in production.
func WithDebugLogging(enabled bool) Option {
	return func(c *Client) error {
		if enabled {
			if _, ok := c.http.Transport.(*debugTransport); ok {
				return nil
			}
			c.http.Transport = &debugTransport{base: c.http.Transport}
		}
		return nil
	}
}
