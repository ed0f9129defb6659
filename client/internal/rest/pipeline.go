// Package rest implements the single request pipeline every SDK call goes
// through: compose URL, default headers, caller overrides, JSON body, one
// round trip, normalized failure, JSON decode, optional validation.
//
// The pipeline keeps no per-call state. It never retries, caches or queues.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	apierrors "github.com/nguyencmc/app-exam-test-online-sub002/client/internal/errors"
)

// TokenProvider returns the bearer token for the next request. An empty
// token means the request goes out anonymously.
type TokenProvider interface {
	Token(ctx context.Context) (string, error)
}

// TokenFunc adapts a plain function to TokenProvider.
type TokenFunc func(ctx context.Context) (string, error)

// Token implements TokenProvider.
func (f TokenFunc) Token(ctx context.Context) (string, error) { return f(ctx) }

// NoContent is the result type for calls whose success body is ignored.
type NoContent struct{}

// Pipeline holds the immutable configuration shared by all calls.
type Pipeline struct {
	BaseURL string
	HTTP    *http.Client
	Tokens  TokenProvider // nil: anonymous

	// Validate enables struct-tag validation of decoded responses when non-nil.
	Validate *validator.Validate
}

// Do performs one request and decodes the success body into T.
func Do[T any](ctx context.Context, p *Pipeline, method, endpoint string, body any, opts ...Option) (T, error) {
	var out T

	req, err := p.newRequest(ctx, method, endpoint, body, opts)
	if err != nil {
		return out, err
	}

	start := time.Now()
	resp, err := p.HTTP.Do(req)
	observe(method, resp, time.Since(start))
	if err != nil {
		return out, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return out, apierrors.FromResponse(resp)
	}

	if _, ok := any(&out).(*NoContent); ok {
		_, _ = io.Copy(io.Discard, resp.Body)
		return out, nil
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, err
	}
	if err := json.Unmarshal(data, &out); err != nil {
		var zero T
		return zero, err
	}
	if err := p.check(&out); err != nil {
		var zero T
		return zero, &apierrors.ValidationError{Endpoint: endpoint, Err: err}
	}
	return out, nil
}

func (p *Pipeline) newRequest(ctx context.Context, method, endpoint string, body any, opts []Option) (*http.Request, error) {
	var rdr io.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		if err != nil {
			return nil, err
		}
		rdr = bytes.NewReader(buf)
	}

	req, err := http.NewRequestWithContext(ctx, method, p.BaseURL+endpoint, rdr)
	if err != nil {
		return nil, err
	}

	req.Header.Set("Content-Type", "application/json")
	if p.Tokens != nil {
		token, err := p.Tokens.Token(ctx)
		if err != nil {
			return nil, fmt.Errorf("read auth token: %w", err)
		}
		if token != "" {
			req.Header.Set("Authorization", "Bearer "+token)
		}
	}

	applyOptions(req, opts)
	return req, nil
}
