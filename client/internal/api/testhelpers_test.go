package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/internal/fakeapi"
)

// errRT is an http.RoundTripper that always returns an error (simulates network failure).
type errRT struct{}

func (e *errRT) RoundTrip(*http.Request) (*http.Response, error) { return nil, fmt.Errorf("boom") }

// newPipeline starts a fake backend and returns a pipeline pointed at it.
func newPipeline(t *testing.T, opts ...fakeapi.Option) (*rest.Pipeline, *fakeapi.Server) {
	t.Helper()
	srv := fakeapi.New(opts...)
	t.Cleanup(srv.Close)
	return &rest.Pipeline{BaseURL: srv.BaseURL(), HTTP: srv.Client()}, srv
}
