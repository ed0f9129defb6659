package rest

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"reflect"
	"sync"
	"sync/atomic"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apierrors "github.com/nguyencmc/app-exam-test-online-sub002/client/internal/errors"
)

type captured struct {
	method string
	path   string
	header http.Header
	body   []byte
}

type capture struct {
	mu  sync.Mutex
	got captured
}

func (c *capture) last() captured {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.got
}

// recorder answers every request with status/body and remembers the last request.
func recorder(t *testing.T, status int, body string) (*httptest.Server, *capture) {
	t.Helper()
	c := &capture{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		c.mu.Lock()
		c.got = captured{method: r.Method, path: r.URL.Path, header: r.Header.Clone(), body: b}
		c.mu.Unlock()
		w.WriteHeader(status)
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)
	return srv, c
}

func staticToken(tok string) TokenProvider {
	return TokenFunc(func(context.Context) (string, error) { return tok, nil })
}

func TestDo_DefaultHeaders(t *testing.T) {
	t.Parallel()
	for _, method := range []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete} {
		srv, rec := recorder(t, http.StatusOK, `{}`)
		p := &Pipeline{BaseURL: srv.URL + "/api", HTTP: srv.Client()}

		_, err := Do[map[string]any](context.Background(), p, method, "/courses", nil)
		require.NoError(t, err, method)
		got := rec.last()
		assert.Equal(t, method, got.method)
		assert.Equal(t, "/api/courses", got.path)
		assert.Equal(t, "application/json", got.header.Get("Content-Type"), method)
		assert.Empty(t, got.header.Values("Authorization"), method)
	}
}

func TestDo_AuthorizationOnlyWithToken(t *testing.T) {
	t.Parallel()
	srv, rec := recorder(t, http.StatusOK, `{}`)

	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client(), Tokens: staticToken("abc.def")}
	_, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/me", nil)
	require.NoError(t, err)
	assert.Equal(t, "Bearer abc.def", rec.last().header.Get("Authorization"))

	p.Tokens = staticToken("")
	_, err = Do[map[string]any](context.Background(), p, http.MethodGet, "/me", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last().header.Values("Authorization"))
}

func TestDo_TokenProviderError(t *testing.T) {
	t.Parallel()
	var hits atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) { hits.Add(1) }))
	defer srv.Close()

	boom := errors.New("store locked")
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client(), Tokens: TokenFunc(func(context.Context) (string, error) {
		return "", boom
	})}
	_, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/x", nil)
	require.ErrorIs(t, err, boom)
	assert.Zero(t, hits.Load())
}

func TestDo_BodyIsJSONOfInput(t *testing.T) {
	t.Parallel()
	in := map[string]any{"answers": []any{"a", "c"}, "elapsed": 93.0}
	want, err := json.Marshal(in)
	require.NoError(t, err)

	for _, method := range []string{http.MethodPost, http.MethodPut} {
		srv, rec := recorder(t, http.StatusOK, `{"ok":true}`)
		p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}
		_, err := Do[map[string]any](context.Background(), p, method, "/exams/1/attempts", in)
		require.NoError(t, err)
		assert.JSONEq(t, string(want), string(rec.last().body), method)
	}
}

func TestDo_NilBodySendsNothing(t *testing.T) {
	t.Parallel()
	srv, rec := recorder(t, http.StatusOK, `{}`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}
	_, err := Do[map[string]any](context.Background(), p, http.MethodPost, "/logout", nil)
	require.NoError(t, err)
	assert.Empty(t, rec.last().body)
}

func TestDo_SuccessDecodesUnchanged(t *testing.T) {
	t.Parallel()
	body := `{"id":"c1","title":"Go","tags":["a","b"],"meta":{"n":3}}`
	srv, _ := recorder(t, http.StatusOK, body)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	got, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/courses/c1", nil)
	require.NoError(t, err)

	var want map[string]any
	require.NoError(t, json.Unmarshal([]byte(body), &want))
	assert.Equal(t, want, got)
}

func TestDo_FailureMessages(t *testing.T) {
	t.Parallel()
	cases := []struct {
		name   string
		status int
		body   string
		want   string
	}{
		{"message field", http.StatusBadRequest, `{"message":"X"}`, "X"},
		{"empty body", http.StatusNotFound, ``, "Request failed with status 404"},
		{"html body", http.StatusBadGateway, `<html>bad gateway</html>`, "Request failed with status 502"},
		{"other convention", http.StatusUnprocessableEntity, `{"error":"nope"}`, "Request failed with status 422"},
		{"empty message", http.StatusInternalServerError, `{"message":""}`, "Request failed with status 500"},
		{"non-string message", http.StatusConflict, `{"message":42}`, "Request failed with status 409"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			srv, _ := recorder(t, tc.status, tc.body)
			p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

			_, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/x", nil)
			require.Error(t, err)
			assert.Equal(t, tc.want, err.Error())

			var re *apierrors.RequestError
			require.ErrorAs(t, err, &re)
			assert.Equal(t, tc.status, re.StatusCode)
		})
	}
}

func TestDo_CallerHeadersOverrideDefaults(t *testing.T) {
	t.Parallel()
	srv, rec := recorder(t, http.StatusOK, `{}`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client(), Tokens: staticToken("t1")}

	_, err := Do[map[string]any](context.Background(), p, http.MethodPut, "/notes/1", map[string]string{"a": "b"},
		WithHeader("Content-Type", "text/plain"),
		WithHeaders(map[string]string{"Authorization": "Bearer other", "X-Trace": "7"}),
	)
	require.NoError(t, err)
	got := rec.last()
	assert.Equal(t, []string{"text/plain"}, got.header.Values("Content-Type"))
	assert.Equal(t, "Bearer other", got.header.Get("Authorization"))
	assert.Equal(t, "7", got.header.Get("X-Trace"))
}

func TestDo_RequestEditor(t *testing.T) {
	t.Parallel()
	query := make(chan string, 1)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query <- r.URL.RawQuery
		_, _ = io.WriteString(w, `[]`)
	}))
	defer srv.Close()
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	_, err := Do[[]any](context.Background(), p, http.MethodGet, "/courses", nil, WithRequestEditor(func(r *http.Request) {
		q := r.URL.Query()
		q.Set("level", "beginner")
		r.URL.RawQuery = q.Encode()
	}))
	require.NoError(t, err)
	assert.Equal(t, "level=beginner", <-query)
}

func TestDo_MalformedSuccessBody(t *testing.T) {
	t.Parallel()
	srv, _ := recorder(t, http.StatusOK, `{"id":`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	_, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/x", nil)
	var syntaxErr *json.SyntaxError
	require.ErrorAs(t, err, &syntaxErr)
}

func TestDo_EmptySuccessBody(t *testing.T) {
	t.Parallel()
	srv, _ := recorder(t, http.StatusNoContent, ``)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	_, err := Do[map[string]any](context.Background(), p, http.MethodDelete, "/bookmarks/1", nil)
	require.Error(t, err)

	_, err = Do[NoContent](context.Background(), p, http.MethodDelete, "/bookmarks/1", nil)
	require.NoError(t, err)
}

func TestDo_TransportErrorUnchanged(t *testing.T) {
	t.Parallel()
	boom := errors.New("connection refused")
	hc := &http.Client{Transport: roundTripFunc(func(*http.Request) (*http.Response, error) { return nil, boom })}
	p := &Pipeline{BaseURL: "http://unreachable.invalid", HTTP: hc}

	_, err := Do[map[string]any](context.Background(), p, http.MethodGet, "/x", nil)
	require.ErrorIs(t, err, boom)
	var re *apierrors.RequestError
	assert.False(t, errors.As(err, &re))
}

func TestDo_ConcurrentCallsIndependent(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		n := r.URL.Query().Get("n")
		if n == "" || n[len(n)-1]%2 == 1 {
			w.WriteHeader(http.StatusBadRequest)
			fmt.Fprintf(w, `{"message":"odd %s"}`, n)
			return
		}
		fmt.Fprintf(w, `{"n":%q}`, n)
	}))
	defer srv.Close()
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	const calls = 40
	var wg sync.WaitGroup
	errs := make([]error, calls)
	results := make([]map[string]string, calls)
	for i := 0; i < calls; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = Do[map[string]string](context.Background(), p, http.MethodGet, fmt.Sprintf("/echo?n=%d", i), nil)
		}(i)
	}
	wg.Wait()

	for i := 0; i < calls; i++ {
		if i%2 == 1 {
			assert.EqualError(t, errs[i], fmt.Sprintf("odd %d", i))
			continue
		}
		require.NoError(t, errs[i])
		assert.Equal(t, fmt.Sprint(i), results[i]["n"])
	}
}

type course struct {
	ID    string `json:"id" validate:"required"`
	Title string `json:"title"`
}

type checkedCourse struct {
	ID string `json:"id"`
}

func (c checkedCourse) Validate() error {
	if c.ID == "" {
		return errors.New("missing id")
	}
	return nil
}

func TestDo_SelfValidation(t *testing.T) {
	t.Parallel()
	srv, _ := recorder(t, http.StatusOK, `[{"id":"a"},{"title":"no id"}]`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client()}

	_, err := Do[[]checkedCourse](context.Background(), p, http.MethodGet, "/courses", nil)
	var ve *apierrors.ValidationError
	require.ErrorAs(t, err, &ve)
	assert.Equal(t, "/courses", ve.Endpoint)

	// without a Validate method the shape is not checked
	got, err := Do[[]course](context.Background(), p, http.MethodGet, "/courses", nil)
	require.NoError(t, err)
	assert.Len(t, got, 2)
}

func TestDo_StructTagValidation(t *testing.T) {
	t.Parallel()
	srv, _ := recorder(t, http.StatusOK, `{"title":"no id"}`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client(), Validate: validator.New()}

	_, err := Do[*course](context.Background(), p, http.MethodGet, "/courses/x", nil)
	var ve *apierrors.ValidationError
	require.ErrorAs(t, err, &ve)
	var fieldErrs validator.ValidationErrors
	assert.ErrorAs(t, err, &fieldErrs)
}

type roundTripFunc func(*http.Request) (*http.Response, error)

func (f roundTripFunc) RoundTrip(r *http.Request) (*http.Response, error) { return f(r) }

func TestDo_RawMessageSkipsElementWalk(t *testing.T) {
	t.Parallel()
	srv, _ := recorder(t, http.StatusOK, `{"id":"a","tags":[1,2,3]}`)
	p := &Pipeline{BaseURL: srv.URL, HTTP: srv.Client(), Validate: validator.New()}

	got, err := Do[json.RawMessage](context.Background(), p, http.MethodGet, "/raw", nil)
	require.NoError(t, err)
	assert.JSONEq(t, `{"id":"a","tags":[1,2,3]}`, string(got))

	// pointer elements are still walked
	srv2, _ := recorder(t, http.StatusOK, `[{"id":"a"},{"title":"no id"}]`)
	p2 := &Pipeline{BaseURL: srv2.URL, HTTP: srv2.Client()}
	_, err = Do[[]*checkedCourse](context.Background(), p2, http.MethodGet, "/courses", nil)
	var ve *apierrors.ValidationError
	require.ErrorAs(t, err, &ve)
}

func TestWalkable(t *testing.T) {
	for _, k := range []reflect.Kind{reflect.Struct, reflect.Ptr, reflect.Interface, reflect.Slice, reflect.Array} {
		assert.True(t, walkable(k), k.String())
	}
	for _, k := range []reflect.Kind{reflect.Uint8, reflect.Int, reflect.String, reflect.Map, reflect.Float64} {
		assert.False(t, walkable(k), k.String())
	}
}
