// Package fakeapi is an in-process stand-in for the AI-Exam REST backend,
// used by SDK and CLI tests. It serves a fixed catalog under /api and records
// every request it receives.
package fakeapi

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"runtime/debug"
	"sync"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog/log"
)

// Request is a recorded inbound request.
type Request struct {
	Method string
	Path   string // escaped form, as sent on the wire
	Header http.Header
	Body   []byte
}

// Option configures the fake server.
type Option func(*Server)

// WithRequiredToken makes every /api route answer 401 unless the request
// carries "Authorization: Bearer <token>".
func WithRequiredToken(token string) Option {
	return func(s *Server) { s.token = token }
}

// WithUnhealthyHealthChecks makes the first n GET /api/health calls answer 503.
func WithUnhealthyHealthChecks(n int) Option {
	return func(s *Server) { s.unhealthy = n }
}

// Server is the fake backend. BaseURL is what SDK clients should be built with.
type Server struct {
	*httptest.Server

	mu        sync.Mutex
	token     string
	unhealthy int
	requests  []Request
	attempts  map[string]map[string]any
	bookmarks map[string]bool
	progress  map[string]int
}

// New starts a fake backend. Callers must Close it.
func New(opts ...Option) *Server {
	s := &Server{
		attempts:  map[string]map[string]any{},
		bookmarks: map[string]bool{"bm1": true, "bm2": true},
		progress:  map[string]int{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.Server = httptest.NewServer(s.routes())
	return s
}

// BaseURL is the API root, e.g. http://127.0.0.1:port/api.
func (s *Server) BaseURL() string { return s.URL + "/api" }

// Requests returns a copy of everything received so far.
func (s *Server) Requests() []Request {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]Request, len(s.requests))
	copy(out, s.requests)
	return out
}

// LastRequest returns the most recent request, or false if none arrived yet.
func (s *Server) LastRequest() (Request, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.requests) == 0 {
		return Request{}, false
	}
	return s.requests[len(s.requests)-1], true
}

func (s *Server) routes() http.Handler {
	r := mux.NewRouter().UseEncodedPath()
	api := r.PathPrefix("/api").Subrouter()
	api.Use(recoverPanics, s.record, s.auth)

	api.HandleFunc("/health", s.health).Methods(http.MethodGet)
	api.HandleFunc("/echo", s.echo)
	api.HandleFunc("/panic", func(http.ResponseWriter, *http.Request) { panic("fakeapi: forced panic") })

	api.HandleFunc("/courses", list(courses)).Methods(http.MethodGet)
	api.HandleFunc("/courses/{id}", find(courses, "course")).Methods(http.MethodGet)

	api.HandleFunc("/exams", list(examSummaries())).Methods(http.MethodGet)
	api.HandleFunc("/exams/{id}", find(exams, "exam")).Methods(http.MethodGet)
	api.HandleFunc("/exams/{id}/attempts", s.submitAttempt).Methods(http.MethodPost)
	api.HandleFunc("/exam-attempts/{id}", s.getAttempt).Methods(http.MethodGet)

	api.HandleFunc("/flashcard-decks", list(deckSummaries())).Methods(http.MethodGet)
	api.HandleFunc("/flashcard-decks/{id}", find(decks, "deck")).Methods(http.MethodGet)
	api.HandleFunc("/flashcards/{id}/progress", s.putProgress).Methods(http.MethodPut)

	api.HandleFunc("/podcasts", list(podcasts)).Methods(http.MethodGet)
	api.HandleFunc("/podcasts/{id}", find(podcasts, "podcast")).Methods(http.MethodGet)
	api.HandleFunc("/books", list(books)).Methods(http.MethodGet)
	api.HandleFunc("/books/{id}", find(books, "book")).Methods(http.MethodGet)
	api.HandleFunc("/bookmarks/{id}", s.deleteBookmark).Methods(http.MethodDelete)

	r.NotFoundHandler = http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		// empty body: clients must fall back to the generic message
		w.WriteHeader(http.StatusNotFound)
	})
	return r
}

// ------------------------- middleware -------------------------

// recoverPanics turns a handler panic into a 500 whose body has no "message"
// field, the shape an unhandled server crash produces.
func recoverPanics(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func() {
			if rec := recover(); rec != nil {
				log.Error().
					Interface("panic", rec).
					Str("method", r.Method).
					Str("url", r.URL.String()).
					Bytes("stack", debug.Stack()).
					Msg("panic recovered")

				w.Header().Set("Content-Type", "application/json")
				w.WriteHeader(http.StatusInternalServerError)
				_, _ = w.Write([]byte(`{"error":"Internal Server Error","code":500}`))
			}
		}()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) record(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		_ = r.Body.Close()
		r.Body = io.NopCloser(bytes.NewReader(body))

		s.mu.Lock()
		s.requests = append(s.requests, Request{Method: r.Method, Path: r.URL.EscapedPath(), Header: r.Header.Clone(), Body: body})
		s.mu.Unlock()
		next.ServeHTTP(w, r)
	})
}

func (s *Server) auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.token != "" && r.Header.Get("Authorization") != "Bearer "+s.token {
			writeError(w, http.StatusUnauthorized, "Invalid or missing token")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// ------------------------- handlers -------------------------

func (s *Server) health(w http.ResponseWriter, _ *http.Request) {
	s.mu.Lock()
	down := s.unhealthy > 0
	if down {
		s.unhealthy--
	}
	s.mu.Unlock()
	if down {
		writeError(w, http.StatusServiceUnavailable, "starting")
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"status": "UP"})
}

// echo reflects the request back so raw calls can be inspected end to end.
func (s *Server) echo(w http.ResponseWriter, r *http.Request) {
	var body any
	if data, _ := io.ReadAll(r.Body); len(data) > 0 {
		if err := json.Unmarshal(data, &body); err != nil {
			body = string(data)
		}
	}
	writeJSON(w, http.StatusOK, map[string]any{
		"method":        r.Method,
		"contentType":   r.Header.Get("Content-Type"),
		"authorization": r.Header.Get("Authorization"),
		"body":          body,
	})
}

func (s *Server) submitAttempt(w http.ResponseWriter, r *http.Request) {
	examID := mux.Vars(r)["id"]
	key, ok := answerKeys[examID]
	if !ok {
		writeError(w, http.StatusNotFound, "exam not found")
		return
	}
	var req struct {
		Answers []struct {
			QuestionID string `json:"questionId"`
			Choice     int    `json:"choice"`
		} `json:"answers"`
		ElapsedSeconds int `json:"elapsedSeconds"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed submission")
		return
	}
	score := 0
	for _, a := range req.Answers {
		if want, ok := key[a.QuestionID]; ok && want == a.Choice {
			score++
		}
	}

	s.mu.Lock()
	id := fmt.Sprintf("att-%d", len(s.attempts)+1)
	attempt := map[string]any{
		"id":             id,
		"examId":         examID,
		"score":          score,
		"total":          len(key),
		"elapsedSeconds": req.ElapsedSeconds,
		"submittedAt":    time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}
	s.attempts[id] = attempt
	s.mu.Unlock()

	writeJSON(w, http.StatusCreated, attempt)
}

func (s *Server) getAttempt(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	attempt, ok := s.attempts[mux.Vars(r)["id"]]
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "attempt not found")
		return
	}
	writeJSON(w, http.StatusOK, attempt)
}

func (s *Server) putProgress(w http.ResponseWriter, r *http.Request) {
	cardID := mux.Vars(r)["id"]
	var req struct {
		Known bool `json:"known"`
	}
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "malformed progress")
		return
	}
	s.mu.Lock()
	s.progress[cardID]++
	n := s.progress[cardID]
	s.mu.Unlock()
	writeJSON(w, http.StatusOK, map[string]any{"cardId": cardID, "known": req.Known, "reviewCount": n})
}

func (s *Server) deleteBookmark(w http.ResponseWriter, r *http.Request) {
	id := mux.Vars(r)["id"]
	s.mu.Lock()
	ok := s.bookmarks[id]
	delete(s.bookmarks, id)
	s.mu.Unlock()
	if !ok {
		writeError(w, http.StatusNotFound, "bookmark not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func list(items []map[string]any) http.HandlerFunc {
	return func(w http.ResponseWriter, _ *http.Request) { writeJSON(w, http.StatusOK, items) }
}

func find(items []map[string]any, kind string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := mux.Vars(r)["id"]
		for _, it := range items {
			if it["id"] == id {
				writeJSON(w, http.StatusOK, it)
				return
			}
		}
		writeError(w, http.StatusNotFound, kind+" not found")
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]string{"message": msg})
}
