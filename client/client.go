package client

import (
	"context"
	"fmt"
	"net/http"

	"github.com/go-playground/validator/v10"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/api"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
)

// DefaultBaseURL is used by callers (the CLI, config loading) when no API URL
// is configured.
const DefaultBaseURL = "http://localhost:3001/api"

// --------------------------------------------------------------------
// Client core
// --------------------------------------------------------------------

// Client is a typed JSON client for the AI-Exam REST API. It holds no
// per-call state and is safe for concurrent use.
type Client struct {
	baseURL  string
	http     *http.Client
	tokens   TokenProvider
	validate *validator.Validate

	pipe *rest.Pipeline
}

// New constructs a Client for baseURL. Endpoints are appended to baseURL
// verbatim, so baseURL must not end with a slash that endpoints also start with.
func New(baseURL string, opts ...Option) (*Client, error) {
	if baseURL == "" {
		return nil, ErrEmptyBaseURL
	}

	c := &Client{
		baseURL: baseURL,
		http:    &http.Client{},
	}

	// Auto-enable debug via env variable without changing code.
	if debugLoggingRequested() {
		opts = append(opts, WithDebugLogging(true))
	}

	for _, opt := range opts {
		if err := opt(c); err != nil {
			return nil, fmt.Errorf("apply option: %w", err)
		}
	}

	c.pipe = &rest.Pipeline{
		BaseURL:  c.baseURL,
		HTTP:     c.http,
		Tokens:   c.tokens,
		Validate: c.validate,
	}
	return c, nil
}

// BaseURL returns the configured API root.
func (c *Client) BaseURL() string { return c.baseURL }

// --------------------------------------------------------------------
// Course operations - delegated to internal/api
// --------------------------------------------------------------------

// ListCourses returns the course catalog.
func (c *Client) ListCourses(ctx context.Context) ([]Course, error) {
	return api.ListCourses(ctx, c.pipe)
}

// GetCourse retrieves a course by ID.
func (c *Client) GetCourse(ctx context.Context, courseID string) (*Course, error) {
	return api.GetCourse(ctx, c.pipe, courseID)
}

// --------------------------------------------------------------------
// Exam operations
// --------------------------------------------------------------------

// ListExams returns exam summaries without questions.
func (c *Client) ListExams(ctx context.Context) ([]Exam, error) {
	return api.ListExams(ctx, c.pipe)
}

// GetExam retrieves an exam including its questions.
func (c *Client) GetExam(ctx context.Context, examID string) (*Exam, error) {
	return api.GetExam(ctx, c.pipe, examID)
}

// SubmitExamAttempt submits answers and elapsed time and returns the graded attempt.
func (c *Client) SubmitExamAttempt(ctx context.Context, examID string, req SubmitExamRequest) (*ExamAttempt, error) {
	return api.SubmitExamAttempt(ctx, c.pipe, examID, req)
}

// GetExamAttempt retrieves a graded attempt.
func (c *Client) GetExamAttempt(ctx context.Context, attemptID string) (*ExamAttempt, error) {
	return api.GetExamAttempt(ctx, c.pipe, attemptID)
}

// --------------------------------------------------------------------
// Flashcard operations
// --------------------------------------------------------------------

// ListFlashcardDecks returns deck summaries without cards.
func (c *Client) ListFlashcardDecks(ctx context.Context) ([]FlashcardDeck, error) {
	return api.ListFlashcardDecks(ctx, c.pipe)
}

// GetFlashcardDeck retrieves a deck with its cards.
func (c *Client) GetFlashcardDeck(ctx context.Context, deckID string) (*FlashcardDeck, error) {
	return api.GetFlashcardDeck(ctx, c.pipe, deckID)
}

// UpdateCardProgress records one review of a card.
func (c *Client) UpdateCardProgress(ctx context.Context, cardID string, req CardProgressRequest) (*CardProgress, error) {
	return api.UpdateCardProgress(ctx, c.pipe, cardID, req)
}

// --------------------------------------------------------------------
// Podcasts, books, health
// --------------------------------------------------------------------

// ListPodcasts returns all podcast episodes.
func (c *Client) ListPodcasts(ctx context.Context) ([]Podcast, error) {
	return api.ListPodcasts(ctx, c.pipe)
}

// GetPodcast retrieves a podcast episode by ID.
func (c *Client) GetPodcast(ctx context.Context, podcastID string) (*Podcast, error) {
	return api.GetPodcast(ctx, c.pipe, podcastID)
}

// ListBooks returns the book catalog.
func (c *Client) ListBooks(ctx context.Context) ([]Book, error) {
	return api.ListBooks(ctx, c.pipe)
}

// GetBook retrieves a book by ID.
func (c *Client) GetBook(ctx context.Context, bookID string) (*Book, error) {
	return api.GetBook(ctx, c.pipe, bookID)
}

// DeleteBookmark removes a bookmark. Backend returns 204 No Content on success.
func (c *Client) DeleteBookmark(ctx context.Context, bookmarkID string) error {
	return api.DeleteBookmark(ctx, c.pipe, bookmarkID)
}

// Health performs a single liveness check. It does not retry.
func (c *Client) Health(ctx context.Context) (*Health, error) {
	return api.Health(ctx, c.pipe)
}
