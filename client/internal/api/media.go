package api

import (
	"context"
	"net/http"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// ListPodcasts returns all podcast episodes.
func ListPodcasts(ctx context.Context, p *rest.Pipeline) ([]types.Podcast, error) {
	return get[[]types.Podcast](ctx, p, "/podcasts")
}

// GetPodcast retrieves a podcast episode by ID.
func GetPodcast(ctx context.Context, p *rest.Pipeline, podcastID string) (*types.Podcast, error) {
	endpoint, err := byID("/podcasts", podcastID, "podcastId")
	if err != nil {
		return nil, err
	}
	return getOne[types.Podcast](ctx, p, endpoint)
}

// ListBooks returns the book catalog.
func ListBooks(ctx context.Context, p *rest.Pipeline) ([]types.Book, error) {
	return get[[]types.Book](ctx, p, "/books")
}

// GetBook retrieves a book by ID.
func GetBook(ctx context.Context, p *rest.Pipeline, bookID string) (*types.Book, error) {
	endpoint, err := byID("/books", bookID, "bookId")
	if err != nil {
		return nil, err
	}
	return getOne[types.Book](ctx, p, endpoint)
}

// DeleteBookmark removes a bookmark. Backend returns 204 No Content on success.
func DeleteBookmark(ctx context.Context, p *rest.Pipeline, bookmarkID string) error {
	endpoint, err := byID("/bookmarks", bookmarkID, "bookmarkId")
	if err != nil {
		return err
	}
	_, err = rest.Do[rest.NoContent](ctx, p, http.MethodDelete, endpoint, nil)
	return err
}

// Health reports backend liveness.
func Health(ctx context.Context, p *rest.Pipeline) (*types.Health, error) {
	return getOne[types.Health](ctx, p, "/health")
}
