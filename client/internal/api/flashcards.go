package api

import (
	"context"
	"net/http"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// ListFlashcardDecks returns deck summaries (without cards).
func ListFlashcardDecks(ctx context.Context, p *rest.Pipeline) ([]types.FlashcardDeck, error) {
	return get[[]types.FlashcardDeck](ctx, p, "/flashcard-decks")
}

// GetFlashcardDeck retrieves a deck with its cards.
func GetFlashcardDeck(ctx context.Context, p *rest.Pipeline, deckID string) (*types.FlashcardDeck, error) {
	endpoint, err := byID("/flashcard-decks", deckID, "deckId")
	if err != nil {
		return nil, err
	}
	return getOne[types.FlashcardDeck](ctx, p, endpoint)
}

// UpdateCardProgress records a review of one card.
func UpdateCardProgress(ctx context.Context, p *rest.Pipeline, cardID string, req types.CardProgressRequest) (*types.CardProgress, error) {
	endpoint, err := byID("/flashcards", cardID, "cardId")
	if err != nil {
		return nil, err
	}
	return doOne[types.CardProgress](ctx, p, http.MethodPut, endpoint+"/progress", req)
}
