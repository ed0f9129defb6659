package api

import (
	"context"
	"net/http"
	"testing"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

func TestFlashcardDecks(t *testing.T) {
	t.Parallel()
	p, _ := newPipeline(t)
	decks, err := ListFlashcardDecks(context.Background(), p)
	if err != nil || len(decks) != 1 || decks[0].CardCount != 2 || len(decks[0].Cards) != 0 {
		t.Fatalf("ListFlashcardDecks unexpected: got=%+v err=%v", decks, err)
	}
	deck, err := GetFlashcardDeck(context.Background(), p, "vocab-b2")
	if err != nil || len(deck.Cards) != 2 || deck.Cards[0].Front != "meticulous" {
		t.Fatalf("GetFlashcardDeck unexpected: got=%+v err=%v", deck, err)
	}
}

func TestUpdateCardProgress(t *testing.T) {
	t.Parallel()
	p, srv := newPipeline(t)
	for i := 1; i <= 2; i++ {
		got, err := UpdateCardProgress(context.Background(), p, "c1", types.CardProgressRequest{Known: true})
		if err != nil || got.CardID != "c1" || !got.Known || got.ReviewCount != i {
			t.Fatalf("UpdateCardProgress #%d unexpected: got=%+v err=%v", i, got, err)
		}
	}
	last, _ := srv.LastRequest()
	if last.Method != http.MethodPut || string(last.Body) != `{"known":true}` {
		t.Fatalf("unexpected request %s %s", last.Method, last.Body)
	}
	if _, err := UpdateCardProgress(context.Background(), p, "", types.CardProgressRequest{}); err == nil {
		t.Fatal("expected missing card id error")
	}
}
