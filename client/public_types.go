package client

import (
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// Public type aliases so SDK consumers can import only the client package.
type (
	// Requests
	SubmitExamRequest   = types.SubmitExamRequest
	Answer              = types.Answer
	CardProgressRequest = types.CardProgressRequest

	// Domain entities
	Course        = types.Course
	Question      = types.Question
	Exam          = types.Exam
	ExamAttempt   = types.ExamAttempt
	Flashcard     = types.Flashcard
	FlashcardDeck = types.FlashcardDeck
	CardProgress  = types.CardProgress
	Podcast       = types.Podcast
	Book          = types.Book
	Health        = types.Health

	// Validator is implemented by response types that check their own shape.
	Validator = rest.Validator
)
