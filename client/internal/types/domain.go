package types

import "time"

// ------------------------------
// Core Domain Entities
// ------------------------------

// Course is a browsable course in the catalog.
type Course struct {
	ID          string    `json:"id" validate:"required"`
	Title       string    `json:"title" validate:"required"`
	Description string    `json:"description,omitempty"`
	Category    string    `json:"category,omitempty"`
	Level       string    `json:"level,omitempty"`
	LessonCount int       `json:"lessonCount"`
	CreatedAt   time.Time `json:"createdAt"`
}

func (c Course) Validate() error { return ValidateIDPresent(c.ID, "course.id") }

// Question is one multiple-choice question of an exam.
type Question struct {
	ID      string   `json:"id" validate:"required"`
	Prompt  string   `json:"prompt"`
	Options []string `json:"options"`
}

// Exam is a practice exam. Questions are only populated by GetExam.
type Exam struct {
	ID              string     `json:"id" validate:"required"`
	Title           string     `json:"title" validate:"required"`
	Subject         string     `json:"subject,omitempty"`
	DurationMinutes int        `json:"durationMinutes" validate:"gte=0"`
	QuestionCount   int        `json:"questionCount" validate:"gte=0"`
	Questions       []Question `json:"questions,omitempty" validate:"dive"`
}

func (e Exam) Validate() error {
	if err := ValidateIDPresent(e.ID, "exam.id"); err != nil {
		return err
	}
	for _, q := range e.Questions {
		if err := ValidateIDPresent(q.ID, "question.id"); err != nil {
			return err
		}
	}
	return nil
}

// ExamAttempt is the graded result of a submitted exam.
type ExamAttempt struct {
	ID             string    `json:"id" validate:"required"`
	ExamID         string    `json:"examId" validate:"required"`
	Score          int       `json:"score" validate:"gte=0"`
	Total          int       `json:"total" validate:"gte=0"`
	ElapsedSeconds int       `json:"elapsedSeconds"`
	SubmittedAt    time.Time `json:"submittedAt"`
}

func (a ExamAttempt) Validate() error {
	if err := ValidateIDPresent(a.ID, "attempt.id"); err != nil {
		return err
	}
	return ValidateIDPresent(a.ExamID, "attempt.examId")
}

// Flashcard is a single two-sided card.
type Flashcard struct {
	ID    string `json:"id" validate:"required"`
	Front string `json:"front"`
	Back  string `json:"back"`
}

// FlashcardDeck groups flashcards. Cards are only populated by GetFlashcardDeck.
type FlashcardDeck struct {
	ID        string      `json:"id" validate:"required"`
	Title     string      `json:"title" validate:"required"`
	CardCount int         `json:"cardCount"`
	Cards     []Flashcard `json:"cards,omitempty" validate:"dive"`
}

func (d FlashcardDeck) Validate() error { return ValidateIDPresent(d.ID, "deck.id") }

// CardProgress is the learner's review state for one card.
type CardProgress struct {
	CardID       string     `json:"cardId" validate:"required"`
	Known        bool       `json:"known"`
	ReviewCount  int        `json:"reviewCount"`
	NextReviewAt *time.Time `json:"nextReviewAt,omitempty"`
}

func (p CardProgress) Validate() error { return ValidateIDPresent(p.CardID, "progress.cardId") }

// Podcast is an audio episode.
type Podcast struct {
	ID              string `json:"id" validate:"required"`
	Title           string `json:"title" validate:"required"`
	Host            string `json:"host,omitempty"`
	AudioURL        string `json:"audioUrl" validate:"omitempty,url"`
	DurationSeconds int    `json:"durationSeconds"`
}

func (p Podcast) Validate() error { return ValidateIDPresent(p.ID, "podcast.id") }

// Book is a catalog book.
type Book struct {
	ID       string `json:"id" validate:"required"`
	Title    string `json:"title" validate:"required"`
	Author   string `json:"author,omitempty"`
	CoverURL string `json:"coverUrl,omitempty" validate:"omitempty,url"`
	Pages    int    `json:"pages"`
}

func (b Book) Validate() error { return ValidateIDPresent(b.ID, "book.id") }

// Health is the backend liveness report.
type Health struct {
	Status string `json:"status"`
}
