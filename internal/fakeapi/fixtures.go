package fakeapi

var courses = []map[string]any{
	{"id": "go-101", "title": "Go Fundamentals", "category": "programming", "level": "beginner", "lessonCount": 12, "createdAt": "2026-01-10T08:00:00Z"},
	{"id": "net-201", "title": "Computer Networks", "category": "networking", "level": "intermediate", "lessonCount": 18, "createdAt": "2026-02-01T08:00:00Z"},
}

var exams = []map[string]any{
	{
		"id": "ielts-r1", "title": "IELTS Reading Practice 1", "subject": "english",
		"durationMinutes": 60, "questionCount": 3,
		"questions": []map[string]any{
			{"id": "q1", "prompt": "The author's main claim is...", "options": []string{"A", "B", "C", "D"}},
			{"id": "q2", "prompt": "Paragraph 3 suggests...", "options": []string{"A", "B", "C", "D"}},
			{"id": "q3", "prompt": "The word 'robust' means...", "options": []string{"A", "B", "C", "D"}},
		},
	},
	{
		"id": "toeic-l1", "title": "TOEIC Listening Mini", "subject": "english",
		"durationMinutes": 15, "questionCount": 2,
		"questions": []map[string]any{
			{"id": "q1", "prompt": "Where is the speaker?", "options": []string{"A", "B", "C"}},
			{"id": "q2", "prompt": "What will the man do next?", "options": []string{"A", "B", "C"}},
		},
	},
}

// answerKeys maps exam id -> question id -> correct option index.
var answerKeys = map[string]map[string]int{
	"ielts-r1": {"q1": 2, "q2": 0, "q3": 3},
	"toeic-l1": {"q1": 1, "q2": 1},
}

var decks = []map[string]any{
	{
		"id": "vocab-b2", "title": "B2 Vocabulary", "cardCount": 2,
		"cards": []map[string]any{
			{"id": "c1", "front": "meticulous", "back": "showing great attention to detail"},
			{"id": "c2", "front": "ubiquitous", "back": "present everywhere"},
		},
	},
}

var podcasts = []map[string]any{
	{"id": "pod-1", "title": "Study Smarter", "host": "AI-Exam", "audioUrl": "https://cdn.example.com/pod-1.mp3", "durationSeconds": 1520},
}

var books = []map[string]any{
	{"id": "book-1", "title": "Grammar in Use", "author": "R. Murphy", "coverUrl": "https://cdn.example.com/book-1.jpg", "pages": 380},
	{"id": "book-2", "title": "Untitled draft", "pages": 12},
}

// examSummaries strips questions the way list endpoints do.
func examSummaries() []map[string]any {
	return summaries(exams, "questions")
}

func deckSummaries() []map[string]any {
	return summaries(decks, "cards")
}

func summaries(items []map[string]any, drop string) []map[string]any {
	out := make([]map[string]any, 0, len(items))
	for _, it := range items {
		s := make(map[string]any, len(it))
		for k, v := range it {
			if k != drop {
				s[k] = v
			}
		}
		out = append(out, s)
	}
	return out
}
