package types

// ------------------------------
// Request Types
// ------------------------------

// Answer is the chosen option for one question.
type Answer struct {
	QuestionID string `json:"questionId"`
	Choice     int    `json:"choice"`
}

// SubmitExamRequest carries the answers of a finished attempt and the time
// spent, as measured by the exam timer.
type SubmitExamRequest struct {
	Answers        []Answer `json:"answers"`
	ElapsedSeconds int      `json:"elapsedSeconds"`
}

// CardProgressRequest records the outcome of reviewing one flashcard.
type CardProgressRequest struct {
	Known bool `json:"known"`
}
