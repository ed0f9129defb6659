package api

import (
	"context"
	"net/http"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// ListExams returns exam summaries (without questions).
func ListExams(ctx context.Context, p *rest.Pipeline) ([]types.Exam, error) {
	return get[[]types.Exam](ctx, p, "/exams")
}

// GetExam retrieves an exam including its questions.
func GetExam(ctx context.Context, p *rest.Pipeline, examID string) (*types.Exam, error) {
	endpoint, err := byID("/exams", examID, "examId")
	if err != nil {
		return nil, err
	}
	return getOne[types.Exam](ctx, p, endpoint)
}

// SubmitExamAttempt posts the answers of a finished attempt and returns the
// graded result. The submission is checked locally before any I/O.
func SubmitExamAttempt(ctx context.Context, p *rest.Pipeline, examID string, req types.SubmitExamRequest) (*types.ExamAttempt, error) {
	endpoint, err := byID("/exams", examID, "examId")
	if err != nil {
		return nil, err
	}
	if err := types.ValidateSubmit(req); err != nil {
		return nil, err
	}
	return doOne[types.ExamAttempt](ctx, p, http.MethodPost, endpoint+"/attempts", req)
}

// GetExamAttempt retrieves a previously graded attempt.
func GetExamAttempt(ctx context.Context, p *rest.Pipeline, attemptID string) (*types.ExamAttempt, error) {
	endpoint, err := byID("/exam-attempts", attemptID, "attemptId")
	if err != nil {
		return nil, err
	}
	return getOne[types.ExamAttempt](ctx, p, endpoint)
}
