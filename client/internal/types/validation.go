package types

import (
	"fmt"
)

// ValidateIDPresent ensures that an identifier is non-empty.
func ValidateIDPresent(id, fieldName string) error {
	if id == "" {
		return fmt.Errorf("%s is required", fieldName)
	}
	return nil
}

// ValidateSubmit checks an exam submission before it is sent.
func ValidateSubmit(req SubmitExamRequest) error {
	if req.ElapsedSeconds < 0 {
		return fmt.Errorf("elapsedSeconds must be >= 0")
	}
	seen := make(map[string]struct{}, len(req.Answers))
	for _, a := range req.Answers {
		if err := ValidateIDPresent(a.QuestionID, "answer.questionId"); err != nil {
			return err
		}
		if _, dup := seen[a.QuestionID]; dup {
			return fmt.Errorf("duplicate answer for question %s", a.QuestionID)
		}
		seen[a.QuestionID] = struct{}{}
	}
	return nil
}
