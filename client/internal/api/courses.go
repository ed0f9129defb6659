package api

import (
	"context"

	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/rest"
	"github.com/nguyencmc/app-exam-test-online-sub002/client/internal/types"
)

// ListCourses returns the course catalog.
func ListCourses(ctx context.Context, p *rest.Pipeline) ([]types.Course, error) {
	return get[[]types.Course](ctx, p, "/courses")
}

// GetCourse retrieves a course by ID.
func GetCourse(ctx context.Context, p *rest.Pipeline, courseID string) (*types.Course, error) {
	endpoint, err := byID("/courses", courseID, "courseId")
	if err != nil {
		return nil, err
	}
	return getOne[types.Course](ctx, p, endpoint)
}
