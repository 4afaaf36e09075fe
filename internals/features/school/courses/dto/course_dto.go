// file: internals/features/school/courses/dto/course_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/courses/model"
)

type CreateCourseRequest struct {
	Code    string `json:"code"    validate:"required,min=2,max=40"`
	Title   string `json:"title"   validate:"required,min=2,max=160"`
	SemTag  string `json:"sem_tag" validate:"required,min=2,max=20"`
	Credits int    `json:"credits" validate:"required,min=1,max=10"`
}

func (r *CreateCourseRequest) Normalize() {
	r.Code = strings.ToUpper(strings.TrimSpace(r.Code))
	r.Title = strings.TrimSpace(r.Title)
	r.SemTag = strings.ToUpper(strings.TrimSpace(r.SemTag))
}

type UpdateCourseRequest struct {
	Title   *string `json:"title"   validate:"omitempty,min=2,max=160"`
	Credits *int    `json:"credits" validate:"omitempty,min=1,max=10"`
}

type CourseResponse struct {
	CourseID  uuid.UUID `json:"course_id"`
	Code      string    `json:"code"`
	Title     string    `json:"title"`
	SemTag    string    `json:"sem_tag"`
	Credits   int       `json:"credits"`
	Faculty   []string  `json:"faculty,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

func ToCourseResponse(m *model.CourseModel) CourseResponse {
	return CourseResponse{
		CourseID:  m.CourseID,
		Code:      m.CourseCode,
		Title:     m.CourseTitle,
		SemTag:    m.CourseSemTag,
		Credits:   m.CourseCredits,
		Faculty:   m.CourseFacultyIDs,
		CreatedAt: m.CourseCreatedAt,
	}
}
