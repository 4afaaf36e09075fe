// file: internals/features/school/assignments/dto/assignment_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"
)

type CreateAssignmentRequest struct {
	CourseID   uuid.UUID `json:"course_id"   validate:"required"`
	FacultyID  uuid.UUID `json:"faculty_id"  validate:"required"`
	ClassID    uuid.UUID `json:"class_id"    validate:"required"`
	SemesterID uuid.UUID `json:"semester_id" validate:"required"`
	Year       int       `json:"year"        validate:"required,min=2000,max=2100"`
	Section    *string   `json:"section"     validate:"omitempty,max=10"`
}

type FacultyInfo struct {
	Name     string  `json:"name"`
	Email    *string `json:"email,omitempty"`
	PhotoURL *string `json:"photo_url,omitempty"`
}

type SemesterInfo struct {
	Name      string     `json:"name"`
	StartDate *time.Time `json:"start_date,omitempty"`
	EndDate   *time.Time `json:"end_date,omitempty"`
}

// SemesterCourse is the flattened entry returned when resolving a class's
// effective course list for a semester.
type SemesterCourse struct {
	AssignmentID uuid.UUID   `json:"assignment_id"`
	CourseID     uuid.UUID   `json:"course_id"`
	Code         string      `json:"code"`
	Title        string      `json:"title"`
	Credits      int         `json:"credits"`
	Faculty      FacultyInfo `json:"faculty"`
	AssignedAt   time.Time   `json:"assigned_at"`
}

// SingleCourse additionally carries the semester window.
type SingleCourse struct {
	SemesterCourse
	Semester SemesterInfo `json:"semester"`
}
