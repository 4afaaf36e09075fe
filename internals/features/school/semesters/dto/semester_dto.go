// file: internals/features/school/semesters/dto/semester_dto.go
package dto

import (
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/semesters/model"
	"campushub_backend/internals/features/school/semesters/service"
)

type CreateSemesterRequest struct {
	Name      string     `json:"name"       validate:"required,min=2,max=120"`
	SemCode   string     `json:"semcode"    validate:"required,min=2,max=20"`
	Year      int        `json:"year"       validate:"required,min=2000,max=2100"`
	ClassCode string     `json:"class_code" validate:"required"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

type UpdateSemesterRequest struct {
	Name      *string    `json:"name"    validate:"omitempty,min=2,max=120"`
	SemCode   *string    `json:"semcode" validate:"omitempty,min=2,max=20"`
	Year      *int       `json:"year"    validate:"omitempty,min=2000,max=2100"`
	StartDate *time.Time `json:"start_date"`
	EndDate   *time.Time `json:"end_date"`
}

// SemesterResponse is business-id-first: the class and creator appear as
// their business identifiers, only the semester itself is addressed by its
// internal id.
type SemesterResponse struct {
	ID      uuid.UUID `json:"id"`
	Name    string    `json:"name"`
	SemCode string    `json:"semcode"`
	Year    int       `json:"year"`
	// Study year derived from the semcode ordinal (SEM3 → year 2).
	AcademicYear int        `json:"academic_year"`
	Status       string     `json:"status"`
	StartDate    *time.Time `json:"start_date,omitempty"`
	EndDate      *time.Time `json:"end_date,omitempty"`
	ClassCode    string     `json:"class_code"`
	CreatedBy    string     `json:"created_by"`
	Courses      []string   `json:"courses,omitempty"`
	CreatedAt    time.Time  `json:"created_at"`
}

func ToSemesterResponse(m *model.SemesterModel, classCode, creatorUID string, courses []string) SemesterResponse {
	academicYear := 0
	if n, err := service.ParseSemNumber(m.SemesterCode); err == nil {
		academicYear = service.AcademicYearFor(n)
	}
	return SemesterResponse{
		ID:           m.SemesterID,
		Name:         m.SemesterName,
		SemCode:      m.SemesterCode,
		Year:         m.SemesterYear,
		AcademicYear: academicYear,
		Status:       m.SemesterStatus,
		StartDate:    m.SemesterStartDate,
		EndDate:      m.SemesterEndDate,
		ClassCode:    classCode,
		CreatedBy:    creatorUID,
		Courses:      courses,
		CreatedAt:    m.SemesterCreatedAt,
	}
}
