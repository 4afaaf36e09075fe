// file: internals/features/school/classes/dto/class_dto.go
package dto

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/classes/model"
)

type CreateClassRequest struct {
	ClassCode  string `json:"class_code" form:"class_code" validate:"required,min=2,max=40"`
	Name       string `json:"name"       form:"name"       validate:"required,min=2,max=120"`
	Batch      string `json:"batch"      form:"batch"      validate:"required,max=40"`
	Year       int    `json:"year"       form:"year"       validate:"required,min=1,max=4"`
	Department string `json:"department" form:"department" validate:"required,max=80"`
	Section    string `json:"section"    form:"section"    validate:"required,max=10"`
}

// Normalize uppercases the business identifier and trims whitespace.
func (r *CreateClassRequest) Normalize() {
	r.ClassCode = strings.ToUpper(strings.TrimSpace(r.ClassCode))
	r.Name = strings.TrimSpace(r.Name)
	r.Batch = strings.TrimSpace(r.Batch)
	r.Department = strings.TrimSpace(r.Department)
	r.Section = strings.ToUpper(strings.TrimSpace(r.Section))
}

type ClassResponse struct {
	ClassID           uuid.UUID  `json:"class_id"`
	ClassCode         string     `json:"class_code"`
	Name              string     `json:"name"`
	Batch             string     `json:"batch"`
	Year              int        `json:"year"`
	Department        string     `json:"department"`
	Section           string     `json:"section"`
	PhotoURL          *string    `json:"photo_url,omitempty"`
	CurrentSemesterID *uuid.UUID `json:"current_semester_id,omitempty"`
	CRs               []string   `json:"crs"`
	CAs               []string   `json:"cas"`
	Students          []string   `json:"students"`
	CreatedAt         time.Time  `json:"created_at"`
}

func ToClassResponse(m *model.ClassModel) ClassResponse {
	return ClassResponse{
		ClassID:           m.ClassID,
		ClassCode:         m.ClassCode,
		Name:              m.ClassName,
		Batch:             m.ClassBatch,
		Year:              m.ClassYear,
		Department:        m.ClassDepartment,
		Section:           m.ClassSection,
		PhotoURL:          m.ClassPhotoURL,
		CurrentSemesterID: m.ClassCurrentSemesterID,
		CRs:               m.ClassCRIDs,
		CAs:               m.ClassCAIDs,
		Students:          m.ClassStudentIDs,
		CreatedAt:         m.ClassCreatedAt,
	}
}
