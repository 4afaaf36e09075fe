// file: internals/features/school/materials/dto/material_dto.go
package dto

import (
	"strings"
	"time"
)

type UploadMaterialRequest struct {
	Title       string     `json:"title"        form:"title"        validate:"required,min=2,max=160"`
	Description *string    `json:"description"  form:"description"  validate:"omitempty,max=2000"`
	ClassID     string     `json:"class_id"     form:"class_id"     validate:"omitempty,uuid"`
	DueDate     *time.Time `json:"due_date"     form:"due_date"`
	Unit        *int       `json:"unit"         form:"unit"         validate:"omitempty,min=1,max=20"`
	LectureDate *time.Time `json:"lecture_date" form:"lecture_date"`
}

func (r *UploadMaterialRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	if r.Description != nil {
		d := strings.TrimSpace(*r.Description)
		r.Description = &d
	}
}

type UpdateMaterialRequest struct {
	Title          *string    `json:"title"           form:"title"           validate:"omitempty,min=2,max=160"`
	Description    *string    `json:"description"     form:"description"     validate:"omitempty,max=2000"`
	DueDate        *time.Time `json:"due_date"        form:"due_date"`
	DeadlineStatus *string    `json:"deadline_status" form:"deadline_status" validate:"omitempty,oneof=PENDING CLOSED"`
}
