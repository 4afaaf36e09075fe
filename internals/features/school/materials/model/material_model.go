// file: internals/features/school/materials/model/material_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Material types share one table; the type column picks which extra fields
// are meaningful.
const (
	TypeDeadline       = "deadline"
	TypeSyllabus       = "syllabus"
	TypeCourseMaterial = "material"
	TypeSharedNote     = "shared_note"
	TypeWhiteboardShot = "whiteboard"
)

func IsValidMaterialType(t string) bool {
	switch t {
	case TypeDeadline, TypeSyllabus, TypeCourseMaterial, TypeSharedNote, TypeWhiteboardShot:
		return true
	}
	return false
}

const (
	DeadlineStatusPending = "PENDING"
	DeadlineStatusClosed  = "CLOSED"
)

// MaterialModel maps the materials table: every instructional artifact
// scoped to (course, semester, class) with a type discriminator.
type MaterialModel struct {
	MaterialID   uuid.UUID `json:"material_id"   gorm:"column:material_id;type:uuid;default:gen_random_uuid();primaryKey"`
	MaterialType string    `json:"material_type" gorm:"column:material_type;type:varchar(20);not null;index:idx_materials_scope"`

	MaterialTitle       string  `json:"material_title"                 gorm:"column:material_title;type:varchar(160);not null"`
	MaterialDescription *string `json:"material_description,omitempty" gorm:"column:material_description;type:text"`

	MaterialUploaderID uuid.UUID `json:"material_uploader_id" gorm:"column:material_uploader_id;type:uuid;not null"`
	MaterialCourseID   uuid.UUID `json:"material_course_id"   gorm:"column:material_course_id;type:uuid;not null;index:idx_materials_scope"`
	MaterialSemesterID uuid.UUID `json:"material_semester_id" gorm:"column:material_semester_id;type:uuid;not null;index:idx_materials_scope"`
	MaterialClassID    uuid.UUID `json:"material_class_id"    gorm:"column:material_class_id;type:uuid;not null"`

	MaterialFileURL       *string `json:"material_file_url,omitempty"        gorm:"column:material_file_url;type:text"`
	MaterialFileObjectKey *string `json:"material_file_object_key,omitempty" gorm:"column:material_file_object_key;type:text"`
	MaterialFileMime      *string `json:"material_file_mime,omitempty"       gorm:"column:material_file_mime;type:varchar(100)"`

	// deadline
	MaterialDueDate        *time.Time `json:"material_due_date,omitempty"        gorm:"column:material_due_date;type:timestamptz"`
	MaterialDeadlineStatus *string    `json:"material_deadline_status,omitempty" gorm:"column:material_deadline_status;type:varchar(20)"`

	// syllabus: JSONB array of per-unit file entries
	MaterialUnits datatypes.JSON `json:"material_units,omitempty" gorm:"column:material_units;type:jsonb"`

	// shared note: user ids that liked it
	MaterialLikes pq.StringArray `json:"material_likes" gorm:"column:material_likes;type:text[]"`

	// whiteboard shot
	MaterialLectureDate *time.Time `json:"material_lecture_date,omitempty" gorm:"column:material_lecture_date;type:date"`

	MaterialCreatedAt time.Time      `json:"material_created_at"           gorm:"column:material_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	MaterialUpdatedAt time.Time      `json:"material_updated_at"           gorm:"column:material_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	MaterialDeletedAt gorm.DeletedAt `json:"material_deleted_at,omitempty" gorm:"column:material_deleted_at;type:timestamptz;index"`
}

func (MaterialModel) TableName() string { return "materials" }
