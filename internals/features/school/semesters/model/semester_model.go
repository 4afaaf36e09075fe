// file: internals/features/school/semesters/model/semester_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	StatusUpcoming  = "UPCOMING"
	StatusOngoing   = "ONGOING"
	StatusCompleted = "COMPLETED"
)

// SemesterModel maps the semesters table. (class_id, semcode) is unique so a
// class can never hold two "SEM3" terms.
type SemesterModel struct {
	SemesterID      uuid.UUID `json:"semester_id"       gorm:"column:semester_id;type:uuid;default:gen_random_uuid();primaryKey"`
	SemesterClassID uuid.UUID `json:"semester_class_id" gorm:"column:semester_class_id;type:uuid;not null;uniqueIndex:uq_semesters_class_semcode"`
	SemesterCode    string    `json:"semester_code"     gorm:"column:semester_code;type:varchar(20);not null;uniqueIndex:uq_semesters_class_semcode"`

	SemesterName      string     `json:"semester_name"                 gorm:"column:semester_name;type:varchar(120);not null"`
	SemesterYear      int        `json:"semester_year"                 gorm:"column:semester_year;not null"`
	SemesterStartDate *time.Time `json:"semester_start_date,omitempty" gorm:"column:semester_start_date;type:date"`
	SemesterEndDate   *time.Time `json:"semester_end_date,omitempty"   gorm:"column:semester_end_date;type:date"`
	SemesterStatus    string     `json:"semester_status"               gorm:"column:semester_status;type:varchar(20);not null;default:'UPCOMING'"`

	SemesterCreatedBy uuid.UUID `json:"semester_created_by" gorm:"column:semester_created_by;type:uuid;not null"`

	SemesterCreatedAt time.Time      `json:"semester_created_at"           gorm:"column:semester_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	SemesterUpdatedAt time.Time      `json:"semester_updated_at"           gorm:"column:semester_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	SemesterDeletedAt gorm.DeletedAt `json:"semester_deleted_at,omitempty" gorm:"column:semester_deleted_at;type:timestamptz;index"`
}

func (SemesterModel) TableName() string { return "semesters" }
