// file: internals/features/school/classes/model/class_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// ClassModel maps the classes table. class_code is the business identifier
// (e.g. "CS2A"), always stored uppercase.
type ClassModel struct {
	ClassID   uuid.UUID `json:"class_id"   gorm:"column:class_id;type:uuid;default:gen_random_uuid();primaryKey"`
	ClassCode string    `json:"class_code" gorm:"column:class_code;type:varchar(40);not null;uniqueIndex"`

	ClassName       string `json:"class_name"       gorm:"column:class_name;type:varchar(120);not null"`
	ClassBatch      string `json:"class_batch"      gorm:"column:class_batch;type:varchar(40);not null"`
	ClassYear       int    `json:"class_year"       gorm:"column:class_year;not null;uniqueIndex:uq_classes_dept_year_section"`
	ClassDepartment string `json:"class_department" gorm:"column:class_department;type:varchar(80);not null;uniqueIndex:uq_classes_dept_year_section"`
	ClassSection    string `json:"class_section"    gorm:"column:class_section;type:varchar(10);not null;uniqueIndex:uq_classes_dept_year_section"`

	ClassPhotoURL       *string `json:"class_photo_url,omitempty"        gorm:"column:class_photo_url;type:text"`
	ClassPhotoObjectKey *string `json:"class_photo_object_key,omitempty" gorm:"column:class_photo_object_key;type:text"`

	// Pointer to the semester currently considered active for this class.
	ClassCurrentSemesterID *uuid.UUID `json:"class_current_semester_id,omitempty" gorm:"column:class_current_semester_id;type:uuid"`

	// Role-filtered membership lists (user ids). Role checks happen in the
	// service layer before these are touched.
	ClassCRIDs      pq.StringArray `json:"class_cr_ids"      gorm:"column:class_cr_ids;type:text[]"`
	ClassCAIDs      pq.StringArray `json:"class_ca_ids"      gorm:"column:class_ca_ids;type:text[]"`
	ClassStudentIDs pq.StringArray `json:"class_student_ids" gorm:"column:class_student_ids;type:text[]"`

	ClassCreatedAt time.Time      `json:"class_created_at"           gorm:"column:class_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	ClassUpdatedAt time.Time      `json:"class_updated_at"           gorm:"column:class_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	ClassDeletedAt gorm.DeletedAt `json:"class_deleted_at,omitempty" gorm:"column:class_deleted_at;type:timestamptz;index"`
}

func (ClassModel) TableName() string { return "classes" }
