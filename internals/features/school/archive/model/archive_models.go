// file: internals/features/school/archive/model/archive_models.go
package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// HonorModel is one entry on the class achievements board.
type HonorModel struct {
	HonorID      uuid.UUID `json:"honor_id"       gorm:"column:honor_id;type:uuid;default:gen_random_uuid();primaryKey"`
	HonorClassID uuid.UUID `json:"honor_class_id" gorm:"column:honor_class_id;type:uuid;not null;index"`

	HonorTitle       string  `json:"honor_title"                 gorm:"column:honor_title;type:varchar(160);not null"`
	HonorDescription *string `json:"honor_description,omitempty" gorm:"column:honor_description;type:text"`
	HonorStudentName string  `json:"honor_student_name"          gorm:"column:honor_student_name;type:varchar(120);not null"`
	HonorPhotoURL    *string `json:"honor_photo_url,omitempty"   gorm:"column:honor_photo_url;type:text"`
	HonorPhotoKey    *string `json:"honor_photo_key,omitempty"   gorm:"column:honor_photo_key;type:text"`

	HonorCreatedBy uuid.UUID      `json:"honor_created_by"           gorm:"column:honor_created_by;type:uuid;not null"`
	HonorCreatedAt time.Time      `json:"honor_created_at"           gorm:"column:honor_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	HonorDeletedAt gorm.DeletedAt `json:"honor_deleted_at,omitempty" gorm:"column:honor_deleted_at;type:timestamptz;index"`
}

func (HonorModel) TableName() string { return "honors" }

// PyqModel stores a previous-year question paper.
type PyqModel struct {
	PyqID uuid.UUID `json:"pyq_id" gorm:"column:pyq_id;type:uuid;default:gen_random_uuid();primaryKey"`

	PyqCourseCode string `json:"pyq_course_code" gorm:"column:pyq_course_code;type:varchar(40);not null;index"`
	PyqYear       int    `json:"pyq_year"        gorm:"column:pyq_year;not null"`
	PyqSemTag     string `json:"pyq_sem_tag"     gorm:"column:pyq_sem_tag;type:varchar(20);not null"`

	PyqFileURL string `json:"pyq_file_url" gorm:"column:pyq_file_url;type:text;not null"`
	PyqFileKey string `json:"pyq_file_key" gorm:"column:pyq_file_key;type:text;not null"`

	PyqUploadedBy uuid.UUID      `json:"pyq_uploaded_by"          gorm:"column:pyq_uploaded_by;type:uuid;not null"`
	PyqCreatedAt  time.Time      `json:"pyq_created_at"           gorm:"column:pyq_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	PyqDeletedAt  gorm.DeletedAt `json:"pyq_deleted_at,omitempty" gorm:"column:pyq_deleted_at;type:timestamptz;index"`
}

func (PyqModel) TableName() string { return "pyqs" }

// SharedLinkModel is a class-scoped bookmark (meet links, drive folders).
type SharedLinkModel struct {
	LinkID      uuid.UUID `json:"link_id"       gorm:"column:link_id;type:uuid;default:gen_random_uuid();primaryKey"`
	LinkClassID uuid.UUID `json:"link_class_id" gorm:"column:link_class_id;type:uuid;not null;index"`

	LinkTitle string `json:"link_title" gorm:"column:link_title;type:varchar(160);not null"`
	LinkURL   string `json:"link_url"   gorm:"column:link_url;type:text;not null"`

	LinkCreatedBy uuid.UUID      `json:"link_created_by"           gorm:"column:link_created_by;type:uuid;not null"`
	LinkCreatedAt time.Time      `json:"link_created_at"           gorm:"column:link_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	LinkDeletedAt gorm.DeletedAt `json:"link_deleted_at,omitempty" gorm:"column:link_deleted_at;type:timestamptz;index"`
}

func (SharedLinkModel) TableName() string { return "shared_links" }

// SemesterAssetModel is a semester-scoped file that belongs to no single
// course (calendars, fee circulars).
type SemesterAssetModel struct {
	AssetID         uuid.UUID `json:"asset_id"          gorm:"column:asset_id;type:uuid;default:gen_random_uuid();primaryKey"`
	AssetSemesterID uuid.UUID `json:"asset_semester_id" gorm:"column:asset_semester_id;type:uuid;not null;index"`

	AssetTitle   string `json:"asset_title"    gorm:"column:asset_title;type:varchar(160);not null"`
	AssetFileURL string `json:"asset_file_url" gorm:"column:asset_file_url;type:text;not null"`
	AssetFileKey string `json:"asset_file_key" gorm:"column:asset_file_key;type:text;not null"`

	AssetUploadedBy uuid.UUID      `json:"asset_uploaded_by"          gorm:"column:asset_uploaded_by;type:uuid;not null"`
	AssetCreatedAt  time.Time      `json:"asset_created_at"           gorm:"column:asset_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	AssetDeletedAt  gorm.DeletedAt `json:"asset_deleted_at,omitempty" gorm:"column:asset_deleted_at;type:timestamptz;index"`
}

func (SemesterAssetModel) TableName() string { return "semester_assets" }
