// file: internals/features/school/courses/model/course_model.go
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"
)

// CourseModel maps the courses table. A course exists independently of any
// assignment; binding to a class/semester happens in course_assignments.
type CourseModel struct {
	CourseID   uuid.UUID `json:"course_id"   gorm:"column:course_id;type:uuid;default:gen_random_uuid();primaryKey"`
	CourseCode string    `json:"course_code" gorm:"column:course_code;type:varchar(40);not null;uniqueIndex"`

	CourseTitle   string `json:"course_title"   gorm:"column:course_title;type:varchar(160);not null"`
	CourseSemTag  string `json:"course_sem_tag" gorm:"column:course_sem_tag;type:varchar(20);not null"`
	CourseCredits int    `json:"course_credits" gorm:"column:course_credits;not null"`

	// Faculty user ids attached to this course over time.
	CourseFacultyIDs pq.StringArray `json:"course_faculty_ids" gorm:"column:course_faculty_ids;type:text[]"`

	CourseCreatedAt time.Time      `json:"course_created_at"           gorm:"column:course_created_at;type:timestamptz;not null;default:now();autoCreateTime"`
	CourseUpdatedAt time.Time      `json:"course_updated_at"           gorm:"column:course_updated_at;type:timestamptz;not null;default:now();autoUpdateTime"`
	CourseDeletedAt gorm.DeletedAt `json:"course_deleted_at,omitempty" gorm:"column:course_deleted_at;type:timestamptz;index"`
}

func (CourseModel) TableName() string { return "courses" }
