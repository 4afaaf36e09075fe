// file: internals/features/school/assignments/model/course_assignment_model.go
package model

import (
	"time"

	"github.com/google/uuid"
)

// CourseAssignmentModel binds a course to a faculty user within a class and
// semester. The semester is a real reference, not a code string, and the
// quadruple is unique so the same pairing cannot be assigned twice.
type CourseAssignmentModel struct {
	AssignmentID uuid.UUID `json:"assignment_id" gorm:"column:assignment_id;type:uuid;default:gen_random_uuid();primaryKey"`

	AssignmentCourseID   uuid.UUID `json:"assignment_course_id"   gorm:"column:assignment_course_id;type:uuid;not null;uniqueIndex:uq_assignments_quad"`
	AssignmentFacultyID  uuid.UUID `json:"assignment_faculty_id"  gorm:"column:assignment_faculty_id;type:uuid;not null;uniqueIndex:uq_assignments_quad"`
	AssignmentClassID    uuid.UUID `json:"assignment_class_id"    gorm:"column:assignment_class_id;type:uuid;not null;uniqueIndex:uq_assignments_quad"`
	AssignmentSemesterID uuid.UUID `json:"assignment_semester_id" gorm:"column:assignment_semester_id;type:uuid;not null;uniqueIndex:uq_assignments_quad"`

	AssignmentYear    int     `json:"assignment_year"              gorm:"column:assignment_year;not null"`
	AssignmentSection *string `json:"assignment_section,omitempty" gorm:"column:assignment_section;type:varchar(10)"`

	AssignmentAssignedBy string    `json:"assignment_assigned_by" gorm:"column:assignment_assigned_by;type:varchar(128);not null"`
	AssignmentAssignedAt time.Time `json:"assignment_assigned_at" gorm:"column:assignment_assigned_at;type:timestamptz;not null;default:now();autoCreateTime"`
}

func (CourseAssignmentModel) TableName() string { return "course_assignments" }
