// file: internals/features/school/assignments/service/resolver.go
package service

import (
	"errors"
	"sort"
	"time"

	"github.com/google/uuid"

	"campushub_backend/internals/features/school/assignments/dto"
	userModel "campushub_backend/internals/features/users/user/model"
)

var (
	ErrFieldsRequired = errors.New("All fields required")
	ErrNotFaculty     = errors.New("Faculty not found or invalid role")
)

// ValidateCreateInput enforces the six-fields precondition before any store
// round trip.
func ValidateCreateInput(courseID, facultyID, classID, semesterID uuid.UUID, year int, assignedBy string) error {
	if courseID == uuid.Nil || facultyID == uuid.Nil || classID == uuid.Nil ||
		semesterID == uuid.Nil || year == 0 || assignedBy == "" {
		return ErrFieldsRequired
	}
	return nil
}

// CheckFacultyRole rejects users that exist but hold a non-faculty role;
// callers must not leak whether the id resolved at all.
func CheckFacultyRole(u *userModel.UserModel) error {
	if u == nil || u.UserRole != userModel.RoleFaculty {
		return ErrNotFaculty
	}
	return nil
}

// AssignmentRow is the flat join shape scanned from the store.
type AssignmentRow struct {
	AssignmentID         uuid.UUID
	AssignmentCourseID   uuid.UUID
	AssignmentAssignedAt time.Time
	CourseCode           string
	CourseTitle          string
	CourseCredits        int
	UserName             string
	UserEmail            *string
	UserPhotoURL         *string
}

// FlattenRows shapes join rows into the client DTO, sorted by course code
// ascending. Resolution order is deliberately fixed here so the client never
// depends on store iteration order.
func FlattenRows(rows []AssignmentRow) []dto.SemesterCourse {
	out := make([]dto.SemesterCourse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.SemesterCourse{
			AssignmentID: r.AssignmentID,
			CourseID:     r.AssignmentCourseID,
			Code:         r.CourseCode,
			Title:        r.CourseTitle,
			Credits:      r.CourseCredits,
			Faculty: dto.FacultyInfo{
				Name:     r.UserName,
				Email:    r.UserEmail,
				PhotoURL: r.UserPhotoURL,
			},
			AssignedAt: r.AssignmentAssignedAt,
		})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Code < out[j].Code })
	return out
}
