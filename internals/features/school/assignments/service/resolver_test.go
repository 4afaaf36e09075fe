// file: internals/features/school/assignments/service/resolver_test.go
package service

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	userModel "campushub_backend/internals/features/users/user/model"
)

func TestValidateCreateInput(t *testing.T) {
	course := uuid.New()
	faculty := uuid.New()
	class := uuid.New()
	sem := uuid.New()

	assert.NoError(t, ValidateCreateInput(course, faculty, class, sem, 2026, "uid-1"))

	assert.ErrorIs(t, ValidateCreateInput(uuid.Nil, faculty, class, sem, 2026, "uid-1"), ErrFieldsRequired)
	assert.ErrorIs(t, ValidateCreateInput(course, uuid.Nil, class, sem, 2026, "uid-1"), ErrFieldsRequired)
	assert.ErrorIs(t, ValidateCreateInput(course, faculty, uuid.Nil, sem, 2026, "uid-1"), ErrFieldsRequired)
	assert.ErrorIs(t, ValidateCreateInput(course, faculty, class, uuid.Nil, 2026, "uid-1"), ErrFieldsRequired)
	assert.ErrorIs(t, ValidateCreateInput(course, faculty, class, sem, 0, "uid-1"), ErrFieldsRequired)
	assert.ErrorIs(t, ValidateCreateInput(course, faculty, class, sem, 2026, ""), ErrFieldsRequired)
}

func TestCheckFacultyRole(t *testing.T) {
	assert.ErrorIs(t, CheckFacultyRole(nil), ErrNotFaculty)

	student := &userModel.UserModel{UserRole: userModel.RoleStudent}
	assert.ErrorIs(t, CheckFacultyRole(student), ErrNotFaculty)

	admin := &userModel.UserModel{UserRole: userModel.RoleAdmin}
	assert.ErrorIs(t, CheckFacultyRole(admin), ErrNotFaculty)

	faculty := &userModel.UserModel{UserRole: userModel.RoleFaculty}
	assert.NoError(t, CheckFacultyRole(faculty))
}

func TestFlattenRowsSortsByCourseCode(t *testing.T) {
	at := time.Now()
	rows := []AssignmentRow{
		{AssignmentID: uuid.New(), CourseCode: "MA201", CourseTitle: "Linear Algebra", CourseCredits: 4, UserName: "Dr. Rao", AssignmentAssignedAt: at},
		{AssignmentID: uuid.New(), CourseCode: "CS101", CourseTitle: "Programming I", CourseCredits: 3, UserName: "Dr. Iyer", AssignmentAssignedAt: at},
		{AssignmentID: uuid.New(), CourseCode: "EE150", CourseTitle: "Circuits", CourseCredits: 3, UserName: "Dr. Das", AssignmentAssignedAt: at},
	}

	out := FlattenRows(rows)
	require.Len(t, out, 3)
	assert.Equal(t, "CS101", out[0].Code)
	assert.Equal(t, "EE150", out[1].Code)
	assert.Equal(t, "MA201", out[2].Code)
	assert.Equal(t, "Dr. Iyer", out[0].Faculty.Name)
	assert.Equal(t, 3, out[0].Credits)
}

func TestFlattenRowsEmpty(t *testing.T) {
	out := FlattenRows(nil)
	require.NotNil(t, out)
	assert.Empty(t, out)
}
