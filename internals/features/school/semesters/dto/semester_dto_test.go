// file: internals/features/school/semesters/dto/semester_dto_test.go
package dto

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"campushub_backend/internals/features/school/semesters/model"
)

func TestToSemesterResponseDerivesAcademicYear(t *testing.T) {
	m := &model.SemesterModel{
		SemesterID:   uuid.New(),
		SemesterCode: "SEM5",
		SemesterName: "Fifth Semester",
		SemesterYear: 2026,
	}

	out := ToSemesterResponse(m, "CS2A", "google:123", []string{"CS501"})
	assert.Equal(t, 3, out.AcademicYear)
	assert.Equal(t, "SEM5", out.SemCode)
	assert.Equal(t, "CS2A", out.ClassCode)

	// even-numbered semesters share the year of the preceding odd one
	m.SemesterCode = "SEM2"
	assert.Equal(t, 1, ToSemesterResponse(m, "CS2A", "google:123", nil).AcademicYear)
}

func TestToSemesterResponseUnparseableCode(t *testing.T) {
	m := &model.SemesterModel{SemesterCode: "MONSOON"}
	assert.Equal(t, 0, ToSemesterResponse(m, "", "", nil).AcademicYear)
}
