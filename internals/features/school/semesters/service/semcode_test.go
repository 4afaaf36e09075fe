// file: internals/features/school/semesters/service/semcode_test.go
package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"campushub_backend/internals/features/school/semesters/model"
)

func TestNormalizeSemCode(t *testing.T) {
	assert.Equal(t, "SEM3", NormalizeSemCode(" sem3 "))
	assert.Equal(t, "SEM10", NormalizeSemCode("Sem10"))
}

func TestParseSemNumber(t *testing.T) {
	n, err := ParseSemNumber("sem3")
	require.NoError(t, err)
	assert.Equal(t, 3, n)

	n, err = ParseSemNumber("S8")
	require.NoError(t, err)
	assert.Equal(t, 8, n)

	_, err = ParseSemNumber("SEM0")
	assert.Error(t, err)

	_, err = ParseSemNumber("SEM11")
	assert.Error(t, err)

	_, err = ParseSemNumber("FALL")
	assert.Error(t, err)
}

func TestAcademicYearFor(t *testing.T) {
	assert.Equal(t, 1, AcademicYearFor(1))
	assert.Equal(t, 1, AcademicYearFor(2))
	assert.Equal(t, 2, AcademicYearFor(3))
	assert.Equal(t, 2, AcademicYearFor(4))
	assert.Equal(t, 4, AcademicYearFor(8))
	assert.Equal(t, 0, AcademicYearFor(0))
}

func TestSortByOrdinal(t *testing.T) {
	rows := []model.SemesterModel{
		{SemesterCode: "SEM10"},
		{SemesterCode: "SEM2"},
		{SemesterCode: "MONSOON"},
		{SemesterCode: "SEM1"},
	}

	SortByOrdinal(rows)

	require.Len(t, rows, 4)
	assert.Equal(t, "SEM1", rows[0].SemesterCode)
	assert.Equal(t, "SEM2", rows[1].SemesterCode)
	assert.Equal(t, "SEM10", rows[2].SemesterCode)
	assert.Equal(t, "MONSOON", rows[3].SemesterCode)
}

func TestStatusFor(t *testing.T) {
	now := time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)
	before := now.AddDate(0, -2, 0)
	after := now.AddDate(0, 2, 0)

	assert.Equal(t, model.StatusUpcoming, StatusFor(nil, nil, now))
	assert.Equal(t, model.StatusUpcoming, StatusFor(&after, nil, now))
	assert.Equal(t, model.StatusOngoing, StatusFor(&before, nil, now))
	assert.Equal(t, model.StatusOngoing, StatusFor(&before, &after, now))

	endedStart := now.AddDate(0, -8, 0)
	endedEnd := now.AddDate(0, -2, 0)
	assert.Equal(t, model.StatusCompleted, StatusFor(&endedStart, &endedEnd, now))
}
