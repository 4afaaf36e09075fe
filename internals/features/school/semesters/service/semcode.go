// file: internals/features/school/semesters/service/semcode.go
package service

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"campushub_backend/internals/features/school/semesters/model"
)

// NormalizeSemCode uppercases and trims a semester code ("sem3" → "SEM3").
func NormalizeSemCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// ParseSemNumber extracts the ordinal from codes like "SEM3" or "S3".
func ParseSemNumber(code string) (int, error) {
	code = NormalizeSemCode(code)
	digits := strings.TrimLeft(code, "ABCDEFGHIJKLMNOPQRSTUVWXYZ")
	n, err := strconv.Atoi(digits)
	if err != nil || n < 1 || n > 10 {
		return 0, fmt.Errorf("invalid semester code %q", code)
	}
	return n, nil
}

// AcademicYearFor maps a semester ordinal to the study year it falls in
// (SEM1/SEM2 → 1, SEM3/SEM4 → 2, ...).
func AcademicYearFor(semNumber int) int {
	if semNumber < 1 {
		return 0
	}
	return (semNumber + 1) / 2
}

// SortByOrdinal orders semesters by their parsed ordinal, so "SEM2" lists
// before "SEM10". Unparseable codes sink to the end, sorted lexically.
func SortByOrdinal(rows []model.SemesterModel) {
	sort.SliceStable(rows, func(i, j int) bool {
		ni, ei := ParseSemNumber(rows[i].SemesterCode)
		nj, ej := ParseSemNumber(rows[j].SemesterCode)
		if (ei == nil) != (ej == nil) {
			return ei == nil
		}
		if ni != nj {
			return ni < nj
		}
		return rows[i].SemesterCode < rows[j].SemesterCode
	})
}

// StatusFor derives the lifecycle status from the term dates. Missing dates
// leave a new semester UPCOMING.
func StatusFor(start, end *time.Time, now time.Time) string {
	if start == nil {
		return model.StatusUpcoming
	}
	if now.Before(*start) {
		return model.StatusUpcoming
	}
	if end != nil && now.After(*end) {
		return model.StatusCompleted
	}
	return model.StatusOngoing
}
