package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTermGPA_BasicAverage(t *testing.T) {
	courses := []PlannedCourse{
		{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB},
	}

	// 4.0*3 + 3.0*3 = 21 quality points over 6 credits.
	assert.Equal(t, 3.5, TermGPA(courses))
}

func TestTermGPA_ZeroCreditsIsZero(t *testing.T) {
	assert.Equal(t, 0.0, TermGPA(nil))
	assert.Equal(t, 0.0, TermGPA([]PlannedCourse{}))

	// Zero-credit completed courses never divide.
	assert.Equal(t, 0.0, TermGPA([]PlannedCourse{
		{Code: "CS 1100", Credits: 0, Status: StatusCompleted, Grade: GradeA},
	}))
}

func TestTermGPA_SkipsUngradedAndInProgress(t *testing.T) {
	courses := []PlannedCourse{
		{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		{Code: "CS 1331", Credits: 3, Status: StatusInProgress},
		{Code: "CS 1332", Credits: 3, Status: StatusPlanned},
		// Unknown grade must be skipped, not treated as an F.
		{Code: "MATH 1554", Credits: 4, Status: StatusCompleted, Grade: Grade("W")},
	}

	assert.Equal(t, 4.0, TermGPA(courses))
}

func TestTermGPA_Rounding(t *testing.T) {
	courses := []PlannedCourse{
		{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB},
		{Code: "CS 1100", Credits: 1, Status: StatusCompleted, Grade: GradeC},
	}

	// 23/7 = 3.2857... rounds to 3.29, never truncates to 3.28.
	assert.Equal(t, 3.29, TermGPA(courses))
}

func TestTermGPA_EarnedCreditsOverride(t *testing.T) {
	courses := []PlannedCourse{
		{Code: "CS 2340", Credits: 3, EarnedCredits: 2, Status: StatusCompleted, Grade: GradeB},
		{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
	}

	// (3.0*2 + 4.0*3) / 5 = 3.6
	assert.Equal(t, 3.6, TermGPA(courses))
}

func TestCumulativeGPA_WeightsAcrossTerms(t *testing.T) {
	terms := []*Term{
		{
			ID: "t1", Year: 2024, Season: SeasonFall,
			Courses: []PlannedCourse{
				{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
				{Code: "MATH 1551", Credits: 4, Status: StatusCompleted, Grade: GradeC},
			},
		},
		{
			ID: "t2", Year: 2025, Season: SeasonSpring,
			Courses: []PlannedCourse{
				{Code: "CS 1331", Credits: 3, Status: StatusCompleted, Grade: GradeB},
			},
		},
	}

	// (12 + 8 + 9) / 10 = 2.9 — a weighted sum, not an average of term GPAs.
	assert.Equal(t, 2.9, CumulativeGPA(terms))
}

func TestCumulativeGPA_EmptyPlan(t *testing.T) {
	assert.Equal(t, 0.0, CumulativeGPA(nil))
	assert.Equal(t, 0.0, CumulativeGPA([]*Term{{ID: "t1", Year: 2024, Season: SeasonFall}}))
}
