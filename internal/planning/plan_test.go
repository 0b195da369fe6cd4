package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPlan_AddCourseRejectsDuplicateInTerm(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))

	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3}))
	err := plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3})

	assert.ErrorIs(t, err, ErrCourseInTerm)
	assert.Len(t, plan.Term("t1").Courses, 1)
}

func TestPlan_AddCourseDefaultsStatusToPlanned(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))

	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3}))

	assert.Equal(t, StatusPlanned, plan.Term("t1").Courses[0].Status)
}

func TestPlan_AddTermRejectsDuplicateID(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))

	err := plan.AddTerm(&Term{ID: "t1", Year: 2025, Season: SeasonSpring})

	assert.ErrorIs(t, err, ErrTermAlreadyExists)
}

func TestPlan_RemoveCourse(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3}))

	require.NoError(t, plan.RemoveCourse("t1", "CS 1301"))
	assert.Empty(t, plan.Term("t1").Courses)

	assert.ErrorIs(t, plan.RemoveCourse("t1", "CS 1301"), ErrCourseNotInTerm)
	assert.ErrorIs(t, plan.RemoveCourse("missing", "CS 1301"), ErrTermNotFound)
}

func TestPlan_MoveCoursePreservesStatusAndGrade(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddTerm(&Term{ID: "t2", Year: 2025, Season: SeasonSpring}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{
		Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA,
	}))

	require.NoError(t, plan.MoveCourse("t1", "t2", "CS 1301"))

	assert.Empty(t, plan.Term("t1").Courses)
	require.Len(t, plan.Term("t2").Courses, 1)
	moved := plan.Term("t2").Courses[0]
	assert.Equal(t, StatusCompleted, moved.Status)
	assert.Equal(t, GradeA, moved.Grade)
}

func TestPlan_MoveCourseRejectsDuplicateInTarget(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddTerm(&Term{ID: "t2", Year: 2025, Season: SeasonSpring}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3}))
	require.NoError(t, plan.AddCourse("t2", PlannedCourse{Code: "CS 1301", Credits: 3}))

	err := plan.MoveCourse("t1", "t2", "CS 1301")

	assert.ErrorIs(t, err, ErrCourseInTerm)
	// The source term keeps the course when the move is rejected.
	assert.Len(t, plan.Term("t1").Courses, 1)
}

func TestPlan_SetGradeMarksCompleted(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusInProgress}))

	require.NoError(t, plan.SetGrade("t1", "CS 1301", GradeB))

	entry := plan.Term("t1").Courses[0]
	assert.Equal(t, StatusCompleted, entry.Status)
	assert.Equal(t, GradeB, entry.Grade)
}

func TestPlan_SetStatusClearsGradeWhenLeavingCompleted(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{
		Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA,
	}))

	require.NoError(t, plan.SetStatus("t1", "CS 1301", StatusPlanned))

	entry := plan.Term("t1").Courses[0]
	assert.Equal(t, StatusPlanned, entry.Status)
	assert.Empty(t, entry.Grade)
}

func TestPlan_SortedTermsChronological(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "summer25", Year: 2025, Season: SeasonSummer}))
	require.NoError(t, plan.AddTerm(&Term{ID: "fall24", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddTerm(&Term{ID: "spring25", Year: 2025, Season: SeasonSpring}))
	require.NoError(t, plan.AddTerm(&Term{ID: "fall25", Year: 2025, Season: SeasonFall}))

	var order []string
	for _, term := range plan.SortedTerms() {
		order = append(order, term.ID)
	}

	assert.Equal(t, []string{"fall24", "fall25", "spring25", "summer25"}, order)
}

func TestTerm_OverloadedIsAdvisory(t *testing.T) {
	term := &Term{ID: "t1", Year: 2024, Season: SeasonFall, MaxCredits: 18}
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(term))

	for _, code := range []string{"CS 1301", "CS 1331", "MATH 1551", "ENGL 1101"} {
		require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: code, Credits: 4}))
	}
	assert.False(t, term.Overloaded())

	// Going over the cap flags the term but the add still succeeds.
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "PHYS 2211", Credits: 4}))
	assert.True(t, term.Overloaded())
}

func TestPlan_DerivedViews(t *testing.T) {
	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	require.NoError(t, plan.AddTerm(&Term{ID: "t2", Year: 2025, Season: SeasonSpring}))
	require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA}))
	require.NoError(t, plan.AddCourse("t2", PlannedCourse{Code: "CS 1331", Credits: 3, Status: StatusInProgress}))
	require.NoError(t, plan.AddCourse("t2", PlannedCourse{Code: "CS 1332", Credits: 3, Status: StatusPlanned}))

	assert.Equal(t, map[string]Grade{"CS 1301": GradeA}, plan.CompletedCourses())
	assert.Equal(t, map[string]bool{"CS 1331": true, "CS 1332": true}, plan.InFlightCourses())
	assert.True(t, plan.Contains("CS 1332"))
	assert.False(t, plan.Contains("CS 2110"))
}
