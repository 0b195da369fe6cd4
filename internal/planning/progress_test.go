package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mathCore() Category {
	return Category{
		Name: "Math Core",
		Kind: KindFixedList,
		Options: []CategoryCourse{
			{Code: "MATH 1551", Credits: 3},
			{Code: "MATH 1552", Credits: 3},
		},
	}
}

func TestEvaluateProgress_FixedListPartiallySatisfied(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB})

	report := EvaluateProgress([]Category{mathCore()}, plan)

	require.Len(t, report.Categories, 1)
	cat := report.Categories[0]
	assert.Equal(t, CategoryPartiallySatisfied, cat.Status)
	assert.Equal(t, 1, cat.CompletedCount)
	assert.Equal(t, 2, cat.RequiredCount)
	assert.Equal(t, 3, cat.CompletedCredits)
	assert.Equal(t, 6, cat.RequiredCredits)
	assert.Equal(t, 50, report.OverallPercent)
}

func TestEvaluateProgress_FixedListSatisfied(t *testing.T) {
	plan := planWith(
		PlannedCourse{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB},
		PlannedCourse{Code: "MATH 1552", Credits: 3, Status: StatusCompleted, Grade: GradeA},
	)

	report := EvaluateProgress([]Category{mathCore()}, plan)

	assert.Equal(t, CategorySatisfied, report.Categories[0].Status)
	assert.Equal(t, 100, report.OverallPercent)
}

func TestEvaluateProgress_InProgressCountsSeparately(t *testing.T) {
	plan := planWith(
		PlannedCourse{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB},
		PlannedCourse{Code: "MATH 1552", Credits: 3, Status: StatusInProgress},
	)

	report := EvaluateProgress([]Category{mathCore()}, plan)

	cat := report.Categories[0]
	// Planned-but-not-completed courses never count toward satisfaction.
	assert.Equal(t, CategoryPartiallySatisfied, cat.Status)
	assert.Equal(t, 3, cat.CompletedCredits)
	assert.Equal(t, 3, cat.InProgressCredits)
}

func TestEvaluateProgress_ChooseNCreditsCappedAtThreshold(t *testing.T) {
	electives := Category{
		Name:            "Free Electives",
		Kind:            KindChooseN,
		Basis:           BasisCredits,
		RequiredCredits: 6,
		Options: []CategoryCourse{
			{Code: "CS 4641", Credits: 3},
			{Code: "CS 4476", Credits: 3},
			{Code: "CS 4510", Credits: 3},
		},
	}
	plan := planWith(
		PlannedCourse{Code: "CS 4641", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		PlannedCourse{Code: "CS 4476", Credits: 3, Status: StatusCompleted, Grade: GradeB},
		PlannedCourse{Code: "CS 4510", Credits: 3, Status: StatusCompleted, Grade: GradeB},
	)

	report := EvaluateProgress([]Category{electives}, plan)

	cat := report.Categories[0]
	assert.Equal(t, CategorySatisfied, cat.Status)
	// 9 completed credits cap at the 6 required; the excess does not spill
	// into the overall percentage.
	assert.Equal(t, 6, cat.CompletedCredits)
	assert.Equal(t, 100, report.OverallPercent)
}

func TestEvaluateProgress_ChooseNByCourseCount(t *testing.T) {
	threads := Category{
		Name:            "Intelligence Thread",
		Kind:            KindChooseN,
		Basis:           BasisCourses,
		RequiredCount:   2,
		RequiredCredits: 6,
		Options: []CategoryCourse{
			{Code: "CS 3600", Credits: 3},
			{Code: "CS 4641", Credits: 3},
			{Code: "CS 4650", Credits: 3},
		},
	}
	plan := planWith(PlannedCourse{Code: "CS 3600", Credits: 3, Status: StatusCompleted, Grade: GradeB})

	report := EvaluateProgress([]Category{threads}, plan)

	cat := report.Categories[0]
	assert.Equal(t, CategoryPartiallySatisfied, cat.Status)
	assert.Equal(t, 1, cat.CompletedCount)
	assert.Equal(t, 2, cat.RequiredCount)
	assert.Equal(t, 3, cat.CompletedCredits)
}

func TestEvaluateProgress_CreditWeightedOverall(t *testing.T) {
	categories := []Category{
		{
			Name: "Seminar",
			Kind: KindFixedList,
			Options: []CategoryCourse{
				{Code: "CS 1100", Credits: 1},
			},
		},
		{
			Name:            "Major Electives",
			Kind:            KindChooseN,
			Basis:           BasisCredits,
			RequiredCredits: 9,
			Options: []CategoryCourse{
				{Code: "CS 4641", Credits: 3},
				{Code: "CS 4476", Credits: 3},
				{Code: "CS 4510", Credits: 3},
			},
		},
	}
	plan := planWith(PlannedCourse{Code: "CS 1100", Credits: 1, Status: StatusCompleted, Grade: GradeA})

	report := EvaluateProgress(categories, plan)

	// 1 of 10 required credits: a category-count average would say 50%.
	assert.Equal(t, 10, report.OverallPercent)
	assert.Equal(t, 1, report.CompletedCredits)
	assert.Equal(t, 10, report.RequiredCredits)
}

func TestEvaluateProgress_DoubleCountingAcrossCategories(t *testing.T) {
	thread := Category{
		Name:            "Thread",
		Kind:            KindChooseN,
		Basis:           BasisCredits,
		RequiredCredits: 3,
		Options:         []CategoryCourse{{Code: "CS 4641", Credits: 3}},
	}
	electives := Category{
		Name:            "Free Electives",
		Kind:            KindChooseN,
		Basis:           BasisCredits,
		RequiredCredits: 3,
		Options:         []CategoryCourse{{Code: "CS 4641", Credits: 3}},
	}
	plan := planWith(PlannedCourse{Code: "CS 4641", Credits: 3, Status: StatusCompleted, Grade: GradeA})

	report := EvaluateProgress([]Category{thread, electives}, plan)

	// One completed course advances both buckets: categories are
	// non-exclusive.
	assert.Equal(t, CategorySatisfied, report.Categories[0].Status)
	assert.Equal(t, CategorySatisfied, report.Categories[1].Status)
	assert.Equal(t, 100, report.OverallPercent)
}

func TestEvaluateProgress_CourseBasisWithoutCreditThresholdStaysBounded(t *testing.T) {
	categories := []Category{
		{
			Name:    "Seminar",
			Kind:    KindFixedList,
			Options: []CategoryCourse{{Code: "CS 1100", Credits: 3}},
		},
		{
			// Courses-basis bucket with no credit threshold: its credits must
			// not count toward the overall ratio.
			Name:          "Breadth",
			Kind:          KindChooseN,
			Basis:         BasisCourses,
			RequiredCount: 1,
			Options:       []CategoryCourse{{Code: "APPH 1040", Credits: 3}},
		},
	}
	plan := planWith(
		PlannedCourse{Code: "CS 1100", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		PlannedCourse{Code: "APPH 1040", Credits: 3, Status: StatusCompleted, Grade: GradeA},
	)

	report := EvaluateProgress(categories, plan)

	assert.Equal(t, CategorySatisfied, report.Categories[1].Status)
	assert.Equal(t, 3, report.CompletedCredits)
	assert.Equal(t, 3, report.RequiredCredits)
	assert.LessOrEqual(t, report.OverallPercent, 100)
	assert.Equal(t, 100, report.OverallPercent)
}

func TestEvaluateProgress_MonotonicUnderCompletion(t *testing.T) {
	electives := Category{
		Name:            "Free Electives",
		Kind:            KindChooseN,
		Basis:           BasisCredits,
		RequiredCredits: 9,
		Options: []CategoryCourse{
			{Code: "CS 4641", Credits: 3},
			{Code: "CS 4476", Credits: 3},
			{Code: "CS 4510", Credits: 3},
		},
	}

	plan := NewPlan()
	require.NoError(t, plan.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall}))
	previous := 0
	for _, code := range []string{"CS 4641", "CS 4476", "CS 4510"} {
		require.NoError(t, plan.AddCourse("t1", PlannedCourse{Code: code, Credits: 3, Status: StatusCompleted, Grade: GradeB}))
		report := EvaluateProgress([]Category{electives}, plan)
		assert.GreaterOrEqual(t, report.Categories[0].CompletedCredits, previous)
		previous = report.Categories[0].CompletedCredits
	}
}

func TestEvaluateProgress_Idempotent(t *testing.T) {
	categories := []Category{mathCore()}
	plan := planWith(PlannedCourse{Code: "MATH 1551", Credits: 3, Status: StatusCompleted, Grade: GradeB})

	first := EvaluateProgress(categories, plan)
	second := EvaluateProgress(categories, plan)

	assert.Equal(t, first, second)
}

func TestEvaluateProgress_EmptyAndMalformedInput(t *testing.T) {
	report := EvaluateProgress(nil, NewPlan())
	assert.Equal(t, 0, report.OverallPercent)
	assert.Empty(t, report.Categories)

	// Empty option list and unknown kind degrade, never panic.
	report = EvaluateProgress([]Category{
		{Name: "Empty", Kind: KindFixedList},
		{Name: "Mystery", Kind: CategoryKind("PICK_SOME")},
	}, nil)
	assert.Equal(t, CategoryUnsatisfied, report.Categories[0].Status)
	assert.Equal(t, CategoryUnsatisfied, report.Categories[1].Status)
	assert.Equal(t, 0, report.OverallPercent)
}
