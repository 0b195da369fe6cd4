package planning

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// planWith builds a single-term plan holding the given entries.
func planWith(entries ...PlannedCourse) *Plan {
	p := NewPlan()
	_ = p.AddTerm(&Term{ID: "t1", Year: 2024, Season: SeasonFall})
	for _, e := range entries {
		if err := p.AddCourse("t1", e); err != nil {
			panic(err)
		}
	}
	return p
}

func TestCheckCourse_NoPrerequisites(t *testing.T) {
	verdict := CheckCourse(Course{Code: "CS 1301", Credits: 3}, NewPlan())

	assert.True(t, verdict.CanAdd)
	assert.False(t, verdict.IsBlocked)
	assert.Empty(t, verdict.MissingPrerequisites)
	assert.Empty(t, verdict.Warnings)
}

func TestCheckCourse_AlreadyPlanned(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "CS 1331", Credits: 3, Status: StatusPlanned})

	verdict := CheckCourse(Course{Code: "CS 1331", Credits: 3}, plan)

	assert.False(t, verdict.CanAdd)
	assert.True(t, verdict.IsBlocked)
	assert.Empty(t, verdict.MissingPrerequisites)
	assert.Equal(t, []string{"Course is already planned"}, verdict.Warnings)
}

func TestCheckCourse_AlreadyCompletedCountsAsPlanned(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA})

	verdict := CheckCourse(Course{Code: "CS 1301", Credits: 3}, plan)

	assert.False(t, verdict.CanAdd)
	assert.Equal(t, []string{"Course is already planned"}, verdict.Warnings)
}

func TestCheckCourse_AndGroupAllCompleted(t *testing.T) {
	plan := planWith(
		PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		PlannedCourse{Code: "CS 1331", Credits: 3, Status: StatusCompleted, Grade: GradeB},
	)
	course := Course{
		Code: "CS 1332", Credits: 3,
		Prerequisites: []Expr{And(Req("CS 1301"), Req("CS 1331"))},
	}

	verdict := CheckCourse(course, plan)

	assert.True(t, verdict.CanAdd)
	assert.False(t, verdict.IsBlocked)
	assert.Empty(t, verdict.MissingPrerequisites)
}

func TestCheckCourse_AndGroupPendingWarnsButAllowsAdd(t *testing.T) {
	plan := planWith(
		PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA},
		PlannedCourse{Code: "CS 1331", Credits: 3, Status: StatusPlanned},
	)
	course := Course{
		Code: "CS 1332", Credits: 3,
		Prerequisites: []Expr{And(Req("CS 1301"), Req("CS 1331"))},
	}

	verdict := CheckCourse(course, plan)

	assert.True(t, verdict.CanAdd)
	assert.True(t, verdict.IsBlocked)
	assert.Empty(t, verdict.MissingPrerequisites)
	assert.Equal(t, []string{"Prerequisites planned but not completed: CS 1331"}, verdict.Warnings)
}

func TestCheckCourse_AndGroupMissingBlocks(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "CS 1301", Credits: 3, Status: StatusCompleted, Grade: GradeA})
	course := Course{
		Code: "CS 2110", Credits: 4,
		Prerequisites: []Expr{And(Req("CS 1301"), Req("CS 1331"))},
	}

	verdict := CheckCourse(course, plan)

	assert.False(t, verdict.CanAdd)
	assert.True(t, verdict.IsBlocked)
	assert.Equal(t, []string{"CS 1331"}, verdict.MissingPrerequisites)
}

func TestCheckCourse_OrGroupReportsSingleAlternativeEntry(t *testing.T) {
	course := Course{
		Code: "MATH 1554", Credits: 4,
		Prerequisites: []Expr{Or(Req("MATH 1551"), Req("MATH 1552"), Req("MATH 1564"))},
	}

	verdict := CheckCourse(course, NewPlan())

	assert.False(t, verdict.CanAdd)
	require.Len(t, verdict.MissingPrerequisites, 1)
	assert.Equal(t, "One of: MATH 1551, MATH 1552, MATH 1564", verdict.MissingPrerequisites[0])
}

func TestCheckCourse_OrGroupSatisfiedByOneBranch(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "MATH 1552", Credits: 4, Status: StatusCompleted, Grade: GradeC})
	course := Course{
		Code: "MATH 2551", Credits: 4,
		Prerequisites: []Expr{Or(Req("MATH 1552"), Req("MATH 1564"))},
	}

	verdict := CheckCourse(course, plan)

	assert.True(t, verdict.CanAdd)
	assert.False(t, verdict.IsBlocked)
}

func TestCheckCourse_OrGroupPending(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "MATH 1552", Credits: 4, Status: StatusInProgress})
	course := Course{
		Code: "MATH 2551", Credits: 4,
		Prerequisites: []Expr{Or(Req("MATH 1552"), Req("MATH 1564"))},
	}

	verdict := CheckCourse(course, plan)

	assert.True(t, verdict.CanAdd)
	assert.True(t, verdict.IsBlocked)
	assert.Equal(t, []string{"Prerequisites planned but not completed: MATH 1552"}, verdict.Warnings)
}

func TestCheckCourse_MinimumGrade(t *testing.T) {
	tests := []struct {
		name    string
		grade   Grade
		canAdd  bool
		missing []string
	}{
		{name: "meets minimum", grade: GradeB, canAdd: true, missing: []string{}},
		{name: "exactly minimum", grade: GradeC, canAdd: true, missing: []string{}},
		{name: "below minimum", grade: GradeD, canAdd: false, missing: []string{"CS 1331 (minimum grade C)"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			plan := planWith(PlannedCourse{Code: "CS 1331", Credits: 3, Status: StatusCompleted, Grade: tt.grade})
			course := Course{
				Code: "CS 1332", Credits: 3,
				Prerequisites: []Expr{ReqMin("CS 1331", GradeC)},
			}

			verdict := CheckCourse(course, plan)

			assert.Equal(t, tt.canAdd, verdict.CanAdd)
			assert.Equal(t, tt.missing, verdict.MissingPrerequisites)
		})
	}
}

func TestCheckCourse_IndependentGroupsUnionMissing(t *testing.T) {
	course := Course{
		Code: "CS 3510", Credits: 3,
		Prerequisites: []Expr{
			Req("CS 1332"),
			Or(Req("MATH 3012"), Req("MATH 3022")),
		},
	}

	verdict := CheckCourse(course, NewPlan())

	assert.False(t, verdict.CanAdd)
	assert.Equal(t, []string{
		"CS 1332",
		"One of: MATH 3012, MATH 3022",
	}, verdict.MissingPrerequisites)
}

func TestCheckCourse_CorequisiteWarnsOnly(t *testing.T) {
	course := Course{
		Code: "PHYS 2211", Credits: 4,
		Corequisites: []Expr{Req("MATH 1552")},
	}

	verdict := CheckCourse(course, NewPlan())

	assert.True(t, verdict.CanAdd)
	assert.True(t, verdict.IsBlocked)
	assert.Equal(t, []string{"Corequisite not met: MATH 1552"}, verdict.Warnings)
}

func TestCheckCourse_CorequisiteSatisfiedByInFlight(t *testing.T) {
	plan := planWith(PlannedCourse{Code: "MATH 1552", Credits: 4, Status: StatusPlanned})
	course := Course{
		Code: "PHYS 2211", Credits: 4,
		Corequisites: []Expr{Req("MATH 1552")},
	}

	verdict := CheckCourse(course, plan)

	assert.True(t, verdict.CanAdd)
	assert.False(t, verdict.IsBlocked)
}

func TestCheckCourse_MalformedExpressionsNeverPanic(t *testing.T) {
	course := Course{
		Code: "CS 4641", Credits: 3,
		Prerequisites: []Expr{
			{Kind: ExprLeaf},            // leaf without a course code
			{Kind: ExprAnd},             // group without children
			{Kind: ExprKind("XOR")},     // unknown kind
			And(Req("CS 1332"), Expr{}), // nested malformed child
		},
	}

	verdict := CheckCourse(course, NewPlan())

	assert.False(t, verdict.CanAdd)
	assert.Equal(t, []string{
		"invalid prerequisite",
		"invalid prerequisite",
		"invalid prerequisite",
		"CS 1332",
		"invalid prerequisite",
	}, verdict.MissingPrerequisites)
}

func TestCheckCourse_NilPlan(t *testing.T) {
	course := Course{Code: "CS 1301", Credits: 3, Prerequisites: []Expr{Req("MATH 1551")}}

	verdict := CheckCourse(course, nil)

	assert.False(t, verdict.CanAdd)
	assert.Equal(t, []string{"MATH 1551"}, verdict.MissingPrerequisites)
}
