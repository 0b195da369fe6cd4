// Package planning implements the degree plan validation and progress engine.
// Everything in this package is a pure function over an in-memory Plan plus
// catalog/requirement reference data; there is no I/O and no shared state, so
// the evaluators are safe to re-run on every request.
package planning

// Grade is a letter grade earned in a completed course.
type Grade string

// Letter grades recognized by the grade-point table.
const (
	GradeA Grade = "A"
	GradeB Grade = "B"
	GradeC Grade = "C"
	GradeD Grade = "D"
	GradeF Grade = "F"
)

// gradePoints maps letter grades to quality points on the 4.0 scale.
var gradePoints = map[Grade]float64{
	GradeA: 4.0,
	GradeB: 3.0,
	GradeC: 2.0,
	GradeD: 1.0,
	GradeF: 0.0,
}

// Points returns the quality points for the grade and whether the grade is one
// the table knows. Unknown or empty grades report ok=false and are skipped by
// the GPA calculator rather than counted as an F.
func (g Grade) Points() (points float64, ok bool) {
	points, ok = gradePoints[g]
	return points, ok
}

// IsValid reports whether the grade is a recognized letter grade.
func (g Grade) IsValid() bool {
	_, ok := gradePoints[g]
	return ok
}

// AtLeast reports whether the grade meets a minimum letter grade requirement.
// An empty minimum is always met; an unrecognized grade never meets any
// minimum.
func (g Grade) AtLeast(min Grade) bool {
	if min == "" {
		return true
	}
	have, ok := g.Points()
	if !ok {
		return false
	}
	want, ok := min.Points()
	if !ok {
		return true
	}
	return have >= want
}
