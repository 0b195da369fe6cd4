package planning

import "math"

// TermGPA computes the grade point average over one term's courses. Only
// completed courses with a recognized letter grade and positive earned
// credits participate; everything else is skipped so that ungraded
// in-progress entries in the same collection cannot distort the result.
// A zero credit sum yields exactly 0 rather than dividing.
func TermGPA(courses []PlannedCourse) float64 {
	points, credits := qualityPoints(courses)
	if credits == 0 {
		return 0
	}
	return round2(points / credits)
}

// CumulativeGPA computes the grade point average across every term of the
// plan. The aggregation is a single weighted sum over all completed courses,
// not an average of term GPAs.
func CumulativeGPA(terms []*Term) float64 {
	var points, credits float64
	for _, term := range terms {
		p, c := qualityPoints(term.Courses)
		points += p
		credits += c
	}
	if credits == 0 {
		return 0
	}
	return round2(points / credits)
}

// qualityPoints sums grade points weighted by earned credits over the
// gradable courses in the slice.
func qualityPoints(courses []PlannedCourse) (points, credits float64) {
	for _, c := range courses {
		if c.Status != StatusCompleted {
			continue
		}
		gp, ok := c.Grade.Points()
		if !ok {
			continue
		}
		earned := c.CreditsEarned()
		if earned <= 0 {
			continue
		}
		points += gp * float64(earned)
		credits += float64(earned)
	}
	return points, credits
}

// round2 rounds to two decimal places, half away from zero.
func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
