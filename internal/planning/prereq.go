package planning

import (
	"fmt"
	"strings"
)

// Resolver messages surfaced to the UI.
const (
	msgAlreadyPlanned = "Course is already planned"
	msgPendingPrefix  = "Prerequisites planned but not completed: "
	msgCoreqPrefix    = "Corequisite not met: "
	msgMalformed      = "invalid prerequisite"
)

// Verdict is the resolver's answer to "may this course be added to the plan".
// CanAdd is false only when a prerequisite is genuinely unmet; courses whose
// prerequisites are merely planned-but-not-completed remain addable but carry
// a warning, and IsBlocked reflects either condition so the UI can flag the
// entry.
type Verdict struct {
	CanAdd               bool     `json:"canAdd"`
	MissingPrerequisites []string `json:"missingPrerequisites"`
	Warnings             []string `json:"warnings"`
	IsBlocked            bool     `json:"isBlocked"`
}

// satisfaction is the tri-state outcome of evaluating an expression subtree.
type satisfaction int

const (
	unsatisfied satisfaction = iota
	pendingCompletion
	satisfied
)

// evalResult carries the satisfaction state of a subtree together with the
// accumulated missing-requirement messages and pending course codes. The
// accumulator is threaded explicitly through the recursion so no slice is
// mutated behind the caller's back.
type evalResult struct {
	state   satisfaction
	missing []string
	pending []string
}

// CheckCourse decides whether a candidate course may be added anywhere in the
// plan. It never returns an error: data-quality defects (malformed
// expressions) degrade to unsatisfied requirements and usage errors (course
// already planned) come back as a blocked verdict.
func CheckCourse(course Course, plan *Plan) Verdict {
	verdict := Verdict{
		MissingPrerequisites: []string{},
		Warnings:             []string{},
	}

	if plan != nil && plan.Contains(course.Code) {
		verdict.Warnings = append(verdict.Warnings, msgAlreadyPlanned)
		verdict.IsBlocked = true
		return verdict
	}

	var completed map[string]Grade
	var inFlight map[string]bool
	if plan != nil {
		completed = plan.CompletedCourses()
		inFlight = plan.InFlightCourses()
	}

	for _, req := range course.Prerequisites {
		res := evalExpr(req, completed, inFlight, false)
		switch res.state {
		case unsatisfied:
			verdict.MissingPrerequisites = append(verdict.MissingPrerequisites, res.missing...)
		case pendingCompletion:
			verdict.Warnings = append(verdict.Warnings, msgPendingPrefix+strings.Join(res.pending, ", "))
		}
	}

	// Corequisites may be taken concurrently, so in-flight courses satisfy
	// them; unmet corequisites warn rather than block.
	for _, req := range course.Corequisites {
		res := evalExpr(req, completed, inFlight, true)
		if res.state == unsatisfied {
			verdict.Warnings = append(verdict.Warnings, msgCoreqPrefix+strings.Join(res.missing, "; "))
		}
	}

	verdict.CanAdd = len(verdict.MissingPrerequisites) == 0
	verdict.IsBlocked = len(verdict.MissingPrerequisites) > 0 || len(verdict.Warnings) > 0
	return verdict
}

// evalExpr walks the expression tree depth-first exactly once. In coreq mode
// an in-flight course counts as satisfying, collapsing the pending state.
func evalExpr(e Expr, completed map[string]Grade, inFlight map[string]bool, coreq bool) evalResult {
	switch e.Kind {
	case ExprLeaf:
		return evalLeaf(e, completed, inFlight, coreq)
	case ExprAnd:
		return evalAnd(e, completed, inFlight, coreq)
	case ExprOr:
		return evalOr(e, completed, inFlight, coreq)
	default:
		// Unknown node kind from the catalog: conservatively unsatisfied,
		// reported with whatever identifying text the node carries.
		return evalResult{state: unsatisfied, missing: []string{describeLeaf(e)}}
	}
}

func evalLeaf(e Expr, completed map[string]Grade, inFlight map[string]bool, coreq bool) evalResult {
	if e.Course == "" {
		return evalResult{state: unsatisfied, missing: []string{msgMalformed}}
	}
	if grade, ok := completed[e.Course]; ok {
		if grade.AtLeast(e.MinGrade) {
			return evalResult{state: satisfied}
		}
		return evalResult{state: unsatisfied, missing: []string{describeLeaf(e)}}
	}
	if inFlight[e.Course] {
		if coreq {
			return evalResult{state: satisfied}
		}
		// The grade is unknowable for an in-flight course, so a minimum-grade
		// leaf is still only pending.
		return evalResult{state: pendingCompletion, pending: []string{e.Course}}
	}
	return evalResult{state: unsatisfied, missing: []string{describeLeaf(e)}}
}

func evalAnd(e Expr, completed map[string]Grade, inFlight map[string]bool, coreq bool) evalResult {
	if len(e.Children) == 0 {
		return evalResult{state: unsatisfied, missing: []string{msgMalformed}}
	}
	result := evalResult{state: satisfied}
	for _, child := range e.Children {
		res := evalExpr(child, completed, inFlight, coreq)
		switch res.state {
		case unsatisfied:
			result.state = unsatisfied
			result.missing = append(result.missing, res.missing...)
		case pendingCompletion:
			if result.state != unsatisfied {
				result.state = pendingCompletion
			}
			result.pending = append(result.pending, res.pending...)
		}
	}
	if result.state == unsatisfied {
		// A group that cannot be satisfied reports only its missing leaves;
		// pending siblings are irrelevant until the group is satisfiable.
		result.pending = nil
	}
	return result
}

func evalOr(e Expr, completed map[string]Grade, inFlight map[string]bool, coreq bool) evalResult {
	if len(e.Children) == 0 {
		return evalResult{state: unsatisfied, missing: []string{msgMalformed}}
	}
	anyPending := false
	var pending []string
	for _, child := range e.Children {
		res := evalExpr(child, completed, inFlight, coreq)
		switch res.state {
		case satisfied:
			return evalResult{state: satisfied}
		case pendingCompletion:
			anyPending = true
			pending = append(pending, res.pending...)
		}
	}
	if anyPending {
		return evalResult{state: pendingCompletion, pending: pending}
	}
	// Report the group as one alternative set, not each leaf individually:
	// listing every member would imply all of them are required.
	return evalResult{state: unsatisfied, missing: []string{"One of: " + strings.Join(e.LeafCodes(), ", ")}}
}

// describeLeaf renders a leaf requirement for the missing list.
func describeLeaf(e Expr) string {
	if e.Course == "" {
		return msgMalformed
	}
	if e.MinGrade != "" {
		return fmt.Sprintf("%s (minimum grade %s)", e.Course, e.MinGrade)
	}
	return e.Course
}
