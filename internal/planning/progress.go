package planning

import "math"

// CategoryKind tags the variants of a degree requirement category.
type CategoryKind string

// Requirement category kinds.
const (
	KindFixedList CategoryKind = "FIXED_LIST"
	KindChooseN   CategoryKind = "CHOOSE_N"
)

// CountBasis selects whether a choose-N category's threshold is measured in
// credits or in number of courses.
type CountBasis string

// Choose-N counting bases.
const (
	BasisCredits CountBasis = "CREDITS"
	BasisCourses CountBasis = "COURSES"
)

// CategoryStatus is the completion state of one requirement category.
type CategoryStatus string

// Category completion states.
const (
	CategorySatisfied          CategoryStatus = "SATISFIED"
	CategoryPartiallySatisfied CategoryStatus = "PARTIALLY_SATISFIED"
	CategoryUnsatisfied        CategoryStatus = "UNSATISFIED"
)

// CategoryCourse is one member of a category's option set. Credits are
// carried alongside the code so the evaluator stays a pure function of its
// inputs and never reaches back into the catalog.
type CategoryCourse struct {
	Code    string `json:"code"`
	Credits int    `json:"credits"`
}

// Category is one node of a degree program's requirement tree: either a fixed
// list in which every course is required, or a choose-N bucket requiring a
// credit or course-count threshold from the option set. Read-only reference
// data; the evaluator never mutates it.
type Category struct {
	Name            string           `json:"name"`
	Kind            CategoryKind     `json:"kind"`
	Options         []CategoryCourse `json:"options"`
	RequiredCredits int              `json:"requiredCredits,omitempty"`
	RequiredCount   int              `json:"requiredCount,omitempty"`
	Basis           CountBasis       `json:"basis,omitempty"`
}

// CategoryProgress reports how far one category is from satisfied.
// CompletedCredits is capped at RequiredCredits: excess credits from extra
// completed electives never spill into other categories.
type CategoryProgress struct {
	Name              string         `json:"name"`
	Kind              CategoryKind   `json:"kind"`
	Status            CategoryStatus `json:"status"`
	CompletedCount    int            `json:"completedCount"`
	RequiredCount     int            `json:"requiredCount"`
	CompletedCredits  int            `json:"completedCredits"`
	RequiredCredits   int            `json:"requiredCredits"`
	InProgressCredits int            `json:"inProgressCredits"`
}

// ProgressReport aggregates per-category progress with a credit-weighted
// overall percentage (a 3-credit category and a 30-credit category must not
// weigh equally, so a plain category average would mislead).
type ProgressReport struct {
	Categories       []CategoryProgress `json:"categories"`
	CompletedCredits int                `json:"completedCredits"`
	RequiredCredits  int                `json:"requiredCredits"`
	OverallPercent   int                `json:"overallPercent"`
}

// EvaluateProgress walks the program's requirement categories against the
// plan's completed and in-flight courses. A completed course that appears in
// several categories' option sets advances each of them: categories are
// non-exclusive unless the program data says otherwise. The function is
// deterministic and leaves both inputs untouched.
func EvaluateProgress(categories []Category, plan *Plan) ProgressReport {
	var completed map[string]Grade
	var inFlight map[string]bool
	if plan != nil {
		completed = plan.CompletedCourses()
		inFlight = plan.InFlightCourses()
	}

	report := ProgressReport{Categories: make([]CategoryProgress, 0, len(categories))}
	for _, cat := range categories {
		progress := evaluateCategory(cat, completed, inFlight)
		report.Categories = append(report.Categories, progress)
		// A category without a credit threshold (a courses-basis bucket, or
		// defective program data) carries no weight in the overall figure:
		// adding its credits to the numerator alone would push the
		// percentage past 100.
		if progress.RequiredCredits > 0 {
			report.CompletedCredits += progress.CompletedCredits
			report.RequiredCredits += progress.RequiredCredits
		}
	}

	if report.RequiredCredits > 0 {
		pct := 100 * float64(report.CompletedCredits) / float64(report.RequiredCredits)
		report.OverallPercent = int(math.Round(pct))
	}
	return report
}

func evaluateCategory(cat Category, completed map[string]Grade, inFlight map[string]bool) CategoryProgress {
	switch cat.Kind {
	case KindFixedList:
		return evaluateFixedList(cat, completed, inFlight)
	case KindChooseN:
		return evaluateChooseN(cat, completed, inFlight)
	default:
		// Unknown kind from the program data: report it unsatisfied with no
		// weight rather than failing the whole evaluation.
		return CategoryProgress{Name: cat.Name, Kind: cat.Kind, Status: CategoryUnsatisfied}
	}
}

// evaluateFixedList requires every listed course completed. Planned or
// in-progress members count toward the in-progress figure only, never toward
// satisfaction.
func evaluateFixedList(cat Category, completed map[string]Grade, inFlight map[string]bool) CategoryProgress {
	progress := CategoryProgress{
		Name:          cat.Name,
		Kind:          cat.Kind,
		Status:        CategoryUnsatisfied,
		RequiredCount: len(cat.Options),
	}
	for _, opt := range cat.Options {
		progress.RequiredCredits += opt.Credits
		if _, ok := completed[opt.Code]; ok {
			progress.CompletedCount++
			progress.CompletedCredits += opt.Credits
		} else if inFlight[opt.Code] {
			progress.InProgressCredits += opt.Credits
		}
	}
	switch {
	case progress.RequiredCount == 0:
		// Empty option list is a data defect, not a satisfied requirement.
	case progress.CompletedCount == progress.RequiredCount:
		progress.Status = CategorySatisfied
	case progress.CompletedCount > 0:
		progress.Status = CategoryPartiallySatisfied
	}
	return progress
}

// evaluateChooseN requires a credit (or course-count) threshold from the
// option set. Contribution is capped at the threshold so the category can
// never report more than it requires.
func evaluateChooseN(cat Category, completed map[string]Grade, inFlight map[string]bool) CategoryProgress {
	progress := CategoryProgress{
		Name:            cat.Name,
		Kind:            cat.Kind,
		Status:          CategoryUnsatisfied,
		RequiredCount:   cat.RequiredCount,
		RequiredCredits: cat.RequiredCredits,
	}

	var earnedCredits int
	for _, opt := range cat.Options {
		if _, ok := completed[opt.Code]; ok {
			progress.CompletedCount++
			earnedCredits += opt.Credits
		} else if inFlight[opt.Code] {
			progress.InProgressCredits += opt.Credits
		}
	}

	met := false
	switch cat.Basis {
	case BasisCourses:
		met = progress.RequiredCount > 0 && progress.CompletedCount >= progress.RequiredCount
		if progress.RequiredCount > 0 && progress.CompletedCount > progress.RequiredCount {
			progress.CompletedCount = progress.RequiredCount
		}
	default: // credits is the default basis
		met = progress.RequiredCredits > 0 && earnedCredits >= progress.RequiredCredits
	}

	progress.CompletedCredits = earnedCredits
	if progress.RequiredCredits > 0 && progress.CompletedCredits > progress.RequiredCredits {
		progress.CompletedCredits = progress.RequiredCredits
	}

	switch {
	case met:
		progress.Status = CategorySatisfied
	case progress.CompletedCount > 0:
		progress.Status = CategoryPartiallySatisfied
	}
	return progress
}
