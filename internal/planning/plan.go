package planning

import (
	"errors"
	"sort"
)

// Plan editing errors
var (
	ErrTermNotFound      = errors.New("term not found in plan")
	ErrTermAlreadyExists = errors.New("term already exists in plan")
	ErrCourseNotInTerm   = errors.New("course not found in term")
	ErrCourseInTerm      = errors.New("course already assigned to this term")
)

// Season identifies the academic period within a year.
type Season string

// Seasons in chronological order within a year.
const (
	SeasonFall   Season = "FALL"
	SeasonSpring Season = "SPRING"
	SeasonSummer Season = "SUMMER"
)

// Rank returns the chronological position of the season within an academic
// year (Fall=0, Spring=1, Summer=2). Unknown seasons sort last.
func (s Season) Rank() int {
	switch s {
	case SeasonFall:
		return 0
	case SeasonSpring:
		return 1
	case SeasonSummer:
		return 2
	default:
		return 3
	}
}

// IsValid reports whether the season is one of Fall, Spring or Summer.
func (s Season) IsValid() bool {
	return s == SeasonFall || s == SeasonSpring || s == SeasonSummer
}

// Status describes where a planned course stands in the student's history.
type Status string

// Planned course statuses.
const (
	StatusCompleted  Status = "COMPLETED"
	StatusInProgress Status = "IN_PROGRESS"
	StatusPlanned    Status = "PLANNED"
)

// IsValid reports whether the status is a recognized value.
func (s Status) IsValid() bool {
	return s == StatusCompleted || s == StatusInProgress || s == StatusPlanned
}

// PlannedCourse is one course assigned to one term of the plan. EarnedCredits
// overrides the nominal credits for completed courses (withdrawals, partial
// credit); zero means "use the nominal credits".
type PlannedCourse struct {
	Code          string `json:"code"`
	Credits       int    `json:"credits"`
	EarnedCredits int    `json:"earnedCredits,omitempty"`
	Status        Status `json:"status"`
	Grade         Grade  `json:"grade,omitempty"`
}

// CreditsEarned returns the credits this entry contributes: the explicit
// earned figure when set, the nominal credits otherwise.
func (p PlannedCourse) CreditsEarned() int {
	if p.EarnedCredits > 0 {
		return p.EarnedCredits
	}
	return p.Credits
}

// Term is one academic period of the plan, owning the courses assigned to it.
// Course codes are unique within a term.
type Term struct {
	ID         string          `json:"id"`
	Year       int             `json:"year"`
	Season     Season          `json:"season"`
	MaxCredits int             `json:"maxCredits"`
	Courses    []PlannedCourse `json:"courses"`
}

// ScheduledCredits sums the nominal credits of every course in the term.
func (t *Term) ScheduledCredits() int {
	total := 0
	for _, c := range t.Courses {
		total += c.Credits
	}
	return total
}

// Overloaded reports whether the term's scheduled credits exceed its cap.
// This is an advisory signal only, never a hard error.
func (t *Term) Overloaded() bool {
	return t.MaxCredits > 0 && t.ScheduledCredits() > t.MaxCredits
}

// find returns the index of a course within the term, or -1.
func (t *Term) find(code string) int {
	for i, c := range t.Courses {
		if c.Code == code {
			return i
		}
	}
	return -1
}

// Plan is the full multi-term course plan for one student. It is mutated only
// through the explicit edit operations below; the evaluators treat it as an
// immutable snapshot.
type Plan struct {
	Terms []*Term `json:"terms"`
}

// NewPlan returns an empty plan.
func NewPlan() *Plan {
	return &Plan{}
}

// Term returns the term with the given identifier, or nil.
func (p *Plan) Term(termID string) *Term {
	for _, t := range p.Terms {
		if t.ID == termID {
			return t
		}
	}
	return nil
}

// AddTerm appends a new term to the plan.
func (p *Plan) AddTerm(term *Term) error {
	if p.Term(term.ID) != nil {
		return ErrTermAlreadyExists
	}
	p.Terms = append(p.Terms, term)
	return nil
}

// RemoveTerm deletes a term and every course assigned to it.
func (p *Plan) RemoveTerm(termID string) error {
	for i, t := range p.Terms {
		if t.ID == termID {
			p.Terms = append(p.Terms[:i], p.Terms[i+1:]...)
			return nil
		}
	}
	return ErrTermNotFound
}

// AddCourse assigns a course to a term. The code must not already be present
// in that term; cross-term uniqueness is the prerequisite resolver's
// already-planned check, which callers must consult before committing.
func (p *Plan) AddCourse(termID string, course PlannedCourse) error {
	term := p.Term(termID)
	if term == nil {
		return ErrTermNotFound
	}
	if term.find(course.Code) >= 0 {
		return ErrCourseInTerm
	}
	if !course.Status.IsValid() {
		course.Status = StatusPlanned
	}
	term.Courses = append(term.Courses, course)
	return nil
}

// RemoveCourse deletes a course from a term.
func (p *Plan) RemoveCourse(termID, code string) error {
	term := p.Term(termID)
	if term == nil {
		return ErrTermNotFound
	}
	i := term.find(code)
	if i < 0 {
		return ErrCourseNotInTerm
	}
	term.Courses = append(term.Courses[:i], term.Courses[i+1:]...)
	return nil
}

// MoveCourse relocates a course between terms as a remove followed by a
// re-add, preserving its status and grade.
func (p *Plan) MoveCourse(fromTermID, toTermID, code string) error {
	from := p.Term(fromTermID)
	if from == nil {
		return ErrTermNotFound
	}
	to := p.Term(toTermID)
	if to == nil {
		return ErrTermNotFound
	}
	i := from.find(code)
	if i < 0 {
		return ErrCourseNotInTerm
	}
	if to.find(code) >= 0 {
		return ErrCourseInTerm
	}
	course := from.Courses[i]
	from.Courses = append(from.Courses[:i], from.Courses[i+1:]...)
	to.Courses = append(to.Courses, course)
	return nil
}

// SetStatus updates the status of a planned course. Leaving completed status
// clears the recorded grade.
func (p *Plan) SetStatus(termID, code string, status Status) error {
	term := p.Term(termID)
	if term == nil {
		return ErrTermNotFound
	}
	i := term.find(code)
	if i < 0 {
		return ErrCourseNotInTerm
	}
	term.Courses[i].Status = status
	if status != StatusCompleted {
		term.Courses[i].Grade = ""
	}
	return nil
}

// SetGrade records a grade for a course and marks it completed.
func (p *Plan) SetGrade(termID, code string, grade Grade) error {
	term := p.Term(termID)
	if term == nil {
		return ErrTermNotFound
	}
	i := term.find(code)
	if i < 0 {
		return ErrCourseNotInTerm
	}
	term.Courses[i].Grade = grade
	term.Courses[i].Status = StatusCompleted
	return nil
}

// SortedTerms returns the plan's terms in chronological order by
// (year, season rank). The plan itself is not mutated.
func (p *Plan) SortedTerms() []*Term {
	sorted := make([]*Term, len(p.Terms))
	copy(sorted, p.Terms)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Year != sorted[j].Year {
			return sorted[i].Year < sorted[j].Year
		}
		return sorted[i].Season.Rank() < sorted[j].Season.Rank()
	})
	return sorted
}

// CompletedCourses returns the codes of every completed course in the plan
// mapped to the grade earned.
func (p *Plan) CompletedCourses() map[string]Grade {
	completed := make(map[string]Grade)
	for _, term := range p.Terms {
		for _, c := range term.Courses {
			if c.Status == StatusCompleted {
				completed[c.Code] = c.Grade
			}
		}
	}
	return completed
}

// InFlightCourses returns the set of codes that are planned or in progress
// but not completed anywhere in the plan.
func (p *Plan) InFlightCourses() map[string]bool {
	inFlight := make(map[string]bool)
	for _, term := range p.Terms {
		for _, c := range term.Courses {
			if c.Status == StatusInProgress || c.Status == StatusPlanned {
				inFlight[c.Code] = true
			}
		}
	}
	return inFlight
}

// Contains reports whether a course code appears anywhere in the plan,
// regardless of status.
func (p *Plan) Contains(code string) bool {
	for _, term := range p.Terms {
		if term.find(code) >= 0 {
			return true
		}
	}
	return false
}
