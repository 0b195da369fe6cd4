package planning

// Course is one catalog course as referenced from a plan. Prerequisites holds
// the course's independent requirement groups: every group must hold for the
// course to be addable (the groups themselves may be arbitrary AND/OR trees).
// Course records are immutable for the duration of a planning session.
type Course struct {
	Code          string `json:"code"`
	Title         string `json:"title,omitempty"`
	Credits       int    `json:"credits"`
	Prerequisites []Expr `json:"prerequisites,omitempty"`
	Corequisites  []Expr `json:"corequisites,omitempty"`
}
