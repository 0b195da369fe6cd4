package planning

// ExprKind tags the variants of a prerequisite expression node.
type ExprKind string

// Expression node kinds.
const (
	ExprLeaf ExprKind = "COURSE"
	ExprAnd  ExprKind = "AND"
	ExprOr   ExprKind = "OR"
)

// Expr is one node of a prerequisite (or corequisite) expression tree: either
// a leaf naming a required course code, optionally with a minimum letter
// grade, or an AND/OR group over child expressions. Trees arrive from the
// catalog's jsonb column; a node that fails the shape invariants (empty
// course code on a leaf, empty child list on a group, unknown kind) stays
// representable and simply evaluates as unsatisfied.
type Expr struct {
	Kind     ExprKind `json:"kind"`
	Course   string   `json:"course,omitempty"`
	MinGrade Grade    `json:"minGrade,omitempty"`
	Children []Expr   `json:"children,omitempty"`
}

// Req builds a leaf requiring a course.
func Req(code string) Expr {
	return Expr{Kind: ExprLeaf, Course: code}
}

// ReqMin builds a leaf requiring a course with a minimum grade.
func ReqMin(code string, min Grade) Expr {
	return Expr{Kind: ExprLeaf, Course: code, MinGrade: min}
}

// And builds an AND group over the given children.
func And(children ...Expr) Expr {
	return Expr{Kind: ExprAnd, Children: children}
}

// Or builds an OR group over the given children.
func Or(children ...Expr) Expr {
	return Expr{Kind: ExprOr, Children: children}
}

// LeafCodes returns every course code referenced by the subtree, in
// depth-first order. Used to render "One of: ..." messages for OR groups.
func (e Expr) LeafCodes() []string {
	var codes []string
	e.collectLeafCodes(&codes)
	return codes
}

// PrerequisiteCodes returns the distinct course codes referenced by the
// course's prerequisite groups, in first-appearance order. Callers use it to
// batch-resolve the catalog rows behind a blocking verdict.
func PrerequisiteCodes(c Course) []string {
	seen := make(map[string]bool)
	var codes []string
	for _, group := range c.Prerequisites {
		for _, code := range group.LeafCodes() {
			if !seen[code] {
				seen[code] = true
				codes = append(codes, code)
			}
		}
	}
	return codes
}

func (e Expr) collectLeafCodes(codes *[]string) {
	switch e.Kind {
	case ExprLeaf:
		if e.Course != "" {
			*codes = append(*codes, e.Course)
		}
	case ExprAnd, ExprOr:
		for _, child := range e.Children {
			child.collectLeafCodes(codes)
		}
	}
}
