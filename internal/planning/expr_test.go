package planning

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExpr_CatalogJSONParsing(t *testing.T) {
	jsonData := `{
		"kind": "AND",
		"children": [
			{"kind": "COURSE", "course": "CS 1332", "minGrade": "C"},
			{
				"kind": "OR",
				"children": [
					{"kind": "COURSE", "course": "MATH 3012"},
					{"kind": "COURSE", "course": "MATH 3022"}
				]
			}
		]
	}`

	var expr Expr
	err := json.Unmarshal([]byte(jsonData), &expr)
	require.NoError(t, err)

	assert.Equal(t, ExprAnd, expr.Kind)
	require.Len(t, expr.Children, 2)

	leaf := expr.Children[0]
	assert.Equal(t, ExprLeaf, leaf.Kind)
	assert.Equal(t, "CS 1332", leaf.Course)
	assert.Equal(t, GradeC, leaf.MinGrade)

	group := expr.Children[1]
	assert.Equal(t, ExprOr, group.Kind)
	require.Len(t, group.Children, 2)
	assert.Equal(t, "MATH 3012", group.Children[0].Course)
}

func TestExpr_RoundTrip(t *testing.T) {
	original := And(ReqMin("CS 1331", GradeC), Or(Req("MATH 1551"), Req("MATH 1564")))

	data, err := json.Marshal(original)
	require.NoError(t, err)

	var decoded Expr
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, original, decoded)
}

func TestExpr_LeafCodesDepthFirst(t *testing.T) {
	expr := And(
		Req("CS 1301"),
		Or(Req("MATH 1551"), And(Req("MATH 1552"), Req("MATH 1553"))),
	)

	assert.Equal(t, []string{"CS 1301", "MATH 1551", "MATH 1552", "MATH 1553"}, expr.LeafCodes())
}

func TestExpr_LeafCodesSkipsMalformedNodes(t *testing.T) {
	expr := Or(Req("CS 1301"), Expr{Kind: ExprLeaf}, Expr{Kind: ExprKind("XOR"), Course: "CS 9999"})

	assert.Equal(t, []string{"CS 1301"}, expr.LeafCodes())
}

func TestPrerequisiteCodes_DeduplicatesAcrossGroups(t *testing.T) {
	course := Course{
		Code: "CS 3510",
		Prerequisites: []Expr{
			And(ReqMin("CS 1332", GradeC), Or(ReqMin("CS 2050", GradeC), ReqMin("MATH 2106", GradeC))),
			Or(Req("CS 1332"), Req("MATH 3012")),
		},
	}

	assert.Equal(t, []string{"CS 1332", "CS 2050", "MATH 2106", "MATH 3012"}, PrerequisiteCodes(course))
}

func TestPrerequisiteCodes_EmptyWithoutPrerequisites(t *testing.T) {
	assert.Empty(t, PrerequisiteCodes(Course{Code: "CS 1301"}))
}
