package imposter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidatePredicate(t *testing.T) {
	truth := true

	tests := []struct {
		name      string
		predicate Predicate
		wantField string
	}{
		{
			name:      "equals with fields",
			predicate: Predicate{Kind: KindEquals, Fields: &Fields{Path: "/x"}},
		},
		{
			name:      "equals without fields",
			predicate: Predicate{Kind: KindEquals},
			wantField: "fields",
		},
		{
			name:      "matches with valid pattern",
			predicate: Predicate{Kind: KindMatches, Fields: &Fields{Path: `^/users/\d+$`}},
		},
		{
			name:      "matches with invalid pattern",
			predicate: Predicate{Kind: KindMatches, Fields: &Fields{Path: "["}},
			wantField: "fields.path",
		},
		{
			name:      "matches with invalid header pattern",
			predicate: Predicate{Kind: KindMatches, Fields: &Fields{Headers: map[string]string{"X-Id": "(unclosed"}}},
			wantField: "fields.headers.X-Id",
		},
		{
			name:      "exists",
			predicate: Predicate{Kind: KindExists, Exists: &ExistsFields{Body: &truth}},
		},
		{
			name:      "exists without fields",
			predicate: Predicate{Kind: KindExists},
			wantField: "exists",
		},
		{
			name:      "jsonpath",
			predicate: Predicate{Kind: KindJSONPath, JSONPath: map[string]any{"$.user.id": 7}},
		},
		{
			name:      "jsonpath with bad expression",
			predicate: Predicate{Kind: KindJSONPath, JSONPath: map[string]any{"$[": nil}},
			wantField: "jsonpath",
		},
		{
			name:      "jsonpath with no conditions",
			predicate: Predicate{Kind: KindJSONPath},
			wantField: "jsonpath",
		},
		{
			name:      "xpath",
			predicate: Predicate{Kind: KindXPath, XPath: map[string]string{"//order/@id": "42"}},
		},
		{
			name:      "xpath with empty path",
			predicate: Predicate{Kind: KindXPath, XPath: map[string]string{"": "x"}},
			wantField: "xpath",
		},
		{
			name:      "expr",
			predicate: Predicate{Kind: KindExpr, Expr: `method == "GET"`},
		},
		{
			name:      "expr with syntax error",
			predicate: Predicate{Kind: KindExpr, Expr: `method ==`},
			wantField: "expr",
		},
		{
			name:      "expr with blank expression",
			predicate: Predicate{Kind: KindExpr, Expr: "   "},
			wantField: "expr",
		},
		{
			name:      "missing kind",
			predicate: Predicate{},
			wantField: "kind",
		},
		{
			name:      "unknown kind",
			predicate: Predicate{Kind: "deepEquals"},
			wantField: "kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := validatePredicate(&tt.predicate)
			if tt.wantField == "" {
				assert.NoError(t, err)
				return
			}
			var verr *ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.wantField, verr.Field)
		})
	}
}

func TestValidatePredicateCompilesExpr(t *testing.T) {
	p := Predicate{Kind: KindExpr, Expr: `path startsWith "/v1"`}
	require.NoError(t, validatePredicate(&p))
	assert.NotNil(t, p.Program(), "expression must be compiled during validation")
}

func TestResponseValidate(t *testing.T) {
	tests := []struct {
		name     string
		response Response
		wantErr  bool
	}{
		{"defaults to 200", Response{}, false},
		{"explicit status", Response{StatusCode: 503}, false},
		{"status too low", Response{StatusCode: 99}, true},
		{"status too high", Response{StatusCode: 600}, true},
		{"negative delay", Response{DelayMs: -1}, true},
		{"body and jsonBody conflict", Response{Body: "x", JSONBody: map[string]any{"a": 1}}, true},
		{"jsonBody alone", Response{JSONBody: []int{1, 2, 3}}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.response.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestResponseValidateRendersJSONBody(t *testing.T) {
	r := Response{JSONBody: map[string]any{"ok": true}}
	require.NoError(t, r.validate())
	assert.Equal(t, 200, r.StatusCode)
	assert.JSONEq(t, `{"ok":true}`, string(r.Bytes()))
	assert.Equal(t, "application/json", r.ContentType())
}

func TestResponseBodyPassesThroughExactly(t *testing.T) {
	raw := string([]byte{0x01, 0x02, 0xFF, 'a'})
	r := Response{Body: raw}
	require.NoError(t, r.validate())
	assert.Equal(t, []byte(raw), r.Bytes())
	assert.Empty(t, r.ContentType())
}
