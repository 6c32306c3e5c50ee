package imposter

import "github.com/expr-lang/expr/vm"

// Kind identifies a predicate kind. The set of kinds is closed; unknown
// kinds are rejected when the owning stub is created.
type Kind string

// Supported predicate kinds.
const (
	// KindEquals matches when every named field compares exactly equal.
	// Method tokens and header names compare case-insensitively, body
	// and header values byte-for-byte. Form fields require exact key
	// set equality.
	KindEquals Kind = "equals"

	// KindContains matches when the expected value is a substring of
	// the corresponding text field, or a subset of a mapping field.
	KindContains Kind = "contains"

	// KindStartsWith matches on a string prefix.
	KindStartsWith Kind = "startsWith"

	// KindEndsWith matches on a string suffix.
	KindEndsWith Kind = "endsWith"

	// KindMatches matches each named field against an RE2 regular
	// expression. Patterns are compiled and validated at creation.
	KindMatches Kind = "matches"

	// KindExists checks field presence (or absence) without comparing
	// values.
	KindExists Kind = "exists"

	// KindJSONPath evaluates JSONPath conditions against a JSON body.
	KindJSONPath Kind = "jsonpath"

	// KindXPath evaluates XPath conditions against an XML body.
	KindXPath Kind = "xpath"

	// KindExpr evaluates a boolean expression over the whole request.
	KindExpr Kind = "expr"
)

// Predicate is one condition evaluated against a normalized request.
// Exactly one of the kind-specific sections must be populated,
// matching Kind:
//
//   - Fields for equals, contains, startsWith, endsWith, matches
//   - Exists for exists
//   - JSONPath for jsonpath
//   - XPath for xpath
//   - Expr for expr
type Predicate struct {
	Kind Kind `json:"kind" yaml:"kind"`

	// Fields names the request attributes to compare and their
	// expected values.
	Fields *Fields `json:"fields,omitempty" yaml:"fields,omitempty"`

	// Exists maps request attributes to an expected presence flag.
	Exists *ExistsFields `json:"exists,omitempty" yaml:"exists,omitempty"`

	// JSONPath maps JSONPath expressions to expected values. A nil
	// expected value asserts existence only.
	JSONPath map[string]any `json:"jsonpath,omitempty" yaml:"jsonpath,omitempty"`

	// XPath maps XPath expressions to expected text values.
	XPath map[string]string `json:"xpath,omitempty" yaml:"xpath,omitempty"`

	// Expr is a boolean expression over the request (method, path,
	// query, headers, body, form).
	Expr string `json:"expr,omitempty" yaml:"expr,omitempty"`

	// program is the compiled Expr, populated during validation.
	program *vm.Program
}

// Fields names request attributes and their expected values for the
// string-comparison predicate kinds.
type Fields struct {
	Method  string            `json:"method,omitempty" yaml:"method,omitempty"`
	Path    string            `json:"path,omitempty" yaml:"path,omitempty"`
	Query   map[string]string `json:"query,omitempty" yaml:"query,omitempty"`
	Headers map[string]string `json:"headers,omitempty" yaml:"headers,omitempty"`
	Body    string            `json:"body,omitempty" yaml:"body,omitempty"`
	Form    map[string]string `json:"form,omitempty" yaml:"form,omitempty"`

	// HasBody marks the body as part of the comparison even when the
	// expected value is the empty string.
	HasBody bool `json:"hasBody,omitempty" yaml:"hasBody,omitempty"`
}

// IsEmpty reports whether no field is named.
func (f *Fields) IsEmpty() bool {
	if f == nil {
		return true
	}
	return f.Method == "" && f.Path == "" && len(f.Query) == 0 &&
		len(f.Headers) == 0 && f.Body == "" && !f.HasBody && len(f.Form) == 0
}

// ExistsFields maps request attributes to an expected presence flag.
// A true value requires the attribute to be present, false requires it
// to be absent.
type ExistsFields struct {
	Body    *bool           `json:"body,omitempty" yaml:"body,omitempty"`
	Query   map[string]bool `json:"query,omitempty" yaml:"query,omitempty"`
	Headers map[string]bool `json:"headers,omitempty" yaml:"headers,omitempty"`
	Form    map[string]bool `json:"form,omitempty" yaml:"form,omitempty"`
}

// IsEmpty reports whether no presence check is named.
func (e *ExistsFields) IsEmpty() bool {
	if e == nil {
		return true
	}
	return e.Body == nil && len(e.Query) == 0 && len(e.Headers) == 0 && len(e.Form) == 0
}

// Program returns the compiled expression for KindExpr predicates, or
// nil if the predicate has not been validated.
func (p *Predicate) Program() *vm.Program {
	return p.program
}
