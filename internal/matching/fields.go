package matching

import (
	"regexp"
	"strings"

	"github.com/getimpose/impose/pkg/imposter"
)

// cmp compares an expected value from a predicate against an actual
// request value. Implementations must be pure.
type cmp func(expected, actual string) bool

func cmpEquals(expected, actual string) bool {
	return expected == actual
}

func cmpContains(expected, actual string) bool {
	return strings.Contains(actual, expected)
}

func cmpStartsWith(expected, actual string) bool {
	return strings.HasPrefix(actual, expected)
}

func cmpEndsWith(expected, actual string) bool {
	return strings.HasSuffix(actual, expected)
}

// cmpPattern matches actual against an RE2 pattern. Patterns are
// validated at stub creation; an invalid pattern here resolves to
// no-match rather than an error.
func cmpPattern(expected, actual string) bool {
	re, err := regexp.Compile(expected)
	if err != nil {
		return false
	}
	return re.MatchString(actual)
}

// formMode controls how form fields are compared.
type formMode int

const (
	// formSubset requires every named field to be present and match.
	formSubset formMode = iota
	// formExact additionally requires the request form to carry no
	// extra fields (exact key set equality).
	formExact
)

// fieldOpts tunes matchFields per predicate kind.
type fieldOpts struct {
	form formMode

	// pattern marks the expected values as regular expressions, which
	// must not be case-normalized.
	pattern bool
}

// matchFields checks every field named by the predicate against the
// request. A field absent from the request is a non-match, never an
// error. Method tokens compare case-insensitively, header names per
// HTTP convention; body content and header values are case-sensitive.
func matchFields(f *imposter.Fields, req *imposter.Request, compare cmp, opts fieldOpts) bool {
	if f.IsEmpty() {
		return false
	}

	if f.Method != "" {
		expected := f.Method
		if !opts.pattern {
			expected = strings.ToUpper(expected)
		}
		if !compare(expected, req.Method) {
			return false
		}
	}

	if f.Path != "" {
		if !compare(f.Path, req.Path) {
			return false
		}
	}

	for name, expected := range f.Query {
		values, ok := req.Query[name]
		if !ok {
			return false
		}
		if !anyMatch(compare, expected, values) {
			return false
		}
	}

	for name, expected := range f.Headers {
		values := req.Headers.Values(name)
		if len(values) == 0 {
			return false
		}
		if !anyMatch(compare, expected, values) {
			return false
		}
	}

	if f.Body != "" || f.HasBody {
		if !compare(f.Body, string(req.Body)) {
			return false
		}
	}

	if len(f.Form) > 0 {
		if !matchForm(f.Form, req.Form, compare, opts.form) {
			return false
		}
	}

	return true
}

// anyMatch reports whether the expected value matches any of the actual
// values of a repeated field.
func anyMatch(compare cmp, expected string, values []string) bool {
	for _, v := range values {
		if compare(expected, v) {
			return true
		}
	}
	return false
}

// matchForm compares expected form fields against the decoded request
// form. In formExact mode the key sets must be identical; extra or
// missing fields are a mismatch.
func matchForm(expected map[string]string, form map[string][]string, compare cmp, mode formMode) bool {
	if form == nil {
		return false
	}
	if mode == formExact && len(form) != len(expected) {
		return false
	}
	for name, want := range expected {
		values, ok := form[name]
		if !ok {
			return false
		}
		if !anyMatch(compare, want, values) {
			return false
		}
	}
	return true
}

// matchExists checks presence (or required absence) of request fields.
func matchExists(e *imposter.ExistsFields, req *imposter.Request) bool {
	if e.IsEmpty() {
		return false
	}

	if e.Body != nil {
		if *e.Body != (len(req.Body) > 0) {
			return false
		}
	}

	for name, want := range e.Query {
		_, present := req.Query[name]
		if want != present {
			return false
		}
	}

	for name, want := range e.Headers {
		present := len(req.Headers.Values(name)) > 0
		if want != present {
			return false
		}
	}

	for name, want := range e.Form {
		_, present := req.Form[name]
		if want != present {
			return false
		}
	}

	return true
}
