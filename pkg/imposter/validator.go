package imposter

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/beevik/etree"
	"github.com/expr-lang/expr"
	"github.com/ohler55/ojg/jp"
)

// ValidationError represents a configuration failure with field context.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error on %s: %s", e.Field, e.Message)
}

// validatePredicate checks a predicate at creation time. Regular
// expressions, JSONPath and XPath expressions, and expr programs are
// compiled here so that match-time evaluation can never fail.
func validatePredicate(p *Predicate) error {
	switch p.Kind {
	case KindEquals, KindContains, KindStartsWith, KindEndsWith:
		if p.Fields.IsEmpty() {
			return &ValidationError{Field: "fields", Message: fmt.Sprintf("%s predicate names no fields", p.Kind)}
		}
	case KindMatches:
		if p.Fields.IsEmpty() {
			return &ValidationError{Field: "fields", Message: "matches predicate names no fields"}
		}
		if err := validatePatterns(p.Fields); err != nil {
			return err
		}
	case KindExists:
		if p.Exists.IsEmpty() {
			return &ValidationError{Field: "exists", Message: "exists predicate names no fields"}
		}
	case KindJSONPath:
		if len(p.JSONPath) == 0 {
			return &ValidationError{Field: "jsonpath", Message: "jsonpath predicate has no conditions"}
		}
		for path := range p.JSONPath {
			if _, err := jp.ParseString(path); err != nil {
				return &ValidationError{Field: "jsonpath", Message: fmt.Sprintf("invalid JSONPath %q: %v", path, err)}
			}
		}
	case KindXPath:
		if len(p.XPath) == 0 {
			return &ValidationError{Field: "xpath", Message: "xpath predicate has no conditions"}
		}
		for path := range p.XPath {
			if err := validateXPath(path); err != nil {
				return &ValidationError{Field: "xpath", Message: fmt.Sprintf("invalid XPath %q: %v", path, err)}
			}
		}
	case KindExpr:
		if strings.TrimSpace(p.Expr) == "" {
			return &ValidationError{Field: "expr", Message: "expr predicate has no expression"}
		}
		program, err := expr.Compile(p.Expr, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return &ValidationError{Field: "expr", Message: fmt.Sprintf("invalid expression: %v", err)}
		}
		p.program = program
	case "":
		return &ValidationError{Field: "kind", Message: "predicate kind is required"}
	default:
		return &ValidationError{Field: "kind", Message: fmt.Sprintf("unknown predicate kind: %s", p.Kind)}
	}

	return nil
}

// validatePatterns compiles every pattern of a matches predicate.
func validatePatterns(f *Fields) error {
	check := func(field, pattern string) error {
		if pattern == "" {
			return nil
		}
		if _, err := regexp.Compile(pattern); err != nil {
			return &ValidationError{Field: field, Message: fmt.Sprintf("invalid pattern %q: %v", pattern, err)}
		}
		return nil
	}

	if err := check("fields.method", f.Method); err != nil {
		return err
	}
	if err := check("fields.path", f.Path); err != nil {
		return err
	}
	if err := check("fields.body", f.Body); err != nil {
		return err
	}
	for name, pattern := range f.Query {
		if err := check("fields.query."+name, pattern); err != nil {
			return err
		}
	}
	for name, pattern := range f.Headers {
		if err := check("fields.headers."+name, pattern); err != nil {
			return err
		}
	}
	for name, pattern := range f.Form {
		if err := check("fields.form."+name, pattern); err != nil {
			return err
		}
	}
	return nil
}

// validateXPath checks that an XPath expression compiles. Attribute
// selection via a "/@name" suffix is handled by the evaluator, so only
// the element part is compiled here.
func validateXPath(path string) error {
	if path == "" {
		return fmt.Errorf("empty path")
	}
	elemPath := path
	if idx := strings.Index(path, "/@"); idx >= 0 {
		elemPath = path[:idx]
	}
	if elemPath == "" {
		return nil
	}
	_, err := etree.CompilePath(elemPath)
	return err
}
