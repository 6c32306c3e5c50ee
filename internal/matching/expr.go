package matching

import (
	"github.com/expr-lang/expr"
	"github.com/getimpose/impose/pkg/imposter"
)

// matchExpr runs a compiled boolean expression against the request.
// The environment exposes method, path and body as strings, plus
// query, headers and form as first-value maps. Evaluation errors
// resolve to no-match.
func matchExpr(p *imposter.Predicate, req *imposter.Request) bool {
	env := exprEnv(req)

	program := p.Program()
	if program == nil {
		compiled, err := expr.Compile(p.Expr, expr.AsBool(), expr.AllowUndefinedVariables())
		if err != nil {
			return false
		}
		program = compiled
	}

	out, err := expr.Run(program, env)
	if err != nil {
		return false
	}
	matched, ok := out.(bool)
	return ok && matched
}

// exprEnv flattens the request into expression variables.
func exprEnv(req *imposter.Request) map[string]any {
	query := make(map[string]string, len(req.Query))
	for name := range req.Query {
		query[name] = req.Query.Get(name)
	}
	headers := make(map[string]string, len(req.Headers))
	for name := range req.Headers {
		headers[name] = req.Headers.Get(name)
	}
	form := make(map[string]string, len(req.Form))
	for name := range req.Form {
		form[name] = req.Form.Get(name)
	}
	return map[string]any{
		"method":  req.Method,
		"path":    req.Path,
		"body":    string(req.Body),
		"query":   query,
		"headers": headers,
		"form":    form,
	}
}
