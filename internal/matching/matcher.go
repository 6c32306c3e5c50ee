package matching

import (
	"github.com/getimpose/impose/pkg/imposter"
)

// Evaluate reports whether a single predicate matches the request.
func Evaluate(p *imposter.Predicate, req *imposter.Request) bool {
	if p == nil || req == nil {
		return false
	}

	switch p.Kind {
	case imposter.KindEquals:
		return matchFields(p.Fields, req, cmpEquals, fieldOpts{form: formExact})
	case imposter.KindContains:
		return matchFields(p.Fields, req, cmpContains, fieldOpts{form: formSubset})
	case imposter.KindStartsWith:
		return matchFields(p.Fields, req, cmpStartsWith, fieldOpts{form: formSubset})
	case imposter.KindEndsWith:
		return matchFields(p.Fields, req, cmpEndsWith, fieldOpts{form: formSubset})
	case imposter.KindMatches:
		return matchFields(p.Fields, req, cmpPattern, fieldOpts{form: formSubset, pattern: true})
	case imposter.KindExists:
		return matchExists(p.Exists, req)
	case imposter.KindJSONPath:
		return MatchJSONPath(p.JSONPath, req.Body)
	case imposter.KindXPath:
		return MatchXPath(p.XPath, req.Body)
	case imposter.KindExpr:
		return matchExpr(p, req)
	default:
		return false
	}
}

// EvaluateAll reports whether every predicate matches (logical AND).
// An empty predicate list matches any request.
func EvaluateAll(predicates []imposter.Predicate, req *imposter.Request) bool {
	for i := range predicates {
		if !Evaluate(&predicates[i], req) {
			return false
		}
	}
	return true
}
