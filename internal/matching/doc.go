// Package matching evaluates stub predicates against normalized requests.
//
// Evaluation is pure and deterministic: no side effects, no errors.
// Malformed predicate input (which construction-time validation should
// have rejected) resolves to no-match rather than failing the request.
package matching
