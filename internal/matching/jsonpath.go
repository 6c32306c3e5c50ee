package matching

import (
	"encoding/json"
	"reflect"

	"github.com/ohler55/ojg/jp"
	"github.com/ohler55/ojg/oj"
)

// MatchJSONPath evaluates JSONPath conditions against a JSON body.
// Every condition must hold: the path must select at least one value,
// and when an expected value is given, some selected value must equal
// it. A body that is not valid JSON never matches.
func MatchJSONPath(conditions map[string]any, body []byte) bool {
	if len(conditions) == 0 {
		return false
	}

	doc, err := oj.Parse(body)
	if err != nil {
		return false
	}

	for path, expected := range conditions {
		expr, err := jp.ParseString(path)
		if err != nil {
			return false
		}
		results := expr.Get(doc)
		if len(results) == 0 {
			return false
		}
		if expected == nil {
			continue
		}
		if !anyValueEquals(results, expected) {
			return false
		}
	}

	return true
}

// anyValueEquals reports whether any selected value equals expected.
// Both sides round-trip through JSON so that numeric representations
// (int64 vs float64) compare by value.
func anyValueEquals(results []any, expected any) bool {
	want := normalizeJSON(expected)
	for _, got := range results {
		if reflect.DeepEqual(normalizeJSON(got), want) {
			return true
		}
	}
	return false
}

func normalizeJSON(v any) any {
	raw, err := json.Marshal(v)
	if err != nil {
		return v
	}
	var out any
	if err := json.Unmarshal(raw, &out); err != nil {
		return v
	}
	return out
}
