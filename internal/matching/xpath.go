package matching

import (
	"strings"

	"github.com/beevik/etree"
)

// MatchXPath evaluates XPath conditions against an XML body. Every
// condition must hold: the path must select an element (or attribute,
// via a "/@name" suffix) and, when an expected value is given, the
// selected text must equal it after trimming surrounding whitespace.
// An empty expected value asserts existence only. A body that is not
// well-formed XML never matches.
func MatchXPath(conditions map[string]string, body []byte) bool {
	if len(conditions) == 0 {
		return false
	}

	doc := etree.NewDocument()
	if err := doc.ReadFromBytes(body); err != nil {
		return false
	}

	for path, expected := range conditions {
		value, ok := extractXPath(doc, path)
		if !ok {
			return false
		}
		if expected == "" {
			continue
		}
		if strings.TrimSpace(value) != expected {
			return false
		}
	}

	return true
}

// extractXPath resolves a path to its text value. A "/@name" suffix
// selects an attribute of the addressed element; otherwise the
// element's own text is returned.
func extractXPath(doc *etree.Document, path string) (string, bool) {
	elemPath := path
	attr := ""
	if idx := strings.Index(path, "/@"); idx >= 0 {
		elemPath = path[:idx]
		attr = path[idx+2:]
	}

	elem := doc.FindElement(elemPath)
	if elem == nil {
		return "", false
	}

	if attr != "" {
		a := elem.SelectAttr(attr)
		if a == nil {
			return "", false
		}
		return a.Value, true
	}

	return elem.Text(), true
}
