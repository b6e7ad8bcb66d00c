package mcaddon

import "strings"

// Molang is an engine expression string carried opaquely by component
// payloads. The core never evaluates expressions; an external evaluator is
// invoked through the ExpressionEvaluator hook when a caller needs one.
type Molang string

// IsExpression reports whether the string looks like an expression rather
// than a literal value (query/math/variable prefixes or operators).
func (m Molang) IsExpression() bool {
	s := string(m)
	for _, p := range []string{"query.", "q.", "math.", "variable.", "v.", "temp.", "t.", "context.", "c."} {
		if strings.Contains(s, p) {
			return true
		}
	}
	return strings.ContainsAny(s, "=<>!&|+*/")
}

func (m Molang) String() string { return string(m) }

// ExpressionEvaluator is the Molang collaborator boundary: a pure function
// from expression text to its rendered result.
type ExpressionEvaluator func(expr string) (string, error)

// LangWriter is the .lang collaborator boundary used when a component payload
// carries localizable text.
type LangWriter func(key, text string) error
