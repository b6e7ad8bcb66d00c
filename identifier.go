package mcaddon

import (
	"fmt"
	"regexp"
	"strings"

	json "github.com/goccy/go-json"
)

// DefaultNamespace is the namespace assumed by IdentifierOf callers that pass
// an empty fallback.
const DefaultNamespace = "minecraft"

const identifierSeparator = ":"

var (
	namespacePattern = regexp.MustCompile(`^[a-z0-9_.-]+$`)
	pathPattern      = regexp.MustCompile(`^[a-z0-9/._:-]+$`)
)

// Identifier is the namespace:path naming scheme used throughout the add-on
// format. It is an immutable value type; two identifiers are equal iff both
// fields match exactly.
type Identifier struct {
	Namespace string
	Path      string
}

// ParseIdentifier parses "namespace:path" splitting on the FIRST colon only,
// so "a:b:c" yields namespace "a" and path "b:c". Input without a colon is a
// format error; use IdentifierOf to supply a fallback namespace.
func ParseIdentifier(s string) (Identifier, error) {
	ns, path, ok := strings.Cut(s, identifierSeparator)
	if !ok {
		return Identifier{}, singleIssue(CodeInvalidIdentifier,
			fmt.Sprintf("identifier %q has no namespace and no default was configured", s))
	}
	return NewIdentifier(ns, path)
}

// IdentifierOf parses s like ParseIdentifier but falls back to defaultNS when
// no colon is present. An empty defaultNS means DefaultNamespace.
func IdentifierOf(s, defaultNS string) (Identifier, error) {
	if !strings.Contains(s, identifierSeparator) {
		if defaultNS == "" {
			defaultNS = DefaultNamespace
		}
		return NewIdentifier(defaultNS, s)
	}
	return ParseIdentifier(s)
}

// NewIdentifier validates both halves and returns the identifier.
func NewIdentifier(namespace, path string) (Identifier, error) {
	if namespace == "" || !namespacePattern.MatchString(namespace) {
		return Identifier{}, singleIssue(CodeInvalidIdentifier,
			fmt.Sprintf("invalid namespace %q", namespace))
	}
	if path == "" || !pathPattern.MatchString(path) {
		return Identifier{}, singleIssue(CodeInvalidIdentifier,
			fmt.Sprintf("invalid path %q", path))
	}
	return Identifier{Namespace: namespace, Path: path}, nil
}

// MustIdentifier is ParseIdentifier for static identifiers known to be valid.
// It panics on malformed input and is intended for package-level registration
// tables only.
func MustIdentifier(s string) Identifier {
	id, err := ParseIdentifier(s)
	if err != nil {
		panic(err)
	}
	return id
}

// String renders the canonical "namespace:path" form. It is the inverse of
// ParseIdentifier for all valid inputs.
func (id Identifier) String() string {
	return id.Namespace + identifierSeparator + id.Path
}

// IsZero reports whether the identifier is the zero value.
func (id Identifier) IsZero() bool { return id.Namespace == "" && id.Path == "" }

// Compare orders identifiers by canonical string form.
func (id Identifier) Compare(other Identifier) int {
	return strings.Compare(id.String(), other.String())
}

// Less reports canonical-string ordering, for sorted output.
func (id Identifier) Less(other Identifier) bool { return id.Compare(other) < 0 }

// WithPath returns a copy of this identifier with a new path.
func (id Identifier) WithPath(path string) Identifier {
	return Identifier{Namespace: id.Namespace, Path: path}
}

// WithNamespace returns a copy of this identifier with a new namespace.
func (id Identifier) WithNamespace(ns string) Identifier {
	return Identifier{Namespace: ns, Path: id.Path}
}

// MarshalJSON emits the canonical string form.
func (id Identifier) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON accepts the canonical string form.
func (id *Identifier) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return singleIssue(CodeInvalidIdentifier, err.Error())
	}
	parsed, err := ParseIdentifier(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}
