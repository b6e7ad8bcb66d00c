package mcaddon

import (
	"errors"
	"fmt"
	"strings"
)

// Issue codes (exported consts for IDE completion and type safety by convention)
const (
	CodeInvalidIdentifier  = "invalid_identifier"
	CodeInvalidVersion     = "invalid_version"
	CodeInvalidDocument    = "invalid_document"
	CodeParseError         = "parse_error"
	CodeDuplicateKey       = "duplicate_key"
	CodeUnknownContentType = "unknown_content_type"
	CodeUnsupportedVersion = "unsupported_version"
	CodeSchemaViolation    = "schema_violation"
	CodeTemplateMissingVar = "template_missing_var"
	CodeTemplateSyntax     = "template_syntax"
	// Component passes (typed payload constraints beyond schema shape)
	CodeComponentConstraint = "component_constraint"
	CodeComponentCodec      = "component_codec"
)

// Kind classifies an Issue into one of the coarse error families surfaced to
// callers. Unknown component names are deliberately NOT an error of any kind;
// they round-trip as opaque passthrough values.
type Kind int

const (
	KindFormat Kind = iota
	KindUnsupportedVersion
	KindSchemaValidation
	KindTemplate
	KindComponent
)

func (k Kind) String() string {
	switch k {
	case KindFormat:
		return "format"
	case KindUnsupportedVersion:
		return "unsupported_version"
	case KindSchemaValidation:
		return "schema_validation"
	case KindTemplate:
		return "template"
	case KindComponent:
		return "component"
	default:
		return "unknown"
	}
}

// kindOf maps an issue code to its error family.
func kindOf(code string) Kind {
	switch code {
	case CodeUnsupportedVersion:
		return KindUnsupportedVersion
	case CodeSchemaViolation:
		return KindSchemaValidation
	case CodeTemplateMissingVar, CodeTemplateSyntax:
		return KindTemplate
	case CodeComponentConstraint, CodeComponentCodec:
		return KindComponent
	default:
		return KindFormat
	}
}

// Issue represents a single validation entry.
type Issue struct {
	Path    string // JSON Pointer (for example: /minecraft:ore_feature/count).
	Code    string // One of the codes listed above.
	Message string
	Hint    string // Optional: remediation hints, expected shapes, etc.
	Cause   error  // Optional: underlying error.
	// Params carries structured parameters (e.g., {"requested":"1.10","floor":"1.12"})
	// for observability.
	Params map[string]any
}

// Kind reports the error family this issue belongs to.
func (it Issue) Kind() Kind { return kindOf(it.Code) }

// Issues is a collection of validation errors that implements error. A failing
// validate/load/save call carries every violation found, not just the first.
type Issues []Issue

// Error summarizes the first few issues.
func (iss Issues) Error() string {
	if len(iss) == 0 {
		return ""
	}
	const maxShown = 3
	b := &strings.Builder{}
	n := len(iss)
	lim := n
	if lim > maxShown {
		lim = maxShown
	}
	for i := 0; i < lim; i++ {
		if i > 0 {
			b.WriteString("; ")
		}
		it := iss[i]
		if it.Path != "" {
			fmt.Fprintf(b, "%s at %s", it.Code, it.Path)
		} else {
			b.WriteString(it.Code)
		}
	}
	if n > lim {
		fmt.Fprintf(b, "; ... (total %d)", n)
	}
	return b.String()
}

// AppendIssues appends issues to the destination, initializing the slice when
// needed.
func AppendIssues(dst Issues, more ...Issue) Issues {
	if dst == nil {
		dst = Issues{}
	}
	dst = append(dst, more...)
	return dst
}

// AsIssues extracts Issues from an error using errors.As internally.
func AsIssues(err error) (Issues, bool) {
	if err == nil {
		return nil, false
	}
	var iss Issues
	if errors.As(err, &iss) {
		return iss, true
	}
	return nil, false
}

// HasKind reports whether err carries at least one issue of the given family.
func HasKind(err error, k Kind) bool {
	iss, ok := AsIssues(err)
	if !ok {
		return false
	}
	for _, it := range iss {
		if it.Kind() == k {
			return true
		}
	}
	return false
}

// IsFormatError reports a malformed identifier or document shape.
func IsFormatError(err error) bool { return HasKind(err, KindFormat) }

// IsUnsupportedVersion reports a requested format version with no resolvable
// schema, or one below the known floor.
func IsUnsupportedVersion(err error) bool { return HasKind(err, KindUnsupportedVersion) }

// IsSchemaValidation reports a document that parses but violates the resolved
// schema.
func IsSchemaValidation(err error) bool { return HasKind(err, KindSchemaValidation) }

// IsTemplateError reports an unresolved template variable or malformed
// directive.
func IsTemplateError(err error) bool { return HasKind(err, KindTemplate) }

// IsComponentError reports a recognized component payload failing its own
// typed constraints.
func IsComponentError(err error) bool { return HasKind(err, KindComponent) }

func singleIssue(code, msg string) Issues {
	return Issues{Issue{Path: "/", Code: code, Message: msg}}
}

func issueAt(path, code, msg string) Issues {
	return Issues{Issue{Path: path, Code: code, Message: msg}}
}
