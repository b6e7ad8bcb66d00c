package mcaddon

import (
	"fmt"
	"strconv"
	"strings"

	json "github.com/goccy/go-json"
)

// FormatVersion is the engine-release-tied version tag controlling which
// schema and component set apply to a document. It is an ordered tuple of
// non-negative integers; comparison treats missing trailing components as
// zero, so 1.12 == 1.12.0.
type FormatVersion struct {
	parts []int
	// numeric marks versions that appeared as a bare JSON number on the wire
	// (manifests use "format_version": 2). They re-emit in the same form.
	numeric bool
}

// ParseVersion parses a dotted version string such as "1.20.50".
func ParseVersion(s string) (FormatVersion, error) {
	if s == "" {
		return FormatVersion{}, singleIssue(CodeInvalidVersion, "empty version string")
	}
	raw := strings.Split(s, ".")
	parts := make([]int, 0, len(raw))
	for _, p := range raw {
		n, err := strconv.Atoi(p)
		if err != nil || n < 0 {
			return FormatVersion{}, singleIssue(CodeInvalidVersion,
				fmt.Sprintf("invalid version component %q in %q", p, s))
		}
		parts = append(parts, n)
	}
	return FormatVersion{parts: parts}, nil
}

// MustVersion is ParseVersion for static version tables. It panics on
// malformed input.
func MustVersion(s string) FormatVersion {
	v, err := ParseVersion(s)
	if err != nil {
		panic(err)
	}
	return v
}

// VersionOf builds a version from explicit tuple components.
func VersionOf(parts ...int) FormatVersion {
	cp := make([]int, len(parts))
	copy(cp, parts)
	return FormatVersion{parts: cp}
}

// ParseVersionValue accepts the wire forms a format_version key can take:
// a dotted string, a bare number, or a [major, minor, patch] array.
func ParseVersionValue(v any) (FormatVersion, error) {
	switch x := v.(type) {
	case string:
		return ParseVersion(x)
	case float64:
		if x < 0 || x != float64(int(x)) {
			return FormatVersion{}, singleIssue(CodeInvalidVersion,
				fmt.Sprintf("invalid numeric version %v", x))
		}
		return FormatVersion{parts: []int{int(x)}, numeric: true}, nil
	case json.Number:
		n, err := strconv.Atoi(x.String())
		if err != nil || n < 0 {
			return FormatVersion{}, singleIssue(CodeInvalidVersion,
				fmt.Sprintf("invalid numeric version %q", x.String()))
		}
		return FormatVersion{parts: []int{n}, numeric: true}, nil
	case []any:
		parts := make([]int, 0, len(x))
		for _, e := range x {
			f, ok := e.(float64)
			if !ok || f < 0 || f != float64(int(f)) {
				return FormatVersion{}, singleIssue(CodeInvalidVersion,
					fmt.Sprintf("invalid version array element %v", e))
			}
			parts = append(parts, int(f))
		}
		if len(parts) == 0 {
			return FormatVersion{}, singleIssue(CodeInvalidVersion, "empty version array")
		}
		return FormatVersion{parts: parts}, nil
	default:
		return FormatVersion{}, singleIssue(CodeInvalidVersion,
			fmt.Sprintf("unsupported version value of type %T", v))
	}
}

// IsZero reports whether no version has been set. Entities may carry a zero
// version until serialization resolves one.
func (v FormatVersion) IsZero() bool { return len(v.parts) == 0 }

// Parts returns a copy of the tuple components.
func (v FormatVersion) Parts() []int {
	cp := make([]int, len(v.parts))
	copy(cp, v.parts)
	return cp
}

// Part returns the i-th tuple component, zero when absent.
func (v FormatVersion) Part(i int) int {
	if i < len(v.parts) {
		return v.parts[i]
	}
	return 0
}

// Compare returns -1, 0 or +1 ordering versions lexicographically by tuple
// with zero-padding of the shorter operand.
func (v FormatVersion) Compare(other FormatVersion) int {
	n := len(v.parts)
	if len(other.parts) > n {
		n = len(other.parts)
	}
	for i := 0; i < n; i++ {
		a, b := v.Part(i), other.Part(i)
		if a != b {
			if a < b {
				return -1
			}
			return 1
		}
	}
	return 0
}

// Equal reports tuple equality under zero-padding (1.12 == 1.12.0).
func (v FormatVersion) Equal(other FormatVersion) bool { return v.Compare(other) == 0 }

// Less reports strict tuple ordering.
func (v FormatVersion) Less(other FormatVersion) bool { return v.Compare(other) < 0 }

// String re-emits the version at its parsed precision ("1.12" stays "1.12").
func (v FormatVersion) String() string {
	if v.IsZero() {
		return ""
	}
	b := &strings.Builder{}
	for i, p := range v.parts {
		if i > 0 {
			b.WriteByte('.')
		}
		b.WriteString(strconv.Itoa(p))
	}
	return b.String()
}

// WireValue returns the value to embed under format_version: a bare integer
// for numeric (manifest-style) versions, the dotted string otherwise.
func (v FormatVersion) WireValue() any {
	if v.numeric && len(v.parts) == 1 {
		return v.parts[0]
	}
	return v.String()
}

// MarshalJSON preserves the wire form the version was parsed from.
func (v FormatVersion) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.WireValue())
}

// UnmarshalJSON accepts string or numeric wire forms.
func (v *FormatVersion) UnmarshalJSON(data []byte) error {
	var raw any
	if err := json.Unmarshal(data, &raw); err != nil {
		return singleIssue(CodeInvalidVersion, err.Error())
	}
	parsed, err := ParseVersionValue(raw)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}
