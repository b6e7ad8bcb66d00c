package mcaddon_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

func TestIssues_ErrorSummary(t *testing.T) {
	iss := mcaddon.Issues{
		{Path: "/a", Code: mcaddon.CodeSchemaViolation},
		{Path: "/b", Code: mcaddon.CodeSchemaViolation},
		{Path: "/c", Code: mcaddon.CodeSchemaViolation},
		{Path: "/d", Code: mcaddon.CodeSchemaViolation},
	}
	s := iss.Error()
	assert.Contains(t, s, "schema_violation at /a")
	assert.Contains(t, s, "total 4")
	assert.Empty(t, mcaddon.Issues{}.Error())
}

func TestAsIssues_UnwrapsWrappedErrors(t *testing.T) {
	inner := mcaddon.Issues{{Path: "/x", Code: mcaddon.CodeInvalidVersion}}
	wrapped := fmt.Errorf("loading document: %w", inner)

	iss, ok := mcaddon.AsIssues(wrapped)
	require.True(t, ok)
	require.Len(t, iss, 1)
	assert.Equal(t, "/x", iss[0].Path)

	_, ok = mcaddon.AsIssues(nil)
	assert.False(t, ok)
	_, ok = mcaddon.AsIssues(fmt.Errorf("plain"))
	assert.False(t, ok)
}

func TestIssueKinds(t *testing.T) {
	cases := map[string]mcaddon.Kind{
		mcaddon.CodeInvalidIdentifier:   mcaddon.KindFormat,
		mcaddon.CodeParseError:          mcaddon.KindFormat,
		mcaddon.CodeUnsupportedVersion:  mcaddon.KindUnsupportedVersion,
		mcaddon.CodeSchemaViolation:     mcaddon.KindSchemaValidation,
		mcaddon.CodeTemplateMissingVar:  mcaddon.KindTemplate,
		mcaddon.CodeComponentConstraint: mcaddon.KindComponent,
	}
	for code, want := range cases {
		assert.Equal(t, want, mcaddon.Issue{Code: code}.Kind(), code)
	}

	err := error(mcaddon.Issues{{Code: mcaddon.CodeUnsupportedVersion}})
	assert.True(t, mcaddon.IsUnsupportedVersion(err))
	assert.False(t, mcaddon.IsSchemaValidation(err))
	assert.False(t, mcaddon.IsTemplateError(nil))
}
