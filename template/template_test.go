package template_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
	"github.com/blockforge/mcaddon/template"
)

func TestExpand_Variables(t *testing.T) {
	out, err := template.Expand(`{"identifier": "{{ns}}:{{name}}"}`,
		template.Context{"ns": "gems", "name": "ruby"})
	require.NoError(t, err)
	assert.Equal(t, `{"identifier": "gems:ruby"}`, out)
}

func TestExpand_DottedPath(t *testing.T) {
	out, err := template.Expand(`{{block.id}}`,
		template.Context{"block": map[string]any{"id": "test:ore"}})
	require.NoError(t, err)
	assert.Equal(t, "test:ore", out)
}

func TestExpand_Sections(t *testing.T) {
	ctx := template.Context{"tags": []any{"one", "two"}}
	out, err := template.Expand(`{{#tags}}[{{.}}]{{/tags}}`, ctx)
	require.NoError(t, err)
	assert.Equal(t, "[one][two]", out)

	// absent section keys are falsy, not an error
	out, err = template.Expand(`a{{#missing}}X{{/missing}}b`, template.Context{})
	require.NoError(t, err)
	assert.Equal(t, "ab", out)
}

func TestExpand_MissingVariable(t *testing.T) {
	_, err := template.Expand(`{"count": {{count}}}`, template.Context{})
	require.Error(t, err)
	assert.True(t, mcaddon.IsTemplateError(err))

	iss, ok := mcaddon.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, mcaddon.CodeTemplateMissingVar, iss[0].Code)
	assert.Equal(t, "count", iss[0].Params["variable"])
}

func TestExpand_ReportsEveryMissingVariable(t *testing.T) {
	_, err := template.Expand(`{{a}} {{b}}`, template.Context{})
	require.Error(t, err)
	iss, _ := mcaddon.AsIssues(err)
	assert.Len(t, iss, 2)
}

func TestExpand_SyntaxError(t *testing.T) {
	_, err := template.Expand(`{{#open}}never closed`, template.Context{})
	require.Error(t, err)
	assert.True(t, mcaddon.IsTemplateError(err))
}

func TestLoadContext_YAML(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ns: gems\ncount: 5\n"), 0o644))

	ctx, err := template.LoadContext(path)
	require.NoError(t, err)
	assert.Equal(t, "gems", ctx["ns"])
	assert.Equal(t, 5, ctx["count"])
}

func TestLoadContext_JSON(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "ctx.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"ns":"gems"}`), 0o644))

	ctx, err := template.LoadContext(path)
	require.NoError(t, err)
	assert.Equal(t, "gems", ctx["ns"])
}

func TestLoadContext_BadFile(t *testing.T) {
	_, err := template.LoadContext(filepath.Join(t.TempDir(), "missing.yaml"))
	require.Error(t, err)
}
