// Package template expands logic-less mustache directives embedded in raw
// document text before JSON parsing. Expansion is stateless across documents:
// each load gets a fresh context, and nothing of the context survives into
// the resulting entity.
package template

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/cbroglie/mustache"
	json "github.com/goccy/go-json"
	"gopkg.in/yaml.v3"

	"github.com/blockforge/mcaddon"
)

// Context is the ephemeral variable mapping for one document load.
type Context map[string]any

// Expand renders text with variable interpolation and simple section/loop
// constructs. An unresolved required variable is an error; there is no
// silent fallback to empty output.
func Expand(text string, ctx Context) (string, error) {
	tmpl, err := mustache.ParseString(text)
	if err != nil {
		return "", mcaddon.Issues{{
			Path:    "/",
			Code:    mcaddon.CodeTemplateSyntax,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	if missing := missingVars(tmpl, ctx); len(missing) > 0 {
		var iss mcaddon.Issues
		for _, name := range missing {
			iss = mcaddon.AppendIssues(iss, mcaddon.Issue{
				Path:    "/",
				Code:    mcaddon.CodeTemplateMissingVar,
				Message: "unresolved template variable " + name,
				Params:  map[string]any{"variable": name},
			})
		}
		return "", iss
	}
	out, err := tmpl.Render(map[string]any(ctx))
	if err != nil {
		return "", mcaddon.Issues{{
			Path:    "/",
			Code:    mcaddon.CodeTemplateSyntax,
			Message: err.Error(),
			Cause:   err,
		}}
	}
	return out, nil
}

// Preprocessor adapts Expand to the engine's PreprocessFunc boundary.
func Preprocessor() mcaddon.PreprocessFunc {
	return func(text string, ctx map[string]any) (string, error) {
		return Expand(text, Context(ctx))
	}
}

// missingVars reports top-level variable tags with no binding in ctx.
// Section keys resolve to empty sections when absent, which mustache treats
// as falsy, so only plain variable tags are required.
func missingVars(tmpl *mustache.Template, ctx Context) []string {
	var missing []string
	for _, tag := range tmpl.Tags() {
		if tag.Type() != mustache.Variable {
			continue
		}
		name := tag.Name()
		if name == "." {
			continue
		}
		if !hasPath(ctx, name) {
			missing = append(missing, name)
		}
	}
	return missing
}

func hasPath(ctx Context, name string) bool {
	cur := any(map[string]any(ctx))
	for _, part := range strings.Split(name, ".") {
		m, ok := cur.(map[string]any)
		if !ok {
			return false
		}
		cur, ok = m[part]
		if !ok {
			return false
		}
	}
	return true
}

// LoadContext reads a context mapping from a YAML or JSON file, selected by
// extension.
func LoadContext(path string) (Context, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	ctx := Context{}
	switch filepath.Ext(path) {
	case ".json":
		if err := json.Unmarshal(data, &ctx); err != nil {
			return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeParseError, Message: err.Error(), Cause: err}}
		}
	default:
		if err := yaml.Unmarshal(data, &ctx); err != nil {
			return nil, mcaddon.Issues{{Path: "/", Code: mcaddon.CodeParseError, Message: err.Error(), Cause: err}}
		}
	}
	return ctx, nil
}
