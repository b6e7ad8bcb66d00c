// Package schema loads and indexes the bundled JSON Schema documents per
// content type and format version, and drives draft-07 validation over raw
// documents. Schema files are externally authored data; the registry never
// mutates them.
package schema

import (
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"strings"
	"sync"

	json "github.com/goccy/go-json"
	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/xeipuuv/gojsonschema"

	"github.com/blockforge/mcaddon"
)

//go:embed data
var dataFS embed.FS

// compiledCacheSize bounds the compiled-schema cache. The full bundled set
// fits; the bound matters for registries built over larger external trees.
const compiledCacheSize = 64

type entry struct {
	version mcaddon.FormatVersion
	raw     []byte
}

// Registry indexes schema documents by (content type, version). It is loaded
// once at construction and immutable thereafter; concurrent reads are safe.
type Registry struct {
	entries  map[string][]entry // per content type, ascending by version
	compiled *lru.Cache[string, *gojsonschema.Schema]
}

var (
	defaultOnce sync.Once
	defaultReg  *Registry
)

// Default returns the registry over the bundled schema data.
func Default() *Registry {
	defaultOnce.Do(func() {
		r, err := New(dataFS, "data")
		if err != nil {
			panic(err) // bundled data is part of the build
		}
		defaultReg = r
	})
	return defaultReg
}

// New builds a registry from a schema file tree laid out as
// <root>/<content_type...>/<version>.json.
func New(fsys fs.FS, root string) (*Registry, error) {
	cache, err := lru.New[string, *gojsonschema.Schema](compiledCacheSize)
	if err != nil {
		return nil, err
	}
	r := &Registry{entries: map[string][]entry{}, compiled: cache}

	err = fs.WalkDir(fsys, root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !strings.HasSuffix(p, ".json") {
			return nil
		}
		rel := strings.TrimPrefix(strings.TrimPrefix(p, root), "/")
		dir, file := path.Split(rel)
		contentType := strings.Trim(dir, "/")
		version, perr := mcaddon.ParseVersion(strings.TrimSuffix(file, ".json"))
		if perr != nil {
			return fmt.Errorf("schema file %s: bad version: %w", p, perr)
		}
		raw, rerr := fs.ReadFile(fsys, p)
		if rerr != nil {
			return rerr
		}
		r.entries[contentType] = append(r.entries[contentType], entry{version: version, raw: raw})
		return nil
	})
	if err != nil {
		return nil, err
	}
	for ct := range r.entries {
		es := r.entries[ct]
		sort.Slice(es, func(i, j int) bool { return es[i].version.Less(es[j].version) })
	}
	return r, nil
}

// ContentTypes returns every indexed content type tag, sorted.
func (r *Registry) ContentTypes() []string {
	out := make([]string, 0, len(r.entries))
	for ct := range r.entries {
		out = append(out, ct)
	}
	sort.Strings(out)
	return out
}

// Versions enumerates the known versions for a content type, ascending.
func (r *Registry) Versions(contentType string) []mcaddon.FormatVersion {
	es := r.entries[contentType]
	out := make([]mcaddon.FormatVersion, 0, len(es))
	for _, e := range es {
		out = append(out, e.version)
	}
	return out
}

// Get returns the raw schema document for an exact (content type, version)
// pair.
func (r *Registry) Get(contentType string, version mcaddon.FormatVersion) ([]byte, error) {
	for _, e := range r.entries[contentType] {
		if e.version.Equal(version) {
			return e.raw, nil
		}
	}
	return nil, mcaddon.Issues{{
		Path:    "/format_version",
		Code:    mcaddon.CodeUnsupportedVersion,
		Message: fmt.Sprintf("no %s schema for version %s", contentType, version),
		Params:  map[string]any{"content_type": contentType, "requested": version.String()},
	}}
}

// Validate runs structural JSON-Schema validation over a raw document and
// collects every violation rather than stopping at the first.
func (r *Registry) Validate(contentType string, version mcaddon.FormatVersion, doc []byte) error {
	compiled, err := r.compile(contentType, version)
	if err != nil {
		return err
	}
	result, verr := compiled.Validate(gojsonschema.NewBytesLoader(doc))
	if verr != nil {
		return mcaddon.Issues{{Path: "/", Code: mcaddon.CodeParseError, Message: verr.Error(), Cause: verr}}
	}
	if result.Valid() {
		return nil
	}
	var iss mcaddon.Issues
	for _, re := range result.Errors() {
		iss = mcaddon.AppendIssues(iss, mcaddon.Issue{
			Path:    pointerFromField(re.Field()),
			Code:    mcaddon.CodeSchemaViolation,
			Message: re.Description(),
			Params:  map[string]any{"type": re.Type()},
		})
	}
	return iss
}

// Properties lists the top-level payload field names the schema declares for
// (contentType, version). Array payloads report their element's fields. This
// is the known-field set the strict and strip unknown policies compare
// against, so it must track the version actually resolved for the document.
func (r *Registry) Properties(contentType string, version mcaddon.FormatVersion) ([]string, error) {
	resolved, err := r.Resolve(contentType, version)
	if err != nil {
		return nil, err
	}
	raw, err := r.Get(contentType, resolved)
	if err != nil {
		return nil, err
	}
	var doc struct {
		Properties map[string]struct {
			Properties map[string]json.RawMessage `json:"properties"`
			Items      struct {
				Properties map[string]json.RawMessage `json:"properties"`
			} `json:"items"`
		} `json:"properties"`
	}
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, err
	}
	for key, payload := range doc.Properties {
		if !strings.Contains(key, ":") {
			continue // format_version and friends
		}
		props := payload.Properties
		if len(props) == 0 {
			props = payload.Items.Properties
		}
		names := make([]string, 0, len(props))
		for n := range props {
			names = append(names, n)
		}
		sort.Strings(names)
		return names, nil
	}
	return nil, nil
}

func (r *Registry) compile(contentType string, version mcaddon.FormatVersion) (*gojsonschema.Schema, error) {
	key := contentType + "@" + version.String()
	if c, ok := r.compiled.Get(key); ok {
		return c, nil
	}
	raw, err := r.Get(contentType, version)
	if err != nil {
		return nil, err
	}
	compiled, cerr := gojsonschema.NewSchema(gojsonschema.NewBytesLoader(raw))
	if cerr != nil {
		return nil, mcaddon.Issues{{
			Path:    "/",
			Code:    mcaddon.CodeParseError,
			Message: fmt.Sprintf("schema %s compile failed: %v", key, cerr),
			Cause:   cerr,
		}}
	}
	r.compiled.Add(key, compiled)
	return compiled, nil
}

// pointerFromField converts gojsonschema's dotted field paths into JSON
// Pointers: "minecraft:ore_feature.count" -> "/minecraft:ore_feature/count".
func pointerFromField(field string) string {
	if field == "" || field == "(root)" {
		return "/"
	}
	return "/" + strings.ReplaceAll(field, ".", "/")
}
