package mcaddon

import (
	"fmt"
	"os"
	"strings"

	json "github.com/goccy/go-json"
)

// SchemaSource resolves and validates format-version-specific schemas. The
// schema subpackage provides the bundled implementation; the engine only
// depends on this boundary.
type SchemaSource interface {
	// Versions enumerates the known versions for a content type, ascending.
	Versions(contentType string) []FormatVersion
	// Resolve picks the schema version for a requested version: exact match,
	// otherwise the greatest known version at or below it. A zero requested
	// version resolves to the newest. Requests below the floor fail.
	Resolve(contentType string, requested FormatVersion) (FormatVersion, error)
	// Validate runs the resolved JSON Schema over a raw document, reporting
	// every violation found.
	Validate(contentType string, version FormatVersion, doc []byte) error
	// Properties lists the top-level payload field names the schema declares
	// for (contentType, version).
	Properties(contentType string, version FormatVersion) ([]string, error)
}

// PreprocessFunc expands logic-less template directives in raw text before
// JSON parsing. The template subpackage provides the mustache-backed
// implementation.
type PreprocessFunc func(text string, ctx map[string]any) (string, error)

// WriteFunc is the packaging collaborator boundary: the engine hands a
// finished document plus a relative path to it and never manages archive
// layout itself.
type WriteFunc func(path string, data []byte) error

// UnknownPolicy controls how schema-unknown payload fields are handled on
// load. The format evolves ahead of any tool release, so passthrough is the
// default: unrecognized is not invalid.
type UnknownPolicy int

const (
	UnknownPassthrough UnknownPolicy = iota // Preserve unknown fields as properties.
	UnknownStrip                            // Drop unknown fields.
	UnknownStrict                           // Reject unknown fields with an error.
)

// Options bundles per-call knobs for Marshal/Unmarshal.
type Options struct {
	// Context feeds template expansion; nil skips the preprocessor.
	Context map[string]any
	// Unknown selects the unknown-field policy; passthrough by default.
	Unknown UnknownPolicy
	// OnDuplicateKey escalates duplicate JSON keys on load. Ignore (the
	// default) keeps JSON last-write-wins semantics; Warn routes findings to
	// the Warn sink without failing the load.
	OnDuplicateKey Severity
	// Warn receives non-fatal findings under warn-level severities. Nil
	// discards them.
	Warn func(Issue)
	// Indent is the marshal indentation; two spaces when empty, matching the
	// files the engine ships with.
	Indent string
}

func (o Options) indent() string {
	if o.Indent == "" {
		return "  "
	}
	return o.Indent
}

// Pipeline wires the component registry, schema source and optional template
// preprocessor into one load/save engine. Construct it once after all codec
// registration is done.
type Pipeline struct {
	Components *Registry
	Schemas    SchemaSource
	Preprocess PreprocessFunc
}

// NewPipeline builds a pipeline over the given registries.
func NewPipeline(components *Registry, schemas SchemaSource) *Pipeline {
	return &Pipeline{Components: components, Schemas: schemas}
}

// WithPreprocessor attaches a template preprocessor and returns the pipeline.
func (p *Pipeline) WithPreprocessor(fn PreprocessFunc) *Pipeline {
	p.Preprocess = fn
	return p
}

// ---- serialize ----

// Marshal renders the entity as a version-shaped JSON document and validates
// it against the resolved schema before returning it. The document is pure
// output; no I/O happens here.
func (p *Pipeline) Marshal(e *Entity, opts ...Options) ([]byte, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if e == nil || e.Type == nil {
		return nil, singleIssue(CodeInvalidDocument, "entity without a content type")
	}
	resolved, err := p.Schemas.Resolve(e.Type.Name, e.Version)
	if err != nil {
		return nil, err
	}
	declared := e.Version
	if declared.IsZero() {
		declared = resolved
	}

	payload, err := p.encodePayload(e)
	if err != nil {
		return nil, err
	}

	doc := NewOrdered[any]()
	doc.Set("format_version", declared.WireValue())
	if e.Type.ArrayWire {
		doc.Set(e.Type.Key, []any{payload})
	} else {
		doc.Set(e.Type.Key, payload)
	}

	data, err := json.MarshalIndent(doc, "", opt.indent())
	if err != nil {
		return nil, singleIssue(CodeInvalidDocument, err.Error())
	}
	if err := p.Schemas.Validate(e.Type.Name, resolved, data); err != nil {
		return nil, err
	}
	return data, nil
}

// MarshalAll renders several entities into one document. Only array-wire
// content types hold more than one entity per file, and all entities must
// share content type and version; a single-entity slice behaves like Marshal.
func (p *Pipeline) MarshalAll(es []*Entity, opts ...Options) ([]byte, error) {
	if len(es) == 0 {
		return nil, singleIssue(CodeInvalidDocument, "no entities to serialize")
	}
	if len(es) == 1 {
		return p.Marshal(es[0], opts...)
	}
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	first := es[0]
	if first == nil || first.Type == nil {
		return nil, singleIssue(CodeInvalidDocument, "entity without a content type")
	}
	if !first.Type.ArrayWire {
		return nil, singleIssue(CodeInvalidDocument,
			fmt.Sprintf("content type %q holds one entity per document", first.Type.Name))
	}
	for _, e := range es[1:] {
		if e == nil || e.Type == nil || e.Type.Key != first.Type.Key {
			return nil, singleIssue(CodeInvalidDocument, "entities in one document must share a content type")
		}
		if !e.Version.Equal(first.Version) {
			return nil, singleIssue(CodeInvalidDocument, "entities in one document must share a format version")
		}
	}

	resolved, err := p.Schemas.Resolve(first.Type.Name, first.Version)
	if err != nil {
		return nil, err
	}
	declared := first.Version
	if declared.IsZero() {
		declared = resolved
	}

	payloads := make([]any, 0, len(es))
	for _, e := range es {
		payload, err := p.encodePayload(e)
		if err != nil {
			return nil, err
		}
		payloads = append(payloads, payload)
	}

	doc := NewOrdered[any]()
	doc.Set("format_version", declared.WireValue())
	doc.Set(first.Type.Key, payloads)

	data, err := json.MarshalIndent(doc, "", opt.indent())
	if err != nil {
		return nil, singleIssue(CodeInvalidDocument, err.Error())
	}
	if err := p.Schemas.Validate(first.Type.Name, resolved, data); err != nil {
		return nil, err
	}
	return data, nil
}

func (p *Pipeline) encodePayload(e *Entity) (*Ordered[any], error) {
	payload := NewOrdered[any]()

	desc := NewOrdered[any]()
	if !e.ID.IsZero() || e.idRaw != "" {
		id := e.idRaw
		if id == "" {
			id = e.ID.String()
		}
		desc.Set("identifier", id)
	}
	e.description.Range(func(k string, v any) bool {
		desc.Set(k, v)
		return true
	})
	if desc.Len() > 0 {
		payload.Set("description", desc)
	}

	if e.Type.Nested {
		if e.components.Len() > 0 {
			comps := NewOrdered[any]()
			var encErr error
			e.components.Range(func(name string, c Component) bool {
				v, err := p.Components.encodeComponent(e.Type.Scope, c)
				if err != nil {
					encErr = prefixIssues(err, "/"+e.Type.Key+"/components/"+name)
					return false
				}
				comps.Set(name, v)
				return true
			})
			if encErr != nil {
				return nil, encErr
			}
			payload.Set("components", comps)
		}
		if e.events.Len() > 0 {
			events := NewOrdered[any]()
			var encErr error
			e.events.Range(func(name string, seq []Component) bool {
				ev := NewOrdered[any]()
				for _, action := range seq {
					v, err := p.Components.encodeComponent(ScopeAction, action)
					if err != nil {
						encErr = prefixIssues(err, "/"+e.Type.Key+"/events/"+name)
						return false
					}
					ev.Set(action.ComponentName(), v)
				}
				events.Set(name, ev)
				return true
			})
			if encErr != nil {
				return nil, encErr
			}
			payload.Set("events", events)
		}
	} else {
		// Flat payloads carry component values directly among their fields.
		var encErr error
		e.components.Range(func(name string, c Component) bool {
			v, err := p.Components.encodeComponent(e.Type.Scope, c)
			if err != nil {
				encErr = prefixIssues(err, "/"+e.Type.Key+"/"+name)
				return false
			}
			payload.Set(name, v)
			return true
		})
		if encErr != nil {
			return nil, encErr
		}
	}

	e.properties.Range(func(k string, v any) bool {
		payload.Set(k, v)
		return true
	})
	return payload, nil
}

// ---- deserialize ----

// Unmarshal parses a raw document back into its single entity. Array-wire
// documents holding several models do not fit one entity; UnmarshalAll maps
// those.
func (p *Pipeline) Unmarshal(data []byte, opts ...Options) (*Entity, error) {
	es, err := p.UnmarshalAll(data, opts...)
	if err != nil {
		return nil, err
	}
	if len(es) != 1 {
		return nil, issueAt("/"+es[0].Type.Key, CodeInvalidDocument,
			fmt.Sprintf("document holds %d models; UnmarshalAll maps them all", len(es)))
	}
	return es[0], nil
}

// UnmarshalAll parses a raw document into every entity it holds: template
// expansion, duplicate-key scan, version resolution, schema validation, then
// mapping. Validation runs before mapping so an invalid document never
// produces a partially-typed entity. Object payloads yield exactly one
// entity; array-wire payloads (geometry) yield one per model.
func (p *Pipeline) UnmarshalAll(data []byte, opts ...Options) ([]*Entity, error) {
	var opt Options
	if len(opts) > 0 {
		opt = opts[len(opts)-1]
	}
	if opt.Context != nil && p.Preprocess != nil {
		expanded, err := p.Preprocess(string(data), opt.Context)
		if err != nil {
			return nil, err
		}
		data = []byte(expanded)
	}
	if opt.OnDuplicateKey != Ignore {
		iss, err := DetectDuplicateKeys(data, 0)
		if err != nil {
			return nil, err
		}
		if len(iss) > 0 {
			if opt.OnDuplicateKey == Error {
				return nil, iss
			}
			if opt.Warn != nil {
				for _, it := range iss {
					opt.Warn(it)
				}
			}
		}
	}

	var doc Ordered[json.RawMessage]
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}

	fvRaw, ok := doc.Get("format_version")
	if !ok {
		return nil, singleIssue(CodeInvalidDocument, "missing format_version")
	}
	var fvVal any
	if err := json.Unmarshal(fvRaw, &fvVal); err != nil {
		return nil, singleIssue(CodeParseError, err.Error())
	}
	declared, err := ParseVersionValue(fvVal)
	if err != nil {
		return nil, err
	}

	ct, payloadRaw, err := findContentKey(&doc)
	if err != nil {
		return nil, err
	}
	resolved, err := p.Schemas.Resolve(ct.Name, declared)
	if err != nil {
		return nil, err
	}
	if err := p.Schemas.Validate(ct.Name, resolved, data); err != nil {
		return nil, err
	}

	if ct.ArrayWire {
		var elems []json.RawMessage
		if err := json.Unmarshal(payloadRaw, &elems); err != nil {
			return nil, issueAt("/"+ct.Key, CodeInvalidDocument, "expected array payload")
		}
		if len(elems) == 0 {
			return nil, issueAt("/"+ct.Key, CodeInvalidDocument, "empty payload array")
		}
		out := make([]*Entity, 0, len(elems))
		for _, elem := range elems {
			e, err := p.decodePayload(ct, elem, resolved, opt)
			if err != nil {
				return nil, err
			}
			e.Version = declared
			out = append(out, e)
		}
		return out, nil
	}

	e, err := p.decodePayload(ct, payloadRaw, resolved, opt)
	if err != nil {
		return nil, err
	}
	e.Version = declared
	return []*Entity{e}, nil
}

func findContentKey(doc *Ordered[json.RawMessage]) (*ContentType, json.RawMessage, error) {
	var found *ContentType
	var payload json.RawMessage
	for _, k := range doc.Keys() {
		ct, ok := ContentTypeByKey(k)
		if !ok {
			continue
		}
		if found != nil {
			return nil, nil, singleIssue(CodeInvalidDocument,
				fmt.Sprintf("ambiguous document: both %q and %q present", found.Key, ct.Key))
		}
		found = ct
		payload, _ = doc.Get(k)
	}
	if found == nil {
		return nil, nil, singleIssue(CodeUnknownContentType, "no recognized content-type key in document")
	}
	return found, payload, nil
}

func (p *Pipeline) decodePayload(ct *ContentType, raw json.RawMessage, version FormatVersion, opt Options) (*Entity, error) {
	var payload Ordered[json.RawMessage]
	if err := json.Unmarshal(raw, &payload); err != nil {
		return nil, issueAt("/"+ct.Key, CodeInvalidDocument, "payload is not an object")
	}

	e := NewEntity(ct, Identifier{})
	var known []string
	if p.Schemas != nil {
		known, _ = p.Schemas.Properties(ct.Name, version)
	}

	for _, key := range payload.Keys() {
		valRaw, _ := payload.Get(key)
		switch {
		case key == "description":
			if err := decodeDescription(e, ct, valRaw); err != nil {
				return nil, err
			}
		case ct.Nested && key == "components":
			var comps Ordered[json.RawMessage]
			if err := json.Unmarshal(valRaw, &comps); err != nil {
				return nil, issueAt("/"+ct.Key+"/components", CodeInvalidDocument, "components is not an object")
			}
			for _, name := range comps.Keys() {
				cRaw, _ := comps.Get(name)
				var v any
				if err := json.Unmarshal(cRaw, &v); err != nil {
					return nil, singleIssue(CodeParseError, err.Error())
				}
				c, err := p.Components.decodeComponent(ct.Scope, name, v)
				if err != nil {
					return nil, prefixIssues(err, "/"+ct.Key+"/components/"+name)
				}
				e.AddComponent(c)
			}
		case ct.Nested && key == "events":
			if err := p.decodeEvents(e, ct, valRaw); err != nil {
				return nil, err
			}
		default:
			var v any
			if err := json.Unmarshal(valRaw, &v); err != nil {
				return nil, singleIssue(CodeParseError, err.Error())
			}
			if !ct.Nested {
				// Flat payload fields may be typed components.
				if codec, ok := p.Components.Lookup(ct.Scope, key); ok {
					c, err := codec.Decode(v)
					if err != nil {
						return nil, prefixIssues(err, "/"+ct.Key+"/"+key)
					}
					e.AddComponent(c)
					continue
				}
			}
			switch opt.Unknown {
			case UnknownStrict:
				if !contains(known, key) {
					return nil, issueAt("/"+ct.Key+"/"+key, CodeInvalidDocument,
						fmt.Sprintf("unknown field %q", key))
				}
				e.SetProperty(key, v)
			case UnknownStrip:
				if contains(known, key) {
					e.SetProperty(key, v)
				}
			default:
				e.SetProperty(key, v)
			}
		}
	}
	return e, nil
}

func decodeDescription(e *Entity, ct *ContentType, raw json.RawMessage) error {
	var desc Ordered[any]
	if err := json.Unmarshal(raw, &desc); err != nil {
		return issueAt("/"+ct.Key+"/description", CodeInvalidDocument, "description is not an object")
	}
	for _, k := range desc.Keys() {
		v, _ := desc.Get(k)
		if k == "identifier" {
			s, ok := v.(string)
			if !ok {
				return issueAt("/"+ct.Key+"/description/identifier", CodeInvalidIdentifier, "identifier must be a string")
			}
			id, err := IdentifierOf(s, DefaultNamespace)
			if err != nil {
				return prefixIssues(err, "/"+ct.Key+"/description/identifier")
			}
			e.ID = id
			if !strings.Contains(s, ":") {
				e.idRaw = s
			}
			continue
		}
		e.SetDescriptionField(k, v)
	}
	return nil
}

func (p *Pipeline) decodeEvents(e *Entity, ct *ContentType, raw json.RawMessage) error {
	var events Ordered[json.RawMessage]
	if err := json.Unmarshal(raw, &events); err != nil {
		return issueAt("/"+ct.Key+"/events", CodeInvalidDocument, "events is not an object")
	}
	for _, name := range events.Keys() {
		evRaw, _ := events.Get(name)
		var actions Ordered[any]
		if err := json.Unmarshal(evRaw, &actions); err != nil {
			return issueAt("/"+ct.Key+"/events/"+name, CodeInvalidDocument, "event is not an object")
		}
		for _, actionName := range actions.Keys() {
			v, _ := actions.Get(actionName)
			action, err := p.Components.decodeComponent(ScopeAction, actionName, v)
			if err != nil {
				return prefixIssues(err, "/"+ct.Key+"/events/"+name+"/"+actionName)
			}
			e.AddEvent(name, action)
		}
	}
	return nil
}

// ---- file boundary ----

// Load reads and deserializes one document from disk.
func (p *Pipeline) Load(path string, opts ...Options) (*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, singleIssue(CodeInvalidDocument, err.Error())
	}
	return p.Unmarshal(data, opts...)
}

// LoadAll reads a document from disk and deserializes every entity it holds.
func (p *Pipeline) LoadAll(path string, opts ...Options) ([]*Entity, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, singleIssue(CodeInvalidDocument, err.Error())
	}
	return p.UnmarshalAll(data, opts...)
}

// Save serializes the entity and writes it to path. A failing save aborts
// that document only; nothing partial is written.
func (p *Pipeline) Save(e *Entity, path string, opts ...Options) error {
	return p.SaveTo(e, path, func(pth string, data []byte) error {
		return os.WriteFile(pth, data, 0o644)
	}, opts...)
}

// SaveTo serializes the entity and hands the bytes to the packaging
// collaborator through a write(path, bytes)-shaped function.
func (p *Pipeline) SaveTo(e *Entity, path string, write WriteFunc, opts ...Options) error {
	data, err := p.Marshal(e, opts...)
	if err != nil {
		return err
	}
	return write(path, data)
}

// ---- helpers ----

func prefixIssues(err error, prefix string) error {
	iss, ok := AsIssues(err)
	if !ok {
		return err
	}
	out := make(Issues, len(iss))
	for i, it := range iss {
		if it.Path == "/" || it.Path == "" {
			it.Path = prefix
		} else {
			it.Path = prefix + it.Path
		}
		out[i] = it
	}
	return out
}

func contains(xs []string, s string) bool {
	for _, x := range xs {
		if x == s {
			return true
		}
	}
	return false
}
