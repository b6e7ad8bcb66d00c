package mcaddon

import (
	"fmt"
)

// Component is a named, independently serializable behavior/config fragment
// attached to an entity, such as a block's friction or an item's fuel value.
type Component interface {
	// ComponentName is the wire key the component serializes under, usually
	// namespaced ("minecraft:friction", "ns:custom").
	ComponentName() string
}

// Codec converts one component kind to and from its JSON value. Every field a
// codec includes or excludes is an explicit decision; there is no reflective
// fallback dump.
type Codec interface {
	Name() string
	Encode(c Component) (any, error)
	Decode(v any) (Component, error)
}

// Scope partitions codec names by the content-type group they apply to, so
// "minecraft:damage" can mean different things on items and in event actions.
type Scope string

const (
	ScopeBlock  Scope = "block"
	ScopeItem   Scope = "item"
	ScopeVolume Scope = "volume"
	// ScopeAction covers event responses (add_mob_effect, run_command, ...).
	ScopeAction Scope = "action"
)

// Registry maps component names to codecs per scope. It is process-wide,
// read-mostly state: registration must finish before any document is
// serialized or deserialized. That ordering is an initialization contract,
// not a runtime lock; concurrent reads after start-up are safe.
type Registry struct {
	scopes map[Scope]map[string]Codec
}

// NewRegistry returns an empty codec registry.
func NewRegistry() *Registry {
	return &Registry{scopes: map[Scope]map[string]Codec{}}
}

// Register associates a codec with its name inside scope. Registering the
// same name twice in one scope is a programming error and fails loudly,
// unlike component insertion on an entity which is last-write-wins.
func (r *Registry) Register(scope Scope, c Codec) error {
	if c == nil || c.Name() == "" {
		return singleIssue(CodeComponentCodec, "codec with empty name")
	}
	byName := r.scopes[scope]
	if byName == nil {
		byName = map[string]Codec{}
		r.scopes[scope] = byName
	}
	if _, dup := byName[c.Name()]; dup {
		return singleIssue(CodeComponentCodec,
			fmt.Sprintf("codec %q already registered in scope %q", c.Name(), scope))
	}
	byName[c.Name()] = c
	return nil
}

// MustRegister is Register for start-up tables; it panics on duplicates.
func (r *Registry) MustRegister(scope Scope, c Codec) {
	if err := r.Register(scope, c); err != nil {
		panic(err)
	}
}

// Lookup returns the codec for name in scope. A missing codec is NOT an
// error: callers fall back to opaque passthrough so unrecognized components
// never lose data.
func (r *Registry) Lookup(scope Scope, name string) (Codec, bool) {
	byName := r.scopes[scope]
	if byName == nil {
		return nil, false
	}
	c, ok := byName[name]
	return c, ok
}

// Names returns the registered component names for scope, unordered.
func (r *Registry) Names(scope Scope) []string {
	byName := r.scopes[scope]
	out := make([]string, 0, len(byName))
	for n := range byName {
		out = append(out, n)
	}
	return out
}

// decodeComponent maps one wire key/value pair through the registry,
// degrading to Opaque for unknown names.
func (r *Registry) decodeComponent(scope Scope, name string, v any) (Component, error) {
	if c, ok := r.Lookup(scope, name); ok {
		return c.Decode(v)
	}
	return Opaque{name: name, Value: v}, nil
}

// encodeComponent is the inverse of decodeComponent. Opaque components are
// re-emitted exactly as captured.
func (r *Registry) encodeComponent(scope Scope, c Component) (any, error) {
	if op, ok := c.(Opaque); ok {
		return op.Value, nil
	}
	codec, ok := r.Lookup(scope, c.ComponentName())
	if !ok {
		return nil, singleIssue(CodeComponentCodec,
			fmt.Sprintf("no codec for component %q in scope %q", c.ComponentName(), scope))
	}
	return codec.Encode(c)
}

// Opaque preserves an unrecognized component verbatim. Loading a document
// that uses a newer or custom component keeps its raw JSON value so a
// re-save reproduces it unchanged.
type Opaque struct {
	name string
	// Value is the raw decoded JSON value as captured from the wire.
	Value any
}

// NewOpaque wraps a raw JSON value under a component name.
func NewOpaque(name string, v any) Opaque { return Opaque{name: name, Value: v} }

// ComponentName implements Component.
func (o Opaque) ComponentName() string { return o.name }
