package mcaddon

import (
	"reflect"
)

// Entity is the typed aggregate for one content definition: a block, item,
// feature, recipe and so on. It owns its components and events exclusively;
// nothing is shared between entities, so independent documents may be loaded
// in parallel as long as each gets its own instance.
type Entity struct {
	Type *ContentType
	ID   Identifier
	// Version is the declared format version. It may stay zero while
	// authoring; serialization resolves a schema for it (or the newest known
	// version when unset).
	Version FormatVersion

	// idRaw preserves a non-canonical wire identifier (geometry files use
	// bare names like "geometry.pig") so re-saving is byte-faithful.
	idRaw string

	components  *Ordered[Component]
	events      *Ordered[[]Component]
	properties  *Ordered[any]
	description *Ordered[any]
}

// NewEntity constructs an empty entity of the given content type. Every
// entity gets freshly built containers; none are shared defaults.
func NewEntity(ct *ContentType, id Identifier) *Entity {
	return &Entity{
		Type:        ct,
		ID:          id,
		components:  NewOrdered[Component](),
		events:      NewOrdered[[]Component](),
		properties:  NewOrdered[any](),
		description: NewOrdered[any](),
	}
}

// Typed constructors for the built-in content types.

func NewBlock(id Identifier) *Entity        { return NewEntity(TypeBlock, id) }
func NewItem(id Identifier) *Entity         { return NewEntity(TypeItem, id) }
func NewVolume(id Identifier) *Entity       { return NewEntity(TypeVolume, id) }
func NewCameraPreset(id Identifier) *Entity { return NewEntity(TypeCamera, id) }
func NewFeatureRules(id Identifier) *Entity { return NewEntity(TypeFeatureRules, id) }
func NewGeometry(id Identifier) *Entity     { return NewEntity(TypeGeometry, id) }

// NewFeature builds a feature entity for the given sub-type tag, e.g.
// "ore_feature".
func NewFeature(sub string, id Identifier) (*Entity, error) {
	ct, ok := ContentTypeByName("feature/" + sub)
	if !ok {
		return nil, singleIssue(CodeUnknownContentType, "unknown feature sub-type "+sub)
	}
	return NewEntity(ct, id), nil
}

// NewRecipe builds a recipe entity for the given sub-type tag, e.g. "shaped".
func NewRecipe(sub string, id Identifier) (*Entity, error) {
	ct, ok := ContentTypeByName("recipe/" + sub)
	if !ok {
		return nil, singleIssue(CodeUnknownContentType, "unknown recipe sub-type "+sub)
	}
	return NewEntity(ct, id), nil
}

// WithVersion sets the declared format version and returns the entity for
// chaining.
func (e *Entity) WithVersion(v FormatVersion) *Entity {
	e.Version = v
	return e
}

// ---- components ----

// AddComponent attaches a component. Adding a duplicate name replaces the
// previous component (last write wins) while keeping its position, mirroring
// how the engine treats repeated keys in the target JSON object.
func (e *Entity) AddComponent(c Component) {
	e.components.Set(c.ComponentName(), c)
}

// RemoveComponent detaches the named component, reporting whether it existed.
func (e *Entity) RemoveComponent(name string) bool {
	return e.components.Delete(name)
}

// Component returns the named component, if attached.
func (e *Entity) Component(name string) (Component, bool) {
	return e.components.Get(name)
}

// Components returns the attached components in declaration order.
func (e *Entity) Components() []Component {
	out := make([]Component, 0, e.components.Len())
	e.components.Range(func(_ string, c Component) bool {
		out = append(out, c)
		return true
	})
	return out
}

// ComponentNames returns component names in declaration order.
func (e *Entity) ComponentNames() []string { return e.components.Keys() }

// ---- events ----

// AddEvent appends actions to the named event's ordered sequence, creating
// the event on first use.
func (e *Entity) AddEvent(name string, actions ...Component) {
	seq, _ := e.events.Get(name)
	e.events.Set(name, append(seq, actions...))
}

// Event returns the ordered action sequence for name.
func (e *Entity) Event(name string) ([]Component, bool) {
	return e.events.Get(name)
}

// RemoveEvent drops the named event.
func (e *Entity) RemoveEvent(name string) bool { return e.events.Delete(name) }

// EventNames returns event names in declaration order.
func (e *Entity) EventNames() []string { return e.events.Keys() }

// ---- properties ----

// SetProperty records a free-form payload field the schema allows but no
// typed component models. Unknown fields encountered on load land here so
// they survive a round-trip.
func (e *Entity) SetProperty(name string, v any) {
	e.properties.Set(name, v)
}

// Property returns the named passthrough field.
func (e *Entity) Property(name string) (any, bool) { return e.properties.Get(name) }

// RemoveProperty drops a passthrough field.
func (e *Entity) RemoveProperty(name string) bool { return e.properties.Delete(name) }

// PropertyNames returns passthrough field names in declaration order.
func (e *Entity) PropertyNames() []string { return e.properties.Keys() }

// ---- description extras ----

// SetDescriptionField records a description field other than the identifier
// (menu_category, traits, placement conditions, ...). Preserved verbatim.
func (e *Entity) SetDescriptionField(name string, v any) {
	e.description.Set(name, v)
}

// DescriptionField returns a description field other than the identifier.
func (e *Entity) DescriptionField(name string) (any, bool) {
	return e.description.Get(name)
}

// DescriptionFieldNames returns extra description field names in order.
func (e *Entity) DescriptionFieldNames() []string { return e.description.Keys() }

// ---- equality ----

// Equal compares identifier, format version, component set, events and
// properties. It is the equality the round-trip law is stated under.
func (e *Entity) Equal(other *Entity) bool {
	if e == nil || other == nil {
		return e == other
	}
	if e.Type == nil || other.Type == nil || e.Type.Key != other.Type.Key {
		return false
	}
	if e.ID != other.ID || !e.Version.Equal(other.Version) {
		return false
	}
	return orderedEqual(e.components, other.components) &&
		orderedEqual(e.events, other.events) &&
		orderedEqual(e.properties, other.properties) &&
		orderedEqual(e.description, other.description)
}

func orderedEqual[V any](a, b *Ordered[V]) bool {
	if a.Len() != b.Len() {
		return false
	}
	eq := true
	a.Range(func(k string, av V) bool {
		bv, ok := b.Get(k)
		if !ok || !reflect.DeepEqual(av, bv) {
			eq = false
			return false
		}
		return true
	})
	return eq
}
