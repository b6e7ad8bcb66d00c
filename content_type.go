package mcaddon

import "fmt"

// ContentType describes one category of definition: its schema tag, the wire
// key its payload nests under, and how the payload is shaped.
type ContentType struct {
	// Name is the schema registry tag, e.g. "block" or "feature/ore_feature".
	Name string
	// Key is the top-level JSON key, e.g. "minecraft:block".
	Key string
	// Scope selects which codec namespace applies to this type's components.
	Scope Scope
	// Nested marks payloads that hold components under a "components"
	// sub-object and events under "events" (blocks, items, volumes). Flat
	// payloads (features, recipes, cameras) carry their fields directly.
	Nested bool
	// ArrayWire marks payloads serialized as a single-element array
	// (geometry). The element is the object the entity maps to.
	ArrayWire bool
}

// contentTypes indexes the known content types by wire key. It is populated
// once at package init and read-only afterwards, the same initialization
// contract the codec registry follows.
var contentTypes = map[string]*ContentType{}

// RegisterContentType adds a content type. Registering a duplicate wire key
// is a programming error.
func RegisterContentType(ct *ContentType) error {
	if ct == nil || ct.Key == "" || ct.Name == "" {
		return singleIssue(CodeUnknownContentType, "content type with empty key or name")
	}
	if _, dup := contentTypes[ct.Key]; dup {
		return singleIssue(CodeUnknownContentType,
			fmt.Sprintf("content type %q already registered", ct.Key))
	}
	contentTypes[ct.Key] = ct
	return nil
}

func mustContentType(ct *ContentType) *ContentType {
	if err := RegisterContentType(ct); err != nil {
		panic(err)
	}
	return ct
}

// ContentTypeByKey resolves a wire key such as "minecraft:ore_feature".
func ContentTypeByKey(key string) (*ContentType, bool) {
	ct, ok := contentTypes[key]
	return ct, ok
}

// ContentTypeByName resolves a schema tag such as "feature/ore_feature".
func ContentTypeByName(name string) (*ContentType, bool) {
	for _, ct := range contentTypes {
		if ct.Name == name {
			return ct, true
		}
	}
	return nil, false
}

// ContentTypeKeys returns every registered wire key, unordered.
func ContentTypeKeys() []string {
	out := make([]string, 0, len(contentTypes))
	for k := range contentTypes {
		out = append(out, k)
	}
	return out
}

// Built-in content types, mirroring the format's compatibility table.
var (
	TypeBlock  = mustContentType(&ContentType{Name: "block", Key: "minecraft:block", Scope: ScopeBlock, Nested: true})
	TypeItem   = mustContentType(&ContentType{Name: "item", Key: "minecraft:item", Scope: ScopeItem, Nested: true})
	TypeVolume = mustContentType(&ContentType{Name: "volume", Key: "minecraft:volume", Scope: ScopeVolume, Nested: true})
	TypeCamera = mustContentType(&ContentType{Name: "camera", Key: "minecraft:camera_preset"})

	TypeFeatureRules = mustContentType(&ContentType{Name: "feature_rule", Key: "minecraft:feature_rules"})
	TypeGeometry     = mustContentType(&ContentType{Name: "geometry", Key: "minecraft:geometry", ArrayWire: true})

	TypeOreFeature         = mustContentType(&ContentType{Name: "feature/ore_feature", Key: "minecraft:ore_feature"})
	TypeSingleBlockFeature = mustContentType(&ContentType{Name: "feature/single_block_feature", Key: "minecraft:single_block_feature"})
	TypeScatterFeature     = mustContentType(&ContentType{Name: "feature/scatter_feature", Key: "minecraft:scatter_feature"})
	TypeAggregateFeature   = mustContentType(&ContentType{Name: "feature/aggregate_feature", Key: "minecraft:aggregate_feature"})
	TypeSequenceFeature    = mustContentType(&ContentType{Name: "feature/sequence_feature", Key: "minecraft:sequence_feature"})

	TypeShapedRecipe    = mustContentType(&ContentType{Name: "recipe/shaped", Key: "minecraft:recipe_shaped"})
	TypeShapelessRecipe = mustContentType(&ContentType{Name: "recipe/shapeless", Key: "minecraft:recipe_shapeless"})
	TypeFurnaceRecipe   = mustContentType(&ContentType{Name: "recipe/furnace", Key: "minecraft:recipe_furnace"})
)
