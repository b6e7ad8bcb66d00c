package builtin

import (
	"github.com/blockforge/mcaddon"
)

// Feature payloads are flat: their fields ride in the entity's property bag
// and serialize directly under the content-type key. The constructors below
// lay the fields down in the order the game's own examples use.

// OreFeature places count blocks of a given type in a scattered cluster.
func OreFeature(id mcaddon.Identifier, placesBlock string, count int) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeOreFeature, id)
	e.SetProperty("count", count)
	e.SetProperty("places_block", placesBlock)
	return e
}

// SingleBlockFeature places one block subject to placement rules.
func SingleBlockFeature(id mcaddon.Identifier, placesBlock string, enforcePlacement, enforceSurvivability bool) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeSingleBlockFeature, id)
	e.SetProperty("places_block", placesBlock)
	e.SetProperty("enforce_placement_rules", enforcePlacement)
	e.SetProperty("enforce_survivability_rules", enforceSurvivability)
	return e
}

// ScatterFeature scatters another feature around a position.
func ScatterFeature(id mcaddon.Identifier, placesFeature string, iterations int, x, y, z any) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeScatterFeature, id)
	e.SetProperty("places_feature", placesFeature)
	e.SetProperty("iterations", iterations)
	e.SetProperty("x", x)
	e.SetProperty("y", y)
	e.SetProperty("z", z)
	return e
}

// AggregateFeature runs child features at one position. earlyOut may be
// "none", "first_failure" or "first_success"; empty means engine default.
func AggregateFeature(id mcaddon.Identifier, features []string, earlyOut string) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeAggregateFeature, id)
	e.SetProperty("features", features)
	if earlyOut != "" {
		e.SetProperty("early_out", earlyOut)
	}
	return e
}

// SequenceFeature runs child features in order, each where the previous
// ended.
func SequenceFeature(id mcaddon.Identifier, features []string) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeSequenceFeature, id)
	e.SetProperty("features", features)
	return e
}

// FeatureRules binds a feature to biome conditions and a distribution.
func FeatureRules(id mcaddon.Identifier, placesFeature string) *mcaddon.Entity {
	e := mcaddon.NewFeatureRules(id)
	e.SetDescriptionField("places_feature", placesFeature)
	return e
}
