package builtin

import (
	"github.com/blockforge/mcaddon"
)

// RecipeResult is the output stack of a crafting recipe.
type RecipeResult struct {
	Item  string `json:"item"`
	Count int    `json:"count,omitempty"`
	Data  int    `json:"data,omitempty"`
}

// ShapedRecipe builds a grid recipe: pattern rows index into key, which maps
// each pattern rune to an ingredient item.
func ShapedRecipe(id mcaddon.Identifier, tags, pattern []string, key map[string]any, result RecipeResult) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeShapedRecipe, id)
	e.SetProperty("tags", tags)
	e.SetProperty("pattern", pattern)
	e.SetProperty("key", key)
	e.SetProperty("result", result)
	return e
}

// ShapelessRecipe builds an order-free recipe from a flat ingredient list.
func ShapelessRecipe(id mcaddon.Identifier, tags []string, ingredients []any, result RecipeResult) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeShapelessRecipe, id)
	e.SetProperty("tags", tags)
	e.SetProperty("ingredients", ingredients)
	e.SetProperty("result", result)
	return e
}

// FurnaceRecipe maps one input to one output on the tagged heat sources.
func FurnaceRecipe(id mcaddon.Identifier, tags []string, input, output string) *mcaddon.Entity {
	e := mcaddon.NewEntity(mcaddon.TypeFurnaceRecipe, id)
	e.SetProperty("tags", tags)
	e.SetProperty("input", input)
	e.SetProperty("output", output)
	return e
}
