package mcaddon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

func TestEntity_AddComponentLastWriteWins(t *testing.T) {
	e := mcaddon.NewBlock(mcaddon.MustIdentifier("test:thing"))
	e.AddComponent(mcaddon.NewOpaque("minecraft:friction", 0.4))
	e.AddComponent(mcaddon.NewOpaque("minecraft:loot", "loot_tables/blocks/thing.json"))
	e.AddComponent(mcaddon.NewOpaque("minecraft:friction", 0.8))

	// position of the first insertion is kept, value is the last write
	assert.Equal(t, []string{"minecraft:friction", "minecraft:loot"}, e.ComponentNames())
	c, ok := e.Component("minecraft:friction")
	require.True(t, ok)
	assert.Equal(t, 0.8, c.(mcaddon.Opaque).Value)
}

func TestEntity_RemoveComponent(t *testing.T) {
	e := mcaddon.NewItem(mcaddon.MustIdentifier("test:wand"))
	e.AddComponent(mcaddon.NewOpaque("minecraft:glint", true))
	assert.True(t, e.RemoveComponent("minecraft:glint"))
	assert.False(t, e.RemoveComponent("minecraft:glint"))
	assert.Empty(t, e.Components())
}

func TestEntity_Events(t *testing.T) {
	e := mcaddon.NewBlock(mcaddon.MustIdentifier("test:lamp"))
	e.AddEvent("test:turn_on", mcaddon.NewOpaque("set_block", map[string]any{"block_type": "test:lamp_lit"}))
	e.AddEvent("test:turn_on", mcaddon.NewOpaque("run_command", map[string]any{"command": []any{"say on"}}))

	seq, ok := e.Event("test:turn_on")
	require.True(t, ok)
	require.Len(t, seq, 2)
	assert.Equal(t, "set_block", seq[0].ComponentName())
	assert.Equal(t, "run_command", seq[1].ComponentName())

	assert.Equal(t, []string{"test:turn_on"}, e.EventNames())
	assert.True(t, e.RemoveEvent("test:turn_on"))
	assert.Empty(t, e.EventNames())
}

func TestEntity_Properties(t *testing.T) {
	e, err := mcaddon.NewFeature("ore_feature", mcaddon.MustIdentifier("test:ore"))
	require.NoError(t, err)
	e.SetProperty("count", 9)
	e.SetProperty("places_block", "test:ore_block")

	v, ok := e.Property("count")
	require.True(t, ok)
	assert.Equal(t, 9, v)
	assert.Equal(t, []string{"count", "places_block"}, e.PropertyNames())
	assert.True(t, e.RemoveProperty("count"))
	assert.Equal(t, []string{"places_block"}, e.PropertyNames())
}

func TestNewFeature_UnknownSubType(t *testing.T) {
	_, err := mcaddon.NewFeature("bogus_feature", mcaddon.MustIdentifier("test:x"))
	require.Error(t, err)
	_, err = mcaddon.NewRecipe("bogus", mcaddon.MustIdentifier("test:x"))
	require.Error(t, err)
}

func TestEntity_Equal(t *testing.T) {
	mk := func() *mcaddon.Entity {
		e := mcaddon.NewBlock(mcaddon.MustIdentifier("test:thing")).
			WithVersion(mcaddon.MustVersion("1.20.51"))
		e.AddComponent(mcaddon.NewOpaque("minecraft:friction", 0.4))
		e.AddEvent("test:evt", mcaddon.NewOpaque("decrement_stack", map[string]any{}))
		e.SetDescriptionField("menu_category", map[string]any{"category": "nature"})
		return e
	}
	a, b := mk(), mk()
	assert.True(t, a.Equal(b))

	b.AddComponent(mcaddon.NewOpaque("minecraft:friction", 0.5))
	assert.False(t, a.Equal(b))

	c := mk()
	c.Version = mcaddon.MustVersion("1.20.50")
	assert.False(t, a.Equal(c))

	d := mcaddon.NewItem(mcaddon.MustIdentifier("test:thing")).
		WithVersion(mcaddon.MustVersion("1.20.51"))
	assert.False(t, a.Equal(d))
}
