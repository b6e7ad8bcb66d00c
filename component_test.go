package mcaddon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

type fakeCodec struct{ name string }

func (f fakeCodec) Name() string { return f.name }

func (f fakeCodec) Encode(c mcaddon.Component) (any, error) { return map[string]any{}, nil }

func (f fakeCodec) Decode(v any) (mcaddon.Component, error) {
	return mcaddon.NewOpaque(f.name, v), nil
}

func TestRegistry_RegisterAndLookup(t *testing.T) {
	reg := mcaddon.NewRegistry()
	require.NoError(t, reg.Register(mcaddon.ScopeBlock, fakeCodec{name: "test:c"}))

	c, ok := reg.Lookup(mcaddon.ScopeBlock, "test:c")
	require.True(t, ok)
	assert.Equal(t, "test:c", c.Name())

	// same name in a different scope is fine
	require.NoError(t, reg.Register(mcaddon.ScopeItem, fakeCodec{name: "test:c"}))

	_, ok = reg.Lookup(mcaddon.ScopeVolume, "test:c")
	assert.False(t, ok)
}

func TestRegistry_DuplicateNameFails(t *testing.T) {
	reg := mcaddon.NewRegistry()
	require.NoError(t, reg.Register(mcaddon.ScopeItem, fakeCodec{name: "test:dup"}))
	err := reg.Register(mcaddon.ScopeItem, fakeCodec{name: "test:dup"})
	require.Error(t, err)
	assert.True(t, mcaddon.IsComponentError(err))
}

func TestRegistry_EmptyNameFails(t *testing.T) {
	reg := mcaddon.NewRegistry()
	assert.Error(t, reg.Register(mcaddon.ScopeBlock, fakeCodec{}))
	assert.Error(t, reg.Register(mcaddon.ScopeBlock, nil))
}

func TestOpaque_PreservesValue(t *testing.T) {
	v := map[string]any{"nested": []any{1.0, "x"}}
	op := mcaddon.NewOpaque("custom:thing", v)
	assert.Equal(t, "custom:thing", op.ComponentName())
	assert.Equal(t, v, op.Value)
}
