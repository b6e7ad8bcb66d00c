package mcaddon_test

import (
	"testing"

	json "github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

func TestOrdered_InsertionOrder(t *testing.T) {
	o := mcaddon.NewOrdered[int]()
	o.Set("c", 3)
	o.Set("a", 1)
	o.Set("b", 2)
	assert.Equal(t, []string{"c", "a", "b"}, o.Keys())

	// replacing keeps the original position, last write wins on value
	o.Set("c", 30)
	assert.Equal(t, []string{"c", "a", "b"}, o.Keys())
	v, ok := o.Get("c")
	require.True(t, ok)
	assert.Equal(t, 30, v)

	assert.True(t, o.Delete("a"))
	assert.False(t, o.Delete("a"))
	assert.Equal(t, []string{"c", "b"}, o.Keys())
}

func TestOrdered_MarshalKeepsOrder(t *testing.T) {
	o := mcaddon.NewOrdered[any]()
	o.Set("zeta", 1)
	o.Set("alpha", "two")
	o.Set("mid", []any{3})
	data, err := json.Marshal(o)
	require.NoError(t, err)
	assert.Equal(t, `{"zeta":1,"alpha":"two","mid":[3]}`, string(data))
}

func TestOrdered_UnmarshalCapturesOrder(t *testing.T) {
	var o mcaddon.Ordered[any]
	require.NoError(t, json.Unmarshal([]byte(`{"z":1,"a":{"nested":true},"m":2}`), &o))
	assert.Equal(t, []string{"z", "a", "m"}, o.Keys())

	require.Error(t, json.Unmarshal([]byte(`[1,2]`), &o))
}
