package schema_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
	"github.com/blockforge/mcaddon/schema"
)

func TestResolve_ExactMatch(t *testing.T) {
	r := schema.Default()
	v, err := r.Resolve("item", mcaddon.MustVersion("1.14"))
	require.NoError(t, err)
	assert.True(t, v.Equal(mcaddon.MustVersion("1.14")))
}

func TestResolve_RoundsDownNeverUp(t *testing.T) {
	r := schema.Default()

	// 1.15 sits between 1.14 and 1.16; the older schema wins
	v, err := r.Resolve("item", mcaddon.MustVersion("1.15"))
	require.NoError(t, err)
	assert.True(t, v.Equal(mcaddon.MustVersion("1.14")))

	// far beyond the newest known version still resolves to the newest
	v, err = r.Resolve("item", mcaddon.MustVersion("1.99.0"))
	require.NoError(t, err)
	assert.True(t, v.Equal(mcaddon.MustVersion("1.20.50")))
}

func TestResolve_ZeroPicksNewest(t *testing.T) {
	r := schema.Default()
	v, err := r.Resolve("feature/ore_feature", mcaddon.FormatVersion{})
	require.NoError(t, err)
	assert.True(t, v.Equal(mcaddon.MustVersion("1.16.100")))
}

func TestResolve_BelowFloorFails(t *testing.T) {
	r := schema.Default()
	_, err := r.Resolve("item", mcaddon.MustVersion("1.9"))
	require.Error(t, err)
	assert.True(t, mcaddon.IsUnsupportedVersion(err))

	iss, ok := mcaddon.AsIssues(err)
	require.True(t, ok)
	assert.Equal(t, "/format_version", iss[0].Path)
	assert.Equal(t, "1.9", iss[0].Params["requested"])
	assert.Equal(t, "1.10", iss[0].Params["floor"])
}

func TestResolve_UnknownContentType(t *testing.T) {
	r := schema.Default()
	_, err := r.Resolve("nonsense", mcaddon.MustVersion("1.0"))
	require.Error(t, err)
	assert.True(t, mcaddon.IsUnsupportedVersion(err))
}
