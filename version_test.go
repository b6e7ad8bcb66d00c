package mcaddon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

func TestFormatVersion_Compare(t *testing.T) {
	v12050 := mcaddon.MustVersion("1.20.50")
	v120 := mcaddon.MustVersion("1.20")
	v1200 := mcaddon.MustVersion("1.20.0")

	assert.Equal(t, 1, v12050.Compare(v120))
	assert.Equal(t, -1, v120.Compare(v12050))
	// missing trailing components compare as zero
	assert.True(t, v120.Equal(v1200))
	assert.True(t, mcaddon.MustVersion("1.12").Equal(mcaddon.VersionOf(1, 12, 0)))
}

func TestFormatVersion_StringKeepsPrecision(t *testing.T) {
	assert.Equal(t, "1.12", mcaddon.MustVersion("1.12").String())
	assert.Equal(t, "1.20.50", mcaddon.MustVersion("1.20.50").String())
	assert.Equal(t, "", mcaddon.FormatVersion{}.String())
}

func TestParseVersion_Invalid(t *testing.T) {
	for _, s := range []string{"", "1.x", "1.-2", "one"} {
		_, err := mcaddon.ParseVersion(s)
		assert.Error(t, err, s)
	}
}

func TestParseVersionValue_WireForms(t *testing.T) {
	v, err := mcaddon.ParseVersionValue("1.20.50")
	require.NoError(t, err)
	assert.Equal(t, "1.20.50", v.String())
	assert.Equal(t, "1.20.50", v.WireValue())

	// manifests declare a bare integer version; it re-emits numerically
	v, err = mcaddon.ParseVersionValue(float64(2))
	require.NoError(t, err)
	assert.Equal(t, 2, v.WireValue())

	v, err = mcaddon.ParseVersionValue([]any{float64(1), float64(20), float64(51)})
	require.NoError(t, err)
	assert.True(t, v.Equal(mcaddon.VersionOf(1, 20, 51)))

	_, err = mcaddon.ParseVersionValue(true)
	assert.Error(t, err)
	_, err = mcaddon.ParseVersionValue(2.5)
	assert.Error(t, err)
}

func TestFormatVersion_JSON(t *testing.T) {
	v := mcaddon.MustVersion("1.20.50")
	data, err := v.MarshalJSON()
	require.NoError(t, err)
	assert.Equal(t, `"1.20.50"`, string(data))

	var parsed mcaddon.FormatVersion
	require.NoError(t, parsed.UnmarshalJSON([]byte(`"1.16"`)))
	assert.Equal(t, "1.16", parsed.String())

	require.NoError(t, parsed.UnmarshalJSON([]byte(`2`)))
	assert.Equal(t, 2, parsed.WireValue())
}
