package manifest_test

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
	"github.com/blockforge/mcaddon/manifest"
)

func TestNew_Defaults(t *testing.T) {
	m := manifest.New("Ruby Pack")
	assert.Equal(t, manifest.FormatVersion, m.Format)
	assert.Equal(t, "Ruby Pack", m.Header.Name)
	assert.Equal(t, [3]int{1, 0, 0}, m.Header.Version)
	assert.Equal(t, manifest.MinEngineVersion, m.Header.MinEngineVersion)

	_, err := uuid.Parse(m.Header.UUID)
	assert.NoError(t, err)
}

func TestAddModule(t *testing.T) {
	m := manifest.New("Ruby Pack")
	mod := m.AddModule(manifest.ModuleData, "behaviors")
	require.Len(t, m.Modules, 1)
	assert.Equal(t, manifest.ModuleData, mod.Type)
	assert.Equal(t, m.Header.Version, mod.Version)
	assert.NotEqual(t, m.Header.UUID, mod.UUID)
}

func TestMarshalLoad_RoundTrip(t *testing.T) {
	m := manifest.New("Ruby Pack")
	m.Header.Description = "adds rubies"
	m.AddModule(manifest.ModuleData, "behaviors")

	data, err := m.Marshal()
	require.NoError(t, err)

	back, err := manifest.Load(data)
	require.NoError(t, err)
	assert.Equal(t, m.Header, back.Header)
	assert.Equal(t, m.Modules, back.Modules)
}

func TestLoad_MissingHeaderFails(t *testing.T) {
	_, err := manifest.Load([]byte(`{"format_version": 2}`))
	require.Error(t, err)
	assert.True(t, mcaddon.IsSchemaValidation(err))
}

func TestMarshal_InvalidFormatVersion(t *testing.T) {
	m := manifest.New("Ruby Pack")
	m.Format = 0
	_, err := m.Marshal()
	require.Error(t, err)
	assert.True(t, mcaddon.IsUnsupportedVersion(err))
}
