package mcaddon_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blockforge/mcaddon"
)

func TestDetectDuplicateKeys_Clean(t *testing.T) {
	issues, err := mcaddon.DetectDuplicateKeys([]byte(`{"a":1,"b":{"a":2},"c":[{"a":3}]}`), 0)
	require.NoError(t, err)
	assert.Empty(t, issues)
}

func TestDetectDuplicateKeys_TopLevel(t *testing.T) {
	issues, err := mcaddon.DetectDuplicateKeys([]byte(`{"a":1,"a":2}`), 0)
	require.NoError(t, err)
	require.Len(t, issues, 1)
	assert.Equal(t, "/a", issues[0].Path)
	assert.Equal(t, mcaddon.CodeDuplicateKey, issues[0].Code)
}

func TestDetectDuplicateKeys_NestedAndArrays(t *testing.T) {
	doc := []byte(`{"outer":{"k":1,"k":2},"list":[{"x":1,"x":2,"x":3}]}`)
	issues, err := mcaddon.DetectDuplicateKeys(doc, 0)
	require.NoError(t, err)
	require.Len(t, issues, 3)
	assert.Equal(t, "/outer/k", issues[0].Path)
	assert.Equal(t, "/list/0/x", issues[1].Path)
	assert.Equal(t, "/list/0/x", issues[2].Path)
}

func TestDetectDuplicateKeys_MaxIssues(t *testing.T) {
	doc := []byte(`{"a":1,"a":2,"b":1,"b":2,"c":1,"c":2}`)
	issues, err := mcaddon.DetectDuplicateKeys(doc, 2)
	require.NoError(t, err)
	assert.Len(t, issues, 2)
}

func TestDetectDuplicateKeys_Malformed(t *testing.T) {
	_, err := mcaddon.DetectDuplicateKeys([]byte(`{"a":`), 0)
	require.Error(t, err)
	assert.True(t, mcaddon.IsFormatError(err))
}
