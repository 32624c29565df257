package storage

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMemoryRoundTrip(t *testing.T) {
	m := NewMemory()

	_, ok := m.Get("checkins")
	assert.False(t, ok)

	require.NoError(t, m.Set("checkins", []byte(`[{"id":"1"}]`)))
	v, ok := m.Get("checkins")
	assert.True(t, ok)
	assert.Equal(t, `[{"id":"1"}]`, string(v))

	require.NoError(t, m.Delete("checkins"))
	_, ok = m.Get("checkins")
	assert.False(t, ok)
}

func TestFileStoreRoundTrip(t *testing.T) {
	fs, err := NewFileStore(t.TempDir())
	require.NoError(t, err)

	_, ok := fs.Get("released_children")
	assert.False(t, ok)

	require.NoError(t, fs.Set("released_children", []byte(`[]`)))
	v, ok := fs.Get("released_children")
	assert.True(t, ok)
	assert.Equal(t, `[]`, string(v))

	require.NoError(t, fs.Set("released_children", []byte(`[{"id":"2"}]`)))
	v, _ = fs.Get("released_children")
	assert.Equal(t, `[{"id":"2"}]`, string(v))

	require.NoError(t, fs.Delete("released_children"))
	_, ok = fs.Get("released_children")
	assert.False(t, ok)

	// deleting a missing key is not an error
	require.NoError(t, fs.Delete("released_children"))
}
