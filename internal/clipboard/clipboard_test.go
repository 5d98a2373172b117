package clipboard

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestMemorySet(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.Set("web-1 web-2"))
	require.Equal(t, "web-1 web-2", mem.Contents)
}

func TestMemorySetOverwrites(t *testing.T) {
	mem := NewMemory()
	require.NoError(t, mem.Set("first"))
	require.NoError(t, mem.Set("second"))
	require.Equal(t, "second", mem.Contents)
}

func TestMemorySetError(t *testing.T) {
	mem := NewMemory()
	mem.Err = errors.New("no clipboard service")
	err := mem.Set("anything")
	require.Error(t, err)
	require.Empty(t, mem.Contents)
}
