package intern

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHash(t *testing.T) {
	// reference FNV-1a 32 values
	assert.Equal(t, uint32(0x811c9dc5), Hash(""))
	assert.Equal(t, uint32(0xe40c292c), Hash("a"))
	assert.Equal(t, uint32(0xbf9cf968), Hash("foobar"))
	assert.Equal(t, uint32(0xbeef22b8), Hash("fmt"))
}

func TestPutIdempotent(t *testing.T) {
	tab := New()

	h0, err := tab.Put("fmt")
	require.NoError(t, err)

	h1, err := tab.Put("fmt")
	require.NoError(t, err)

	assert.Equal(t, h0, h1)
	assert.Equal(t, 1, tab.Len())

	s, ok := tab.Get(h0)
	assert.True(t, ok)
	assert.Equal(t, "fmt", s)
}

func TestSorted(t *testing.T) {
	tab := New()

	for _, s := range []string{"main", "fmt", "Hello, World!", "Greeting", ""} {
		_, err := tab.Put(s)
		require.NoError(t, err)
	}

	a := tab.Sorted()
	b := tab.Sorted()

	require.Len(t, a, 5)
	assert.Equal(t, a, b)

	for i := 1; i < len(a); i++ {
		assert.Less(t, a[i-1].Hash, a[i].Hash)
	}

	for _, e := range a {
		assert.Equal(t, Hash(e.Val), e.Hash)
	}
}

func TestReset(t *testing.T) {
	tab := New()

	_, err := tab.Put("x")
	require.NoError(t, err)

	tab.Reset()
	assert.Equal(t, 0, tab.Len())
}
