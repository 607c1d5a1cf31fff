package orderedmap_test

import (
	"testing"

	"github.com/lestrrat-go/tagsoup/internal/orderedmap"
	"github.com/stretchr/testify/require"
)

func TestMap(t *testing.T) {
	m := orderedmap.New[string, string]()
	require.NoError(t, m.Set("href", "a.html"))
	require.NoError(t, m.Set("class", "x"))
	require.ErrorIs(t, m.Set("href", "b.html"), orderedmap.ErrDuplicateEntry)

	v, ok := m.Get("href")
	require.True(t, ok)
	require.Equal(t, "a.html", v, "first value wins")

	var keys []string
	for k := range m.Range() {
		keys = append(keys, k)
	}
	require.Equal(t, []string{"href", "class"}, keys)

	m.Reset()
	require.Equal(t, 0, m.Len())
	_, ok = m.Get("href")
	require.False(t, ok)
}
