package htmlent

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestLookup(t *testing.T) {
	require.Equal(t, 253, Len())

	e, ok := Lookup("amp")
	require.True(t, ok)
	require.Equal(t, '&', e.Value)

	e, ok = Lookup("eacute")
	require.True(t, ok)
	require.Equal(t, rune(0xE9), e.Value)

	_, ok = Lookup("Amp")
	require.False(t, ok, "names are case sensitive")

	_, ok = Lookup("foo")
	require.False(t, ok)
}

func TestLookupValue(t *testing.T) {
	e, ok := LookupValue(0xA0)
	require.True(t, ok)
	require.Equal(t, "nbsp", e.Name)

	e, ok = LookupValue(0x20AC)
	require.True(t, ok)
	require.Equal(t, "euro", e.Name)

	_, ok = LookupValue('a')
	require.False(t, ok)
}

func TestTableSorted(t *testing.T) {
	for i := 1; i < len(html40Entities); i++ {
		require.Less(t, html40Entities[i-1].Value, html40Entities[i].Value, "entry %d", i)
	}
}
