package intern_test

import (
	"testing"

	"github.com/lestrrat-go/tagsoup/internal/intern"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html/atom"
)

func TestIntern(t *testing.T) {
	tbl := intern.New()

	div := tbl.Intern([]byte("div"))
	require.NotZero(t, div)
	require.Equal(t, div, tbl.InternString("div"), "same name, same symbol")
	require.Equal(t, "div", tbl.String(div))
	require.Equal(t, atom.Div, tbl.Atom(div))

	custom := tbl.Intern([]byte("x-widget"))
	require.NotEqual(t, div, custom)
	require.Equal(t, "x-widget", tbl.String(custom))
	require.Equal(t, atom.Atom(0), tbl.Atom(custom))

	buf := []byte("span")
	span := tbl.Intern(buf)
	buf[0] = 'x'
	require.Equal(t, "span", string(tbl.Bytes(span)), "table must not alias the input")

	got, ok := tbl.Lookup([]byte("x-widget"))
	require.True(t, ok)
	require.Equal(t, custom, got)

	_, ok = tbl.Lookup([]byte("nope"))
	require.False(t, ok)

	require.Equal(t, intern.Symbol(0), tbl.Intern(nil))
	require.Equal(t, 3, tbl.Len())
	require.Equal(t, intern.Stats{Count: 3, Hits: 1, Misses: 3}, tbl.Stats())
}
