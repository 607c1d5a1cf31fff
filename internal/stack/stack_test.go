package stack_test

import (
	"testing"

	"github.com/lestrrat-go/tagsoup/internal/stack"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	var s stack.Stack[string]
	_, ok := s.Pop()
	require.False(t, ok, "empty stack")

	s.Push("html")
	s.Push("body")
	s.Push("p")
	require.Equal(t, 3, s.Len())
	require.Equal(t, "html", s.At(0))

	v, ok := s.Peek()
	require.True(t, ok)
	require.Equal(t, "p", v)

	v, ok = s.Pop()
	require.True(t, ok)
	require.Equal(t, "p", v)
	require.Equal(t, []string{"html", "body"}, s.Items())

	s.PopN(5)
	require.Equal(t, 0, s.Len())
}

func TestStackShrink(t *testing.T) {
	var s stack.Stack[int]
	for i := range 100 {
		s.Push(i)
	}
	require.GreaterOrEqual(t, s.Cap(), 100)

	s.PopN(90)
	require.Equal(t, 10, s.Len())
	require.LessOrEqual(t, s.Cap(), 20, "backing array should have been reallocated")
	for i := range 10 {
		require.Equal(t, i, s.At(i))
	}
}
