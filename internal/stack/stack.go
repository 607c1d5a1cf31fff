// Package stack implements the slice backed stacks the parser keeps its
// open elements and input streams on.
package stack

// shrinkThreshold is the capacity below which a stack never reallocates
// on pop.
const shrinkThreshold = 20

// Stack is a LIFO of T. The zero value is ready to use.
type Stack[T any] struct {
	items []T
}

func (s *Stack[T]) Push(v T) {
	s.items = append(s.items, v)
}

// Pop removes and returns the top item.
func (s *Stack[T]) Pop() (T, bool) {
	var zero T
	l := len(s.items)
	if l == 0 {
		return zero, false
	}
	v := s.items[l-1]
	s.items[l-1] = zero
	s.items = s.items[:l-1]
	s.shrink()
	return v, true
}

// PopN removes up to n items from the top.
func (s *Stack[T]) PopN(n int) {
	if n <= 0 {
		return
	}
	var zero T
	for n > 0 && len(s.items) > 0 {
		s.items[len(s.items)-1] = zero
		s.items = s.items[:len(s.items)-1]
		n--
	}
	s.shrink()
}

func (s *Stack[T]) shrink() {
	if c := cap(s.items); c > shrinkThreshold && c > len(s.items)*2 {
		s.items = append([]T(nil), s.items...)
	}
}

// Peek returns the top item without removing it.
func (s *Stack[T]) Peek() (T, bool) {
	if l := len(s.items); l > 0 {
		return s.items[l-1], true
	}
	var zero T
	return zero, false
}

// At returns the item at depth i, where 0 is the bottom of the stack.
func (s *Stack[T]) At(i int) T {
	return s.items[i]
}

// Items returns the items from bottom to top. The slice is shared with
// the stack and is only valid until the next Push or Pop.
func (s *Stack[T]) Items() []T {
	return s.items
}

func (s *Stack[T]) Len() int {
	return len(s.items)
}

func (s *Stack[T]) Cap() int {
	return cap(s.items)
}

func (s *Stack[T]) Reset() {
	clear(s.items)
	s.items = s.items[:0]
}
