// Package orderedmap is a map that remembers insertion order. The parser
// uses it as scratch space for the attributes of the tag being parsed.
package orderedmap

import (
	"errors"
	"iter"
)

var ErrDuplicateEntry = errors.New("duplicate entry")

type Map[K comparable, V any] struct {
	entries []K
	keys    map[K]V
}

func New[K comparable, V any]() *Map[K, V] {
	return &Map[K, V]{
		entries: make([]K, 0, 8),
		keys:    make(map[K]V),
	}
}

// Set adds key. If key is already present the existing value is kept
// and ErrDuplicateEntry is returned.
func (m *Map[K, V]) Set(key K, value V) error {
	_, exists := m.keys[key]
	if exists {
		return ErrDuplicateEntry
	}
	m.entries = append(m.entries, key)
	m.keys[key] = value
	return nil
}

func (m *Map[K, V]) Get(key K) (V, bool) {
	v, ok := m.keys[key]
	return v, ok
}

func (m *Map[K, V]) Len() int {
	return len(m.entries)
}

// Reset empties the map, keeping its allocations for reuse.
func (m *Map[K, V]) Reset() {
	clear(m.keys)
	var zero K
	for i := range m.entries {
		m.entries[i] = zero
	}
	m.entries = m.entries[:0]
}

func (m *Map[K, V]) Range() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		for _, k := range m.entries {
			v := m.keys[k]
			if !yield(k, v) {
				break
			}
		}
	}
}
