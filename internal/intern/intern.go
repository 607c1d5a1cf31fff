// Package intern implements the name table a parser keeps for the
// lifetime of a document. Names are stored once in an append-only arena
// and handed out as Symbol handles.
package intern

import (
	"bytes"

	"golang.org/x/net/html/atom"
)

// Symbol identifies an interned name within its Table. The zero Symbol
// is never returned by Intern.
type Symbol uint32

// Stats reports interning activity.
type Stats struct {
	Count  int
	Hits   int
	Misses int
}

type entry struct {
	start, end int
	atom       atom.Atom
	str        string
}

type Table struct {
	arena   []byte
	entries []entry
	buckets map[uint64][]Symbol
	stats   Stats
}

func New() *Table {
	return &Table{
		buckets: make(map[uint64][]Symbol, 64),
	}
}

// Intern returns the symbol for name, adding it to the table if needed.
// The table does not retain name.
func (t *Table) Intern(name []byte) Symbol {
	if len(name) == 0 {
		return 0
	}
	if t.buckets == nil {
		t.buckets = make(map[uint64][]Symbol, 64)
	}

	hash := hashBytes(name)
	for _, sym := range t.buckets[hash] {
		if bytes.Equal(t.Bytes(sym), name) {
			t.stats.Hits++
			return sym
		}
	}

	t.stats.Misses++
	start := len(t.arena)
	t.arena = append(t.arena, name...)
	e := entry{start: start, end: len(t.arena)}
	// well known HTML names get their string from the atom table
	if a := atom.Lookup(name); a != 0 {
		e.atom = a
		e.str = a.String()
	}
	t.entries = append(t.entries, e)
	sym := Symbol(len(t.entries))
	t.buckets[hash] = append(t.buckets[hash], sym)
	t.stats.Count++
	return sym
}

func (t *Table) InternString(name string) Symbol {
	return t.Intern([]byte(name))
}

// Lookup returns the symbol for name without adding it.
func (t *Table) Lookup(name []byte) (Symbol, bool) {
	for _, sym := range t.buckets[hashBytes(name)] {
		if bytes.Equal(t.Bytes(sym), name) {
			return sym, true
		}
	}
	return 0, false
}

// Bytes returns the name for sym. The slice points into the arena and
// must not be modified.
func (t *Table) Bytes(sym Symbol) []byte {
	if sym == 0 || int(sym) > len(t.entries) {
		return nil
	}
	e := &t.entries[sym-1]
	return t.arena[e.start:e.end:e.end]
}

// String returns the name for sym. The string is created once per
// symbol.
func (t *Table) String(sym Symbol) string {
	if sym == 0 || int(sym) > len(t.entries) {
		return ""
	}
	e := &t.entries[sym-1]
	if e.str == "" {
		e.str = string(t.arena[e.start:e.end])
	}
	return e.str
}

// Atom returns the x/net/html atom for sym, or 0 if the name is not a
// well known HTML name.
func (t *Table) Atom(sym Symbol) atom.Atom {
	if sym == 0 || int(sym) > len(t.entries) {
		return 0
	}
	return t.entries[sym-1].atom
}

func (t *Table) Len() int {
	return len(t.entries)
}

func (t *Table) Stats() Stats {
	return t.stats
}

func hashBytes(data []byte) uint64 {
	const (
		offset = 14695981039346656037
		prime  = 1099511628211
	)
	hash := uint64(offset)
	for _, b := range data {
		hash ^= uint64(b)
		hash *= prime
	}
	return hash
}
