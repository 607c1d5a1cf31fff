// Package htmlent holds the HTML 4 character entity table shared by the
// parser (for decoding references) and the output encoder (for writing
// them back out).
package htmlent

import (
	"sort"
	"sync"
)

// Entity maps a character entity name to the code point it stands for.
type Entity struct {
	Name  string
	Value rune
}

var byName map[string]*Entity
var byNameOnce sync.Once

func buildByName() {
	byName = make(map[string]*Entity, len(html40Entities))
	for i := range html40Entities {
		byName[html40Entities[i].Name] = &html40Entities[i]
	}
}

// Lookup returns the entity named name. Names are case sensitive.
func Lookup(name string) (*Entity, bool) {
	byNameOnce.Do(buildByName)
	e, ok := byName[name]
	return e, ok
}

// LookupValue returns the entity whose value is r. When more than one
// name maps to r, the first in table order is returned.
func LookupValue(r rune) (*Entity, bool) {
	i := sort.Search(len(html40Entities), func(i int) bool {
		return html40Entities[i].Value >= r
	})
	if i < len(html40Entities) && html40Entities[i].Value == r {
		return &html40Entities[i], true
	}
	return nil, false
}

// Len returns the number of entries in the table.
func Len() int {
	return len(html40Entities)
}
