package tagsoup

import (
	"strings"

	"github.com/lestrrat-go/tagsoup/internal/htmlent"
	"golang.org/x/net/html"
)

// LookupEntity returns the character an HTML 4 named entity stands for.
// Names are case sensitive.
func LookupEntity(name string) (rune, bool) {
	e, ok := htmlent.Lookup(name)
	if !ok {
		return 0, false
	}
	return e.Value, true
}

// LookupEntityByValue returns the name of the HTML 4 entity for r, for
// use when writing documents out.
func LookupEntityByValue(r rune) (string, bool) {
	e, ok := htmlent.LookupValue(r)
	if !ok {
		return "", false
	}
	return e.Name, true
}

// lookupHTML5Entity resolves names from the HTML5 named character
// references. Some of those expand to two code points.
func lookupHTML5Entity(name string) (string, bool) {
	ref := "&" + name + ";"
	v := html.UnescapeString(ref)
	if v == ref || strings.HasSuffix(v, ";") {
		// not a name; or a legacy prefix like "&ampfoo;" matched
		return "", false
	}
	return v, true
}
