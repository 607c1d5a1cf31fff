package encoding

import (
	"fmt"
	"strings"
	"sync"
)

// Built-in handlers. These are shared by every parser and must not be
// closed or modified.
var (
	UTF8    = &Handler{name: "UTF-8", kind: KindUTF8, aliases: []string{"UTF8"}}
	UTF16LE = &Handler{name: "UTF-16LE", kind: KindUTF16LE, aliases: []string{"UTF16LE"}}
	UTF16BE = &Handler{name: "UTF-16BE", kind: KindUTF16BE, aliases: []string{"UTF16BE"}}
	UTF16   = &Handler{name: "UTF-16", kind: KindUTF16, aliases: []string{"UTF16"}}
	Latin1  = &Handler{name: "ISO-8859-1", kind: KindLatin1, aliases: []string{"ISO-LATIN-1", "ISO LATIN 1", "LATIN1", "L1"}}
	ASCII   = &Handler{name: "ASCII", kind: KindASCII, aliases: []string{"US-ASCII"}}
	HTML    = &Handler{name: "HTML", kind: KindHTML, noInput: true}
)

type registry struct {
	handlers []*Handler
	byName   map[string]*Handler
}

var (
	reg     registry
	regOnce sync.Once

	aliasMu sync.RWMutex
	aliases = map[string]string{}
)

func initRegistry() {
	reg.byName = make(map[string]*Handler)
	for _, h := range []*Handler{UTF8, UTF16LE, UTF16BE, UTF16, Latin1, ASCII, HTML} {
		reg.add(h)
	}
	for _, def := range isoTables {
		reg.add(&Handler{
			name:    def.name,
			kind:    KindTable,
			table:   newTable8(def.charmap),
			aliases: def.aliases,
		})
	}
}

func (r *registry) add(h *Handler) {
	r.handlers = append(r.handlers, h)
	r.byName[strings.ToUpper(h.name)] = h
	for _, alias := range h.aliases {
		r.byName[strings.ToUpper(alias)] = h
	}
}

func lookupHandler(upper string) (*Handler, bool) {
	regOnce.Do(initRegistry)
	h, ok := reg.byName[upper]
	return h, ok
}

// Handlers returns the built-in and registered handlers, in the order
// they were added.
func Handlers() []*Handler {
	regOnce.Do(initRegistry)
	return append([]*Handler(nil), reg.handlers...)
}

// Register adds a handler to the process-wide table. A later
// registration with the same name shadows the earlier one.
//
// Register is meant to be called during program initialization: it is
// not safe to call concurrently with Resolve.
func Register(h *Handler) {
	regOnce.Do(initRegistry)
	reg.add(h)
}

// NewTableHandler creates a handler for an ASCII compatible 8-bit
// charset. upper lists the code point of each byte from 0x80 to 0xFF;
// zero marks a byte that is not part of the charset. The handler can be
// used directly or passed to Register.
func NewTableHandler(name string, upper [128]rune, aliases ...string) *Handler {
	var t table8
	for i, r := range upper {
		if r > 0 && r <= 0xFFFF {
			t.toUnicode[i] = uint16(r)
		}
	}
	t.xlat = buildXlat(&t.toUnicode)
	return &Handler{name: name, kind: KindTable, table: &t, aliases: aliases}
}

// Resolve returns a handler for the encoding called name.
//
// Lookup goes through the alias table, then the built-in and registered
// handlers, then the encodings known to golang.org/x/text. If all of
// these fail, the name is canonicalized once (for example "UTF16" or
// "ISO LATIN 1") and looked up again.
//
// Handlers backed by golang.org/x/text carry state, as does "UTF-16",
// which remembers its byte order. Each call returns a fresh one of those,
// which the caller owns and should Close.
func Resolve(name string) (*Handler, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	if alias, ok := GetAlias(name); ok {
		name = alias
	}

	upper := strings.ToUpper(name)
	if h, ok := lookupHandler(upper); ok {
		return h.instance(), nil
	}
	if h, ok := newBridgeHandler(name); ok {
		return h, nil
	}

	if ce := ParseCharEncoding(upper); ce != CharEncodingNone && ce != CharEncodingError {
		if canonical := ce.Name(); canonical != upper {
			if h, ok := lookupHandler(canonical); ok {
				return h.instance(), nil
			}
			if h, ok := newBridgeHandler(canonical); ok {
				return h, nil
			}
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnsupportedEncoding, name)
}

// ForEncoding returns the handler for a detected encoding.
func ForEncoding(ce CharEncoding) (*Handler, error) {
	switch ce {
	case CharEncodingNone, CharEncodingUTF8:
		return UTF8, nil
	case CharEncodingUTF16LE:
		return UTF16LE, nil
	case CharEncodingUTF16BE:
		return UTF16BE, nil
	case CharEncoding8859_1:
		return Latin1, nil
	case CharEncodingASCII:
		return ASCII, nil
	case CharEncodingError:
		return nil, fmt.Errorf("%w: invalid encoding", ErrUnsupportedEncoding)
	}
	return Resolve(ce.Name())
}

// AddAlias registers alias as another name for the encoding name.
// Both are case insensitive. Adding an existing alias replaces it.
func AddAlias(name, alias string) error {
	name = strings.TrimSpace(name)
	alias = strings.TrimSpace(alias)
	if name == "" || alias == "" {
		return ErrEmptyName
	}
	aliasMu.Lock()
	defer aliasMu.Unlock()
	aliases[strings.ToUpper(alias)] = name
	return nil
}

// DelAlias removes an alias. It reports whether the alias existed.
func DelAlias(alias string) bool {
	key := strings.ToUpper(strings.TrimSpace(alias))
	aliasMu.Lock()
	defer aliasMu.Unlock()
	if _, ok := aliases[key]; !ok {
		return false
	}
	delete(aliases, key)
	return true
}

// GetAlias returns the encoding name registered for alias.
func GetAlias(alias string) (string, bool) {
	key := strings.ToUpper(strings.TrimSpace(alias))
	aliasMu.RLock()
	defer aliasMu.RUnlock()
	name, ok := aliases[key]
	return name, ok
}

// CleanupAliases removes every registered alias.
func CleanupAliases() {
	aliasMu.Lock()
	defer aliasMu.Unlock()
	clear(aliases)
}
