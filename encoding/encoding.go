// Package encoding implements the character encoding engine used by the
// parser: detection of an encoding from the first bytes of a document,
// name resolution, and conversion between legacy encodings and UTF-8.
//
// The built-in transcoders are implemented here. Anything else is bridged
// to golang.org/x/text/encoding, whose package names ("unicode", "charmap")
// would otherwise leak all over the parser.
package encoding

import (
	"errors"
	"strconv"
)

var (
	ErrUnsupportedEncoding = errors.New("unsupported encoding")
	ErrEmptyName           = errors.New("empty encoding name")
	ErrNoInputConversion   = errors.New("encoding cannot be used for input")
	ErrNoOutputConversion  = errors.New("encoding cannot be used for output")
	ErrHandlerClosed       = errors.New("encoding handler already closed")
)

// Status is the outcome of a single conversion call.
type Status int

const (
	// StatusOK means all of the input that could be converted was.
	StatusOK Status = iota
	// StatusNeedMoreInput means the input ends with an incomplete
	// multibyte sequence. Those trailing bytes were not consumed.
	StatusNeedMoreInput
	// StatusMalformed means an invalid sequence was found. The
	// offending unit is included in the consumed count, but nothing
	// was produced for it; the caller decides on a replacement.
	StatusMalformed
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusNeedMoreInput:
		return "need more input"
	case StatusMalformed:
		return "malformed"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Kind identifies the conversion routine a Handler dispatches to.
type Kind int

const (
	KindUTF8 Kind = iota
	KindASCII
	KindLatin1
	KindUTF16LE
	KindUTF16BE
	KindUTF16
	KindTable
	KindHTML
	KindBridge
)

func (k Kind) String() string {
	switch k {
	case KindUTF8:
		return "utf8"
	case KindASCII:
		return "ascii"
	case KindLatin1:
		return "latin1"
	case KindUTF16LE:
		return "utf16le"
	case KindUTF16BE:
		return "utf16be"
	case KindUTF16:
		return "utf16"
	case KindTable:
		return "table"
	case KindHTML:
		return "html"
	case KindBridge:
		return "bridge"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// Handler converts between one encoding and UTF-8.
//
// Built-in handlers are shared and stateless. Bridged handlers (those
// returned by Resolve for encodings only known to golang.org/x/text)
// carry converter state: they belong to whoever resolved them and should
// be released with Close.
type Handler struct {
	name    string
	kind    Kind
	table   *table8
	aliases []string
	bridge  *bridge
	utf16   *utf16State
	noInput bool
}

// Name returns the canonical name of the encoding.
func (h *Handler) Name() string {
	return h.name
}

func (h *Handler) Kind() Kind {
	return h.kind
}

// Builtin reports whether the handler is one of the shared, process-wide
// handlers.
func (h *Handler) Builtin() bool {
	return h.bridge == nil && h.utf16 == nil
}

// instance returns the handler to hand out for h. Handlers that keep
// state between calls are copied so that every caller gets its own.
func (h *Handler) instance() *Handler {
	if h.kind != KindUTF16 {
		return h
	}
	c := *h
	c.utf16 = &utf16State{}
	return &c
}

// state returns the UTF-16 state of h. The shared UTF16 handler has none
// of its own and treats every call as the start of a stream.
func (h *Handler) state() *utf16State {
	if h.utf16 != nil {
		return h.utf16
	}
	return &utf16State{}
}

// CanDecode reports whether ToUTF8 is usable. The "HTML" handler is
// output only.
func (h *Handler) CanDecode() bool {
	return !h.noInput
}

// Close releases converter state held by a bridged handler. It is a
// no-op for built-in handlers.
func (h *Handler) Close() error {
	if h.bridge == nil {
		return nil
	}
	return h.bridge.close()
}

// Reset discards any partial state a bridged handler is carrying between
// calls.
func (h *Handler) Reset() {
	if h.bridge != nil {
		h.bridge.reset()
	}
	if h.utf16 != nil {
		*h.utf16 = utf16State{}
	}
}

// ToUTF8 converts src to UTF-8, appending to dst. It returns the extended
// buffer and the number of bytes of src that were consumed.
//
// When final is false, an incomplete sequence at the end of src is left
// unconsumed and StatusNeedMoreInput is returned. When final is true the
// same bytes are reported as StatusMalformed.
func (h *Handler) ToUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	switch h.kind {
	case KindUTF8:
		return utf8ToUTF8(dst, src, final)
	case KindASCII:
		return asciiToUTF8(dst, src)
	case KindLatin1:
		return latin1ToUTF8(dst, src)
	case KindUTF16LE:
		return utf16ToUTF8(dst, src, final, false)
	case KindUTF16:
		return h.state().toUTF8(dst, src, final)
	case KindUTF16BE:
		return utf16ToUTF8(dst, src, final, true)
	case KindTable:
		return h.table.toUTF8(dst, src)
	case KindBridge:
		return h.bridge.toUTF8(dst, src, final)
	}
	// output-only handlers consume nothing
	return dst, 0, StatusMalformed
}

// FromUTF8 converts UTF-8 in src to the handler's encoding, appending to
// dst. Code points the encoding cannot represent are written as decimal
// character references ("&#NNN;") instead of failing.
func (h *Handler) FromUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	switch h.kind {
	case KindUTF8:
		return utf8ToUTF8(dst, src, final)
	case KindASCII:
		return utf8ToSingleByte(dst, src, final, 0x80)
	case KindLatin1:
		return utf8ToSingleByte(dst, src, final, 0x100)
	case KindUTF16LE:
		return utf8ToUTF16(dst, src, final, false)
	case KindUTF16:
		return h.state().fromUTF8(dst, src, final)
	case KindUTF16BE:
		return utf8ToUTF16(dst, src, final, true)
	case KindTable:
		return h.table.fromUTF8(dst, src, final)
	case KindHTML:
		return utf8ToHTML(dst, src, final)
	case KindBridge:
		return h.bridge.fromUTF8(dst, src, final)
	}
	return dst, 0, StatusMalformed
}

// appendCharRef appends "&#NNN;" for r.
func appendCharRef(dst []byte, r rune) []byte {
	dst = append(dst, '&', '#')
	dst = strconv.AppendInt(dst, int64(r), 10)
	return append(dst, ';')
}
