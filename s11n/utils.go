package s11n

import (
	"strings"

	"github.com/lestrrat-go/tagsoup/internal/pool"
	"go4.org/bytereplacer"
)

var (
	qchDquote = byte('"')
	qchQuote  = byte('\'')
)

var (
	textEscaper = bytereplacer.New(
		"&", "&amp;",
		"<", "&lt;",
		">", "&gt;",
	)
	attrEscaper = bytereplacer.New(
		"&", "&amp;",
		`"`, "&quot;",
	)
	scratchPool = pool.ByteSlice()
)

// appendQuoted appends s in quotes, picking double quotes unless s
// contains one. A string holding both kinds of quote gets its double
// quotes written as &quot;.
func appendQuoted(dst []byte, s string) []byte {
	if strings.IndexByte(s, qchDquote) < 0 {
		dst = append(dst, qchDquote)
		dst = append(dst, s...)
		return append(dst, qchDquote)
	}

	if strings.IndexByte(s, qchQuote) < 0 {
		dst = append(dst, qchQuote)
		dst = append(dst, s...)
		return append(dst, qchQuote)
	}

	dst = append(dst, qchDquote)
	dst = append(dst, strings.ReplaceAll(s, `"`, "&quot;")...)
	return append(dst, qchDquote)
}

// appendEscaped appends b to dst with the replacements r makes. b is not
// modified.
func appendEscaped(dst []byte, r *bytereplacer.Replacer, b []byte) []byte {
	scratch := scratchPool.GetCapacity(len(b) + len(b)/4)
	scratch = append(scratch, b...)
	out := r.Replace(scratch)
	dst = append(dst, out...)
	scratchPool.Put(scratch)
	return dst
}

// EscapeText returns b with the characters that would start markup
// replaced by entity references.
func EscapeText(b []byte) []byte {
	return appendEscaped(nil, textEscaper, b)
}

// EscapeAttrValue returns s escaped for use inside a double quoted
// attribute value.
func EscapeAttrValue(s string) string {
	return string(appendEscaped(nil, attrEscaper, []byte(s)))
}
