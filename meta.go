package tagsoup

import (
	"bytes"
	"strings"

	"github.com/lestrrat-go/tagsoup/encoding"
)

// charsetFromContent extracts the charset parameter of a Content-Type
// value such as "text/html; charset=iso-8859-1".
func charsetFromContent(content string) string {
	lower := strings.ToLower(content)
	i := strings.Index(lower, "charset")
	if i < 0 {
		return ""
	}
	rest := strings.TrimLeft(content[i+len("charset"):], " \t\n\r")
	if !strings.HasPrefix(rest, "=") {
		return ""
	}
	rest = strings.TrimLeft(rest[1:], " \t\n\r")
	rest = strings.TrimLeft(rest, `"'`)
	end := strings.IndexAny(rest, "; \t\n\r\"'")
	if end >= 0 {
		rest = rest[:end]
	}
	return rest
}

func isEncodingNameChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == '-' || c == '_' || c == ':' || c == '.'
}

// declaredEncoding finds an encoding="..." pseudo attribute (as in an XML
// declaration) or a charset= parameter in a first line of text.
func declaredEncoding(line []byte) string {
	for _, key := range [][]byte{[]byte("encoding"), []byte("charset")} {
		i := bytes.Index(bytes.ToLower(line), key)
		if i < 0 {
			continue
		}
		rest := bytes.TrimLeft(line[i+len(key):], " \t\n\r")
		if len(rest) == 0 || rest[0] != '=' {
			continue
		}
		rest = bytes.TrimLeft(rest[1:], " \t\n\r\"'")
		end := 0
		for end < len(rest) && isEncodingNameChar(rest[end]) {
			end++
		}
		if end > 0 {
			return string(rest[:end])
		}
	}
	return ""
}

// guessEncoding scans not yet parsed bytes for a <meta http-equiv> or
// <meta charset> declaration. It is used when bytes turn out not to be
// UTF-8 before any declaration was parsed.
func guessEncoding(buf []byte) string {
	lower := bytes.ToLower(buf)
	if i := bytes.Index(lower, []byte("http-equiv")); i >= 0 {
		if j := bytes.Index(lower[i:], []byte("content")); j >= 0 {
			if name := declaredEncoding(buf[i+j:]); name != "" {
				return name
			}
		}
	}
	if i := bytes.Index(lower, []byte("<meta")); i >= 0 {
		return declaredEncoding(buf[i:])
	}
	return ""
}

// checkMeta looks at the attributes of a meta element for an encoding
// declaration.
func (ctx *parserCtx) checkMeta(attrs []attribute) {
	var httpEquiv bool
	var content string
	for i := range attrs {
		a := &attrs[i]
		switch a.name {
		case "http-equiv":
			httpEquiv = strings.EqualFold(a.value, "Content-Type")
		case "content":
			if a.hasValue {
				content = a.value
			}
		case "charset":
			ctx.checkEncoding(a.value)
		}
	}
	if httpEquiv && content != "" {
		if name := charsetFromContent(content); name != "" {
			ctx.checkEncoding(name)
		}
	}
}

// checkEncoding switches the input to a declared encoding. Only the first
// declaration counts, and only when the encoding was not already settled
// by a byte order mark, a signature or the caller.
func (ctx *parserCtx) checkEncoding(name string) {
	in := ctx.in
	if ctx.flags.IsSet(flagIgnoreEncoding) || in.fixed || in.declared {
		return
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	in.declared = true
	TraceEvent(ctx.ctx, "encoding declared", encodingAttr(name))

	switch encoding.ParseCharEncoding(name) {
	case encoding.CharEncodingUTF16LE, encoding.CharEncodingUTF16BE,
		encoding.CharEncodingUCS4LE, encoding.CharEncodingUCS4BE,
		encoding.CharEncodingUCS2, encoding.CharEncodingUCS4_2143,
		encoding.CharEncodingUCS4_3412:
		if in.isPassThrough() {
			ctx.encodingError(errorf(ErrEncodingWrongMeta, "%s", name))
			return
		}
	}

	h, err := encoding.Resolve(name)
	if err != nil || !h.CanDecode() {
		ctx.encodingError(errorf(ErrEncodingUnsupported, "%s", name))
		return
	}
	if err := in.switchEncoding(h); err != nil {
		if !h.Builtin() {
			_ = h.Close()
		}
		return
	}
	ctx.encodingSwitched(h.Name())
}

// guessWindow is how far past a bad byte a declaration is looked for.
const guessWindow = 1024

// fallbackEncoding is called when the byte at buf[pos], at or past the
// cursor, is not UTF-8. The input is switched, for good, to whatever a
// declaration between the cursor and guessWindow bytes past pos names,
// or else to ISO-8859-1. Input a byte order mark declared UTF-8 is
// repaired instead.
//
// It reports false, having done nothing, when the window is not buffered
// yet and more input may come.
func (ctx *parserCtx) fallbackEncoding(pos int) bool {
	in := ctx.in
	switching := in.isPassThrough() && !in.switched && !in.fixed
	end := pos + guessWindow
	if switching && end > len(in.buf) && !in.ensureLookahead(end-in.cur) && !in.eof {
		ctx.waitInput = true
		return false
	}
	end = min(end, len(in.buf))

	ctx.encodingError(errorf(ErrInvalidUTF8, "bytes: % X", in.invalidBytes(pos)))

	if !in.isPassThrough() || in.switched {
		// nothing left to switch to
		return true
	}
	if in.fixed {
		in.buf = append(in.buf[:in.cur], bytes.ToValidUTF8(in.buf[in.cur:], replacementChar)...)
		return true
	}

	h := encoding.Latin1
	if !ctx.flags.IsSet(flagIgnoreEncoding) && !in.declared {
		if guess := guessEncoding(in.buf[in.cur:end]); guess != "" {
			in.declared = true
			resolved, err := encoding.Resolve(guess)
			switch {
			case err != nil || !resolved.CanDecode():
				ctx.encodingError(errorf(ErrEncodingUnsupported, "%s", guess))
			case resolved.Kind() == encoding.KindUTF8,
				resolved.Kind() == encoding.KindUTF16,
				resolved.Kind() == encoding.KindUTF16LE,
				resolved.Kind() == encoding.KindUTF16BE:
				// the bytes already proved this wrong
				_ = resolved.Close()
			default:
				h = resolved
			}
		}
	}
	if err := in.switchEncoding(h); err == nil {
		ctx.encodingSwitched(h.Name())
	} else if !h.Builtin() {
		_ = h.Close()
	}
	return true
}
