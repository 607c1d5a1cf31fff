package tagsoup

import (
	"bytes"
	"unicode/utf8"
)

// appendText appends decoded text to buf, turning CRLF and lone CR into
// LF. A CR at the end of b is held back until the next call (or the end
// of input) shows whether an LF follows it.
func (in *inputStream) appendText(b []byte) {
	for len(b) > 0 {
		if in.pendingCR {
			in.pendingCR = false
			in.buf = append(in.buf, '\n')
			if b[0] == '\n' {
				b = b[1:]
				continue
			}
		}

		i := bytes.IndexByte(b, '\r')
		if i < 0 {
			in.buf = append(in.buf, b...)
			return
		}
		in.buf = append(in.buf, b[:i]...)
		in.pendingCR = true
		b = b[i+1:]
	}
}

// peek returns the byte i positions past the cursor, or 0 past the end
// of the decoded data.
func (in *inputStream) peek(i int) byte {
	if j := in.cur + i; j < len(in.buf) {
		return in.buf[j]
	}
	return 0
}

func (in *inputStream) done() bool {
	return in.cur >= len(in.buf)
}

func (in *inputStream) hasPrefix(s string) bool {
	if in.avail() < len(s) {
		return false
	}
	return string(in.buf[in.cur:in.cur+len(s)]) == s
}

// hasPrefixFold is hasPrefix ignoring ASCII case. s must be upper case.
func (in *inputStream) hasPrefixFold(s string) bool {
	if in.avail() < len(s) {
		return false
	}
	for i := 0; i < len(s); i++ {
		if toUpper(in.buf[in.cur+i]) != s[i] {
			return false
		}
	}
	return true
}

// advance consumes n bytes, keeping line and column up to date.
// Columns count code points.
func (in *inputStream) advance(n int) {
	if left := in.avail(); n > left {
		n = left
	}
	for _, c := range in.buf[in.cur : in.cur+n] {
		switch {
		case c == '\n':
			in.line++
			in.col = 1
		case c&0xC0 != 0x80:
			in.col++
		}
	}
	in.cur += n
}

// currentChar decodes the code point at the cursor. It returns a size of
// 0 when there is nothing left, and -1 when the bytes at the cursor are
// not valid UTF-8 (including a sequence cut short by the end of input).
func (in *inputStream) currentChar() (rune, int) {
	if in.done() {
		return 0, 0
	}
	c := in.buf[in.cur]
	if c < utf8.RuneSelf {
		return rune(c), 1
	}
	if in.avail() < utf8.UTFMax {
		in.ensureLookahead(utf8.UTFMax)
	}
	b := in.buf[in.cur:]
	if !utf8.FullRune(b) {
		// the driver only parses constructs whose end is buffered, so a
		// cut sequence here is the end of input
		return utf8.RuneError, -1
	}
	r, size := utf8.DecodeRune(b)
	if r == utf8.RuneError && size == 1 {
		return r, -1
	}
	return r, size
}

// nextChar consumes and returns the code point at the cursor.
func (in *inputStream) nextChar() (rune, int) {
	r, size := in.currentChar()
	if size > 0 {
		in.advance(size)
	}
	return r, size
}

// invalidBytes describes the bytes at buf[pos] for error messages.
func (in *inputStream) invalidBytes(pos int) []byte {
	return in.buf[pos:min(pos+4, len(in.buf))]
}

// currentLine returns the text of the line the cursor is on, for error
// messages.
func (in *inputStream) currentLine() string {
	if in.cur > len(in.buf) {
		return ""
	}
	start := bytes.LastIndexByte(in.buf[:in.cur], '\n') + 1
	end := bytes.IndexByte(in.buf[in.cur:], '\n')
	if end < 0 {
		end = len(in.buf)
	} else {
		end += in.cur
	}
	const maxLine = 80
	if end-start > maxLine {
		if in.cur-start > maxLine/2 {
			start = in.cur - maxLine/2
		}
		if end-start > maxLine {
			end = start + maxLine
		}
	}
	return string(bytes.ToValidUTF8(in.buf[start:end], replacementChar))
}

func isBlankCh(c byte) bool {
	return c == 0x20 || c == 0x09 || c == 0x0A || c == 0x0D
}

func isASCIILetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isASCIIDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isHexDigit(c byte) bool {
	return isASCIIDigit(c) || (c >= 'a' && c <= 'f') || (c >= 'A' && c <= 'F')
}

func toLower(c byte) byte {
	if c >= 'A' && c <= 'Z' {
		return c + ('a' - 'A')
	}
	return c
}

func toUpper(c byte) byte {
	if c >= 'a' && c <= 'z' {
		return c - ('a' - 'A')
	}
	return c
}

// isXMLChar reports whether r may appear in a document.
func isXMLChar(r rune) bool {
	switch {
	case r == 0x9, r == 0xA, r == 0xD:
		return true
	case r >= 0x20 && r <= 0xD7FF:
		return true
	case r >= 0xE000 && r <= 0xFFFD:
		return true
	case r >= 0x10000 && r <= 0x10FFFF:
		return true
	}
	return false
}

func isAllBlank(b []byte) bool {
	for _, c := range b {
		if !isBlankCh(c) {
			return false
		}
	}
	return true
}
