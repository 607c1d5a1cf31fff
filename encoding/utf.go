package encoding

import (
	"unicode/utf16"
	"unicode/utf8"
)

// decodeUTF8 reads one code point from src[i:]. A status other than
// StatusOK means no code point was read; for StatusMalformed, size is
// the number of bytes that make up the bad unit.
func decodeUTF8(src []byte, i int, final bool) (rune, int, Status) {
	if c := src[i]; c < utf8.RuneSelf {
		return rune(c), 1, StatusOK
	}
	if !utf8.FullRune(src[i:]) {
		if !final {
			return 0, 0, StatusNeedMoreInput
		}
		return utf8.RuneError, 1, StatusMalformed
	}
	r, size := utf8.DecodeRune(src[i:])
	if r == utf8.RuneError && size == 1 {
		return r, 1, StatusMalformed
	}
	return r, size, StatusOK
}

// utf8ToUTF8 copies src to dst, validating it along the way.
func utf8ToUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	i := 0
	for i < len(src) {
		if src[i] < utf8.RuneSelf {
			j := i + 1
			for j < len(src) && src[j] < utf8.RuneSelf {
				j++
			}
			dst = append(dst, src[i:j]...)
			i = j
			continue
		}

		_, size, st := decodeUTF8(src, i, final)
		switch st {
		case StatusNeedMoreInput:
			return dst, i, st
		case StatusMalformed:
			return dst, i + size, st
		}
		dst = append(dst, src[i:i+size]...)
		i += size
	}
	return dst, i, StatusOK
}

func readUTF16(src []byte, i int, bigEndian bool) uint16 {
	if bigEndian {
		return uint16(src[i])<<8 | uint16(src[i+1])
	}
	return uint16(src[i+1])<<8 | uint16(src[i])
}

func utf16ToUTF8(dst, src []byte, final, bigEndian bool) ([]byte, int, Status) {
	i := 0
	for i+1 < len(src) {
		u := readUTF16(src, i, bigEndian)
		if u < 0x80 {
			dst = append(dst, byte(u))
			i += 2
			continue
		}

		if !utf16.IsSurrogate(rune(u)) {
			dst = utf8.AppendRune(dst, rune(u))
			i += 2
			continue
		}

		// a low surrogate cannot start a pair
		if u >= 0xDC00 {
			return dst, i + 2, StatusMalformed
		}
		if i+3 >= len(src) {
			if !final {
				return dst, i, StatusNeedMoreInput
			}
			return dst, i + 2, StatusMalformed
		}
		u2 := readUTF16(src, i+2, bigEndian)
		if u2 < 0xDC00 || u2 > 0xDFFF {
			return dst, i + 2, StatusMalformed
		}
		dst = utf8.AppendRune(dst, utf16.DecodeRune(rune(u), rune(u2)))
		i += 4
	}

	if i < len(src) {
		if !final {
			return dst, i, StatusNeedMoreInput
		}
		return dst, len(src), StatusMalformed
	}
	return dst, i, StatusOK
}

func appendUTF16(dst []byte, u uint16, bigEndian bool) []byte {
	if bigEndian {
		return append(dst, byte(u>>8), byte(u))
	}
	return append(dst, byte(u), byte(u>>8))
}

func utf8ToUTF16(dst, src []byte, final, bigEndian bool) ([]byte, int, Status) {
	i := 0
	for i < len(src) {
		r, size, st := decodeUTF8(src, i, final)
		switch st {
		case StatusNeedMoreInput:
			return dst, i, st
		case StatusMalformed:
			return dst, i + size, st
		}

		if r < 0x10000 {
			dst = appendUTF16(dst, uint16(r), bigEndian)
		} else {
			r1, r2 := utf16.EncodeRune(r)
			dst = appendUTF16(dst, uint16(r1), bigEndian)
			dst = appendUTF16(dst, uint16(r2), bigEndian)
		}
		i += size
	}
	return dst, i, StatusOK
}

// utf16State is what a "UTF-16" handler remembers between calls: the
// byte order found by the first decode, and whether a byte order mark
// was written.
type utf16State struct {
	started    bool
	bigEndian  bool
	bomWritten bool
}

// toUTF8 reads a leading byte order mark on the first call and decodes
// in the order it names, little endian when there is none.
func (s *utf16State) toUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	skip := 0
	if !s.started {
		if len(src) < 2 && !final {
			return dst, 0, StatusNeedMoreInput
		}
		s.started = true
		switch {
		case len(src) < 2:
		case src[0] == 0xFE && src[1] == 0xFF:
			s.bigEndian = true
			skip = 2
		case src[0] == 0xFF && src[1] == 0xFE:
			skip = 2
		}
	}
	dst, n, st := utf16ToUTF8(dst, src[skip:], final, s.bigEndian)
	return dst, n + skip, st
}

// fromUTF8 writes little endian, preceded by a byte order mark the first
// time.
func (s *utf16State) fromUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	if !s.bomWritten {
		s.bomWritten = true
		dst = append(dst, 0xFF, 0xFE)
	}
	return utf8ToUTF16(dst, src, final, false)
}
