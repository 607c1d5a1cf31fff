package encoding

import (
	"unicode/utf8"

	"github.com/lestrrat-go/tagsoup/internal/htmlent"
)

func asciiToUTF8(dst, src []byte) ([]byte, int, Status) {
	for i, c := range src {
		if c >= 0x80 {
			dst = append(dst, src[:i]...)
			return dst, i + 1, StatusMalformed
		}
	}
	return append(dst, src...), len(src), StatusOK
}

func latin1ToUTF8(dst, src []byte) ([]byte, int, Status) {
	for _, c := range src {
		if c < 0x80 {
			dst = append(dst, c)
			continue
		}
		dst = append(dst, 0xC0|c>>6, 0x80|c&0x3F)
	}
	return dst, len(src), StatusOK
}

// utf8ToSingleByte writes code points below limit as single bytes,
// and everything else as character references.
func utf8ToSingleByte(dst, src []byte, final bool, limit rune) ([]byte, int, Status) {
	i := 0
	for i < len(src) {
		r, size, st := decodeUTF8(src, i, final)
		switch st {
		case StatusNeedMoreInput:
			return dst, i, st
		case StatusMalformed:
			return dst, i + size, st
		}
		if r < limit {
			dst = append(dst, byte(r))
		} else {
			dst = appendCharRef(dst, r)
		}
		i += size
	}
	return dst, i, StatusOK
}

// utf8ToHTML writes ASCII as is, and everything else as a named entity
// when one exists.
func utf8ToHTML(dst, src []byte, final bool) ([]byte, int, Status) {
	i := 0
	for i < len(src) {
		if c := src[i]; c < utf8.RuneSelf {
			dst = append(dst, c)
			i++
			continue
		}

		r, size, st := decodeUTF8(src, i, final)
		switch st {
		case StatusNeedMoreInput:
			return dst, i, st
		case StatusMalformed:
			return dst, i + size, st
		}
		if e, ok := htmlent.LookupValue(r); ok {
			dst = append(dst, '&')
			dst = append(dst, e.Name...)
			dst = append(dst, ';')
		} else {
			dst = appendCharRef(dst, r)
		}
		i += size
	}
	return dst, i, StatusOK
}
