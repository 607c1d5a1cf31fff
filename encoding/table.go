package encoding

import (
	"unicode/utf8"

	"golang.org/x/text/encoding/charmap"
)

// table8 is the generic transcoder for 8-bit, ASCII compatible charsets.
//
// Decoding is a direct lookup of the upper half. Encoding uses a two
// level table: the first 48 bytes of xlat select a page by the lead
// byte of the UTF-8 sequence (32 entries for two byte sequences, 16 for
// three byte ones), and each 64 byte page is indexed by the low six bits
// of a continuation byte. Page 0 is all zero, which means "unencodable".
type table8 struct {
	toUnicode [128]uint16
	xlat      []byte
}

const (
	xlatHeader = 48
	xlatPage   = 64
)

func newTable8(cm *charmap.Charmap) *table8 {
	var t table8
	for i := range t.toUnicode {
		r := cm.DecodeByte(byte(0x80 + i))
		if r == utf8.RuneError || r > 0xFFFF {
			continue
		}
		t.toUnicode[i] = uint16(r)
	}
	t.xlat = buildXlat(&t.toUnicode)
	return &t
}

func buildXlat(codes *[128]uint16) []byte {
	x := make([]byte, xlatHeader+xlatPage)
	newPage := func() byte {
		x = append(x, make([]byte, xlatPage)...)
		return byte((len(x)-xlatHeader)/xlatPage - 1)
	}

	for i, u := range codes {
		if u == 0 {
			continue
		}
		b := byte(0x80 + i)
		if u < 0x800 {
			d := int(u >> 6)
			if x[d] == 0 {
				p := newPage()
				x[d] = p
			}
			x[xlatHeader+int(x[d])*xlatPage+int(u&0x3F)] = b
			continue
		}

		d := 32 + int(u>>12)
		if x[d] == 0 {
			p := newPage()
			x[d] = p
		}
		mid := xlatHeader + int(x[d])*xlatPage + int((u>>6)&0x3F)
		if x[mid] == 0 {
			p := newPage()
			x[mid] = p
		}
		x[xlatHeader+int(x[mid])*xlatPage+int(u&0x3F)] = b
	}
	return x
}

func (t *table8) toUTF8(dst, src []byte) ([]byte, int, Status) {
	for i, c := range src {
		if c < 0x80 {
			dst = append(dst, c)
			continue
		}
		u := t.toUnicode[c-0x80]
		if u == 0 {
			return dst, i + 1, StatusMalformed
		}
		dst = utf8.AppendRune(dst, rune(u))
	}
	return dst, len(src), StatusOK
}

// encode returns the byte for r, or 0 if r has no representation.
func (t *table8) encode(r rune) byte {
	x := t.xlat
	switch {
	case r < 0x80:
		return byte(r)
	case r < 0x800:
		return x[xlatHeader+int(r&0x3F)+int(x[r>>6])*xlatPage]
	case r < 0x10000:
		mid := x[xlatHeader+int((r>>6)&0x3F)+int(x[32+(r>>12)])*xlatPage]
		return x[xlatHeader+int(r&0x3F)+int(mid)*xlatPage]
	}
	return 0
}

func (t *table8) fromUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	i := 0
	for i < len(src) {
		if c := src[i]; c < 0x80 {
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
		if b := t.encode(r); b != 0 {
			dst = append(dst, b)
		} else {
			dst = appendCharRef(dst, r)
		}
		i += size
	}
	return dst, i, StatusOK
}

// isoTables lists the table driven built-ins.
var isoTables = []struct {
	name    string
	charmap *charmap.Charmap
	aliases []string
}{
	{"ISO-8859-2", charmap.ISO8859_2, []string{"ISO-LATIN-2", "LATIN2", "L2"}},
	{"ISO-8859-3", charmap.ISO8859_3, []string{"ISO-LATIN-3", "LATIN3", "L3"}},
	{"ISO-8859-4", charmap.ISO8859_4, []string{"ISO-LATIN-4", "LATIN4", "L4"}},
	{"ISO-8859-5", charmap.ISO8859_5, []string{"CYRILLIC"}},
	{"ISO-8859-6", charmap.ISO8859_6, []string{"ARABIC"}},
	{"ISO-8859-7", charmap.ISO8859_7, []string{"GREEK"}},
	{"ISO-8859-8", charmap.ISO8859_8, []string{"HEBREW"}},
	{"ISO-8859-9", charmap.ISO8859_9, []string{"ISO-LATIN-5", "LATIN5", "L5"}},
	{"ISO-8859-15", charmap.ISO8859_15, []string{"ISO-LATIN-9", "LATIN9", "LATIN-9"}},
}
