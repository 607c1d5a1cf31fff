package encoding

import (
	"bytes"
	"strconv"
	"strings"
)

// CharEncoding identifies an encoding by a well known ID rather than by
// name. It is what Detect returns.
type CharEncoding int

const (
	CharEncodingError CharEncoding = iota - 1
	CharEncodingNone
	CharEncodingUTF8
	CharEncodingUTF16LE
	CharEncodingUTF16BE
	CharEncodingUCS4LE
	CharEncodingUCS4BE
	CharEncodingEBCDIC
	CharEncodingUCS4_2143
	CharEncodingUCS4_3412
	CharEncodingUCS2
	CharEncoding8859_1
	CharEncoding8859_2
	CharEncoding8859_3
	CharEncoding8859_4
	CharEncoding8859_5
	CharEncoding8859_6
	CharEncoding8859_7
	CharEncoding8859_8
	CharEncoding8859_9
	CharEncodingISO2022JP
	CharEncodingShiftJIS
	CharEncodingEUCJP
	CharEncodingASCII
)

var charEncodingNames = map[CharEncoding]string{
	CharEncodingUTF8:      "UTF-8",
	CharEncodingUTF16LE:   "UTF-16LE",
	CharEncodingUTF16BE:   "UTF-16BE",
	CharEncodingUCS4LE:    "ISO-10646-UCS-4LE",
	CharEncodingUCS4BE:    "ISO-10646-UCS-4",
	CharEncodingEBCDIC:    "EBCDIC",
	CharEncodingUCS4_2143: "ISO-10646-UCS-4-2143",
	CharEncodingUCS4_3412: "ISO-10646-UCS-4-3412",
	CharEncodingUCS2:      "ISO-10646-UCS-2",
	CharEncoding8859_1:    "ISO-8859-1",
	CharEncoding8859_2:    "ISO-8859-2",
	CharEncoding8859_3:    "ISO-8859-3",
	CharEncoding8859_4:    "ISO-8859-4",
	CharEncoding8859_5:    "ISO-8859-5",
	CharEncoding8859_6:    "ISO-8859-6",
	CharEncoding8859_7:    "ISO-8859-7",
	CharEncoding8859_8:    "ISO-8859-8",
	CharEncoding8859_9:    "ISO-8859-9",
	CharEncodingISO2022JP: "ISO-2022-JP",
	CharEncodingShiftJIS:  "SHIFT_JIS",
	CharEncodingEUCJP:     "EUC-JP",
	CharEncodingASCII:     "ASCII",
}

// Name returns the canonical name for e, or an empty string for
// CharEncodingNone and CharEncodingError.
func (e CharEncoding) Name() string {
	return charEncodingNames[e]
}

func (e CharEncoding) String() string {
	if s, ok := charEncodingNames[e]; ok {
		return s
	}
	switch e {
	case CharEncodingNone:
		return "none"
	case CharEncodingError:
		return "error"
	}
	return "encoding(" + strconv.Itoa(int(e)) + ")"
}

var (
	patUCS4BE    = []byte{0x00, 0x00, 0x00, 0x3C}
	patUCS4LE    = []byte{0x3C, 0x00, 0x00, 0x00}
	patUCS4_2143 = []byte{0x00, 0x00, 0x3C, 0x00}
	patUCS4_3412 = []byte{0x00, 0x3C, 0x00, 0x00}
	patEBCDIC    = []byte{0x4C, 0x6F, 0xA7, 0x94}
	patXMLDecl   = []byte{0x3C, 0x3F, 0x78, 0x6D}
	patUTF16LE4  = []byte{0x3C, 0x00, 0x3F, 0x00}
	patUTF16BE4  = []byte{0x00, 0x3C, 0x00, 0x3F}
	bomUTF8      = []byte{0xEF, 0xBB, 0xBF}
	bomUTF16LE   = []byte{0xFF, 0xFE}
	bomUTF16BE   = []byte{0xFE, 0xFF}
)

// Detect guesses the encoding of a document from its first two to four
// bytes. It returns CharEncodingNone when nothing matches, in which case
// callers should assume UTF-8.
func Detect(b []byte) CharEncoding {
	if len(b) >= 4 {
		switch {
		case bytes.HasPrefix(b, patUCS4BE):
			return CharEncodingUCS4BE
		case bytes.HasPrefix(b, patUCS4LE):
			return CharEncodingUCS4LE
		case bytes.HasPrefix(b, patUCS4_2143):
			return CharEncodingUCS4_2143
		case bytes.HasPrefix(b, patUCS4_3412):
			return CharEncodingUCS4_3412
		case bytes.HasPrefix(b, patEBCDIC):
			return CharEncodingEBCDIC
		case bytes.HasPrefix(b, patXMLDecl):
			return CharEncodingUTF8
		case bytes.HasPrefix(b, patUTF16LE4):
			return CharEncodingUTF16LE
		case bytes.HasPrefix(b, patUTF16BE4):
			return CharEncodingUTF16BE
		}
	}

	if len(b) >= 3 && bytes.HasPrefix(b, bomUTF8) {
		return CharEncodingUTF8
	}

	if len(b) >= 2 {
		switch {
		case bytes.HasPrefix(b, bomUTF16BE):
			return CharEncodingUTF16BE
		case bytes.HasPrefix(b, bomUTF16LE):
			return CharEncodingUTF16LE
		}
	}
	return CharEncodingNone
}

// BOMLength returns the length of the byte order mark b starts with,
// or 0 if there is none.
func BOMLength(b []byte) int {
	switch {
	case bytes.HasPrefix(b, bomUTF8):
		return len(bomUTF8)
	case bytes.HasPrefix(b, bomUTF16LE), bytes.HasPrefix(b, bomUTF16BE):
		return 2
	}
	return 0
}

// ParseCharEncoding maps an encoding name to its ID. Registered aliases
// are consulted first. Unknown names yield CharEncodingError.
func ParseCharEncoding(name string) CharEncoding {
	if alias, ok := GetAlias(name); ok {
		name = alias
	}

	switch strings.ToUpper(strings.TrimSpace(name)) {
	case "":
		return CharEncodingNone
	case "UTF-8", "UTF8":
		return CharEncodingUTF8
	// UTF-16 without a byte order mark defaults to little endian
	case "UTF-16", "UTF16", "UTF-16LE", "UTF16LE":
		return CharEncodingUTF16LE
	case "UTF-16BE", "UTF16BE":
		return CharEncodingUTF16BE
	case "ISO-10646-UCS-2", "UCS-2", "UCS2":
		return CharEncodingUCS2
	case "ISO-10646-UCS-4", "UCS-4", "UCS4":
		return CharEncodingUCS4BE
	case "ISO-8859-1", "ISO-LATIN-1", "ISO LATIN 1", "LATIN1", "L1":
		return CharEncoding8859_1
	case "ISO-8859-2", "ISO-LATIN-2", "ISO LATIN 2", "LATIN2", "L2":
		return CharEncoding8859_2
	case "ISO-8859-3":
		return CharEncoding8859_3
	case "ISO-8859-4":
		return CharEncoding8859_4
	case "ISO-8859-5":
		return CharEncoding8859_5
	case "ISO-8859-6":
		return CharEncoding8859_6
	case "ISO-8859-7":
		return CharEncoding8859_7
	case "ISO-8859-8":
		return CharEncoding8859_8
	case "ISO-8859-9":
		return CharEncoding8859_9
	case "ISO-2022-JP":
		return CharEncodingISO2022JP
	case "SHIFT_JIS", "SHIFT-JIS", "SJIS":
		return CharEncodingShiftJIS
	case "EUC-JP":
		return CharEncodingEUCJP
	case "ASCII", "US-ASCII":
		return CharEncodingASCII
	case "EBCDIC":
		return CharEncodingEBCDIC
	}
	return CharEncodingError
}
