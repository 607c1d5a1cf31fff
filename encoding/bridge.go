package encoding

import (
	"errors"
	"slices"
	"strings"

	"golang.org/x/net/html/charset"
	xencoding "golang.org/x/text/encoding"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/htmlindex"
	"golang.org/x/text/encoding/ianaindex"
	"golang.org/x/text/encoding/japanese"
	"golang.org/x/text/encoding/korean"
	"golang.org/x/text/encoding/simplifiedchinese"
	"golang.org/x/text/encoding/traditionalchinese"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/encoding/unicode/utf32"
	"golang.org/x/text/transform"
)

// bridge hands conversion off to golang.org/x/text. The transformers are
// stateful (ISO-2022-JP shifts, UTF-32 byte order marks) so a bridge is
// never shared between streams.
type bridge struct {
	enc     xencoding.Encoding
	decoder *xencoding.Decoder
	encoder *xencoding.Encoder
	closed  bool
}

// legacyEncoding knows about names that neither the IANA index nor the
// WHATWG label table spell the way documents in the wild do.
func legacyEncoding(upper string) xencoding.Encoding {
	switch upper {
	case "EBCDIC", "EBCDIC-US", "IBM-037", "IBM037", "CP037":
		return charmap.CodePage037
	case "ISO-10646-UCS-4", "UCS-4", "UCS4", "UCS-4BE":
		return utf32.UTF32(utf32.BigEndian, utf32.IgnoreBOM)
	case "ISO-10646-UCS-4LE", "UCS-4LE":
		return utf32.UTF32(utf32.LittleEndian, utf32.IgnoreBOM)
	case "ISO-10646-UCS-2", "UCS-2", "UCS2":
		return unicode.UTF16(unicode.BigEndian, unicode.UseBOM)
	case "EUC-JP":
		return japanese.EUCJP
	case "SHIFT_JIS", "SHIFT-JIS", "SHIFTJIS", "SJIS", "CP932":
		return japanese.ShiftJIS
	case "JIS", "ISO-2022-JP":
		return japanese.ISO2022JP
	case "BIG5":
		return traditionalchinese.Big5
	case "EUC-KR":
		return korean.EUCKR
	case "HZ-GB2312", "HZ-GB-2312":
		return simplifiedchinese.HZGB2312
	case "GBK", "CP936":
		return simplifiedchinese.GBK
	case "GB18030":
		return simplifiedchinese.GB18030
	case "CP437":
		return charmap.CodePage437
	case "CP866":
		return charmap.CodePage866
	case "KOI8R", "KOI8-R":
		return charmap.KOI8R
	case "KOI8U", "KOI8-U":
		return charmap.KOI8U
	case "MACINTOSH":
		return charmap.Macintosh
	case "MACINTOSHCYRILLIC":
		return charmap.MacintoshCyrillic
	case "WINDOWS1250", "CP1250":
		return charmap.Windows1250
	case "WINDOWS1251", "CP1251":
		return charmap.Windows1251
	case "WINDOWS1252", "CP1252":
		return charmap.Windows1252
	case "WINDOWS1253", "CP1253":
		return charmap.Windows1253
	case "WINDOWS1254", "CP1254":
		return charmap.Windows1254
	case "WINDOWS1255", "CP1255":
		return charmap.Windows1255
	case "WINDOWS1256", "CP1256":
		return charmap.Windows1256
	case "WINDOWS1257", "CP1257":
		return charmap.Windows1257
	case "WINDOWS1258", "CP1258":
		return charmap.Windows1258
	case "WINDOWS874", "CP874":
		return charmap.Windows874
	case "XUSERDEFINED":
		return charmap.XUserDefined
	}
	return nil
}

// lookupSystem finds an x/text encoding for name, returning the name the
// resulting handler should carry.
func lookupSystem(name string) (xencoding.Encoding, string) {
	upper := strings.ToUpper(name)
	if e := legacyEncoding(upper); e != nil {
		return e, upper
	}

	if e, err := ianaindex.IANA.Encoding(name); err == nil && e != nil {
		if canonical, err := ianaindex.IANA.Name(e); err == nil {
			return e, canonical
		}
		return e, upper
	}

	// WHATWG labels, as used by <meta charset>
	if e, _ := charset.Lookup(name); e != nil && e != xencoding.Replacement {
		if canonical, err := htmlindex.Name(e); err == nil {
			return e, strings.ToUpper(canonical)
		}
		return e, upper
	}
	return nil, ""
}

func newBridgeHandler(name string) (*Handler, bool) {
	e, canonical := lookupSystem(name)
	if e == nil {
		return nil, false
	}
	return &Handler{
		name:   canonical,
		kind:   KindBridge,
		bridge: &bridge{enc: e},
	}, true
}

func (b *bridge) toUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	if b.closed {
		return dst, 0, StatusMalformed
	}
	if b.decoder == nil {
		b.decoder = b.enc.NewDecoder()
	}
	return transformAppend(b.decoder, dst, src, final)
}

func (b *bridge) fromUTF8(dst, src []byte, final bool) ([]byte, int, Status) {
	if b.closed {
		return dst, 0, StatusMalformed
	}
	if b.encoder == nil {
		b.encoder = xencoding.HTMLEscapeUnsupported(b.enc.NewEncoder())
	}
	return transformAppend(b.encoder, dst, src, final)
}

func (b *bridge) reset() {
	if b.decoder != nil {
		b.decoder.Reset()
	}
	if b.encoder != nil {
		b.encoder.Reset()
	}
}

func (b *bridge) close() error {
	b.decoder = nil
	b.encoder = nil
	b.closed = true
	return nil
}

// transformAppend runs t over src, growing dst as needed.
func transformAppend(t transform.Transformer, dst, src []byte, final bool) ([]byte, int, Status) {
	consumed := 0
	dst = slices.Grow(dst, len(src)+16)
	for {
		nDst, nSrc, err := t.Transform(dst[len(dst):cap(dst)], src[consumed:], final)
		dst = dst[:len(dst)+nDst]
		consumed += nSrc
		switch {
		case err == nil:
			return dst, consumed, StatusOK
		case errors.Is(err, transform.ErrShortDst):
			dst = slices.Grow(dst, cap(dst)+64)
		case errors.Is(err, transform.ErrShortSrc):
			if final {
				return dst, len(src), StatusMalformed
			}
			return dst, consumed, StatusNeedMoreInput
		default:
			if consumed < len(src) {
				consumed++
			}
			return dst, consumed, StatusMalformed
		}
	}
}
