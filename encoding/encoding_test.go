package encoding

import (
	"errors"
	"testing"
	"unicode/utf8"

	"github.com/stretchr/testify/require"
)

func TestDetect(t *testing.T) {
	testcases := []struct {
		name  string
		input []byte
		want  CharEncoding
	}{
		{"utf-8 bom", []byte{0xEF, 0xBB, 0xBF, '<', 'h'}, CharEncodingUTF8},
		{"utf-16le bom", []byte{0xFF, 0xFE, '<', 0x00}, CharEncodingUTF16LE},
		{"utf-16be bom", []byte{0xFE, 0xFF, 0x00, '<'}, CharEncodingUTF16BE},
		{"utf-16le decl", []byte{0x3C, 0x00, 0x3F, 0x00}, CharEncodingUTF16LE},
		{"utf-16be decl", []byte{0x00, 0x3C, 0x00, 0x3F}, CharEncodingUTF16BE},
		{"ucs4be", []byte{0x00, 0x00, 0x00, 0x3C}, CharEncodingUCS4BE},
		{"ucs4le", []byte{0x3C, 0x00, 0x00, 0x00}, CharEncodingUCS4LE},
		{"ucs4 2143", []byte{0x00, 0x00, 0x3C, 0x00}, CharEncodingUCS4_2143},
		{"ucs4 3412", []byte{0x00, 0x3C, 0x00, 0x00}, CharEncodingUCS4_3412},
		{"ebcdic", []byte{0x4C, 0x6F, 0xA7, 0x94, 0x93}, CharEncodingEBCDIC},
		{"xml decl", []byte("<?xml version"), CharEncodingUTF8},
		{"plain html", []byte("<html>"), CharEncodingNone},
		{"short", []byte{0xEF}, CharEncodingNone},
		{"empty", nil, CharEncodingNone},
	}
	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, Detect(tc.input))
		})
	}
}

func TestBOMLength(t *testing.T) {
	require.Equal(t, 3, BOMLength([]byte{0xEF, 0xBB, 0xBF, 'a'}))
	require.Equal(t, 2, BOMLength([]byte{0xFF, 0xFE}))
	require.Equal(t, 0, BOMLength([]byte("abc")))
}

func TestParseCharEncoding(t *testing.T) {
	require.Equal(t, CharEncodingUTF8, ParseCharEncoding("utf8"))
	require.Equal(t, CharEncoding8859_1, ParseCharEncoding("ISO Latin 1"))
	require.Equal(t, CharEncodingShiftJIS, ParseCharEncoding("shift_jis"))
	require.Equal(t, CharEncodingNone, ParseCharEncoding(""))
	require.Equal(t, CharEncodingError, ParseCharEncoding("no-such-thing"))
	require.Equal(t, "ISO-8859-1", CharEncoding8859_1.Name())
}

// representable returns the bytes for every single byte value h can
// decode.
func representable(t *testing.T, h *Handler) []byte {
	t.Helper()
	var src []byte
	for i := 0; i < 256; i++ {
		_, n, st := h.ToUTF8(nil, []byte{byte(i)}, true)
		if st == StatusOK && n == 1 {
			src = append(src, byte(i))
		}
	}
	return src
}

func TestRoundTripSingleByte(t *testing.T) {
	names := []string{"ASCII", "ISO-8859-1", "ISO-8859-2", "ISO-8859-3", "ISO-8859-4", "ISO-8859-5", "ISO-8859-6", "ISO-8859-7", "ISO-8859-8", "ISO-8859-9", "ISO-8859-15"}
	for _, name := range names {
		t.Run(name, func(t *testing.T) {
			h, err := Resolve(name)
			require.NoError(t, err)
			require.True(t, h.Builtin())

			src := representable(t, h)
			require.NotEmpty(t, src)

			decoded, n, st := h.ToUTF8(nil, src, true)
			require.Equal(t, StatusOK, st)
			require.Equal(t, len(src), n)
			require.True(t, utf8.Valid(decoded))

			encoded, n, st := h.FromUTF8(nil, decoded, true)
			require.Equal(t, StatusOK, st)
			require.Equal(t, len(decoded), n)
			require.Equal(t, src, encoded)
		})
	}
}

func TestRoundTripUTF16(t *testing.T) {
	text := []byte("héllo wörld € \U0001F600 あ")
	for _, h := range []*Handler{UTF16LE, UTF16BE, UTF16, UTF8} {
		t.Run(h.Name(), func(t *testing.T) {
			encoded, n, st := h.FromUTF8(nil, text, true)
			require.Equal(t, StatusOK, st)
			require.Equal(t, len(text), n)

			decoded, n, st := h.ToUTF8(nil, encoded, true)
			require.Equal(t, StatusOK, st)
			require.Equal(t, len(encoded), n)
			require.Equal(t, text, decoded)

			again, _, _ := h.FromUTF8(nil, decoded, true)
			require.Equal(t, encoded, again)
		})
	}
}

func TestUTF16ByteOrderMark(t *testing.T) {
	t.Run("big endian mark", func(t *testing.T) {
		h, err := Resolve("UTF-16")
		require.NoError(t, err)
		require.False(t, h.Builtin(), "UTF-16 handlers keep their own byte order")
		defer h.Close()

		out, n, st := h.ToUTF8(nil, []byte{0xFE, 0xFF, 0x00, 0x68}, false)
		require.Equal(t, StatusOK, st)
		require.Equal(t, 4, n)
		require.Equal(t, "h", string(out))

		out, _, st = h.ToUTF8(nil, []byte{0x00, 0x69}, true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, "i", string(out), "the order is remembered across calls")
	})
	t.Run("little endian mark", func(t *testing.T) {
		h, err := Resolve("utf16")
		require.NoError(t, err)
		out, n, st := h.ToUTF8(nil, []byte{0xFF, 0xFE, 0x68, 0x00}, true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, 4, n)
		require.Equal(t, "h", string(out))
	})
	t.Run("no mark", func(t *testing.T) {
		h, err := Resolve("UTF-16")
		require.NoError(t, err)
		out, _, st := h.ToUTF8(nil, []byte{0x68, 0x00, 0x69, 0x00}, true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, "hi", string(out))
	})
	t.Run("mark split across calls", func(t *testing.T) {
		h, err := Resolve("UTF-16")
		require.NoError(t, err)
		_, n, st := h.ToUTF8(nil, []byte{0xFE}, false)
		require.Equal(t, StatusNeedMoreInput, st)
		require.Equal(t, 0, n)

		out, _, st := h.ToUTF8(nil, []byte{0xFE, 0xFF, 0x00, 0x68}, true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, "h", string(out))
	})
	t.Run("output", func(t *testing.T) {
		h, err := Resolve("UTF-16")
		require.NoError(t, err)
		out, n, st := h.FromUTF8(nil, []byte("hi"), false)
		require.Equal(t, StatusOK, st)
		require.Equal(t, 2, n)
		require.Equal(t, []byte{0xFF, 0xFE, 0x68, 0x00, 0x69, 0x00}, out)

		out, _, _ = h.FromUTF8(nil, []byte("!"), true)
		require.Equal(t, []byte{0x21, 0x00}, out, "the mark is written once")

		h.Reset()
		out, _, _ = h.FromUTF8(nil, []byte("!"), true)
		require.Equal(t, []byte{0xFF, 0xFE, 0x21, 0x00}, out)
	})
	t.Run("fresh handler per call", func(t *testing.T) {
		h1, err := Resolve("UTF-16")
		require.NoError(t, err)
		h2, err := Resolve("UTF-16")
		require.NoError(t, err)
		require.NotSame(t, h1, h2)
		require.NotSame(t, UTF16, h1)
	})
}

func TestPartialInput(t *testing.T) {
	t.Run("utf-8", func(t *testing.T) {
		src := []byte("ab\xc3")
		out, n, st := UTF8.ToUTF8(nil, src, false)
		require.Equal(t, StatusNeedMoreInput, st)
		require.Equal(t, 2, n)
		require.Equal(t, "ab", string(out))

		_, n, st = UTF8.ToUTF8(nil, src, true)
		require.Equal(t, StatusMalformed, st)
		require.Equal(t, 3, n)
	})
	t.Run("utf-16 odd byte", func(t *testing.T) {
		out, n, st := UTF16LE.ToUTF8(nil, []byte{'a', 0, 'b'}, false)
		require.Equal(t, StatusNeedMoreInput, st)
		require.Equal(t, 2, n)
		require.Equal(t, "a", string(out))
	})
	t.Run("utf-16 split surrogate", func(t *testing.T) {
		src, _, _ := UTF16BE.FromUTF8(nil, []byte("\U0001F600"), true)
		require.Len(t, src, 4)

		_, n, st := UTF16BE.ToUTF8(nil, src[:3], false)
		require.Equal(t, StatusNeedMoreInput, st)
		require.Equal(t, 0, n)

		out, n, st := UTF16BE.ToUTF8(nil, src, false)
		require.Equal(t, StatusOK, st)
		require.Equal(t, 4, n)
		require.Equal(t, "\U0001F600", string(out))
	})
}

func TestMalformed(t *testing.T) {
	out, n, st := UTF8.ToUTF8(nil, []byte("a\xffb"), true)
	require.Equal(t, StatusMalformed, st)
	require.Equal(t, 2, n, "the bad byte counts as consumed")
	require.Equal(t, "a", string(out))

	_, n, st = ASCII.ToUTF8(nil, []byte{'x', 0xE9}, true)
	require.Equal(t, StatusMalformed, st)
	require.Equal(t, 2, n)

	// lone low surrogate
	_, n, st = UTF16LE.ToUTF8(nil, []byte{0x00, 0xDC, 'a', 0x00}, true)
	require.Equal(t, StatusMalformed, st)
	require.Equal(t, 2, n)

	h, err := Resolve("ISO-8859-3")
	require.NoError(t, err)
	_, n, st = h.ToUTF8(nil, []byte{'a', 0xA5}, true)
	require.Equal(t, StatusMalformed, st, "0xA5 is not part of ISO-8859-3")
	require.Equal(t, 2, n)
}

func TestUnencodable(t *testing.T) {
	out, _, st := Latin1.FromUTF8(nil, []byte("café €"), true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "caf\xe9 &#8364;", string(out))

	out, _, st = ASCII.FromUTF8(nil, []byte("é"), true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "&#233;", string(out))

	h, err := Resolve("iso-8859-15")
	require.NoError(t, err)
	out, _, st = h.FromUTF8(nil, []byte("€¤"), true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "\xa4&#164;", string(out))

	out, _, st = HTML.FromUTF8(nil, []byte("<é☃>"), true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "<&eacute;&#9731;>", string(out))
	require.False(t, HTML.CanDecode())
}

func TestTableLookup(t *testing.T) {
	h, err := Resolve("greek")
	require.NoError(t, err)
	require.Equal(t, "ISO-8859-7", h.Name())
	require.Equal(t, KindTable, h.Kind())

	// U+03B1 GREEK SMALL LETTER ALPHA is 0xE1
	out, _, st := h.FromUTF8(nil, []byte("α"), true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, []byte{0xE1}, out)

	out, _, st = h.ToUTF8(nil, []byte{0xE1}, true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "α", string(out))
}

func TestNewTableHandler(t *testing.T) {
	var upper [128]rune
	upper[0] = '☃'
	upper[1] = 'é'
	h := NewTableHandler("X-SNOWMAN", upper, "SNOWMAN")

	out, n, st := h.ToUTF8(nil, []byte{'a', 0x80, 0x81}, true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, 3, n)
	require.Equal(t, "a☃é", string(out))

	out, _, _ = h.FromUTF8(nil, out, true)
	require.Equal(t, []byte{'a', 0x80, 0x81}, out)

	_, _, st = h.ToUTF8(nil, []byte{0x82}, true)
	require.Equal(t, StatusMalformed, st)

	Register(h)
	got, err := Resolve("snowman")
	require.NoError(t, err)
	require.Same(t, h, got)
}

func TestResolve(t *testing.T) {
	t.Run("built-in", func(t *testing.T) {
		for _, name := range []string{"utf-8", "UTF8", " latin1 ", "us-ascii", "utf-16be"} {
			h, err := Resolve(name)
			require.NoError(t, err, name)
			require.True(t, h.Builtin(), name)
		}
	})
	t.Run("bridged", func(t *testing.T) {
		h, err := Resolve("Shift_JIS")
		require.NoError(t, err)
		require.Equal(t, KindBridge, h.Kind())
		defer h.Close()

		out, n, st := h.ToUTF8(nil, []byte{0x82, 0xA0}, true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, 2, n)
		require.Equal(t, "あ", string(out))

		out, _, st = h.FromUTF8(nil, []byte("あé"), true)
		require.Equal(t, StatusOK, st)
		require.Equal(t, "\x82\xa0&#233;", string(out))
	})
	t.Run("bridged handlers are not shared", func(t *testing.T) {
		h1, err := Resolve("windows-1252")
		require.NoError(t, err)
		h2, err := Resolve("windows-1252")
		require.NoError(t, err)
		require.NotSame(t, h1, h2)
		require.NoError(t, h1.Close())
		require.NoError(t, h2.Close())
	})
	t.Run("whatwg label", func(t *testing.T) {
		h, err := Resolve("x-sjis")
		require.NoError(t, err)
		require.Equal(t, KindBridge, h.Kind())
	})
	t.Run("alias", func(t *testing.T) {
		require.NoError(t, AddAlias("ISO-8859-7", "my-greek"))
		defer DelAlias("my-greek")

		h, err := Resolve("MY-GREEK")
		require.NoError(t, err)
		require.Equal(t, "ISO-8859-7", h.Name())
	})
	t.Run("unsupported", func(t *testing.T) {
		_, err := Resolve("no-such-encoding")
		require.Error(t, err)
		require.True(t, errors.Is(err, ErrUnsupportedEncoding))

		_, err = Resolve("")
		require.ErrorIs(t, err, ErrEmptyName)
	})
}

func TestForEncoding(t *testing.T) {
	h, err := ForEncoding(Detect([]byte{0x4C, 0x6F, 0xA7, 0x94}))
	require.NoError(t, err)
	defer h.Close()

	out, _, st := h.ToUTF8(nil, []byte{0x4C, 0x6F, 0xA7, 0x94}, true)
	require.Equal(t, StatusOK, st)
	require.Equal(t, "<?xm", string(out))

	h, err = ForEncoding(CharEncodingNone)
	require.NoError(t, err)
	require.Same(t, UTF8, h)
}

func TestConvertFirstLine(t *testing.T) {
	src := make([]byte, 0, 200)
	for len(src) < 200 {
		src = append(src, "<meta charset=latin1>"...)
	}
	out, n, st := UTF8.ConvertFirstLine(nil, src, 0)
	require.Equal(t, StatusOK, st)
	require.Equal(t, FirstLineLength, n)
	require.Len(t, out, FirstLineLength)

	_, n, _ = UTF8.ConvertFirstLine(nil, src, 1000)
	require.Equal(t, 180, n)
}
