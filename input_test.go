package tagsoup

import (
	"bytes"
	"errors"
	"io"
	"strings"
	"testing"
	"testing/iotest"

	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/stretchr/testify/require"
)

func TestInputStreamSniff(t *testing.T) {
	testcases := []struct {
		name     string
		input    []byte
		encoding string
		fixed    bool
		text     string
	}{
		{name: "plain", input: []byte("<p>x"), encoding: "UTF-8", text: "<p>x"},
		{name: "UTF-8 BOM", input: []byte("\xEF\xBB\xBF<p>x"), encoding: "UTF-8", fixed: true, text: "<p>x"},
		{name: "UTF-16LE", input: []byte{0xFF, 0xFE, '<', 0, 'p', 0}, encoding: "UTF-16LE", fixed: true, text: "<p"},
		{name: "UTF-16BE", input: []byte{0xFE, 0xFF, 0, '<', 0, 'p'}, encoding: "UTF-16BE", fixed: true, text: "<p"},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			in := newInputStream("")
			in.push(tc.input)
			in.finish()
			require.NoError(t, in.sniff(nil), "sniff should succeed")
			require.Equal(t, tc.encoding, in.encodingName())
			require.Equal(t, tc.fixed, in.fixed)
			require.Equal(t, tc.text, string(in.buf[in.cur:]))
			require.Equal(t, streamExhausted, in.state)
		})
	}
}

func TestInputStreamBOMOnce(t *testing.T) {
	in := newInputStream("")
	in.push([]byte("\xEF\xBB\xBF\xEF\xBB\xBFx"))
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.skipBOM()
	require.Equal(t, "\uFEFFx", string(in.buf[in.cur:]), "only the leading byte order mark is skipped")
}

func TestInputStreamForced(t *testing.T) {
	in := newInputStream("")
	in.push([]byte("\xEF\xBB\xBFcaf\xe9"))
	require.NoError(t, in.sniff(encoding.Latin1), "sniff should succeed")
	require.True(t, in.fixed)
	require.Equal(t, "\u00ef\u00bb\u00bfcaf\u00e9", string(in.buf[in.cur:]), "a forced encoding wins over the byte order mark")
}

func TestInputStreamNewlines(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	for _, chunk := range []string{"a\r", "\nb\r", "c\r"} {
		in.push([]byte(chunk))
	}
	require.Equal(t, "a\nb\nc", string(in.buf))
	in.finish()
	require.Equal(t, "a\nb\nc\n", string(in.buf), "a trailing CR is flushed at the end of input")
}

func TestInputStreamSwitchEncoding(t *testing.T) {
	in := newInputStream("")
	in.push([]byte("ab\xe9"))
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.advance(1)

	require.NoError(t, in.switchEncoding(encoding.Latin1), "switchEncoding should succeed")
	require.Equal(t, "a", string(in.buf[:in.cur]), "consumed text is kept")
	require.Equal(t, "b\u00e9", string(in.buf[in.cur:]))

	in.push([]byte("\xe8"))
	require.Equal(t, "b\u00e9\u00e8", string(in.buf[in.cur:]), "later input is decoded too")

	require.ErrorIs(t, in.switchEncoding(encoding.ASCII), errEncodingFixed, "only one switch is allowed")
}

func TestInputStreamConversionErrors(t *testing.T) {
	in := newInputStream("")
	var errs []error
	in.onError = func(err error) {
		errs = append(errs, err)
	}
	require.NoError(t, in.sniff(encoding.ASCII), "sniff should succeed")
	in.push([]byte("a\xffb"))
	in.finish()
	require.Equal(t, "a\uFFFDb", string(in.buf))
	require.Len(t, errs, 1)
	require.True(t, errors.Is(errs[0], ErrInputConversion))
}

func TestInputStreamUndecodableStart(t *testing.T) {
	in := newInputStream("")
	var errs []error
	in.onError = func(err error) {
		errs = append(errs, err)
	}
	in.push([]byte("\x80\x81<p>"))
	require.NoError(t, in.sniff(encoding.ASCII), "sniff should succeed")
	require.ErrorIs(t, in.startErr, ErrInputConversion)
	require.Empty(t, in.buf, "nothing is decoded past a bad first byte")
	require.Empty(t, errs, "the failure is not reported as a repairable error")

	in.push([]byte("x"))
	require.Empty(t, in.buf, "conversion stays stopped")
}

func TestInputStreamShrink(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.push(bytes.Repeat([]byte("a\n"), minShrinkOffset))

	in.advance(minShrinkOffset + 2)
	offset := in.offset()
	line := in.line
	tail := string(in.buf[in.cur:])

	in.shrink()
	require.Equal(t, 0, in.cur, "the consumed prefix is discarded")
	require.Equal(t, offset, in.offset(), "the document offset survives compaction")
	require.Equal(t, line, in.line)
	require.Equal(t, tail, string(in.buf))

	// nothing to gain yet
	in.advance(10)
	in.shrink()
	require.Equal(t, 10, in.cur)
}

func TestInputStreamPull(t *testing.T) {
	in := newPullInputStream("", iotest.OneByteReader(strings.NewReader("<p>hello")))
	for in.state == streamFresh && len(in.raw) < sniffLength {
		require.NoError(t, in.pull())
	}
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	require.True(t, in.ensureLookahead(8), "the whole document is pulled on demand")
	require.False(t, in.ensureLookahead(9))
	require.ErrorIs(t, in.pull(), io.EOF)
	require.Equal(t, streamExhausted, in.state)
}

func TestInputStreamPooledBuffers(t *testing.T) {
	in := newPullInputStream("", strings.NewReader("<p>caf\xe9</p>"))
	for !in.eof {
		_ = in.pull()
	}
	require.NoError(t, in.sniff(encoding.Latin1), "sniff should succeed")
	require.Equal(t, "<p>caf\u00e9</p>", string(in.buf[in.cur:]))
	require.Empty(t, in.raw, "every byte was decoded")

	// read and conversion scratch goes back to the pool; reusing it
	// must not touch the decoded text
	for range 4 {
		scratch := convertPool.GetCapacity(pullChunkSize)
		scratch = append(scratch, bytes.Repeat([]byte{'#'}, pullChunkSize)...)
		convertPool.Put(scratch)
	}
	require.Equal(t, "<p>caf\u00e9</p>", string(in.buf[in.cur:]))
}

func TestInputStreamReadError(t *testing.T) {
	boom := errors.New("boom")
	in := newPullInputStream("", iotest.ErrReader(boom))
	require.ErrorIs(t, in.pull(), io.EOF)
	require.ErrorIs(t, in.readErr, boom)
	require.True(t, in.eof)
}

func TestReaderAdvance(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.push([]byte("ab\nc\u00e9\nx"))

	in.advance(3)
	require.Equal(t, 2, in.line)
	require.Equal(t, 1, in.col)

	r, size := in.nextChar()
	require.Equal(t, 'c', r)
	require.Equal(t, 1, size)
	r, size = in.nextChar()
	require.Equal(t, '\u00e9', r)
	require.Equal(t, 2, size)
	require.Equal(t, 3, in.col, "columns count characters")

	require.True(t, in.hasPrefix("\nx"))
	require.False(t, in.hasPrefix("\nxy"))
	in.advance(100)
	require.True(t, in.done())
	_, size = in.currentChar()
	require.Equal(t, 0, size)
}

func TestReaderInvalidChar(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.push([]byte("\xe9x"))
	_, size := in.currentChar()
	require.Equal(t, -1, size)
	require.Equal(t, []byte("\xe9x"), in.invalidBytes(in.cur))
}

func TestReaderPrefixFold(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.push([]byte("<!doctype html>"))
	require.True(t, in.hasPrefixFold("<!DOCTYPE"))
	require.False(t, in.hasPrefixFold("<!DOCTYPE HTML>X"))
}

func TestCurrentLine(t *testing.T) {
	in := newInputStream("")
	require.NoError(t, in.sniff(nil), "sniff should succeed")
	in.push([]byte("first\nsecond line\nthird"))
	in.advance(len("first\nsec"))
	require.Equal(t, "second line", in.currentLine())
}
