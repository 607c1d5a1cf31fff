package s11n_test

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/s11n"
	"github.com/lestrrat-go/tagsoup/sax"
	"github.com/stretchr/testify/require"
)

type attr struct {
	name     string
	value    string
	hasValue bool
}

func (a attr) Name() string  { return a.name }
func (a attr) Value() string { return a.value }
func (a attr) HasValue() bool {
	return a.hasValue
}

type errWriter struct {
	err error
}

func (w errWriter) Write([]byte) (int, error) {
	return 0, w.err
}

func TestWriterEvents(t *testing.T) {
	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)

	require.NoError(t, w.StartDocument(nil))
	require.NoError(t, w.InternalSubset(nil, "html", "-//W3C//DTD HTML 4.01//EN", "http://www.w3.org/TR/html4/strict.dtd"))
	require.NoError(t, w.StartElement(nil, "p", []sax.Attribute{
		attr{name: "class", value: `a"b&c`, hasValue: true},
		attr{name: "disabled"},
	}))
	require.NoError(t, w.Characters(nil, []byte("1 < 2 & 3")))
	require.NoError(t, w.StartElement(nil, "br", nil))
	require.NoError(t, w.EndElement(nil, "br"))
	require.NoError(t, w.Comment(nil, []byte(" c ")))
	require.NoError(t, w.ProcessingInstruction(nil, "php", "echo 1;"))
	require.NoError(t, w.EndElement(nil, "p"))
	require.Empty(t, buf.String(), "output is buffered until the end of the document")
	require.NoError(t, w.EndDocument(nil))

	const expected = `<!DOCTYPE html PUBLIC "-//W3C//DTD HTML 4.01//EN" "http://www.w3.org/TR/html4/strict.dtd">` + "\n" +
		`<p class="a&quot;b&amp;c" disabled>1 &lt; 2 &amp; 3<br><!-- c --><?php echo 1;></p>`
	require.Equal(t, expected, buf.String())
}

func TestWriterDoctypeQuoting(t *testing.T) {
	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)
	require.NoError(t, w.InternalSubset(nil, "html", "", `about:"legacy"`))
	require.NoError(t, w.InternalSubset(nil, "html", "", ""))
	require.NoError(t, w.Flush())
	require.Equal(t, "<!DOCTYPE html SYSTEM 'about:\"legacy\"'>\n<!DOCTYPE html>\n", buf.String())
}

func TestWriterRawText(t *testing.T) {
	var buf bytes.Buffer
	w := s11n.NewWriter(&buf)
	require.NoError(t, w.StartElement(nil, "script", nil))
	require.NoError(t, w.Characters(nil, []byte("a<b && c")))
	require.NoError(t, w.EndElement(nil, "script"))
	require.NoError(t, w.Characters(nil, []byte("a<b")))
	require.NoError(t, w.Close())
	require.Equal(t, "<script>a<b && c</script>a&lt;b", buf.String())
}

func TestWriterEncoding(t *testing.T) {
	testcases := []struct {
		encoding string
		expected string
	}{
		{encoding: "UTF-8", expected: "<p>caf\u00e9</p>"},
		{encoding: "latin1", expected: "<p>caf\xe9</p>"},
		{encoding: "US-ASCII", expected: "<p>caf&#233;</p>"},
		{encoding: "HTML", expected: "<p>caf&eacute;</p>"},
		{encoding: "UTF-16BE", expected: "\x00<\x00p\x00>\x00c\x00a\x00f\x00\xe9\x00<\x00/\x00p\x00>"},
	}

	for _, tc := range testcases {
		t.Run(tc.encoding, func(t *testing.T) {
			var buf bytes.Buffer
			w := s11n.NewWriter(&buf)
			require.NoError(t, w.SetEncoding(tc.encoding), "SetEncoding should succeed")
			require.NoError(t, w.StartElement(nil, "p", nil))
			require.NoError(t, w.Characters(nil, []byte("caf\u00e9")))
			require.NoError(t, w.EndElement(nil, "p"))
			require.NoError(t, w.Close())
			require.Equal(t, tc.expected, buf.String())
		})
	}

	t.Run("unknown", func(t *testing.T) {
		w := s11n.NewWriter(&bytes.Buffer{})
		require.Error(t, w.SetEncoding("x-no-such-encoding"))
		require.Equal(t, "UTF-8", w.Encoding(), "a failed SetEncoding keeps the previous encoding")
	})
}

func TestEscape(t *testing.T) {
	in := []byte(`<a href="x">&</a>`)
	require.Equal(t, `&lt;a href="x"&gt;&amp;&lt;/a&gt;`, string(s11n.EscapeText(in)))
	require.Equal(t, `<a href="x">&</a>`, string(in), "the input is left alone")
	require.Equal(t, `say &quot;hi&quot; &amp; <go>`, s11n.EscapeAttrValue(`say "hi" & <go>`))
}

func TestRoundTrip(t *testing.T) {
	testcases := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "implied tags",
			input:    `<p class=x>a &amp; b<br>c`,
			expected: `<html><body><p class="x">a &amp; b<br>c</p></body></html>`,
		},
		{
			name:     "script",
			input:    `<script>if (a < b) x();</script>`,
			expected: `<html><head><script>if (a < b) x();</script></head></html>`,
		},
	}

	for _, tc := range testcases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			st, err := tagsoup.Parse(context.Background(), []byte(tc.input), s11n.NewWriter(&buf))
			require.NoError(t, err, "Parse should succeed")
			require.Equal(t, tagsoup.StatusRecoverableErrors, st, "the document leaves elements open")
			require.Equal(t, tc.expected, buf.String())
		})
	}
}

func TestWriteError(t *testing.T) {
	boom := errors.New("boom")
	w := s11n.NewWriter(errWriter{err: boom})
	st, err := tagsoup.Parse(context.Background(), []byte(`<p>hello`), w)
	require.ErrorIs(t, err, boom)
	require.Equal(t, tagsoup.StatusAborted, st)
	require.ErrorIs(t, w.StartDocument(nil), boom, "write errors are sticky")
}
