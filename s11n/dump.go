// Package s11n writes parse events back out as HTML.
package s11n

import (
	"io"

	"github.com/lestrrat-go/tagsoup"
	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/sax"
)

// flushThreshold is how much output is buffered before it is converted
// and written.
const flushThreshold = 4096

// Writer is a sax.Handler that serializes the events it receives as
// HTML. Output is produced in UTF-8 unless another encoding is selected
// with SetEncoding.
//
// A write error is sticky: it is returned from every later callback,
// which makes the parser abort.
type Writer struct {
	out     io.Writer
	enc     *encoding.Handler
	buf     []byte
	scratch []byte
	raw     int
	err     error
}

var _ sax.Handler = (*Writer)(nil)

func NewWriter(out io.Writer) *Writer {
	return &Writer{
		out: out,
		enc: encoding.UTF8,
	}
}

// SetEncoding selects the output encoding by name. Characters it cannot
// represent are written as character references. The "HTML" encoding
// writes ASCII, using named entities where they exist.
func (w *Writer) SetEncoding(name string) error {
	h, err := encoding.Resolve(name)
	if err != nil {
		return err
	}
	_ = w.enc.Close()
	w.enc = h
	return nil
}

// Encoding returns the name of the output encoding.
func (w *Writer) Encoding() string {
	return w.enc.Name()
}

// Close flushes pending output and releases the output encoding.
func (w *Writer) Close() error {
	err := w.Flush()
	_ = w.enc.Close()
	w.enc = encoding.UTF8
	return err
}

// Flush converts and writes whatever is buffered.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) == 0 {
		return nil
	}

	out := w.buf
	if w.enc.Kind() != encoding.KindUTF8 {
		out = w.convert()
	}
	if _, err := w.out.Write(out); err != nil {
		w.err = err
		return err
	}
	w.buf = w.buf[:0]
	return nil
}

func (w *Writer) convert() []byte {
	dst := w.scratch[:0]
	src := w.buf
	for len(src) > 0 {
		var n int
		var st encoding.Status
		dst, n, st = w.enc.FromUTF8(dst, src, true)
		if st != encoding.StatusMalformed {
			break
		}
		if n == 0 {
			n = 1
		}
		src = src[n:]
		dst = append(dst, '?')
	}
	w.scratch = dst
	return dst
}

func (w *Writer) done() error {
	if w.err != nil {
		return w.err
	}
	if len(w.buf) < flushThreshold {
		return nil
	}
	return w.Flush()
}

func isRawTextElement(name string) bool {
	return name == "script" || name == "style"
}

func (w *Writer) SetDocumentLocator(_ sax.Context, _ sax.DocumentLocator) error {
	return nil
}

func (w *Writer) StartDocument(_ sax.Context) error {
	w.raw = 0
	return w.err
}

func (w *Writer) EndDocument(_ sax.Context) error {
	return w.Flush()
}

func (w *Writer) InternalSubset(_ sax.Context, name, externalID, systemID string) error {
	w.buf = append(w.buf, "<!DOCTYPE "...)
	w.buf = append(w.buf, name...)
	switch {
	case externalID != "":
		w.buf = append(w.buf, " PUBLIC "...)
		w.buf = appendQuoted(w.buf, externalID)
		if systemID != "" {
			w.buf = append(w.buf, ' ')
			w.buf = appendQuoted(w.buf, systemID)
		}
	case systemID != "":
		w.buf = append(w.buf, " SYSTEM "...)
		w.buf = appendQuoted(w.buf, systemID)
	}
	w.buf = append(w.buf, ">\n"...)
	return w.done()
}

func (w *Writer) StartElement(_ sax.Context, name string, attrs []sax.Attribute) error {
	w.buf = append(w.buf, '<')
	w.buf = append(w.buf, name...)
	for _, attr := range attrs {
		w.buf = append(w.buf, ' ')
		w.buf = append(w.buf, attr.Name()...)
		if !attr.HasValue() {
			continue
		}
		w.buf = append(w.buf, '=', '"')
		w.buf = appendEscaped(w.buf, attrEscaper, []byte(attr.Value()))
		w.buf = append(w.buf, '"')
	}
	w.buf = append(w.buf, '>')
	if isRawTextElement(name) {
		w.raw++
	}
	return w.done()
}

func (w *Writer) EndElement(_ sax.Context, name string) error {
	if isRawTextElement(name) && w.raw > 0 {
		w.raw--
	}
	// elements without content have no end tag in HTML
	if info, ok := tagsoup.LookupElement(name); ok && info.Empty {
		return w.done()
	}
	w.buf = append(w.buf, '<', '/')
	w.buf = append(w.buf, name...)
	w.buf = append(w.buf, '>')
	return w.done()
}

func (w *Writer) Characters(_ sax.Context, ch []byte) error {
	if w.raw > 0 {
		w.buf = append(w.buf, ch...)
	} else {
		w.buf = appendEscaped(w.buf, textEscaper, ch)
	}
	return w.done()
}

func (w *Writer) IgnorableWhitespace(_ sax.Context, ch []byte) error {
	w.buf = append(w.buf, ch...)
	return w.done()
}

func (w *Writer) CDATABlock(_ sax.Context, value []byte) error {
	w.buf = append(w.buf, value...)
	return w.done()
}

func (w *Writer) Comment(_ sax.Context, value []byte) error {
	w.buf = append(w.buf, "<!--"...)
	w.buf = append(w.buf, value...)
	w.buf = append(w.buf, "-->"...)
	return w.done()
}

func (w *Writer) ProcessingInstruction(_ sax.Context, target, data string) error {
	w.buf = append(w.buf, "<?"...)
	w.buf = append(w.buf, target...)
	if data != "" {
		w.buf = append(w.buf, ' ')
		w.buf = append(w.buf, data...)
	}
	w.buf = append(w.buf, '>')
	return w.done()
}

func (w *Writer) Warning(_ sax.Context, _ error) error {
	return nil
}

func (w *Writer) Error(_ sax.Context, _ error) error {
	return nil
}

func (w *Writer) FatalError(_ sax.Context, _ error) error {
	return nil
}
