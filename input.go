package tagsoup

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/internal/pool"
)

const (
	// minShrinkOffset is how far the cursor must have moved before the
	// consumed prefix of the decoded buffer is discarded.
	minShrinkOffset = 4096
	pullChunkSize   = 4096
	sniffLength     = 4
)

var (
	errEncodingFixed = errors.New("encoding can no longer be changed")
	replacementChar  = []byte("�")
	utf8BOM          = []byte{0xEF, 0xBB, 0xBF}
	convertPool      = pool.ByteSlice()
)

type streamState int

const (
	streamFresh streamState = iota
	streamSniffing
	streamConverting
	streamExhausted
	streamClosed
)

func (s streamState) String() string {
	switch s {
	case streamFresh:
		return "fresh"
	case streamSniffing:
		return "sniffing"
	case streamConverting:
		return "converting"
	case streamExhausted:
		return "exhausted"
	case streamClosed:
		return "closed"
	}
	return fmt.Sprintf("streamState(%d)", int(s))
}

// inputStream holds one source of bytes and its decoded, UTF-8 form.
//
// Bytes arrive through push (or are pulled from src) into raw. Once the
// encoding is known they are converted and appended to buf. A nil handler
// means the input is taken to be UTF-8 and raw bytes are moved to buf
// as-is; the reader validates them as they are consumed.
//
// buf[:cur] has been consumed. Nothing ever moves buf[cur:] without
// rebasing cur.
type inputStream struct {
	filename string
	src      io.Reader
	readErr  error

	handler *encoding.Handler
	owned   bool // handler is ours to Close
	state   streamState

	// fixed is set when the encoding came from a byte order mark, a
	// signature or the caller, and may not be changed by the document.
	fixed bool
	// switched is set once the single allowed switch has been used.
	switched bool
	// declared is set once the document declared an encoding.
	declared bool

	raw      []byte
	buf      []byte
	cur      int
	consumed int
	line     int
	col      int

	eof        bool
	pendingCR  bool
	bomSkipped bool

	// startErr is set when the very first bytes could not be decoded.
	// Conversion stops there.
	startErr error

	// onError receives conversion errors. It is called synchronously
	// from within push, pull and finish.
	onError func(error)
}

func newInputStream(filename string) *inputStream {
	return &inputStream{
		filename: filename,
		line:     1,
		col:      1,
	}
}

func newPullInputStream(filename string, src io.Reader) *inputStream {
	in := newInputStream(filename)
	in.src = src
	return in
}

// avail is the number of decoded bytes not yet consumed.
func (in *inputStream) avail() int {
	return len(in.buf) - in.cur
}

// offset is the position of the cursor counted from the first decoded
// byte of the document.
func (in *inputStream) offset() int {
	return in.consumed + in.cur
}

// pending is the amount of data held but not consumed, decoded or not.
func (in *inputStream) pending() int {
	return in.avail() + len(in.raw)
}

func (in *inputStream) push(b []byte) {
	if len(b) == 0 || in.state >= streamExhausted {
		return
	}
	in.raw = append(in.raw, b...)
	if in.state == streamConverting {
		in.convert()
	}
}

// pull reads the next chunk from src. It returns io.EOF once src is
// drained, after which the stream is finished.
func (in *inputStream) pull() error {
	if in.src == nil || in.eof {
		return io.EOF
	}

	chunk := convertPool.GetCapacity(pullChunkSize)
	defer convertPool.Put(chunk)

	n, err := in.src.Read(chunk[:pullChunkSize])
	if n > 0 {
		in.push(chunk[:n])
	}
	if err != nil {
		if !errors.Is(err, io.EOF) {
			in.readErr = err
		}
		in.finish()
		return io.EOF
	}
	return nil
}

// ensureLookahead makes sure at least n decoded bytes are available past
// the cursor, pulling from src when there is one. It reports whether they
// are. Running short is not an error: in push mode the caller waits for
// the next chunk.
func (in *inputStream) ensureLookahead(n int) bool {
	for in.avail() < n {
		if in.state != streamConverting || in.src == nil || in.eof {
			return false
		}
		if err := in.pull(); err != nil {
			return in.avail() >= n
		}
	}
	return true
}

// sniff settles the encoding. It is called once, when at least four bytes
// are buffered or no more input will arrive. forced, when non-nil, wins
// over anything found in the bytes.
func (in *inputStream) sniff(forced *encoding.Handler) error {
	if in.state != streamFresh {
		return nil
	}
	in.state = streamSniffing
	if pdebug.Enabled {
		g := pdebug.Marker("inputStream.sniff (%d bytes)", len(in.raw))
		defer g.End()
	}

	if forced != nil {
		in.fixed = true
		in.setHandler(forced)
	} else {
		switch ce := encoding.Detect(in.raw); ce {
		case encoding.CharEncodingNone:
		case encoding.CharEncodingUTF8:
			in.fixed = encoding.BOMLength(in.raw) > 0
		case encoding.CharEncodingEBCDIC:
			h, err := sniffEBCDIC(in.raw)
			if err != nil {
				return err
			}
			in.fixed = true
			in.setHandler(h)
		default:
			h, err := encoding.ForEncoding(ce)
			if err != nil {
				return fmt.Errorf("%w: %s", ErrEncodingUnsupported, ce)
			}
			in.fixed = true
			in.setHandler(h)
		}
	}

	in.state = streamConverting
	in.convert()
	if in.eof {
		in.state = streamExhausted
	}
	in.skipBOM()
	return nil
}

// sniffEBCDIC looks for an encoding declaration in the first line of an
// EBCDIC document and returns the handler it names, or a generic EBCDIC
// handler.
func sniffEBCDIC(raw []byte) (*encoding.Handler, error) {
	h, err := encoding.ForEncoding(encoding.CharEncodingEBCDIC)
	if err != nil {
		return nil, fmt.Errorf("%w: %s", ErrEncodingUnsupported, encoding.CharEncodingEBCDIC)
	}

	line, _, _ := h.ConvertFirstLine(nil, raw, 180)
	name := declaredEncoding(line)
	if name == "" {
		return h, nil
	}
	declared, err := encoding.Resolve(name)
	if err != nil || !declared.CanDecode() {
		return h, nil
	}
	_ = h.Close()
	return declared, nil
}

func (in *inputStream) setHandler(h *encoding.Handler) {
	if in.owned && in.handler != nil {
		_ = in.handler.Close()
	}
	in.handler = nil
	in.owned = false
	if h == nil || h.Kind() == encoding.KindUTF8 {
		return
	}
	in.handler = h
	in.owned = !h.Builtin()
}

// convert moves as much of raw as possible into buf.
func (in *inputStream) convert() {
	if in.handler == nil {
		in.appendText(in.raw)
		in.raw = in.raw[:0]
		in.flushCR()
		return
	}

	if in.startErr != nil {
		return
	}

	out := convertPool.Get()
	src := in.raw
	for len(src) > 0 {
		var n int
		var st encoding.Status
		out, n, st = in.handler.ToUTF8(out[:0], src, in.eof)
		in.appendText(out)
		src = src[n:]
		if st == encoding.StatusNeedMoreInput {
			break
		}
		if st == encoding.StatusMalformed {
			if in.consumed == 0 && len(in.buf) == 0 && !in.pendingCR && !in.switched {
				in.startErr = fmt.Errorf("%w (%s)", ErrInputConversion, in.handler.Name())
				break
			}
			if n == 0 {
				src = src[1:]
			}
			in.appendText(replacementChar)
			in.reportError(fmt.Errorf("%w (%s)", ErrInputConversion, in.handler.Name()))
			continue
		}
		if n == 0 {
			break
		}
	}
	convertPool.Put(out)

	in.raw = in.raw[:copy(in.raw, src)]
	in.flushCR()
}

func (in *inputStream) flushCR() {
	if in.eof && in.pendingCR {
		in.pendingCR = false
		in.buf = append(in.buf, '\n')
	}
}

func (in *inputStream) reportError(err error) {
	if in.onError != nil {
		in.onError(err)
	}
}

// skipBOM drops a leading U+FEFF. Only the very first call can have any
// effect.
func (in *inputStream) skipBOM() {
	if in.bomSkipped {
		return
	}
	in.bomSkipped = true
	if in.offset() == 0 && bytes.HasPrefix(in.buf, utf8BOM) {
		in.cur += len(utf8BOM)
	}
}

// isPassThrough reports whether bytes are still taken to be UTF-8 without
// conversion, which is the only mode the encoding may be switched from.
func (in *inputStream) isPassThrough() bool {
	return in.handler == nil
}

// switchEncoding makes h the stream's encoding from the cursor on. Output
// already consumed stays as it is; decoded bytes past the cursor are
// thrown away and produced again from their raw form. This is allowed once,
// and only while the stream is passing bytes through unconverted, so the
// decoded bytes past the cursor are still exactly the raw input.
func (in *inputStream) switchEncoding(h *encoding.Handler) error {
	if in.switched || !in.isPassThrough() {
		return errEncodingFixed
	}
	if h.Kind() == encoding.KindUTF8 {
		return nil
	}
	if pdebug.Enabled {
		pdebug.Printf("inputStream.switchEncoding %s (re-decoding %d bytes)", h.Name(), in.avail())
	}

	in.switched = true
	rest := make([]byte, 0, in.avail()+len(in.raw)+1)
	rest = append(rest, in.buf[in.cur:]...)
	if in.pendingCR {
		in.pendingCR = false
		rest = append(rest, '\r')
	}
	rest = append(rest, in.raw...)

	in.buf = in.buf[:in.cur]
	in.raw = rest
	in.setHandler(h)
	if in.state == streamConverting || in.state == streamExhausted {
		in.convert()
	}
	return nil
}

// finish marks the end of input and flushes whatever is left, including
// incomplete sequences, which are reported as malformed.
func (in *inputStream) finish() {
	if in.eof {
		return
	}
	in.eof = true
	if in.state == streamConverting {
		in.convert()
		in.state = streamExhausted
	}
}

// shrink discards the consumed prefix of the decoded buffer once it
// dominates the buffer. Callers must not hold slices of buf across it.
func (in *inputStream) shrink() {
	if in.cur < minShrinkOffset || in.cur <= len(in.buf)/2 {
		return
	}
	n := copy(in.buf, in.buf[in.cur:])
	in.buf = in.buf[:n]
	in.consumed += in.cur
	in.cur = 0
}

func (in *inputStream) close() {
	if in.state == streamClosed {
		return
	}
	if in.owned && in.handler != nil {
		_ = in.handler.Close()
	}
	in.handler = nil
	in.owned = false
	in.raw = nil
	in.buf = nil
	in.cur = 0
	in.state = streamClosed
}

// encodingName returns the name of the encoding the stream decodes with.
func (in *inputStream) encodingName() string {
	if in.handler == nil {
		return encoding.UTF8.Name()
	}
	return in.handler.Name()
}
