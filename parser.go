package tagsoup

import (
	"context"
	"io"

	"github.com/lestrrat-go/tagsoup/sax"
)

// Parser holds the configuration for parsing whole documents. It can be
// used for any number of documents, but not concurrently.
type Parser struct {
	options []ParseOption
	sax     sax.Handler
}

// Parse parses b with the given options and reports events to h.
func Parse(ctx context.Context, b []byte, h sax.Handler, options ...ParseOption) (Status, error) {
	p := NewParser(options...)
	p.SetSAXHandler(h)
	return p.Parse(ctx, b)
}

func NewParser(options ...ParseOption) *Parser {
	return &Parser{
		options: options,
	}
}

// SetSAXHandler sets the handler events are reported to. It takes
// precedence over WithSAX.
func (p *Parser) SetSAXHandler(s sax.Handler) {
	p.sax = s
}

func (p *Parser) newContext(ctx context.Context) (*parserCtx, error) {
	pctx := newParserCtx(ctx)
	if err := pctx.configure(p.options); err != nil {
		return nil, err
	}
	if p.sax != nil {
		pctx.sax = p.sax
	}
	return pctx, nil
}

// Parse parses a complete document held in memory. It is the same as
// feeding b to a PushParser in one chunk, with terminate set.
func (p *Parser) Parse(ctx context.Context, b []byte) (Status, error) {
	ctx, span := StartSpan(ctx, "tagsoup.Parse")
	defer span.End()

	pp, err := p.NewPushParser(ctx, nil)
	if err != nil {
		return StatusUnsupportedEncoding, err
	}
	defer pp.Close()

	st, err := pp.Feed(b, true)
	if err != nil {
		TraceError(ctx, err, "parse failed", statusAttr(st))
	}
	return st, err
}

// NewPushParser creates a PushParser configured like p.
func (p *Parser) NewPushParser(ctx context.Context, initial []byte) (*PushParser, error) {
	pctx, err := p.newContext(ctx)
	if err != nil {
		return nil, err
	}
	pp := newPushParser(pctx, newInputStream(pctx.filename))
	pctx.in.push(initial)
	return pp, nil
}

func newPushParser(pctx *parserCtx, in *inputStream) *PushParser {
	pp := &PushParser{pctx: pctx}
	pctx.loc = pp
	if pctx.userData == nil {
		pctx.userData = pp
	}
	pctx.pushInput(in)
	return pp
}

// ParseReader parses a document read from r until io.EOF. The context is
// checked between reads: cancelling it stops the parse without
// EndDocument being reported.
func (p *Parser) ParseReader(ctx context.Context, r io.Reader) (Status, error) {
	ctx, span := StartSpan(ctx, "tagsoup.ParseReader")
	defer span.End()

	pctx, err := p.newContext(ctx)
	if err != nil {
		return StatusUnsupportedEncoding, err
	}
	in := newPullInputStream(pctx.filename, r)
	pp := newPushParser(pctx, in)
	defer pctx.release()

	for pctx.instate != psEOF {
		if err := ctx.Err(); err != nil {
			pctx.callbackFailed(err)
			return pctx.result()
		}
		done := in.pull() != nil
		if in.readErr != nil {
			pctx.fatal(errorf(ErrInputRead, "%s", in.readErr), KindResource, StatusInternalError)
			pctx.endDocument()
			break
		}
		// the stream already holds what was read
		if _, err := pp.Feed(nil, done); err != nil {
			break
		}
	}
	return pctx.result()
}
