package tagsoup

import (
	"bytes"
	"context"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/sax"
)

// PushParser parses a document handed to it in chunks. Events are
// delivered from within Feed, as soon as the construct they describe is
// complete in the buffered input.
type PushParser struct {
	pctx *parserCtx
}

// NewPushParser creates a parser and buffers initial, which may be nil.
// Nothing is parsed until the first call to Feed.
func NewPushParser(ctx context.Context, initial []byte, options ...ParseOption) (*PushParser, error) {
	return NewParser(options...).NewPushParser(ctx, initial)
}

// configure applies options to a fresh context.
func (ctx *parserCtx) configure(options []ParseOption) error {
	for _, option := range options {
		switch option.Ident() {
		case identRecover{}:
			ctx.flags.Toggle(flagRecover, option.Value().(bool))
		case identKeepBlanks{}:
			ctx.flags.Toggle(flagKeepBlanks, option.Value().(bool))
		case identDefaultDTD{}:
			ctx.flags.Toggle(flagDefaultDTD, option.Value().(bool))
		case identIgnoreDeclaredEncoding{}:
			ctx.flags.Toggle(flagIgnoreEncoding, option.Value().(bool))
		case identNoImpliedTags{}:
			ctx.flags.Toggle(flagNoImplied, option.Value().(bool))
		case identHTML5Entities{}:
			ctx.flags.Toggle(flagHTML5Entities, option.Value().(bool))
		case identPedantic{}:
			ctx.flags.Toggle(flagPedantic, option.Value().(bool))
		case identFilename{}:
			ctx.filename = option.Value().(string)
		case identMaxNameLength{}:
			if v := option.Value().(int); v > 0 {
				ctx.maxNameLength = v
			}
		case identMaxBufferSize{}:
			ctx.maxBufferSize = option.Value().(int)
		case identSAX{}:
			ctx.sax = option.Value().(sax.Handler)
		case identUserData{}:
			ctx.userData = option.Value()
		case identEncoding{}:
			name := option.Value().(string)
			if name == "" {
				continue
			}
			h, err := encoding.Resolve(name)
			if err != nil {
				return errorf(ErrEncodingUnsupported, "%s", name)
			}
			if !h.CanDecode() {
				_ = h.Close()
				return errorf(ErrEncodingUnsupported, "%s", name)
			}
			ctx.forced = h
		}
	}
	return nil
}

// Feed hands the parser the next chunk of the document. terminate tells
// it no more input follows: open elements are closed and EndDocument is
// reported.
//
// The returned error is non-nil when the parse can not go on: a fatal
// error, a handler that returned an error, or a markup error while
// recovery is disabled. Recovered errors are only reflected in the
// status; see Errors for the details.
func (p *PushParser) Feed(b []byte, terminate bool) (st Status, err error) {
	ctx := p.pctx
	if ctx.instate == psEOF {
		if ctx.fatalErr != nil {
			return ctx.fatalStatus, ctx.fatalErr
		}
		return ctx.status(), ErrParserTerminated
	}

	defer func() {
		if r := recover(); r != nil {
			ctx.fatal(errorf(ErrInternal, "%v", r), KindInternal, StatusInternalError)
			ctx.endDocument()
			st, err = ctx.result()
		}
	}()

	in := ctx.in
	in.push(b)
	if terminate {
		in.finish()
	}
	ctx.parseTryOrFinish(terminate)
	if ctx.instate != psEOF {
		in.shrink()
		if limit := ctx.maxBufferSize; limit > 0 && in.pending() > limit {
			ctx.fatal(errorf(ErrBufferLimit, "%d bytes pending", in.pending()), KindResource, StatusOutOfMemory)
			ctx.endDocument()
		}
	}
	return ctx.result()
}

// Close releases the resources held by the parser. It does not finish
// the document: call Feed with terminate set for that.
func (p *PushParser) Close() error {
	p.pctx.release()
	return nil
}

// WellFormed reports whether no error was found so far.
func (p *PushParser) WellFormed() bool {
	return p.pctx.wellFormed
}

// Errors returns every error and warning recorded so far, in order.
// Each is an ErrParseError.
func (p *PushParser) Errors() []error {
	return p.pctx.errs
}

// Status summarizes the parse so far.
func (p *PushParser) Status() Status {
	return p.pctx.status()
}

// Encoding is the name of the encoding the input is being decoded with.
func (p *PushParser) Encoding() string {
	if in := p.pctx.in; in != nil {
		return in.encodingName()
	}
	return ""
}

// OpenElements returns the names of the elements currently open,
// outermost first.
func (p *PushParser) OpenElements() []string {
	return p.pctx.openElements()
}

func (p *PushParser) LineNumber() int {
	if in := p.pctx.in; in != nil {
		return in.line
	}
	return 0
}

func (p *PushParser) ColumnNumber() int {
	if in := p.pctx.in; in != nil {
		return in.col
	}
	return 0
}

func (p *PushParser) SystemID() string {
	return p.pctx.filename
}

func (ctx *parserCtx) result() (Status, error) {
	if ctx.fatalErr != nil {
		return ctx.fatalStatus, ctx.fatalErr
	}
	if ctx.stopErr != nil {
		return StatusRecoverableErrors, ctx.stopErr
	}
	return ctx.status(), nil
}

func (ctx *parserCtx) setState(s parserState) {
	if ctx.instate == psEOF {
		return
	}
	if pdebug.Enabled {
		pdebug.Printf("parser state %s -> %s", ctx.instate, s)
	}
	ctx.instate = s
	ctx.checkPos = -1
}

// checkStart returns where a lookup should resume. A lookup that ran out
// of input remembers how far it got; that is only good for as long as
// the cursor stays where it was.
func (ctx *parserCtx) checkStart() int {
	if pos := ctx.in.offset(); pos != ctx.checkPos {
		ctx.checkPos = pos
		ctx.checkIndex = 0
		ctx.checkState = 0
	}
	return ctx.checkIndex
}

// lookupByte finds c past the cursor and returns the length of the
// input up to and including it.
func (ctx *parserCtx) lookupByte(c byte) (int, bool) {
	buf := ctx.in.buf[ctx.in.cur:]
	i := ctx.checkStart()
	if j := bytes.IndexByte(buf[i:], c); j >= 0 {
		return i + j + 1, true
	}
	ctx.checkIndex = len(buf)
	return 0, false
}

const (
	gtNormal = iota
	gtAfterEq
	gtInDQ
	gtInSQ
)

// lookupGt finds the '>' ending a tag or declaration, skipping quoted
// strings. For tags quotes only count right after an '='; in
// declarations they count anywhere.
func (ctx *parserCtx) lookupGt(quotesAnywhere bool) (int, bool) {
	buf := ctx.in.buf[ctx.in.cur:]
	i := ctx.checkStart()
	st := ctx.checkState
	for ; i < len(buf); i++ {
		c := buf[i]
		switch st {
		case gtInDQ:
			if c == '"' {
				st = gtNormal
			}
		case gtInSQ:
			if c == '\'' {
				st = gtNormal
			}
		case gtAfterEq:
			switch {
			case c == '"':
				st = gtInDQ
			case c == '\'':
				st = gtInSQ
			case c == '>':
				return i + 1, true
			case isBlankCh(c):
			default:
				st = gtNormal
			}
		default:
			switch {
			case c == '>':
				return i + 1, true
			case c == '=':
				st = gtAfterEq
			case quotesAnywhere && c == '"':
				st = gtInDQ
			case quotesAnywhere && c == '\'':
				st = gtInSQ
			}
		}
	}
	ctx.checkIndex = i
	ctx.checkState = st
	return 0, false
}

// lookupCommentEnd finds the end of a comment starting at the cursor.
// "<!-->" and "<!--->" count as complete comments.
func (ctx *parserCtx) lookupCommentEnd() (int, bool) {
	buf := ctx.in.buf[ctx.in.cur:]
	i := ctx.checkStart()
	if i < 2 {
		i = 2
	}
	for ; i+2 < len(buf); i++ {
		if buf[i] != '-' || buf[i+1] != '-' {
			continue
		}
		if buf[i+2] == '>' {
			return i + 3, true
		}
		if i >= 4 && buf[i+2] == '!' {
			if i+3 >= len(buf) {
				break
			}
			if buf[i+3] == '>' {
				return i + 4, true
			}
		}
	}
	ctx.checkIndex = i
	return 0, false
}

// lookupRawEnd finds the end tag closing a script or style element. With
// recovery only "</name" does; otherwise "</" and any letter.
func (ctx *parserCtx) lookupRawEnd() bool {
	buf := ctx.in.buf[ctx.in.cur:]
	name := ctx.currentName()
	recovery := ctx.flags.IsSet(flagRecover)
	i := ctx.checkStart()
	for ; i+1 < len(buf); i++ {
		if buf[i] != '<' || buf[i+1] != '/' {
			continue
		}
		if recovery {
			if i+2+len(name) > len(buf) {
				break
			}
			if hasPrefixFoldAt(buf[i+2:], name) {
				return true
			}
			continue
		}
		if i+2 >= len(buf) {
			break
		}
		if isASCIILetter(buf[i+2]) {
			return true
		}
	}
	ctx.checkIndex = i
	return false
}

// validExtent makes sure the next n bytes are UTF-8 before a construct
// is parsed from them. When they are not, the input encoding falls back
// and false is returned: the construct has to be looked up again.
func (ctx *parserCtx) validExtent(n int) bool {
	in := ctx.in
	if !in.isPassThrough() {
		return true
	}
	if n > in.avail() {
		n = in.avail()
	}
	if utf8.Valid(in.buf[in.cur : in.cur+n]) {
		return true
	}
	i := in.cur
	for i < in.cur+n {
		r, size := utf8.DecodeRune(in.buf[i:])
		if r == utf8.RuneError && size <= 1 {
			break
		}
		i += size
	}
	if ctx.fallbackEncoding(i) {
		ctx.checkPos = -1
	}
	return false
}

// lookup runs find unless terminate is set, in which case whatever is
// buffered is taken to be the construct.
func (ctx *parserCtx) lookup(terminate bool, find func() (int, bool)) (int, bool) {
	if terminate {
		if n, ok := find(); ok {
			return n, true
		}
		return ctx.in.avail(), true
	}
	return find()
}

// parseTryOrFinish parses as many complete constructs as the buffered
// input holds. With terminate set everything is parsed and the document
// is finished.
func (ctx *parserCtx) parseTryOrFinish(terminate bool) {
	in := ctx.in
	if pdebug.Enabled {
		g := pdebug.Marker("parseTryOrFinish (state %s, %d bytes, terminate %t)", ctx.instate, in.avail(), terminate)
		defer g.End()
	}

	for ctx.instate != psEOF && ctx.stopErr == nil {
		if ctx.waitInput {
			ctx.waitInput = false
			return
		}
		if ctx.instate == psStart {
			if !ctx.parseStart(terminate) {
				return
			}
			continue
		}

		if in.avail() == 0 {
			if terminate {
				break
			}
			return
		}

		var progress bool
		switch ctx.instate {
		case psMisc, psProlog, psEpilog:
			progress = ctx.parseMisc(terminate)
		case psStartTag:
			progress = ctx.parseStartTagState(terminate)
		case psContent:
			progress = ctx.parseContentState(terminate)
		case psEndTag:
			progress = ctx.parseEndTagState(terminate)
		}
		if !progress {
			return
		}
	}

	if ctx.instate == psEOF && !ctx.aborted {
		ctx.endDocument()
		return
	}
	ctx.finishDocument()
}

// finishDocument closes whatever is still open and ends the document.
func (ctx *parserCtx) finishDocument() {
	if ctx.aborted {
		ctx.instate = psEOF
		return
	}
	if info, ok := ctx.nodeInfos.Peek(); ok && ctx.stopErr == nil {
		// recorded without stopping: what is open still gets closed
		err := errorf(ErrPrematureEnd, "%s opened at line %d", ctx.currentName(), info.line)
		ctx.record(ctx.newError(err, KindMarkup, LevelError))
	}
	ctx.autoCloseOnEnd()
	ctx.endDocument()
	ctx.instate = psEOF
}

// parseStart settles the encoding and starts the document. It reports
// whether the state machine may go on.
func (ctx *parserCtx) parseStart(terminate bool) bool {
	in := ctx.in
	if in.state == streamFresh {
		if len(in.raw) < sniffLength && !terminate {
			return false
		}
		if err := in.sniff(ctx.forced); err != nil {
			ctx.fatal(err, KindEncoding, StatusUnsupportedEncoding)
			return false
		}
	}
	if err := in.startErr; err != nil {
		// not a single character could be decoded
		ctx.fatal(err, KindEncoding, StatusUnsupportedEncoding)
		return false
	}

	if !ctx.startedDocument {
		if in.avail() == 0 && in.offset() == 0 {
			if terminate {
				ctx.markupError(ErrEmptyDocument)
				ctx.setState(psEOF)
			}
			return false
		}
		ctx.startDocument()
		if ctx.aborted {
			return false
		}
	}

	ctx.skipBlanks()
	if in.avail() == 0 {
		if terminate {
			ctx.markupError(ErrEmptyDocument)
			ctx.setState(psEOF)
			return true
		}
		return false
	}
	if in.hasPrefix("<!") && in.avail() < 9 && !terminate {
		return false
	}
	if in.hasPrefixFold("<!DOCTYPE") {
		n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupGt(true) })
		if !ok {
			return false
		}
		if !ctx.validExtent(n) {
			return true
		}
		ctx.parseDocTypeDecl()
		ctx.setState(psProlog)
		return true
	}
	ctx.setState(psMisc)
	return true
}

// parseMisc handles what may come before the first element or after the
// last one: blanks, comments, processing instructions and doctypes.
func (ctx *parserCtx) parseMisc(terminate bool) bool {
	in := ctx.in
	ctx.skipBlanks()
	avail := in.avail()
	if avail == 0 {
		return terminate
	}
	if avail < 2 && !terminate {
		return false
	}

	switch {
	case in.hasPrefix("<!--"):
		return ctx.parseCommentState(terminate)
	case in.hasPrefix("<?"):
		return ctx.parsePIState(terminate)
	case in.hasPrefix("<!"):
		if avail < 9 && !terminate {
			return false
		}
		if !in.hasPrefixFold("<!DOCTYPE") {
			return ctx.parseBogusState(terminate)
		}
		n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupGt(true) })
		if !ok {
			return false
		}
		if !ctx.validExtent(n) {
			return true
		}
		if ctx.instate != psMisc {
			ctx.markupError(ErrDocTypeMisplaced)
		}
		ctx.parseDocTypeDecl()
		if ctx.instate == psMisc {
			ctx.setState(psProlog)
		}
		return true
	}

	if ctx.instate == psEpilog {
		ctx.markupError(ErrExtraContent)
		ctx.setState(psContent)
		return true
	}
	ctx.setState(psStartTag)
	return true
}

func (ctx *parserCtx) parseCommentState(terminate bool) bool {
	if ctx.in.avail() < 5 && !terminate {
		return false
	}
	n, ok := ctx.lookup(terminate, ctx.lookupCommentEnd)
	if !ok {
		return false
	}
	if !ctx.validExtent(n) {
		return true
	}
	ctx.parseComment()
	return true
}

func (ctx *parserCtx) parsePIState(terminate bool) bool {
	n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupByte('>') })
	if !ok {
		return false
	}
	if !ctx.validExtent(n) {
		return true
	}
	ctx.parsePI()
	return true
}

func (ctx *parserCtx) parseBogusState(terminate bool) bool {
	n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupByte('>') })
	if !ok {
		return false
	}
	if !ctx.validExtent(n) {
		return true
	}
	ctx.skipBogusComment()
	return true
}

func (ctx *parserCtx) parseStartTagState(terminate bool) bool {
	in := ctx.in
	if in.avail() < 2 && !terminate {
		return false
	}
	if in.peek(0) != '<' {
		ctx.setState(psContent)
		return true
	}
	if in.peek(1) == '/' {
		ctx.setState(psEndTag)
		return true
	}

	n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupGt(false) })
	if !ok {
		return false
	}
	if !ctx.validExtent(n) {
		return true
	}

	name := ctx.parseStartTag()
	switch {
	case name == "":
		if in.hasPrefix("/>") {
			in.advance(2)
		} else if in.peek(0) == '>' {
			in.advance(1)
		}
	case in.hasPrefix("/>"):
		in.advance(2)
		ctx.endElement(name)
		ctx.popName()
	case in.peek(0) == '>':
		in.advance(1)
		if info, ok := LookupElement(name); ok && info.Empty {
			ctx.endElement(name)
			ctx.popName()
		}
	default:
		ctx.markupError(errorf(ErrStartTagGtRequired, "%s", name))
		if ctx.currentName() == name {
			ctx.endElement(name)
			ctx.popName()
		}
	}
	ctx.setState(psContent)
	return true
}

func (ctx *parserCtx) parseEndTagState(terminate bool) bool {
	n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupByte('>') })
	if !ok {
		return false
	}
	if !ctx.validExtent(n) {
		return true
	}
	ctx.parseEndTag()
	if ctx.names.Len() == 0 {
		ctx.setState(psEpilog)
	} else {
		ctx.setState(psContent)
	}
	return true
}

// parseContentState handles one construct inside the document.
func (ctx *parserCtx) parseContentState(terminate bool) bool {
	in := ctx.in
	avail := in.avail()

	if ctx.inRawText() {
		if !terminate && !ctx.lookupRawEnd() {
			return false
		}
		ctx.parseScript()
		if in.hasPrefix("</") {
			ctx.setState(psEndTag)
		}
		return true
	}

	if in.peek(0) == '<' {
		if avail < 2 && !terminate {
			return false
		}
		switch c := in.peek(1); {
		case c == '!':
			if avail < 4 && !terminate {
				return false
			}
			if in.hasPrefix("<!--") {
				return ctx.parseCommentState(terminate)
			}
			if avail < 9 && !terminate {
				return false
			}
			if !in.hasPrefixFold("<!DOCTYPE") {
				return ctx.parseBogusState(terminate)
			}
			n, ok := ctx.lookup(terminate, func() (int, bool) { return ctx.lookupGt(true) })
			if !ok {
				return false
			}
			if !ctx.validExtent(n) {
				return true
			}
			ctx.markupError(ErrDocTypeMisplaced)
			ctx.parseDocTypeDecl()
			return true
		case c == '?':
			return ctx.parsePIState(terminate)
		case c == '/':
			ctx.setState(psEndTag)
			return true
		case isHTMLNameStart(c):
			ctx.setState(psStartTag)
			return true
		}
		ctx.markupError(errorf(ErrInvalidElementName, "start tag"))
		in.advance(1)
		ctx.checkParagraph()
		ctx.characters([]byte("<"))
		return true
	}

	if !terminate {
		if _, ok := ctx.lookupByte('<'); !ok {
			return false
		}
	}
	if in.peek(0) == '&' {
		ctx.parseReference()
	} else {
		ctx.parseCharData()
	}
	return true
}
