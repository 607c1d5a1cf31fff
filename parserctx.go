package tagsoup

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/lestrrat-go/pdebug/v3"
	"github.com/lestrrat-go/tagsoup/encoding"
	"github.com/lestrrat-go/tagsoup/internal/intern"
	"github.com/lestrrat-go/tagsoup/internal/orderedmap"
	"github.com/lestrrat-go/tagsoup/internal/stack"
	"github.com/lestrrat-go/tagsoup/sax"
)

type parserState int

const (
	psEOF parserState = iota - 1
	psStart
	psMisc
	psProlog
	psStartTag
	psContent
	psEndTag
	psEpilog
)

func (s parserState) String() string {
	switch s {
	case psEOF:
		return "EOF"
	case psStart:
		return "start"
	case psMisc:
		return "misc"
	case psProlog:
		return "prolog"
	case psStartTag:
		return "start tag"
	case psContent:
		return "content"
	case psEndTag:
		return "end tag"
	case psEpilog:
		return "epilog"
	}
	return fmt.Sprintf("parserState(%d)", int(s))
}

// values of parserCtx.implied
const (
	impliedHTML = 1
	impliedHead = 3
	impliedBody = 10
)

const (
	defaultMaxNameLength = 100
	defaultDTDPublicID   = "-//W3C//DTD HTML 4.0 Transitional//EN"
	defaultDTDSystemID   = "http://www.w3.org/TR/REC-html40/loose.dtd"
)

// attribute is the sax.Attribute the parser hands out.
type attribute struct {
	name     string
	value    string
	hasValue bool
}

func (a *attribute) Name() string {
	return a.name
}

func (a *attribute) Value() string {
	return a.value
}

func (a *attribute) HasValue() bool {
	return a.hasValue
}

type parserCtx struct {
	ctx      context.Context
	sax      sax.Handler
	userData interface{}
	loc      sax.DocumentLocator

	flags         parseFlags
	forced        *encoding.Handler
	filename      string
	maxNameLength int
	maxBufferSize int

	inputs    stack.Stack[*inputStream]
	in        *inputStream
	names     stack.Stack[intern.Symbol]
	nodeInfos stack.Stack[nodeInfo]
	symbols   *intern.Table

	attrIndex *orderedmap.Map[string, int]
	attrs     []attribute
	attrList  []sax.Attribute
	scratch   []byte

	instate    parserState
	checkPos   int
	checkIndex int
	checkState int
	// waitInput stops the state machine until the next chunk arrives.
	waitInput bool

	implied       int
	depth         int
	sawDoctype    bool
	strictDoctype bool

	startedDocument bool
	endedDocument   bool
	wellFormed      bool
	disableSAX      bool
	aborted         bool
	stopErr         error
	fatalStatus     Status
	fatalErr        error
	errs            []error
}

func newParserCtx(ctx context.Context) *parserCtx {
	return &parserCtx{
		ctx:           ctx,
		flags:         defaultFlags,
		maxNameLength: defaultMaxNameLength,
		symbols:       intern.New(),
		attrIndex:     orderedmap.New[string, int](),
		wellFormed:    true,
	}
}

func (ctx *parserCtx) release() {
	for ctx.inputs.Len() > 0 {
		ctx.popInput()
	}
	ctx.instate = psEOF
	ctx.sax = nil
	ctx.userData = nil
}

func errorf(err error, format string, args ...interface{}) error {
	return fmt.Errorf("%w: %s", err, fmt.Sprintf(format, args...))
}

func errorKindAttr(k ErrorKind) slog.Attr {
	return slog.String("kind", k.String())
}

func encodingAttr(name string) slog.Attr {
	return slog.String("encoding", name)
}

func statusAttr(st Status) slog.Attr {
	return slog.String("status", st.String())
}

func (ctx *parserCtx) newError(err error, kind ErrorKind, level ErrorLevel) ErrParseError {
	e := ErrParseError{
		Err:      err,
		Filename: ctx.filename,
		Kind:     kind,
		Level:    level,
	}
	if in := ctx.in; in != nil && in.state != streamClosed {
		e.LineNumber = in.line
		e.Column = in.col
		e.Location = in.offset()
		e.Line = in.currentLine()
	}
	return e
}

func (ctx *parserCtx) record(e ErrParseError) {
	ctx.errs = append(ctx.errs, e)
	ctx.wellFormed = false
	TraceError(ctx.ctx, e.Err, "parse error", errorKindAttr(e.Kind))
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.Error(ctx.userData, e); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

// markupError records a problem with the document's structure. Unless
// recovery is off, parsing goes on.
func (ctx *parserCtx) markupError(err error) {
	e := ctx.newError(err, KindMarkup, LevelError)
	ctx.record(e)
	if !ctx.flags.IsSet(flagRecover) && ctx.stopErr == nil {
		ctx.stopErr = e
		ctx.disableSAX = true
	}
}

// encodingError records a problem with the byte stream. These never stop
// the parse: the input is repaired and parsing goes on.
func (ctx *parserCtx) encodingError(err error) {
	ctx.record(ctx.newError(err, KindEncoding, LevelError))
}

func (ctx *parserCtx) warning(err error) {
	e := ctx.newError(err, KindMarkup, LevelWarning)
	ctx.errs = append(ctx.errs, e)
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.Warning(ctx.userData, e); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

// fatal puts the parser in its terminal state.
func (ctx *parserCtx) fatal(err error, kind ErrorKind, st Status) {
	e := ctx.newError(err, kind, LevelFatal)
	ctx.errs = append(ctx.errs, e)
	ctx.wellFormed = false
	TraceError(ctx.ctx, err, "fatal parse error", errorKindAttr(kind))
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		// the parse is over either way
		_ = s.FatalError(ctx.userData, e)
	}
	if ctx.fatalErr == nil {
		ctx.fatalErr = e
		ctx.fatalStatus = st
	}
	ctx.disableSAX = true
	ctx.instate = psEOF
}

// callbackFailed handles an error returned by the handler.
func (ctx *parserCtx) callbackFailed(err error) {
	if err == nil || errors.Is(err, sax.ErrHandlerUnspecified) {
		return
	}
	if pdebug.Enabled {
		pdebug.Printf("handler aborted the parse: %s", err)
	}
	ctx.aborted = true
	ctx.disableSAX = true
	if ctx.fatalErr == nil {
		ctx.fatalErr = err
		ctx.fatalStatus = StatusAborted
	}
	ctx.instate = psEOF
}

func (ctx *parserCtx) encodingSwitched(name string) {
	if pdebug.Enabled {
		pdebug.Printf("switched input encoding to %s", name)
	}
	TraceEvent(ctx.ctx, "input encoding switched", encodingAttr(name))
}

// status summarizes what happened so far.
func (ctx *parserCtx) status() Status {
	if ctx.fatalErr != nil {
		return ctx.fatalStatus
	}
	if !ctx.wellFormed {
		return StatusRecoverableErrors
	}
	return StatusOK
}

func (ctx *parserCtx) startDocument() {
	if ctx.startedDocument {
		return
	}
	ctx.startedDocument = true
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.SetDocumentLocator(ctx.userData, ctx.loc); err != nil {
			ctx.callbackFailed(err)
		}
	}
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.StartDocument(ctx.userData); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

// endDocument fires once, for any document that was started, even when
// the parse was stopped by a markup error.
func (ctx *parserCtx) endDocument() {
	if ctx.endedDocument || !ctx.startedDocument {
		return
	}
	ctx.endedDocument = true
	if s := ctx.sax; s != nil && !ctx.aborted {
		if err := s.EndDocument(ctx.userData); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) startElement(name string, attrs []sax.Attribute) {
	if !ctx.sawDoctype && ctx.flags.IsSet(flagDefaultDTD) {
		ctx.sawDoctype = true
		ctx.internalSubset("html", defaultDTDPublicID, defaultDTDSystemID)
	}
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.StartElement(ctx.userData, name, attrs); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) endElement(name string) {
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.EndElement(ctx.userData, name); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) characters(b []byte) {
	if len(b) == 0 {
		return
	}
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.Characters(ctx.userData, b); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) ignorableWhitespace(b []byte) {
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.IgnorableWhitespace(ctx.userData, b); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

// rawText reports the content of a script or style element, as a CDATA
// block when the handler takes those.
func (ctx *parserCtx) rawText(b []byte) {
	if len(b) == 0 {
		return
	}
	s := ctx.sax
	if s == nil || ctx.disableSAX {
		return
	}
	err := s.CDATABlock(ctx.userData, b)
	if errors.Is(err, sax.ErrHandlerUnspecified) {
		err = s.Characters(ctx.userData, b)
	}
	if err != nil {
		ctx.callbackFailed(err)
	}
}

func (ctx *parserCtx) comment(b []byte) {
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.Comment(ctx.userData, b); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) processingInstruction(target, data string) {
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.ProcessingInstruction(ctx.userData, target, data); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) internalSubset(name, externalID, systemID string) {
	if s := ctx.sax; s != nil && !ctx.disableSAX {
		if err := s.InternalSubset(ctx.userData, name, externalID, systemID); err != nil {
			ctx.callbackFailed(err)
		}
	}
}

func (ctx *parserCtx) skipBlanks() int {
	in := ctx.in
	var n int
	for !in.done() && isBlankCh(in.peek(0)) {
		in.advance(1)
		n++
	}
	return n
}

// skipToGt consumes everything up to and including the next '>'.
func (ctx *parserCtx) skipToGt() {
	in := ctx.in
	i := bytes.IndexByte(in.buf[in.cur:], '>')
	if i < 0 {
		in.advance(in.avail())
		return
	}
	in.advance(i + 1)
}

func (ctx *parserCtx) intern(b []byte) string {
	return ctx.symbols.String(ctx.symbols.Intern(b))
}

func isHTMLNameStart(c byte) bool {
	return isASCIILetter(c) || c == '_' || c == ':' || c == '.'
}

func isHTMLNameChar(c byte) bool {
	return isASCIILetter(c) || isASCIIDigit(c) || c == ':' || c == '-' || c == '_' || c == '.'
}

// parseHTMLName reads a tag or attribute name and returns it lower cased
// and interned. Names longer than the configured maximum are truncated.
func (ctx *parserCtx) parseHTMLName() string {
	in := ctx.in
	if !isHTMLNameStart(in.peek(0)) {
		return ""
	}

	b := ctx.scratch[:0]
	var truncated bool
	for !in.done() {
		c := in.peek(0)
		size := 1
		switch {
		case isHTMLNameChar(c):
			c = toLower(c)
			if len(b) < ctx.maxNameLength {
				b = append(b, c)
			} else {
				truncated = true
			}
		case c >= utf8.RuneSelf:
			r, n := in.currentChar()
			if n <= 0 || !(unicode.IsLetter(r) || unicode.IsDigit(r) || unicode.In(r, unicode.Mn, unicode.Mc)) {
				size = 0
				break
			}
			size = n
			if len(b)+utf8.RuneLen(r) <= ctx.maxNameLength {
				b = utf8.AppendRune(b, unicode.ToLower(r))
			} else {
				truncated = true
			}
		default:
			size = 0
		}
		if size == 0 {
			break
		}
		in.advance(size)
	}
	ctx.scratch = b
	if truncated {
		ctx.markupError(errorf(ErrNameTooLong, "%s", b))
	}
	return ctx.intern(b)
}

func isNameStartRune(r rune) bool {
	return r == '_' || r == ':' || unicode.IsLetter(r)
}

func isNameRune(r rune) bool {
	switch r {
	case '.', '-', '_', ':':
		return true
	}
	return unicode.IsLetter(r) || unicode.IsDigit(r) ||
		unicode.In(r, unicode.Mn, unicode.Mc) ||
		r == 0xB7 || r == 0x2D0 || r == 0x2D1 || r == 0x387 || r == 0x640 || r == 0xE46 || r == 0xEC6 || r == 0x3005
}

// parseName reads an entity, processing instruction target or doctype
// name. Case is kept.
func (ctx *parserCtx) parseName() string {
	in := ctx.in
	c := in.peek(0)
	if isASCIILetter(c) || c == '_' || c == ':' {
		i := 1
		for in.cur+i < len(in.buf) && isHTMLNameChar(in.buf[in.cur+i]) {
			i++
		}
		if in.cur+i >= len(in.buf) || in.buf[in.cur+i] < utf8.RuneSelf {
			name := ctx.intern(in.buf[in.cur : in.cur+i])
			in.advance(i)
			return name
		}
	}
	return ctx.parseNameComplex()
}

func (ctx *parserCtx) parseNameComplex() string {
	in := ctx.in
	r, size := in.currentChar()
	if size <= 0 || !isNameStartRune(r) {
		return ""
	}
	start := in.cur
	for size > 0 && isNameRune(r) {
		in.nextChar()
		r, size = in.currentChar()
	}
	return ctx.intern(in.buf[start:in.cur])
}

// lookupEntity resolves a named reference.
func (ctx *parserCtx) lookupEntity(name string) (string, bool) {
	if r, ok := LookupEntity(name); ok {
		return string(r), true
	}
	if ctx.flags.IsSet(flagHTML5Entities) {
		return lookupHTML5Entity(name)
	}
	return "", false
}

// parseEntityRef parses "&name;". The ';' is only consumed when name is a
// known entity. An empty name means there was no name at all.
func (ctx *parserCtx) parseEntityRef() (name string, value string, ok bool) {
	in := ctx.in
	in.advance(1)
	name = ctx.parseName()
	if name == "" {
		ctx.markupError(ErrEntityRefNoName)
		return "", "", false
	}
	if in.peek(0) != ';' {
		ctx.markupError(errorf(ErrEntityRefSemicolon, "%s", name))
		return name, "", false
	}
	value, ok = ctx.lookupEntity(name)
	if ok {
		in.advance(1)
	}
	return name, value, ok
}

func hexValue(c byte) int {
	switch {
	case c >= '0' && c <= '9':
		return int(c - '0')
	case c >= 'a' && c <= 'f':
		return int(c-'a') + 10
	case c >= 'A' && c <= 'F':
		return int(c-'A') + 10
	}
	return -1
}

// parseCharRef parses "&#NNN;" or "&#xHHH;". ok is false when no digit
// follows, in which case nothing is consumed. Values that are not
// characters are reported and come back as U+FFFD.
func (ctx *parserCtx) parseCharRef() (rune, bool) {
	in := ctx.in
	base := 10
	skip := 2
	if c := in.peek(2); c == 'x' || c == 'X' {
		base = 16
		skip = 3
	}
	if first := in.peek(skip); (base == 16 && !isHexDigit(first)) || (base == 10 && !isASCIIDigit(first)) {
		ctx.markupError(errorf(ErrCharRefInvalid, "no digits"))
		return 0, false
	}
	in.advance(skip)

	var val int
	for !in.done() {
		c := in.peek(0)
		if c == ';' {
			in.advance(1)
			break
		}
		d := hexValue(c)
		if d < 0 || d >= base {
			ctx.markupError(errorf(ErrEntityRefSemicolon, "character reference"))
			break
		}
		val = val*base + d
		if val > 0x110000 {
			val = 0x110000
		}
		in.advance(1)
	}

	r := rune(val)
	if isXMLChar(r) {
		return r, true
	}
	if val >= 0x110000 {
		ctx.markupError(ErrCharRefTooLarge)
	} else {
		ctx.markupError(errorf(ErrCharRefInvalid, "value %d", val))
	}
	return utf8.RuneError, true
}

// parseReference handles a reference in content.
func (ctx *parserCtx) parseReference() {
	in := ctx.in
	if in.peek(1) == '#' {
		r, ok := ctx.parseCharRef()
		ctx.checkParagraph()
		if !ok {
			in.advance(2)
			ctx.characters([]byte("&#"))
			return
		}
		ctx.characters(utf8.AppendRune(ctx.scratch[:0], r))
		return
	}

	name, value, ok := ctx.parseEntityRef()
	ctx.checkParagraph()
	switch {
	case name == "":
		ctx.characters([]byte("&"))
	case !ok:
		b := append(ctx.scratch[:0], '&')
		ctx.characters(append(b, name...))
	default:
		ctx.characters([]byte(value))
	}
}

// areBlanks reports whether whitespace-only text can be dropped without
// changing the document: text between the end of the head and the body,
// or at the very end.
func (ctx *parserCtx) areBlanks(b []byte) bool {
	if !isAllBlank(b) {
		return false
	}
	in := ctx.in
	if in.done() {
		return true
	}
	if in.peek(0) != '<' {
		return false
	}
	switch ctx.currentName() {
	case "", "html", "head":
		return true
	case "body":
		return ctx.strictDoctype
	}
	return false
}

func (ctx *parserCtx) text(b []byte) {
	if ctx.areBlanks(b) {
		if ctx.flags.IsSet(flagKeepBlanks) {
			ctx.characters(b)
		} else {
			ctx.ignorableWhitespace(b)
		}
		return
	}
	ctx.checkParagraph()
	ctx.characters(b)
}

// scanText returns the end of the run of valid text starting at buf[i],
// stopping at any byte stop accepts. bad is set when the run ends at
// bytes that are not valid UTF-8 or not allowed in a document.
func scanText(buf []byte, i int, stop func(c byte) bool) (end int, bad bool) {
	for i < len(buf) {
		c := buf[i]
		if c < utf8.RuneSelf {
			if stop(c) {
				return i, false
			}
			if c < 0x20 && !isBlankCh(c) {
				return i, true
			}
			i++
			continue
		}
		r, size := utf8.DecodeRune(buf[i:])
		if r == utf8.RuneError && size <= 1 {
			return i, true
		}
		i += size
	}
	return i, false
}

func isTextStop(c byte) bool {
	return c == '<' || c == '&'
}

// recoverChar deals with the bad byte at the cursor: bytes that are not
// UTF-8 switch the input encoding, control characters are dropped. It
// reports false when it has to wait for more input first.
func (ctx *parserCtx) recoverChar() bool {
	in := ctx.in
	if c := in.peek(0); c < utf8.RuneSelf {
		ctx.markupError(errorf(ErrInvalidChar, "0x%X", c))
		in.advance(1)
		return true
	}
	if !ctx.fallbackEncoding(in.cur) {
		return false
	}
	if _, size := in.currentChar(); size < 0 {
		in.advance(1)
	}
	return true
}

// parseCharData reads text up to the next '<' or '&'.
func (ctx *parserCtx) parseCharData() {
	in := ctx.in
	for !in.done() {
		start := in.cur
		end, bad := scanText(in.buf, in.cur, isTextStop)
		if end > start {
			b := in.buf[start:end]
			in.advance(end - start)
			ctx.text(b)
		}
		if !bad || !ctx.recoverChar() {
			return
		}
	}
}

func hasPrefixFoldAt(b []byte, name string) bool {
	if len(b) < len(name) {
		return false
	}
	for i := 0; i < len(name); i++ {
		if toLower(b[i]) != name[i] {
			return false
		}
	}
	return true
}

// parseScript reads the content of a script or style element: everything
// up to its end tag is text.
func (ctx *parserCtx) parseScript() {
	in := ctx.in
	name := ctx.currentName()
	recovery := ctx.flags.IsSet(flagRecover)
	stop := func(c byte) bool { return c == '<' }

	start := in.cur
	i := in.cur
	for i < len(in.buf) {
		end, bad := scanText(in.buf, i, stop)
		i = end
		if bad {
			ctx.rawText(in.buf[start:i])
			in.advance(i - start)
			if !ctx.recoverChar() {
				return
			}
			start = in.cur
			i = in.cur
			continue
		}
		if i >= len(in.buf) {
			break
		}
		if i+1 < len(in.buf) && in.buf[i+1] == '/' {
			if recovery {
				if hasPrefixFoldAt(in.buf[i+2:], name) {
					break
				}
				ctx.markupError(errorf(ErrEmbeddedCloseTag, "%s", name))
			} else if i+2 < len(in.buf) && isASCIILetter(in.buf[i+2]) {
				break
			}
		}
		i++
	}
	ctx.rawText(in.buf[start:i])
	in.advance(i - start)
}

// parseComment reads "<!-- ... -->". An unterminated comment runs to the
// end of the input.
func (ctx *parserCtx) parseComment() {
	in := ctx.in
	in.advance(4)

	switch {
	case in.peek(0) == '>':
		ctx.markupError(ErrCommentAbrupt)
		in.advance(1)
		ctx.comment(nil)
		return
	case in.peek(0) == '-' && in.peek(1) == '>':
		ctx.markupError(ErrCommentAbrupt)
		in.advance(2)
		ctx.comment(nil)
		return
	}

	buf := in.buf[in.cur:]
	for i := 0; i+1 < len(buf); i++ {
		if buf[i] != '-' || buf[i+1] != '-' {
			continue
		}
		if i+2 < len(buf) && buf[i+2] == '>' {
			in.advance(i + 3)
			ctx.comment(buf[:i])
			return
		}
		if i+3 < len(buf) && buf[i+2] == '!' && buf[i+3] == '>' {
			ctx.markupError(ErrCommentBadClose)
			in.advance(i + 4)
			ctx.comment(buf[:i])
			return
		}
	}

	ctx.markupError(ErrCommentNotFinished)
	in.advance(len(buf))
	ctx.comment(buf)
}

// parsePI reads "<?target data>". HTML processing instructions end at
// the first '>'.
func (ctx *parserCtx) parsePI() {
	in := ctx.in
	in.advance(2)
	target := ctx.parseName()
	if target == "" {
		ctx.markupError(ErrPINotStarted)
		ctx.skipToGt()
		return
	}
	if in.peek(0) == '>' {
		in.advance(1)
		ctx.processingInstruction(target, "")
		return
	}
	if !isBlankCh(in.peek(0)) {
		ctx.markupError(errorf(ErrPISpaceRequired, "%s", target))
	}
	ctx.skipBlanks()

	i := bytes.IndexByte(in.buf[in.cur:], '>')
	if i < 0 {
		ctx.markupError(errorf(ErrPINotFinished, "%s", target))
		in.advance(in.avail())
		return
	}
	data := string(in.buf[in.cur : in.cur+i])
	in.advance(i + 1)
	ctx.processingInstruction(target, data)
}

// skipBogusComment skips "<!...>" constructs that are neither comments
// nor a doctype.
func (ctx *parserCtx) skipBogusComment() {
	ctx.markupError(ErrIncorrectlyOpened)
	ctx.skipToGt()
}

func isPubidChar(c byte) bool {
	if isASCIILetter(c) || isASCIIDigit(c) {
		return true
	}
	return strings.IndexByte(" \r\n-'()+,./:=?;!*#@$_%", c) >= 0
}

// parseLiteral reads a quoted literal. ok is false when there is no
// opening quote; unterminated is set when the input ran out first.
func (ctx *parserCtx) parseLiteral() (value string, ok bool, unterminated bool) {
	in := ctx.in
	q := in.peek(0)
	if q != '"' && q != '\'' {
		return "", false, false
	}
	in.advance(1)
	i := bytes.IndexByte(in.buf[in.cur:], q)
	if i < 0 {
		in.advance(in.avail())
		return "", true, true
	}
	value = string(in.buf[in.cur : in.cur+i])
	in.advance(i + 1)
	return value, true, false
}

// parseExternalID reads the PUBLIC or SYSTEM part of a doctype.
func (ctx *parserCtx) parseExternalID() (publicID, systemID string) {
	in := ctx.in
	switch {
	case in.hasPrefixFold("SYSTEM"):
		in.advance(6)
		if ctx.skipBlanks() == 0 {
			ctx.markupError(errorf(ErrSpaceRequired, "after 'SYSTEM'"))
		}
		v, ok, unterminated := ctx.parseLiteral()
		switch {
		case !ok:
			ctx.markupError(ErrSystemURIRequired)
		case unterminated:
			ctx.markupError(ErrSystemNotFinished)
		default:
			systemID = v
		}
	case in.hasPrefixFold("PUBLIC"):
		in.advance(6)
		if ctx.skipBlanks() == 0 {
			ctx.markupError(errorf(ErrSpaceRequired, "after 'PUBLIC'"))
		}
		v, ok, unterminated := ctx.parseLiteral()
		switch {
		case !ok:
			ctx.markupError(ErrPublicIDRequired)
		case unterminated:
			ctx.markupError(ErrPubidNotFinished)
		default:
			publicID = v
			for i := 0; i < len(v); i++ {
				if !isPubidChar(v[i]) {
					ctx.markupError(errorf(ErrPubidLiteralInvalid, "0x%X", v[i]))
					break
				}
			}
		}
		ctx.skipBlanks()
		if c := in.peek(0); c == '"' || c == '\'' {
			v, _, unterminated := ctx.parseLiteral()
			if unterminated {
				ctx.markupError(ErrSystemNotFinished)
			} else {
				systemID = v
			}
		}
	}
	return publicID, systemID
}

// parseDocTypeDecl reads "<!DOCTYPE name PUBLIC "..." "...">". The name
// keeps its case.
func (ctx *parserCtx) parseDocTypeDecl() {
	in := ctx.in
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	in.advance(len("<!DOCTYPE"))
	ctx.skipBlanks()

	name := ctx.parseName()
	if name == "" {
		ctx.markupError(ErrDocTypeNameRequired)
	}
	ctx.skipBlanks()
	publicID, systemID := ctx.parseExternalID()
	ctx.skipBlanks()

	if in.peek(0) != '>' {
		ctx.markupError(ErrDocTypeNotFinished)
	}
	ctx.skipToGt()

	ctx.sawDoctype = true
	ctx.strictDoctype = strings.EqualFold(publicID, "-//W3C//DTD HTML 4.01//EN") ||
		strings.EqualFold(publicID, "-//W3C//DTD HTML 4//EN")
	ctx.internalSubset(name, publicID, systemID)
}

// parseAttValue reads a quoted or unquoted attribute value, decoding
// references.
func (ctx *parserCtx) parseAttValue() string {
	in := ctx.in
	switch q := in.peek(0); q {
	case '"', '\'':
		in.advance(1)
		v := ctx.parseHTMLAttribute(q)
		if in.peek(0) != q {
			ctx.markupError(errorf(ErrAttrValueNotFinished, "%c expected", q))
		} else {
			in.advance(1)
		}
		return v
	}

	v := ctx.parseHTMLAttribute(0)
	if v == "" {
		ctx.markupError(ErrAttrValueRequired)
	}
	return v
}

// parseHTMLAttribute reads an attribute value up to stop, or for stop 0
// up to a blank or the end of the tag.
func (ctx *parserCtx) parseHTMLAttribute(stop byte) string {
	in := ctx.in
	var out []byte
	for !in.done() {
		c := in.peek(0)
		if c == stop {
			break
		}
		if stop == 0 && (c == '>' || isBlankCh(c)) {
			break
		}
		if c != '&' {
			out = append(out, c)
			in.advance(1)
			continue
		}

		if in.peek(1) == '#' {
			r, ok := ctx.parseCharRef()
			if !ok {
				out = append(out, '&', '#')
				in.advance(2)
				continue
			}
			out = utf8.AppendRune(out, r)
			continue
		}
		name, value, ok := ctx.parseEntityRef()
		switch {
		case name == "":
			out = append(out, '&')
		case !ok:
			out = append(out, '&')
			out = append(out, name...)
		default:
			out = append(out, value...)
		}
	}
	return string(out)
}

// parseAttribute reads name[=value].
func (ctx *parserCtx) parseAttribute() (name string, value string, hasValue bool) {
	in := ctx.in
	name = ctx.parseHTMLName()
	if name == "" {
		ctx.markupError(ErrAttrNameRequired)
		return "", "", false
	}
	ctx.skipBlanks()
	if in.peek(0) == '=' {
		in.advance(1)
		ctx.skipBlanks()
		value = ctx.parseAttValue()
		hasValue = true
	}
	return name, value, hasValue
}

func (ctx *parserCtx) atTagEnd() bool {
	in := ctx.in
	c := in.peek(0)
	return in.done() || c == '>' || (c == '/' && in.peek(1) == '>')
}

// parseStartTag reads a start tag up to, not including, its closing '>'
// or "/>". It reports the element name, or "" when the tag was dropped
// or discarded as misplaced.
func (ctx *parserCtx) parseStartTag() string {
	in := ctx.in
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	in.advance(1)

	name := ctx.parseHTMLName()
	if name == "" {
		ctx.markupError(errorf(ErrInvalidElementName, "start tag"))
		if c := in.peek(0); ctx.flags.IsSet(flagRecover) && (isBlankCh(c) || c == '<' || c == '=' || c == '>' || isASCIIDigit(c)) {
			ctx.checkParagraph()
			ctx.characters([]byte("<"))
			return ""
		}
		i := bytes.IndexByte(in.buf[in.cur:], '>')
		if i < 0 {
			i = in.avail()
		}
		in.advance(i)
		return ""
	}

	ctx.autoClose(name)
	ctx.checkImplied(name)

	var discard bool
	switch {
	case name == "html" && ctx.names.Len() > 0,
		name == "head" && ctx.names.Len() != 1,
		name == "body" && ctx.inStack("body"):
		ctx.markupError(errorf(ErrMisplacedTag, "<%s>", name))
		discard = true
		ctx.depth++
	}

	ctx.skipBlanks()
	ctx.attrIndex.Reset()
	ctx.attrs = ctx.attrs[:0]
	for !ctx.atTagEnd() {
		aname, value, hasValue := ctx.parseAttribute()
		if aname == "" {
			for !ctx.atTagEnd() && !isBlankCh(in.peek(0)) {
				in.advance(1)
			}
		} else if err := ctx.attrIndex.Set(aname, len(ctx.attrs)); err != nil {
			ctx.markupError(errorf(ErrAttrRedefined, "%s", aname))
		} else {
			ctx.attrs = append(ctx.attrs, attribute{name: aname, value: value, hasValue: hasValue})
		}
		ctx.skipBlanks()
	}

	if name == "meta" && len(ctx.attrs) > 0 {
		ctx.checkMeta(ctx.attrs)
	}
	if discard {
		return ""
	}

	parent := ctx.currentName()
	ctx.pushName(name)
	ctx.startElement(name, ctx.attributeList())

	info, known := LookupElement(name)
	if !known {
		ctx.markupError(errorf(ErrTagInvalid, "%s", name))
	}
	if ctx.flags.IsSet(flagPedantic) {
		ctx.checkPedantic(info, parent)
	}
	return name
}

func (ctx *parserCtx) attributeList() []sax.Attribute {
	if len(ctx.attrs) == 0 {
		return nil
	}
	ctx.attrList = ctx.attrList[:0]
	for _, i := range ctx.attrIndex.Range() {
		ctx.attrList = append(ctx.attrList, &ctx.attrs[i])
	}
	return ctx.attrList
}

// checkPedantic warns about valid but questionable markup.
func (ctx *parserCtx) checkPedantic(info *ElementDescriptor, parent string) {
	if info == nil {
		return
	}
	if info.Deprecated {
		ctx.warning(errorf(ErrDeprecated, "element %s", info.Name))
	}
	if p, ok := LookupElement(parent); ok && len(p.Subelements) > 0 && !p.AllowsChild(info.Name) {
		ctx.warning(errorf(ErrNotAllowedHere, "%s in %s", info.Name, parent))
	}
	for i := range ctx.attrs {
		allowed, deprecated := info.AttributeAllowed(ctx.attrs[i].name)
		switch {
		case !allowed:
			ctx.warning(errorf(ErrUnknownAttribute, "%s on %s", ctx.attrs[i].name, info.Name))
		case deprecated:
			ctx.warning(errorf(ErrDeprecated, "attribute %s on %s", ctx.attrs[i].name, info.Name))
		}
	}
}

// parseEndTag reads "</name>" and closes the matching open element along
// with everything opened after it.
func (ctx *parserCtx) parseEndTag() {
	in := ctx.in
	if pdebug.Enabled {
		g := pdebug.FuncMarker()
		defer g.End()
	}
	in.advance(2)

	name := ctx.parseHTMLName()
	if name == "" {
		ctx.markupError(errorf(ErrInvalidElementName, "end tag"))
		ctx.skipToGt()
		return
	}
	ctx.skipBlanks()
	if in.peek(0) != '>' {
		ctx.markupError(errorf(ErrEndTagGtRequired, "%s", name))
	}
	ctx.skipToGt()

	// end tags of the misplaced tags that were dropped
	if ctx.depth > 0 && (name == "html" || name == "body" || name == "head") {
		ctx.depth--
		return
	}

	if !ctx.inStack(name) {
		ctx.markupError(errorf(ErrUnexpectedEndTag, "%s", name))
		return
	}

	ctx.autoCloseOnClose(name)
	ctx.endElement(name)
	ctx.popName()
}
