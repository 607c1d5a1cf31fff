package tagsoup

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrAttrRedefined        = errors.New("attribute redefined")
	ErrAttrValueNotFinished = errors.New("attribute value not finished")
	ErrAttrValueRequired    = errors.New("attribute has no value")
	ErrAttrNameRequired     = errors.New("error parsing attribute name")
	ErrCharRefInvalid       = errors.New("invalid character reference")
	ErrCharRefTooLarge      = errors.New("character reference value too large")
	ErrCommentNotFinished   = errors.New("comment not terminated")
	ErrCommentAbrupt        = errors.New("comment abruptly ended")
	ErrCommentBadClose      = errors.New("comment incorrectly closed by '--!>'")
	ErrDocTypeNameRequired  = errors.New("no DOCTYPE name")
	ErrDocTypeNotFinished   = errors.New("DOCTYPE improperly terminated")
	ErrDocTypeMisplaced     = errors.New("misplaced DOCTYPE declaration")
	ErrDeprecated           = errors.New("deprecated")
	ErrEmbeddedCloseTag     = errors.New("element embeds close tag")
	ErrEmptyDocument        = errors.New("document is empty")
	ErrEncodingUnsupported  = errors.New("unsupported encoding")
	ErrEncodingWrongMeta    = errors.New("wrong encoding meta")
	ErrEntityRefSemicolon   = errors.New("entity reference: expecting ';'")
	ErrEntityRefNoName      = errors.New("entity reference: no name")
	ErrEndTagGtRequired     = errors.New("end tag: expected '>'")
	ErrExtraContent         = errors.New("extra content at the end of the document")
	ErrIncorrectlyOpened    = errors.New("incorrectly opened comment")
	ErrInputConversion      = errors.New("input conversion failed due to input error")
	ErrInputRead            = errors.New("failed to read input")
	ErrInvalidChar          = errors.New("invalid char")
	ErrInvalidElementName   = errors.New("invalid element name")
	ErrInvalidUTF8          = errors.New("input is not proper UTF-8, indicate encoding")
	ErrMisplacedTag         = errors.New("misplaced tag")
	ErrNameTooLong          = errors.New("name is too long")
	ErrNotAllowedHere       = errors.New("element not allowed here")
	ErrPINotFinished        = errors.New("processing instruction never ends")
	ErrPINotStarted         = errors.New("processing instruction not started correctly")
	ErrPISpaceRequired      = errors.New("processing instruction: space expected")
	ErrParserTerminated     = errors.New("parser already terminated")
	ErrPrematureEnd         = errors.New("premature end of data")
	ErrPubidLiteralInvalid  = errors.New("invalid char in PubidLiteral")
	ErrPubidNotFinished     = errors.New("unfinished PubidLiteral")
	ErrPublicIDRequired     = errors.New("PUBLIC, no public identifier")
	ErrSpaceRequired        = errors.New("space required")
	ErrStartTagGtRequired   = errors.New("couldn't find end of start tag")
	ErrSystemNotFinished    = errors.New("unfinished SystemLiteral")
	ErrSystemURIRequired    = errors.New("SYSTEM, no URI")
	ErrTagInvalid           = errors.New("tag invalid")
	ErrTagNameMismatch      = errors.New("opening and ending tag mismatch")
	ErrUnexpectedEndTag     = errors.New("unexpected end tag")
	ErrUnknownAttribute     = errors.New("unknown attribute")
	ErrBufferLimit          = errors.New("input buffer limit exceeded")
	ErrInternal             = errors.New("internal parser error")
)

// ErrorKind classifies what went wrong.
type ErrorKind int

const (
	// KindMarkup errors are problems with the document structure.
	// They are always recoverable.
	KindMarkup ErrorKind = iota
	// KindEncoding errors are problems with the byte stream: unknown
	// encodings, malformed sequences.
	KindEncoding
	// KindResource errors are fatal: the parser refuses further work.
	KindResource
	// KindInternal errors are defects in the parser itself.
	KindInternal
)

func (k ErrorKind) String() string {
	switch k {
	case KindMarkup:
		return "markup"
	case KindEncoding:
		return "encoding"
	case KindResource:
		return "resource"
	case KindInternal:
		return "internal"
	}
	return "kind(" + strconv.Itoa(int(k)) + ")"
}

// ErrorLevel is the severity an error is reported with.
type ErrorLevel int

const (
	LevelWarning ErrorLevel = iota
	LevelError
	LevelFatal
)

func (l ErrorLevel) String() string {
	switch l {
	case LevelWarning:
		return "warning"
	case LevelError:
		return "error"
	case LevelFatal:
		return "fatal"
	}
	return "level(" + strconv.Itoa(int(l)) + ")"
}

// ErrParseError is the error recorded for every problem found in a
// document. Err is one of the sentinel errors above, possibly wrapped
// with detail.
type ErrParseError struct {
	Column     int
	Err        error
	Filename   string
	Kind       ErrorKind
	Level      ErrorLevel
	Line       string
	LineNumber int
	Location   int
}

func (e ErrParseError) Error() string {
	var prefix string
	if e.Filename != "" {
		prefix = e.Filename + ": "
	}
	if e.Line == "" {
		return fmt.Sprintf("%s%s at line %d, column %d", prefix, e.Err, e.LineNumber, e.Column)
	}
	return fmt.Sprintf(
		"%s%s at line %d, column %d\n -> '%s' <-- around here",
		prefix,
		e.Err,
		e.LineNumber,
		e.Column,
		e.Line,
	)
}

func (e ErrParseError) Unwrap() error {
	return e.Err
}
