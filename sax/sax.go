// Package sax defines the callbacks the tagsoup parser reports parse
// events through.
package sax

import "errors"

// ErrHandlerUnspecified is returned when there is no handler
// registered for that particular event callback. This is not
// a fatal error per se: the parser treats it as "not interested".
var ErrHandlerUnspecified = errors.New("handler unspecified")

// Context is the opaque value passed as the first argument of every
// callback. It is whatever was registered with the parser as user
// data, or the parser's DocumentLocator if nothing was.
type Context interface{}

// DocumentLocator reports the position of the event being delivered.
type DocumentLocator interface {
	LineNumber() int
	ColumnNumber() int
	// SystemID is the name of the document, if one was given.
	SystemID() string
}

// Attribute is a single attribute of a start tag. Attributes written
// without a value (`<input disabled>`) report HasValue() == false.
type Attribute interface {
	Name() string
	Value() string
	HasValue() bool
}

// Handler is the interface for anything that can receive tagsoup parse
// events. Byte slices and attribute lists passed to a handler are only
// valid for the duration of the call.
//
// Returning an error other than ErrHandlerUnspecified from a callback
// aborts the parse.
type Handler interface {
	SetDocumentLocator(ctx Context, loc DocumentLocator) error
	StartDocument(ctx Context) error
	EndDocument(ctx Context) error
	StartElement(ctx Context, name string, attrs []Attribute) error
	EndElement(ctx Context, name string) error
	Characters(ctx Context, ch []byte) error
	IgnorableWhitespace(ctx Context, ch []byte) error
	CDATABlock(ctx Context, value []byte) error
	Comment(ctx Context, value []byte) error
	ProcessingInstruction(ctx Context, target string, data string) error
	InternalSubset(ctx Context, name string, externalID string, systemID string) error
	Warning(ctx Context, err error) error
	Error(ctx Context, err error) error
	FatalError(ctx Context, err error) error
}
