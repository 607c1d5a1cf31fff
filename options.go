package tagsoup

import (
	"github.com/lestrrat-go/option"
	"github.com/lestrrat-go/tagsoup/sax"
)

type Option = option.Interface

type identDefaultDTD struct{}
type identEncoding struct{}
type identFilename struct{}
type identHTML5Entities struct{}
type identIgnoreDeclaredEncoding struct{}
type identKeepBlanks struct{}
type identMaxBufferSize struct{}
type identMaxNameLength struct{}
type identNoImpliedTags struct{}
type identPedantic struct{}
type identRecover struct{}
type identSAX struct{}
type identUserData struct{}

// ParseOption configures a Parser.
type ParseOption interface {
	Option
	parseOption()
}

type parseOption struct{ Option }

func (*parseOption) parseOption() {}

// WithRecover controls whether markup errors are tolerated. When true
// (the default) errors are reported and parsing continues; when false
// the first markup error stops the parse.
func WithRecover(v bool) ParseOption {
	return &parseOption{option.New(identRecover{}, v)}
}

// WithKeepBlanks controls whether whitespace-only text that cannot be
// content is reported through Characters (true, the default) or
// IgnorableWhitespace (false).
func WithKeepBlanks(v bool) ParseOption {
	return &parseOption{option.New(identKeepBlanks{}, v)}
}

// WithDefaultDTD makes the parser report the HTML 4.0 Transitional
// doctype through InternalSubset when the document does not have one.
func WithDefaultDTD(v bool) ParseOption {
	return &parseOption{option.New(identDefaultDTD{}, v)}
}

// WithIgnoreDeclaredEncoding makes the parser disregard encodings
// declared by <meta> elements.
func WithIgnoreDeclaredEncoding(v bool) ParseOption {
	return &parseOption{option.New(identIgnoreDeclaredEncoding{}, v)}
}

// WithNoImpliedTags disables the synthesis of missing html, head, body
// and p elements.
func WithNoImpliedTags(v bool) ParseOption {
	return &parseOption{option.New(identNoImpliedTags{}, v)}
}

// WithEncoding forces the document encoding, bypassing detection and
// <meta> declarations.
func WithEncoding(v string) ParseOption {
	return &parseOption{option.New(identEncoding{}, v)}
}

// WithFilename sets the name reported by the DocumentLocator and in
// errors.
func WithFilename(v string) ParseOption {
	return &parseOption{option.New(identFilename{}, v)}
}

// WithHTML5Entities makes references to names outside the HTML 4 entity
// set resolve against the HTML5 named character references.
func WithHTML5Entities(v bool) ParseOption {
	return &parseOption{option.New(identHTML5Entities{}, v)}
}

// WithPedantic enables warnings for deprecated elements, unknown
// attributes and elements found where their parent does not allow them.
func WithPedantic(v bool) ParseOption {
	return &parseOption{option.New(identPedantic{}, v)}
}

// WithMaxNameLength caps the length of element and attribute names.
// Longer names are truncated. The default is 100.
func WithMaxNameLength(v int) ParseOption {
	return &parseOption{option.New(identMaxNameLength{}, v)}
}

// WithMaxBufferSize caps the amount of decoded but unconsumed input the
// parser buffers while waiting for the end of a construct. Exceeding it
// is a fatal resource error. Zero, the default, means no limit.
func WithMaxBufferSize(v int) ParseOption {
	return &parseOption{option.New(identMaxBufferSize{}, v)}
}

// WithSAX sets the handler events are reported to.
func WithSAX(v sax.Handler) ParseOption {
	return &parseOption{option.New(identSAX{}, v)}
}

// WithUserData sets the value passed as the first argument of every
// handler callback.
func WithUserData(v interface{}) ParseOption {
	return &parseOption{option.New(identUserData{}, v)}
}
