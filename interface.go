// Package tagsoup parses HTML as it is found in the wild: unknown or
// mislabeled character encodings, missing tags, stray end tags, unquoted
// attributes. The document is never built; instead, events are reported
// to a sax.Handler as the input is read, either from a complete buffer,
// an io.Reader, or chunks pushed through a PushParser.
package tagsoup

import "github.com/lestrrat-go/tagsoup/sax"

const Version = "0.1.0"

// SAX is the interface parse events are reported through.
type SAX = sax.Handler
