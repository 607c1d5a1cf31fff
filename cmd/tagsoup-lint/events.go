package main

import (
	"fmt"
	"io"

	"github.com/lestrrat-go/tagsoup/sax"
)

// newEventEmitter returns a handler that prints one line per event, in
// the format xmllint --sax uses for HTML.
func newEventEmitter(out io.Writer) *sax.SAX {
	s := sax.New()
	s.SetDocumentLocatorHandler = func(_ sax.Context, _ sax.DocumentLocator) error {
		fmt.Fprintf(out, "SAX.setDocumentLocator()\n")
		return nil
	}
	s.StartDocumentHandler = func(_ sax.Context) error {
		fmt.Fprintf(out, "SAX.startDocument()\n")
		return nil
	}
	s.EndDocumentHandler = func(_ sax.Context) error {
		fmt.Fprintf(out, "SAX.endDocument()\n")
		return nil
	}
	s.InternalSubsetHandler = func(_ sax.Context, name, externalID, systemID string) error {
		fmt.Fprintf(out, "SAX.internalSubset(%s, %s, %s)\n", name, externalID, systemID)
		return nil
	}
	s.StartElementHandler = func(_ sax.Context, name string, attrs []sax.Attribute) error {
		fmt.Fprintf(out, "SAX.startElement(%s", name)
		for _, attr := range attrs {
			fmt.Fprintf(out, ", %s", attr.Name())
			if attr.HasValue() {
				fmt.Fprintf(out, "='%s'", attr.Value())
			}
		}
		fmt.Fprintln(out, ")")
		return nil
	}
	s.EndElementHandler = func(_ sax.Context, name string) error {
		fmt.Fprintf(out, "SAX.endElement(%s)\n", name)
		return nil
	}
	charHandler := func(name string, data []byte) error {
		output := data
		if len(output) > 30 {
			output = output[:30]
		}
		fmt.Fprintf(out, "SAX.%s(%s, %d)\n", name, output, len(data))
		return nil
	}
	s.CharactersHandler = func(_ sax.Context, data []byte) error {
		return charHandler("characters", data)
	}
	s.IgnorableWhitespaceHandler = func(_ sax.Context, data []byte) error {
		return charHandler("ignorableWhitespace", data)
	}
	s.CDATABlockHandler = func(_ sax.Context, data []byte) error {
		return charHandler("cdata", data)
	}
	s.CommentHandler = func(_ sax.Context, data []byte) error {
		fmt.Fprintf(out, "SAX.comment(%s)\n", data)
		return nil
	}
	s.ProcessingInstructionHandler = func(_ sax.Context, target, data string) error {
		fmt.Fprintf(out, "SAX.processingInstruction(%s, %s)\n", target, data)
		return nil
	}
	s.WarningHandler = func(_ sax.Context, err error) error {
		fmt.Fprintf(out, "SAX.warning: %s\n", err)
		return nil
	}
	s.ErrorHandler = func(_ sax.Context, err error) error {
		fmt.Fprintf(out, "SAX.error: %s\n", err)
		return nil
	}
	s.FatalErrorHandler = func(_ sax.Context, err error) error {
		fmt.Fprintf(out, "SAX.fatalError: %s\n", err)
		return nil
	}
	return s
}
