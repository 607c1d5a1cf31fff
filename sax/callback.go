package sax

// CDATABlockFunc defines the function type for SAX.CDATABlockHandler
type CDATABlockFunc func(ctx Context, value []byte) error

// CharactersFunc defines the function type for SAX.CharactersHandler
type CharactersFunc func(ctx Context, ch []byte) error

// CommentFunc defines the function type for SAX.CommentHandler
type CommentFunc func(ctx Context, value []byte) error

// EndDocumentFunc defines the function type for SAX.EndDocumentHandler
type EndDocumentFunc func(ctx Context) error

// EndElementFunc defines the function type for SAX.EndElementHandler
type EndElementFunc func(ctx Context, name string) error

// ErrorFunc defines the function type for SAX.ErrorHandler
type ErrorFunc func(ctx Context, err error) error

// FatalErrorFunc defines the function type for SAX.FatalErrorHandler
type FatalErrorFunc func(ctx Context, err error) error

// IgnorableWhitespaceFunc defines the function type for SAX.IgnorableWhitespaceHandler
type IgnorableWhitespaceFunc func(ctx Context, ch []byte) error

// InternalSubsetFunc defines the function type for SAX.InternalSubsetHandler
type InternalSubsetFunc func(ctx Context, name string, externalID string, systemID string) error

// ProcessingInstructionFunc defines the function type for SAX.ProcessingInstructionHandler
type ProcessingInstructionFunc func(ctx Context, target string, data string) error

// SetDocumentLocatorFunc defines the function type for SAX.SetDocumentLocatorHandler
type SetDocumentLocatorFunc func(ctx Context, loc DocumentLocator) error

// StartDocumentFunc defines the function type for SAX.StartDocumentHandler
type StartDocumentFunc func(ctx Context) error

// StartElementFunc defines the function type for SAX.StartElementHandler
type StartElementFunc func(ctx Context, name string, attrs []Attribute) error

// WarningFunc defines the function type for SAX.WarningHandler
type WarningFunc func(ctx Context, err error) error

// SAX is a Handler built out of plain functions. Any field left nil
// makes the corresponding method return ErrHandlerUnspecified.
type SAX struct {
	CDATABlockHandler            CDATABlockFunc
	CharactersHandler            CharactersFunc
	CommentHandler               CommentFunc
	EndDocumentHandler           EndDocumentFunc
	EndElementHandler            EndElementFunc
	ErrorHandler                 ErrorFunc
	FatalErrorHandler            FatalErrorFunc
	IgnorableWhitespaceHandler   IgnorableWhitespaceFunc
	InternalSubsetHandler        InternalSubsetFunc
	ProcessingInstructionHandler ProcessingInstructionFunc
	SetDocumentLocatorHandler    SetDocumentLocatorFunc
	StartDocumentHandler         StartDocumentFunc
	StartElementHandler          StartElementFunc
	WarningHandler               WarningFunc
}

func New() *SAX {
	return &SAX{}
}

// CDATABlock satisfies the Handler interface
func (s *SAX) CDATABlock(ctx Context, value []byte) error {
	if h := s.CDATABlockHandler; h != nil {
		return h(ctx, value)
	}
	return ErrHandlerUnspecified
}

// Characters satisfies the Handler interface
func (s *SAX) Characters(ctx Context, ch []byte) error {
	if h := s.CharactersHandler; h != nil {
		return h(ctx, ch)
	}
	return ErrHandlerUnspecified
}

// Comment satisfies the Handler interface
func (s *SAX) Comment(ctx Context, value []byte) error {
	if h := s.CommentHandler; h != nil {
		return h(ctx, value)
	}
	return ErrHandlerUnspecified
}

// EndDocument satisfies the Handler interface
func (s *SAX) EndDocument(ctx Context) error {
	if h := s.EndDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

// EndElement satisfies the Handler interface
func (s *SAX) EndElement(ctx Context, name string) error {
	if h := s.EndElementHandler; h != nil {
		return h(ctx, name)
	}
	return ErrHandlerUnspecified
}

// Error satisfies the Handler interface
func (s *SAX) Error(ctx Context, err error) error {
	if h := s.ErrorHandler; h != nil {
		return h(ctx, err)
	}
	return ErrHandlerUnspecified
}

// FatalError satisfies the Handler interface
func (s *SAX) FatalError(ctx Context, err error) error {
	if h := s.FatalErrorHandler; h != nil {
		return h(ctx, err)
	}
	return ErrHandlerUnspecified
}

// IgnorableWhitespace satisfies the Handler interface
func (s *SAX) IgnorableWhitespace(ctx Context, ch []byte) error {
	if h := s.IgnorableWhitespaceHandler; h != nil {
		return h(ctx, ch)
	}
	return ErrHandlerUnspecified
}

// InternalSubset satisfies the Handler interface
func (s *SAX) InternalSubset(ctx Context, name string, externalID string, systemID string) error {
	if h := s.InternalSubsetHandler; h != nil {
		return h(ctx, name, externalID, systemID)
	}
	return ErrHandlerUnspecified
}

// ProcessingInstruction satisfies the Handler interface
func (s *SAX) ProcessingInstruction(ctx Context, target string, data string) error {
	if h := s.ProcessingInstructionHandler; h != nil {
		return h(ctx, target, data)
	}
	return ErrHandlerUnspecified
}

// SetDocumentLocator satisfies the Handler interface
func (s *SAX) SetDocumentLocator(ctx Context, loc DocumentLocator) error {
	if h := s.SetDocumentLocatorHandler; h != nil {
		return h(ctx, loc)
	}
	return ErrHandlerUnspecified
}

// StartDocument satisfies the Handler interface
func (s *SAX) StartDocument(ctx Context) error {
	if h := s.StartDocumentHandler; h != nil {
		return h(ctx)
	}
	return ErrHandlerUnspecified
}

// StartElement satisfies the Handler interface
func (s *SAX) StartElement(ctx Context, name string, attrs []Attribute) error {
	if h := s.StartElementHandler; h != nil {
		return h(ctx, name, attrs)
	}
	return ErrHandlerUnspecified
}

// Warning satisfies the Handler interface
func (s *SAX) Warning(ctx Context, err error) error {
	if h := s.WarningHandler; h != nil {
		return h(ctx, err)
	}
	return ErrHandlerUnspecified
}
