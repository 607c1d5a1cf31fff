package tagsoup

import "strconv"

// Status summarizes the outcome of a parse, or of a single Feed call.
type Status int

const (
	// StatusOK means the document parsed without any recorded error.
	StatusOK Status = iota
	// StatusRecoverableErrors means errors were found and reported,
	// but every event up to the end of the document was delivered.
	StatusRecoverableErrors
	// StatusUnsupportedEncoding means the document's encoding could not
	// be resolved before anything was decoded.
	StatusUnsupportedEncoding
	// StatusOutOfMemory means a resource limit was hit. The parser is
	// terminal.
	StatusOutOfMemory
	// StatusInternalError means the parser hit a defect of its own. The
	// parser is terminal.
	StatusInternalError
	// StatusAborted means a handler returned an error, or the context
	// given to ParseReader was cancelled. No further events are reported.
	StatusAborted
)

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusRecoverableErrors:
		return "recoverable errors occurred"
	case StatusUnsupportedEncoding:
		return "unsupported encoding"
	case StatusOutOfMemory:
		return "out of memory"
	case StatusInternalError:
		return "internal error"
	case StatusAborted:
		return "aborted"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// Fatal reports whether s leaves the parser unable to continue.
func (s Status) Fatal() bool {
	switch s {
	case StatusUnsupportedEncoding, StatusOutOfMemory, StatusInternalError, StatusAborted:
		return true
	}
	return false
}
