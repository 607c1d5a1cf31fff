package tagsoup

import (
	"github.com/lestrrat-go/pdebug/v3"
	"golang.org/x/net/html/atom"
)

// nodeInfo records where an open element started.
type nodeInfo struct {
	line   int
	col    int
	offset int
}

func (ctx *parserCtx) pushName(name string) {
	if pdebug.Enabled {
		pdebug.Printf(" --> push name %s", name)
	}
	switch name {
	case "html":
		if ctx.implied < impliedHTML {
			ctx.implied = impliedHTML
		}
	case "head":
		if ctx.implied < impliedHead {
			ctx.implied = impliedHead
		}
	case "body":
		if ctx.implied < impliedBody {
			ctx.implied = impliedBody
		}
	}
	ctx.names.Push(ctx.symbols.InternString(name))
	info := nodeInfo{}
	if in := ctx.in; in != nil {
		info = nodeInfo{line: in.line, col: in.col, offset: in.offset()}
	}
	ctx.nodeInfos.Push(info)
}

func (ctx *parserCtx) popName() string {
	sym, ok := ctx.names.Pop()
	if !ok {
		if pdebug.Enabled {
			pdebug.Printf(" <-- pop name (EMPTY)")
		}
		return ""
	}
	ctx.nodeInfos.Pop()
	name := ctx.symbols.String(sym)
	if pdebug.Enabled {
		pdebug.Printf(" <-- pop name %s", name)
	}
	return name
}

// currentName is the name of the innermost open element, or "".
func (ctx *parserCtx) currentName() string {
	sym, ok := ctx.names.Peek()
	if !ok {
		return ""
	}
	return ctx.symbols.String(sym)
}

func (ctx *parserCtx) currentAtom() atom.Atom {
	sym, ok := ctx.names.Peek()
	if !ok {
		return 0
	}
	return ctx.symbols.Atom(sym)
}

// nameAt returns the name of the open element at depth i, 0 being the
// outermost.
func (ctx *parserCtx) nameAt(i int) string {
	return ctx.symbols.String(ctx.names.At(i))
}

func (ctx *parserCtx) inStack(name string) bool {
	sym, ok := ctx.symbols.Lookup([]byte(name))
	if !ok {
		return false
	}
	items := ctx.names.Items()
	for i := len(items) - 1; i >= 0; i-- {
		if items[i] == sym {
			return true
		}
	}
	return false
}

// openElements returns the names of the open elements, outermost first.
func (ctx *parserCtx) openElements() []string {
	items := ctx.names.Items()
	out := make([]string, len(items))
	for i, sym := range items {
		out[i] = ctx.symbols.String(sym)
	}
	return out
}

// inRawText reports whether the innermost element holds raw text.
func (ctx *parserCtx) inRawText() bool {
	switch ctx.currentAtom() {
	case atom.Script, atom.Style:
		return true
	}
	return false
}

func (ctx *parserCtx) pushInput(in *inputStream) {
	in.onError = func(err error) {
		ctx.encodingError(err)
	}
	ctx.inputs.Push(in)
	ctx.in = in
}

func (ctx *parserCtx) popInput() *inputStream {
	in, ok := ctx.inputs.Pop()
	if !ok {
		return nil
	}
	in.close()
	ctx.in, _ = ctx.inputs.Peek()
	return in
}
