package tagsoup

// startCloseEntries lists, for a tag being opened, the open elements its
// start tag implicitly closes. The table is reproduced as is: several
// entries are inconsistent with each other and that is what documents in
// the wild have come to depend on.
var startCloseEntries = [][]string{
	{"form", "form", "p", "hr", "h1", "h2", "h3", "h4", "h5", "h6", "dl", "ul", "ol", "menu", "dir", "address", "pre", "listing", "xmp", "head"},
	{"head", "p"},
	{"title", "p"},
	{"body", "head", "style", "script", "title"},
	{"frameset", "head", "style", "script", "title"},
	{"li", "p", "h1", "h2", "h3", "h4", "h5", "h6", "dl", "address", "pre", "listing", "xmp", "head", "li"},
	{"hr", "p", "head"},
	{"h1", "p", "head", "h2", "h3", "h4", "h5", "h6"},
	{"h2", "p", "head", "h1", "h3", "h4", "h5", "h6"},
	{"h3", "p", "head", "h1", "h2", "h4", "h5", "h6"},
	{"h4", "p", "head", "h1", "h2", "h3", "h5", "h6"},
	{"h5", "p", "head", "h1", "h2", "h3", "h4", "h6"},
	{"h6", "p", "head", "h1", "h2", "h3", "h4", "h5"},
	{"dir", "p", "head"},
	{"address", "p", "head", "ul"},
	{"pre", "p", "head", "ul"},
	{"listing", "p", "head"},
	{"xmp", "p"},
	{"blockquote", "p", "head"},
	{"dl", "p", "dt", "menu", "dir", "address", "pre", "listing", "xmp", "head"},
	{"dt", "p", "menu", "dir", "address", "pre", "listing", "xmp", "head", "dd"},
	{"dd", "p", "menu", "dir", "address", "pre", "listing", "xmp", "head", "dt"},
	{"ul", "p", "head", "ol", "menu", "dir", "address", "pre", "listing", "xmp"},
	{"ol", "p", "head", "ul"},
	{"menu", "p", "head", "ul"},
	{"p", "p", "head", "h1", "h2", "h3", "h4", "h5", "h6", "tt", "i", "b", "u", "s", "strike", "big", "small"},
	{"div", "p", "head"},
	{"noscript", "script"},
	{"center", "font", "b", "i", "p", "head"},
	{"a", "a", "head"},
	{"caption", "p"},
	{"colgroup", "caption", "colgroup", "col", "p"},
	{"col", "caption", "col", "p"},
	{"table", "p", "head", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "listing", "xmp", "a"},
	{"th", "th", "td", "p", "span", "font", "a", "b", "i", "u"},
	{"td", "th", "td", "p", "span", "font", "a", "b", "i", "u"},
	{"tr", "th", "td", "tr", "caption", "col", "colgroup", "p"},
	{"thead", "caption", "col", "colgroup"},
	{"tfoot", "th", "td", "tr", "caption", "col", "colgroup", "thead", "tbody", "p"},
	{"tbody", "th", "td", "tr", "caption", "col", "colgroup", "thead", "tfoot", "tbody", "p"},
	{"optgroup", "option"},
	{"option", "option"},
	{"fieldset", "legend", "p", "head", "h1", "h2", "h3", "h4", "h5", "h6", "pre", "listing", "xmp", "a"},
	// inline elements close a head left open
	{"tt", "head"},
	{"i", "head"},
	{"b", "head"},
	{"u", "head"},
	{"s", "head"},
	{"strike", "head"},
	{"big", "head"},
	{"small", "head"},
	{"em", "head"},
	{"strong", "head"},
	{"dfn", "head"},
	{"code", "head"},
	{"samp", "head"},
	{"kbd", "head"},
	{"var", "head"},
	{"cite", "head"},
	{"abbr", "head"},
	{"acronym", "head"},
	{"img", "head"},
	{"font", "head"},
	{"br", "head"},
	{"map", "head"},
	{"q", "head"},
	{"sub", "head"},
	{"sup", "head"},
	{"span", "head"},
	{"bdo", "head"},
	{"iframe", "head"},
}

type closeKey struct {
	newTag string
	oldTag string
}

var startClose = func() map[closeKey]struct{} {
	m := make(map[closeKey]struct{}, 512)
	for _, entry := range startCloseEntries {
		for _, old := range entry[1:] {
			m[closeKey{newTag: entry[0], oldTag: old}] = struct{}{}
		}
	}
	return m
}()

// checkAutoClose reports whether opening newTag implicitly closes an open
// oldTag.
func checkAutoClose(newTag, oldTag string) bool {
	_, ok := startClose[closeKey{newTag: newTag, oldTag: oldTag}]
	return ok
}

// elements that go in head when nothing else has been opened
func isHeadElement(name string) bool {
	switch name {
	case "script", "style", "meta", "link", "title", "base":
		return true
	}
	return false
}

// autoClose pops, most recent first, every open element the start of
// newTag implicitly closes.
func (ctx *parserCtx) autoClose(newTag string) {
	for ctx.names.Len() > 0 {
		top := ctx.currentName()
		if !checkAutoClose(newTag, top) {
			return
		}
		ctx.endElement(top)
		ctx.popName()
	}
}

// autoCloseOnClose handles the end tag of newTag that matches an element
// deeper in the stack: every element above it is closed first. Closing an
// element whose end tag should be written, or one that resists harder
// than newTag (a table cell against an inline end tag, say), is reported
// as a mismatch.
func (ctx *parserCtx) autoCloseOnClose(newTag string) {
	if !ctx.inStack(newTag) {
		return
	}

	priority := endPriority(newTag)
	for ctx.currentName() != newTag {
		top := ctx.currentName()
		info, ok := LookupElement(top)
		if (ok && info.EndTag == TagShouldOmit) || endPriority(top) > priority {
			ctx.markupError(errorf(ErrTagNameMismatch, "%s and %s", newTag, top))
		}
		ctx.endElement(top)
		ctx.popName()
	}
}

// autoCloseOnEnd closes everything still open at the end of the document.
func (ctx *parserCtx) autoCloseOnEnd() {
	for ctx.names.Len() > 0 {
		top := ctx.currentName()
		ctx.endElement(top)
		ctx.popName()
	}
}

// checkImplied opens the html, head and body elements a document left
// out, as needed before newTag can be opened. Each is opened at most once.
func (ctx *parserCtx) checkImplied(newTag string) {
	if ctx.flags.IsSet(flagNoImplied) || newTag == "html" {
		return
	}

	if ctx.names.Len() == 0 {
		if ctx.implied >= impliedHTML {
			// the root was closed: content after it stays at the top
			return
		}
		ctx.pushName("html")
		ctx.startElement("html", nil)
	}
	if newTag == "body" || newTag == "head" {
		return
	}

	if ctx.names.Len() <= 1 && isHeadElement(newTag) {
		if ctx.implied >= impliedHead {
			// head already seen: don't imply it again
			return
		}
		ctx.pushName("head")
		ctx.startElement("head", nil)
		return
	}

	switch newTag {
	case "noframes", "frame", "frameset":
		return
	}
	if ctx.implied >= impliedBody {
		return
	}
	for _, sym := range ctx.names.Items() {
		switch ctx.symbols.String(sym) {
		case "body", "head":
			return
		}
	}
	ctx.pushName("body")
	ctx.startElement("body", nil)
}

// checkParagraph opens a p for text or inline content that would
// otherwise sit directly in html or head. It reports whether it did.
func (ctx *parserCtx) checkParagraph() bool {
	if ctx.flags.IsSet(flagNoImplied) {
		return false
	}
	if ctx.names.Len() == 0 {
		ctx.autoClose("p")
		ctx.checkImplied("p")
		ctx.pushName("p")
		ctx.startElement("p", nil)
		return true
	}

	switch ctx.currentName() {
	case "html", "head":
		ctx.autoClose("p")
		ctx.checkImplied("p")
		ctx.pushName("p")
		ctx.startElement("p", nil)
		return true
	}
	return false
}
