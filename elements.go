package tagsoup

import "slices"

// TagOmission says whether a tag may be left out of the document.
type TagOmission int

const (
	// TagRequired tags must be written.
	TagRequired TagOmission = iota
	// TagOptional tags may be left out and are implied.
	TagOptional
	// TagForbidden end tags must not be written: the element is empty.
	TagForbidden
	// TagShouldOmit end tags are usually left out; closing the element
	// implicitly is reported as a mismatch.
	TagShouldOmit
)

// DTD is the HTML 4 document type an element belongs to.
type DTD int

const (
	DTDStrict DTD = iota
	DTDLoose
	DTDFrameset
)

// Inline classifies an element's rendering.
type Inline int

const (
	Block Inline = iota
	InlineOnly
	InlineOrBlock
)

// ElementDescriptor describes an HTML 4 element.
type ElementDescriptor struct {
	Name        string
	StartTag    TagOmission
	EndTag      TagOmission
	SaveEndTag  bool // the end tag is written out even though it may be omitted
	Empty       bool
	Deprecated  bool
	DTD         DTD
	Inline      Inline
	Description string
	// Subelements lists the elements allowed as children.
	Subelements []string
	// DefaultSubelement is the child implied when content needs a
	// container.
	DefaultSubelement string
	// AttrsOptional, AttrsDeprecated and AttrsRequired list the
	// attributes the element takes.
	AttrsOptional   []string
	AttrsDeprecated []string
	AttrsRequired   []string
}

// AllowsChild reports whether child may appear directly inside e.
func (e *ElementDescriptor) AllowsChild(child string) bool {
	return slices.Contains(e.Subelements, child)
}

// AttributeAllowed reports whether e takes an attribute named attr, and
// whether that attribute is deprecated.
func (e *ElementDescriptor) AttributeAllowed(attr string) (allowed bool, deprecated bool) {
	if slices.Contains(e.AttrsOptional, attr) || slices.Contains(e.AttrsRequired, attr) {
		return true, false
	}
	if slices.Contains(e.AttrsDeprecated, attr) {
		return true, true
	}
	return false, false
}

func concat(lists ...[]string) []string {
	var n int
	for _, l := range lists {
		n += len(l)
	}
	out := make([]string, 0, n)
	for _, l := range lists {
		out = append(out, l...)
	}
	return out
}

var (
	fontStyle  = []string{"tt", "i", "b", "u", "s", "strike", "big", "small"}
	phrase     = []string{"em", "strong", "dfn", "code", "samp", "kbd", "var", "cite", "abbr", "acronym"}
	special    = []string{"a", "img", "applet", "embed", "object", "font", "basefont", "br", "script", "map", "q", "sub", "sup", "span", "bdo", "iframe"}
	formCtrl   = []string{"input", "select", "textarea", "label", "button"}
	headings   = []string{"h1", "h2", "h3", "h4", "h5", "h6"}
	lists      = []string{"ul", "ol", "dir", "menu"}
	blockExtra = []string{"pre", "p", "dl", "div", "center", "noscript", "noframes", "blockquote", "form", "isindex", "hr", "table", "fieldset", "address"}

	htmlInline = concat(fontStyle, phrase, special, formCtrl)
	htmlBlock  = concat(headings, lists, blockExtra)
	htmlFlow   = concat(htmlBlock, htmlInline)

	bodyContents      = concat(htmlFlow, []string{"ins", "del"})
	headContents      = []string{"title", "isindex", "base", "script", "style", "meta", "link", "object"}
	htmlContent       = []string{"head", "body", "frameset"}
	flowParam         = concat([]string{"param"}, htmlFlow)
	inlineP           = concat(htmlInline, []string{"p"})
	blockLi           = concat(htmlBlock, []string{"li"})
	colElt            = []string{"col"}
	dlContents        = []string{"dt", "dd"}
	fieldsetContents  = concat(htmlFlow, []string{"legend"})
	formContents      = concat(headings, lists, htmlInline, []string{"pre", "p", "div", "center", "noscript", "noframes", "blockquote", "isindex", "hr", "table", "fieldset", "address"})
	framesetContents  = []string{"frameset", "frame", "noframes"}
	liElt             = []string{"li"}
	mapContents       = concat(htmlBlock, []string{"area"})
	noframesContent   = concat([]string{"body"}, htmlFlow)
	objectContents    = concat([]string{"param"}, htmlFlow)
	optionElt         = []string{"option"}
	preContent        = concat(phrase, []string{"tt", "i", "b", "u", "s", "strike", "a", "br", "script", "map", "q", "span", "bdo", "iframe"})
	selectContent     = []string{"optgroup", "option"}
	tableContents     = []string{"caption", "col", "colgroup", "thead", "tfoot", "tbody", "tr"}
	trElt             = []string{"tr"}
	trContents        = []string{"th", "td"}
	noSubelements     []string
	coreAttrs         = []string{"id", "class", "style", "title"}
	i18nAttrs         = []string{"lang", "dir"}
	eventAttrs        = []string{"onclick", "ondblclick", "onmousedown", "onmouseup", "onmouseover", "onmousemove", "onmouseout", "onkeypress", "onkeydown", "onkeyup"}
	htmlAttrs         = concat(coreAttrs, i18nAttrs, eventAttrs)
	coreI18nAttrs     = concat(coreAttrs, i18nAttrs)
	focusAttrs        = []string{"tabindex", "accesskey", "onfocus", "onblur"}
	aAttrs            = concat(htmlAttrs, []string{"charset", "type", "name", "href", "hreflang", "rel", "rev", "shape", "coords"}, focusAttrs)
	targetAttr        = []string{"target"}
	areaAttrs         = concat([]string{"shape", "coords", "href", "nohref"}, focusAttrs)
	altAttr           = []string{"alt"}
	appletAttrs       = concat(coreAttrs, []string{"codebase", "archive", "alt", "name", "height", "width", "align", "hspace", "vspace"})
	basefontAttrs     = []string{"id", "size", "color", "face"}
	hrefAttrs         = []string{"href"}
	dirAttr           = []string{"dir"}
	quoteAttrs        = concat(htmlAttrs, []string{"cite"})
	bodyAttrs         = concat(htmlAttrs, []string{"onload", "onunload"})
	bodyDepr          = []string{"background", "bgcolor", "text", "link", "vlink", "alink"}
	clearAttrs        = []string{"clear"}
	buttonAttrs       = concat(htmlAttrs, []string{"name", "value", "type", "disabled"}, focusAttrs)
	colAttrs          = concat(htmlAttrs, []string{"span", "width", "align", "char", "charoff", "valign"})
	editAttrs         = concat(htmlAttrs, []string{"datetime", "cite"})
	compactAttrs      = concat(htmlAttrs, []string{"compact"})
	compactAttr       = []string{"compact"}
	alignAttr         = []string{"align"}
	embedAttrs        = concat(coreAttrs, []string{"align", "alt", "border", "code", "codebase", "frameborder", "height", "hidden", "hspace", "name", "palette", "pluginspace", "pluginurl", "src", "type", "units", "vspace", "width"})
	fontAttrs         = concat(coreAttrs, i18nAttrs, []string{"size", "color", "face"})
	formAttrs         = concat(htmlAttrs, []string{"method", "enctype", "accept", "name", "onsubmit", "onreset", "accept-charset"})
	actionAttr        = []string{"action"}
	frameAttrs        = concat(coreAttrs, []string{"longdesc", "name", "src", "frameborder", "marginwidth", "marginheight", "noresize", "scrolling"})
	framesetAttrs     = concat(coreAttrs, []string{"rows", "cols", "onload", "onunload"})
	headAttrs         = concat(i18nAttrs, []string{"profile"})
	hrDepr            = []string{"align", "noshade", "size", "width"}
	versionAttr       = []string{"version"}
	iframeAttrs       = concat(coreAttrs, []string{"longdesc", "name", "src", "frameborder", "marginwidth", "marginheight", "scrolling", "align", "height", "width"})
	imgAttrs          = concat(htmlAttrs, []string{"longdesc", "name", "height", "width", "usemap", "ismap"})
	srcAltAttrs       = []string{"src", "alt"}
	inputAttrs        = concat(htmlAttrs, []string{"type", "name", "value", "checked", "disabled", "readonly", "size", "maxlength", "src", "alt", "usemap", "ismap"}, focusAttrs, []string{"onselect", "onchange", "accept"})
	promptAttrs       = concat(coreAttrs, i18nAttrs, []string{"prompt"})
	labelAttrs        = concat(htmlAttrs, []string{"for", "accesskey", "onfocus", "onblur"})
	legendAttrs       = concat(htmlAttrs, []string{"accesskey"})
	linkAttrs         = concat(htmlAttrs, []string{"charset", "href", "hreflang", "type", "rel", "rev", "media"})
	nameAttr          = []string{"name"}
	metaAttrs         = concat(i18nAttrs, []string{"http-equiv", "name", "scheme", "charset"})
	contentAttr       = []string{"content"}
	objectAttrs       = concat(htmlAttrs, []string{"declare", "classid", "codebase", "data", "type", "codetype", "archive", "standby", "height", "width", "usemap", "name", "tabindex"})
	objectDepr        = []string{"align", "border", "hspace", "vspace"}
	olAttrs           = []string{"type", "compact", "start"}
	optgroupAttrs     = concat(htmlAttrs, []string{"disabled"})
	labelAttr         = []string{"label"}
	optionAttrs       = concat(htmlAttrs, []string{"disabled", "label", "selected", "value"})
	paramAttrs        = []string{"id", "value", "valuetype", "type"}
	widthAttr         = []string{"width"}
	scriptAttrs       = []string{"charset", "src", "defer", "event", "for"}
	languageAttr      = []string{"language"}
	typeAttr          = []string{"type"}
	selectAttrs       = concat(htmlAttrs, []string{"name", "size", "multiple", "disabled", "tabindex", "onfocus", "onblur", "onchange"})
	styleAttrs        = concat(i18nAttrs, []string{"media", "title"})
	tableAttrs        = concat(htmlAttrs, []string{"summary", "width", "border", "frame", "rules", "cellspacing", "cellpadding", "datapagesize"})
	tableDepr         = []string{"align", "bgcolor"}
	talignAttrs       = concat(htmlAttrs, []string{"align", "char", "charoff", "valign"})
	thTdAttrs         = concat(htmlAttrs, []string{"abbr", "axis", "headers", "scope", "rowspan", "colspan", "align", "char", "charoff", "valign"})
	thTdDepr          = []string{"nowrap", "bgcolor", "width", "height"}
	textareaAttrs     = concat(htmlAttrs, []string{"name", "disabled", "readonly"}, focusAttrs, []string{"onselect", "onchange"})
	rowsColsAttr      = []string{"rows", "cols"}
	bgcolorAttr       = []string{"bgcolor"}
	ulDepr            = []string{"type", "compact"}
)

// el builds a table entry. Positional fields follow the column order of
// ElementDescriptor up to Description.
func el(name string, start, end TagOmission, save, empty, depr bool, dtd DTD, inline Inline, desc string, sub []string, defsub string, opt, dep, req []string) ElementDescriptor {
	return ElementDescriptor{
		Name:              name,
		StartTag:          start,
		EndTag:            end,
		SaveEndTag:        save,
		Empty:             empty,
		Deprecated:        depr,
		DTD:               dtd,
		Inline:            inline,
		Description:       desc,
		Subelements:       sub,
		DefaultSubelement: defsub,
		AttrsOptional:     opt,
		AttrsDeprecated:   dep,
		AttrsRequired:     req,
	}
}

const (
	tReq   = TagRequired
	tOpt   = TagOptional
	tForb  = TagForbidden
	tOmit  = TagShouldOmit
	dStr   = DTDStrict
	dLoose = DTDLoose
	dFrame = DTDFrameset
	iBlock = Block
	iInl   = InlineOnly
	iBoth  = InlineOrBlock
)

var html40ElementTable = []ElementDescriptor{
	el("a", tReq, tReq, false, false, false, dStr, iInl, "anchor", htmlInline, "", aAttrs, targetAttr, nil),
	el("abbr", tReq, tReq, false, false, false, dStr, iInl, "abbreviated form", htmlInline, "", htmlAttrs, nil, nil),
	el("acronym", tReq, tReq, false, false, false, dStr, iInl, "", htmlInline, "", htmlAttrs, nil, nil),
	el("address", tReq, tReq, false, false, false, dStr, iBlock, "information on author", inlineP, "", htmlAttrs, nil, nil),
	el("applet", tReq, tReq, false, false, true, dLoose, iBoth, "java applet", flowParam, "", nil, appletAttrs, nil),
	el("area", tReq, tForb, true, true, false, dStr, iBlock, "client-side image map area", noSubelements, "", areaAttrs, targetAttr, altAttr),
	el("b", tReq, tOmit, false, false, false, dStr, iInl, "bold text style", htmlInline, "", htmlAttrs, nil, nil),
	el("base", tReq, tForb, true, true, false, dStr, iBlock, "document base uri", noSubelements, "", nil, targetAttr, hrefAttrs),
	el("basefont", tReq, tForb, true, true, true, dLoose, iInl, "base font size", noSubelements, "", nil, basefontAttrs, nil),
	el("bdo", tReq, tReq, false, false, false, dStr, iInl, "i18n bidi over-ride", htmlInline, "", coreI18nAttrs, nil, dirAttr),
	el("big", tReq, tOmit, false, false, false, dStr, iInl, "large text style", htmlInline, "", htmlAttrs, nil, nil),
	el("blockquote", tReq, tReq, false, false, false, dStr, iBlock, "long quotation", htmlFlow, "", quoteAttrs, nil, nil),
	el("body", tOpt, tOpt, false, false, false, dStr, iBlock, "document body", bodyContents, "div", bodyAttrs, bodyDepr, nil),
	el("br", tReq, tForb, true, true, false, dStr, iInl, "forced line break", noSubelements, "", coreAttrs, clearAttrs, nil),
	el("button", tReq, tReq, false, false, false, dStr, iBoth, "push button", htmlFlow, "", buttonAttrs, nil, nil),
	el("caption", tReq, tReq, false, false, false, dStr, iBlock, "table caption", htmlInline, "", htmlAttrs, nil, nil),
	el("center", tReq, tOmit, false, false, true, dLoose, iBlock, "shorthand for div align=center", htmlFlow, "", nil, htmlAttrs, nil),
	el("cite", tReq, tReq, false, false, false, dStr, iInl, "citation", htmlInline, "", htmlAttrs, nil, nil),
	el("code", tReq, tReq, false, false, false, dStr, iInl, "computer code fragment", htmlInline, "", htmlAttrs, nil, nil),
	el("col", tReq, tForb, true, true, false, dStr, iBlock, "table column", noSubelements, "", colAttrs, nil, nil),
	el("colgroup", tReq, tOpt, false, false, false, dStr, iBlock, "table column group", colElt, "col", colAttrs, nil, nil),
	el("dd", tReq, tOpt, false, false, false, dStr, iBlock, "definition description", htmlFlow, "", htmlAttrs, nil, nil),
	el("del", tReq, tReq, false, false, false, dStr, iBoth, "deleted text", htmlFlow, "", editAttrs, nil, nil),
	el("dfn", tReq, tReq, false, false, false, dStr, iInl, "instance definition", htmlInline, "", htmlAttrs, nil, nil),
	el("dir", tReq, tReq, false, false, true, dLoose, iBlock, "directory list", blockLi, "", nil, compactAttrs, nil),
	el("div", tReq, tReq, false, false, false, dStr, iBlock, "generic language/style container", htmlFlow, "", htmlAttrs, alignAttr, nil),
	el("dl", tReq, tReq, false, false, false, dStr, iBlock, "definition list", dlContents, "dd", htmlAttrs, compactAttr, nil),
	el("dt", tReq, tOpt, false, false, false, dStr, iBlock, "definition term", htmlInline, "", htmlAttrs, nil, nil),
	el("em", tReq, tOmit, false, false, false, dStr, iInl, "emphasis", htmlInline, "", htmlAttrs, nil, nil),
	el("embed", tReq, tOpt, false, false, true, dLoose, iInl, "generic embedded object", noSubelements, "", embedAttrs, nil, nil),
	el("fieldset", tReq, tReq, false, false, false, dStr, iBlock, "form control group", fieldsetContents, "", htmlAttrs, nil, nil),
	el("font", tReq, tOmit, false, false, true, dLoose, iInl, "local change to font", htmlInline, "", nil, fontAttrs, nil),
	el("form", tReq, tReq, false, false, false, dStr, iBlock, "interactive form", formContents, "fieldset", formAttrs, targetAttr, actionAttr),
	el("frame", tReq, tForb, true, true, false, dFrame, iBlock, "subwindow", noSubelements, "", nil, frameAttrs, nil),
	el("frameset", tReq, tReq, false, false, false, dFrame, iBlock, "window subdivision", framesetContents, "noframes", nil, framesetAttrs, nil),
	el("h1", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("h2", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("h3", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("h4", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("h5", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("h6", tReq, tReq, false, false, false, dStr, iBlock, "heading", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("head", tOpt, tOpt, false, false, false, dStr, iBlock, "document head", headContents, "", headAttrs, nil, nil),
	el("hr", tReq, tForb, true, true, false, dStr, iBlock, "horizontal rule", noSubelements, "", htmlAttrs, hrDepr, nil),
	el("html", tOpt, tOpt, false, false, false, dStr, iBlock, "document root element", htmlContent, "", i18nAttrs, versionAttr, nil),
	el("i", tReq, tOmit, false, false, false, dStr, iInl, "italic text style", htmlInline, "", htmlAttrs, nil, nil),
	el("iframe", tReq, tReq, false, false, false, dLoose, iBoth, "inline subwindow", htmlFlow, "", nil, iframeAttrs, nil),
	el("img", tReq, tForb, true, true, false, dStr, iInl, "embedded image", noSubelements, "", imgAttrs, alignAttr, srcAltAttrs),
	el("input", tReq, tForb, true, true, false, dStr, iInl, "form control", noSubelements, "", inputAttrs, alignAttr, nil),
	el("ins", tReq, tReq, false, false, false, dStr, iBoth, "inserted text", htmlFlow, "", editAttrs, nil, nil),
	el("isindex", tReq, tForb, true, true, true, dLoose, iBlock, "single line prompt", noSubelements, "", nil, promptAttrs, nil),
	el("kbd", tReq, tReq, false, false, false, dStr, iInl, "text to be entered by the user", htmlInline, "", htmlAttrs, nil, nil),
	el("label", tReq, tReq, false, false, false, dStr, iInl, "form field label text", htmlInline, "", labelAttrs, nil, nil),
	el("legend", tReq, tReq, false, false, false, dStr, iBlock, "fieldset legend", htmlInline, "", legendAttrs, alignAttr, nil),
	el("li", tReq, tOpt, true, false, false, dStr, iBlock, "list item", htmlFlow, "", htmlAttrs, nil, nil),
	el("link", tReq, tForb, true, true, false, dStr, iBlock, "a media-independent link", noSubelements, "", linkAttrs, targetAttr, nil),
	el("map", tReq, tReq, false, false, false, dStr, iBoth, "client-side image map", mapContents, "", htmlAttrs, nil, nameAttr),
	el("menu", tReq, tReq, false, false, true, dLoose, iBlock, "menu list", blockLi, "", nil, compactAttrs, nil),
	el("meta", tReq, tForb, true, true, false, dStr, iBlock, "generic metainformation", noSubelements, "", metaAttrs, nil, contentAttr),
	el("noframes", tReq, tReq, false, false, false, dFrame, iBlock, "alternate content container for non frame-based rendering", noframesContent, "body", htmlAttrs, nil, nil),
	el("noscript", tReq, tReq, false, false, false, dStr, iBlock, "alternate content container for non script-based rendering", htmlFlow, "div", htmlAttrs, nil, nil),
	el("object", tReq, tReq, false, false, false, dStr, iBoth, "generic embedded object", objectContents, "div", objectAttrs, objectDepr, nil),
	el("ol", tReq, tReq, false, false, false, dStr, iBlock, "ordered list", liElt, "li", htmlAttrs, olAttrs, nil),
	el("optgroup", tReq, tReq, false, false, false, dStr, iBlock, "option group", optionElt, "option", optgroupAttrs, nil, labelAttr),
	el("option", tReq, tOpt, false, false, false, dStr, iBlock, "selectable choice", noSubelements, "", optionAttrs, nil, nil),
	el("p", tReq, tOpt, false, false, false, dStr, iBlock, "paragraph", htmlInline, "", htmlAttrs, alignAttr, nil),
	el("param", tReq, tForb, true, true, false, dStr, iBlock, "named property value", noSubelements, "", paramAttrs, nil, nameAttr),
	el("pre", tReq, tReq, false, false, false, dStr, iBlock, "preformatted text", preContent, "", htmlAttrs, widthAttr, nil),
	el("q", tReq, tReq, false, false, false, dStr, iInl, "short inline quotation", htmlInline, "", quoteAttrs, nil, nil),
	el("s", tReq, tOmit, false, false, true, dLoose, iInl, "strike-through text style", htmlInline, "", nil, htmlAttrs, nil),
	el("samp", tReq, tReq, false, false, false, dStr, iInl, "sample program output, scripts, etc.", htmlInline, "", htmlAttrs, nil, nil),
	el("script", tReq, tReq, false, false, false, dStr, iBoth, "script statements", noSubelements, "", scriptAttrs, languageAttr, typeAttr),
	el("select", tReq, tReq, false, false, false, dStr, iInl, "option selector", selectContent, "", selectAttrs, nil, nil),
	el("small", tReq, tOmit, false, false, false, dStr, iInl, "small text style", htmlInline, "", htmlAttrs, nil, nil),
	el("span", tReq, tReq, false, false, false, dStr, iInl, "generic language/style container", htmlInline, "", htmlAttrs, nil, nil),
	el("strike", tReq, tOmit, false, false, true, dLoose, iInl, "strike-through text", htmlInline, "", nil, htmlAttrs, nil),
	el("strong", tReq, tOmit, false, false, false, dStr, iInl, "strong emphasis", htmlInline, "", htmlAttrs, nil, nil),
	el("style", tReq, tReq, false, false, false, dStr, iBlock, "style info", noSubelements, "", styleAttrs, nil, typeAttr),
	el("sub", tReq, tOmit, false, false, false, dStr, iInl, "subscript", htmlInline, "", htmlAttrs, nil, nil),
	el("sup", tReq, tOmit, false, false, false, dStr, iInl, "superscript", htmlInline, "", htmlAttrs, nil, nil),
	el("table", tReq, tReq, false, false, false, dStr, iBlock, "", tableContents, "tr", tableAttrs, tableDepr, nil),
	el("tbody", tOpt, tReq, false, false, false, dStr, iBlock, "table body", trElt, "tr", talignAttrs, nil, nil),
	el("td", tReq, tReq, false, false, false, dStr, iBlock, "table data cell", htmlFlow, "", thTdAttrs, thTdDepr, nil),
	el("textarea", tReq, tReq, false, false, false, dStr, iInl, "multi-line text field", noSubelements, "", textareaAttrs, nil, rowsColsAttr),
	el("tfoot", tReq, tOpt, false, false, false, dStr, iBlock, "table footer", trElt, "tr", talignAttrs, nil, nil),
	el("th", tReq, tOpt, false, false, false, dStr, iBlock, "table header cell", htmlFlow, "", thTdAttrs, thTdDepr, nil),
	el("thead", tReq, tOpt, false, false, false, dStr, iBlock, "table header", trElt, "tr", talignAttrs, nil, nil),
	el("title", tReq, tReq, false, false, false, dStr, iBlock, "document title", noSubelements, "", i18nAttrs, nil, nil),
	el("tr", tReq, tReq, false, false, false, dStr, iBlock, "table row", trContents, "td", talignAttrs, bgcolorAttr, nil),
	el("tt", tReq, tOmit, false, false, false, dStr, iInl, "teletype or monospaced text style", htmlInline, "", htmlAttrs, nil, nil),
	el("u", tReq, tOmit, false, false, true, dLoose, iInl, "underlined text style", htmlInline, "", nil, htmlAttrs, nil),
	el("ul", tReq, tReq, false, false, false, dStr, iBlock, "unordered list", liElt, "li", htmlAttrs, ulDepr, nil),
	el("var", tReq, tReq, false, false, false, dStr, iInl, "instance of a variable or program argument", htmlInline, "", htmlAttrs, nil, nil),
}

var elementIndex = func() map[string]*ElementDescriptor {
	m := make(map[string]*ElementDescriptor, len(html40ElementTable))
	for i := range html40ElementTable {
		m[html40ElementTable[i].Name] = &html40ElementTable[i]
	}
	return m
}()

// LookupElement returns the descriptor of the HTML 4 element name. name
// must be lower case.
func LookupElement(name string) (*ElementDescriptor, bool) {
	e, ok := elementIndex[name]
	return e, ok
}

// endPriority returns how strongly an open element resists being closed
// by the end tag of an element opened before it.
func endPriority(name string) int {
	switch name {
	case "div":
		return 150
	case "td", "th":
		return 160
	case "tr":
		return 170
	case "thead", "tbody", "tfoot":
		return 180
	case "table":
		return 190
	case "head", "body":
		return 200
	case "html":
		return 220
	}
	return 100
}
