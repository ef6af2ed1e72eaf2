package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// inlineParser scans one block's raw text and produces inline nodes:
// emphasis, links, code spans, autolinks, math, footnote references,
// and escapes, falling back to plain text runs in between.
type inlineParser struct {
	input    string
	bytes    []byte
	pos      int
	linkDefs []LinkDef
}

func newInlineParser(input string, linkDefs []LinkDef) *inlineParser {
	return &inlineParser{input: input, bytes: []byte(input), linkDefs: linkDefs}
}

func parseInline(text string, linkDefs []LinkDef) []ast.Node {
	return newInlineParser(text, linkDefs).parse()
}

func isSpecialChar(b byte) bool {
	switch b {
	case '*', '_', '`', '[', '!', '~', '<', '\\', '$', 'h':
		return true
	default:
		return false
	}
}

func (p *inlineParser) parse() []ast.Node {
	nodes := make([]ast.Node, 0, max(4, len(p.bytes)/50))
	textStart := p.pos

	for p.pos < len(p.bytes) {
		b := p.bytes[p.pos]

		if !isSpecialChar(b) {
			p.pos++
			continue
		}

		if node, ok := p.trySpecial(); ok {
			nodes = p.flushText(textStart, nodes)
			nodes = append(nodes, node)
			textStart = p.pos
		} else {
			p.pos++
		}
	}

	nodes = p.flushText(textStart, nodes)
	return nodes
}

func (p *inlineParser) flushText(start int, nodes []ast.Node) []ast.Node {
	if start < p.pos {
		nodes = append(nodes, p.textNode(start, p.pos))
	}
	return nodes
}

func (p *inlineParser) textNode(s, e int) ast.Node {
	n := ast.NewNode(ast.KindText, ast.NewSpan(s, e, 0, 0))
	n.Content = p.input[s:e]
	return n
}

func (p *inlineParser) trySpecial() (ast.Node, bool) {
	ch := p.bytes[p.pos]

	switch {
	case ch == '*' || ch == '_':
		return p.tryEmphasis()
	case ch == '`':
		return p.tryCodeSpan()
	case ch == '[':
		if p.peekAt(1) == '^' {
			return p.tryFootnoteRef()
		}
		return p.tryLink(false)
	case ch == '!' && p.peekAt(1) == '[':
		return p.tryLink(true)
	case ch == '~' && p.peekAt(1) == '~':
		return p.tryStrike()
	case ch == '<':
		return p.tryAutolink()
	case ch == '\\':
		return p.tryEscape()
	case ch == '$':
		return p.tryMath()
	case ch == 'h' && p.checkAutoURL():
		return p.tryAutoURL()
	default:
		return ast.Node{}, false
	}
}

// peekAt returns the byte at pos+offset, or 0 if out of range.
func (p *inlineParser) peekAt(offset int) byte {
	i := p.pos + offset
	if i < 0 || i >= len(p.bytes) {
		return 0
	}
	return p.bytes[i]
}

func (p *inlineParser) skipWS() {
	for p.pos < len(p.bytes) && (p.bytes[p.pos] == ' ' || p.bytes[p.pos] == '\t') {
		p.pos++
	}
}

// --- emphasis.go-equivalent ---

func (p *inlineParser) tryEmphasis() (ast.Node, bool) {
	start := p.pos
	delimiter := p.bytes[p.pos]
	count := p.countDelimiters(delimiter)

	if count == 0 || p.pos >= len(p.bytes) {
		p.pos = start
		return ast.Node{}, false
	}

	contentStart := p.pos
	closePos, ok := findCloseFast(p.bytes[p.pos:], delimiter, count)
	if !ok {
		p.pos = start
		return ast.Node{}, false
	}
	closeAbs := contentStart + closePos
	p.pos = closeAbs + count

	children := parseInline(p.input[contentStart:closeAbs], p.linkDefs)

	kind := ast.KindEmphasis
	if count >= 2 {
		kind = ast.KindStrong
	}
	return ast.NewParent(kind, ast.NewSpan(start, p.pos, 0, 0), children), true
}

func (p *inlineParser) countDelimiters(delimiter byte) int {
	start := p.pos
	for p.pos < len(p.bytes) && p.bytes[p.pos] == delimiter {
		p.pos++
	}
	return p.pos - start
}

func (p *inlineParser) tryCodeSpan() (ast.Node, bool) {
	start := p.pos
	backtickCount := p.countDelimiters('`')
	contentStart := p.pos

	closePos, ok := findBackticksFast(p.bytes[p.pos:], backtickCount)
	if !ok {
		p.pos = start
		return ast.Node{}, false
	}

	content := strings.TrimSpace(p.input[contentStart : contentStart+closePos])
	p.pos = contentStart + closePos + backtickCount

	n := ast.NewNode(ast.KindCodeSpan, ast.NewSpan(start, p.pos, 0, 0))
	n.Content = content
	return n, true
}

func (p *inlineParser) tryStrike() (ast.Node, bool) {
	start := p.pos
	p.pos += 2 // skip opening ~~

	closePos, ok := findDoubleTilde(p.bytes[p.pos:])
	if !ok {
		p.pos = start
		return ast.Node{}, false
	}

	children := parseInline(p.input[p.pos:p.pos+closePos], p.linkDefs)
	p.pos += closePos + 2
	return ast.NewParent(ast.KindStrikethrough, ast.NewSpan(start, p.pos, 0, 0), children), true
}

func findCloseFast(bytes []byte, delimiter byte, count int) (int, bool) {
	i := 0
	for i < len(bytes) {
		if bytes[i] == delimiter {
			closeStart := i
			c := 1
			i++
			for i < len(bytes) && bytes[i] == delimiter {
				c++
				i++
			}
			if c >= count {
				return closeStart, true
			}
		} else {
			i++
		}
	}
	return 0, false
}

func findBackticksFast(bytes []byte, count int) (int, bool) {
	i := 0
	for i < len(bytes) {
		if bytes[i] == '`' {
			closeStart := i
			c := 1
			i++
			for i < len(bytes) && bytes[i] == '`' {
				c++
				i++
			}
			if c == count {
				return closeStart, true
			}
		} else {
			i++
		}
	}
	return 0, false
}

func findDoubleTilde(bytes []byte) (int, bool) {
	if len(bytes) < 2 {
		return 0, false
	}
	for i := 0; i < len(bytes)-1; i++ {
		if bytes[i] == '~' && bytes[i+1] == '~' {
			return i, true
		}
	}
	return 0, false
}

// --- links.go-equivalent ---

func (p *inlineParser) tryLink(isImage bool) (ast.Node, bool) {
	start := p.pos
	if isImage {
		p.pos++
	}
	p.pos++ // skip [

	textEnd, ok := p.findBracket()
	if !ok {
		p.pos = start
		return ast.Node{}, false
	}
	text := p.input[p.pos:textEnd]
	p.pos = textEnd + 1

	if p.pos < len(p.bytes) && p.bytes[p.pos] == '(' {
		if node, ok := p.buildInlineLink(start, isImage, text); ok {
			return node, true
		}
	}

	if node, ok := p.tryReferenceLink(text, start, isImage); ok {
		return node, true
	}

	p.pos = start
	return ast.Node{}, false
}

func (p *inlineParser) buildInlineLink(start int, isImage bool, text string) (ast.Node, bool) {
	p.pos++ // skip (
	url, title, ok := p.parseDest()
	if !ok {
		return ast.Node{}, false
	}

	children := parseInline(text, p.linkDefs)
	var n ast.Node
	if isImage {
		n = ast.NewParent(ast.KindImage, ast.NewSpan(start, p.pos, 0, 0), children)
		n.URL, n.Title, n.Alt = url, title, text
	} else {
		n = ast.NewParent(ast.KindLink, ast.NewSpan(start, p.pos, 0, 0), children)
		n.URL, n.Title, n.RefType = url, title, ast.RefFull
	}
	return n, true
}

func (p *inlineParser) tryReferenceLink(text string, start int, isImage bool) (ast.Node, bool) {
	var def *LinkDef
	for i := range p.linkDefs {
		if strings.EqualFold(p.linkDefs[i].Label, text) {
			def = &p.linkDefs[i]
			break
		}
	}
	if def == nil {
		return ast.Node{}, false
	}
	children := parseInline(text, p.linkDefs)

	var n ast.Node
	if isImage {
		n = ast.NewParent(ast.KindImage, ast.NewSpan(start, p.pos, 0, 0), children)
		n.URL, n.Title, n.Alt = def.URL, def.Title, text
	} else {
		n = ast.NewParent(ast.KindLink, ast.NewSpan(start, p.pos, 0, 0), children)
		n.URL, n.Title, n.RefType = def.URL, def.Title, ast.RefShortcut
	}
	return n, true
}

// findBracket finds the matching closing bracket, honoring nesting and
// backslash escapes.
func (p *inlineParser) findBracket() (int, bool) {
	depth := 1
	i := p.pos
	for i < len(p.bytes) {
		switch p.bytes[i] {
		case '[':
			depth++
		case ']':
			if depth == 1 {
				return i, true
			}
			depth--
		case '\\':
			i++
		}
		i++
	}
	return 0, false
}

func (p *inlineParser) parseDest() (string, *string, bool) {
	p.skipWS()
	url, ok := p.scanURL()
	if !ok {
		return "", nil, false
	}
	p.skipWS()
	title := p.scanTitle()
	p.skipWS()

	if p.pos < len(p.bytes) && p.bytes[p.pos] == ')' {
		p.pos++
		return url, title, true
	}
	return "", nil, false
}

func (p *inlineParser) scanURL() (string, bool) {
	if p.pos < len(p.bytes) && p.bytes[p.pos] == '<' {
		return p.scanAngleURL()
	}
	return p.scanBareURL(), true
}

func (p *inlineParser) scanAngleURL() (string, bool) {
	p.pos++
	rest := p.bytes[p.pos:]
	idx := indexByte(rest, '>')
	if idx < 0 {
		return "", false
	}
	url := p.input[p.pos : p.pos+idx]
	p.pos += idx + 1
	return url, true
}

func (p *inlineParser) scanBareURL() string {
	start := p.pos
	for p.pos < len(p.bytes) {
		switch p.bytes[p.pos] {
		case ' ', '\t', ')', '"', '\'':
			return p.input[start:p.pos]
		}
		p.pos++
	}
	return p.input[start:p.pos]
}

func (p *inlineParser) scanTitle() *string {
	if p.pos >= len(p.bytes) {
		return nil
	}
	delim := p.bytes[p.pos]
	if delim != '"' && delim != '\'' {
		return nil
	}
	p.pos++

	rest := p.bytes[p.pos:]
	idx := indexByte(rest, delim)
	if idx < 0 {
		return nil
	}
	title := p.input[p.pos : p.pos+idx]
	p.pos += idx + 1
	return &title
}

func indexByte(b []byte, c byte) int {
	for i, x := range b {
		if x == c {
			return i
		}
	}
	return -1
}

// --- special.go-equivalent ---

func (p *inlineParser) tryMath() (ast.Node, bool) {
	start := p.pos
	if p.peekAt(1) == '$' {
		return p.tryMathBlockInline(start)
	}
	return p.tryMathInline(start)
}

func (p *inlineParser) tryMathBlockInline(start int) (ast.Node, bool) {
	p.pos += 2
	contentStart := p.pos
	idx := strings.Index(p.input[p.pos:], "$$")
	if idx < 0 {
		p.pos = start
		return ast.Node{}, false
	}
	content := p.input[contentStart : contentStart+idx]
	p.pos = contentStart + idx + 2
	n := ast.NewNode(ast.KindMathBlock, ast.NewSpan(start, p.pos, 0, 0))
	n.Content = content
	return n, true
}

func (p *inlineParser) tryMathInline(start int) (ast.Node, bool) {
	p.pos++
	contentStart := p.pos

	for p.pos < len(p.bytes) {
		if p.bytes[p.pos] == '$' && !p.isEscaped() {
			content := p.input[contentStart:p.pos]
			p.pos++
			n := ast.NewNode(ast.KindMathInline, ast.NewSpan(start, p.pos, 0, 0))
			n.Content = content
			return n, true
		}
		p.pos++
	}

	p.pos = start
	return ast.Node{}, false
}

func (p *inlineParser) isEscaped() bool {
	return p.pos > 0 && p.bytes[p.pos-1] == '\\'
}

func (p *inlineParser) tryFootnoteRef() (ast.Node, bool) {
	start := p.pos
	p.pos += 2 // skip [^

	rest := p.bytes[p.pos:]
	idx := indexByte(rest, ']')
	if idx < 0 {
		p.pos = start
		return ast.Node{}, false
	}
	label := p.input[p.pos : p.pos+idx]
	p.pos += idx + 1

	n := ast.NewNode(ast.KindFootnoteReference, ast.NewSpan(start, p.pos, 0, 0))
	n.Label = label
	return n, true
}

func (p *inlineParser) checkAutoURL() bool {
	rest := p.input[p.pos:]
	return strings.HasPrefix(rest, "http://") || strings.HasPrefix(rest, "https://")
}

func (p *inlineParser) tryAutoURL() (ast.Node, bool) {
	start := p.pos
	for p.pos < len(p.bytes) && !isURLTerminator(p.bytes[p.pos]) {
		p.pos++
	}
	url := p.input[start:p.pos]
	n := ast.NewNode(ast.KindAutoURL, ast.NewSpan(start, p.pos, 0, 0))
	n.URL = url
	return n, true
}

func (p *inlineParser) tryAutolink() (ast.Node, bool) {
	start := p.pos
	p.pos++ // skip <

	rest := p.bytes[p.pos:]
	idx := indexByte(rest, '>')
	if idx < 0 {
		p.pos = start
		return ast.Node{}, false
	}
	url := p.input[p.pos : p.pos+idx]
	p.pos += idx + 1

	if !isValidAutolink(url) {
		p.pos = start
		return ast.Node{}, false
	}

	n := ast.NewNode(ast.KindAutoLink, ast.NewSpan(start, p.pos, 0, 0))
	n.URL = normalizeAutolink(url)
	n.RefType = ast.RefFull
	return n, true
}

func (p *inlineParser) tryEscape() (ast.Node, bool) {
	start := p.pos
	p.pos++

	if p.pos < len(p.bytes) && isEscapable(p.bytes[p.pos]) {
		content := string(p.bytes[p.pos])
		p.pos++
		n := ast.NewNode(ast.KindText, ast.NewSpan(start, p.pos, 0, 0))
		n.Content = content
		return n, true
	}

	p.pos = start
	return ast.Node{}, false
}

func isURLTerminator(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\r', ')', ']', '>':
		return true
	default:
		return false
	}
}

func isValidAutolink(url string) bool {
	return strings.Contains(url, "@") || strings.HasPrefix(url, "http") || strings.HasPrefix(url, "mailto:")
}

func normalizeAutolink(url string) string {
	if strings.Contains(url, "@") && !strings.HasPrefix(url, "mailto:") {
		return "mailto:" + url
	}
	return url
}

func isEscapable(b byte) bool {
	return strings.IndexByte(`\`+"`"+`*_{}[]()#+-.!|<>~`, b) >= 0
}
