package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// tryFencedCode parses a fenced code block, recognizing the extended
// attribute syntax on the info line: ```lang highlight=1,3-5
// plusdiff=2 minusdiff=4 linenumbers. When none of the extended
// attributes are present, it emits a plain FencedCodeBlock; otherwise
// it emits the richer CodeBlockExt.
func (p *blockParser) tryFencedCode(line, col int) (ast.Node, bool) {
	fenceChar, ok := p.scanner.Peek()
	if !ok || (fenceChar != '`' && fenceChar != '~') {
		return ast.Node{}, false
	}

	start := p.scanner.Pos()
	fenceLen := p.countFenceChars(fenceChar)
	if fenceLen < 3 {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	p.scanner.SkipWhitespaceInline()
	info := p.scanLineContent()
	p.scanner.Consume('\n')

	attrs := parseCodeInfo(info)
	code := p.scanFencedContent(fenceChar, fenceLen)

	textNode := ast.NewNode(ast.KindText, ast.EmptySpan())
	textNode.Content = code

	span := ast.NewSpan(start, p.scanner.Pos(), line, col)

	if !attrs.hasExtensions() {
		n := ast.NewParent(ast.KindFencedCodeBlock, span, []ast.Node{textNode})
		n.Language = attrs.language
		n.Info = attrs.rest
		return n, true
	}

	n := ast.NewParent(ast.KindCodeBlockExt, span, []ast.Node{textNode})
	n.Language = attrs.language
	n.Highlight = attrs.highlight
	n.Plusdiff = attrs.plusdiff
	n.Minusdiff = attrs.minusdiff
	n.LineNumbers = attrs.lineNumbers
	return n, true
}

func (p *blockParser) countFenceChars(ch byte) int {
	count := 0
	for p.scanner.Consume(ch) {
		count++
	}
	return count
}

func (p *blockParser) scanFencedContent(fenceChar byte, fenceLen int) string {
	start := p.scanner.Pos()
	end := start

	for {
		if p.scanner.IsEOF() {
			break
		}

		lineStart := p.scanner.Pos()
		p.scanner.SkipWhitespaceInline()

		if p.isClosingFence(fenceChar, fenceLen) {
			p.scanner.SkipWhitespaceInline()
			if p.scanner.IsEOF() || p.scanner.Check('\n') {
				p.scanner.Consume('\n')
				break
			}
		}

		p.scanner.SetPos(lineStart)
		p.scanner.SkipLine()
		end = p.scanner.Pos()
	}

	return p.scanner.Slice(start, end)
}

func (p *blockParser) isClosingFence(fenceChar byte, fenceLen int) bool {
	closeLen := 0
	for p.scanner.Check(fenceChar) {
		p.scanner.Advance()
		closeLen++
	}
	return closeLen >= fenceLen
}

func (p *blockParser) tryMathBlock(line, col int) (ast.Node, bool) {
	if !p.scanner.CheckStr("$$") {
		return ast.Node{}, false
	}

	start := p.scanner.Pos()
	p.scanner.AdvanceN(2)
	p.scanner.Consume('\n')

	content, ok := p.scanMathContent()
	if !ok {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	n := ast.NewNode(ast.KindMathBlock, ast.NewSpan(start, p.scanner.Pos(), line, col))
	n.Content = content
	return n, true
}

func (p *blockParser) scanMathContent() (string, bool) {
	contentStart := p.scanner.Pos()

	for {
		if p.scanner.IsEOF() {
			return "", false
		}
		if p.scanner.CheckStr("$$") {
			content := strings.TrimRight(p.scanner.Slice(contentStart, p.scanner.Pos()), " \t\n\r")
			p.scanner.AdvanceN(2)
			p.scanner.Consume('\n')
			return content, true
		}
		p.scanner.Advance()
	}
}

func (p *blockParser) parseIndentedCode(line, col int) ast.Node {
	start := p.scanner.Pos()
	content := p.collectIndentedLines()

	textNode := ast.NewNode(ast.KindText, ast.EmptySpan())
	textNode.Content = content

	return ast.NewParent(ast.KindIndentedCodeBlock, ast.NewSpan(start, p.scanner.Pos(), line, col), []ast.Node{textNode})
}

func (p *blockParser) collectIndentedLines() string {
	var content strings.Builder

	for {
		indent := p.skipIndent(4)
		if indent < 4 && !p.scanner.Check('\n') && !p.scanner.IsEOF() {
			break
		}

		start := p.scanner.Pos()
		for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
			p.scanner.Advance()
		}
		content.WriteString(p.scanner.Slice(start, p.scanner.Pos()))
		content.WriteByte('\n')

		if !p.scanner.Consume('\n') {
			break
		}
	}

	return content.String()
}

func (p *blockParser) skipIndent(max int) int {
	indent := 0
	for indent < max && (p.scanner.Consume(' ') || p.scanner.Consume('\t')) {
		indent++
	}
	return indent
}

// codeInfoAttrs holds the parsed fenced-code info-string attributes.
type codeInfoAttrs struct {
	language    *string
	rest        *string
	highlight   *string
	plusdiff    *string
	minusdiff   *string
	lineNumbers bool
}

func (a codeInfoAttrs) hasExtensions() bool {
	return a.highlight != nil || a.plusdiff != nil || a.minusdiff != nil || a.lineNumbers
}

// parseCodeInfo parses an info string of the form:
//
//	lang key=value key=value linenumbers
//
// where recognized keys are highlight, plusdiff, minusdiff, and the
// bare flag linenumbers. Anything else is preserved verbatim in rest.
func parseCodeInfo(info string) codeInfoAttrs {
	if info == "" {
		return codeInfoAttrs{}
	}

	fields := strings.Fields(info)
	var attrs codeInfoAttrs
	var restParts []string

	for i, field := range fields {
		if i == 0 && !strings.Contains(field, "=") && field != "linenumbers" {
			lang := field
			attrs.language = &lang
			continue
		}

		switch {
		case field == "linenumbers":
			attrs.lineNumbers = true
		case strings.HasPrefix(field, "highlight="):
			v := unquoteAttrValue(strings.TrimPrefix(field, "highlight="))
			attrs.highlight = &v
		case strings.HasPrefix(field, "plusdiff="):
			v := unquoteAttrValue(strings.TrimPrefix(field, "plusdiff="))
			attrs.plusdiff = &v
		case strings.HasPrefix(field, "minusdiff="):
			v := unquoteAttrValue(strings.TrimPrefix(field, "minusdiff="))
			attrs.minusdiff = &v
		default:
			restParts = append(restParts, field)
		}
	}

	if len(restParts) > 0 {
		rest := strings.Join(restParts, " ")
		attrs.rest = &rest
	}
	return attrs
}

// unquoteAttrValue strips a single matching pair of leading/trailing
// `"` or `'` from v, leaving unquoted values untouched.
func unquoteAttrValue(v string) string {
	if len(v) < 2 {
		return v
	}
	first, last := v[0], v[len(v)-1]
	if (first == '"' && last == '"') || (first == '\'' && last == '\'') {
		return v[1 : len(v)-1]
	}
	return v
}
