package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// blockParser parses block-level elements: headings, lists, code
// blocks, tables, and everything else a line can start with.
type blockParser struct {
	scanner  *scanner.Scanner
	linkDefs []LinkDef
	depth    int
}

// maxNestingDepth bounds recursive re-parsing (blockquotes, custom
// elements) so a malicious or malformed document can't blow the stack.
const maxNestingDepth = 64

func newBlockParser(s *scanner.Scanner, linkDefs []LinkDef) *blockParser {
	return &blockParser{scanner: s, linkDefs: linkDefs}
}

func (p *blockParser) parseBlocks() []ast.Node {
	nodes := make([]ast.Node, 0, 32)

	for !p.scanner.IsEOF() {
		p.scanner.SkipBlankLines()
		if p.scanner.IsEOF() {
			break
		}
		if node, ok := p.parseBlock(); ok {
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func (p *blockParser) parseBlock() (ast.Node, bool) {
	startPos := p.scanner.Pos()
	startLine := p.scanner.Line()
	startCol := p.scanner.Column()

	p.scanner.SkipWhitespaceInline()
	indent := p.scanner.Pos() - startPos

	first, _ := p.scanner.Peek()

	switch first {
	case '-', '*', '_':
		if node, ok := p.tryThematicBreak(startLine, startCol); ok {
			return node, true
		}
	case '#':
		if node, ok := p.tryATXHeading(startLine, startCol); ok {
			return node, true
		}
	case '`', '~':
		if node, ok := p.tryFencedCode(startLine, startCol); ok {
			return node, true
		}
	case '$':
		if node, ok := p.tryMathBlock(startLine, startCol); ok {
			return node, true
		}
	case '>':
		return p.parseBlockQuote(startLine, startCol), true
	case '<':
		if node, ok := p.tryCustomElement(startLine, startCol); ok {
			return node, true
		}
		if node, ok := p.tryHTMLBlock(startLine, startCol); ok {
			return node, true
		}
	}

	if node, ok := p.tryList(startLine, startCol); ok {
		return node, true
	}

	if node, ok := p.tryTable(startLine, startCol); ok {
		return node, true
	}

	if indent >= 4 {
		return p.parseIndentedCode(startLine, startCol), true
	}

	p.scanner.SetPos(startPos)
	if node, ok := p.tryDefinitionList(startLine, startCol); ok {
		return node, true
	}

	p.scanner.SetPos(startPos)
	return p.parseParagraph(startLine, startCol)
}

func (p *blockParser) parseInline(text string) []ast.Node {
	return parseInline(text, p.linkDefs)
}

// scanLineContent consumes the rest of the current line (not the
// newline) and returns its trimmed content.
func (p *blockParser) scanLineContent() string {
	start := p.scanner.Pos()
	for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
		p.scanner.Advance()
	}
	return strings.TrimSpace(p.scanner.Slice(start, p.scanner.Pos()))
}

// subParse recursively runs a full markdown parse over nested content
// (blockquotes, custom elements), capped at maxNestingDepth.
func (p *blockParser) subParse(content string) []ast.Node {
	if p.depth >= maxNestingDepth {
		n := ast.NewNode(ast.KindText, ast.EmptySpan())
		n.Content = content
		return []ast.Node{n}
	}
	inner := newParser(content)
	inner.depth = p.depth + 1
	doc := inner.parse()
	return doc.Nodes
}
