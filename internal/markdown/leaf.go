package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func (p *blockParser) tryThematicBreak(line, col int) (ast.Node, bool) {
	start := p.scanner.Pos()
	ch, ok := p.scanner.Peek()
	if !ok || (ch != '-' && ch != '*' && ch != '_') {
		return ast.Node{}, false
	}

	count := p.countThematicChars(ch)
	if count < 3 {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	p.scanner.Consume('\n')
	return ast.NewNode(ast.KindThematicBreak, ast.NewSpan(start, p.scanner.Pos(), line, col)), true
}

func (p *blockParser) countThematicChars(ch byte) int {
	count := 0
	for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
		if p.scanner.Check(ch) {
			count++
			p.scanner.Advance()
		} else if b, ok := p.scanner.Peek(); ok && (b == ' ' || b == '\t') {
			p.scanner.Advance()
		} else {
			return 0
		}
	}
	return count
}

func (p *blockParser) tryATXHeading(line, col int) (ast.Node, bool) {
	if !p.scanner.Check('#') {
		return ast.Node{}, false
	}

	start := p.scanner.Pos()
	level := p.countHashes()

	if level == 0 || !p.isValidHeadingStart() {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	p.scanner.SkipWhitespaceInline()
	content := p.scanHeadingContent()
	p.scanner.Consume('\n')

	text, id := extractHeadingID(content)
	inline := p.parseInline(text)

	n := ast.NewParent(ast.KindHeading, ast.NewSpan(start, p.scanner.Pos(), line, col), inline)
	n.Level = level
	n.ID = id
	return n, true
}

func (p *blockParser) countHashes() uint8 {
	var level uint8
	for p.scanner.Consume('#') && level < 6 {
		level++
	}
	return level
}

func (p *blockParser) isValidHeadingStart() bool {
	if p.scanner.IsEOF() {
		return true
	}
	return p.scanner.Check(' ') || p.scanner.Check('\t') || p.scanner.Check('\n')
}

func (p *blockParser) scanHeadingContent() string {
	start := p.scanner.Pos()
	end := start

	for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
		b, _ := p.scanner.Peek()
		if !p.scanner.Check('#') && b != ' ' && b != '\t' {
			p.scanner.Advance()
			end = p.scanner.Pos()
		} else {
			p.scanner.Advance()
		}
	}

	return strings.TrimSpace(p.scanner.Slice(start, end))
}

func extractHeadingID(content string) (string, *string) {
	if !strings.HasSuffix(content, "}") {
		return content, nil
	}
	pos := strings.LastIndex(content, "{#")
	if pos < 0 {
		return content, nil
	}
	id := content[pos+2 : len(content)-1]
	return strings.TrimSpace(content[:pos]), &id
}

func (p *blockParser) parseParagraph(line, col int) (ast.Node, bool) {
	start := p.scanner.Pos()
	content := p.scanLineContent()
	p.scanner.Consume('\n')

	if strings.TrimSpace(content) == "" {
		return ast.Node{}, false
	}

	inline := p.parseInline(content)
	return ast.NewParent(ast.KindParagraph, ast.NewSpan(start, p.scanner.Pos(), line, col), inline), true
}

func (p *blockParser) tryDefinitionList(line, col int) (ast.Node, bool) {
	start := p.scanner.Pos()
	termContent := p.scanLineContent()

	if strings.TrimSpace(termContent) == "" {
		return ast.Node{}, false
	}
	p.scanner.Consume('\n')

	if !p.isDefinitionMarker() {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	p.skipDefinitionMarker()
	items := p.collectDefinitionItems(termContent, start, line, col)

	return ast.NewParent(ast.KindDefinitionList, ast.NewSpan(start, p.scanner.Pos(), line, col), items), true
}

func (p *blockParser) isDefinitionMarker() bool {
	return p.scanner.Check(':')
}

func (p *blockParser) skipDefinitionMarker() {
	p.scanner.Advance() // skip ':'
	if b, ok := p.scanner.Peek(); ok && (b == ' ' || b == '\t') {
		p.scanner.Advance()
	}
}

func (p *blockParser) collectDefinitionItems(termContent string, start, line, col int) []ast.Node {
	var items []ast.Node

	termInline := p.parseInline(termContent)
	items = append(items, ast.NewParent(ast.KindDefinitionTerm, ast.NewSpan(start, p.scanner.Pos(), line, col), termInline))

	for {
		descStart := p.scanner.Pos()
		descLine := p.scanner.Line()
		descCol := p.scanner.Column()
		descContent := p.scanLineContent()
		p.scanner.Consume('\n')

		descInline := p.parseInline(descContent)
		items = append(items, ast.NewParent(ast.KindDefinitionDescription, ast.NewSpan(descStart, p.scanner.Pos(), descLine, descCol), descInline))

		if !p.isDefinitionMarker() {
			break
		}
		p.skipDefinitionMarker()
	}

	return items
}
