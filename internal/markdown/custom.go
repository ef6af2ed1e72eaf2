package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// tryCustomElement recognizes the custom block elements <toc>, <steps>,
// and <tabs>.
func (p *blockParser) tryCustomElement(line, col int) (ast.Node, bool) {
	if !p.scanner.Check('<') {
		return ast.Node{}, false
	}

	start := p.scanner.Pos()

	if node, ok := p.tryTOC(start, line, col); ok {
		return node, true
	}
	if node, ok := p.trySteps(start, line, col); ok {
		return node, true
	}
	if node, ok := p.tryTabs(start, line, col); ok {
		return node, true
	}
	return ast.Node{}, false
}

func (p *blockParser) tryTOC(start int, line, col int) (ast.Node, bool) {
	p.scanner.SetPos(start)

	if !p.scanner.CheckStr("<toc") {
		return ast.Node{}, false
	}
	p.scanner.AdvanceN(4)
	p.scanner.SkipWhitespaceInline()

	if p.scanner.Consume('/') {
		if !p.scanner.Consume('>') {
			p.scanner.SetPos(start)
			return ast.Node{}, false
		}
		p.scanner.SkipWhitespaceInline()
		p.scanner.Consume('\n')
		return ast.NewNode(ast.KindToc, ast.NewSpan(start, p.scanner.Pos(), line, col)), true
	}

	if !p.scanner.Consume('>') {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}
	p.scanner.SkipWhitespaceInline()
	p.scanner.Consume('\n')
	return ast.NewNode(ast.KindToc, ast.NewSpan(start, p.scanner.Pos(), line, col)), true
}

func (p *blockParser) trySteps(start int, line, col int) (ast.Node, bool) {
	p.scanner.SetPos(start)

	if !p.scanner.CheckStr("<steps>") && !p.scanner.CheckStr("<steps ") {
		return ast.Node{}, false
	}

	p.scanner.AdvanceN(6)
	for !p.scanner.IsEOF() && !p.scanner.Check('>') {
		p.scanner.Advance()
	}
	if !p.scanner.Consume('>') {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}
	p.scanner.Consume('\n')

	var steps []ast.Node

	for !p.scanner.IsEOF() {
		p.scanner.SkipBlankLines()
		p.scanner.SkipWhitespaceInline()

		if p.scanner.CheckStr("</steps>") {
			p.scanner.AdvanceN(8)
			p.scanner.Consume('\n')
			break
		}

		if step, ok := p.tryStep(); ok {
			steps = append(steps, step)
		} else {
			p.scanner.SkipLine()
		}
	}

	return ast.NewParent(ast.KindSteps, ast.NewSpan(start, p.scanner.Pos(), line, col), steps), true
}

func (p *blockParser) tryStep() (ast.Node, bool) {
	start := p.scanner.Pos()
	line := p.scanner.Line()
	col := p.scanner.Column()

	if !p.scanner.CheckStr("<step>") && !p.scanner.CheckStr("<step ") {
		return ast.Node{}, false
	}

	p.scanner.AdvanceN(5)
	for !p.scanner.IsEOF() && !p.scanner.Check('>') {
		p.scanner.Advance()
	}
	if !p.scanner.Consume('>') {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}
	p.scanner.Consume('\n')

	content := p.collectUntilCloseTag("</step>")
	inner := p.subParse(content)

	return ast.NewParent(ast.KindStep, ast.NewSpan(start, p.scanner.Pos(), line, col), inner), true
}

func (p *blockParser) tryTabs(start int, line, col int) (ast.Node, bool) {
	p.scanner.SetPos(start)

	if !p.scanner.CheckStr("<tabs") {
		return ast.Node{}, false
	}
	p.scanner.AdvanceN(5)
	p.scanner.SkipWhitespaceInline()

	names, ok := p.parseTabsNames()
	if !ok {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}

	for !p.scanner.IsEOF() && !p.scanner.Check('>') {
		p.scanner.Advance()
	}
	if !p.scanner.Consume('>') {
		p.scanner.SetPos(start)
		return ast.Node{}, false
	}
	p.scanner.Consume('\n')

	content := p.collectUntilCloseTag("</tabs>")
	inner := p.subParse(content)

	n := ast.NewParent(ast.KindTabs, ast.NewSpan(start, p.scanner.Pos(), line, col), inner)
	n.Names = names
	return n, true
}

func (p *blockParser) parseTabsNames() ([]string, bool) {
	if !p.scanner.CheckStr("names=") {
		return nil, true
	}
	p.scanner.AdvanceN(6)

	quote, ok := p.scanner.Peek()
	if !ok || (quote != '"' && quote != '\'') {
		return nil, true
	}
	p.scanner.Advance()

	start := p.scanner.Pos()
	for !p.scanner.IsEOF() {
		b, ok := p.scanner.Peek()
		if !ok || b == quote {
			break
		}
		p.scanner.Advance()
	}
	namesStr := p.scanner.Slice(start, p.scanner.Pos())
	p.scanner.Advance() // closing quote

	var names []string
	for _, s := range strings.Split(namesStr, ",") {
		s = strings.TrimSpace(s)
		if s != "" {
			names = append(names, s)
		}
	}
	return names, true
}

// collectUntilCloseTag consumes input until a balanced closing tag
// (e.g. "</step>"), tracking nested open/close tags of the same name.
func (p *blockParser) collectUntilCloseTag(closeTag string) string {
	var content strings.Builder
	depth := 1
	openTag := "<" + closeTag[2:len(closeTag)-1]

	for !p.scanner.IsEOF() {
		if depth == 1 {
			pos := p.scanner.Pos()
			p.scanner.SkipWhitespaceInline()
			if p.scanner.CheckStr(closeTag) {
				p.scanner.AdvanceN(len(closeTag))
				p.scanner.Consume('\n')
				break
			}
			p.scanner.SetPos(pos)
		}

		if p.scanner.CheckStr(openTag) {
			depth++
		} else if p.scanner.CheckStr(closeTag) {
			depth--
			if depth == 0 {
				p.scanner.AdvanceN(len(closeTag))
				p.scanner.Consume('\n')
				break
			}
		}

		start := p.scanner.Pos()
		p.scanner.Advance()
		content.WriteString(p.scanner.Slice(start, p.scanner.Pos()))
	}

	return content.String()
}
