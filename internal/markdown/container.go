package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func (p *blockParser) parseBlockQuote(line, col int) ast.Node {
	start := p.scanner.Pos()
	content := p.collectBlockQuoteContent()

	if alertType, body, ok := tryParseAlert(content); ok {
		innerNodes := p.subParse(body)
		n := ast.NewParent(ast.KindAlert, ast.NewSpan(start, p.scanner.Pos(), line, col), innerNodes)
		n.Name = alertType.String()
		return n
	}

	innerNodes := p.subParse(content)
	return ast.NewParent(ast.KindBlockQuote, ast.NewSpan(start, p.scanner.Pos(), line, col), innerNodes)
}

func (p *blockParser) collectBlockQuoteContent() string {
	var content strings.Builder

	for !p.scanner.IsEOF() && p.scanner.Consume('>') {
		p.scanner.Consume(' ')
		p.appendLineTo(&content)
		content.WriteByte('\n')
		p.scanner.Consume('\n')
	}

	return content.String()
}

func (p *blockParser) appendLineTo(content *strings.Builder) {
	start := p.scanner.Pos()
	for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
		p.scanner.Advance()
	}
	content.WriteString(p.scanner.Slice(start, p.scanner.Pos()))
}

// tryParseAlert recognizes a GitHub-style callout: the first line of
// blockquote content is exactly "[!KEYWORD]".
func tryParseAlert(content string) (ast.AlertType, string, bool) {
	nl := strings.IndexByte(content, '\n')
	firstLine := content
	rest := ""
	if nl >= 0 {
		firstLine = content[:nl]
		rest = content[nl+1:]
	}
	firstLine = strings.TrimSpace(firstLine)

	if !strings.HasPrefix(firstLine, "[!") || !strings.HasSuffix(firstLine, "]") {
		return 0, "", false
	}
	keyword := firstLine[2 : len(firstLine)-1]
	alertType, ok := ast.AlertTypeFromString(keyword)
	if !ok {
		return 0, "", false
	}
	return alertType, rest, true
}

// --- lists ---

func (p *blockParser) tryList(line, col int) (ast.Node, bool) {
	ch, ok := p.scanner.Peek()
	if !ok {
		return ast.Node{}, false
	}

	if isBulletMarker(ch) && followedBySpace(p.scanner, 1) {
		return p.parseList(false, line, col), true
	}
	if digit, digitLen := scanOrderedPrefix(p.scanner); digitLen > 0 && digit {
		return p.parseList(true, line, col), true
	}
	return ast.Node{}, false
}

func isBulletMarker(ch byte) bool {
	return ch == '-' || ch == '*' || ch == '+'
}

func followedBySpace(s interface{ PeekAt(int) (byte, bool) }, offset int) bool {
	b, ok := s.PeekAt(offset)
	return ok && b == ' '
}

// scanOrderedPrefix reports whether the scanner is positioned at an
// ordered-list marker (digits followed by '.' or ')' and a space)
// without consuming anything.
func scanOrderedPrefix(s interface {
	PeekAt(int) (byte, bool)
}) (bool, int) {
	i := 0
	for {
		b, ok := s.PeekAt(i)
		if !ok || b < '0' || b > '9' {
			break
		}
		i++
	}
	if i == 0 {
		return false, 0
	}
	delim, ok := s.PeekAt(i)
	if !ok || (delim != '.' && delim != ')') {
		return false, 0
	}
	sp, ok := s.PeekAt(i + 1)
	if !ok || sp != ' ' {
		return false, 0
	}
	return true, i + 2
}

func (p *blockParser) parseList(ordered bool, line, col int) ast.Node {
	start := p.scanner.Pos()
	items, startNum, tight := p.collectListItems(ordered)

	n := ast.NewParent(ast.KindList, ast.NewSpan(start, p.scanner.Pos(), line, col), items)
	n.Ordered = ordered
	n.Tight = tight
	if ordered && startNum != nil {
		n.Start = startNum
	}
	return n
}

func (p *blockParser) collectListItems(ordered bool) ([]ast.Node, *uint32, bool) {
	var items []ast.Node
	var startNum *uint32
	tight := true

	for !p.scanner.IsEOF() {
		marker, num, ok := p.consumeListMarker(ordered)
		if !ok {
			break
		}
		if ordered && startNum == nil {
			startNum = num
		}

		item, blankAfter := p.parseListItem(marker)
		items = append(items, item)
		if blankAfter {
			tight = false
		}

		if !p.isListMarkerAhead(ordered) {
			break
		}
	}

	return items, startNum, tight
}

func (p *blockParser) isListMarkerAhead(ordered bool) bool {
	if p.scanner.IsEOF() {
		return false
	}
	ch, _ := p.scanner.Peek()
	if !ordered {
		return isBulletMarker(ch) && followedBySpace(p.scanner, 1)
	}
	isOrdered, _ := scanOrderedPrefix(p.scanner)
	return isOrdered
}

func (p *blockParser) consumeListMarker(ordered bool) (ast.ListMarker, *uint32, bool) {
	if !ordered {
		ch, ok := p.scanner.Peek()
		if !ok || !isBulletMarker(ch) || !followedBySpace(p.scanner, 1) {
			return ast.ListMarker{}, nil, false
		}
		p.scanner.Advance() // marker
		p.scanner.Consume(' ')
		return ast.BulletMarker(ch), nil, true
	}

	isOrdered, prefixLen := scanOrderedPrefix(p.scanner)
	if !isOrdered {
		return ast.ListMarker{}, nil, false
	}
	start := p.scanner.Pos()
	numStr := p.scanner.Slice(start, start+prefixLen-2)
	var num uint32
	for _, c := range numStr {
		num = num*10 + uint32(c-'0')
	}
	p.scanner.AdvanceN(prefixLen - 1) // digits + delimiter
	delim, _ := p.scanner.PeekAt(-1)
	p.scanner.Consume(' ')
	return ast.OrderedMarker(delim), &num, true
}

func (p *blockParser) parseListItem(marker ast.ListMarker) (ast.Node, bool) {
	itemStart := p.scanner.Pos()
	line := p.scanner.Line()
	col := p.scanner.Column()

	checked := p.consumeCheckbox()

	content := p.scanLineContent()
	p.scanner.Consume('\n')
	blankAfter := p.peekBlankLine()

	inline := p.parseInline(content)
	para := ast.NewParent(ast.KindParagraph, ast.EmptySpan(), inline)

	n := ast.NewParent(ast.KindListItem, ast.NewSpan(itemStart, p.scanner.Pos(), line, col), []ast.Node{para})
	n.Marker = marker
	n.Checked = checked
	return n, blankAfter
}

// consumeCheckbox recognizes a GFM task-list marker "[ ] " or "[x] " /
// "[X] " at the start of item content.
func (p *blockParser) consumeCheckbox() *bool {
	if !p.scanner.Check('[') {
		return nil
	}
	snap := p.scanner.Snap()
	p.scanner.Advance()
	mark, ok := p.scanner.Peek()
	if !ok || (mark != ' ' && mark != 'x' && mark != 'X') {
		p.scanner.Restore(snap)
		return nil
	}
	p.scanner.Advance()
	if !p.scanner.Consume(']') {
		p.scanner.Restore(snap)
		return nil
	}
	p.scanner.Consume(' ')
	checked := mark == 'x' || mark == 'X'
	return &checked
}

func (p *blockParser) peekBlankLine() bool {
	snap := p.scanner.Snap()
	defer p.scanner.Restore(snap)
	p.scanner.SkipWhitespaceInline()
	return p.scanner.Check('\n')
}
