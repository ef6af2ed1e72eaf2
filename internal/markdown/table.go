package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// tryTable recognizes a GFM table: a header row, a delimiter row of
// dashes/colons, and zero or more data rows, each pipe-delimited.
func (p *blockParser) tryTable(line, col int) (ast.Node, bool) {
	if !strings.Contains(p.peekLine(), "|") {
		return ast.Node{}, false
	}

	snap := p.scanner.Snap()
	start := p.scanner.Pos()

	headerLine := p.scanRawLine()
	p.scanner.Consume('\n')

	if p.scanner.IsEOF() {
		p.scanner.Restore(snap)
		return ast.Node{}, false
	}
	delimLine := p.scanRawLine()
	aligns, ok := parseTableDelimiterRow(delimLine)
	if !ok {
		p.scanner.Restore(snap)
		return ast.Node{}, false
	}
	p.scanner.Consume('\n')

	headerCells := splitTableRow(headerLine)
	headRow := p.buildTableRow(headerCells, aligns, true)
	head := ast.NewParent(ast.KindTableHead, ast.EmptySpan(), []ast.Node{headRow})

	var bodyRows []ast.Node
	for !p.scanner.IsEOF() {
		rowSnap := p.scanner.Snap()
		rowLine := p.peekLine()
		if strings.TrimSpace(rowLine) == "" || !strings.Contains(rowLine, "|") {
			p.scanner.Restore(rowSnap)
			break
		}
		raw := p.scanRawLine()
		p.scanner.Consume('\n')
		cells := splitTableRow(raw)
		bodyRows = append(bodyRows, p.buildTableRow(cells, aligns, false))
	}
	body := ast.NewParent(ast.KindTableBody, ast.EmptySpan(), bodyRows)

	n := ast.NewParent(ast.KindTable, ast.NewSpan(start, p.scanner.Pos(), line, col), []ast.Node{head, body})
	return n, true
}

// peekLine returns the current line's raw text without consuming it.
func (p *blockParser) peekLine() string {
	snap := p.scanner.Snap()
	defer p.scanner.Restore(snap)
	return p.scanRawLine()
}

func (p *blockParser) scanRawLine() string {
	start := p.scanner.Pos()
	for !p.scanner.IsEOF() && !p.scanner.Check('\n') {
		p.scanner.Advance()
	}
	return p.scanner.Slice(start, p.scanner.Pos())
}

func (p *blockParser) buildTableRow(cells []string, aligns []ast.Alignment, isHeader bool) ast.Node {
	var cellNodes []ast.Node
	for i, cellText := range cells {
		align := ast.AlignNone
		if i < len(aligns) {
			align = aligns[i]
		}
		inline := p.parseInline(strings.TrimSpace(cellText))
		cell := ast.NewParent(ast.KindTableCell, ast.EmptySpan(), inline)
		cell.Alignment = align
		cell.IsHeader = isHeader
		cellNodes = append(cellNodes, cell)
	}
	return ast.NewParent(ast.KindTableRow, ast.EmptySpan(), cellNodes)
}

// splitTableRow splits a pipe-delimited row into cells, tolerating
// (and stripping) leading/trailing pipes, and honoring "\|" escapes.
func splitTableRow(row string) []string {
	row = strings.TrimSpace(row)
	row = strings.TrimPrefix(row, "|")
	row = strings.TrimSuffix(row, "|")

	var cells []string
	var cur strings.Builder
	escaped := false
	for i := 0; i < len(row); i++ {
		c := row[i]
		if escaped {
			cur.WriteByte(c)
			escaped = false
			continue
		}
		if c == '\\' {
			escaped = true
			continue
		}
		if c == '|' {
			cells = append(cells, cur.String())
			cur.Reset()
			continue
		}
		cur.WriteByte(c)
	}
	cells = append(cells, cur.String())
	return cells
}

// parseTableDelimiterRow validates that every cell of a candidate
// delimiter row matches :?-+:? and returns the per-column alignment.
func parseTableDelimiterRow(row string) ([]ast.Alignment, bool) {
	cells := splitTableRow(row)
	if len(cells) == 0 {
		return nil, false
	}

	aligns := make([]ast.Alignment, 0, len(cells))
	for _, cell := range cells {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			return nil, false
		}
		left := strings.HasPrefix(cell, ":")
		right := strings.HasSuffix(cell, ":")
		dashes := cell
		if left {
			dashes = dashes[1:]
		}
		if right && len(dashes) > 0 {
			dashes = dashes[:len(dashes)-1]
		}
		if len(dashes) == 0 || strings.Trim(dashes, "-") != "" {
			return nil, false
		}

		switch {
		case left && right:
			aligns = append(aligns, ast.AlignCenter)
		case left:
			aligns = append(aligns, ast.AlignLeft)
		case right:
			aligns = append(aligns, ast.AlignRight)
		default:
			aligns = append(aligns, ast.AlignNone)
		}
	}
	return aligns, true
}
