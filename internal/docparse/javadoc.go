package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// JavaDocParser extracts /** ... */ comments from Java source. Comment
// syntax is identical to JSDoc's; only the tag vocabulary and target
// doc type differ.
type JavaDocParser struct {
	scanner *scanner.Scanner
}

// NewJavaDocParser creates a parser over input.
func NewJavaDocParser(input string) *JavaDocParser {
	return &JavaDocParser{scanner: scanner.New(input)}
}

// Parse collects every JavaDoc comment into a DocComment node.
func (p *JavaDocParser) Parse() ast.Document {
	nodes := p.collectComments()
	totalNodes := 0
	for i := range nodes {
		totalNodes += nodes[i].CountNodes()
	}

	return ast.Document{
		SourcePath: "",
		DocType:    ast.DocJava,
		Nodes:      nodes,
		Metadata: ast.DocumentMetadata{
			TotalLines: p.scanner.Line(),
			TotalNodes: totalNodes,
		},
	}
}

func (p *JavaDocParser) collectComments() []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	for !p.scanner.IsEOF() {
		if p.scanner.CheckStr("/**") && !p.scanner.CheckStr("/***") {
			if n, ok := p.parseComment(); ok {
				nodes = append(nodes, n)
			}
		} else {
			p.scanner.Advance()
		}
	}
	return nodes
}

func (p *JavaDocParser) parseComment() (ast.Node, bool) {
	startPos := p.scanner.Pos()
	startLine := p.scanner.Line()
	startCol := p.scanner.Column()

	p.scanner.AdvanceN(3)

	content, ok := p.extractCommentContent()
	if !ok {
		return ast.Node{}, false
	}
	children := parseTaggedContent(content, "@", parseJavaDocTag)

	n := ast.NewParent(
		ast.KindDocComment,
		ast.NewSpan(startPos, p.scanner.Pos(), startLine, startCol),
		children,
	)
	n.Style = ast.DocStyleJavaDoc
	return n, true
}

func (p *JavaDocParser) extractCommentContent() (string, bool) {
	var content strings.Builder
	for !p.scanner.IsEOF() {
		if p.scanner.CheckStr("*/") {
			p.scanner.AdvanceN(2)
			return content.String(), true
		}
		if p.scanner.Check('\n') {
			content.WriteByte('\n')
			p.scanner.Advance()
			p.skipLinePrefix()
		} else {
			b, _ := p.scanner.Peek()
			content.WriteByte(b)
			p.scanner.Advance()
		}
	}
	return "", false
}

func (p *JavaDocParser) skipLinePrefix() {
	p.scanner.SkipWhitespaceInline()
	if p.scanner.Check('*') && !p.scanner.CheckStr("*/") {
		p.scanner.Advance()
		if p.scanner.Check(' ') {
			p.scanner.Advance()
		}
	}
}
