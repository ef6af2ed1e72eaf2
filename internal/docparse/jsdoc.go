// Package docparse extracts structured documentation comments — JSDoc,
// JavaDoc, and Python docstrings — into the shared ast.Node tree,
// reentering the markdown parser for free-text description content.
package docparse

import (
	"strings"
	"unicode"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/markdown"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// JSDocParser extracts /** ... */ comments from JavaScript/TypeScript source.
type JSDocParser struct {
	scanner *scanner.Scanner
}

// NewJSDocParser creates a parser over input.
func NewJSDocParser(input string) *JSDocParser {
	return &JSDocParser{scanner: scanner.New(input)}
}

// Parse collects every JSDoc comment into a DocComment node.
func (p *JSDocParser) Parse() ast.Document {
	nodes := p.collectComments()
	totalNodes := 0
	for i := range nodes {
		totalNodes += nodes[i].CountNodes()
	}

	return ast.Document{
		SourcePath: "",
		DocType:    ast.DocJavaScript,
		Nodes:      nodes,
		Metadata: ast.DocumentMetadata{
			TotalLines: p.scanner.Line(),
			TotalNodes: totalNodes,
		},
	}
}

func (p *JSDocParser) collectComments() []ast.Node {
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

func (p *JSDocParser) parseComment() (ast.Node, bool) {
	startPos := p.scanner.Pos()
	startLine := p.scanner.Line()
	startCol := p.scanner.Column()

	p.scanner.AdvanceN(3) // skip /**

	content, ok := p.extractCommentContent()
	if !ok {
		return ast.Node{}, false
	}
	children := parseTaggedContent(content, "@", parseJSDocTag)

	n := ast.NewParent(
		ast.KindDocComment,
		ast.NewSpan(startPos, p.scanner.Pos(), startLine, startCol),
		children,
	)
	n.Style = ast.DocStyleJSDoc
	return n, true
}

func (p *JSDocParser) extractCommentContent() (string, bool) {
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

func (p *JSDocParser) skipLinePrefix() {
	p.scanner.SkipWhitespaceInline()
	if p.scanner.Check('*') && !p.scanner.CheckStr("*/") {
		p.scanner.Advance()
		if p.scanner.Check(' ') {
			p.scanner.Advance()
		}
	}
}

// parseTaggedContent is the shared JSDoc/JavaDoc body algorithm: lines
// before the first tag marker become a DocDescription (re-parsed as
// markdown), each subsequent tag line (plus its continuation lines) is
// handed to the given tag parser.
func parseTaggedContent(content, marker string, parseTag func(line string, lines []string, index *int) (ast.Node, bool)) []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	var description strings.Builder
	inDescription := true
	lines := strings.Split(content, "\n")

	flush := func() {
		if inDescription && strings.TrimSpace(description.String()) != "" {
			desc := strings.TrimSpace(description.String())
			n := ast.NewParent(ast.KindDocDescription, ast.EmptySpan(), markdown.New(desc).Parse().Nodes)
			n.Content = desc
			nodes = append(nodes, n)
			description.Reset()
		}
		inDescription = false
	}

	for i := 0; i < len(lines); i++ {
		line := strings.TrimSpace(lines[i])
		if strings.HasPrefix(line, marker) {
			flush()
			if n, ok := parseTag(line, lines, &i); ok {
				nodes = append(nodes, n)
			}
		} else if inDescription {
			if description.Len() > 0 {
				description.WriteByte('\n')
			}
			description.WriteString(line)
		}
	}
	flush()
	return nodes
}

// collectContinuation appends the non-blank, non-tag lines following a
// tag line (trimmed, whatever their indentation) to its content,
// advancing index past them.
func collectContinuation(marker, initial string, lines []string, index *int) string {
	content := initial
	for *index+1 < len(lines) {
		next := strings.TrimSpace(lines[*index+1])
		if strings.HasPrefix(next, marker) || next == "" {
			break
		}
		content += " " + next
		*index++
	}
	return content
}

func extractTypePrefix(content string) (*string, string) {
	content = strings.TrimSpace(content)
	if !strings.HasPrefix(content, "{") {
		return nil, content
	}
	end := strings.Index(content, "}")
	if end < 0 {
		return nil, content
	}
	t := content[1:end]
	return &t, strings.TrimSpace(content[end+1:])
}

func nonEmptyStr(s string) *string {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return nil
	}
	return &trimmed
}

func splitTagHeadRest(line, marker string) (string, string) {
	rest := strings.TrimPrefix(line, marker)
	idx := strings.IndexFunc(rest, unicode.IsSpace)
	if idx < 0 {
		return strings.ToLower(rest), ""
	}
	return strings.ToLower(rest[:idx]), strings.TrimSpace(rest[idx:])
}
