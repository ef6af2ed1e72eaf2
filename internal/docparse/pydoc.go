package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/markdown"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// PyDocParser extracts triple-quoted docstrings from Python source,
// detecting the Google, NumPy, or Sphinx/reST dialect per docstring.
type PyDocParser struct {
	scanner *scanner.Scanner
}

// NewPyDocParser creates a parser over input.
func NewPyDocParser(input string) *PyDocParser {
	return &PyDocParser{scanner: scanner.New(input)}
}

// Parse collects every docstring into a DocComment node.
func (p *PyDocParser) Parse() ast.Document {
	nodes := p.collectDocstrings()
	totalNodes := 0
	for i := range nodes {
		totalNodes += nodes[i].CountNodes()
	}

	return ast.Document{
		SourcePath: "",
		DocType:    ast.DocPython,
		Nodes:      nodes,
		Metadata: ast.DocumentMetadata{
			TotalLines: p.scanner.Line(),
			TotalNodes: totalNodes,
		},
	}
}

func (p *PyDocParser) collectDocstrings() []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	for !p.scanner.IsEOF() {
		if n, ok := p.tryParseDocstring(); ok {
			nodes = append(nodes, n)
		} else {
			p.scanner.Advance()
		}
	}
	return nodes
}

func (p *PyDocParser) tryParseDocstring() (ast.Node, bool) {
	delim, ok := p.detectDelimiter()
	if !ok {
		return ast.Node{}, false
	}
	return p.parseDocstringWithDelimiter(delim)
}

func (p *PyDocParser) detectDelimiter() (string, bool) {
	if p.scanner.CheckStr(`"""`) {
		return `"""`, true
	}
	if p.scanner.CheckStr("'''") {
		return "'''", true
	}
	return "", false
}

func (p *PyDocParser) parseDocstringWithDelimiter(delim string) (ast.Node, bool) {
	startPos, startLine, startCol := p.scanner.Pos(), p.scanner.Line(), p.scanner.Column()
	p.scanner.AdvanceN(3)

	content, ok := p.consumeUntilDelimiter(delim)
	if !ok {
		return ast.Node{}, false
	}
	p.scanner.AdvanceN(3)

	style, children := detectAndParseStyle(content)

	n := ast.NewParent(
		ast.KindDocComment,
		ast.NewSpan(startPos, p.scanner.Pos(), startLine, startCol),
		children,
	)
	n.Style = style
	return n, true
}

func (p *PyDocParser) consumeUntilDelimiter(delim string) (string, bool) {
	start := p.scanner.Pos()
	for !p.scanner.IsEOF() && !p.scanner.CheckStr(delim) {
		p.scanner.Advance()
	}
	if p.scanner.IsEOF() {
		return "", false
	}
	return p.scanner.Slice(start, p.scanner.Pos()), true
}

func detectAndParseStyle(raw string) (ast.DocStyle, []ast.Node) {
	content := dedent(raw)

	if isGoogleStyle(content) {
		return ast.DocStylePyDocGoogle, parseGoogleDocstring(content)
	}
	if isNumpyStyle(content) {
		return ast.DocStylePyDocNumpy, parseNumpyDocstring(content)
	}
	if isSphinxStyle(content) {
		return ast.DocStylePyDoc, parseSphinxDocstring(content)
	}
	return ast.DocStylePyDoc, parsePlainDocstring(content)
}

var googleMarkers = []string{
	"\nArgs:", "\nReturns:", "\nRaises:", "\nExample:", "\nAttributes:", "\nYields:",
}

func isGoogleStyle(content string) bool {
	for _, m := range googleMarkers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

var numpyMarkers = []string{
	"\nParameters\n----------", "\nReturns\n-------", "\nRaises\n------",
}

func isNumpyStyle(content string) bool {
	for _, m := range numpyMarkers {
		if strings.Contains(content, m) {
			return true
		}
	}
	return false
}

func isSphinxStyle(content string) bool {
	return strings.Contains(content, ":param ") ||
		strings.Contains(content, ":returns:") ||
		strings.Contains(content, ":raises:")
}

// dedent removes the common leading indentation from docstring
// content, trimming the first line and any blank lines separately.
func dedent(content string) string {
	lines := strings.Split(content, "\n")
	if len(lines) == 0 {
		return ""
	}

	minIndent := -1
	for _, line := range lines[1:] {
		if strings.TrimSpace(line) == "" {
			continue
		}
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if minIndent < 0 || indent < minIndent {
			minIndent = indent
		}
	}
	if minIndent < 0 {
		minIndent = 0
	}

	out := make([]string, len(lines))
	for i, line := range lines {
		switch {
		case i == 0:
			out[i] = strings.TrimSpace(line)
		case strings.TrimSpace(line) == "":
			out[i] = ""
		case len(line) >= minIndent:
			out[i] = line[minIndent:]
		default:
			out[i] = line
		}
	}
	return strings.TrimSpace(strings.Join(out, "\n"))
}

func parsePlainDocstring(content string) []ast.Node {
	doc := markdown.New(content).Parse()
	n := ast.NewParent(ast.KindDocDescription, ast.EmptySpan(), doc.Nodes)
	n.Content = content
	return []ast.Node{n}
}

func parseMarkdownInline(content string) []ast.Node {
	return markdown.New(content).Parse().Nodes
}

func makeDescriptionNode(content string) ast.Node {
	trimmed := strings.TrimSpace(content)
	n := ast.NewParent(ast.KindDocDescription, ast.EmptySpan(), parseMarkdownInline(trimmed))
	n.Content = trimmed
	return n
}

func appendLine(target *strings.Builder, line string) {
	if target.Len() > 0 {
		target.WriteByte('\n')
	}
	target.WriteString(line)
}
