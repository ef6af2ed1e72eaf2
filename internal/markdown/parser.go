// Package markdown implements the two-pass GFM-flavored markdown
// parser: a link-definition collection pass followed by block/inline
// parsing, producing an ast.Document.
package markdown

import (
	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// Parser parses a markdown document into an ast.Document. Create one
// with New and call Parse once.
type Parser struct {
	scanner     *scanner.Scanner
	linkDefs    []LinkDef
	frontmatter *ast.Node
	depth       int
}

// New creates a parser over input.
func New(input string) *Parser {
	return &Parser{scanner: scanner.New(input)}
}

func newParser(input string) *Parser {
	return New(input)
}

// Parse runs the full two-pass algorithm: frontmatter detection,
// link-definition collection, then block/inline parsing.
func (p *Parser) Parse() ast.Document {
	return p.parse()
}

func (p *Parser) parse() ast.Document {
	p.frontmatter = tryParseFrontmatter(p.scanner)
	p.linkDefs = collectLinkDefs(p.scanner)
	p.scanner.Reset()

	if p.frontmatter != nil {
		skipFrontmatter(p.scanner)
	}

	bp := newBlockParser(p.scanner, p.linkDefs)
	bp.depth = p.depth
	nodes := bp.parseBlocks()

	if p.frontmatter != nil {
		nodes = append([]ast.Node{*p.frontmatter}, nodes...)
		p.frontmatter = nil
	}

	totalNodes := 0
	for i := range nodes {
		totalNodes += nodes[i].CountNodes()
	}

	return ast.Document{
		SourcePath: "",
		DocType:    ast.DocMarkdown,
		Nodes:      nodes,
		Metadata: ast.DocumentMetadata{
			TotalLines: p.scanner.Line(),
			TotalNodes: totalNodes,
		},
	}
}

// LinkDefs exposes the link-reference definitions collected during
// Parse, used by callers that need to resolve references outside the
// tree (e.g. the validator).
func (p *Parser) LinkDefs() []LinkDef {
	return p.linkDefs
}
