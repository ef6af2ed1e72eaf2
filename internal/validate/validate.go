// Package validate checks a parsed AST for broken link references,
// undefined footnotes, and empty link/image URLs.
package validate

import (
	"fmt"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Warning is a non-fatal issue found during validation.
type Warning struct {
	Line    int
	Message string
}

// Error is a fatal issue found during validation. Nothing in this
// validator currently raises one; the type exists so callers have a
// stable place to escalate to if a future check needs to.
type Error struct {
	Line    int
	Message string
}

// Result collects the warnings and errors found by Validate.
type Result struct {
	Warnings []Warning
	Errors   []Error
}

// IsOK reports whether the result has no errors. Warnings don't affect it.
func (r *Result) IsOK() bool {
	return len(r.Errors) == 0
}

// HasWarnings reports whether any warnings were recorded.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Validate checks doc for undefined link/footnote references and
// empty link/image URLs.
func Validate(doc *ast.Document) *Result {
	result := &Result{}

	linkDefs := make(map[string]bool)
	footnoteDefs := make(map[string]bool)
	var linkRefs, footnoteRefs []labeledRef

	collectRefs(doc.Nodes, linkDefs, footnoteDefs, &linkRefs, &footnoteRefs)

	for _, ref := range linkRefs {
		if !linkDefs[strings.ToLower(ref.label)] {
			result.Warnings = append(result.Warnings, Warning{
				Line:    ref.line,
				Message: fmt.Sprintf("undefined link reference: [%s]", ref.label),
			})
		}
	}

	for _, ref := range footnoteRefs {
		if !footnoteDefs[strings.ToLower(ref.label)] {
			result.Warnings = append(result.Warnings, Warning{
				Line:    ref.line,
				Message: fmt.Sprintf("undefined footnote: [^%s]", ref.label),
			})
		}
	}

	checkEmptyLinks(doc.Nodes, result)

	return result
}

type labeledRef struct {
	label string
	line  int
}

func collectRefs(nodes []ast.Node, linkDefs, footnoteDefs map[string]bool, linkRefs, footnoteRefs *[]labeledRef) {
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case ast.KindLinkDefinition:
			linkDefs[strings.ToLower(n.Label)] = true
		case ast.KindLinkReference:
			*linkRefs = append(*linkRefs, labeledRef{label: n.Label, line: n.Span.Line})
		case ast.KindFootnoteDefinition:
			footnoteDefs[strings.ToLower(n.Label)] = true
		case ast.KindFootnoteReference:
			*footnoteRefs = append(*footnoteRefs, labeledRef{label: n.Label, line: n.Span.Line})
		case ast.KindFootnote:
			footnoteDefs[strings.ToLower(n.Label)] = true
		}
		collectRefs(n.Children, linkDefs, footnoteDefs, linkRefs, footnoteRefs)
	}
}

func checkEmptyLinks(nodes []ast.Node, result *Result) {
	for i := range nodes {
		n := &nodes[i]
		switch n.Kind {
		case ast.KindLink:
			if n.URL == "" {
				result.Warnings = append(result.Warnings, Warning{Line: n.Span.Line, Message: "empty link URL"})
			}
		case ast.KindImage:
			if n.URL == "" {
				result.Warnings = append(result.Warnings, Warning{Line: n.Span.Line, Message: "empty image URL"})
			}
		}
		checkEmptyLinks(n.Children, result)
	}
}
