package sourcemap

import (
	"testing"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func testDoc() *ast.Document {
	heading := ast.NewNode(ast.KindHeading, ast.NewSpan(0, 10, 1, 1))
	heading.Level = 1
	return &ast.Document{
		SourcePath: "test.md",
		DocType:    ast.DocMarkdown,
		Nodes: []ast.Node{
			heading,
			ast.NewNode(ast.KindParagraph, ast.NewSpan(12, 50, 3, 1)),
			ast.NewNode(ast.KindParagraph, ast.NewSpan(52, 80, 5, 1)),
		},
		Metadata: ast.DocumentMetadata{TotalNodes: 3},
	}
}

func TestSourceMapCreation(t *testing.T) {
	m := FromDocument(testDoc())
	if m.SourcePath != "test.md" {
		t.Fatalf("got %q", m.SourcePath)
	}
	if len(m.Entries) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(m.Entries))
	}
	if m.Entries[0].NodeType != "Heading" {
		t.Fatalf("got %q", m.Entries[0].NodeType)
	}
}

func TestFindAtOffset(t *testing.T) {
	m := FromDocument(testDoc())

	e := m.FindAtOffset(5)
	if e == nil || e.NodeType != "Heading" {
		t.Fatalf("expected Heading at offset 5, got %+v", e)
	}

	e = m.FindAtOffset(20)
	if e == nil || e.NodeType != "Paragraph" || e.Line != 3 {
		t.Fatalf("expected Paragraph at line 3, got %+v", e)
	}

	e = m.FindAtOffset(60)
	if e == nil || e.Line != 5 {
		t.Fatalf("expected entry at line 5, got %+v", e)
	}

	if m.FindAtOffset(100) != nil {
		t.Fatalf("expected no entry at offset 100")
	}
}

func TestFindAtLine(t *testing.T) {
	m := FromDocument(testDoc())

	entries := m.FindAtLine(1)
	if len(entries) != 1 || entries[0].NodeType != "Heading" {
		t.Fatalf("got %+v", entries)
	}

	entries = m.FindAtLine(3)
	if len(entries) != 1 || entries[0].NodeType != "Paragraph" {
		t.Fatalf("got %+v", entries)
	}

	entries = m.FindAtLine(5)
	if len(entries) != 1 {
		t.Fatalf("got %+v", entries)
	}

	if len(m.FindAtLine(2)) != 0 {
		t.Fatalf("expected no entries at line 2")
	}
}

func TestToJSON(t *testing.T) {
	m := FromDocument(testDoc())
	out := m.ToJSON()
	if out == "" {
		t.Fatalf("expected non-empty output")
	}
	wantPrefix := `{"source":"test.md","mappings":[{"start":0,"end":10,"line":1,"col":1,"type":"Heading"}`
	if len(out) < len(wantPrefix) || out[:len(wantPrefix)] != wantPrefix {
		t.Fatalf("got %s", out)
	}
}

func TestToJSONEmptyMappings(t *testing.T) {
	m := &Map{SourcePath: "empty.md"}
	if got := m.ToJSON(); got != `{"source":"empty.md","mappings":[]}` {
		t.Fatalf("got %s", got)
	}
}
