// Package sourcemap builds a position-index sidecar mapping AST nodes
// back to their source offsets, line, and column.
package sourcemap

import (
	"strconv"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Entry is a single node-to-source mapping.
type Entry struct {
	SourceStart int
	SourceEnd   int
	Line        int
	Column      int
	NodeType    string
}

// Map is a document's full set of node-to-source mappings.
type Map struct {
	SourcePath string
	Entries    []Entry
}

// FromDocument builds a Map by walking doc's nodes in pre-order,
// recording one Entry per node with a non-empty span.
func FromDocument(doc *ast.Document) *Map {
	m := &Map{SourcePath: doc.SourcePath}
	m.collectEntries(doc.Nodes)
	return m
}

func (m *Map) collectEntries(nodes []ast.Node) {
	for i := range nodes {
		n := &nodes[i]
		if !n.Span.IsEmpty() {
			m.Entries = append(m.Entries, Entry{
				SourceStart: n.Span.Start,
				SourceEnd:   n.Span.End,
				Line:        n.Span.Line,
				Column:      n.Span.Column,
				NodeType:    n.Kind.String(),
			})
		}
		m.collectEntries(n.Children)
	}
}

// FindAtOffset returns the first entry whose span contains offset, or
// nil if none does.
func (m *Map) FindAtOffset(offset int) *Entry {
	for i := range m.Entries {
		e := &m.Entries[i]
		if offset >= e.SourceStart && offset < e.SourceEnd {
			return e
		}
	}
	return nil
}

// FindAtLine returns every entry recorded at the given 1-based line.
func (m *Map) FindAtLine(line int) []Entry {
	var out []Entry
	for _, e := range m.Entries {
		if e.Line == line {
			out = append(out, e)
		}
	}
	return out
}

// ToJSON renders the map as the `<name>.map.json` sidecar format:
// {"source": STRING, "mappings": [{"start","end","line","col","type"}, ...]}.
func (m *Map) ToJSON() string {
	var s strings.Builder
	s.Grow(256)
	s.WriteString(`{"source":"`)
	escapeJSON(&s, m.SourcePath)
	s.WriteString(`","mappings":[`)
	for i, e := range m.Entries {
		if i > 0 {
			s.WriteByte(',')
		}
		s.WriteString(`{"start":`)
		s.WriteString(strconv.Itoa(e.SourceStart))
		s.WriteString(`,"end":`)
		s.WriteString(strconv.Itoa(e.SourceEnd))
		s.WriteString(`,"line":`)
		s.WriteString(strconv.Itoa(e.Line))
		s.WriteString(`,"col":`)
		s.WriteString(strconv.Itoa(e.Column))
		s.WriteString(`,"type":"`)
		escapeJSON(&s, e.NodeType)
		s.WriteString(`"}`)
	}
	s.WriteString("]}")
	return s.String()
}

func escapeJSON(out *strings.Builder, s string) {
	for _, c := range s {
		switch c {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		case '\n':
			out.WriteString(`\n`)
		case '\r':
			out.WriteString(`\r`)
		case '\t':
			out.WriteString(`\t`)
		default:
			out.WriteRune(c)
		}
	}
}
