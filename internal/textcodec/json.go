// Package textcodec renders an ast.Document as JSON, hand-building the
// buffer rather than going through encoding/json so every field's
// shape matches the wire format callers already depend on (field
// order, compact vs. pretty spacing, one "kind" object per node).
package textcodec

import (
	"strconv"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// ToJSON renders doc as compact JSON.
func ToJSON(doc *ast.Document) string {
	return newJSONWriter(false).writeDoc(doc)
}

// ToJSONPretty renders doc as indented, multi-line JSON.
func ToJSONPretty(doc *ast.Document) string {
	return newJSONWriter(true).writeDoc(doc)
}

type jsonWriter struct {
	out    strings.Builder
	pretty bool
	depth  int
}

func newJSONWriter(pretty bool) *jsonWriter {
	capacity := 8192
	if pretty {
		capacity = 16384
	}
	w := &jsonWriter{pretty: pretty}
	w.out.Grow(capacity)
	return w
}

func (w *jsonWriter) writeDoc(doc *ast.Document) string {
	w.out.WriteByte('{')
	w.depth++
	w.nl()
	w.kvStr("source_path", doc.SourcePath)
	w.comma()
	w.kvRaw("doc_type", doc.DocType.String())
	w.comma()
	w.writeMetadata(&doc.Metadata)
	w.comma()
	w.key("nodes")
	w.writeArray(doc.Nodes, func(n *ast.Node) { w.writeNode(n) })
	w.depth--
	w.nl()
	w.out.WriteByte('}')
	return w.out.String()
}

func (w *jsonWriter) writeNode(n *ast.Node) {
	w.out.WriteByte('{')
	w.depth++
	w.nl()
	w.key("kind")
	writeKind(&w.out, n)
	w.comma()
	w.writeSpan(&n.Span)
	if len(n.Children) > 0 {
		w.comma()
		w.key("children")
		w.writeArray(n.Children, func(c *ast.Node) { w.writeNode(c) })
	}
	w.depth--
	w.nl()
	w.out.WriteByte('}')
}

func (w *jsonWriter) writeArray(items []ast.Node, write func(*ast.Node)) {
	w.out.WriteByte('[')
	w.depth++
	w.nl()
	for i := range items {
		if i > 0 {
			w.comma()
		}
		write(&items[i])
	}
	w.depth--
	w.nl()
	w.out.WriteByte(']')
}

func (w *jsonWriter) writeSpan(s *ast.Span) {
	w.out.WriteString(`"span":{"start":`)
	w.out.WriteString(strconv.Itoa(s.Start))
	w.out.WriteString(`,"end":`)
	w.out.WriteString(strconv.Itoa(s.End))
	w.out.WriteString(`,"line":`)
	w.out.WriteString(strconv.Itoa(s.Line))
	w.out.WriteString(`,"column":`)
	w.out.WriteString(strconv.Itoa(s.Column))
	w.out.WriteByte('}')
}

func (w *jsonWriter) writeMetadata(m *ast.DocumentMetadata) {
	w.key("metadata")
	w.out.WriteByte('{')
	first := true
	if m.Title != nil {
		w.out.WriteString(`"title":"`)
		escapeInto(&w.out, *m.Title)
		w.out.WriteString(`",`)
		first = false
	}
	if m.Description != nil {
		w.out.WriteString(`"description":"`)
		escapeInto(&w.out, *m.Description)
		w.out.WriteString(`",`)
		first = false
	}
	_ = first
	w.out.WriteString(`"total_lines":`)
	w.out.WriteString(strconv.Itoa(m.TotalLines))
	w.out.WriteString(`,"total_nodes":`)
	w.out.WriteString(strconv.Itoa(m.TotalNodes))
	w.out.WriteByte('}')
}

func (w *jsonWriter) key(k string) {
	w.out.WriteByte('"')
	w.out.WriteString(k)
	w.out.WriteString(`":`)
}

func (w *jsonWriter) kvStr(k, v string) {
	w.out.WriteByte('"')
	w.out.WriteString(k)
	w.out.WriteString(`":"`)
	escapeInto(&w.out, v)
	w.out.WriteByte('"')
}

func (w *jsonWriter) kvRaw(k, v string) {
	w.out.WriteByte('"')
	w.out.WriteString(k)
	w.out.WriteString(`":"`)
	w.out.WriteString(v)
	w.out.WriteByte('"')
}

func (w *jsonWriter) comma() {
	w.out.WriteByte(',')
	w.nl()
}

func (w *jsonWriter) nl() {
	if !w.pretty {
		return
	}
	w.out.WriteByte('\n')
	for i := 0; i < w.depth; i++ {
		w.out.WriteString("  ")
	}
}

// escapeInto appends s to out with JSON string escaping applied.
func escapeInto(out *strings.Builder, s string) {
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
			if c < 0x20 {
				out.WriteString(`\u`)
				hex := strconv.FormatInt(int64(c), 16)
				for i := len(hex); i < 4; i++ {
					out.WriteByte('0')
				}
				out.WriteString(hex)
			} else {
				out.WriteRune(c)
			}
		}
	}
}

// esc is the allocating convenience form of escapeInto, used by
// kinds.go and by tests exercising escaping in isolation.
func esc(s string) string {
	var b strings.Builder
	b.Grow(len(s) + 16)
	escapeInto(&b, s)
	return b.String()
}
