// Package ast defines the shared documentation AST: a single tagged-variant
// Node type with inline per-kind payload fields, used by every parser and
// codec in docscribe.
package ast

// Span tracks where in the source text a node originated: byte offsets
// (Start, End) plus 1-indexed human-readable position (Line, Column).
type Span struct {
	Start  int
	End    int
	Line   int
	Column int
}

// NewSpan builds a Span from explicit coordinates.
func NewSpan(start, end, line, column int) Span {
	return Span{Start: start, End: end, Line: line, Column: column}
}

// EmptySpan is the zero-value span used by synthetic nodes (doc-comment
// tags, frontmatter wrappers) that do not correspond to a source range.
func EmptySpan() Span {
	return Span{}
}

// Len returns the byte length of the span.
func (s Span) Len() int {
	if s.End < s.Start {
		return 0
	}
	return s.End - s.Start
}

// IsEmpty reports whether the span covers zero bytes.
func (s Span) IsEmpty() bool {
	return s.Start == s.End
}

// Merge returns a span covering both s and other.
func (s Span) Merge(other Span) Span {
	m := Span{
		Start: min(s.Start, other.Start),
		End:   max(s.End, other.End),
		Line:  min(s.Line, other.Line),
	}
	if s.Line <= other.Line {
		m.Column = s.Column
	} else {
		m.Column = other.Column
	}
	return m
}
