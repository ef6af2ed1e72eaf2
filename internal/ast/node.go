package ast

// Node is the single tagged-variant AST node: one Go struct for every
// NodeKind, with small per-kind payload fields inline rather than a
// class hierarchy with virtual dispatch. Fields irrelevant to a given
// Kind are left at their zero value.
type Node struct {
	Kind     NodeKind
	Span     Span
	Children []Node

	// Heading
	Level uint8
	ID    *string

	// CodeBlock / FencedCodeBlock / CodeBlockExt
	Language *string
	Info     *string

	// HtmlBlock
	BlockType uint8

	// List
	Ordered bool
	Start   *uint32
	Tight   bool

	// ListItem
	Marker ListMarker
	// Checked is used by both ListItem (optional) and TaskListMarker
	// (always set).
	Checked *bool

	// TableCell
	Alignment Alignment
	IsHeader  bool

	// Text / Code / CodeSpan / HtmlInline / DocExample / DocDescription
	Content string

	// Link / Image / AutoLink / AutoUrl
	URL   string
	Title *string
	Alt   string

	// Link / LinkReference
	RefType ReferenceType

	// LinkReference / LinkDefinition / FootnoteReference /
	// FootnoteDefinition / Footnote
	Label string

	// Emoji
	Shortcode string
	// Mention
	Username string
	// IssueReference
	Number uint32

	// DocComment
	Style DocStyle

	// DocTag / DocParam / DocProperty / DocCallback / DocTypedef / DocAuthor
	Name string
	// DocParam / DocProperty (param/prop type)
	ParamType *string
	// DocParam / DocReturn / DocThrows / DocProperty
	Description *string
	// DocReturn
	ReturnType *string
	// DocThrows
	ExceptionType string
	// DocSee
	Reference string
	// DocDeprecated
	Message *string
	// DocSince / DocVersion
	Version string
	// DocType (always set) / DocTypedef (optional)
	TypeExpr *string
	// DocTag content
	TagContent *string

	// Frontmatter
	Format FrontmatterFormat

	// Tabs
	Names []string

	// CodeBlockExt
	Highlight   *string
	Plusdiff    *string
	Minusdiff   *string
	LineNumbers bool
}

// NewNode builds a leaf node of the given kind and span.
func NewNode(kind NodeKind, span Span) Node {
	return Node{Kind: kind, Span: span}
}

// NewParent builds a node with children.
func NewParent(kind NodeKind, span Span, children []Node) Node {
	return Node{Kind: kind, Span: span, Children: children}
}

// CountNodes returns 1 plus the recursive count of all descendants.
func (n *Node) CountNodes() int {
	total := 1
	for i := range n.Children {
		total += n.Children[i].CountNodes()
	}
	return total
}

// IsLeaf reports whether the node has no children.
func (n *Node) IsLeaf() bool {
	return len(n.Children) == 0
}

// StrPtr is a small helper for constructing *string payload fields.
func StrPtr(s string) *string {
	return &s
}

// BoolPtr is a small helper for constructing *bool payload fields.
func BoolPtr(b bool) *bool {
	return &b
}

// U32Ptr is a small helper for constructing *uint32 payload fields.
func U32Ptr(v uint32) *uint32 {
	return &v
}
