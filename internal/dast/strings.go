package dast

import "github.com/connerohnesorge/docscribe/internal/ast"

// stringTable interns strings in first-seen pre-order, matching the
// deterministic walk the writer uses to assign indices.
type stringTable struct {
	values []string
	index  map[string]uint32
}

func newStringTable() *stringTable {
	return &stringTable{index: make(map[string]uint32)}
}

func (t *stringTable) intern(s string) uint32 {
	if idx, ok := t.index[s]; ok {
		return idx
	}
	idx := uint32(len(t.values))
	t.values = append(t.values, s)
	t.index[s] = idx
	return idx
}

func (t *stringTable) idx(s string) uint32 {
	return t.index[s]
}

func (t *stringTable) internOpt(s *string) {
	if s != nil {
		t.intern(*s)
	}
}

// collectStrings walks the document pre-order, interning every
// string-valued payload field.
func collectStrings(t *stringTable, doc *ast.Document) {
	t.intern(doc.SourcePath)
	t.internOpt(doc.Metadata.Title)
	t.internOpt(doc.Metadata.Description)

	for i := range doc.Nodes {
		collectNodeStrings(t, &doc.Nodes[i])
	}
}

func collectNodeStrings(t *stringTable, n *ast.Node) {
	collectKindStrings(t, n)
	for i := range n.Children {
		collectNodeStrings(t, &n.Children[i])
	}
}

//nolint:revive // long dispatch, one case per kind with string payload
func collectKindStrings(t *stringTable, n *ast.Node) {
	switch n.Kind {
	case ast.KindHeading:
		t.internOpt(n.ID)
	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		t.internOpt(n.Language)
		t.internOpt(n.Info)
	case ast.KindHTMLBlock:
		t.internOpt(n.Info)
	case ast.KindText, ast.KindCode, ast.KindCodeSpan, ast.KindHTMLInline,
		ast.KindDocExample, ast.KindDocDescription:
		t.intern(n.Content)
	case ast.KindLink:
		t.intern(n.URL)
		t.internOpt(n.Title)
	case ast.KindImage:
		t.intern(n.URL)
		t.intern(n.Alt)
		t.internOpt(n.Title)
	case ast.KindAutoLink, ast.KindAutoURL:
		t.intern(n.URL)
	case ast.KindLinkReference, ast.KindFootnoteReference, ast.KindFootnoteDefinition, ast.KindFootnote:
		t.intern(n.Label)
	case ast.KindLinkDefinition:
		t.intern(n.Label)
		t.intern(n.URL)
		t.internOpt(n.Title)
	case ast.KindEmoji:
		t.intern(n.Shortcode)
	case ast.KindMention:
		t.intern(n.Username)
	case ast.KindDocTag:
		t.intern(n.Name)
		t.internOpt(n.TagContent)
	case ast.KindDocParam, ast.KindDocProperty:
		t.intern(n.Name)
		t.internOpt(n.ParamType)
		t.internOpt(n.Description)
	case ast.KindDocReturn:
		t.internOpt(n.ReturnType)
		t.internOpt(n.Description)
	case ast.KindDocThrows:
		t.intern(n.ExceptionType)
		t.internOpt(n.Description)
	case ast.KindDocSee:
		t.intern(n.Reference)
	case ast.KindDocDeprecated:
		t.internOpt(n.Message)
	case ast.KindDocSince, ast.KindDocVersion:
		t.intern(n.Version)
	case ast.KindDocAuthor, ast.KindDocCallback:
		t.intern(n.Name)
	case ast.KindDocType:
		t.internOpt(n.TypeExpr)
	case ast.KindDocTypedef:
		t.intern(n.Name)
		t.internOpt(n.TypeExpr)
	case ast.KindFrontmatter:
		t.intern(n.Content)
	case ast.KindMathInline, ast.KindMathBlock:
		t.intern(n.Content)
	case ast.KindTabs:
		for _, name := range n.Names {
			t.intern(name)
		}
	case ast.KindCodeBlockExt:
		t.internOpt(n.Language)
		t.internOpt(n.Highlight)
		t.internOpt(n.Plusdiff)
		t.internOpt(n.Minusdiff)
	case ast.KindAlert:
		t.intern(n.Name)
	}
}
