package dast

import (
	"bytes"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// Encode serializes doc into the binary DAST format: a magic header,
// an interned string table, then the document body and its node tree.
//
// Unlike the format this was learned from, every string-bearing field
// on every node kind is interned and written here, including
// Frontmatter/MathInline/MathBlock/Footnote/AutoUrl content and
// Tabs/CodeBlockExt string fields — fields that a decoder expecting a
// symmetric writer needs present on the wire.
func Encode(doc *ast.Document) []byte {
	table := newStringTable()
	collectStrings(table, doc)

	var buf bytes.Buffer
	buf.WriteString(Magic)
	writeU8(&buf, Version)
	writeU8(&buf, 0) // reserved

	writeU32(&buf, uint32(len(table.values)))
	for _, s := range table.values {
		writeU32(&buf, uint32(len(s)))
		buf.WriteString(s)
	}

	writeStr(&buf, table, doc.SourcePath)
	writeU8(&buf, docTypeToU8(doc.DocType))
	writeOptStr(&buf, table, doc.Metadata.Title)
	writeOptStr(&buf, table, doc.Metadata.Description)
	writeU32(&buf, uint32(doc.Metadata.TotalLines))
	writeU32(&buf, uint32(doc.Metadata.TotalNodes))

	writeU32(&buf, uint32(len(doc.Nodes)))
	for i := range doc.Nodes {
		writeNode(&buf, table, &doc.Nodes[i])
	}

	return buf.Bytes()
}

func writeNode(buf *bytes.Buffer, table *stringTable, n *ast.Node) {
	writeU8(buf, byte(n.Kind))
	writeSpan(buf, n.Span)
	writeKindData(buf, table, n)
	writeU32(buf, uint32(len(n.Children)))
	for i := range n.Children {
		writeNode(buf, table, &n.Children[i])
	}
}

//nolint:revive // long dispatch, one case per kind with a payload
func writeKindData(buf *bytes.Buffer, table *stringTable, n *ast.Node) {
	switch n.Kind {
	case ast.KindHeading:
		writeU8(buf, n.Level)
		writeOptStr(buf, table, n.ID)
	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		writeOptStr(buf, table, n.Language)
		writeOptStr(buf, table, n.Info)
	case ast.KindHTMLBlock:
		writeU8(buf, n.BlockType)
		writeOptStr(buf, table, n.Info)
	case ast.KindList:
		writeBool(buf, n.Ordered)
		writeOptU32(buf, n.Start)
		writeBool(buf, n.Tight)
	case ast.KindListItem:
		writeMarker(buf, n.Marker)
		writeOptBool(buf, n.Checked)
	case ast.KindTableCell:
		writeU8(buf, alignmentToU8(n.Alignment))
		writeBool(buf, n.IsHeader)
	case ast.KindText, ast.KindCode, ast.KindCodeSpan, ast.KindHTMLInline,
		ast.KindDocExample, ast.KindDocDescription:
		writeStr(buf, table, n.Content)
	case ast.KindLink:
		writeStr(buf, table, n.URL)
		writeOptStr(buf, table, n.Title)
		writeU8(buf, refTypeToU8(n.RefType))
	case ast.KindImage:
		writeStr(buf, table, n.URL)
		writeStr(buf, table, n.Alt)
		writeOptStr(buf, table, n.Title)
	case ast.KindAutoLink:
		writeStr(buf, table, n.URL)
	case ast.KindAutoURL:
		writeStr(buf, table, n.URL)
	case ast.KindLinkReference:
		writeStr(buf, table, n.Label)
		writeU8(buf, refTypeToU8(n.RefType))
	case ast.KindLinkDefinition:
		writeStr(buf, table, n.Label)
		writeStr(buf, table, n.URL)
		writeOptStr(buf, table, n.Title)
	case ast.KindFootnoteReference, ast.KindFootnoteDefinition, ast.KindFootnote:
		writeStr(buf, table, n.Label)
	case ast.KindTaskListMarker:
		writeOptBool(buf, n.Checked)
	case ast.KindEmoji:
		writeStr(buf, table, n.Shortcode)
	case ast.KindMention:
		writeStr(buf, table, n.Username)
	case ast.KindIssueReference:
		writeU32(buf, n.Number)
	case ast.KindDocComment:
		writeU8(buf, docStyleToU8(n.Style))
	case ast.KindDocTag:
		writeStr(buf, table, n.Name)
		writeOptStr(buf, table, n.TagContent)
	case ast.KindDocParam, ast.KindDocProperty:
		writeStr(buf, table, n.Name)
		writeOptStr(buf, table, n.ParamType)
		writeOptStr(buf, table, n.Description)
	case ast.KindDocReturn:
		writeOptStr(buf, table, n.ReturnType)
		writeOptStr(buf, table, n.Description)
	case ast.KindDocThrows:
		writeStr(buf, table, n.ExceptionType)
		writeOptStr(buf, table, n.Description)
	case ast.KindDocSee:
		writeStr(buf, table, n.Reference)
	case ast.KindDocDeprecated:
		writeOptStr(buf, table, n.Message)
	case ast.KindDocSince, ast.KindDocVersion:
		writeStr(buf, table, n.Version)
	case ast.KindDocAuthor, ast.KindDocCallback:
		writeStr(buf, table, n.Name)
	case ast.KindDocType:
		writeOptStr(buf, table, n.TypeExpr)
	case ast.KindDocTypedef:
		writeStr(buf, table, n.Name)
		writeOptStr(buf, table, n.TypeExpr)
	case ast.KindFrontmatter:
		writeU8(buf, frontmatterFormatToU8(n.Format))
		writeStr(buf, table, n.Content)
	case ast.KindMathInline, ast.KindMathBlock:
		writeStr(buf, table, n.Content)
	case ast.KindAlert:
		writeStr(buf, table, n.Name)
	case ast.KindTabs:
		writeU32(buf, uint32(len(n.Names)))
		for _, name := range n.Names {
			writeStr(buf, table, name)
		}
	case ast.KindCodeBlockExt:
		writeOptStr(buf, table, n.Language)
		writeOptStr(buf, table, n.Highlight)
		writeOptStr(buf, table, n.Plusdiff)
		writeOptStr(buf, table, n.Minusdiff)
		writeBool(buf, n.LineNumbers)
	}
}
