package textcodec

import (
	"strconv"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// writeKind appends the per-kind JSON object (`{"type":"...",...}`) for
// n's payload fields to out. Every NodeKind gets a field-rich arm here;
// none fall back to a bare `{"type":"..."}` object unless the kind
// genuinely carries no payload beyond its children (Paragraph,
// BlockQuote, Emphasis, and the other purely-structural kinds).
func writeKind(out *strings.Builder, n *ast.Node) {
	out.WriteByte('{')
	writeType(out, n.Kind.String())

	switch n.Kind {
	case ast.KindHeading:
		kvUint(out, "level", uint64(n.Level))
		kvOptStr(out, "id", n.ID)
	case ast.KindCodeBlock, ast.KindFencedCodeBlock:
		kvOptStr(out, "language", n.Language)
		kvOptStr(out, "info", n.Info)
	case ast.KindIndentedCodeBlock:
		kvStr(out, "content", n.Content)
	case ast.KindHTMLBlock:
		kvUint(out, "block_type", uint64(n.BlockType))
	case ast.KindList:
		kvBool(out, "ordered", n.Ordered)
		kvBool(out, "tight", n.Tight)
		if n.Start != nil {
			kvUint(out, "start", uint64(*n.Start))
		}
	case ast.KindListItem:
		kvStr(out, "marker", markerString(n.Marker))
		kvOptBool(out, "checked", n.Checked)
	case ast.KindTableCell:
		kvStr(out, "alignment", alignmentString(n.Alignment))
		kvBool(out, "is_header", n.IsHeader)
	case ast.KindText, ast.KindCode, ast.KindCodeSpan, ast.KindHTMLInline:
		kvStr(out, "content", n.Content)
	case ast.KindLink:
		kvStr(out, "url", n.URL)
		kvOptStr(out, "title", n.Title)
		kvStr(out, "ref_type", refTypeString(n.RefType))
	case ast.KindImage:
		kvStr(out, "url", n.URL)
		kvStr(out, "alt", n.Alt)
		kvOptStr(out, "title", n.Title)
	case ast.KindAutoLink, ast.KindAutoURL:
		kvStr(out, "url", n.URL)
	case ast.KindLinkReference:
		kvStr(out, "label", n.Label)
		kvStr(out, "ref_type", refTypeString(n.RefType))
	case ast.KindLinkDefinition:
		kvStr(out, "label", n.Label)
		kvStr(out, "url", n.URL)
		kvOptStr(out, "title", n.Title)
	case ast.KindFootnoteReference, ast.KindFootnoteDefinition, ast.KindFootnote:
		kvStr(out, "label", n.Label)
	case ast.KindTaskListMarker:
		checked := false
		if n.Checked != nil {
			checked = *n.Checked
		}
		kvBool(out, "checked", checked)
	case ast.KindEmoji:
		kvStr(out, "shortcode", n.Shortcode)
	case ast.KindMention:
		kvStr(out, "username", n.Username)
	case ast.KindIssueReference:
		kvUint(out, "number", uint64(n.Number))
	case ast.KindDocComment:
		kvStr(out, "style", n.Style.String())
	case ast.KindDocTag:
		kvStr(out, "name", n.Name)
		kvOptStr(out, "content", n.TagContent)
	case ast.KindDocParam, ast.KindDocProperty:
		kvStr(out, "name", n.Name)
		kvOptStr(out, "param_type", n.ParamType)
		kvOptStr(out, "description", n.Description)
	case ast.KindDocReturn:
		kvOptStr(out, "return_type", n.ReturnType)
		kvOptStr(out, "description", n.Description)
	case ast.KindDocThrows:
		kvStr(out, "exception_type", n.ExceptionType)
		kvOptStr(out, "description", n.Description)
	case ast.KindDocExample, ast.KindDocDescription:
		kvStr(out, "content", n.Content)
	case ast.KindDocSee:
		kvStr(out, "reference", n.Reference)
	case ast.KindDocDeprecated:
		kvOptStr(out, "message", n.Message)
	case ast.KindDocSince, ast.KindDocVersion:
		kvStr(out, "version", n.Version)
	case ast.KindDocAuthor, ast.KindDocCallback:
		kvStr(out, "name", n.Name)
	case ast.KindDocType:
		kvOptStr(out, "type_expr", n.TypeExpr)
	case ast.KindDocTypedef:
		kvStr(out, "name", n.Name)
		kvOptStr(out, "type_expr", n.TypeExpr)
	case ast.KindFrontmatter:
		kvStr(out, "format", frontmatterFormatString(n.Format))
		kvStr(out, "content", n.Content)
	case ast.KindMathInline, ast.KindMathBlock:
		kvStr(out, "content", n.Content)
	case ast.KindAlert:
		kvStr(out, "alert_type", n.Name)
	case ast.KindToc:
		kvOptStr(out, "id", n.ID)
	case ast.KindTabs:
		kvStrArray(out, "names", n.Names)
	case ast.KindCodeBlockExt:
		kvOptStr(out, "language", n.Language)
		kvOptStr(out, "highlight", n.Highlight)
		kvOptStr(out, "plusdiff", n.Plusdiff)
		kvOptStr(out, "minusdiff", n.Minusdiff)
		kvBool(out, "line_numbers", n.LineNumbers)

	// Purely structural kinds: no payload beyond children/span.
	case ast.KindDocument, ast.KindParagraph, ast.KindBlockQuote,
		ast.KindThematicBreak, ast.KindTable, ast.KindTableHead,
		ast.KindTableBody, ast.KindTableRow, ast.KindEmphasis,
		ast.KindStrong, ast.KindStrikethrough, ast.KindHardBreak,
		ast.KindSoftBreak, ast.KindDefinitionList, ast.KindDefinitionTerm,
		ast.KindDefinitionDescription, ast.KindSteps, ast.KindStep:
		// type field only
	}

	out.WriteByte('}')
}

func writeType(out *strings.Builder, name string) {
	out.WriteString(`"type":"`)
	out.WriteString(name)
	out.WriteByte('"')
}

func kvStr(out *strings.Builder, key, value string) {
	out.WriteByte(',')
	out.WriteByte('"')
	out.WriteString(key)
	out.WriteString(`":"`)
	escapeInto(out, value)
	out.WriteByte('"')
}

func kvOptStr(out *strings.Builder, key string, value *string) {
	if value == nil {
		return
	}
	kvStr(out, key, *value)
}

func kvBool(out *strings.Builder, key string, value bool) {
	out.WriteByte(',')
	out.WriteByte('"')
	out.WriteString(key)
	out.WriteString(`":`)
	out.WriteString(strconv.FormatBool(value))
}

func kvOptBool(out *strings.Builder, key string, value *bool) {
	if value == nil {
		return
	}
	kvBool(out, key, *value)
}

func kvUint(out *strings.Builder, key string, value uint64) {
	out.WriteByte(',')
	out.WriteByte('"')
	out.WriteString(key)
	out.WriteString(`":`)
	out.WriteString(strconv.FormatUint(value, 10))
}

func kvStrArray(out *strings.Builder, key string, values []string) {
	out.WriteByte(',')
	out.WriteByte('"')
	out.WriteString(key)
	out.WriteString(`":[`)
	for i, v := range values {
		if i > 0 {
			out.WriteByte(',')
		}
		out.WriteByte('"')
		escapeInto(out, v)
		out.WriteByte('"')
	}
	out.WriteByte(']')
}

func markerString(m ast.ListMarker) string {
	switch m.Kind {
	case ast.MarkerBullet:
		return string(rune(m.Value))
	case ast.MarkerOrdered:
		return string(rune(m.Value))
	default:
		return ""
	}
}

func alignmentString(a ast.Alignment) string {
	switch a {
	case ast.AlignNone:
		return "none"
	case ast.AlignLeft:
		return "left"
	case ast.AlignCenter:
		return "center"
	case ast.AlignRight:
		return "right"
	default:
		return "none"
	}
}

func refTypeString(r ast.ReferenceType) string {
	switch r {
	case ast.RefFull:
		return "full"
	case ast.RefCollapsed:
		return "collapsed"
	case ast.RefShortcut:
		return "shortcut"
	default:
		return "full"
	}
}

func frontmatterFormatString(f ast.FrontmatterFormat) string {
	switch f {
	case ast.FrontmatterYAML:
		return "yaml"
	case ast.FrontmatterTOML:
		return "toml"
	case ast.FrontmatterJSON:
		return "json"
	default:
		return "yaml"
	}
}
