package ast

// NodeKind is the closed set of AST node variants. The set is considered
// closed for this repository's purposes: callers switch exhaustively over
// it rather than treating it as open for extension.
type NodeKind uint8

// Tag numbers are part of the DAST wire format and must never be
// reordered or reused; new kinds are appended, never inserted.
const (
	KindDocument NodeKind = iota // 0

	KindHeading          // 1
	KindParagraph        // 2
	KindBlockQuote       // 3
	KindCodeBlock        // 4
	KindFencedCodeBlock  // 5
	KindIndentedCodeBlock // 6
	KindHTMLBlock        // 7
	KindThematicBreak    // 8

	KindList     // 9
	KindListItem // 10

	KindTable     // 11
	KindTableHead // 12
	KindTableBody // 13
	KindTableRow  // 14
	KindTableCell // 15

	KindText          // 16
	KindEmphasis      // 17
	KindStrong        // 18
	KindStrikethrough // 19
	KindCode          // 20
	KindLink          // 21
	KindImage         // 22
	KindAutoLink      // 23
	KindHardBreak     // 24
	KindSoftBreak     // 25
	KindHTMLInline    // 26

	KindLinkReference      // 27
	KindLinkDefinition     // 28
	KindFootnoteReference  // 29
	KindFootnoteDefinition // 30

	KindTaskListMarker // 31
	KindEmoji          // 32
	KindMention        // 33
	KindIssueReference // 34

	KindDocComment     // 35
	KindDocTag         // 36
	KindDocParam       // 37
	KindDocReturn      // 38
	KindDocThrows      // 39
	KindDocExample     // 40
	KindDocSee         // 41
	KindDocDeprecated  // 42
	KindDocSince       // 43
	KindDocAuthor      // 44
	KindDocVersion     // 45
	KindDocDescription // 46
	KindDocType        // 47
	KindDocProperty    // 48
	KindDocCallback    // 49
	KindDocTypedef     // 50

	KindCodeSpan // 51

	KindFrontmatter // 52
	KindMathInline  // 53
	KindMathBlock   // 54

	KindFootnote              // 55
	KindDefinitionList        // 56
	KindDefinitionTerm        // 57
	KindDefinitionDescription // 58
	KindAutoURL               // 59

	KindAlert // 60
	KindSteps // 61
	KindStep  // 62
	KindToc   // 63
	KindTabs  // 64

	KindCodeBlockExt // 65

	numNodeKinds
)

// Valid reports whether k is a known tag value, used by the DAST decoder
// to reject unknown tags instead of the lenient original behavior.
func (k NodeKind) Valid() bool {
	return k < numNodeKinds
}

// String renders a readable name, used by the sourcemap and debugging output.
//
//nolint:revive // long dispatch table, one line per kind
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "Document"
	case KindHeading:
		return "Heading"
	case KindParagraph:
		return "Paragraph"
	case KindBlockQuote:
		return "BlockQuote"
	case KindCodeBlock:
		return "CodeBlock"
	case KindFencedCodeBlock:
		return "FencedCodeBlock"
	case KindIndentedCodeBlock:
		return "IndentedCodeBlock"
	case KindHTMLBlock:
		return "HtmlBlock"
	case KindThematicBreak:
		return "ThematicBreak"
	case KindList:
		return "List"
	case KindListItem:
		return "ListItem"
	case KindTable:
		return "Table"
	case KindTableHead:
		return "TableHead"
	case KindTableBody:
		return "TableBody"
	case KindTableRow:
		return "TableRow"
	case KindTableCell:
		return "TableCell"
	case KindText:
		return "Text"
	case KindEmphasis:
		return "Emphasis"
	case KindStrong:
		return "Strong"
	case KindStrikethrough:
		return "Strikethrough"
	case KindCode:
		return "Code"
	case KindLink:
		return "Link"
	case KindImage:
		return "Image"
	case KindAutoLink:
		return "AutoLink"
	case KindHardBreak:
		return "HardBreak"
	case KindSoftBreak:
		return "SoftBreak"
	case KindHTMLInline:
		return "HtmlInline"
	case KindLinkReference:
		return "LinkReference"
	case KindLinkDefinition:
		return "LinkDefinition"
	case KindFootnoteReference:
		return "FootnoteReference"
	case KindFootnoteDefinition:
		return "FootnoteDefinition"
	case KindTaskListMarker:
		return "TaskListMarker"
	case KindEmoji:
		return "Emoji"
	case KindMention:
		return "Mention"
	case KindIssueReference:
		return "IssueReference"
	case KindDocComment:
		return "DocComment"
	case KindDocTag:
		return "DocTag"
	case KindDocParam:
		return "DocParam"
	case KindDocReturn:
		return "DocReturn"
	case KindDocThrows:
		return "DocThrows"
	case KindDocExample:
		return "DocExample"
	case KindDocSee:
		return "DocSee"
	case KindDocDeprecated:
		return "DocDeprecated"
	case KindDocSince:
		return "DocSince"
	case KindDocAuthor:
		return "DocAuthor"
	case KindDocVersion:
		return "DocVersion"
	case KindDocDescription:
		return "DocDescription"
	case KindDocType:
		return "DocType"
	case KindDocProperty:
		return "DocProperty"
	case KindDocCallback:
		return "DocCallback"
	case KindDocTypedef:
		return "DocTypedef"
	case KindCodeSpan:
		return "CodeSpan"
	case KindFrontmatter:
		return "Frontmatter"
	case KindMathInline:
		return "MathInline"
	case KindMathBlock:
		return "MathBlock"
	case KindFootnote:
		return "Footnote"
	case KindDefinitionList:
		return "DefinitionList"
	case KindDefinitionTerm:
		return "DefinitionTerm"
	case KindDefinitionDescription:
		return "DefinitionDescription"
	case KindAutoURL:
		return "AutoUrl"
	case KindAlert:
		return "Alert"
	case KindSteps:
		return "Steps"
	case KindStep:
		return "Step"
	case KindToc:
		return "Toc"
	case KindTabs:
		return "Tabs"
	case KindCodeBlockExt:
		return "CodeBlockExt"
	default:
		return "Unknown"
	}
}
