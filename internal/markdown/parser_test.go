package markdown

import (
	"testing"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func TestEmptyInput(t *testing.T) {
	doc := New("").Parse()
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(doc.Nodes))
	}
}

func TestSimpleParagraph(t *testing.T) {
	doc := New("Hello world").Parse()
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}
}

func TestHeading(t *testing.T) {
	doc := New("# Heading 1\n\n## Heading 2").Parse()
	if len(doc.Nodes) < 2 {
		t.Fatalf("expected at least 2 nodes, got %d", len(doc.Nodes))
	}
}

func TestHeadingLevels(t *testing.T) {
	doc := New("# H1\n## H2\n### H3\n#### H4\n##### H5\n###### H6").Parse()
	if len(doc.Nodes) != 6 {
		t.Fatalf("expected 6 nodes, got %d", len(doc.Nodes))
	}
}

func TestHeadingID(t *testing.T) {
	doc := New("# Title {#custom-id}").Parse()
	if len(doc.Nodes) != 1 || doc.Nodes[0].ID == nil || *doc.Nodes[0].ID != "custom-id" {
		t.Fatalf("expected heading id custom-id, got %+v", doc.Nodes)
	}
}

func TestEmphasis(t *testing.T) {
	doc := New("*italic* and **bold**").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestFencedCodeBlock(t *testing.T) {
	doc := New("```go\nfunc main() {}\n```").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindFencedCodeBlock {
		t.Fatalf("expected fenced code block, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Language == nil || *doc.Nodes[0].Language != "go" {
		t.Fatalf("expected language go, got %+v", doc.Nodes[0].Language)
	}
}

func TestCodeBlockExtAttributes(t *testing.T) {
	doc := New("```go highlight=1,3-5 linenumbers\ncode\n```").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindCodeBlockExt {
		t.Fatalf("expected CodeBlockExt, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Highlight == nil || *doc.Nodes[0].Highlight != "1,3-5" {
		t.Fatalf("expected highlight 1,3-5, got %+v", doc.Nodes[0].Highlight)
	}
	if !doc.Nodes[0].LineNumbers {
		t.Fatalf("expected linenumbers true")
	}
}

func TestCodeBlockExtQuotedAttributes(t *testing.T) {
	doc := New("```go highlight=\"1-3\"\ncode\n```").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindCodeBlockExt {
		t.Fatalf("expected CodeBlockExt, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Highlight == nil || *doc.Nodes[0].Highlight != "1-3" {
		t.Fatalf("expected highlight 1-3 with quotes stripped, got %+v", doc.Nodes[0].Highlight)
	}
}

func TestLink(t *testing.T) {
	doc := New("[text](http://example.com)").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestBulletList(t *testing.T) {
	doc := New("- item 1\n- item 2\n- item 3").Parse()
	if len(doc.Nodes) != 1 || doc.Nodes[0].Kind != ast.KindList {
		t.Fatalf("expected single list node, got %+v", doc.Nodes)
	}
	if len(doc.Nodes[0].Children) != 3 {
		t.Fatalf("expected 3 items, got %d", len(doc.Nodes[0].Children))
	}
}

func TestOrderedList(t *testing.T) {
	doc := New("1. First\n2. Second\n3. Third").Parse()
	if len(doc.Nodes) != 1 || !doc.Nodes[0].Ordered {
		t.Fatalf("expected ordered list, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Start == nil || *doc.Nodes[0].Start != 1 {
		t.Fatalf("expected start=1, got %+v", doc.Nodes[0].Start)
	}
}

func TestTaskList(t *testing.T) {
	doc := New("- [ ] Unchecked\n- [x] Checked").Parse()
	if len(doc.Nodes) != 1 || len(doc.Nodes[0].Children) != 2 {
		t.Fatalf("expected list with 2 items, got %+v", doc.Nodes)
	}
	items := doc.Nodes[0].Children
	if items[0].Checked == nil || *items[0].Checked {
		t.Fatalf("expected item 0 unchecked")
	}
	if items[1].Checked == nil || !*items[1].Checked {
		t.Fatalf("expected item 1 checked")
	}
}

func TestMathBlock(t *testing.T) {
	doc := New("$$\nx^2 + y^2 = z^2\n$$").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindMathBlock {
		t.Fatalf("expected math block, got %+v", doc.Nodes)
	}
}

func TestDefinitionList(t *testing.T) {
	doc := New("Term\n: Definition").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindDefinitionList {
		t.Fatalf("expected definition list, got %+v", doc.Nodes)
	}
}

func TestFrontmatterYAML(t *testing.T) {
	doc := New("---\ntitle: Test\n---\n\n# Content").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindFrontmatter {
		t.Fatalf("expected frontmatter node first, got %+v", doc.Nodes)
	}
}

func TestBlockquote(t *testing.T) {
	doc := New("> This is a quote\n> with multiple lines").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindBlockQuote {
		t.Fatalf("expected blockquote, got %+v", doc.Nodes)
	}
}

func TestAlertCallout(t *testing.T) {
	doc := New("> [!WARNING]\n> Be careful").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindAlert {
		t.Fatalf("expected alert node, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Name != "WARNING" {
		t.Fatalf("expected WARNING alert, got %q", doc.Nodes[0].Name)
	}
}

func TestAlertCalloutCaseInsensitive(t *testing.T) {
	doc := New("> [!warning]\n> Be careful").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindAlert {
		t.Fatalf("expected alert node, got %+v", doc.Nodes)
	}
	if doc.Nodes[0].Name != "WARNING" {
		t.Fatalf("expected lowercase [!warning] to normalize to WARNING, got %q", doc.Nodes[0].Name)
	}

	doc2 := New("> [!Tip]\n> Mixed case").Parse()
	if len(doc2.Nodes) == 0 || doc2.Nodes[0].Kind != ast.KindAlert {
		t.Fatalf("expected alert node, got %+v", doc2.Nodes)
	}
	if doc2.Nodes[0].Name != "TIP" {
		t.Fatalf("expected mixed-case [!Tip] to normalize to TIP, got %q", doc2.Nodes[0].Name)
	}
}

func TestThematicBreak(t *testing.T) {
	doc := New("---\n\nContent after").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestInlineCode(t *testing.T) {
	doc := New("Use `code` here").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestImage(t *testing.T) {
	doc := New("![alt text](image.png)").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestLinkReference(t *testing.T) {
	doc := New("[text][ref]\n\n[ref]: http://example.com").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestMultipleParagraphs(t *testing.T) {
	doc := New("First paragraph.\n\nSecond paragraph.\n\nThird paragraph.").Parse()
	if len(doc.Nodes) < 3 {
		t.Fatalf("expected at least 3 nodes, got %d", len(doc.Nodes))
	}
}

func TestStrikethrough(t *testing.T) {
	doc := New("~~deleted~~").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestAutolink(t *testing.T) {
	doc := New("<https://example.com>").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestFootnote(t *testing.T) {
	doc := New("Text[^1]\n\n[^1]: Footnote content").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestInlineMath(t *testing.T) {
	doc := New("The formula $E = mc^2$ is famous.").Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestDocumentType(t *testing.T) {
	doc := New("# Test").Parse()
	if doc.DocType != ast.DocMarkdown {
		t.Fatalf("expected Markdown doc type, got %v", doc.DocType)
	}
}

func TestMetadataLines(t *testing.T) {
	doc := New("Line 1\nLine 2\nLine 3").Parse()
	if doc.Metadata.TotalLines <= 0 {
		t.Fatalf("expected positive total lines, got %d", doc.Metadata.TotalLines)
	}
}

func TestGFMTable(t *testing.T) {
	input := "| Name | Age |\n| --- | :---: |\n| Alice | 30 |\n"
	doc := New(input).Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindTable {
		t.Fatalf("expected table node, got %+v", doc.Nodes)
	}
	table := doc.Nodes[0]
	if len(table.Children) != 2 {
		t.Fatalf("expected head+body, got %d children", len(table.Children))
	}
	body := table.Children[1]
	if len(body.Children) != 1 {
		t.Fatalf("expected 1 body row, got %d", len(body.Children))
	}
	row := body.Children[0]
	if len(row.Children) != 2 || row.Children[1].Alignment != ast.AlignCenter {
		t.Fatalf("expected centered second column, got %+v", row.Children)
	}
}

func TestCustomTOC(t *testing.T) {
	doc := New("<toc />").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindToc {
		t.Fatalf("expected toc node, got %+v", doc.Nodes)
	}
}

func TestCustomSteps(t *testing.T) {
	input := "<steps>\n<step>\nFirst step.\n</step>\n<step>\nSecond step.\n</step>\n</steps>"
	doc := New(input).Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindSteps {
		t.Fatalf("expected steps node, got %+v", doc.Nodes)
	}
	if len(doc.Nodes[0].Children) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(doc.Nodes[0].Children))
	}
}

func TestCustomTabs(t *testing.T) {
	input := "<tabs names=\"Go, Rust\">\n```go\nfmt.Println(1)\n```\n</tabs>"
	doc := New(input).Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindTabs {
		t.Fatalf("expected tabs node, got %+v", doc.Nodes)
	}
	if len(doc.Nodes[0].Names) != 2 || doc.Nodes[0].Names[0] != "Go" {
		t.Fatalf("expected names [Go Rust], got %+v", doc.Nodes[0].Names)
	}
}

func TestHTMLBlock(t *testing.T) {
	doc := New("<div>\nsome text\n</div>").Parse()
	if len(doc.Nodes) == 0 || doc.Nodes[0].Kind != ast.KindHTMLBlock {
		t.Fatalf("expected html block, got %+v", doc.Nodes)
	}
}

func TestMixedContent(t *testing.T) {
	input := "# Title\n\nSome **bold** and *italic* text.\n\n- List item 1\n- List item 2\n\n> A blockquote\n\n```code\nblock\n```\n"
	doc := New(input).Parse()
	if len(doc.Nodes) < 4 {
		t.Fatalf("expected at least 4 nodes, got %d", len(doc.Nodes))
	}
}
