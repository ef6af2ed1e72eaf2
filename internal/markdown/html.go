package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// htmlBlockTags lists the CommonMark "type 6" block-level tag names
// that open an HtmlBlock terminated by a blank line.
var htmlBlockTags = map[string]bool{
	"address": true, "article": true, "aside": true, "base": true,
	"blockquote": true, "body": true, "caption": true, "center": true,
	"col": true, "colgroup": true, "dd": true, "details": true,
	"dialog": true, "div": true, "dl": true, "dt": true, "fieldset": true,
	"figcaption": true, "figure": true, "footer": true, "form": true,
	"h1": true, "h2": true, "h3": true, "h4": true, "h5": true, "h6": true,
	"head": true, "header": true, "hr": true, "html": true, "iframe": true,
	"legend": true, "li": true, "link": true, "main": true, "menu": true,
	"menuitem": true, "nav": true, "ol": true, "optgroup": true,
	"option": true, "p": true, "param": true, "section": true,
	"summary": true, "table": true, "tbody": true, "td": true,
	"tfoot": true, "th": true, "thead": true, "title": true, "tr": true,
	"track": true, "ul": true,
}

// tryHTMLBlock recognizes a block beginning with a known HTML
// block-level tag, terminated by a blank line. Custom docscribe
// elements (<toc>, <steps>, <tabs>) are handled separately and take
// precedence.
func (p *blockParser) tryHTMLBlock(line, col int) (ast.Node, bool) {
	if !p.scanner.Check('<') {
		return ast.Node{}, false
	}

	snap := p.scanner.Snap()
	start := p.scanner.Pos()

	tag, blockType, ok := matchHTMLBlockOpen(p.peekLine())
	if !ok {
		p.scanner.Restore(snap)
		return ast.Node{}, false
	}

	for !p.scanner.IsEOF() {
		lineText := p.peekLine()
		if strings.TrimSpace(lineText) == "" {
			break
		}
		p.scanRawLine()
		p.scanner.Consume('\n')
	}

	n := ast.NewNode(ast.KindHTMLBlock, ast.NewSpan(start, p.scanner.Pos(), line, col))
	n.BlockType = blockType
	n.Info = &tag
	return n, true
}

// matchHTMLBlockOpen checks whether line opens with "<tagname" (closing
// or not) where tagname is a recognized block-level element.
func matchHTMLBlockOpen(line string) (string, uint8, bool) {
	trimmed := strings.TrimSpace(line)
	if !strings.HasPrefix(trimmed, "<") {
		return "", 0, false
	}
	rest := trimmed[1:]
	rest = strings.TrimPrefix(rest, "/")

	end := 0
	for end < len(rest) && isTagNameByte(rest[end]) {
		end++
	}
	if end == 0 {
		return "", 0, false
	}
	tag := strings.ToLower(rest[:end])
	if !htmlBlockTags[tag] {
		return "", 0, false
	}
	return tag, 6, true
}

func isTagNameByte(b byte) bool {
	return b >= 'a' && b <= 'z' || b >= 'A' && b <= 'Z' || b >= '0' && b <= '9' || b == '-'
}
