package markdown

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/scanner"
)

// tryParseFrontmatter recognizes YAML (---) or TOML (+++) frontmatter,
// but only at the very start of the document.
func tryParseFrontmatter(s *scanner.Scanner) *ast.Node {
	if s.Pos() != 0 {
		return nil
	}
	input := s.Remaining()

	if n := tryYAMLFrontmatter(s, input); n != nil {
		return n
	}
	return tryTOMLFrontmatter(s, input)
}

func tryYAMLFrontmatter(s *scanner.Scanner, input string) *ast.Node {
	if !strings.HasPrefix(input, "---\n") || len(input) <= 4 {
		return nil
	}
	search := input[4:]
	endIdx := strings.Index(search, "\n---")
	if endIdx < 0 {
		return nil
	}
	content := strings.TrimSpace(input[4 : 4+endIdx])
	totalLen := 4 + endIdx + 4

	node := ast.NewNode(ast.KindFrontmatter, ast.NewSpan(0, totalLen, 1, 1))
	node.Format = ast.FrontmatterYAML
	node.Content = content

	s.AdvanceN(totalLen)
	s.Consume('\n')
	return &node
}

func tryTOMLFrontmatter(s *scanner.Scanner, input string) *ast.Node {
	if !strings.HasPrefix(input, "+++\n") || len(input) <= 4 {
		return nil
	}
	endIdx := strings.Index(input[4:], "\n+++")
	if endIdx < 0 {
		return nil
	}
	content := strings.TrimSpace(input[4 : 4+endIdx])
	totalLen := 4 + endIdx + 4

	node := ast.NewNode(ast.KindFrontmatter, ast.NewSpan(0, totalLen, 1, 1))
	node.Format = ast.FrontmatterTOML
	node.Content = content

	s.AdvanceN(totalLen)
	s.Consume('\n')
	return &node
}

// skipFrontmatter re-detects the frontmatter delimiter at the scanner's
// current (reset) position and scans past the closing fence, used when
// resuming the block-parsing pass.
func skipFrontmatter(s *scanner.Scanner) {
	input := s.Remaining()
	delim := "+++"
	if strings.HasPrefix(input, "---") {
		delim = "---"
	}

	s.AdvanceN(3)
	s.SkipLine()

	for !s.IsEOF() {
		line := s.ScanLine()
		if strings.TrimSpace(line) == delim {
			return
		}
	}
}
