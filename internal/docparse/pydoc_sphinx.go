package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// parseSphinxDocstring parses Sphinx/reST-style docstring content
// (:param x:, :returns:, :raises:, ... directives).
func parseSphinxDocstring(content string) []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	lines := strings.Split(content, "\n")
	var description strings.Builder
	inDescription := true

	i := 0
	for i < len(lines) {
		line := strings.TrimSpace(lines[i])

		if strings.HasPrefix(line, ":") {
			if inDescription && strings.TrimSpace(description.String()) != "" {
				nodes = append(nodes, makeDescriptionNode(description.String()))
				description.Reset()
			}
			inDescription = false

			if n, ok := parseSphinxDirective(line, lines, &i); ok {
				nodes = append(nodes, n)
			}
		} else if inDescription {
			appendLine(&description, line)
		}
		i++
	}

	if strings.TrimSpace(description.String()) != "" {
		nodes = append(nodes, makeDescriptionNode(description.String()))
	}
	return nodes
}

func parseSphinxDirective(line string, lines []string, index *int) (ast.Node, bool) {
	line = line[1:] // skip leading ':'
	colonPos := strings.IndexByte(line, ':')
	if colonPos < 0 {
		return ast.Node{}, false
	}
	directive := line[:colonPos]
	rest := line[colonPos+1:]

	name, arg := splitDirective(directive)
	content := collectSphinxContent(rest, lines, index)

	return createSphinxNode(name, arg, content), true
}

func splitDirective(directive string) (string, *string) {
	if name, arg, ok := strings.Cut(directive, " "); ok {
		return name, &arg
	}
	return directive, nil
}

func collectSphinxContent(initial string, lines []string, index *int) string {
	content := strings.TrimSpace(initial)

	for *index+1 < len(lines) {
		next := lines[*index+1]
		isContinuation := strings.HasPrefix(next, "    ") || strings.HasPrefix(next, "\t") || isSphinxContentContinuation(next)

		if !isContinuation {
			break
		}
		content += " " + strings.TrimSpace(next)
		*index++
	}
	return content
}

func isSphinxContentContinuation(line string) bool {
	trimmed := strings.TrimSpace(line)
	return trimmed != "" && !strings.HasPrefix(trimmed, ":")
}

func createSphinxNode(name string, arg *string, content string) ast.Node {
	switch name {
	case "param", "parameter", "arg", "argument":
		n := ast.NewNode(ast.KindDocParam, ast.EmptySpan())
		if arg != nil {
			n.Name = *arg
		}
		n.Description = ast.StrPtr(content)
		return n

	case "type":
		n := ast.NewNode(ast.KindDocType, ast.EmptySpan())
		n.TypeExpr = ast.StrPtr(content)
		return n

	case "returns", "return":
		n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
		n.Description = ast.StrPtr(content)
		return n

	case "rtype":
		n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
		n.ReturnType = ast.StrPtr(content)
		return n

	case "raises", "raise", "except", "exception":
		n := ast.NewNode(ast.KindDocThrows, ast.EmptySpan())
		if arg != nil {
			n.ExceptionType = *arg
		}
		n.Description = ast.StrPtr(content)
		return n

	default:
		n := ast.NewNode(ast.KindDocTag, ast.EmptySpan())
		n.Name = name
		n.TagContent = makeSphinxTagContent(arg, content)
		return n
	}
}

func makeSphinxTagContent(arg *string, content string) *string {
	if content == "" && arg == nil {
		return nil
	}
	prefix := ""
	if arg != nil {
		prefix = *arg
	}
	combined := strings.TrimSpace(prefix + " " + content)
	return &combined
}
