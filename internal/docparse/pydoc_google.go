package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

type googleParseState struct {
	currentSection string // "" means no active section
	description    strings.Builder
	sectionContent strings.Builder
}

// parseGoogleDocstring parses Google-style docstring content (Args:,
// Returns:, Raises:, ... sections) into ast nodes.
func parseGoogleDocstring(content string) []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	state := &googleParseState{}

	for _, line := range strings.Split(content, "\n") {
		processGoogleLine(line, state, &nodes)
	}
	finalizeGoogleSection(state, &nodes)
	return nodes
}

func processGoogleLine(line string, state *googleParseState, nodes *[]ast.Node) {
	trimmed := strings.TrimSpace(line)

	if section, ok := detectGoogleSection(trimmed); ok {
		flushGoogleSection(state, nodes)
		state.currentSection = section
		state.sectionContent.Reset()
		state.description.Reset()
		return
	}
	if state.currentSection != "" {
		appendLine(&state.sectionContent, line)
	} else {
		appendLine(&state.description, trimmed)
	}
}

func detectGoogleSection(line string) (string, bool) {
	switch line {
	case "Args:", "Arguments:":
		return "args", true
	case "Returns:":
		return "returns", true
	case "Yields:":
		return "yields", true
	case "Raises:":
		return "raises", true
	case "Attributes:":
		return "attributes", true
	case "Example:", "Examples:":
		return "example", true
	case "Note:", "Notes:":
		return "note", true
	case "Todo:":
		return "todo", true
	default:
		return "", false
	}
}

func flushGoogleSection(state *googleParseState, nodes *[]ast.Node) {
	if state.currentSection != "" {
		*nodes = append(*nodes, processGoogleSection(state.currentSection, state.sectionContent.String())...)
		return
	}
	if strings.TrimSpace(state.description.String()) != "" {
		*nodes = append(*nodes, makeDescriptionNode(state.description.String()))
	}
}

func finalizeGoogleSection(state *googleParseState, nodes *[]ast.Node) {
	flushGoogleSection(state, nodes)
}

func processGoogleSection(section, content string) []ast.Node {
	switch section {
	case "args", "attributes":
		items := parseDocItems(content)
		out := make([]ast.Node, 0, len(items))
		for _, item := range items {
			n := ast.NewNode(ast.KindDocParam, ast.EmptySpan())
			n.Name = item.name
			n.ParamType = item.itemType
			n.Description = item.description
			out = append(out, n)
		}
		return out

	case "returns", "yields":
		returnType, desc := parseGoogleReturnContent(content)
		n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
		n.ReturnType = returnType
		n.Description = desc
		return []ast.Node{n}

	case "raises":
		items := parseDocItems(content)
		out := make([]ast.Node, 0, len(items))
		for _, item := range items {
			n := ast.NewNode(ast.KindDocThrows, ast.EmptySpan())
			n.ExceptionType = item.name
			n.Description = item.description
			out = append(out, n)
		}
		return out

	case "example":
		n := ast.NewNode(ast.KindDocExample, ast.EmptySpan())
		n.Content = strings.TrimSpace(content)
		return []ast.Node{n}

	default:
		n := ast.NewNode(ast.KindDocTag, ast.EmptySpan())
		n.Name = section
		n.TagContent = ast.StrPtr(strings.TrimSpace(content))
		return []ast.Node{n}
	}
}

// parseGoogleReturnContent splits "type: description" when the part
// before the first colon contains no spaces (a bare type name),
// otherwise treats the whole content as description-only.
func parseGoogleReturnContent(content string) (*string, *string) {
	content = strings.TrimSpace(content)
	pos := strings.IndexByte(content, ':')
	if pos >= 0 && !strings.Contains(content[:pos], " ") {
		t := strings.TrimSpace(content[:pos])
		d := strings.TrimSpace(content[pos+1:])
		return &t, &d
	}
	return nil, &content
}

// parseDocItems splits a section's body into items: a non-blank line at
// the indentation of the body's first non-blank line starts a new item;
// lines indented deeper continue the previous item's description.
func parseDocItems(content string) []docItem {
	items := make([]docItem, 0, 4)
	var current *docItem
	baseIndent := -1

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		indent := len(line) - len(strings.TrimLeft(line, " \t"))
		if trimmed != "" && baseIndent < 0 {
			baseIndent = indent
		}
		isContinuation := trimmed != "" && indent > baseIndent

		if trimmed != "" && !isContinuation {
			if current != nil {
				items = append(items, *current)
			}
			item := parseItemLine(trimmed)
			current = &item
		} else if current != nil {
			appendToDescription(current, trimmed)
		}
	}
	if current != nil {
		items = append(items, *current)
	}
	return items
}

// parseItemLine parses "name: description" or "name(type): description"
// or "name (type): description" into a docItem.
func parseItemLine(line string) docItem {
	colonPos := strings.IndexByte(line, ':')
	if colonPos < 0 {
		return newDocItem(line, nil, nil)
	}
	before := line[:colonPos]
	after := strings.TrimSpace(line[colonPos+1:])
	name, itemType := parseNameType(before)
	var desc *string
	if after != "" {
		desc = &after
	}
	return newDocItem(name, itemType, desc)
}

func parseNameType(s string) (string, *string) {
	start := strings.IndexByte(s, '(')
	end := strings.IndexByte(s, ')')
	if start >= 0 && end >= 0 && start < end {
		t := strings.TrimSpace(s[start+1 : end])
		return strings.TrimSpace(s[:start]), &t
	}
	return strings.TrimSpace(s), nil
}
