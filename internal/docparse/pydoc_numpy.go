package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

type numpyParseState struct {
	currentSection string
	description    strings.Builder
	sectionContent strings.Builder
}

// parseNumpyDocstring parses NumPy-style docstring content: a header
// line followed by a line of dashes introduces a section.
func parseNumpyDocstring(content string) []ast.Node {
	nodes := make([]ast.Node, 0, 4)
	lines := strings.Split(content, "\n")
	state := &numpyParseState{}

	i := 0
	for i < len(lines) {
		line := lines[i]
		trimmed := strings.TrimSpace(line)

		if isNumpySectionHeader(lines, i) {
			flushNumpySection(state, &nodes)
			state.currentSection = detectNumpySection(trimmed)
			state.sectionContent.Reset()
			state.description.Reset()
			i += 2
			continue
		}

		if state.currentSection != "" {
			appendLine(&state.sectionContent, line)
		} else {
			appendLine(&state.description, trimmed)
		}
		i++
	}
	flushNumpySection(state, &nodes)
	return nodes
}

func isNumpySectionHeader(lines []string, i int) bool {
	if i+1 >= len(lines) {
		return false
	}
	next := strings.TrimSpace(lines[i+1])
	if next == "" {
		return false
	}
	for _, r := range next {
		if r != '-' {
			return false
		}
	}
	return true
}

func detectNumpySection(header string) string {
	switch strings.ToLower(header) {
	case "parameters":
		return "parameters"
	case "returns":
		return "returns"
	case "yields":
		return "yields"
	case "raises":
		return "raises"
	case "attributes":
		return "attributes"
	case "examples", "example":
		return "example"
	case "notes", "note":
		return "note"
	case "see also":
		return "see_also"
	case "references":
		return "references"
	default:
		return "other"
	}
}

func flushNumpySection(state *numpyParseState, nodes *[]ast.Node) {
	if state.currentSection != "" {
		*nodes = append(*nodes, processNumpySection(state.currentSection, state.sectionContent.String())...)
		return
	}
	if strings.TrimSpace(state.description.String()) != "" {
		*nodes = append(*nodes, makeDescriptionNode(state.description.String()))
	}
}

func processNumpySection(section, content string) []ast.Node {
	switch section {
	case "parameters", "attributes":
		items := parseNumpyItems(content)
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
		items := parseNumpyItems(content)
		if len(items) == 0 {
			return nil
		}
		item := items[0]
		n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
		n.ReturnType = item.itemType
		n.Description = item.description
		return []ast.Node{n}

	case "raises":
		items := parseNumpyItems(content)
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

	case "see_also":
		out := make([]ast.Node, 0, 4)
		for _, line := range strings.Split(content, "\n") {
			s := strings.TrimSpace(line)
			if s == "" {
				continue
			}
			n := ast.NewNode(ast.KindDocSee, ast.EmptySpan())
			n.Reference = s
			out = append(out, n)
		}
		return out

	default:
		n := ast.NewNode(ast.KindDocTag, ast.EmptySpan())
		n.Name = section
		n.TagContent = ast.StrPtr(strings.TrimSpace(content))
		return []ast.Node{n}
	}
}

// parseNumpyItems splits a section body into items (non-indented lines
// start a new item, 4-space or tab-indented lines fold into its
// description), and parses each item's header
// line in NumPy's "name : type" shape rather than Google's
// "name: description" shape.
func parseNumpyItems(content string) []docItem {
	items := make([]docItem, 0, 4)
	var current *docItem

	for _, line := range strings.Split(content, "\n") {
		trimmed := strings.TrimSpace(line)
		isContinuation := strings.HasPrefix(line, "    ") || strings.HasPrefix(line, "\t")

		if trimmed != "" && !isContinuation {
			if current != nil {
				items = append(items, *current)
			}
			item := parseNumpyItemLine(trimmed)
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

// parseNumpyItemLine parses "name : type" or a bare "name" into a
// docItem with no description (NumPy-style items carry their
// description on subsequent indented lines, folded in separately).
func parseNumpyItemLine(line string) docItem {
	if pos := strings.Index(line, " : "); pos >= 0 {
		t := strings.TrimSpace(line[pos+3:])
		return newDocItem(strings.TrimSpace(line[:pos]), &t, nil)
	}
	return newDocItem(line, nil, nil)
}
