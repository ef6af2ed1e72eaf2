package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func parseJSDocTag(line string, lines []string, index *int) (ast.Node, bool) {
	head, rest := splitTagHeadRest(line, "@")
	content := collectContinuation("@", rest, lines, index)

	switch head {
	case "param", "arg", "argument":
		return parseJSDocParam(content), true
	case "returns", "return":
		return makeDocReturn(content), true
	case "throws", "exception":
		return parseJSDocThrows(content), true
	case "type":
		n := ast.NewNode(ast.KindDocType, ast.EmptySpan())
		n.TypeExpr = ast.StrPtr(content)
		return n, true
	case "typedef":
		return makeJSDocTypedef(content), true
	case "callback":
		n := ast.NewNode(ast.KindDocCallback, ast.EmptySpan())
		n.Name = content
		return n, true
	case "property", "prop":
		return parseJSDocProperty(content), true
	case "example":
		n := ast.NewNode(ast.KindDocExample, ast.EmptySpan())
		n.Content = content
		return n, true
	case "see":
		n := ast.NewNode(ast.KindDocSee, ast.EmptySpan())
		n.Reference = content
		return n, true
	case "deprecated":
		n := ast.NewNode(ast.KindDocDeprecated, ast.EmptySpan())
		n.Message = nonEmptyStr(content)
		return n, true
	case "since":
		n := ast.NewNode(ast.KindDocSince, ast.EmptySpan())
		n.Version = content
		return n, true
	case "author":
		n := ast.NewNode(ast.KindDocAuthor, ast.EmptySpan())
		n.Name = content
		return n, true
	case "version":
		n := ast.NewNode(ast.KindDocVersion, ast.EmptySpan())
		n.Version = content
		return n, true
	default:
		n := ast.NewNode(ast.KindDocTag, ast.EmptySpan())
		n.Name = head
		n.TagContent = nonEmptyStr(content)
		return n, true
	}
}

func parseJSDocParam(content string) ast.Node {
	paramType, rest := extractTypePrefix(content)
	name, description := splitNameDashDescription(rest)

	n := ast.NewNode(ast.KindDocParam, ast.EmptySpan())
	n.Name = strings.TrimSpace(name)
	n.ParamType = paramType
	n.Description = description
	return n
}

func parseJSDocProperty(content string) ast.Node {
	propType, rest := extractTypePrefix(content)
	name, description := splitNameDashDescription(rest)

	n := ast.NewNode(ast.KindDocProperty, ast.EmptySpan())
	n.Name = strings.TrimSpace(name)
	n.ParamType = propType
	n.Description = description
	return n
}

// splitNameDashDescription splits "name - description" or "name
// description" at the first '-' or whitespace, stripping a leading
// dash from the remainder.
func splitNameDashDescription(rest string) (string, *string) {
	idx := strings.IndexFunc(rest, func(r rune) bool {
		return r == '-' || r == ' ' || r == '\t'
	})
	if idx < 0 {
		return rest, nil
	}
	name := rest[:idx]
	tail := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(rest[idx:]), "-"))
	return name, nonEmptyStr(tail)
}

func parseJSDocThrows(content string) ast.Node {
	exceptionType, description := extractTypePrefix(content)
	exception := ""
	if exceptionType != nil {
		exception = *exceptionType
	} else {
		fields := strings.Fields(content)
		if len(fields) > 0 {
			exception = fields[0]
		}
	}

	n := ast.NewNode(ast.KindDocThrows, ast.EmptySpan())
	n.ExceptionType = exception
	n.Description = nonEmptyStr(description)
	return n
}

func makeDocReturn(content string) ast.Node {
	returnType, description := extractTypePrefix(content)
	n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
	n.ReturnType = returnType
	n.Description = nonEmptyStr(description)
	return n
}

func makeJSDocTypedef(content string) ast.Node {
	typeExpr, rest := extractTypePrefix(content)
	fields := strings.Fields(rest)
	name := ""
	if len(fields) > 0 {
		name = fields[0]
	}
	n := ast.NewNode(ast.KindDocTypedef, ast.EmptySpan())
	n.Name = name
	n.TypeExpr = typeExpr
	return n
}
