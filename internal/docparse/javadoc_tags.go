package docparse

import (
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func parseJavaDocTag(line string, lines []string, index *int) (ast.Node, bool) {
	head, rest := splitTagHeadRest(line, "@")
	content := collectContinuation("@", rest, lines, index)

	switch head {
	case "param":
		return parseJavaDocParam(content), true
	case "return", "returns":
		n := ast.NewNode(ast.KindDocReturn, ast.EmptySpan())
		n.ReturnType = nil
		n.Description = ast.StrPtr(content)
		return n, true
	case "throws", "exception":
		return parseJavaDocThrows(content), true
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

func parseJavaDocParam(content string) ast.Node {
	fields := strings.SplitN(content, " ", 2)
	name := fields[0]
	var description *string
	if len(fields) > 1 {
		description = nonEmptyStr(fields[1])
	}

	n := ast.NewNode(ast.KindDocParam, ast.EmptySpan())
	n.Name = name
	n.Description = description
	return n
}

func parseJavaDocThrows(content string) ast.Node {
	fields := strings.SplitN(content, " ", 2)
	exceptionType := fields[0]
	var description *string
	if len(fields) > 1 {
		description = nonEmptyStr(fields[1])
	}

	n := ast.NewNode(ast.KindDocThrows, ast.EmptySpan())
	n.ExceptionType = exceptionType
	n.Description = description
	return n
}
