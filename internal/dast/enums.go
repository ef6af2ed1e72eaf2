package dast

import (
	"fmt"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func docTypeToU8(t ast.DocumentType) byte {
	switch t {
	case ast.DocMarkdown:
		return 0
	case ast.DocJavaScript:
		return 1
	case ast.DocTypeScript:
		return 2
	case ast.DocJava:
		return 3
	default:
		return 4
	}
}

// u8ToDocType decodes strictly: an out-of-range byte is an error
// rather than silently defaulting to Python, unlike the lenient
// original decoder.
func u8ToDocType(v byte) (ast.DocumentType, error) {
	switch v {
	case 0:
		return ast.DocMarkdown, nil
	case 1:
		return ast.DocJavaScript, nil
	case 2:
		return ast.DocTypeScript, nil
	case 3:
		return ast.DocJava, nil
	case 4:
		return ast.DocPython, nil
	default:
		return 0, fmt.Errorf("dast: unknown document type byte %d", v)
	}
}

func alignmentToU8(a ast.Alignment) byte {
	return byte(a)
}

func u8ToAlignment(v byte) (ast.Alignment, error) {
	switch v {
	case byte(ast.AlignNone), byte(ast.AlignLeft), byte(ast.AlignCenter), byte(ast.AlignRight):
		return ast.Alignment(v), nil
	default:
		return 0, fmt.Errorf("dast: unknown alignment byte %d", v)
	}
}

func refTypeToU8(r ast.ReferenceType) byte {
	return byte(r)
}

func u8ToRefType(v byte) (ast.ReferenceType, error) {
	switch v {
	case byte(ast.RefFull), byte(ast.RefCollapsed), byte(ast.RefShortcut):
		return ast.ReferenceType(v), nil
	default:
		return 0, fmt.Errorf("dast: unknown reference type byte %d", v)
	}
}

func docStyleToU8(s ast.DocStyle) byte {
	return byte(s)
}

func u8ToDocStyle(v byte) (ast.DocStyle, error) {
	switch v {
	case byte(ast.DocStyleJSDoc), byte(ast.DocStyleJavaDoc), byte(ast.DocStylePyDoc),
		byte(ast.DocStylePyDocGoogle), byte(ast.DocStylePyDocNumpy):
		return ast.DocStyle(v), nil
	default:
		return 0, fmt.Errorf("dast: unknown doc style byte %d", v)
	}
}

func alertTypeToU8(a ast.AlertType) byte {
	return byte(a)
}

func u8ToAlertType(v byte) (ast.AlertType, error) {
	switch v {
	case byte(ast.AlertNote), byte(ast.AlertTip), byte(ast.AlertImportant),
		byte(ast.AlertWarning), byte(ast.AlertCaution):
		return ast.AlertType(v), nil
	default:
		return 0, fmt.Errorf("dast: unknown alert type byte %d", v)
	}
}

func frontmatterFormatToU8(f ast.FrontmatterFormat) byte {
	return byte(f)
}

func u8ToFrontmatterFormat(v byte) (ast.FrontmatterFormat, error) {
	switch v {
	case byte(ast.FrontmatterYAML), byte(ast.FrontmatterTOML), byte(ast.FrontmatterJSON):
		return ast.FrontmatterFormat(v), nil
	default:
		return 0, fmt.Errorf("dast: unknown frontmatter format byte %d", v)
	}
}
