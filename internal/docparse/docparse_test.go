package docparse

import (
	"testing"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

func TestJSDocBasic(t *testing.T) {
	input := `
/**
 * This is a description
 * @param {string} name - The name
 * @returns {void}
 */
function test() {}
`
	doc := NewJSDocParser(input).Parse()
	if doc.DocType != ast.DocJavaScript {
		t.Fatalf("expected JavaScript doc type, got %v", doc.DocType)
	}
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestJSDocMultipleComments(t *testing.T) {
	input := `
/** First comment */
function first() {}

/** Second comment */
function second() {}
`
	doc := NewJSDocParser(input).Parse()
	if len(doc.Nodes) != 2 {
		t.Fatalf("expected 2 nodes, got %d", len(doc.Nodes))
	}
}

func TestJSDocEmpty(t *testing.T) {
	doc := NewJSDocParser("function test() {}").Parse()
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(doc.Nodes))
	}
}

func TestJSDocSkipNormalComments(t *testing.T) {
	input := `
/* This is not a JSDoc comment */
// Neither is this
/** But this is */
`
	doc := NewJSDocParser(input).Parse()
	if len(doc.Nodes) != 1 {
		t.Fatalf("expected 1 node, got %d", len(doc.Nodes))
	}
}

func TestJSDocParamType(t *testing.T) {
	input := "/**\n * @param {number} count - how many\n */"
	doc := NewJSDocParser(input).Parse()
	if len(doc.Nodes) != 1 || len(doc.Nodes[0].Children) != 1 {
		t.Fatalf("expected 1 param child, got %+v", doc.Nodes)
	}
	param := doc.Nodes[0].Children[0]
	if param.Kind != ast.KindDocParam || param.Name != "count" {
		t.Fatalf("expected param count, got %+v", param)
	}
	if param.ParamType == nil || *param.ParamType != "number" {
		t.Fatalf("expected type number, got %+v", param.ParamType)
	}
}

func TestJavaDocBasic(t *testing.T) {
	input := `
/**
 * This is a description
 * @param name The name parameter
 * @return The result
 */
public void test() {}
`
	doc := NewJavaDocParser(input).Parse()
	if doc.DocType != ast.DocJava {
		t.Fatalf("expected Java doc type, got %v", doc.DocType)
	}
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestJavaDocWithThrows(t *testing.T) {
	input := `
/**
 * Description
 * @param x Input value
 * @throws IllegalArgumentException if x is negative
 * @return Result
 */
`
	doc := NewJavaDocParser(input).Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
	var sawThrows bool
	for _, c := range doc.Nodes[0].Children {
		if c.Kind == ast.KindDocThrows {
			sawThrows = true
			if c.ExceptionType != "IllegalArgumentException" {
				t.Fatalf("expected IllegalArgumentException, got %q", c.ExceptionType)
			}
		}
	}
	if !sawThrows {
		t.Fatalf("expected a DocThrows child")
	}
}

func TestJavaDocEmpty(t *testing.T) {
	doc := NewJavaDocParser("public class Test {}").Parse()
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(doc.Nodes))
	}
}

func TestPyDocGoogleStyle(t *testing.T) {
	input := `
def test():
    """This is a description.

    Args:
        name: The name parameter
        value: The value

    Returns:
        The result
    """
    pass
`
	doc := NewPyDocParser(input).Parse()
	if doc.DocType != ast.DocPython {
		t.Fatalf("expected Python doc type, got %v", doc.DocType)
	}
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
	if doc.Nodes[0].Style != ast.DocStylePyDocGoogle {
		t.Fatalf("expected Google style, got %v", doc.Nodes[0].Style)
	}
}

func TestPyDocNumpyStyle(t *testing.T) {
	input := `
def test():
    """
    This is a description.

    Parameters
    ----------
    name : str
        The name parameter

    Returns
    -------
    str
        The result
    """
    pass
`
	doc := NewPyDocParser(input).Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
	if doc.Nodes[0].Style != ast.DocStylePyDocNumpy {
		t.Fatalf("expected NumPy style, got %v", doc.Nodes[0].Style)
	}
}

func TestPyDocSphinxStyle(t *testing.T) {
	input := "def test():\n    \"\"\"Description.\n\n    :param x: input value\n    :returns: the result\n    \"\"\"\n    pass\n"
	doc := NewPyDocParser(input).Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
	if doc.Nodes[0].Style != ast.DocStylePyDoc {
		t.Fatalf("expected plain PyDoc style for sphinx dialect, got %v", doc.Nodes[0].Style)
	}
}

func TestPyDocEmpty(t *testing.T) {
	doc := NewPyDocParser("def test(): pass").Parse()
	if len(doc.Nodes) != 0 {
		t.Fatalf("expected no nodes, got %d", len(doc.Nodes))
	}
}

func TestPyDocSingleLine(t *testing.T) {
	input := "\ndef test():\n    \"\"\"Single line docstring.\"\"\"\n    pass\n"
	doc := NewPyDocParser(input).Parse()
	if len(doc.Nodes) == 0 {
		t.Fatalf("expected nodes")
	}
}

func TestParsersDocCommentNode(t *testing.T) {
	doc := NewJSDocParser("/** Test */").Parse()
	if len(doc.Nodes) != 0 && doc.Nodes[0].Kind != ast.KindDocComment {
		t.Fatalf("expected DocComment node, got %+v", doc.Nodes[0])
	}
}

func TestDedent(t *testing.T) {
	input := "First line.\n    Indented body.\n    More body."
	got := dedent(input)
	want := "First line.\nIndented body.\nMore body."
	if got != want {
		t.Fatalf("dedent mismatch:\ngot:  %q\nwant: %q", got, want)
	}
}
