package ast

import "strings"

// DocumentType identifies which parser produced a Document and, for
// output naming, which language family it belongs to.
type DocumentType uint8

const (
	DocMarkdown DocumentType = iota
	DocJavaScript
	DocTypeScript
	DocJava
	DocPython
)

// DocumentTypeFromExtension maps a file extension (without the leading
// dot, any case) to a DocumentType, reporting ok=false if unrecognized.
func DocumentTypeFromExtension(ext string) (DocumentType, bool) {
	switch strings.ToLower(ext) {
	case "md", "markdown", "mdown", "mkd":
		return DocMarkdown, true
	case "js", "mjs", "cjs":
		return DocJavaScript, true
	case "ts", "tsx", "mts", "cts":
		return DocTypeScript, true
	case "java":
		return DocJava, true
	case "py", "pyi", "pyw":
		return DocPython, true
	default:
		return 0, false
	}
}

// Extension returns the canonical file extension for a DocumentType.
func (t DocumentType) Extension() string {
	switch t {
	case DocMarkdown:
		return "md"
	case DocJavaScript:
		return "js"
	case DocTypeScript:
		return "ts"
	case DocJava:
		return "java"
	case DocPython:
		return "py"
	default:
		return ""
	}
}

// String renders the document type name, used by JSON/textual output.
func (t DocumentType) String() string {
	switch t {
	case DocMarkdown:
		return "Markdown"
	case DocJavaScript:
		return "JavaScript"
	case DocTypeScript:
		return "TypeScript"
	case DocJava:
		return "Java"
	case DocPython:
		return "Python"
	default:
		return "Unknown"
	}
}

// DocumentMetadata carries summary information computed during parsing.
type DocumentMetadata struct {
	Title       *string
	Description *string
	TotalLines  int
	TotalNodes  int
}

// Document is the root container for a parsed source file: its AST
// nodes plus metadata about the source.
type Document struct {
	SourcePath string
	DocType    DocumentType
	Nodes      []Node
	Metadata   DocumentMetadata
}

// NodeCount sums CountNodes over the document's top-level nodes.
func (d *Document) NodeCount() int {
	total := 0
	for i := range d.Nodes {
		total += d.Nodes[i].CountNodes()
	}
	return total
}
