// Package extract orchestrates parsing a source file into an
// ast.Document and writing the result through the configured codec,
// wiring together docparse/markdown, dast, textcodec, sourcemap, and
// validate.
package extract

import (
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/docerrs"
	"github.com/connerohnesorge/docscribe/internal/docparse"
	"github.com/connerohnesorge/docscribe/internal/markdown"
	"github.com/connerohnesorge/docscribe/internal/streaming"
	"github.com/connerohnesorge/docscribe/internal/validate"
)

// Options controls how a single file is parsed and reported.
type Options struct {
	Streaming bool
	Validate  bool
	// OnWarning, if non-nil, is called once per validation warning when
	// Validate is set.
	OnWarning func(path string, line int, message string)
	// OnError, if non-nil, is called once per validation error when
	// Validate is set.
	OnError func(path string, line int, message string)
}

// ParseFile detects path's DocumentType from its extension, parses it
// with the matching parser, and returns the resulting Document with
// SourcePath normalized to forward slashes.
func ParseFile(path string, opts Options) (ast.Document, error) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	docType, ok := ast.DocumentTypeFromExtension(ext)
	if !ok {
		return ast.Document{}, &docerrs.UnknownExtensionError{Path: path}
	}

	doc, err := parseByType(path, docType, opts)
	if err != nil {
		return ast.Document{}, err
	}

	doc.SourcePath = normalizePath(path)

	if opts.Validate {
		runValidation(&doc, path, opts)
	}

	return doc, nil
}

func parseByType(path string, docType ast.DocumentType, opts Options) (ast.Document, error) {
	if opts.Streaming && docType == ast.DocMarkdown {
		return parseStreaming(path)
	}
	return parseWhole(path, docType)
}

func parseStreaming(path string) (ast.Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return ast.Document{}, &docerrs.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	doc, err := streaming.ParseDocument(f)
	if err != nil {
		return ast.Document{}, &docerrs.ParseError{Path: path, Err: err}
	}
	return doc, nil
}

func parseWhole(path string, docType ast.DocumentType) (ast.Document, error) {
	content, err := readFileContent(path)
	if err != nil {
		return ast.Document{}, err
	}

	switch docType {
	case ast.DocMarkdown:
		return markdown.New(content).Parse(), nil
	case ast.DocJavaScript, ast.DocTypeScript:
		doc := docparse.NewJSDocParser(content).Parse()
		doc.DocType = docType
		return doc, nil
	case ast.DocJava:
		return docparse.NewJavaDocParser(content).Parse(), nil
	case ast.DocPython:
		return docparse.NewPyDocParser(content).Parse(), nil
	default:
		return ast.Document{}, &docerrs.UnknownExtensionError{Path: path}
	}
}

func readFileContent(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", &docerrs.ParseError{Path: path, Err: err}
	}
	defer f.Close()

	data, err := io.ReadAll(f)
	if err != nil {
		return "", &docerrs.ParseError{Path: path, Err: err}
	}
	return string(data), nil
}

func normalizePath(path string) string {
	return strings.ReplaceAll(path, "\\", "/")
}

func runValidation(doc *ast.Document, path string, opts Options) {
	result := validate.Validate(doc)

	if opts.OnError != nil {
		for _, e := range result.Errors {
			opts.OnError(path, e.Line, e.Message)
		}
	}
	if opts.OnWarning != nil {
		for _, w := range result.Warnings {
			opts.OnWarning(path, w.Line, w.Message)
		}
	}
}
