package extract

import (
	"os"
	"path/filepath"

	"github.com/connerohnesorge/docscribe/internal/ast"
	"github.com/connerohnesorge/docscribe/internal/dast"
	"github.com/connerohnesorge/docscribe/internal/docerrs"
	"github.com/connerohnesorge/docscribe/internal/sourcemap"
	"github.com/connerohnesorge/docscribe/internal/textcodec"
)

// Format selects the codec used when writing a Document.
type Format string

const (
	// FormatDAST writes the compact binary node model.
	FormatDAST Format = "dast"
	// FormatJSON writes the textual JSON node model.
	FormatJSON Format = "json"
)

// WriteOptions controls how ParseFile's result is serialized to disk.
type WriteOptions struct {
	Format    Format
	Pretty    bool
	SourceMap bool
}

// WriteOutput renders doc through the configured codec and writes it to
// <outputDir>/<base(sourceName)>.<ext>, creating outputDir if needed. If
// opts.SourceMap is set, it additionally writes a
// <base(sourceName)>.map.json sidecar.
func WriteOutput(doc *ast.Document, sourceName, outputDir string, opts WriteOptions) error {
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return &docerrs.ParseError{Path: outputDir, Err: err}
	}

	base := filepath.Base(sourceName)
	ext := "dast"
	if opts.Format == FormatJSON {
		ext = "json"
	}
	outPath := filepath.Join(outputDir, base+"."+ext)

	if err := writeContent(outPath, doc, opts); err != nil {
		return err
	}

	if opts.SourceMap {
		mapPath := filepath.Join(outputDir, base+".map.json")
		m := sourcemap.FromDocument(doc)
		if err := os.WriteFile(mapPath, []byte(m.ToJSON()), 0o644); err != nil {
			return &docerrs.ParseError{Path: mapPath, Err: err}
		}
	}

	return nil
}

func writeContent(path string, doc *ast.Document, opts WriteOptions) error {
	switch opts.Format {
	case FormatJSON:
		content := textcodec.ToJSON(doc)
		if opts.Pretty {
			content = textcodec.ToJSONPretty(doc)
		}
		if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
			return &docerrs.ParseError{Path: path, Err: err}
		}
		return nil
	default:
		data := dast.Encode(doc)
		if err := os.WriteFile(path, data, 0o644); err != nil {
			return &docerrs.ParseError{Path: path, Err: err}
		}
		return nil
	}
}
