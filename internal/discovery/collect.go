// Package discovery walks a filesystem to find extractable source
// files and runs per-file work across a bounded worker pool.
package discovery

import (
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/docscribe/internal/ast"
)

// File is a single discovered source file and the DocumentType its
// extension maps to.
type File struct {
	Path    string
	DocType ast.DocumentType
}

// CollectOptions controls a source-file walk.
type CollectOptions struct {
	// Extensions restricts matches to these extensions (without the
	// leading dot, any case). A nil/empty slice matches every
	// extension ast.DocumentTypeFromExtension recognizes.
	Extensions []string
	// Recursive enables descending into subdirectories. When false
	// and Root is a directory, only its direct children are scanned.
	Recursive bool
}

// Collect walks root (a file or a directory) on fs and returns every
// matching source file, skipping the directories in skipDirsSet and
// any extension CollectOptions.Extensions excludes.
//
// Results are sorted by path for deterministic output.
func Collect(fs afero.Fs, root string, opts CollectOptions) ([]File, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, err
	}

	allowed := make(map[string]bool, len(opts.Extensions))
	for _, ext := range opts.Extensions {
		allowed[strings.ToLower(strings.TrimPrefix(ext, "."))] = true
	}

	if !info.IsDir() {
		docType, ok := matchExtension(root, allowed)
		if !ok {
			return nil, nil
		}
		return []File{{Path: root, DocType: docType}}, nil
	}

	var files []File
	walkErr := afero.Walk(fs, root, func(path string, d os.FileInfo, err error) error {
		if err != nil {
			if d != nil && d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}

		if d.IsDir() {
			if path == root {
				return nil
			}
			if shouldSkipDirectory(d.Name()) {
				return filepath.SkipDir
			}
			if !opts.Recursive {
				return filepath.SkipDir
			}
			return nil
		}

		if docType, ok := matchExtension(path, allowed); ok {
			files = append(files, File{Path: path, DocType: docType})
		}
		return nil
	})
	if walkErr != nil {
		return nil, walkErr
	}

	sort.Slice(files, func(i, j int) bool { return files[i].Path < files[j].Path })
	return files, nil
}

func matchExtension(path string, allowed map[string]bool) (ast.DocumentType, bool) {
	ext := strings.TrimPrefix(strings.ToLower(filepath.Ext(path)), ".")
	if ext == "" {
		return 0, false
	}
	if len(allowed) > 0 && !allowed[ext] {
		return 0, false
	}
	return ast.DocumentTypeFromExtension(ext)
}
