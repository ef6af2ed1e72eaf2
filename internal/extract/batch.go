package extract

import (
	"fmt"
	"os"

	"github.com/spf13/afero"

	"github.com/connerohnesorge/docscribe/internal/config"
	"github.com/connerohnesorge/docscribe/internal/discovery"
)

// ProgressEvent reports the outcome of one file during a batch run, for
// callers driving a live progress display.
type ProgressEvent struct {
	Path      string
	NodeCount int
	Err       error
	Total     int
}

// BatchOptions controls a directory-wide extraction run.
type BatchOptions struct {
	Input      string
	Output     string
	Format     Format
	Pretty     bool
	Validate   bool
	SourceMap  bool
	Streaming  bool
	Recursive  bool
	Parallel   bool
	Jobs       int
	Extensions []string
	Verbose    bool
	// Progress, if non-nil, receives one ProgressEvent per processed
	// file and is closed when the run completes.
	Progress chan<- ProgressEvent
}

// FromConfig builds BatchOptions from a loaded Config, letting explicit
// fields on override take precedence. Only Format, Output and
// Extensions are filled from cfg, and only when empty on override; every
// other field is taken from override as is.
func FromConfig(cfg *config.Config, override BatchOptions) BatchOptions {
	opts := override
	if opts.Format == "" {
		opts.Format = Format(cfg.OutputFormat)
	}
	if opts.Output == "" {
		opts.Output = cfg.OutputDir
	}
	if len(opts.Extensions) == 0 {
		opts.Extensions = cfg.Extensions
	}
	return opts
}

// Run walks opts.Input, parses every matching file, and writes output
// for each into opts.Output, returning aggregate Stats. Per-file errors
// are counted, not fatal — the batch continues.
func Run(opts BatchOptions) (discovery.Stats, error) {
	fs := afero.NewOsFs()

	files, err := discovery.Collect(fs, opts.Input, discovery.CollectOptions{
		Extensions: opts.Extensions,
		Recursive:  opts.Recursive,
	})
	if err != nil {
		return discovery.Stats{}, err
	}

	if err := os.MkdirAll(opts.Output, 0o755); err != nil {
		return discovery.Stats{}, err
	}

	if opts.Progress != nil {
		defer close(opts.Progress)
	}

	process := func(f discovery.File) (int, error) {
		parseOpts := Options{
			Streaming: opts.Streaming,
			Validate:  opts.Validate,
			OnWarning: func(path string, line int, message string) {
				fmt.Fprintf(os.Stderr, "  [WARN] %s at line %d: %s\n", path, line, message)
			},
			OnError: func(path string, line int, message string) {
				fmt.Fprintf(os.Stderr, "  [ERROR] %s at line %d: %s\n", path, line, message)
			},
		}

		doc, err := ParseFile(f.Path, parseOpts)
		if err != nil {
			return 0, err
		}

		writeOpts := WriteOptions{Format: opts.Format, Pretty: opts.Pretty, SourceMap: opts.SourceMap}
		if err := WriteOutput(&doc, f.Path, opts.Output, writeOpts); err != nil {
			return 0, err
		}

		return doc.Metadata.TotalNodes, nil
	}

	onResult := func(f discovery.File, nodeCount int, err error) {
		if opts.Progress != nil {
			opts.Progress <- ProgressEvent{Path: f.Path, NodeCount: nodeCount, Err: err, Total: len(files)}
		}
		if !opts.Verbose {
			return
		}
		if err != nil {
			fmt.Fprintf(os.Stderr, "  Error processing %s: %v\n", f.Path, err)
			return
		}
		fmt.Printf("  Processed: %s (%d nodes)\n", f.Path, nodeCount)
	}

	if opts.Parallel && len(files) > 1 {
		return discovery.ProcessParallelN(files, process, onResult, opts.Jobs), nil
	}
	return discovery.ProcessSequential(files, process, onResult), nil
}
