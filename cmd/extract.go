package cmd

import (
	"fmt"
	"strings"

	"github.com/connerohnesorge/docscribe/internal/config"
	"github.com/connerohnesorge/docscribe/internal/extract"
	"github.com/connerohnesorge/docscribe/internal/progresstui"
	"github.com/connerohnesorge/docscribe/internal/watch"
)

// ExtractCmd extracts structured documentation ASTs from every
// matching file under Input, writing one output file per source file
// into Output.
type ExtractCmd struct {
	Input  string `help:"Source directory to scan"             short:"i" required:""`
	Output string `help:"Directory to write extracted documents" short:"o" required:""`

	Format     string   `help:"Output format: dast or json" short:"f" default:"dast" enum:"dast,json"`
	Extensions []string `help:"File extensions to collect (comma-separated)" name:"ext" sep:","`

	Recursive bool `help:"Descend into subdirectories"                short:"r"`
	Parallel  bool `help:"Process files across a worker pool"`
	Jobs      int  `help:"Worker pool size (0 = GOMAXPROCS)"          short:"j"`

	Pretty    bool `help:"Indent JSON output"`
	Validate  bool `help:"Validate documents and report warnings"`
	SourceMap bool `help:"Write a <name>.map.json sidecar per file"`
	Streaming bool `help:"Parse using the buffered streaming reader"`

	Watch    bool `help:"Watch Input for changes and re-extract on save"`
	Progress bool `help:"Show a live progress bar while extracting"`
	Verbose  bool `help:"Print each file as it is processed"         short:"v"`
}

// Run executes the extract command.
func (c *ExtractCmd) Run() error {
	cfg, err := config.LoadFromPath(c.Input)
	if err != nil {
		return fmt.Errorf("loading docscribe.yaml: %w", err)
	}

	override := extract.BatchOptions{
		Input:      c.Input,
		Output:     c.Output,
		Format:     extract.Format(c.Format),
		Pretty:     c.Pretty,
		Validate:   c.Validate,
		SourceMap:  c.SourceMap,
		Streaming:  c.Streaming,
		Recursive:  c.Recursive || cfg.Recursive,
		Parallel:   c.Parallel || cfg.Parallel,
		Jobs:       jobsOrDefault(c.Jobs, cfg.Jobs),
		Extensions: c.Extensions,
		Verbose:    c.Verbose || cfg.Verbose,
	}
	opts := extract.FromConfig(cfg, override)

	if err := c.runOnce(opts); err != nil {
		return err
	}

	if !c.Watch {
		return nil
	}

	return c.watchAndReextract(opts)
}

func (c *ExtractCmd) runOnce(opts extract.BatchOptions) error {
	if c.Progress {
		progressCh := make(chan extract.ProgressEvent, 16)
		opts.Progress = progressCh

		done := make(chan error, 1)
		go func() {
			_, err := extract.Run(opts)
			done <- err
		}()

		if err := progresstui.Run(progressCh); err != nil {
			return fmt.Errorf("progress display: %w", err)
		}
		return <-done
	}

	stats, err := extract.Run(opts)
	if err != nil {
		return err
	}

	fmt.Printf(
		"Extracted %d files (%d markdown, %d js/ts, %d java, %d python, %d nodes, %d errors)\n",
		stats.TotalFiles(), stats.MarkdownFiles, stats.JSFiles, stats.JavaFiles,
		stats.PythonFiles, stats.TotalNodes, stats.Errors,
	)
	return nil
}

func (c *ExtractCmd) watchAndReextract(opts extract.BatchOptions) error {
	w, err := watch.New(opts.Input, opts.Extensions)
	if err != nil {
		return fmt.Errorf("starting watcher: %w", err)
	}
	defer func() { _ = w.Close() }()

	fmt.Printf("Watching %s for changes (ctrl+c to stop)...\n", opts.Input)

	for {
		select {
		case path, ok := <-w.Events():
			if !ok {
				return nil
			}
			if !hasMatchingExtension(path, opts.Extensions) {
				continue
			}
			fmt.Printf("Change detected: %s\n", path)
			if _, err := extract.Run(opts); err != nil {
				fmt.Printf("  re-extraction failed: %v\n", err)
			}
		case err, ok := <-w.Errors():
			if !ok {
				return nil
			}
			fmt.Printf("watch error: %v\n", err)
		}
	}
}

func jobsOrDefault(jobs, fallback int) int {
	if jobs > 0 {
		return jobs
	}
	return fallback
}

func hasMatchingExtension(path string, extensions []string) bool {
	if len(extensions) == 0 {
		return true
	}
	for _, ext := range extensions {
		if strings.HasSuffix(strings.ToLower(path), "."+strings.ToLower(ext)) {
			return true
		}
	}
	return false
}
