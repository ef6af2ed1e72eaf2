package cmd

import (
	"fmt"
	"os"

	"github.com/connerohnesorge/docscribe/internal/docbench"
	"github.com/connerohnesorge/docscribe/internal/extract"
)

// BenchCmd times parsing a single file through extract.ParseFile,
// reporting throughput by document size.
type BenchCmd struct {
	File       string `arg:"" help:"File to benchmark"`
	Iterations int    `help:"Number of timed iterations" short:"n" default:"50"`
	Streaming  bool   `help:"Use the buffered streaming reader"`
}

// Run executes the bench command.
func (c *BenchCmd) Run() error {
	content, err := os.ReadFile(c.File)
	if err != nil {
		return fmt.Errorf("reading %s: %w", c.File, err)
	}

	opts := extract.Options{Streaming: c.Streaming}
	result := docbench.Bench(c.File, c.Iterations, func() {
		if _, parseErr := extract.ParseFile(c.File, opts); parseErr != nil {
			return
		}
	})
	fmt.Println(result.Summary())
	fmt.Println(docbench.BenchThroughput(c.File, c.Iterations, len(content), func() {
		_, _ = extract.ParseFile(c.File, opts)
	}))

	return nil
}
