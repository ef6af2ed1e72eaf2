// Package cmd provides command-line interface implementations for
// docscribe.
package cmd

// CLI represents the root command structure for Kong.
type CLI struct {
	Verbose bool `help:"Enable verbose output" name:"verbose" short:"v"`

	Extract ExtractCmd `cmd:"" help:"Extract structured documentation ASTs from a source tree"`
	Bench   BenchCmd   `cmd:"" help:"Benchmark parsing a single file"`
	Version VersionCmd `cmd:"" help:"Show version info"`
}
