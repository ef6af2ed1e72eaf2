/*
Copyright © 2025 Conner Ohnesorge
*/
package main

import (
	"github.com/alecthomas/kong"

	"github.com/connerohnesorge/docscribe/cmd"
)

func main() {
	cli := &cmd.CLI{}
	ctx := kong.Parse(cli,
		kong.Name("docscribe"),
		kong.Description("Extract structured documentation ASTs from source trees"),
		kong.UsageOnError(),
	)

	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
