package main

import (
	"github.com/alecthomas/kong"

	"github.com/opentap/tapwall/cmd"
)

func main() {
	ctx := kong.Parse(&cmd.CLI, kong.Name("tapwall"), kong.Description("Tap Wall is a self-hosted taproom display backend."))
	err := ctx.Run(&cmd.Context{Debug: cmd.CLI.Debug})
	ctx.FatalIfErrorf(err)
}
