package main

import (
	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Debug    bool             `help:"Enable debug logging"`
	Server   ServerCmd        `cmd:"" help:"Run the hand simulation HTTP service"`
	Simulate SimulateCmd      `cmd:"" help:"Run a single hand simulation from a JSON request"`
	Migrate  MigrateCmd       `cmd:"" help:"Run database migrations"`
}

func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokersim"),
		kong.Description("Six-max No-Limit Hold'em hand simulation service"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version": version,
		},
	)
	err := ctx.Run(&cli)
	ctx.FatalIfErrorf(err)
}
