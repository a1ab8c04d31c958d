package main

import (
	"pokerhands/config"
	_ "pokerhands/config/swagger"

	"github.com/alecthomas/kong"
)

// version is set by ldflags during build
var version = "dev"

type CLI struct {
	Version  kong.VersionFlag `short:"v" help:"Show version"`
	Serve    ServeCmd         `cmd:"" default:"1" help:"Run the HTTP API (default)"`
	Classify ClassifyCmd      `cmd:"" help:"Classify hands given as arguments"`
}

// @title Poker Hands API
// @version 1.0
// @description Gin-Gonic server that classifies five-card poker hands
// @BasePath /
func main() {
	var cli CLI
	ctx := kong.Parse(&cli,
		kong.Name("pokerhands"),
		kong.Description("Classify five-card poker hands and pick the strongest"),
		kong.UsageOnError(),
		kong.ConfigureHelp(kong.HelpOptions{
			Compact: true,
		}),
		kong.Vars{
			"version":     version,
			"config_file": config.DefaultConfigFile,
		},
	)
	err := ctx.Run()
	ctx.FatalIfErrorf(err)
}
