package main

import (
	"fmt"

	"github.com/alecthomas/kong"
	"go.uber.org/fx"

	"hello-responder/internal/app"
	"hello-responder/internal/config"
	"hello-responder/internal/model"
)

// Set by goreleaser ldflags.
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	var cli config.CLI
	kctx := kong.Parse(&cli,
		kong.Name("hello-static"),
		kong.Description("Answers every HTTP request with a fixed Hello World page."),
		kong.Vars{"version": fmt.Sprintf("%s (%s, %s)", version, commit, date)},
	)

	cfg, err := config.Load(&cli)
	kctx.FatalIfErrorf(err)

	fx.New(app.Options(model.VariantStatic, cfg, version)).Run()
}
