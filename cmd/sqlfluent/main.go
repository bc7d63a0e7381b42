package main

import (
	"context"
	"os"

	"github.com/pseudomuto/sqlfluent/pkg/cmd"
	"github.com/pseudomuto/sqlfluent/pkg/config"
	"go.uber.org/fx"
)

// NB: These are set by GoReleaser during a build.
var (
	version string
	commit  string
	date    string
)

func main() {
	app := fx.New(
		fx.Supply(
			os.Args,
			fx.Annotate(context.Background(), fx.As(new(context.Context))),
			&cmd.Version{
				Version:   version,
				Commit:    commit,
				Timestamp: date,
			},
		),
		config.Module,
		cmd.Module,
		fx.NopLogger,
	)

	app.Run()
}
