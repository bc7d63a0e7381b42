package cmd

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/consts"
	"github.com/urfave/cli/v3"
	"go.uber.org/fx"
)

type (
	Params struct {
		fx.In

		Args       []string
		Commands   []*cli.Command `group:"commands"`
		Config     *config.Config
		Ctx        context.Context
		Lifecycle  fx.Lifecycle
		Shutdowner fx.Shutdowner
		Version    *Version
	}

	Version struct {
		Version   string
		Commit    string
		Timestamp string
	}
)

// Run creates the sqlfluent CLI application and registers it to run when the fx
// application starts. The application shuts down with exit code 1 when the command
// fails and 0 otherwise.
//
// Global Flags:
//   - --config, -c: The configuration file (defaults to sqlfluent.yaml, or $SQLFLUENT_CONFIG)
//
// The configuration provided by the config module is loaded from consts.ConfigFile (or
// $SQLFLUENT_CONFIG) before commands are created. When --config is passed explicitly
// the file is reloaded in place so every command sees the requested settings.
func Run(p Params) {
	cli.VersionPrinter = func(cmd *cli.Command) {
		fmt.Fprintln(cmd.Writer, "Version:", p.Version.Version)
		fmt.Fprintln(cmd.Writer, "Commit:", p.Version.Commit)
		fmt.Fprintln(cmd.Writer, "Date:", p.Version.Timestamp)
	}

	app := newApp(p)

	p.Lifecycle.Append(fx.StartHook(func() {
		if err := app.Run(p.Ctx, p.Args); err != nil {
			slog.Error("Error running command", "err", err)
			_ = p.Shutdowner.Shutdown(fx.ExitCode(1))
			return
		}

		_ = p.Shutdowner.Shutdown(fx.ExitCode(0))
	}))
}

func newApp(p Params) *cli.Command {
	return &cli.Command{
		Name:  "sqlfluent",
		Usage: "Render SQL statements from declarative plans",
		Description: `sqlfluent renders SQL statements for standard SQL, PostgreSQL, SQLite and
MySQL from YAML statement plans, using the same immutable builders the Go
package exposes.`,
		Version: p.Version.Version,
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "config",
				Aliases: []string{"c"},
				Usage:   "the sqlfluent config file",
				Sources: cli.EnvVars(consts.ConfigEnv),
				Value:   consts.ConfigFile,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Before: func(ctx context.Context, cmd *cli.Command) (context.Context, error) {
			if !cmd.IsSet("config") {
				return ctx, nil
			}

			cfg, err := config.LoadConfigFile(cmd.String("config"))
			if err != nil {
				return ctx, err
			}

			*p.Config = *cfg
			return ctx, nil
		},
		Commands: p.Commands,
	}
}
