package cmd

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/consts"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/urfave/cli/v3"
	"gopkg.in/yaml.v3"
)

// initCmd creates a CLI command that initializes a sqlfluent project in the current
// directory: a sqlfluent.yaml configuration file and an empty plans directory.
//
// An existing configuration file is never overwritten.
//
// Examples:
//
//	sqlfluent init
//	sqlfluent init --dialect postgres --pretty
func initCmd() *cli.Command {
	return &cli.Command{
		Name:  "init",
		Usage: "Initialize a new sqlfluent project",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "The default dialect of the project",
				Value: consts.DefaultDialect,
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Render one clause per line by default",
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if _, err := os.Stat(consts.ConfigFile); err == nil {
				return errors.Errorf("%s already exists", consts.ConfigFile)
			}

			d, err := dialect.Parse(cmd.String("dialect"))
			if err != nil {
				return err
			}

			cfg := config.Default()
			cfg.Dialect = d
			cfg.Format.Pretty = cmd.Bool("pretty")

			var buf bytes.Buffer
			enc := yaml.NewEncoder(&buf)
			enc.SetIndent(2)
			if err := enc.Encode(cfg); err != nil {
				return errors.Wrap(err, "failed to encode config")
			}

			if err := os.WriteFile(consts.ConfigFile, buf.Bytes(), consts.ModeFile); err != nil {
				return errors.Wrapf(err, "failed to write file: %s", consts.ConfigFile)
			}

			if err := os.MkdirAll(cfg.Plans, consts.ModeDir); err != nil {
				return errors.Wrapf(err, "failed to create directory: %s", cfg.Plans)
			}

			_, err = fmt.Fprintf(cmd.Root().Writer, "Initialized sqlfluent project (%s)\n", d)
			return err
		},
	}
}
