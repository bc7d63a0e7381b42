package cmd

import (
	"bytes"
	"context"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/consts"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	"github.com/pseudomuto/sqlfluent/pkg/plan"
	"github.com/urfave/cli/v3"
	"golang.org/x/sync/errgroup"
)

type renderOptions struct {
	dialect   dialect.Dialect
	formatter format.Formatter
	write     bool
}

// render creates a CLI command that renders statement plans to SQL.
//
// The command accepts a single plan file or a directory. Directories are walked
// recursively and every .yaml plan found is rendered; plans are rendered concurrently
// but output is always written in lexicographical path order.
//
// The dialect and formatting settings come from the project configuration and can be
// overridden per invocation:
//   - --dialect: Render for the given dialect (standard, postgres, sqlite, mysql)
//   - --pretty: Render one clause per line
//   - -w, --write: Write a .sql file next to every plan instead of stdout
//
// When no path is given, the plans directory of the configuration is rendered.
//
// Examples:
//
//	# Render a single plan to stdout
//	sqlfluent render plans/users.yaml
//
//	# Render every plan for postgres, writing .sql files alongside
//	sqlfluent render --dialect postgres -w plans/
func render(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:      "render",
		Usage:     "Render statement plans to SQL",
		ArgsUsage: "[path]",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "write",
				Aliases: []string{"w"},
				Usage:   "Write a .sql file next to every plan instead of stdout",
			},
			&cli.BoolFlag{
				Name:  "pretty",
				Usage: "Render one clause per line",
			},
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "The dialect to render for",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			if cmd.Args().Len() > 1 {
				return errors.New("at most one path argument is allowed")
			}

			opts, err := newRenderOptions(cfg, cmd)
			if err != nil {
				return err
			}

			path := cfg.Plans
			if cmd.Args().Present() {
				path = cmd.Args().First()
			}

			return renderPath(ctx, path, opts, cmd.Root().Writer)
		},
	}
}

func newRenderOptions(cfg *config.Config, cmd *cli.Command) (renderOptions, error) {
	opts := renderOptions{
		dialect: cfg.Dialect,
		write:   cmd.Bool("write"),
	}

	if cmd.IsSet("dialect") {
		d, err := dialect.Parse(cmd.String("dialect"))
		if err != nil {
			return opts, err
		}

		opts.dialect = d
	}

	fmtOpts := format.Options{
		Pretty:     cfg.Format.Pretty,
		IndentSize: cfg.Format.IndentSize,
	}

	if cmd.IsSet("pretty") {
		fmtOpts.Pretty = cmd.Bool("pretty")
	}

	opts.formatter = format.New(fmtOpts)
	return opts, nil
}

// renderPath renders either a single plan file or every plan in a directory tree.
func renderPath(ctx context.Context, path string, opts renderOptions, w io.Writer) error {
	info, err := os.Stat(path)
	if err != nil {
		return errors.Wrapf(err, "failed to access path: %s", path)
	}

	if info.IsDir() {
		return renderDirectory(ctx, path, opts, w)
	}

	sql, err := renderFile(path, opts)
	if err != nil {
		return err
	}

	_, err = io.WriteString(w, sql)
	return errors.Wrap(err, "failed to write rendered SQL to output")
}

// renderDirectory renders all plans under dir concurrently. Output is collected per
// file and written in walk order once every plan rendered successfully.
func renderDirectory(ctx context.Context, dir string, opts renderOptions, w io.Writer) error {
	files, err := planFiles(dir)
	if err != nil {
		return err
	}

	out := make([]string, len(files))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.GOMAXPROCS(0))

	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}

			sql, err := renderFile(file, opts)
			if err != nil {
				return errors.Wrapf(err, "failed to render file: %s", file)
			}

			out[i] = sql
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}

	sep := ""
	if opts.formatter.Pretty() {
		sep = "\n"
	}

	var rendered []string
	for _, sql := range out {
		if sql != "" {
			rendered = append(rendered, sql)
		}
	}

	_, err = io.WriteString(w, strings.Join(rendered, sep))
	return errors.Wrap(err, "failed to write rendered SQL to output")
}

// planFiles returns the plan files under dir in lexicographical order.
func planFiles(dir string) ([]string, error) {
	var files []string

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.EqualFold(filepath.Ext(d.Name()), consts.PlanExt) {
			files = append(files, path)
		}

		return nil
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to walk directory: %s", dir)
	}

	if len(files) == 0 {
		return nil, errors.Errorf("no plan files found in directory: %s", dir)
	}

	return files, nil
}

// renderFile renders the plan at path. In write mode the SQL is written to a .sql file
// next to the plan and an empty string is returned.
func renderFile(path string, opts renderOptions) (string, error) {
	stmts, err := plan.LoadFile(path, opts.dialect)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	if err := plan.Render(&buf, opts.formatter, stmts...); err != nil {
		return "", errors.Wrapf(err, "failed to render plan: %s", path)
	}

	if !opts.write {
		return buf.String(), nil
	}

	target := strings.TrimSuffix(path, filepath.Ext(path)) + consts.SQLExt
	if err := os.WriteFile(target, buf.Bytes(), consts.ModeFile); err != nil {
		return "", errors.Wrapf(err, "failed to write rendered SQL to file: %s", target)
	}

	slog.Info("Rendered plan", "plan", path, "sql", target)
	return "", nil
}
