package cmd

import (
	"context"
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/urfave/cli/v3"
)

// clauses creates a CLI command listing the clauses rendered for every statement kind,
// in rendering order. Clauses a dialect does not support are absent from its listing.
//
// Examples:
//
//	# Clauses of the configured dialect
//	sqlfluent clauses
//
//	# Only the delete clauses of mysql
//	sqlfluent clauses --dialect mysql --kind delete
func clauses(cfg *config.Config) *cli.Command {
	return &cli.Command{
		Name:  "clauses",
		Usage: "List the clause sequence of every statement kind",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "dialect",
				Usage: "The dialect to list clauses for",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
			&cli.StringFlag{
				Name:  "kind",
				Usage: "Only list the clauses of this statement kind",
				Config: cli.StringConfig{
					TrimSpace: true,
				},
			},
		},
		Action: func(ctx context.Context, cmd *cli.Command) error {
			d := cfg.Dialect
			if cmd.IsSet("dialect") {
				var err error
				if d, err = dialect.Parse(cmd.String("dialect")); err != nil {
					return err
				}
			}

			kinds := query.Kinds()
			if cmd.IsSet("kind") {
				k, err := query.ParseKind(cmd.String("kind"))
				if err != nil {
					return err
				}

				kinds = []query.Kind{k}
			}

			seqs := query.Sequences(d)
			for _, k := range kinds {
				if _, err := fmt.Fprintf(cmd.Root().Writer, "%s: %s\n", k, strings.Join(seqs[k], ", ")); err != nil {
					return err
				}
			}

			return nil
		},
	}
}
