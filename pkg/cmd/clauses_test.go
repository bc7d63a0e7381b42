package cmd

import (
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/cmd/testutil"
	"github.com/pseudomuto/sqlfluent/pkg/config"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestClausesCommand(t *testing.T) {
	t.Run("all kinds", func(t *testing.T) {
		out, err := testutil.RunCommand(t, clauses(config.Default()))
		require.NoError(t, err)

		lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
		require.Len(t, lines, len(query.Kinds()))
		require.Equal(t, "select: "+strings.Join(query.Sequences(dialect.Standard)[query.KindSelect], ", "), lines[0])
		require.Contains(t, out, "update: UPDATE, SET, WHERE\n")
	})

	t.Run("dialect and kind", func(t *testing.T) {
		out, err := testutil.RunCommand(t, clauses(config.Default()), "--dialect", "mysql", "--kind", "delete")
		require.NoError(t, err)
		require.Equal(t, "delete: DELETE FROM, PARTITION, WHERE, ORDER BY, LIMIT\n", out)
	})

	t.Run("configured dialect", func(t *testing.T) {
		cfg := config.Default()
		cfg.Dialect = dialect.MySQL

		out, err := testutil.RunCommand(t, clauses(cfg), "--kind", "delete")
		require.NoError(t, err)
		require.Equal(t, "delete: DELETE FROM, PARTITION, WHERE, ORDER BY, LIMIT\n", out)
	})

	t.Run("errors", func(t *testing.T) {
		_, err := testutil.RunCommand(t, clauses(config.Default()), "--kind", "merge")
		require.ErrorContains(t, err, "unknown statement kind: merge")

		_, err = testutil.RunCommand(t, clauses(config.Default()), "--dialect", "oracle")
		require.ErrorContains(t, err, "unknown dialect: oracle")
	})
}
