package query_test

import (
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	. "github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestDelete_String(t *testing.T) {
	tests := []struct {
		name     string
		stmt     Delete
		expected string
	}{
		{
			name:     "empty",
			stmt:     NewDelete(),
			expected: "",
		},
		{
			name:     "delete",
			stmt:     NewDelete().DeleteFrom("users").Where("id = $1"),
			expected: "DELETE FROM users WHERE id = $1",
		},
		{
			name:     "or predicates",
			stmt:     NewDelete().DeleteFrom("t").Where("a").WhereOr("b"),
			expected: "DELETE FROM t WHERE a OR b",
		},
		{
			name:     "table override",
			stmt:     NewDelete().DeleteFrom("a").DeleteFrom("b"),
			expected: "DELETE FROM b",
		},
		{
			name: "postgres",
			stmt: NewDelete().
				Dialect(dialect.Postgres).
				DeleteFrom("orders o").
				Using("users u").
				Where("o.user_id = u.id").
				Where("u.banned").
				Returning("o.id"),
			expected: "DELETE FROM orders o USING users u WHERE o.user_id = u.id AND u.banned RETURNING o.id",
		},
		{
			name: "mysql",
			stmt: NewDelete().
				Dialect(dialect.MySQL).
				DeleteFrom("logs").
				Partition("p0").
				Where("ts < NOW()").
				OrderBy("ts").
				Limit("1000"),
			expected: "DELETE FROM logs PARTITION (p0) WHERE ts < NOW() ORDER BY ts LIMIT 1000",
		},
		{
			name: "sqlite with",
			stmt: NewDelete().
				Dialect(dialect.SQLite).
				With("old", NewSelect().Select("id").From("logs").Where("ts < 0")).
				DeleteFrom("logs").
				Where("id IN (SELECT id FROM old)"),
			expected: "WITH old AS (SELECT id FROM logs WHERE ts < 0) DELETE FROM logs WHERE id IN (SELECT id FROM old)",
		},
		{
			name:     "standard drops dialect clauses",
			stmt:     NewDelete().DeleteFrom("logs").Using("x").Limit("1").Returning("id"),
			expected: "DELETE FROM logs",
		},
		{
			name:     "raw before where",
			stmt:     NewDelete().DeleteFrom("logs").RawBefore(DeleteWhere, "/* purge */").Where("old"),
			expected: "DELETE FROM logs /* purge */ WHERE old",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}
