package query_test

import (
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	. "github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestValues_String(t *testing.T) {
	tests := []struct {
		name     string
		stmt     Values
		expected string
	}{
		{
			name:     "empty",
			stmt:     NewValues(),
			expected: "",
		},
		{
			name:     "rows",
			stmt:     NewValues().Values("(1, 'one')", "(2, 'two')").Values("(1, 'one')"),
			expected: "VALUES (1, 'one'), (2, 'two')",
		},
		{
			name:     "postgres",
			stmt:     NewValues().Dialect(dialect.Postgres).Values("(2)", "(1)").OrderBy("1").Limit("1").Offset("1"),
			expected: "VALUES (2), (1) ORDER BY 1 LIMIT 1 OFFSET 1",
		},
		{
			name:     "mysql",
			stmt:     NewValues().Dialect(dialect.MySQL).Values("ROW(1)").Limit("1").Offset("2"),
			expected: "VALUES ROW(1) LIMIT 1",
		},
		{
			name:     "standard",
			stmt:     NewValues().Values("(1)").OrderBy("1").Limit("1"),
			expected: "VALUES (1)",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}
