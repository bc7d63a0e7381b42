package dialect_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

func TestParse(t *testing.T) {
	tests := []struct {
		input    string
		expected Dialect
	}{
		{input: "", expected: Standard},
		{input: "ansi", expected: Standard},
		{input: "Standard", expected: Standard},
		{input: "postgres", expected: Postgres},
		{input: "PostgreSQL", expected: Postgres},
		{input: " pg ", expected: Postgres},
		{input: "sqlite", expected: SQLite},
		{input: "sqlite3", expected: SQLite},
		{input: "MySQL", expected: MySQL},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			d, err := Parse(tt.input)
			require.NoError(t, err)
			require.Equal(t, tt.expected, d)
		})
	}

	t.Run("unknown", func(t *testing.T) {
		_, err := Parse("oracle")
		require.Error(t, err)
		require.Contains(t, err.Error(), "unknown dialect: oracle")
	})
}

func TestDialect_String(t *testing.T) {
	require.Equal(t, "standard", Standard.String())
	require.Equal(t, "postgres", Postgres.String())
	require.Equal(t, "sqlite", SQLite.String())
	require.Equal(t, "mysql", MySQL.String())
	require.Equal(t, "unknown", Dialect(42).String())
	require.Len(t, All(), 4)
}

func TestDialect_Is(t *testing.T) {
	require.True(t, Postgres.Is(Postgres, SQLite))
	require.False(t, MySQL.Is(Postgres, SQLite))
	require.False(t, MySQL.Is())
}

func TestDialect_YAML(t *testing.T) {
	var doc struct {
		Dialect Dialect `yaml:"dialect"`
	}

	require.NoError(t, yaml.Unmarshal([]byte("dialect: postgresql"), &doc))
	require.Equal(t, Postgres, doc.Dialect)

	out, err := yaml.Marshal(doc)
	require.NoError(t, err)
	require.Equal(t, "dialect: postgres\n", string(out))

	err = yaml.Unmarshal([]byte("dialect: oracle"), &doc)
	require.Error(t, err)
}
