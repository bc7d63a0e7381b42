package query_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	. "github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestKind_String(t *testing.T) {
	expected := []string{
		"select", "insert", "update", "delete", "create_table", "alter_table", "drop_table",
		"create_index", "drop_index", "values", "transaction",
	}

	var got []string
	for _, k := range Kinds() {
		got = append(got, k.String())
	}

	require.Equal(t, expected, got)
	require.Equal(t, "unknown", Kind(-1).String())
	require.Equal(t, "unknown", Kind(len(expected)).String())
}

func TestStatement_Kind(t *testing.T) {
	stmts := []Statement{
		NewSelect(), NewInsert(), NewUpdate(), NewDelete(), NewCreateTable(), NewAlterTable(),
		NewDropTable(), NewCreateIndex(), NewDropIndex(), NewValues(), NewTransaction(),
	}

	require.Len(t, stmts, len(Kinds()))
	for i, stmt := range stmts {
		require.Equal(t, Kinds()[i], stmt.Kind())
		require.Empty(t, stmt.String())
		require.Empty(t, stmt.Pretty())
	}
}

func TestFprint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fprint(&buf, NewSelect().Select("id").From("users")))
	require.Equal(t, "SELECT id FROM users\n", buf.String())
}

func TestFdebug(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Fdebug(&buf, NewSelect().Select("id").From("users")))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], "----------")
	require.Equal(t, "SELECT id", lines[1])
	require.Equal(t, "FROM users", lines[2])
	require.Contains(t, lines[3], "----------")
}

func TestSequences(t *testing.T) {
	for _, d := range dialect.All() {
		t.Run(d.String(), func(t *testing.T) {
			seqs := Sequences(d)
			require.Len(t, seqs, len(Kinds()))

			for _, k := range Kinds() {
				require.NotEmpty(t, seqs[k], k.String())
			}
		})
	}

	require.Equal(t, []string{"UPDATE", "SET", "WHERE"}, Sequences(dialect.Standard)[KindUpdate])
	require.Equal(t, []string{"DELETE FROM", "PARTITION", "WHERE", "ORDER BY", "LIMIT"}, Sequences(dialect.MySQL)[KindDelete])
	require.NotContains(t, Sequences(dialect.MySQL)[KindSelect], "EXCEPT")
	require.Contains(t, Sequences(dialect.Postgres)[KindSelect], "EXCEPT")
	require.NotContains(t, Sequences(dialect.SQLite)[KindAlterTable], "ALTER")
}

func TestParseKind(t *testing.T) {
	for _, k := range Kinds() {
		got, err := ParseKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, got)
	}

	got, err := ParseKind(" Create_Table ")
	require.NoError(t, err)
	require.Equal(t, KindCreateTable, got)

	_, err = ParseKind("merge")
	require.EqualError(t, err, "unknown statement kind: merge")
}

func TestRawOnEmptyClause(t *testing.T) {
	tests := []struct {
		name     string
		stmt     Statement
		expected string
	}{
		{
			name:     "insert",
			stmt:     NewInsert().InsertInto("t").RawBefore(InsertSelect, "SELECT * FROM s"),
			expected: "INSERT INTO t SELECT * FROM s",
		},
		{
			name:     "update",
			stmt:     NewUpdate().Update("t").Set("a = 1").RawAfter(UpdateWhere, "/* all rows */"),
			expected: "UPDATE t SET a = 1 /* all rows */",
		},
		{
			name:     "delete",
			stmt:     NewDelete().DeleteFrom("t").RawBefore(DeleteWhere, "WHERE CURRENT OF c"),
			expected: "DELETE FROM t WHERE CURRENT OF c",
		},
		{
			name:     "drop index",
			stmt:     NewDropIndex().Dialect(dialect.MySQL).DropIndex("idx").RawAfter(DropIndexOn, "ON users"),
			expected: "DROP INDEX idx ON users",
		},
		{
			name:     "alter table",
			stmt:     NewAlterTable().AlterTable("t").RawAfter(AlterTableRename, "RENAME TO t2"),
			expected: "ALTER TABLE t RENAME TO t2",
		},
		{
			name:     "gated clause",
			stmt:     NewDropIndex().DropIndex("idx").RawAfter(DropIndexOn, "ON users"),
			expected: "DROP INDEX idx",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}
