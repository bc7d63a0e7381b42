package plan_test

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	. "github.com/pseudomuto/sqlfluent/pkg/plan"
	"github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
	"gotest.tools/v3/golden"
)

func TestLoad(t *testing.T) {
	tests := []struct {
		name     string
		dialect  dialect.Dialect
		yaml     string
		expected string
	}{
		{
			name: "select",
			yaml: `
kind: select
select: [id, login]
from: users
where:
  - active
  - admin
where_or: banned
order_by: login
limit: 10
raw_after:
  limit: FOR UPDATE
`,
			expected: "SELECT id, login FROM users WHERE active AND admin OR banned ORDER BY login LIMIT 10 FOR UPDATE",
		},
		{
			name: "with binding defaults to select",
			yaml: `
kind: select
with:
  - name: admins
    statement:
      select: id
      from: users
      where: admin
select: "*"
from: admins
`,
			expected: "WITH admins AS (SELECT id FROM users WHERE admin) SELECT * FROM admins",
		},
		{
			name: "union",
			yaml: `
kind: select
select: a
union:
  - select: b
  - kind: select
    select: c
`,
			expected: "((SELECT a) UNION (SELECT b)) UNION (SELECT c)",
		},
		{
			name:    "insert query",
			dialect: dialect.Postgres,
			yaml: `
kind: insert
insert_into: archive (login)
query:
  select: login
  from: users
  where: archived
returning: id
`,
			expected: "INSERT INTO archive (login) SELECT login FROM users WHERE archived RETURNING id",
		},
		{
			name: "update",
			yaml: `
kind: update
update: users
set: [a = 1, b = 2]
where: id = 1
`,
			expected: "UPDATE users SET a = 1, b = 2 WHERE id = 1",
		},
		{
			name: "document dialect",
			yaml: `
kind: delete
dialect: mysql
delete_from: logs
limit: 10
`,
			expected: "DELETE FROM logs LIMIT 10",
		},
		{
			name: "alter table actions keep their order",
			yaml: `
kind: alter_table
alter_table: users
actions:
  - drop: COLUMN legacy
  - add: COLUMN email text
`,
			expected: "ALTER TABLE users DROP COLUMN legacy, ADD COLUMN email text",
		},
		{
			name:    "create index",
			dialect: dialect.Postgres,
			yaml: `
kind: create_index
create_index: docs_idx
unique: true
on: docs
using: gin
column: body
`,
			expected: "CREATE UNIQUE INDEX docs_idx ON docs USING gin (body)",
		},
		{
			name: "drop table",
			yaml: `
kind: drop_table
drop_table_if_exists: [a, b]
cascade: true
`,
			expected: "DROP TABLE IF EXISTS a, b CASCADE",
		},
		{
			name:    "drop index",
			dialect: dialect.Postgres,
			yaml: `
kind: drop_index
drop_index: docs_idx
if_exists: true
concurrently: true
`,
			expected: "DROP INDEX CONCURRENTLY IF EXISTS docs_idx",
		},
		{
			name: "values",
			yaml: `
kind: values
values: ["(1)", "(2)"]
`,
			expected: "VALUES (1), (2)",
		},
		{
			name:    "transaction",
			dialect: dialect.SQLite,
			yaml: `
kind: transaction
begin: IMMEDIATE
commands:
  - kind: delete
    delete_from: sessions
  - savepoint: cleaned
  - rollback: cleaned
  - release_savepoint: cleaned
commit: true
`,
			expected: "BEGIN IMMEDIATE; DELETE FROM sessions; SAVEPOINT cleaned; ROLLBACK TO SAVEPOINT cleaned; " +
				"RELEASE SAVEPOINT cleaned; COMMIT;",
		},
		{
			name: "transaction flags",
			yaml: `
kind: transaction
start_transaction: true
commands:
  - kind: update
    update: t
    set: a = 1
  - rollback: true
`,
			expected: "START TRANSACTION; UPDATE t SET a = 1; ROLLBACK;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			stmts, err := Load(strings.NewReader(tt.yaml), tt.dialect)
			require.NoError(t, err)
			require.Len(t, stmts, 1)
			require.Equal(t, tt.expected, stmts[0].String())
		})
	}
}

func TestLoad_MultipleDocuments(t *testing.T) {
	stmts, err := Load(strings.NewReader("kind: select\nselect: 1\n---\nkind: values\nvalues: (1)\n"), dialect.Standard)
	require.NoError(t, err)
	require.Len(t, stmts, 2)
	require.Equal(t, query.KindSelect, stmts[0].Kind())
	require.Equal(t, query.KindValues, stmts[1].Kind())
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{
			name: "unknown key",
			yaml: "kind: select\nselct: id\n",
			err:  "field selct not found",
		},
		{
			name: "unknown kind",
			yaml: "kind: merge\n",
			err:  "document 1: unknown statement kind: merge",
		},
		{
			name: "missing kind",
			yaml: "select: id\n",
			err:  "document 1: missing statement kind",
		},
		{
			name: "unknown clause",
			yaml: "kind: select\nraw_before:\n  returning: x\n",
			err:  "raw_before: unknown clause: returning",
		},
		{
			name: "unknown dialect",
			yaml: "kind: select\ndialect: oracle\n",
			err:  "unknown dialect: oracle",
		},
		{
			name: "union operand of another kind",
			yaml: "kind: select\nselect: a\nunion:\n  - kind: insert\n",
			err:  "union 1: expected a select statement, got insert",
		},
		{
			name: "ambiguous alter action",
			yaml: "kind: alter_table\nalter_table: t\nactions:\n  - add: a\n    drop: b\n",
			err:  "action 1: exactly one of add, drop, alter or rename must be set",
		},
		{
			name: "invalid list",
			yaml: "kind: select\nselect:\n  a: b\n",
			err:  "expected a string or a list of strings",
		},
		{
			name: "second document",
			yaml: "kind: select\n---\nkind: nope\n",
			err:  "document 2: unknown statement kind: nope",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(strings.NewReader(tt.yaml), dialect.Standard)
			require.ErrorContains(t, err, tt.err)
		})
	}
}

func TestLoadFile(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join("testdata", "missing.yaml"), dialect.Standard)
		require.ErrorContains(t, err, "failed to open file")
	})

	t.Run("golden", func(t *testing.T) {
		stmts, err := LoadFile(filepath.Join("testdata", "shop.yaml"), dialect.Standard)
		require.NoError(t, err)
		require.Len(t, stmts, 4)

		var buf bytes.Buffer
		require.NoError(t, Render(&buf, format.MultiLine, stmts...))
		golden.Assert(t, buf.String(), "shop.sql")
	})
}

func TestRender(t *testing.T) {
	stmts := []query.Statement{
		query.NewSelect().Select("1"),
		query.NewSelect(),
		query.NewTransaction().Begin().Commit().Dialect(dialect.Postgres),
	}

	var buf bytes.Buffer
	require.NoError(t, Render(&buf, format.OneLine, stmts...))
	require.Equal(t, "SELECT 1;\nBEGIN; COMMIT;\n", buf.String())

	buf.Reset()
	require.NoError(t, Render(&buf, format.OneLine))
	require.Empty(t, buf.String())
}
