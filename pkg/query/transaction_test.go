package query_test

import (
	"testing"

	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	. "github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestTransaction_String(t *testing.T) {
	debit := NewUpdate().Update("accounts").Set("balance = balance - 10").Where("id = 1")
	credit := NewUpdate().Update("accounts").Set("balance = balance + 10").Where("id = 2")

	tests := []struct {
		name     string
		stmt     Transaction
		expected string
	}{
		{
			name:     "empty",
			stmt:     NewTransaction(),
			expected: "",
		},
		{
			name:     "standard",
			stmt:     NewTransaction().StartTransaction().Command(debit).Command(credit).Commit(),
			expected: "START TRANSACTION; " + debit.String() + "; " + credit.String() + "; COMMIT;",
		},
		{
			name:     "commands are not deduplicated",
			stmt:     NewTransaction().Command(debit).Command(debit),
			expected: debit.String() + "; " + debit.String() + ";",
		},
		{
			name: "postgres savepoints",
			stmt: NewTransaction().
				Dialect(dialect.Postgres).
				Begin("ISOLATION LEVEL SERIALIZABLE").
				Command(NewInsert().InsertInto("t").Values("(1)")).
				Savepoint("sp1").
				Command(NewDelete().DeleteFrom("t")).
				Rollback("sp1").
				ReleaseSavepoint("sp1").
				Commit(),
			expected: "BEGIN ISOLATION LEVEL SERIALIZABLE; INSERT INTO t VALUES (1); SAVEPOINT sp1; DELETE FROM t; " +
				"ROLLBACK TO SAVEPOINT sp1; RELEASE SAVEPOINT sp1; COMMIT;",
		},
		{
			name: "sqlite",
			stmt: NewTransaction().
				Dialect(dialect.SQLite).
				Begin("IMMEDIATE").
				StartTransaction().
				SetTransaction("READ ONLY").
				Command(debit).
				End(),
			expected: "BEGIN IMMEDIATE; " + debit.String() + "; END;",
		},
		{
			name: "mysql",
			stmt: NewTransaction().
				Dialect(dialect.MySQL).
				StartTransaction("READ WRITE").
				SetTransaction("ISOLATION LEVEL READ COMMITTED").
				Command(debit).
				Commit(),
			expected: "SET TRANSACTION ISOLATION LEVEL READ COMMITTED; START TRANSACTION READ WRITE; " + debit.String() + "; COMMIT;",
		},
		{
			name: "empty commands are skipped",
			stmt: NewTransaction().
				StartTransaction().
				Command(NewSelect()).
				Command(nil).
				Savepoint(" ").
				Commit(),
			expected: "START TRANSACTION; COMMIT;",
		},
		{
			name:     "rollback",
			stmt:     NewTransaction().StartTransaction().Command(debit).Rollback(),
			expected: "START TRANSACTION; " + debit.String() + "; ROLLBACK;",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.expected, tt.stmt.String())
		})
	}
}

func TestTransaction_Pretty(t *testing.T) {
	stmt := NewTransaction().StartTransaction().Command(NewUpdate().Update("t").Set("a = 1")).Commit()
	require.Equal(t, "START TRANSACTION;\nUPDATE t\nSET a = 1;\nCOMMIT;", stmt.Pretty())
}
