package query_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/query"
	"github.com/stretchr/testify/require"
)

func TestParseClause(t *testing.T) {
	tests := []struct {
		name     string
		expected SelectClause
	}{
		{name: "WHERE", expected: SelectWhere},
		{name: " where ", expected: SelectWhere},
		{name: "order_by", expected: SelectOrderBy},
		{name: "Group  By", expected: SelectGroupBy},
		{name: "union", expected: SelectUnion},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := ParseClause[SelectClause](tt.name)
			require.NoError(t, err)
			require.Equal(t, tt.expected, c)
		})
	}

	t.Run("other statement kinds", func(t *testing.T) {
		ins, err := ParseClause[InsertClause]("on_duplicate_key_update")
		require.NoError(t, err)
		require.Equal(t, InsertOnDuplicateKeyUpdate, ins)

		tx, err := ParseClause[TransactionClause]("start transaction")
		require.NoError(t, err)
		require.Equal(t, TransactionStartTransaction, tx)

		ct, err := ParseClause[CreateTableClause]("primary_key")
		require.NoError(t, err)
		require.Equal(t, CreateTablePrimaryKey, ct)
	})

	t.Run("unknown clause", func(t *testing.T) {
		_, err := ParseClause[SelectClause]("returning")
		require.EqualError(t, err, "unknown clause: returning")
	})
}

func TestClause_String(t *testing.T) {
	require.Equal(t, "GROUP BY", SelectGroupBy.String())
	require.Equal(t, "ON CONFLICT", InsertOnConflict.String())
	require.Equal(t, "DELETE FROM", DeleteDeleteFrom.String())
	require.Equal(t, "UNKNOWN", SelectClause(99).String())
}
