package clause_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	"github.com/stretchr/testify/require"
)

type clauseID int

const (
	selectClause clauseID = iota
	whereClause
)

func TestSplices_Inject(t *testing.T) {
	tests := []struct {
		name     string
		splices  Splices[clauseID]
		tail     string
		sql      string
		expected string
	}{
		{
			name:     "no splices",
			tail:     "SELECT id ",
			sql:      "WHERE a = 1 ",
			expected: "SELECT id WHERE a = 1 ",
		},
		{
			name:     "before",
			splices:  Splices[clauseID]{}.Before(whereClause, "/* c */"),
			sql:      "WHERE a=1 ",
			expected: "/* c */ WHERE a=1 ",
		},
		{
			name:     "after",
			splices:  Splices[clauseID]{}.After(whereClause, "X"),
			sql:      "Y ",
			expected: "Y X ",
		},
		{
			name: "multiple entries keep insertion order",
			splices: Splices[clauseID]{}.
				Before(whereClause, "a").
				Before(selectClause, "ignored").
				Before(whereClause, " b ").
				After(whereClause, "c").
				After(whereClause, "d"),
			tail:     "FROM t ",
			sql:      "WHERE x ",
			expected: "FROM t a b WHERE x c d ",
		},
		{
			name:     "splice only clause",
			splices:  Splices[clauseID]{}.After(whereClause, "WHERE raw"),
			tail:     "SELECT 1 ",
			expected: "SELECT 1 WHERE raw ",
		},
		{
			name:     "empty text ignored",
			splices:  Splices[clauseID]{}.Before(whereClause, "  ").After(whereClause, ""),
			sql:      "WHERE x ",
			expected: "WHERE x ",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := tt.splices.Inject(whereClause, tt.tail, tt.sql, format.OneLine)
			require.Equal(t, tt.expected, result)
		})
	}
}

func TestSplices_Has(t *testing.T) {
	s := Splices[clauseID]{}.After(whereClause, "x")
	require.True(t, s.Has(whereClause))
	require.False(t, s.Has(selectClause))
	require.Equal(t, "x", s.AfterText(whereClause, " "))
	require.Equal(t, "", s.BeforeText(whereClause, " "))
}

func TestSplices_DoNotShareState(t *testing.T) {
	base := Splices[clauseID]{}.Before(whereClause, "a")
	left := base.Before(whereClause, "b")
	right := base.Before(whereClause, "c")

	require.Equal(t, "a", base.BeforeText(whereClause, " "))
	require.Equal(t, "a b", left.BeforeText(whereClause, " "))
	require.Equal(t, "a c", right.BeforeText(whereClause, " "))
}
