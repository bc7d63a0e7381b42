package clause_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/stretchr/testify/require"
)

func TestList_Push(t *testing.T) {
	tests := []struct {
		name     string
		values   [][]string
		expected []string
	}{
		{
			name:     "keeps insertion order",
			values:   [][]string{{"b"}, {"a"}, {"c"}},
			expected: []string{"b", "a", "c"},
		},
		{
			name:     "skips duplicates after trimming",
			values:   [][]string{{"id"}, {" id "}, {"name", "id"}},
			expected: []string{"id", "name"},
		},
		{
			name:     "skips empty values",
			values:   [][]string{{""}, {"   "}, {"id"}},
			expected: []string{"id"},
		},
		{
			name:     "nothing pushed",
			values:   nil,
			expected: []string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var l List
			for _, v := range tt.values {
				l = l.Push(v...)
			}

			require.Equal(t, len(tt.expected), l.Len())
			require.Equal(t, tt.expected, append([]string{}, l.Items()...))
		})
	}
}

func TestList_PushDoesNotShareState(t *testing.T) {
	base := NewList("id", "login")
	a := base.Push("name")
	b := base.Push("email")

	require.Equal(t, []string{"id", "login"}, base.Items())
	require.Equal(t, []string{"id", "login", "name"}, a.Items())
	require.Equal(t, []string{"id", "login", "email"}, b.Items())
}

func TestList_Accessors(t *testing.T) {
	l := NewList("a", "b")
	require.False(t, l.Empty())
	require.Equal(t, "b", l.Last())
	require.Equal(t, "a, b", l.Join(", "))

	items := l.Items()
	items[0] = "changed"
	require.Equal(t, "a", l.Items()[0])

	var empty List
	require.True(t, empty.Empty())
	require.Equal(t, "", empty.Last())
	require.Equal(t, "", empty.Join(", "))
}

func TestScalar_Set(t *testing.T) {
	s := NewScalar(" 10 ")
	require.Equal(t, "10", s.Value())

	s = s.Set("20")
	require.Equal(t, "20", s.Value())
	require.False(t, s.Empty())

	s = s.Set("  ")
	require.True(t, s.Empty())
}
