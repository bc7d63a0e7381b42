package clause_test

import (
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/stretchr/testify/require"
)

type action string

func TestTagged_Push(t *testing.T) {
	var tagged Tagged[action]
	tagged = tagged.
		Push("ADD", "COLUMN a int").
		Push("DROP", "COLUMN b").
		Push("ADD", "COLUMN c int").
		Push("ADD", " COLUMN a int ").
		Push("DROP", "COLUMN a int").
		Push("ALTER", "")

	require.Equal(t, []Entry[action]{
		{Kind: "ADD", Value: "COLUMN a int"},
		{Kind: "DROP", Value: "COLUMN b"},
		{Kind: "ADD", Value: "COLUMN c int"},
		{Kind: "DROP", Value: "COLUMN a int"},
	}, tagged.Entries())
	require.Equal(t, 4, tagged.Len())
}

func TestTagged_PushDoesNotShareState(t *testing.T) {
	base := Tagged[action]{}.Push("ADD", "a")
	left := base.Push("DROP", "b")
	right := base.Push("RENAME", "c")

	require.Equal(t, 1, base.Len())
	require.Equal(t, action("DROP"), left.Entries()[1].Kind)
	require.Equal(t, action("RENAME"), right.Entries()[1].Kind)
}

func TestConditions(t *testing.T) {
	t.Run("joins with operators", func(t *testing.T) {
		c := Conditions{}.And("a = 1").And("b = 2").Or("c = 3")
		require.Equal(t, "a = 1 AND b = 2 OR c = 3", c.Join(" "))
		require.Equal(t, 3, c.Len())
	})

	t.Run("first operator is dropped", func(t *testing.T) {
		c := Conditions{}.Or("a = 1").And("b = 2")
		require.Equal(t, "a = 1 AND b = 2", c.Join(" "))
	})

	t.Run("unique by predicate", func(t *testing.T) {
		c := Conditions{}.And("a=1").And("a=1").Or(" a=1 ")
		require.Equal(t, "a=1", c.Join(" "))
	})

	t.Run("empty predicates are skipped", func(t *testing.T) {
		c := Conditions{}.And("").Or("  ")
		require.True(t, c.Empty())
	})
}

func TestChildren(t *testing.T) {
	var c Children[int]
	c = c.Push(1).Push(1).Push(2)
	require.Equal(t, []int{1, 1, 2}, c.Items())
	require.Equal(t, 3, c.Len())

	var b Bindings[int]
	b = b.Push(" first ", 1).Push("", 2).Push("second", 3)
	require.Equal(t, []Binding[int]{{Name: "first", Child: 1}, {Name: "second", Child: 3}}, b.Items())
	require.False(t, b.Empty())
}
