package format_test

import (
	"bytes"
	"strings"
	"testing"

	. "github.com/pseudomuto/sqlfluent/pkg/format"
	"github.com/stretchr/testify/require"
)

func TestNew(t *testing.T) {
	t.Run("one line", func(t *testing.T) {
		require.Equal(t, OneLine, New(Defaults))
		require.False(t, New(Defaults).Pretty())
	})

	t.Run("pretty", func(t *testing.T) {
		f := New(Options{Pretty: true, IndentSize: 4})
		require.True(t, f.Pretty())
		require.Equal(t, "    ", f.Indent)
		require.Equal(t, "\n", f.LineBreak)
	})

	t.Run("pretty with invalid indent", func(t *testing.T) {
		f := New(Options{Pretty: true})
		require.Equal(t, MultiLine, f)
	})
}

func TestFormatter_Tokens(t *testing.T) {
	tests := []struct {
		name   string
		f      Formatter
		brk    string
		end    string
		depth  int
		prefix string
	}{
		{name: "one line", f: OneLine, brk: "", end: " "},
		{name: "one line nested", f: OneLine.Nested(), brk: "", end: " ", depth: 1},
		{name: "multi line", f: MultiLine, brk: "\n", end: "\n"},
		{name: "multi line nested", f: MultiLine.Nested(), brk: "\n  ", end: "\n  ", depth: 1},
		{name: "multi line twice nested", f: MultiLine.Nested().Nested(), brk: "\n    ", end: "\n    ", depth: 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.brk, tt.f.Break())
			require.Equal(t, tt.end, tt.f.End())
			require.Equal(t, tt.depth, tt.f.Depth())
		})
	}
}

func TestFormatter_Block(t *testing.T) {
	items := []string{"id int", "name text"}

	require.Equal(t, "(id int, name text)", OneLine.Block(items))
	require.Equal(t, "(\n  id int,\n  name text\n)", MultiLine.Block(items))
	require.Equal(t, "(\n    id int,\n    name text\n  )", MultiLine.Nested().Block(items))
}

func TestFormatter_Lines(t *testing.T) {
	items := []string{"ADD a", "DROP b"}

	require.Equal(t, "ADD a, DROP b", OneLine.Lines(items))
	require.Equal(t, "ADD a,\n  DROP b", MultiLine.Lines(items))
}

func TestFormatter_Reindent(t *testing.T) {
	require.Equal(t, "SELECT a FROM b", OneLine.Reindent("SELECT a FROM b"))
	require.Equal(t, "SELECT a\n  FROM b", MultiLine.Reindent("SELECT a\nFROM b"))
}

func TestBanner(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Banner(&buf, "SELECT id\nFROM users"))

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	require.Len(t, lines, 4)
	require.Contains(t, lines[0], strings.Repeat("-", 60))
	require.Equal(t, "SELECT id", lines[1])
	require.Equal(t, "FROM users", lines[2])
	require.Contains(t, lines[3], strings.Repeat("-", 60))
}
