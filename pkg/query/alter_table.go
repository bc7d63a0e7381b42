package query

import (
	"fmt"
	"slices"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// AlterTableClause identifies a clause of an ALTER TABLE statement. The action clauses
// (ADD, DROP, ALTER, RENAME) are rendered in call order rather than sequence order.
type AlterTableClause int

const (
	AlterTableAlterTable AlterTableClause = iota
	AlterTableAdd
	AlterTableDrop
	AlterTableAlter
	AlterTableRename
)

var alterTableClauseNames = []string{"ALTER TABLE", "ADD", "DROP", "ALTER", "RENAME"}

func (c AlterTableClause) String() string { return clauseName(alterTableClauseNames, int(c)) }

func (AlterTableClause) clauses() []AlterTableClause {
	return enumerate[AlterTableClause](len(alterTableClauseNames))
}

var alterTableSequences = map[dialect.Dialect][]AlterTableClause{
	dialect.Standard: {AlterTableAlterTable, AlterTableAdd, AlterTableDrop, AlterTableAlter, AlterTableRename},
	dialect.Postgres: {AlterTableAlterTable, AlterTableAdd, AlterTableDrop, AlterTableAlter, AlterTableRename},
	dialect.SQLite:   {AlterTableAlterTable, AlterTableAdd, AlterTableDrop, AlterTableRename},
	dialect.MySQL:    {AlterTableAlterTable, AlterTableAdd, AlterTableDrop, AlterTableAlter, AlterTableRename},
}

// AlterTable builds an ALTER TABLE statement.
//
// Example:
//
//	query.NewAlterTable().
//		AlterTable("users").
//		Add("COLUMN email text").
//		Drop("COLUMN legacy").
//		String()
//	// ALTER TABLE users ADD COLUMN email text, DROP COLUMN legacy
type AlterTable struct {
	dialect dialect.Dialect
	raw     clause.List
	splices clause.Splices[AlterTableClause]
	table   clause.Scalar
	actions clause.Tagged[AlterTableClause]
}

// NewAlterTable creates an empty ALTER TABLE statement for the Standard dialect.
func NewAlterTable() AlterTable {
	return AlterTable{}
}

// Dialect selects the dialect the statement is rendered for.
func (a AlterTable) Dialect(d dialect.Dialect) AlterTable {
	a.dialect = d
	return a
}

// Raw adds raw SQL rendered ahead of every clause.
func (a AlterTable) Raw(sql string) AlterTable {
	a.raw = a.raw.Push(sql)
	return a
}

// RawBefore adds raw SQL rendered immediately before clause. For actions the text is
// placed before the first action of that kind.
func (a AlterTable) RawBefore(c AlterTableClause, sql string) AlterTable {
	a.splices = a.splices.Before(c, sql)
	return a
}

// RawAfter adds raw SQL rendered immediately after clause. For actions the text is
// placed after the last action of that kind.
func (a AlterTable) RawAfter(c AlterTableClause, sql string) AlterTable {
	a.splices = a.splices.After(c, sql)
	return a
}

// AlterTable sets the altered table.
func (a AlterTable) AlterTable(table string) AlterTable {
	a.table = a.table.Set(table)
	return a
}

// Add adds an ADD action, e.g. "COLUMN email text".
func (a AlterTable) Add(definition string) AlterTable {
	return a.action(AlterTableAdd, definition)
}

// Drop adds a DROP action, e.g. "COLUMN legacy".
func (a AlterTable) Drop(definition string) AlterTable {
	return a.action(AlterTableDrop, definition)
}

// Alter adds an ALTER action, e.g. "COLUMN login SET NOT NULL" (not SQLite).
func (a AlterTable) Alter(definition string) AlterTable {
	return a.action(AlterTableAlter, definition)
}

// Rename adds a RENAME action, e.g. "COLUMN login TO username".
func (a AlterTable) Rename(definition string) AlterTable {
	return a.action(AlterTableRename, definition)
}

func (a AlterTable) action(c AlterTableClause, definition string) AlterTable {
	a.actions = a.actions.Push(c, definition)
	return a
}

// Kind returns KindAlterTable.
func (a AlterTable) Kind() Kind { return KindAlterTable }

// String renders the statement on one line.
func (a AlterTable) String() string { return a.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (a AlterTable) Pretty() string { return a.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (a AlterTable) Format(st fmt.State, verb rune) { formatStatement(a, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (a AlterTable) Print() AlterTable {
	printStatement(a)
	return a
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (a AlterTable) Debug() AlterTable {
	debugStatement(a)
	return a
}

// Render renders the statement with f. Actions are comma separated in call order; in
// multi-line mode each action is placed on its own indented line.
//
// Raw text of an action clause is rendered once: the before text ahead of the first action
// of that kind and the after text behind the last one. Raw text of an action clause with no
// actions is appended to the action list on its own.
func (a AlterTable) Render(f format.Formatter) string {
	sequence := sequenceFor(alterTableSequences, a.dialect)

	query := assemble(a.raw, sequence[:1], f, func(c AlterTableClause, query string) string {
		return a.splices.Inject(c, query, scalar("ALTER TABLE", a.table, f), f)
	})

	var entries []clause.Entry[AlterTableClause]
	for _, e := range a.actions.Entries() {
		if slices.Contains(sequence[1:], e.Kind) {
			entries = append(entries, e)
		}
	}

	first := make(map[AlterTableClause]int)
	last := make(map[AlterTableClause]int)
	for i, e := range entries {
		if _, ok := first[e.Kind]; !ok {
			first[e.Kind] = i
		}

		last[e.Kind] = i
	}

	actions := make([]string, 0, len(entries))
	for i, e := range entries {
		var before, after string
		if first[e.Kind] == i {
			before = a.splices.BeforeText(e.Kind, f.Space)
		}

		if last[e.Kind] == i {
			after = a.splices.AfterText(e.Kind, f.Space)
		}

		actions = append(actions, words(f.Space, before, e.Kind.String()+f.Space+e.Value, after))
	}

	for _, c := range sequence[1:] {
		if _, ok := first[c]; ok {
			continue
		}

		if text := words(f.Space, a.splices.BeforeText(c, f.Space), a.splices.AfterText(c, f.Space)); text != "" {
			actions = append(actions, text)
		}
	}

	if len(actions) == 0 {
		return query
	}

	if query == "" {
		return f.Lines(actions)
	}

	if f.Pretty() {
		return query + f.Nested().Break() + f.Lines(actions)
	}

	return query + f.Space + f.Lines(actions)
}
