package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// DropTableClause identifies a clause of a DROP TABLE statement.
type DropTableClause int

const (
	DropTableDropTable DropTableClause = iota
	DropTableBehavior
)

var dropTableClauseNames = []string{"DROP TABLE", "BEHAVIOR"}

func (c DropTableClause) String() string { return clauseName(dropTableClauseNames, int(c)) }

func (DropTableClause) clauses() []DropTableClause {
	return enumerate[DropTableClause](len(dropTableClauseNames))
}

var dropTableSequences = map[dialect.Dialect][]DropTableClause{
	dialect.Standard: {DropTableDropTable, DropTableBehavior},
	dialect.Postgres: {DropTableDropTable, DropTableBehavior},
	dialect.SQLite:   {DropTableDropTable},
	dialect.MySQL:    {DropTableDropTable, DropTableBehavior},
}

// DropTable builds a DROP TABLE statement. SQLite drops a single table per statement,
// so only the last table added is rendered for that dialect.
//
// Example:
//
//	query.NewDropTable().DropTableIfExists("users", "orders").Cascade().String()
//	// DROP TABLE IF EXISTS users, orders CASCADE
type DropTable struct {
	dialect  dialect.Dialect
	raw      clause.List
	splices  clause.Splices[DropTableClause]
	ifExists bool
	tables   clause.List
	behavior clause.Scalar
}

// NewDropTable creates an empty DROP TABLE statement for the Standard dialect.
func NewDropTable() DropTable {
	return DropTable{}
}

// Dialect selects the dialect the statement is rendered for.
func (t DropTable) Dialect(d dialect.Dialect) DropTable {
	t.dialect = d
	return t
}

// Raw adds raw SQL rendered ahead of every clause.
func (t DropTable) Raw(sql string) DropTable {
	t.raw = t.raw.Push(sql)
	return t
}

// RawBefore adds raw SQL rendered immediately before clause.
func (t DropTable) RawBefore(c DropTableClause, sql string) DropTable {
	t.splices = t.splices.Before(c, sql)
	return t
}

// RawAfter adds raw SQL rendered immediately after clause.
func (t DropTable) RawAfter(c DropTableClause, sql string) DropTable {
	t.splices = t.splices.After(c, sql)
	return t
}

// DropTable adds tables to drop.
func (t DropTable) DropTable(tables ...string) DropTable {
	t.tables = t.tables.Push(tables...)
	return t
}

// DropTableIfExists adds tables to drop and renders DROP TABLE IF EXISTS.
func (t DropTable) DropTableIfExists(tables ...string) DropTable {
	t.ifExists = true
	return t.DropTable(tables...)
}

// Cascade renders CASCADE after the table list (not SQLite).
func (t DropTable) Cascade() DropTable {
	t.behavior = t.behavior.Set("CASCADE")
	return t
}

// Restrict renders RESTRICT after the table list (not SQLite).
func (t DropTable) Restrict() DropTable {
	t.behavior = t.behavior.Set("RESTRICT")
	return t
}

// Kind returns KindDropTable.
func (t DropTable) Kind() Kind { return KindDropTable }

// String renders the statement on one line.
func (t DropTable) String() string { return t.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (t DropTable) Pretty() string { return t.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (t DropTable) Format(st fmt.State, verb rune) { formatStatement(t, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (t DropTable) Print() DropTable {
	printStatement(t)
	return t
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (t DropTable) Debug() DropTable {
	debugStatement(t)
	return t
}

// Render renders the statement with f.
func (t DropTable) Render(f format.Formatter) string {
	return assemble(t.raw, sequenceFor(dropTableSequences, t.dialect), f, func(c DropTableClause, query string) string {
		return t.splices.Inject(c, query, t.clause(c, f), f)
	})
}

func (t DropTable) clause(c DropTableClause, f format.Formatter) string {
	switch c {
	case DropTableDropTable:
		if t.tables.Empty() {
			return ""
		}

		keyword := "DROP TABLE"
		if t.ifExists {
			keyword += f.Space + "IF EXISTS"
		}

		tables := t.tables.Join(f.Comma)
		if t.dialect == dialect.SQLite {
			tables = t.tables.Last()
		}

		return keyword + f.Space + tables + f.End()
	case DropTableBehavior:
		return flag(t.behavior.Value(), !t.behavior.Empty(), f)
	default:
		return ""
	}
}
