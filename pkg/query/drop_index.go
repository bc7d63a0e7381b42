package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// DropIndexClause identifies a clause of a DROP INDEX statement.
type DropIndexClause int

const (
	DropIndexDropIndex DropIndexClause = iota
	DropIndexOn
)

var dropIndexClauseNames = []string{"DROP INDEX", "ON"}

func (c DropIndexClause) String() string { return clauseName(dropIndexClauseNames, int(c)) }

func (DropIndexClause) clauses() []DropIndexClause {
	return enumerate[DropIndexClause](len(dropIndexClauseNames))
}

var dropIndexSequences = map[dialect.Dialect][]DropIndexClause{
	dialect.Standard: {DropIndexDropIndex},
	dialect.Postgres: {DropIndexDropIndex},
	dialect.SQLite:   {DropIndexDropIndex},
	dialect.MySQL:    {DropIndexDropIndex, DropIndexOn},
}

// DropIndex builds a DROP INDEX statement. SQLite and MySQL drop a single index per
// statement, so only the last name added is rendered for those dialects.
//
// Example:
//
//	query.NewDropIndex().Dialect(dialect.MySQL).DropIndex("users_login_idx").On("users").String()
//	// DROP INDEX users_login_idx ON users
type DropIndex struct {
	dialect      dialect.Dialect
	raw          clause.List
	splices      clause.Splices[DropIndexClause]
	ifExists     bool
	concurrently bool
	names        clause.List
	on           clause.Scalar
}

// NewDropIndex creates an empty DROP INDEX statement for the Standard dialect.
func NewDropIndex() DropIndex {
	return DropIndex{}
}

// Dialect selects the dialect the statement is rendered for.
func (i DropIndex) Dialect(d dialect.Dialect) DropIndex {
	i.dialect = d
	return i
}

// Raw adds raw SQL rendered ahead of every clause.
func (i DropIndex) Raw(sql string) DropIndex {
	i.raw = i.raw.Push(sql)
	return i
}

// RawBefore adds raw SQL rendered immediately before clause.
func (i DropIndex) RawBefore(c DropIndexClause, sql string) DropIndex {
	i.splices = i.splices.Before(c, sql)
	return i
}

// RawAfter adds raw SQL rendered immediately after clause.
func (i DropIndex) RawAfter(c DropIndexClause, sql string) DropIndex {
	i.splices = i.splices.After(c, sql)
	return i
}

// DropIndex adds indexes to drop.
func (i DropIndex) DropIndex(names ...string) DropIndex {
	i.names = i.names.Push(names...)
	return i
}

// IfExists renders IF EXISTS ahead of the index names (not MySQL).
func (i DropIndex) IfExists() DropIndex {
	i.ifExists = true
	return i
}

// Concurrently renders CONCURRENTLY after INDEX (Postgres).
func (i DropIndex) Concurrently() DropIndex {
	i.concurrently = true
	return i
}

// On sets the table owning the index (MySQL).
func (i DropIndex) On(table string) DropIndex {
	i.on = i.on.Set(table)
	return i
}

// Kind returns KindDropIndex.
func (i DropIndex) Kind() Kind { return KindDropIndex }

// String renders the statement on one line.
func (i DropIndex) String() string { return i.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (i DropIndex) Pretty() string { return i.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (i DropIndex) Format(st fmt.State, verb rune) { formatStatement(i, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (i DropIndex) Print() DropIndex {
	printStatement(i)
	return i
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (i DropIndex) Debug() DropIndex {
	debugStatement(i)
	return i
}

// Render renders the statement with f.
func (i DropIndex) Render(f format.Formatter) string {
	return assemble(i.raw, sequenceFor(dropIndexSequences, i.dialect), f, func(c DropIndexClause, query string) string {
		return i.splices.Inject(c, query, i.clause(c, f), f)
	})
}

func (i DropIndex) clause(c DropIndexClause, f format.Formatter) string {
	switch c {
	case DropIndexDropIndex:
		if i.names.Empty() {
			return ""
		}

		parts := []string{"DROP", "INDEX"}
		if i.concurrently && i.dialect == dialect.Postgres {
			parts = append(parts, "CONCURRENTLY")
		}

		if i.ifExists && i.dialect != dialect.MySQL {
			parts = append(parts, "IF EXISTS")
		}

		if i.dialect.Is(dialect.SQLite, dialect.MySQL) {
			parts = append(parts, i.names.Last())
		} else {
			parts = append(parts, i.names.Join(f.Comma))
		}

		return words(f.Space, parts...) + f.End()
	case DropIndexOn:
		return scalar("ON", i.on, f)
	default:
		return ""
	}
}
