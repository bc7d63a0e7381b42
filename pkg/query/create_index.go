package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// CreateIndexClause identifies a clause of a CREATE INDEX statement.
type CreateIndexClause int

const (
	CreateIndexCreateIndex CreateIndexClause = iota
	CreateIndexOn
	CreateIndexUsing
	CreateIndexColumn
	CreateIndexInclude
	CreateIndexWhere
)

var createIndexClauseNames = []string{"CREATE INDEX", "ON", "USING", "COLUMN", "INCLUDE", "WHERE"}

func (c CreateIndexClause) String() string { return clauseName(createIndexClauseNames, int(c)) }

func (CreateIndexClause) clauses() []CreateIndexClause {
	return enumerate[CreateIndexClause](len(createIndexClauseNames))
}

var createIndexSequences = map[dialect.Dialect][]CreateIndexClause{
	dialect.Standard: {CreateIndexCreateIndex, CreateIndexOn, CreateIndexColumn},
	dialect.Postgres: {
		CreateIndexCreateIndex, CreateIndexOn, CreateIndexUsing, CreateIndexColumn, CreateIndexInclude, CreateIndexWhere,
	},
	dialect.SQLite: {CreateIndexCreateIndex, CreateIndexOn, CreateIndexColumn, CreateIndexWhere},
	dialect.MySQL:  {CreateIndexCreateIndex, CreateIndexOn, CreateIndexColumn, CreateIndexUsing},
}

// CreateIndex builds a CREATE INDEX statement.
//
// Example:
//
//	query.NewCreateIndex().
//		Dialect(dialect.Postgres).
//		Unique().
//		CreateIndex("users_login_idx").
//		On("users").
//		Column("login").
//		Where("deleted_at IS NULL").
//		String()
//	// CREATE UNIQUE INDEX users_login_idx ON users (login) WHERE deleted_at IS NULL
type CreateIndex struct {
	dialect      dialect.Dialect
	raw          clause.List
	splices      clause.Splices[CreateIndexClause]
	unique       bool
	concurrently bool
	ifNotExists  bool
	name         clause.Scalar
	only         bool
	on           clause.Scalar
	using        clause.Scalar
	columns      clause.List
	include      clause.List
	where        clause.Conditions
}

// NewCreateIndex creates an empty CREATE INDEX statement for the Standard dialect.
func NewCreateIndex() CreateIndex {
	return CreateIndex{}
}

// Dialect selects the dialect the statement is rendered for.
func (i CreateIndex) Dialect(d dialect.Dialect) CreateIndex {
	i.dialect = d
	return i
}

// Raw adds raw SQL rendered ahead of every clause.
func (i CreateIndex) Raw(sql string) CreateIndex {
	i.raw = i.raw.Push(sql)
	return i
}

// RawBefore adds raw SQL rendered immediately before clause.
func (i CreateIndex) RawBefore(c CreateIndexClause, sql string) CreateIndex {
	i.splices = i.splices.Before(c, sql)
	return i
}

// RawAfter adds raw SQL rendered immediately after clause.
func (i CreateIndex) RawAfter(c CreateIndexClause, sql string) CreateIndex {
	i.splices = i.splices.After(c, sql)
	return i
}

// CreateIndex sets the index name.
func (i CreateIndex) CreateIndex(name string) CreateIndex {
	i.name = i.name.Set(name)
	return i
}

// Unique renders CREATE UNIQUE INDEX.
func (i CreateIndex) Unique() CreateIndex {
	i.unique = true
	return i
}

// Concurrently renders CONCURRENTLY after INDEX (Postgres).
func (i CreateIndex) Concurrently() CreateIndex {
	i.concurrently = true
	return i
}

// IfNotExists renders IF NOT EXISTS ahead of the index name (Postgres, SQLite).
func (i CreateIndex) IfNotExists() CreateIndex {
	i.ifNotExists = true
	return i
}

// On sets the indexed table.
func (i CreateIndex) On(table string) CreateIndex {
	i.on = i.on.Set(table)
	return i
}

// Only renders ON ONLY, skipping inheriting tables (Postgres).
func (i CreateIndex) Only() CreateIndex {
	i.only = true
	return i
}

// Using sets the index method, e.g. "gin" (Postgres) or "BTREE" (MySQL).
func (i CreateIndex) Using(method string) CreateIndex {
	i.using = i.using.Set(method)
	return i
}

// Column adds indexed columns or expressions.
func (i CreateIndex) Column(columns ...string) CreateIndex {
	i.columns = i.columns.Push(columns...)
	return i
}

// Include adds non-key columns to the INCLUDE clause (Postgres).
func (i CreateIndex) Include(columns ...string) CreateIndex {
	i.include = i.include.Push(columns...)
	return i
}

// Where adds a predicate of a partial index (Postgres, SQLite).
func (i CreateIndex) Where(predicate string) CreateIndex {
	i.where = i.where.And(predicate)
	return i
}

// Kind returns KindCreateIndex.
func (i CreateIndex) Kind() Kind { return KindCreateIndex }

// String renders the statement on one line.
func (i CreateIndex) String() string { return i.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (i CreateIndex) Pretty() string { return i.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (i CreateIndex) Format(st fmt.State, verb rune) { formatStatement(i, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (i CreateIndex) Print() CreateIndex {
	printStatement(i)
	return i
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (i CreateIndex) Debug() CreateIndex {
	debugStatement(i)
	return i
}

// Render renders the statement with f.
func (i CreateIndex) Render(f format.Formatter) string {
	return assemble(i.raw, sequenceFor(createIndexSequences, i.dialect), f, func(c CreateIndexClause, query string) string {
		return i.splices.Inject(c, query, i.clause(c, f), f)
	})
}

func (i CreateIndex) clause(c CreateIndexClause, f format.Formatter) string {
	switch c {
	case CreateIndexCreateIndex:
		return i.header(f)
	case CreateIndexOn:
		if i.on.Empty() {
			return ""
		}

		keyword := "ON"
		if i.only && i.dialect == dialect.Postgres {
			keyword += f.Space + "ONLY"
		}

		return keyword + f.Space + i.on.Value() + f.End()
	case CreateIndexUsing:
		return scalar("USING", i.using, f)
	case CreateIndexColumn:
		return group("", i.columns, f)
	case CreateIndexInclude:
		return group("INCLUDE", i.include, f)
	case CreateIndexWhere:
		return predicates("WHERE", i.where, f)
	default:
		return ""
	}
}

// header renders `CREATE [UNIQUE] INDEX [CONCURRENTLY] [IF NOT EXISTS] name`. Postgres
// allows the name to be omitted, so the header is also rendered when only the table is
// known.
func (i CreateIndex) header(f format.Formatter) string {
	if i.name.Empty() && i.on.Empty() {
		return ""
	}

	parts := []string{"CREATE"}
	if i.unique {
		parts = append(parts, "UNIQUE")
	}

	parts = append(parts, "INDEX")
	if i.concurrently && i.dialect == dialect.Postgres {
		parts = append(parts, "CONCURRENTLY")
	}

	if i.ifNotExists && i.dialect.Is(dialect.Postgres, dialect.SQLite) {
		parts = append(parts, "IF NOT EXISTS")
	}

	parts = append(parts, i.name.Value())
	return words(f.Space, parts...) + f.End()
}
