package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// InsertClause identifies a clause of an INSERT statement.
type InsertClause int

const (
	InsertWith InsertClause = iota
	InsertInsertInto
	InsertPartition
	InsertColumn
	InsertOverriding
	InsertDefaultValues
	InsertValues
	InsertSet
	InsertSelect
	InsertOnConflict
	InsertOnDuplicateKeyUpdate
	InsertReturning
)

var insertClauseNames = []string{
	"WITH", "INSERT INTO", "PARTITION", "COLUMN", "OVERRIDING", "DEFAULT VALUES", "VALUES", "SET",
	"SELECT", "ON CONFLICT", "ON DUPLICATE KEY UPDATE", "RETURNING",
}

func (c InsertClause) String() string { return clauseName(insertClauseNames, int(c)) }

func (InsertClause) clauses() []InsertClause {
	return enumerate[InsertClause](len(insertClauseNames))
}

var insertSequences = map[dialect.Dialect][]InsertClause{
	dialect.Standard: {
		InsertWith, InsertInsertInto, InsertColumn, InsertDefaultValues, InsertValues, InsertSelect,
	},
	dialect.Postgres: {
		InsertWith, InsertInsertInto, InsertColumn, InsertOverriding, InsertDefaultValues, InsertValues,
		InsertSelect, InsertOnConflict, InsertReturning,
	},
	dialect.SQLite: {
		InsertWith, InsertInsertInto, InsertColumn, InsertDefaultValues, InsertValues, InsertSelect,
		InsertOnConflict, InsertReturning,
	},
	dialect.MySQL: {
		InsertInsertInto, InsertPartition, InsertColumn, InsertValues, InsertSet, InsertSelect,
		InsertOnDuplicateKeyUpdate,
	},
}

// Insert builds an INSERT statement.
//
// Example:
//
//	query.NewInsert().
//		InsertInto("users (login, name)").
//		Values("('foo', 'Foo')").
//		Values("('bar', 'Bar')").
//		String()
//	// INSERT INTO users (login, name) VALUES ('foo', 'Foo'), ('bar', 'Bar')
type Insert struct {
	dialect              dialect.Dialect
	raw                  clause.List
	splices              clause.Splices[InsertClause]
	with                 clause.Bindings[Statement]
	intoKeyword          string
	into                 clause.Scalar
	partition            clause.List
	columns              clause.List
	overriding           clause.Scalar
	defaultValues        bool
	values               clause.List
	set                  clause.List
	selectStmt           *Select
	onConflict           clause.Scalar
	onDuplicateKeyUpdate clause.List
	returning            clause.List
}

// NewInsert creates an empty INSERT statement for the Standard dialect.
func NewInsert() Insert {
	return Insert{}
}

// Dialect selects the dialect the statement is rendered for.
func (i Insert) Dialect(d dialect.Dialect) Insert {
	i.dialect = d
	return i
}

// Raw adds raw SQL rendered ahead of every clause.
func (i Insert) Raw(sql string) Insert {
	i.raw = i.raw.Push(sql)
	return i
}

// RawBefore adds raw SQL rendered immediately before clause.
func (i Insert) RawBefore(c InsertClause, sql string) Insert {
	i.splices = i.splices.Before(c, sql)
	return i
}

// RawAfter adds raw SQL rendered immediately after clause.
func (i Insert) RawAfter(c InsertClause, sql string) Insert {
	i.splices = i.splices.After(c, sql)
	return i
}

// With binds the result of stmt to name (Postgres, SQLite).
func (i Insert) With(name string, stmt Statement) Insert {
	i.with = i.with.Push(name, stmt)
	return i
}

// InsertInto sets the target table, optionally followed by a column list:
// "users (login, name)". It replaces InsertOr and ReplaceInto.
func (i Insert) InsertInto(table string) Insert {
	return i.target("INSERT INTO", table)
}

// InsertOr sets an INSERT OR target (SQLite), e.g. "REPLACE INTO users (login)".
func (i Insert) InsertOr(target string) Insert {
	return i.target("INSERT OR", target)
}

// ReplaceInto sets a REPLACE INTO target (SQLite, MySQL).
func (i Insert) ReplaceInto(table string) Insert {
	return i.target("REPLACE INTO", table)
}

func (i Insert) target(keyword, value string) Insert {
	i.into = i.into.Set(value)
	i.intoKeyword = keyword
	return i
}

// Partition adds partition names (MySQL).
func (i Insert) Partition(names ...string) Insert {
	i.partition = i.partition.Push(names...)
	return i
}

// Column adds names to the column list rendered after the target table.
func (i Insert) Column(columns ...string) Insert {
	i.columns = i.columns.Push(columns...)
	return i
}

// Overriding sets the OVERRIDING clause (Postgres), e.g. "SYSTEM VALUE".
func (i Insert) Overriding(option string) Insert {
	i.overriding = i.overriding.Set(option)
	return i
}

// DefaultValues renders DEFAULT VALUES (Standard, Postgres, SQLite).
func (i Insert) DefaultValues() Insert {
	i.defaultValues = true
	return i
}

// Values adds rows to the VALUES clause, e.g. "('foo', 'Foo')".
func (i Insert) Values(rows ...string) Insert {
	i.values = i.values.Push(rows...)
	return i
}

// Set adds assignments to the SET clause (MySQL), e.g. "login = 'foo'".
func (i Insert) Set(assignments ...string) Insert {
	i.set = i.set.Push(assignments...)
	return i
}

// Select sets the query providing the inserted rows. The last call wins.
//
// Example:
//
//	archived := query.NewSelect().Select("login").From("users").Where("archived")
//	query.NewInsert().InsertInto("archive (login)").Select(archived).String()
//	// INSERT INTO archive (login) SELECT login FROM users WHERE archived
func (i Insert) Select(stmt Select) Insert {
	i.selectStmt = &stmt
	return i
}

// OnConflict sets the ON CONFLICT clause (Postgres, SQLite), e.g. "(login) DO NOTHING".
func (i Insert) OnConflict(action string) Insert {
	i.onConflict = i.onConflict.Set(action)
	return i
}

// OnDuplicateKeyUpdate adds assignments to the ON DUPLICATE KEY UPDATE clause (MySQL).
func (i Insert) OnDuplicateKeyUpdate(assignments ...string) Insert {
	i.onDuplicateKeyUpdate = i.onDuplicateKeyUpdate.Push(assignments...)
	return i
}

// Returning adds expressions to the RETURNING clause (Postgres, SQLite).
func (i Insert) Returning(columns ...string) Insert {
	i.returning = i.returning.Push(columns...)
	return i
}

// Kind returns KindInsert.
func (i Insert) Kind() Kind { return KindInsert }

// String renders the statement on one line.
func (i Insert) String() string { return i.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (i Insert) Pretty() string { return i.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (i Insert) Format(st fmt.State, verb rune) { formatStatement(i, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (i Insert) Print() Insert {
	printStatement(i)
	return i
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (i Insert) Debug() Insert {
	debugStatement(i)
	return i
}

// Render renders the statement with f.
func (i Insert) Render(f format.Formatter) string {
	return assemble(i.raw, sequenceFor(insertSequences, i.dialect), f, func(c InsertClause, query string) string {
		return i.splices.Inject(c, query, i.clause(c, f), f)
	})
}

func (i Insert) clause(c InsertClause, f format.Formatter) string {
	switch c {
	case InsertWith:
		return renderWith(i.with, f)
	case InsertInsertInto:
		return scalar(i.intoKeyword, i.into, f)
	case InsertPartition:
		return group("PARTITION", i.partition, f)
	case InsertColumn:
		return group("", i.columns, f)
	case InsertOverriding:
		return scalar("OVERRIDING", i.overriding, f)
	case InsertDefaultValues:
		return flag("DEFAULT VALUES", i.defaultValues, f)
	case InsertValues:
		return list("VALUES", i.values, f)
	case InsertSet:
		return list("SET", i.set, f)
	case InsertSelect:
		if i.selectStmt == nil {
			return ""
		}

		if sql := i.selectStmt.Render(f); sql != "" {
			return sql + f.End()
		}

		return ""
	case InsertOnConflict:
		return scalar("ON CONFLICT", i.onConflict, f)
	case InsertOnDuplicateKeyUpdate:
		return list("ON DUPLICATE KEY UPDATE", i.onDuplicateKeyUpdate, f)
	case InsertReturning:
		return list("RETURNING", i.returning, f)
	default:
		return ""
	}
}
