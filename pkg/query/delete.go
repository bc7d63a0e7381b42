package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// DeleteClause identifies a clause of a DELETE statement.
type DeleteClause int

const (
	DeleteWith DeleteClause = iota
	DeleteDeleteFrom
	DeletePartition
	DeleteUsing
	DeleteWhere
	DeleteReturning
	DeleteOrderBy
	DeleteLimit
)

var deleteClauseNames = []string{
	"WITH", "DELETE FROM", "PARTITION", "USING", "WHERE", "RETURNING", "ORDER BY", "LIMIT",
}

func (c DeleteClause) String() string { return clauseName(deleteClauseNames, int(c)) }

func (DeleteClause) clauses() []DeleteClause {
	return enumerate[DeleteClause](len(deleteClauseNames))
}

var deleteSequences = map[dialect.Dialect][]DeleteClause{
	dialect.Standard: {DeleteDeleteFrom, DeleteWhere},
	dialect.Postgres: {DeleteWith, DeleteDeleteFrom, DeleteUsing, DeleteWhere, DeleteReturning},
	dialect.SQLite:   {DeleteWith, DeleteDeleteFrom, DeleteWhere, DeleteReturning, DeleteOrderBy, DeleteLimit},
	dialect.MySQL:    {DeleteDeleteFrom, DeletePartition, DeleteWhere, DeleteOrderBy, DeleteLimit},
}

// Delete builds a DELETE statement.
//
// Example:
//
//	query.NewDelete().DeleteFrom("users").Where("id = $1").String()
//	// DELETE FROM users WHERE id = $1
type Delete struct {
	dialect   dialect.Dialect
	raw       clause.List
	splices   clause.Splices[DeleteClause]
	with      clause.Bindings[Statement]
	table     clause.Scalar
	partition clause.List
	using     clause.List
	where     clause.Conditions
	returning clause.List
	orderBy   clause.List
	limit     clause.Scalar
}

// NewDelete creates an empty DELETE statement for the Standard dialect.
func NewDelete() Delete {
	return Delete{}
}

// Dialect selects the dialect the statement is rendered for.
func (d Delete) Dialect(dl dialect.Dialect) Delete {
	d.dialect = dl
	return d
}

// Raw adds raw SQL rendered ahead of every clause.
func (d Delete) Raw(sql string) Delete {
	d.raw = d.raw.Push(sql)
	return d
}

// RawBefore adds raw SQL rendered immediately before clause.
func (d Delete) RawBefore(c DeleteClause, sql string) Delete {
	d.splices = d.splices.Before(c, sql)
	return d
}

// RawAfter adds raw SQL rendered immediately after clause.
func (d Delete) RawAfter(c DeleteClause, sql string) Delete {
	d.splices = d.splices.After(c, sql)
	return d
}

// With binds the result of stmt to name (Postgres, SQLite).
func (d Delete) With(name string, stmt Statement) Delete {
	d.with = d.with.Push(name, stmt)
	return d
}

// DeleteFrom sets the table rows are deleted from.
func (d Delete) DeleteFrom(table string) Delete {
	d.table = d.table.Set(table)
	return d
}

// Partition adds partition names (MySQL).
func (d Delete) Partition(names ...string) Delete {
	d.partition = d.partition.Push(names...)
	return d
}

// Using adds tables to the USING clause (Postgres).
func (d Delete) Using(tables ...string) Delete {
	d.using = d.using.Push(tables...)
	return d
}

// Where adds a predicate joined to the previous ones with AND.
func (d Delete) Where(predicate string) Delete {
	d.where = d.where.And(predicate)
	return d
}

// WhereAnd is an alias of Where.
func (d Delete) WhereAnd(predicate string) Delete {
	return d.Where(predicate)
}

// WhereOr adds a predicate joined to the previous ones with OR.
func (d Delete) WhereOr(predicate string) Delete {
	d.where = d.where.Or(predicate)
	return d
}

// Returning adds expressions to the RETURNING clause (Postgres, SQLite).
func (d Delete) Returning(columns ...string) Delete {
	d.returning = d.returning.Push(columns...)
	return d
}

// OrderBy adds expressions to the ORDER BY clause (MySQL, SQLite).
func (d Delete) OrderBy(columns ...string) Delete {
	d.orderBy = d.orderBy.Push(columns...)
	return d
}

// Limit sets the LIMIT clause (MySQL, SQLite).
func (d Delete) Limit(limit string) Delete {
	d.limit = d.limit.Set(limit)
	return d
}

// Kind returns KindDelete.
func (d Delete) Kind() Kind { return KindDelete }

// String renders the statement on one line.
func (d Delete) String() string { return d.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (d Delete) Pretty() string { return d.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (d Delete) Format(st fmt.State, verb rune) { formatStatement(d, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (d Delete) Print() Delete {
	printStatement(d)
	return d
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (d Delete) Debug() Delete {
	debugStatement(d)
	return d
}

// Render renders the statement with f.
func (d Delete) Render(f format.Formatter) string {
	return assemble(d.raw, sequenceFor(deleteSequences, d.dialect), f, func(c DeleteClause, query string) string {
		return d.splices.Inject(c, query, d.clause(c, f), f)
	})
}

func (d Delete) clause(c DeleteClause, f format.Formatter) string {
	switch c {
	case DeleteWith:
		return renderWith(d.with, f)
	case DeleteDeleteFrom:
		return scalar("DELETE FROM", d.table, f)
	case DeletePartition:
		return group("PARTITION", d.partition, f)
	case DeleteUsing:
		return list("USING", d.using, f)
	case DeleteWhere:
		return predicates("WHERE", d.where, f)
	case DeleteReturning:
		return list("RETURNING", d.returning, f)
	case DeleteOrderBy:
		return list("ORDER BY", d.orderBy, f)
	case DeleteLimit:
		return scalar("LIMIT", d.limit, f)
	default:
		return ""
	}
}
