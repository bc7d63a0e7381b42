package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// UpdateClause identifies a clause of an UPDATE statement.
type UpdateClause int

const (
	UpdateWith UpdateClause = iota
	UpdateUpdate
	UpdateJoin
	UpdateSet
	UpdateFrom
	UpdateWhere
	UpdateReturning
	UpdateOrderBy
	UpdateLimit
)

var updateClauseNames = []string{
	"WITH", "UPDATE", "JOIN", "SET", "FROM", "WHERE", "RETURNING", "ORDER BY", "LIMIT",
}

func (c UpdateClause) String() string { return clauseName(updateClauseNames, int(c)) }

func (UpdateClause) clauses() []UpdateClause {
	return enumerate[UpdateClause](len(updateClauseNames))
}

var updateSequences = map[dialect.Dialect][]UpdateClause{
	dialect.Standard: {UpdateUpdate, UpdateSet, UpdateWhere},
	dialect.Postgres: {UpdateWith, UpdateUpdate, UpdateSet, UpdateFrom, UpdateWhere, UpdateReturning},
	dialect.SQLite: {
		UpdateWith, UpdateUpdate, UpdateSet, UpdateFrom, UpdateWhere, UpdateReturning, UpdateOrderBy, UpdateLimit,
	},
	dialect.MySQL: {UpdateUpdate, UpdateJoin, UpdateSet, UpdateWhere, UpdateOrderBy, UpdateLimit},
}

// Update builds an UPDATE statement.
//
// Example:
//
//	query.NewUpdate().
//		Update("users").
//		Set("login = 'foo'").
//		Where("id = $1").
//		String()
//	// UPDATE users SET login = 'foo' WHERE id = $1
type Update struct {
	dialect       dialect.Dialect
	raw           clause.List
	splices       clause.Splices[UpdateClause]
	with          clause.Bindings[Statement]
	updateKeyword string
	table         clause.Scalar
	joins         clause.List
	set           clause.List
	from          clause.List
	where         clause.Conditions
	returning     clause.List
	orderBy       clause.List
	limit         clause.Scalar
}

// NewUpdate creates an empty UPDATE statement for the Standard dialect.
func NewUpdate() Update {
	return Update{}
}

// Dialect selects the dialect the statement is rendered for.
func (u Update) Dialect(d dialect.Dialect) Update {
	u.dialect = d
	return u
}

// Raw adds raw SQL rendered ahead of every clause.
func (u Update) Raw(sql string) Update {
	u.raw = u.raw.Push(sql)
	return u
}

// RawBefore adds raw SQL rendered immediately before clause.
func (u Update) RawBefore(c UpdateClause, sql string) Update {
	u.splices = u.splices.Before(c, sql)
	return u
}

// RawAfter adds raw SQL rendered immediately after clause.
func (u Update) RawAfter(c UpdateClause, sql string) Update {
	u.splices = u.splices.After(c, sql)
	return u
}

// With binds the result of stmt to name (Postgres, SQLite).
func (u Update) With(name string, stmt Statement) Update {
	u.with = u.with.Push(name, stmt)
	return u
}

// Update sets the updated table. It replaces UpdateOr.
func (u Update) Update(table string) Update {
	u.table = u.table.Set(table)
	u.updateKeyword = "UPDATE"
	return u
}

// UpdateOr sets an UPDATE OR target (SQLite), e.g. "REPLACE users".
func (u Update) UpdateOr(target string) Update {
	u.table = u.table.Set(target)
	u.updateKeyword = "UPDATE OR"
	return u
}

// Join adds a complete join clause (MySQL), e.g. "JOIN orders ON orders.user_id = users.id".
func (u Update) Join(join string) Update {
	u.joins = u.joins.Push(join)
	return u
}

// Set adds assignments to the SET clause.
func (u Update) Set(assignments ...string) Update {
	u.set = u.set.Push(assignments...)
	return u
}

// From adds tables to the FROM clause (Postgres, SQLite).
func (u Update) From(tables ...string) Update {
	u.from = u.from.Push(tables...)
	return u
}

// Where adds a predicate joined to the previous ones with AND.
func (u Update) Where(predicate string) Update {
	u.where = u.where.And(predicate)
	return u
}

// WhereAnd is an alias of Where.
func (u Update) WhereAnd(predicate string) Update {
	return u.Where(predicate)
}

// WhereOr adds a predicate joined to the previous ones with OR.
func (u Update) WhereOr(predicate string) Update {
	u.where = u.where.Or(predicate)
	return u
}

// Returning adds expressions to the RETURNING clause (Postgres, SQLite).
func (u Update) Returning(columns ...string) Update {
	u.returning = u.returning.Push(columns...)
	return u
}

// OrderBy adds expressions to the ORDER BY clause (MySQL, SQLite).
func (u Update) OrderBy(columns ...string) Update {
	u.orderBy = u.orderBy.Push(columns...)
	return u
}

// Limit sets the LIMIT clause (MySQL, SQLite).
func (u Update) Limit(limit string) Update {
	u.limit = u.limit.Set(limit)
	return u
}

// Kind returns KindUpdate.
func (u Update) Kind() Kind { return KindUpdate }

// String renders the statement on one line.
func (u Update) String() string { return u.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (u Update) Pretty() string { return u.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (u Update) Format(st fmt.State, verb rune) { formatStatement(u, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (u Update) Print() Update {
	printStatement(u)
	return u
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (u Update) Debug() Update {
	debugStatement(u)
	return u
}

// Render renders the statement with f.
func (u Update) Render(f format.Formatter) string {
	return assemble(u.raw, sequenceFor(updateSequences, u.dialect), f, func(c UpdateClause, query string) string {
		return u.splices.Inject(c, query, u.clause(c, f), f)
	})
}

func (u Update) clause(c UpdateClause, f format.Formatter) string {
	switch c {
	case UpdateWith:
		return renderWith(u.with, f)
	case UpdateUpdate:
		return scalar(u.updateKeyword, u.table, f)
	case UpdateJoin:
		return each(u.joins, f)
	case UpdateSet:
		return list("SET", u.set, f)
	case UpdateFrom:
		return list("FROM", u.from, f)
	case UpdateWhere:
		return predicates("WHERE", u.where, f)
	case UpdateReturning:
		return list("RETURNING", u.returning, f)
	case UpdateOrderBy:
		return list("ORDER BY", u.orderBy, f)
	case UpdateLimit:
		return scalar("LIMIT", u.limit, f)
	default:
		return ""
	}
}
