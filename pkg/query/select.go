package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// SelectClause identifies a clause of a SELECT statement.
type SelectClause int

const (
	SelectWith SelectClause = iota
	SelectSelect
	SelectFrom
	SelectPartition
	SelectJoin
	SelectWhere
	SelectGroupBy
	SelectHaving
	SelectWindow
	SelectOrderBy
	SelectLimit
	SelectOffset
	SelectExcept
	SelectIntersect
	SelectUnion
)

var selectClauseNames = []string{
	"WITH", "SELECT", "FROM", "PARTITION", "JOIN", "WHERE", "GROUP BY", "HAVING", "WINDOW",
	"ORDER BY", "LIMIT", "OFFSET", "EXCEPT", "INTERSECT", "UNION",
}

func (c SelectClause) String() string { return clauseName(selectClauseNames, int(c)) }

func (SelectClause) clauses() []SelectClause {
	return enumerate[SelectClause](len(selectClauseNames))
}

var selectSequences = map[dialect.Dialect][]SelectClause{
	dialect.Standard: {
		SelectWith, SelectSelect, SelectFrom, SelectJoin, SelectWhere, SelectGroupBy, SelectHaving,
		SelectWindow, SelectOrderBy, SelectLimit, SelectOffset, SelectExcept, SelectIntersect, SelectUnion,
	},
	dialect.Postgres: {
		SelectWith, SelectSelect, SelectFrom, SelectJoin, SelectWhere, SelectGroupBy, SelectHaving,
		SelectWindow, SelectOrderBy, SelectLimit, SelectOffset, SelectExcept, SelectIntersect, SelectUnion,
	},
	dialect.SQLite: {
		SelectWith, SelectSelect, SelectFrom, SelectJoin, SelectWhere, SelectGroupBy, SelectHaving,
		SelectWindow, SelectOrderBy, SelectLimit, SelectOffset, SelectExcept, SelectIntersect, SelectUnion,
	},
	dialect.MySQL: {
		SelectWith, SelectSelect, SelectFrom, SelectPartition, SelectJoin, SelectWhere, SelectGroupBy,
		SelectHaving, SelectWindow, SelectOrderBy, SelectLimit, SelectOffset, SelectUnion,
	},
}

// Select builds a SELECT statement.
//
// Select is a value type: every method returns a modified copy and never changes the
// receiver, so a partially built query can be reused as the base of several others.
//
// Example:
//
//	active := query.NewSelect().
//		Select("id, login").
//		From("users").
//		Where("active = true")
//
//	active.String()
//	// SELECT id, login FROM users WHERE active = true
//
//	active.Where("login LIKE 'a%'").OrderBy("login").Limit("10").String()
//	// SELECT id, login FROM users WHERE active = true AND login LIKE 'a%' ORDER BY login LIMIT 10
type Select struct {
	dialect   dialect.Dialect
	raw       clause.List
	splices   clause.Splices[SelectClause]
	with      clause.Bindings[Statement]
	columns   clause.List
	from      clause.List
	partition clause.List
	joins     clause.List
	where     clause.Conditions
	groupBy   clause.List
	having    clause.Conditions
	window    clause.List
	orderBy   clause.List
	limit     clause.Scalar
	offset    clause.Scalar
	except    clause.Children[Select]
	intersect clause.Children[Select]
	union     clause.Children[Select]
}

// NewSelect creates an empty SELECT statement for the Standard dialect.
func NewSelect() Select {
	return Select{}
}

// Dialect selects the dialect the statement is rendered for.
func (s Select) Dialect(d dialect.Dialect) Select {
	s.dialect = d
	return s
}

// Raw adds raw SQL rendered ahead of every clause.
func (s Select) Raw(sql string) Select {
	s.raw = s.raw.Push(sql)
	return s
}

// RawBefore adds raw SQL rendered immediately before clause.
//
// Example:
//
//	query.NewSelect().RawBefore(query.SelectWhere, "/* c */").Where("a=1").String()
//	// /* c */ WHERE a=1
func (s Select) RawBefore(c SelectClause, sql string) Select {
	s.splices = s.splices.Before(c, sql)
	return s
}

// RawAfter adds raw SQL rendered immediately after clause.
func (s Select) RawAfter(c SelectClause, sql string) Select {
	s.splices = s.splices.After(c, sql)
	return s
}

// With binds the result of stmt to name for use by the rest of the statement. Bindings
// whose statement renders empty are dropped.
//
// Example:
//
//	admins := query.NewSelect().Select("id").From("users").Where("admin")
//	query.NewSelect().With("admins", admins).Select("*").From("admins").String()
//	// WITH admins AS (SELECT id FROM users WHERE admin) SELECT * FROM admins
func (s Select) With(name string, stmt Statement) Select {
	s.with = s.with.Push(name, stmt)
	return s
}

// Select adds expressions to the select list.
func (s Select) Select(columns ...string) Select {
	s.columns = s.columns.Push(columns...)
	return s
}

// From adds tables to the FROM clause.
func (s Select) From(tables ...string) Select {
	s.from = s.from.Push(tables...)
	return s
}

// Partition adds partition names to the PARTITION clause (MySQL).
func (s Select) Partition(names ...string) Select {
	s.partition = s.partition.Push(names...)
	return s
}

// Join adds a complete join clause, e.g. "LEFT JOIN orders ON orders.user_id = users.id".
func (s Select) Join(join string) Select {
	s.joins = s.joins.Push(join)
	return s
}

// InnerJoin adds an INNER JOIN clause.
func (s Select) InnerJoin(join string) Select {
	return s.Join(prefixed("INNER JOIN", join))
}

// LeftJoin adds a LEFT JOIN clause.
func (s Select) LeftJoin(join string) Select {
	return s.Join(prefixed("LEFT JOIN", join))
}

// RightJoin adds a RIGHT JOIN clause.
func (s Select) RightJoin(join string) Select {
	return s.Join(prefixed("RIGHT JOIN", join))
}

// CrossJoin adds a CROSS JOIN clause.
func (s Select) CrossJoin(join string) Select {
	return s.Join(prefixed("CROSS JOIN", join))
}

// Where adds a predicate joined to the previous ones with AND.
//
// Example:
//
//	query.NewSelect().Where("a=1").Where("b=2").String()  // WHERE a=1 AND b=2
//	query.NewSelect().Where("a=1").Where("a=1").String()  // WHERE a=1
func (s Select) Where(predicate string) Select {
	s.where = s.where.And(predicate)
	return s
}

// WhereAnd is an alias of Where.
func (s Select) WhereAnd(predicate string) Select {
	return s.Where(predicate)
}

// WhereOr adds a predicate joined to the previous ones with OR.
func (s Select) WhereOr(predicate string) Select {
	s.where = s.where.Or(predicate)
	return s
}

// GroupBy adds expressions to the GROUP BY clause.
func (s Select) GroupBy(columns ...string) Select {
	s.groupBy = s.groupBy.Push(columns...)
	return s
}

// Having adds a predicate to the HAVING clause, joined with AND.
func (s Select) Having(predicate string) Select {
	s.having = s.having.And(predicate)
	return s
}

// Window adds a named window definition, e.g. "w AS (PARTITION BY dept)".
func (s Select) Window(definition string) Select {
	s.window = s.window.Push(definition)
	return s
}

// OrderBy adds expressions to the ORDER BY clause.
func (s Select) OrderBy(columns ...string) Select {
	s.orderBy = s.orderBy.Push(columns...)
	return s
}

// Limit sets the LIMIT clause. An empty value removes it.
func (s Select) Limit(limit string) Select {
	s.limit = s.limit.Set(limit)
	return s
}

// Offset sets the OFFSET clause. An empty value removes it.
func (s Select) Offset(offset string) Select {
	s.offset = s.offset.Set(offset)
	return s
}

// Except combines the statement with other using EXCEPT.
func (s Select) Except(other Select) Select {
	s.except = s.except.Push(other)
	return s
}

// Intersect combines the statement with other using INTERSECT.
func (s Select) Intersect(other Select) Select {
	s.intersect = s.intersect.Push(other)
	return s
}

// Union combines the statement with other using UNION. Each call wraps everything
// rendered so far in another layer of parentheses.
//
// Example:
//
//	a := query.NewSelect().Select("a")
//	b := query.NewSelect().Select("b")
//	c := query.NewSelect().Select("c")
//	a.Union(b).Union(c).String()
//	// ((SELECT a) UNION (SELECT b)) UNION (SELECT c)
func (s Select) Union(other Select) Select {
	s.union = s.union.Push(other)
	return s
}

// Kind returns KindSelect.
func (s Select) Kind() Kind { return KindSelect }

// String renders the statement on one line.
func (s Select) String() string { return s.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (s Select) Pretty() string { return s.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (s Select) Format(st fmt.State, verb rune) { formatStatement(s, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (s Select) Print() Select {
	printStatement(s)
	return s
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (s Select) Debug() Select {
	debugStatement(s)
	return s
}

// Render renders the statement with f.
func (s Select) Render(f format.Formatter) string {
	return assemble(s.raw, sequenceFor(selectSequences, s.dialect), f, func(c SelectClause, query string) string {
		switch c {
		case SelectExcept:
			return combine("EXCEPT", c, s.except, s.splices, query, f)
		case SelectIntersect:
			return combine("INTERSECT", c, s.intersect, s.splices, query, f)
		case SelectUnion:
			return combine("UNION", c, s.union, s.splices, query, f)
		default:
			return s.splices.Inject(c, query, s.clause(c, f), f)
		}
	})
}

func (s Select) clause(c SelectClause, f format.Formatter) string {
	switch c {
	case SelectWith:
		return renderWith(s.with, f)
	case SelectSelect:
		return list("SELECT", s.columns, f)
	case SelectFrom:
		return list("FROM", s.from, f)
	case SelectPartition:
		return group("PARTITION", s.partition, f)
	case SelectJoin:
		return each(s.joins, f)
	case SelectWhere:
		return predicates("WHERE", s.where, f)
	case SelectGroupBy:
		return list("GROUP BY", s.groupBy, f)
	case SelectHaving:
		return predicates("HAVING", s.having, f)
	case SelectWindow:
		return list("WINDOW", s.window, f)
	case SelectOrderBy:
		return list("ORDER BY", s.orderBy, f)
	case SelectLimit:
		return scalar("LIMIT", s.limit, f)
	case SelectOffset:
		return scalar("OFFSET", s.offset, f)
	default:
		return ""
	}
}
