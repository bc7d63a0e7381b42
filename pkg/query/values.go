package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// ValuesClause identifies a clause of a VALUES statement.
type ValuesClause int

const (
	ValuesValues ValuesClause = iota
	ValuesOrderBy
	ValuesLimit
	ValuesOffset
)

var valuesClauseNames = []string{"VALUES", "ORDER BY", "LIMIT", "OFFSET"}

func (c ValuesClause) String() string { return clauseName(valuesClauseNames, int(c)) }

func (ValuesClause) clauses() []ValuesClause {
	return enumerate[ValuesClause](len(valuesClauseNames))
}

var valuesSequences = map[dialect.Dialect][]ValuesClause{
	dialect.Standard: {ValuesValues},
	dialect.Postgres: {ValuesValues, ValuesOrderBy, ValuesLimit, ValuesOffset},
	dialect.SQLite:   {ValuesValues},
	dialect.MySQL:    {ValuesValues, ValuesOrderBy, ValuesLimit},
}

// Values builds a standalone VALUES statement, typically bound in a WITH clause.
//
// Example:
//
//	rows := query.NewValues().Values("(1, 'one')", "(2, 'two')")
//	query.NewSelect().With("t (id, name)", rows).Select("*").From("t").String()
//	// WITH t (id, name) AS (VALUES (1, 'one'), (2, 'two')) SELECT * FROM t
type Values struct {
	dialect dialect.Dialect
	raw     clause.List
	splices clause.Splices[ValuesClause]
	rows    clause.List
	orderBy clause.List
	limit   clause.Scalar
	offset  clause.Scalar
}

// NewValues creates an empty VALUES statement for the Standard dialect.
func NewValues() Values {
	return Values{}
}

// Dialect selects the dialect the statement is rendered for.
func (v Values) Dialect(d dialect.Dialect) Values {
	v.dialect = d
	return v
}

// Raw adds raw SQL rendered ahead of every clause.
func (v Values) Raw(sql string) Values {
	v.raw = v.raw.Push(sql)
	return v
}

// RawBefore adds raw SQL rendered immediately before clause.
func (v Values) RawBefore(c ValuesClause, sql string) Values {
	v.splices = v.splices.Before(c, sql)
	return v
}

// RawAfter adds raw SQL rendered immediately after clause.
func (v Values) RawAfter(c ValuesClause, sql string) Values {
	v.splices = v.splices.After(c, sql)
	return v
}

// Values adds rows, e.g. "(1, 'one')". MySQL expects row constructors: "ROW(1, 'one')".
func (v Values) Values(rows ...string) Values {
	v.rows = v.rows.Push(rows...)
	return v
}

// OrderBy adds expressions to the ORDER BY clause (Postgres, MySQL).
func (v Values) OrderBy(columns ...string) Values {
	v.orderBy = v.orderBy.Push(columns...)
	return v
}

// Limit sets the LIMIT clause (Postgres, MySQL).
func (v Values) Limit(limit string) Values {
	v.limit = v.limit.Set(limit)
	return v
}

// Offset sets the OFFSET clause (Postgres).
func (v Values) Offset(offset string) Values {
	v.offset = v.offset.Set(offset)
	return v
}

// Kind returns KindValues.
func (v Values) Kind() Kind { return KindValues }

// String renders the statement on one line.
func (v Values) String() string { return v.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (v Values) Pretty() string { return v.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (v Values) Format(st fmt.State, verb rune) { formatStatement(v, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (v Values) Print() Values {
	printStatement(v)
	return v
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (v Values) Debug() Values {
	debugStatement(v)
	return v
}

// Render renders the statement with f.
func (v Values) Render(f format.Formatter) string {
	return assemble(v.raw, sequenceFor(valuesSequences, v.dialect), f, func(c ValuesClause, query string) string {
		return v.splices.Inject(c, query, v.clause(c, f), f)
	})
}

func (v Values) clause(c ValuesClause, f format.Formatter) string {
	switch c {
	case ValuesValues:
		return list("VALUES", v.rows, f)
	case ValuesOrderBy:
		return list("ORDER BY", v.orderBy, f)
	case ValuesLimit:
		return scalar("LIMIT", v.limit, f)
	case ValuesOffset:
		return scalar("OFFSET", v.offset, f)
	default:
		return ""
	}
}
