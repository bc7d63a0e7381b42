package query

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"
)

// ClauseID is the constraint satisfied by the clause identifier enums of this package
// (SelectClause, InsertClause, ...). Identifiers are used as keys of the raw splice
// table of a statement.
type ClauseID[C any] interface {
	comparable
	fmt.Stringer

	clauses() []C
}

// ParseClause returns the clause identifier of type C named by name. Names are the SQL
// keywords of the clause and are matched case insensitively; underscores are treated as
// spaces, so "group_by" and "GROUP BY" both name SelectGroupBy.
//
// Example:
//
//	c, err := query.ParseClause[query.SelectClause]("order_by")
//	// c == query.SelectOrderBy
func ParseClause[C ClauseID[C]](name string) (C, error) {
	var zero C
	want := normalizeClauseName(name)
	for _, c := range zero.clauses() {
		if c.String() == want {
			return c, nil
		}
	}

	return zero, errors.Errorf("unknown clause: %s", name)
}

func normalizeClauseName(name string) string {
	name = strings.ReplaceAll(strings.TrimSpace(name), "_", " ")
	return strings.ToUpper(strings.Join(strings.Fields(name), " "))
}

// clauseName looks up the name of the i-th clause identifier.
func clauseName(names []string, i int) string {
	if i < 0 || i >= len(names) {
		return "UNKNOWN"
	}

	return names[i]
}

// enumerate returns the first n identifiers of an enum starting at zero.
func enumerate[C ~int](n int) []C {
	out := make([]C, n)
	for i := range out {
		out[i] = C(i)
	}

	return out
}

// names converts a clause sequence to clause names.
func names[C fmt.Stringer](sequence []C) []string {
	out := make([]string, len(sequence))
	for i, c := range sequence {
		out[i] = c.String()
	}

	return out
}
