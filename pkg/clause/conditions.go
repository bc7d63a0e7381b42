package clause

import (
	"slices"
	"strings"
)

// Logic is the operator joining a predicate to the one before it.
type Logic int

const (
	// And joins a predicate with AND
	And Logic = iota
	// Or joins a predicate with OR
	Or
)

// String returns the SQL keyword of the operator.
func (l Logic) String() string {
	if l == Or {
		return "OR"
	}

	return "AND"
}

// Conditions is the accumulator of predicate clauses (WHERE, HAVING). Predicates are
// unique by their trimmed text regardless of operator; the first occurrence is kept.
type Conditions struct {
	entries []Entry[Logic]
}

// And returns a copy with predicate appended and joined by AND.
func (c Conditions) And(predicate string) Conditions {
	return c.push(And, predicate)
}

// Or returns a copy with predicate appended and joined by OR.
func (c Conditions) Or(predicate string) Conditions {
	return c.push(Or, predicate)
}

func (c Conditions) push(logic Logic, predicate string) Conditions {
	predicate = strings.TrimSpace(predicate)
	if predicate == "" {
		return c
	}

	exists := slices.ContainsFunc(c.entries, func(e Entry[Logic]) bool {
		return e.Value == predicate
	})
	if exists {
		return c
	}

	entries := c.entries[:len(c.entries):len(c.entries)]
	return Conditions{entries: append(entries, Entry[Logic]{Kind: logic, Value: predicate})}
}

// Empty reports whether no predicate was added.
func (c Conditions) Empty() bool {
	return len(c.entries) == 0
}

// Len returns the number of predicates.
func (c Conditions) Len() int {
	return len(c.entries)
}

// Join renders the predicates. The operator of the first predicate is dropped and the
// rest are joined as `a AND b OR c`, using space as the separator around operators.
func (c Conditions) Join(space string) string {
	var b strings.Builder
	for i, e := range c.entries {
		if i > 0 {
			b.WriteString(space)
			b.WriteString(e.Kind.String())
			b.WriteString(space)
		}

		b.WriteString(e.Value)
	}

	return b.String()
}
