package clause

import (
	"slices"
	"strings"
)

// List is an insertion ordered, duplicate free list of clause values. It backs clauses
// such as SELECT, FROM, GROUP BY and ORDER BY.
type List struct {
	items []string
}

// NewList creates a List holding values, applying the same rules as Push.
func NewList(values ...string) List {
	return List{}.Push(values...)
}

// Push returns a copy of the list with values appended. Each value is trimmed; empty
// values and values already present are skipped.
func (l List) Push(values ...string) List {
	items := l.items[:len(l.items):len(l.items)]
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v == "" || slices.Contains(items, v) {
			continue
		}

		items = append(items, v)
	}

	return List{items: items}
}

// Len returns the number of values in the list.
func (l List) Len() int {
	return len(l.items)
}

// Empty reports whether the list holds no values.
func (l List) Empty() bool {
	return len(l.items) == 0
}

// Items returns a copy of the values in insertion order.
func (l List) Items() []string {
	return slices.Clone(l.items)
}

// Last returns the most recently added value, or an empty string.
func (l List) Last() string {
	if len(l.items) == 0 {
		return ""
	}

	return l.items[len(l.items)-1]
}

// Join joins the values with sep.
func (l List) Join(sep string) string {
	return strings.Join(l.items, sep)
}
