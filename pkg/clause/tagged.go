package clause

import (
	"slices"
	"strings"
)

// Entry is a single (kind, value) pair of a Tagged list.
type Entry[K comparable] struct {
	Kind  K
	Value string
}

// Tagged is an ordered list of (kind, value) pairs where call order is part of the
// meaning, e.g. the ADD / DROP / ALTER actions of ALTER TABLE. Entries are never
// regrouped by kind.
type Tagged[K comparable] struct {
	entries []Entry[K]
}

// Push returns a copy of the list with the pair appended. The value is trimmed; empty
// values and exact duplicate pairs are skipped.
func (t Tagged[K]) Push(kind K, value string) Tagged[K] {
	value = strings.TrimSpace(value)
	entry := Entry[K]{Kind: kind, Value: value}
	if value == "" || slices.Contains(t.entries, entry) {
		return t
	}

	entries := t.entries[:len(t.entries):len(t.entries)]
	return Tagged[K]{entries: append(entries, entry)}
}

// Len returns the number of entries.
func (t Tagged[K]) Len() int {
	return len(t.entries)
}

// Empty reports whether the list holds no entries.
func (t Tagged[K]) Empty() bool {
	return len(t.entries) == 0
}

// Entries returns a copy of the entries in call order.
func (t Tagged[K]) Entries() []Entry[K] {
	return slices.Clone(t.entries)
}
