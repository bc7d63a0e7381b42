package clause

import (
	"slices"
	"strings"
)

// Children is an ordered list of fully built child statements, e.g. the operands of
// UNION. Children are kept exactly as given.
type Children[T any] struct {
	items []T
}

// Push returns a copy with child appended.
func (c Children[T]) Push(child T) Children[T] {
	items := c.items[:len(c.items):len(c.items)]
	return Children[T]{items: append(items, child)}
}

// Len returns the number of children.
func (c Children[T]) Len() int {
	return len(c.items)
}

// Empty reports whether the list holds no children.
func (c Children[T]) Empty() bool {
	return len(c.items) == 0
}

// Items returns a copy of the children in insertion order.
func (c Children[T]) Items() []T {
	return slices.Clone(c.items)
}

// Binding names a child statement, as in `name AS (child)`.
type Binding[T any] struct {
	Name  string
	Child T
}

// Bindings is the ordered list of named child statements of a WITH clause.
type Bindings[T any] struct {
	items []Binding[T]
}

// Push returns a copy with the binding appended. The name is trimmed and bindings with
// an empty name are skipped.
func (b Bindings[T]) Push(name string, child T) Bindings[T] {
	name = strings.TrimSpace(name)
	if name == "" {
		return b
	}

	items := b.items[:len(b.items):len(b.items)]
	return Bindings[T]{items: append(items, Binding[T]{Name: name, Child: child})}
}

// Empty reports whether no binding was added.
func (b Bindings[T]) Empty() bool {
	return len(b.items) == 0
}

// Items returns a copy of the bindings in insertion order.
func (b Bindings[T]) Items() []Binding[T] {
	return slices.Clone(b.items)
}
