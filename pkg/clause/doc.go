// Package clause provides the accumulators that hold caller supplied values for a
// single SQL clause, and the raw splice table used to inject literal SQL around them.
//
// Every accumulator is an immutable value: mutating operations return a new value and
// never write into a backing array shared with the receiver. This lets query builders
// copy themselves freely and branch from a common ancestor:
//
//	base := clause.List{}.Push("id")
//	a := base.Push("name")   // [id name]
//	b := base.Push("email")  // [id email]
//
// # Accumulation rules
//
//   - List: ordered, unique. Values are trimmed, empty values are ignored and a value
//     equal to an existing element is ignored. First occurrence order is preserved.
//   - Scalar: last write wins. Assigning an empty string clears the value.
//   - Tagged: ordered (kind, value) pairs. Call order is kept as is; only exact
//     duplicate pairs are ignored.
//   - Conditions: predicates joined with AND / OR, unique by predicate text.
//   - Children and Bindings: ordered child statements, kept as given.
//
// None of the operations return errors. Empty or duplicate input is silently
// normalized.
package clause
