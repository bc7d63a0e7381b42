// Package format provides the token sets used to render SQL statements.
//
// A Formatter is a small value holding four tokens (line break, indent, comma and
// space) plus a nesting depth. Every clause renderer in the query package reads these
// tokens instead of hard-coding whitespace, so the same statement can be rendered on a
// single line or spread over multiple indented lines.
//
// Two canonical formatters are provided:
//
//   - OneLine: used by String(), produces `SELECT id FROM users WHERE active`
//   - MultiLine: used by Pretty() and Debug(), produces one clause per line
//
// Usage:
//
//	// Canonical formatters
//	sql := stmt.Render(format.OneLine)
//	pretty := stmt.Render(format.MultiLine)
//
//	// Custom indentation
//	f := format.New(format.Options{Pretty: true, IndentSize: 4})
//	sql := stmt.Render(f)
//
// Nested statements (WITH bindings, UNION operands, INSERT ... SELECT) are rendered
// with f.Nested(), which adds one indentation level to every line break emitted by the
// child. In one-line mode nesting has no visible effect.
package format
