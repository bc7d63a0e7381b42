// Package query provides immutable, fluent builders for SQL statements.
//
// Each statement kind (Select, Insert, Update, Delete, CreateTable, AlterTable,
// DropTable, CreateIndex, DropIndex, Values and Transaction) is a value type. Setters
// take a value receiver, normalize their input and return the modified copy:
//
//	base := query.NewSelect().Select("id").From("users")
//	admins := base.Where("admin")
//	active := base.Where("active")
//
// Clause fragments are opaque strings. Nothing is parsed, validated, escaped or
// executed.
//
// # Rendering
//
// A statement renders its clauses in the fixed order of its dialect's clause
// sequence (see Sequences). Empty clauses render nothing. Raw SQL can be placed ahead
// of the whole statement (Raw) or immediately before and after any clause (RawBefore,
// RawAfter), even when that clause is empty.
//
// String renders on one line. Pretty, and the %+v verb, render one clause per line with
// nested statements indented:
//
//	fmt.Printf("%+v\n", query.NewSelect().Select("id").From("users").Where("active"))
//	// SELECT id
//	// FROM users
//	// WHERE active
//
// # Composition
//
// WITH bindings, set operations (UNION, INTERSECT, EXCEPT), INSERT ... SELECT and
// transaction commands hold fully built child statements which are rendered
// recursively with the parent's formatter.
package query
