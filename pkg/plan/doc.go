// Package plan loads statement plans: YAML documents describing SQL statements in
// terms of the query builders.
//
// A plan file holds one or more YAML documents. Each document names a statement kind
// and sets clauses using the snake_case names of the builder setters:
//
//	kind: select
//	select: [id, login]
//	from: users
//	where:
//	  - active
//	order_by: login
//	limit: 10
//	raw_after:
//	  limit: FOR UPDATE
//	---
//	kind: delete
//	delete_from: sessions
//	where: expires_at < now()
//
// List clauses accept a single string or a sequence. Nested statements (with, union,
// except, intersect, insert query and transaction commands) are documents themselves.
// Unknown keys, kinds and clause names are reported as errors.
package plan
