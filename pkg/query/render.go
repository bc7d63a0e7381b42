package query

import (
	"strings"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// list renders `KEYWORD a, b` followed by the clause terminator, or nothing.
func list(keyword string, l clause.List, f format.Formatter) string {
	if l.Empty() {
		return ""
	}

	return keyword + f.Space + l.Join(f.Comma) + f.End()
}

// scalar renders `KEYWORD value` followed by the clause terminator, or nothing.
func scalar(keyword string, s clause.Scalar, f format.Formatter) string {
	if s.Empty() {
		return ""
	}

	return keyword + f.Space + s.Value() + f.End()
}

// predicates renders `KEYWORD a AND b OR c`, or nothing.
func predicates(keyword string, c clause.Conditions, f format.Formatter) string {
	if c.Empty() {
		return ""
	}

	return keyword + f.Space + c.Join(f.Space) + f.End()
}

// group renders `KEYWORD (a, b)`, or `(a, b)` without a keyword.
func group(keyword string, l clause.List, f format.Formatter) string {
	if l.Empty() {
		return ""
	}

	if keyword == "" {
		return "(" + l.Join(f.Comma) + ")" + f.End()
	}

	return keyword + f.Space + "(" + l.Join(f.Comma) + ")" + f.End()
}

// flag renders the keyword when set.
func flag(keyword string, set bool, f format.Formatter) string {
	if !set {
		return ""
	}

	return keyword + f.End()
}

// each renders every value as its own clause, e.g. JOIN entries.
func each(l clause.List, f format.Formatter) string {
	var b strings.Builder
	for _, item := range l.Items() {
		b.WriteString(item)
		b.WriteString(f.End())
	}

	return b.String()
}

// words joins the non-empty parts with space.
func words(space string, parts ...string) string {
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p != "" {
			out = append(out, p)
		}
	}

	return strings.Join(out, space)
}

// renderWith renders the WITH clause. Each binding renders as `name AS (child)` with the child
// one indentation level deeper; bindings whose child renders empty are dropped.
func renderWith(bindings clause.Bindings[Statement], f format.Formatter) string {
	n := f.Nested()

	var parts []string
	for _, b := range bindings.Items() {
		if b.Child == nil {
			continue
		}

		sql := b.Child.Render(n)
		if sql == "" {
			continue
		}

		parts = append(parts, b.Name+f.Space+"AS"+f.Space+"("+n.Break()+sql+f.Break()+")")
	}

	if len(parts) == 0 {
		return ""
	}

	return "WITH" + f.Space + f.Join(parts) + f.End()
}

// combine renders a set operation clause (UNION, INTERSECT, EXCEPT). Unlike other
// clauses it consumes the query rendered so far: for every operand the accumulated left
// side is wrapped in one more layer of parentheses, so
//
//	a.Union(b).Union(c)
//
// renders as `((a) UNION (b)) UNION (c)`. Text spliced before the clause is placed
// ahead of the first operator, text spliced after it follows the last operand. Without
// operands the clause behaves like any other empty clause.
func combine[C comparable](op string, id C, operands clause.Children[Select], splices clause.Splices[C], query string, f format.Formatter) string {
	if operands.Empty() {
		return splices.Inject(id, query, "", f)
	}

	n := f.Nested()
	before := splices.BeforeText(id, f.Space)
	left := trimEnd(query)

	for i, operand := range operands.Items() {
		var b strings.Builder
		b.WriteString("(" + n.Break() + f.Reindent(left) + f.Break() + ")" + f.End())
		if i == 0 && before != "" {
			b.WriteString(before + f.Space)
		}

		b.WriteString(op + f.End())
		b.WriteString("(" + n.Break() + operand.Render(n) + f.Break() + ")")
		left = b.String()
	}

	query = left + f.End()
	if after := splices.AfterText(id, f.Space); after != "" {
		query += after + f.Space
	}

	return query
}

// prefixed returns `keyword value`, or an empty string when value is blank.
func prefixed(keyword, value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	return keyword + " " + value
}
