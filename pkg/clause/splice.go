package clause

import (
	"strings"

	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// Splices is the raw splice table of a statement: literal SQL injected immediately
// before or after the rendered text of a clause. C is the closed set of clause
// identifiers of one statement kind.
type Splices[C comparable] struct {
	before []Entry[C]
	after  []Entry[C]
}

// Before returns a copy with text registered before clause.
func (s Splices[C]) Before(clause C, text string) Splices[C] {
	if text = strings.TrimSpace(text); text == "" {
		return s
	}

	before := s.before[:len(s.before):len(s.before)]
	s.before = append(before, Entry[C]{Kind: clause, Value: text})
	return s
}

// After returns a copy with text registered after clause.
func (s Splices[C]) After(clause C, text string) Splices[C] {
	if text = strings.TrimSpace(text); text == "" {
		return s
	}

	after := s.after[:len(s.after):len(s.after)]
	s.after = append(after, Entry[C]{Kind: clause, Value: text})
	return s
}

// BeforeText returns the text registered before clause, in insertion order and joined
// with sep.
func (s Splices[C]) BeforeText(clause C, sep string) string {
	return collect(s.before, clause, sep)
}

// AfterText returns the text registered after clause, in insertion order and joined
// with sep.
func (s Splices[C]) AfterText(clause C, sep string) string {
	return collect(s.after, clause, sep)
}

// Has reports whether any text targets clause.
func (s Splices[C]) Has(clause C) bool {
	return s.BeforeText(clause, "") != "" || s.AfterText(clause, "") != ""
}

// Inject appends the rendered clause sql to tail, surrounded by the text registered for
// clause:
//
//	tail + before + (space if before) + sql + after + (space if after)
//
// It is called for every clause of a statement, including clauses whose accumulator is
// empty, so raw text can occupy a clause position on its own.
func (s Splices[C]) Inject(clause C, tail, sql string, f format.Formatter) string {
	var b strings.Builder
	b.WriteString(tail)

	if before := s.BeforeText(clause, f.Space); before != "" {
		b.WriteString(before)
		b.WriteString(f.Space)
	}

	b.WriteString(sql)

	if after := s.AfterText(clause, f.Space); after != "" {
		b.WriteString(after)
		b.WriteString(f.Space)
	}

	return b.String()
}

func collect[C comparable](entries []Entry[C], clause C, sep string) string {
	var matches []string
	for _, e := range entries {
		if e.Kind == clause {
			matches = append(matches, e.Value)
		}
	}

	return strings.Join(matches, sep)
}
