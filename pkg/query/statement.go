package query

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// Kind identifies a statement kind.
type Kind int

const (
	KindSelect Kind = iota
	KindInsert
	KindUpdate
	KindDelete
	KindCreateTable
	KindAlterTable
	KindDropTable
	KindCreateIndex
	KindDropIndex
	KindValues
	KindTransaction
)

var kindNames = [...]string{
	KindSelect:      "select",
	KindInsert:      "insert",
	KindUpdate:      "update",
	KindDelete:      "delete",
	KindCreateTable: "create_table",
	KindAlterTable:  "alter_table",
	KindDropTable:   "drop_table",
	KindCreateIndex: "create_index",
	KindDropIndex:   "drop_index",
	KindValues:      "values",
	KindTransaction: "transaction",
}

// Kinds returns every statement kind.
func Kinds() []Kind {
	kinds := make([]Kind, len(kindNames))
	for i := range kindNames {
		kinds[i] = Kind(i)
	}

	return kinds
}

// String returns the snake_case name of the kind, as used by statement plans.
func (k Kind) String() string {
	if k < 0 || int(k) >= len(kindNames) {
		return "unknown"
	}

	return kindNames[k]
}

// ParseKind returns the kind named by name, e.g. "create_table".
func ParseKind(name string) (Kind, error) {
	want := strings.ToLower(strings.TrimSpace(name))
	for i, n := range kindNames {
		if n == want {
			return Kind(i), nil
		}
	}

	return 0, errors.Errorf("unknown statement kind: %s", name)
}

// Statement is implemented by every builder in this package.
type Statement interface {
	fmt.Stringer

	// Kind returns the statement kind.
	Kind() Kind
	// Pretty renders the statement with format.MultiLine.
	Pretty() string
	// Render renders the statement with the given formatter.
	Render(f format.Formatter) string
}

// Fprint writes the one-line rendering of stmt followed by a newline to w.
func Fprint(w io.Writer, stmt Statement) error {
	_, err := fmt.Fprintln(w, stmt.String())
	return err
}

// Fdebug writes the multi-line rendering of stmt to w, decorated with banner rules.
func Fdebug(w io.Writer, stmt Statement) error {
	return format.Banner(w, stmt.Pretty())
}

// printStatement and debugStatement back the Print and Debug methods of every
// statement. Failures to write to stdout are not reported.
func printStatement(stmt Statement) {
	_ = Fprint(os.Stdout, stmt)
}

func debugStatement(stmt Statement) {
	_ = Fdebug(os.Stdout, stmt)
}

// formatStatement implements fmt.Formatter for statements: %s and %v render one-line
// output, %+v renders multi-line output and %q quotes the one-line output.
func formatStatement(stmt Statement, st fmt.State, verb rune) {
	switch {
	case verb == 'v' && st.Flag('+'):
		_, _ = io.WriteString(st, stmt.Pretty())
	case verb == 'q':
		_, _ = fmt.Fprintf(st, "%q", stmt.String())
	default:
		_, _ = io.WriteString(st, stmt.String())
	}
}

const whitespace = " \t\r\n"

func trimEnd(sql string) string {
	return strings.TrimRight(sql, whitespace)
}

// assemble folds step over the clause sequence of a statement. The raw prefix of the
// statement is emitted first. Each step receives the query rendered so far and returns
// it with the clause appended. The result is right-trimmed.
func assemble[C comparable](raw clause.List, sequence []C, f format.Formatter, step func(c C, query string) string) string {
	query := ""
	if !raw.Empty() {
		query = raw.Join(f.Space) + f.End()
	}

	for _, c := range sequence {
		query = step(c, query)
	}

	return trimEnd(query)
}

// sequenceFor returns the clause sequence of d, falling back to the Standard sequence.
func sequenceFor[C any](table map[dialect.Dialect][]C, d dialect.Dialect) []C {
	if seq, ok := table[d]; ok {
		return seq
	}

	return table[dialect.Standard]
}
