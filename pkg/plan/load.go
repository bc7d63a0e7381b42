package plan

import (
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
	"github.com/pseudomuto/sqlfluent/pkg/query"
	"gopkg.in/yaml.v3"
)

// Load reads every YAML document from r and builds the statements they describe for
// dialect d.
//
// Example:
//
//	stmts, err := plan.Load(strings.NewReader(`
//	kind: select
//	select: id
//	from: users
//	`), dialect.Standard)
//	if err != nil {
//		return err
//	}
//
//	fmt.Println(stmts[0]) // SELECT id FROM users
func Load(r io.Reader, d dialect.Dialect) ([]query.Statement, error) {
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	var stmts []query.Statement
	for i := 1; ; i++ {
		var doc Document
		err := dec.Decode(&doc)
		if errors.Is(err, io.EOF) {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "failed to decode document %d", i)
		}

		stmt, err := Build(&doc, d)
		if err != nil {
			return nil, errors.Wrapf(err, "document %d", i)
		}

		stmts = append(stmts, stmt)
	}

	return stmts, nil
}

// LoadFile loads the plan stored at path.
func LoadFile(path string, d dialect.Dialect) ([]query.Statement, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open file: %s", path)
	}
	defer func() { _ = f.Close() }()

	stmts, err := Load(f, d)
	if err != nil {
		return nil, errors.Wrap(err, path)
	}

	return stmts, nil
}

// Render writes stmts to w using f. Every statement is terminated with a semicolon and
// statements are separated by a blank line in multi-line mode. Statements rendering
// empty are skipped.
func Render(w io.Writer, f format.Formatter, stmts ...query.Statement) error {
	var out []string
	for _, stmt := range stmts {
		sql := stmt.Render(f)
		if sql == "" {
			continue
		}

		if !strings.HasSuffix(sql, ";") {
			sql += ";"
		}

		out = append(out, sql)
	}

	if len(out) == 0 {
		return nil
	}

	sep := "\n"
	if f.Pretty() {
		sep = "\n\n"
	}

	_, err := io.WriteString(w, strings.Join(out, sep)+"\n")
	return errors.Wrap(err, "failed to write statements")
}
