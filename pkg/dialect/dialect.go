// Package dialect identifies the SQL backend a statement is rendered for.
//
// The dialect is a static capability input to the query builders: it selects which
// clauses a statement kind supports and in what order they are rendered. It never
// changes how an individual clause value is rendered, and clause values are never
// validated against it.
//
// Supported dialects:
//
//   - Standard: ANSI SQL, the default
//   - Postgres: PostgreSQL (RETURNING, ON CONFLICT, CONCURRENTLY, BEGIN/END, ...)
//   - SQLite: SQLite (INSERT OR, RETURNING, ORDER BY / LIMIT on UPDATE and DELETE, ...)
//   - MySQL: MySQL (PARTITION, ON DUPLICATE KEY UPDATE, ORDER BY / LIMIT on UPDATE and DELETE, ...)
//
// Example:
//
//	d, err := dialect.Parse("postgresql")
//	if err != nil {
//		return err
//	}
//
//	sql := query.NewSelect().Dialect(d).Select("id").From("users").String()
package dialect

import (
	"strings"

	"github.com/pkg/errors"
)

// Dialect is a target SQL backend.
type Dialect int

const (
	// Standard is ANSI SQL
	Standard Dialect = iota
	// Postgres is PostgreSQL
	Postgres
	// SQLite is SQLite 3
	SQLite
	// MySQL is MySQL 8
	MySQL
)

var names = map[Dialect]string{
	Standard: "standard",
	Postgres: "postgres",
	SQLite:   "sqlite",
	MySQL:    "mysql",
}

var aliases = map[string]Dialect{
	"":           Standard,
	"ansi":       Standard,
	"standard":   Standard,
	"postgres":   Postgres,
	"postgresql": Postgres,
	"pg":         Postgres,
	"sqlite":     SQLite,
	"sqlite3":    SQLite,
	"mysql":      MySQL,
}

// All returns every supported dialect.
func All() []Dialect {
	return []Dialect{Standard, Postgres, SQLite, MySQL}
}

// Parse returns the dialect named by name. Matching is case insensitive and accepts the
// common aliases (ansi, postgresql, pg, sqlite3). An empty name selects Standard.
func Parse(name string) (Dialect, error) {
	d, ok := aliases[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Standard, errors.Errorf("unknown dialect: %s", name)
	}

	return d, nil
}

// String returns the canonical name of the dialect.
func (d Dialect) String() string {
	if name, ok := names[d]; ok {
		return name
	}

	return "unknown"
}

// Is reports whether d is one of the given dialects.
func (d Dialect) Is(dialects ...Dialect) bool {
	for _, other := range dialects {
		if d == other {
			return true
		}
	}

	return false
}

// MarshalText implements encoding.TextMarshaler.
func (d Dialect) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. It allows dialects to be decoded
// directly from yaml configuration and statement plans.
func (d *Dialect) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}

	*d = parsed
	return nil
}
