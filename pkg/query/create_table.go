package query

import (
	"fmt"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// CreateTableClause identifies a clause of a CREATE TABLE statement. Everything after
// CreateTableCreateTable is rendered inside the parenthesised table body.
type CreateTableClause int

const (
	CreateTableCreateTable CreateTableClause = iota
	CreateTableColumn
	CreateTablePrimaryKey
	CreateTableConstraint
	CreateTableForeignKey
)

var createTableClauseNames = []string{
	"CREATE TABLE", "COLUMN", "PRIMARY KEY", "CONSTRAINT", "FOREIGN KEY",
}

func (c CreateTableClause) String() string { return clauseName(createTableClauseNames, int(c)) }

func (CreateTableClause) clauses() []CreateTableClause {
	return enumerate[CreateTableClause](len(createTableClauseNames))
}

var createTableSequence = []CreateTableClause{
	CreateTableCreateTable, CreateTableColumn, CreateTablePrimaryKey, CreateTableConstraint, CreateTableForeignKey,
}

var createTableSequences = map[dialect.Dialect][]CreateTableClause{
	dialect.Standard: createTableSequence,
	dialect.Postgres: createTableSequence,
	dialect.SQLite:   createTableSequence,
	dialect.MySQL:    createTableSequence,
}

// CreateTable builds a CREATE TABLE statement.
//
// Example:
//
//	query.NewCreateTable().
//		CreateTable("users").
//		Column("id serial").
//		Column("login text NOT NULL").
//		PrimaryKey("id").
//		String()
//	// CREATE TABLE users (id serial, login text NOT NULL, PRIMARY KEY (id))
type CreateTable struct {
	dialect     dialect.Dialect
	raw         clause.List
	splices     clause.Splices[CreateTableClause]
	ifNotExists bool
	table       clause.Scalar
	columns     clause.List
	primaryKey  clause.List
	constraints clause.List
	foreignKeys clause.List
}

// NewCreateTable creates an empty CREATE TABLE statement for the Standard dialect.
func NewCreateTable() CreateTable {
	return CreateTable{}
}

// Dialect selects the dialect the statement is rendered for.
func (t CreateTable) Dialect(d dialect.Dialect) CreateTable {
	t.dialect = d
	return t
}

// Raw adds raw SQL rendered ahead of every clause.
func (t CreateTable) Raw(sql string) CreateTable {
	t.raw = t.raw.Push(sql)
	return t
}

// RawBefore adds raw SQL rendered immediately before clause. Text placed before a body
// clause prefixes its first definition.
func (t CreateTable) RawBefore(c CreateTableClause, sql string) CreateTable {
	t.splices = t.splices.Before(c, sql)
	return t
}

// RawAfter adds raw SQL rendered immediately after clause. Text placed after a body
// clause follows its last definition.
func (t CreateTable) RawAfter(c CreateTableClause, sql string) CreateTable {
	t.splices = t.splices.After(c, sql)
	return t
}

// CreateTable sets the table name.
func (t CreateTable) CreateTable(table string) CreateTable {
	t.table = t.table.Set(table)
	t.ifNotExists = false
	return t
}

// CreateTableIfNotExists sets the table name and renders CREATE TABLE IF NOT EXISTS.
func (t CreateTable) CreateTableIfNotExists(table string) CreateTable {
	t.table = t.table.Set(table)
	t.ifNotExists = true
	return t
}

// Column adds a column definition, e.g. "login text NOT NULL".
func (t CreateTable) Column(definition string) CreateTable {
	t.columns = t.columns.Push(definition)
	return t
}

// PrimaryKey adds columns to the table level PRIMARY KEY constraint.
func (t CreateTable) PrimaryKey(columns ...string) CreateTable {
	t.primaryKey = t.primaryKey.Push(columns...)
	return t
}

// Constraint adds a named table constraint, e.g. "login_key UNIQUE (login)".
func (t CreateTable) Constraint(definition string) CreateTable {
	t.constraints = t.constraints.Push(definition)
	return t
}

// ForeignKey adds a foreign key definition, e.g. "(user_id) REFERENCES users (id)".
func (t CreateTable) ForeignKey(definition string) CreateTable {
	t.foreignKeys = t.foreignKeys.Push(definition)
	return t
}

// Kind returns KindCreateTable.
func (t CreateTable) Kind() Kind { return KindCreateTable }

// String renders the statement on one line.
func (t CreateTable) String() string { return t.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (t CreateTable) Pretty() string { return t.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (t CreateTable) Format(st fmt.State, verb rune) { formatStatement(t, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (t CreateTable) Print() CreateTable {
	printStatement(t)
	return t
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (t CreateTable) Debug() CreateTable {
	debugStatement(t)
	return t
}

// Render renders the statement with f. The definitions follow the header as a block:
//
//	CREATE TABLE users (
//	  id serial,
//	  login text
//	)
func (t CreateTable) Render(f format.Formatter) string {
	sequence := sequenceFor(createTableSequences, t.dialect)

	query := assemble(t.raw, sequence[:1], f, func(c CreateTableClause, query string) string {
		keyword := "CREATE TABLE"
		if t.ifNotExists {
			keyword += " IF NOT EXISTS"
		}

		return t.splices.Inject(c, query, scalar(keyword, t.table, f), f)
	})

	var body []string
	for _, c := range sequence[1:] {
		body = append(body, t.definitions(c, f)...)
	}

	if len(body) == 0 {
		return query
	}

	return words(f.Space, query, f.Block(body))
}

// definitions returns the body entries of clause c with its splices attached to the
// first and last entry.
func (t CreateTable) definitions(c CreateTableClause, f format.Formatter) []string {
	var items []string
	switch c {
	case CreateTableColumn:
		items = t.columns.Items()
	case CreateTablePrimaryKey:
		if !t.primaryKey.Empty() {
			items = []string{"PRIMARY KEY" + f.Space + "(" + t.primaryKey.Join(f.Comma) + ")"}
		}
	case CreateTableConstraint:
		for _, def := range t.constraints.Items() {
			items = append(items, "CONSTRAINT"+f.Space+def)
		}
	case CreateTableForeignKey:
		for _, def := range t.foreignKeys.Items() {
			items = append(items, "FOREIGN KEY"+f.Space+def)
		}
	}

	before := t.splices.BeforeText(c, f.Space)
	after := t.splices.AfterText(c, f.Space)
	if len(items) == 0 {
		if only := words(f.Space, before, after); only != "" {
			return []string{only}
		}

		return nil
	}

	items[0] = words(f.Space, before, items[0])
	items[len(items)-1] = words(f.Space, items[len(items)-1], after)
	return items
}
