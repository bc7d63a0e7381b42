package plan

import "github.com/pseudomuto/sqlfluent/pkg/dialect"

type (
	// Binding is a named statement of a WITH clause.
	Binding struct {
		Name      string    `yaml:"name"`
		Statement *Document `yaml:"statement"`
	}

	// Action is a single ALTER TABLE action. Exactly one field must be set.
	Action struct {
		Add    string `yaml:"add,omitempty"`
		Drop   string `yaml:"drop,omitempty"`
		Alter  string `yaml:"alter,omitempty"`
		Rename string `yaml:"rename,omitempty"`
	}

	// Document describes a single statement. Only the fields relevant to Kind are
	// used; see the builders in the query package for the meaning of each clause.
	Document struct {
		// Kind is the statement kind, e.g. select or create_table
		Kind string `yaml:"kind"`

		// Dialect overrides the dialect the plan is loaded with, for this statement and
		// its children
		Dialect *dialect.Dialect `yaml:"dialect,omitempty"`

		Raw       Strings           `yaml:"raw,omitempty"`
		RawBefore map[string]string `yaml:"raw_before,omitempty"`
		RawAfter  map[string]string `yaml:"raw_after,omitempty"`
		With      []Binding         `yaml:"with,omitempty"`

		// select
		Select    Strings     `yaml:"select,omitempty"`
		From      Strings     `yaml:"from,omitempty"`
		Partition Strings     `yaml:"partition,omitempty"`
		Join      Strings     `yaml:"join,omitempty"`
		Where     Strings     `yaml:"where,omitempty"`
		WhereOr   Strings     `yaml:"where_or,omitempty"`
		GroupBy   Strings     `yaml:"group_by,omitempty"`
		Having    Strings     `yaml:"having,omitempty"`
		Window    Strings     `yaml:"window,omitempty"`
		OrderBy   Strings     `yaml:"order_by,omitempty"`
		Limit     string      `yaml:"limit,omitempty"`
		Offset    string      `yaml:"offset,omitempty"`
		Except    []*Document `yaml:"except,omitempty"`
		Intersect []*Document `yaml:"intersect,omitempty"`
		Union     []*Document `yaml:"union,omitempty"`

		// insert
		InsertInto           string    `yaml:"insert_into,omitempty"`
		InsertOr             string    `yaml:"insert_or,omitempty"`
		ReplaceInto          string    `yaml:"replace_into,omitempty"`
		Column               Strings   `yaml:"column,omitempty"`
		Overriding           string    `yaml:"overriding,omitempty"`
		DefaultValues        bool      `yaml:"default_values,omitempty"`
		Values               Strings   `yaml:"values,omitempty"`
		Set                  Strings   `yaml:"set,omitempty"`
		Query                *Document `yaml:"query,omitempty"`
		OnConflict           string    `yaml:"on_conflict,omitempty"`
		OnDuplicateKeyUpdate Strings   `yaml:"on_duplicate_key_update,omitempty"`
		Returning            Strings   `yaml:"returning,omitempty"`

		// update and delete
		Update     string  `yaml:"update,omitempty"`
		UpdateOr   string  `yaml:"update_or,omitempty"`
		DeleteFrom string  `yaml:"delete_from,omitempty"`
		Using      Strings `yaml:"using,omitempty"`

		// create_table, alter_table and drop_table
		CreateTable            string   `yaml:"create_table,omitempty"`
		CreateTableIfNotExists string   `yaml:"create_table_if_not_exists,omitempty"`
		PrimaryKey             Strings  `yaml:"primary_key,omitempty"`
		Constraint             Strings  `yaml:"constraint,omitempty"`
		ForeignKey             Strings  `yaml:"foreign_key,omitempty"`
		AlterTable             string   `yaml:"alter_table,omitempty"`
		Actions                []Action `yaml:"actions,omitempty"`
		DropTable              Strings  `yaml:"drop_table,omitempty"`
		DropTableIfExists      Strings  `yaml:"drop_table_if_exists,omitempty"`
		Cascade                bool     `yaml:"cascade,omitempty"`
		Restrict               bool     `yaml:"restrict,omitempty"`

		// create_index and drop_index
		CreateIndex  string  `yaml:"create_index,omitempty"`
		Unique       bool    `yaml:"unique,omitempty"`
		Concurrently bool    `yaml:"concurrently,omitempty"`
		IfNotExists  bool    `yaml:"if_not_exists,omitempty"`
		On           string  `yaml:"on,omitempty"`
		Only         bool    `yaml:"only,omitempty"`
		Include      Strings `yaml:"include,omitempty"`
		DropIndex    Strings `yaml:"drop_index,omitempty"`
		IfExists     bool    `yaml:"if_exists,omitempty"`

		// transaction
		Begin            Modes       `yaml:"begin,omitempty"`
		StartTransaction Modes       `yaml:"start_transaction,omitempty"`
		SetTransaction   Strings     `yaml:"set_transaction,omitempty"`
		Commands         []*Document `yaml:"commands,omitempty"`
		Commit           bool        `yaml:"commit,omitempty"`
		End              bool        `yaml:"end,omitempty"`

		// transaction control commands, valid as entries of commands
		Savepoint        string `yaml:"savepoint,omitempty"`
		ReleaseSavepoint string `yaml:"release_savepoint,omitempty"`
		Rollback         Modes  `yaml:"rollback,omitempty"`
	}
)

// control reports whether the document is a transaction control command rather than a
// statement.
func (d *Document) control() bool {
	return d.Kind == "" && (d.Savepoint != "" || d.ReleaseSavepoint != "" || d.Rollback.Set)
}
