package query

import (
	"fmt"
	"strings"

	"github.com/pseudomuto/sqlfluent/pkg/clause"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/format"
)

// TransactionClause identifies a clause of a transaction script.
type TransactionClause int

const (
	TransactionBegin TransactionClause = iota
	TransactionStartTransaction
	TransactionSetTransaction
	TransactionCommands
	TransactionCommit
	TransactionEnd
)

var transactionClauseNames = []string{
	"BEGIN", "START TRANSACTION", "SET TRANSACTION", "COMMANDS", "COMMIT", "END",
}

func (c TransactionClause) String() string { return clauseName(transactionClauseNames, int(c)) }

func (TransactionClause) clauses() []TransactionClause {
	return enumerate[TransactionClause](len(transactionClauseNames))
}

var transactionSequences = map[dialect.Dialect][]TransactionClause{
	dialect.Standard: {
		TransactionStartTransaction, TransactionSetTransaction, TransactionCommands, TransactionCommit,
	},
	dialect.Postgres: {
		TransactionBegin, TransactionStartTransaction, TransactionSetTransaction, TransactionCommands,
		TransactionCommit, TransactionEnd,
	},
	dialect.SQLite: {TransactionBegin, TransactionCommands, TransactionCommit, TransactionEnd},
	dialect.MySQL: {
		TransactionSetTransaction, TransactionStartTransaction, TransactionCommands, TransactionCommit,
	},
}

// Transaction builds a script of statements wrapped in a transaction. Every command is
// terminated with a semicolon and commands are rendered in call order, duplicates
// included.
//
// Example:
//
//	query.NewTransaction().
//		StartTransaction().
//		Command(query.NewUpdate().Update("accounts").Set("balance = balance - 10").Where("id = 1")).
//		Command(query.NewUpdate().Update("accounts").Set("balance = balance + 10").Where("id = 2")).
//		Commit().
//		String()
//	// START TRANSACTION; UPDATE accounts SET balance = balance - 10 WHERE id = 1; UPDATE accounts SET balance = balance + 10 WHERE id = 2; COMMIT;
type Transaction struct {
	dialect  dialect.Dialect
	raw      clause.List
	splices  clause.Splices[TransactionClause]
	begin    optional
	start    optional
	set      clause.List
	commands clause.Children[Statement]
	commit   bool
	end      bool
}

// optional is a keyword clause that is either absent or rendered with optional modes,
// e.g. `BEGIN` or `BEGIN IMMEDIATE`.
type optional struct {
	set   bool
	modes clause.List
}

func (o optional) with(modes ...string) optional {
	return optional{set: true, modes: o.modes.Push(modes...)}
}

func (o optional) render(keyword string, f format.Formatter) string {
	if !o.set {
		return ""
	}

	if o.modes.Empty() {
		return keyword + ";" + f.End()
	}

	return keyword + f.Space + o.modes.Join(f.Comma) + ";" + f.End()
}

// NewTransaction creates an empty transaction for the Standard dialect.
func NewTransaction() Transaction {
	return Transaction{}
}

// Dialect selects the dialect the statement is rendered for.
func (t Transaction) Dialect(d dialect.Dialect) Transaction {
	t.dialect = d
	return t
}

// Raw adds raw SQL rendered ahead of every clause.
func (t Transaction) Raw(sql string) Transaction {
	t.raw = t.raw.Push(sql)
	return t
}

// RawBefore adds raw SQL rendered immediately before clause.
func (t Transaction) RawBefore(c TransactionClause, sql string) Transaction {
	t.splices = t.splices.Before(c, sql)
	return t
}

// RawAfter adds raw SQL rendered immediately after clause.
func (t Transaction) RawAfter(c TransactionClause, sql string) Transaction {
	t.splices = t.splices.After(c, sql)
	return t
}

// Begin renders BEGIN with optional modes, e.g. "IMMEDIATE" (Postgres, SQLite).
func (t Transaction) Begin(modes ...string) Transaction {
	t.begin = t.begin.with(modes...)
	return t
}

// StartTransaction renders START TRANSACTION with optional modes, e.g. "READ ONLY"
// (Standard, Postgres, MySQL).
func (t Transaction) StartTransaction(modes ...string) Transaction {
	t.start = t.start.with(modes...)
	return t
}

// SetTransaction adds transaction characteristics, e.g. "ISOLATION LEVEL SERIALIZABLE"
// (Standard, Postgres, MySQL).
func (t Transaction) SetTransaction(modes ...string) Transaction {
	t.set = t.set.Push(modes...)
	return t
}

// Command appends a statement to the transaction body.
func (t Transaction) Command(stmt Statement) Transaction {
	if stmt == nil {
		return t
	}

	t.commands = t.commands.Push(stmt)
	return t
}

// Savepoint appends SAVEPOINT name to the transaction body.
func (t Transaction) Savepoint(name string) Transaction {
	return t.Command(command(prefixed("SAVEPOINT", name)))
}

// ReleaseSavepoint appends RELEASE SAVEPOINT name to the transaction body.
func (t Transaction) ReleaseSavepoint(name string) Transaction {
	return t.Command(command(prefixed("RELEASE SAVEPOINT", name)))
}

// Rollback appends ROLLBACK to the transaction body, or ROLLBACK TO SAVEPOINT when a
// savepoint name is given.
func (t Transaction) Rollback(savepoint ...string) Transaction {
	name := strings.TrimSpace(strings.Join(savepoint, " "))
	if name == "" {
		return t.Command(command("ROLLBACK"))
	}

	return t.Command(command("ROLLBACK TO SAVEPOINT " + name))
}

// Commit renders COMMIT.
func (t Transaction) Commit() Transaction {
	t.commit = true
	return t
}

// End renders END (Postgres, SQLite).
func (t Transaction) End() Transaction {
	t.end = true
	return t
}

// Kind returns KindTransaction.
func (t Transaction) Kind() Kind { return KindTransaction }

// String renders the statement on one line.
func (t Transaction) String() string { return t.Render(format.OneLine) }

// Pretty renders the statement over multiple lines.
func (t Transaction) Pretty() string { return t.Render(format.MultiLine) }

// Format implements fmt.Formatter. %+v renders multi-line output.
func (t Transaction) Format(st fmt.State, verb rune) { formatStatement(t, st, verb) }

// Print writes the one-line rendering to stdout and returns the statement unchanged.
func (t Transaction) Print() Transaction {
	printStatement(t)
	return t
}

// Debug writes the multi-line rendering to stdout, between banner rules, and returns the
// statement unchanged.
func (t Transaction) Debug() Transaction {
	debugStatement(t)
	return t
}

// Render renders the statement with f.
func (t Transaction) Render(f format.Formatter) string {
	return assemble(t.raw, sequenceFor(transactionSequences, t.dialect), f, func(c TransactionClause, query string) string {
		return t.splices.Inject(c, query, t.clause(c, f), f)
	})
}

func (t Transaction) clause(c TransactionClause, f format.Formatter) string {
	switch c {
	case TransactionBegin:
		return t.begin.render("BEGIN", f)
	case TransactionStartTransaction:
		return t.start.render("START TRANSACTION", f)
	case TransactionSetTransaction:
		if t.set.Empty() {
			return ""
		}

		return "SET TRANSACTION" + f.Space + t.set.Join(f.Comma) + ";" + f.End()
	case TransactionCommands:
		var b strings.Builder
		for _, stmt := range t.commands.Items() {
			if sql := stmt.Render(f); sql != "" {
				b.WriteString(sql + ";" + f.End())
			}
		}

		return b.String()
	case TransactionCommit:
		return flag("COMMIT;", t.commit, f)
	case TransactionEnd:
		return flag("END;", t.end, f)
	default:
		return ""
	}
}

// command is a literal transaction control statement such as SAVEPOINT.
type command string

func (c command) Kind() Kind { return KindTransaction }

func (c command) String() string { return string(c) }

func (c command) Pretty() string { return string(c) }

func (c command) Render(format.Formatter) string { return string(c) }
