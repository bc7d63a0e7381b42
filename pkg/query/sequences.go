package query

import "github.com/pseudomuto/sqlfluent/pkg/dialect"

var (
	_ Statement = Select{}
	_ Statement = Insert{}
	_ Statement = Update{}
	_ Statement = Delete{}
	_ Statement = CreateTable{}
	_ Statement = AlterTable{}
	_ Statement = DropTable{}
	_ Statement = CreateIndex{}
	_ Statement = DropIndex{}
	_ Statement = Values{}
	_ Statement = Transaction{}
)

// Sequences returns the clause names of every statement kind, in the order they are
// rendered for d. Clauses missing from a sequence are never rendered for that dialect.
func Sequences(d dialect.Dialect) map[Kind][]string {
	return map[Kind][]string{
		KindSelect:      names(sequenceFor(selectSequences, d)),
		KindInsert:      names(sequenceFor(insertSequences, d)),
		KindUpdate:      names(sequenceFor(updateSequences, d)),
		KindDelete:      names(sequenceFor(deleteSequences, d)),
		KindCreateTable: names(sequenceFor(createTableSequences, d)),
		KindAlterTable:  names(sequenceFor(alterTableSequences, d)),
		KindDropTable:   names(sequenceFor(dropTableSequences, d)),
		KindCreateIndex: names(sequenceFor(createIndexSequences, d)),
		KindDropIndex:   names(sequenceFor(dropIndexSequences, d)),
		KindValues:      names(sequenceFor(valuesSequences, d)),
		KindTransaction: names(sequenceFor(transactionSequences, d)),
	}
}
