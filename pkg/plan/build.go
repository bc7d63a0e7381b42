package plan

import (
	"maps"
	"slices"

	"github.com/pkg/errors"
	"github.com/pseudomuto/sqlfluent/pkg/dialect"
	"github.com/pseudomuto/sqlfluent/pkg/query"
)

// Build converts doc into a statement rendered for d, unless the document selects its
// own dialect. Nested documents inherit the dialect of their parent.
func Build(doc *Document, d dialect.Dialect) (query.Statement, error) {
	return build(doc, d, "")
}

// build converts doc. fallback is the kind assumed when the document does not name one.
func build(doc *Document, d dialect.Dialect, fallback string) (query.Statement, error) {
	if doc == nil {
		return nil, errors.New("empty statement")
	}

	if doc.Dialect != nil {
		d = *doc.Dialect
	}

	name := doc.Kind
	if name == "" {
		name = fallback
	}

	if name == "" {
		return nil, errors.New("missing statement kind")
	}

	kind, err := query.ParseKind(name)
	if err != nil {
		return nil, err
	}

	switch kind {
	case query.KindSelect:
		return buildSelect(doc, d)
	case query.KindInsert:
		return buildInsert(doc, d)
	case query.KindUpdate:
		return buildUpdate(doc, d)
	case query.KindDelete:
		return buildDelete(doc, d)
	case query.KindCreateTable:
		return buildCreateTable(doc, d)
	case query.KindAlterTable:
		return buildAlterTable(doc, d)
	case query.KindDropTable:
		return buildDropTable(doc, d)
	case query.KindCreateIndex:
		return buildCreateIndex(doc, d)
	case query.KindDropIndex:
		return buildDropIndex(doc, d)
	case query.KindValues:
		return buildValues(doc, d)
	default:
		return buildTransaction(doc, d)
	}
}

// splicer is implemented by every statement builder.
type splicer[S any, C any] interface {
	Raw(sql string) S
	RawBefore(c C, sql string) S
	RawAfter(c C, sql string) S
}

// raw applies the raw prefix and the raw splices of doc to stmt. Clause names are
// resolved against the clause identifiers of the statement kind.
func raw[C query.ClauseID[C], S splicer[S, C]](stmt S, doc *Document) (S, error) {
	for _, sql := range doc.Raw {
		stmt = stmt.Raw(sql)
	}

	for _, name := range slices.Sorted(maps.Keys(doc.RawBefore)) {
		c, err := query.ParseClause[C](name)
		if err != nil {
			return stmt, errors.Wrap(err, "raw_before")
		}

		stmt = stmt.RawBefore(c, doc.RawBefore[name])
	}

	for _, name := range slices.Sorted(maps.Keys(doc.RawAfter)) {
		c, err := query.ParseClause[C](name)
		if err != nil {
			return stmt, errors.Wrap(err, "raw_after")
		}

		stmt = stmt.RawAfter(c, doc.RawAfter[name])
	}

	return stmt, nil
}

// fold applies a single value setter to every value.
func fold[S any](stmt S, values []string, set func(S, string) S) S {
	for _, v := range values {
		stmt = set(stmt, v)
	}

	return stmt
}

// binder is implemented by the statements supporting WITH.
type binder[S any] interface {
	With(name string, stmt query.Statement) S
}

func bind[S binder[S]](stmt S, doc *Document, d dialect.Dialect) (S, error) {
	for _, b := range doc.With {
		child, err := build(b.Statement, d, query.KindSelect.String())
		if err != nil {
			return stmt, errors.Wrapf(err, "with %s", b.Name)
		}

		stmt = stmt.With(b.Name, child)
	}

	return stmt, nil
}

// selects builds documents that must describe SELECT statements, e.g. UNION operands.
func selects(docs []*Document, d dialect.Dialect, clause string) ([]query.Select, error) {
	out := make([]query.Select, 0, len(docs))
	for i, doc := range docs {
		if doc == nil {
			return nil, errors.Errorf("%s %d: empty statement", clause, i+1)
		}

		if doc.Kind != "" && doc.Kind != query.KindSelect.String() {
			return nil, errors.Errorf("%s %d: expected a select statement, got %s", clause, i+1, doc.Kind)
		}

		child := d
		if doc.Dialect != nil {
			child = *doc.Dialect
		}

		s, err := buildSelect(doc, child)
		if err != nil {
			return nil, errors.Wrapf(err, "%s %d", clause, i+1)
		}

		out = append(out, s)
	}

	return out, nil
}

func buildSelect(doc *Document, d dialect.Dialect) (query.Select, error) {
	s, err := bind(query.NewSelect().Dialect(d), doc, d)
	if err != nil {
		return s, err
	}

	s = s.Select(doc.Select...).From(doc.From...).Partition(doc.Partition...)
	s = fold(s, doc.Join, query.Select.Join)
	s = fold(s, doc.Where, query.Select.Where)
	s = fold(s, doc.WhereOr, query.Select.WhereOr)
	s = s.GroupBy(doc.GroupBy...)
	s = fold(s, doc.Having, query.Select.Having)
	s = fold(s, doc.Window, query.Select.Window)
	s = s.OrderBy(doc.OrderBy...).Limit(doc.Limit).Offset(doc.Offset)

	combinators := []struct {
		name string
		docs []*Document
		add  func(query.Select, query.Select) query.Select
	}{
		{"except", doc.Except, query.Select.Except},
		{"intersect", doc.Intersect, query.Select.Intersect},
		{"union", doc.Union, query.Select.Union},
	}

	for _, c := range combinators {
		operands, err := selects(c.docs, d, c.name)
		if err != nil {
			return s, err
		}

		for _, op := range operands {
			s = c.add(s, op)
		}
	}

	return raw[query.SelectClause](s, doc)
}

func buildInsert(doc *Document, d dialect.Dialect) (query.Insert, error) {
	i, err := bind(query.NewInsert().Dialect(d), doc, d)
	if err != nil {
		return i, err
	}

	if doc.InsertInto != "" {
		i = i.InsertInto(doc.InsertInto)
	}

	if doc.InsertOr != "" {
		i = i.InsertOr(doc.InsertOr)
	}

	if doc.ReplaceInto != "" {
		i = i.ReplaceInto(doc.ReplaceInto)
	}

	i = i.Partition(doc.Partition...).Column(doc.Column...).Overriding(doc.Overriding)
	if doc.DefaultValues {
		i = i.DefaultValues()
	}

	i = i.Values(doc.Values...).Set(doc.Set...)
	if doc.Query != nil {
		src, err := selects([]*Document{doc.Query}, d, "query")
		if err != nil {
			return i, err
		}

		i = i.Select(src[0])
	}

	i = i.OnConflict(doc.OnConflict).OnDuplicateKeyUpdate(doc.OnDuplicateKeyUpdate...).Returning(doc.Returning...)
	return raw[query.InsertClause](i, doc)
}

func buildUpdate(doc *Document, d dialect.Dialect) (query.Update, error) {
	u, err := bind(query.NewUpdate().Dialect(d), doc, d)
	if err != nil {
		return u, err
	}

	if doc.Update != "" {
		u = u.Update(doc.Update)
	}

	if doc.UpdateOr != "" {
		u = u.UpdateOr(doc.UpdateOr)
	}

	u = fold(u, doc.Join, query.Update.Join)
	u = u.Set(doc.Set...).From(doc.From...)
	u = fold(u, doc.Where, query.Update.Where)
	u = fold(u, doc.WhereOr, query.Update.WhereOr)
	u = u.Returning(doc.Returning...).OrderBy(doc.OrderBy...).Limit(doc.Limit)
	return raw[query.UpdateClause](u, doc)
}

func buildDelete(doc *Document, d dialect.Dialect) (query.Delete, error) {
	del, err := bind(query.NewDelete().Dialect(d), doc, d)
	if err != nil {
		return del, err
	}

	del = del.DeleteFrom(doc.DeleteFrom).Partition(doc.Partition...).Using(doc.Using...)
	del = fold(del, doc.Where, query.Delete.Where)
	del = fold(del, doc.WhereOr, query.Delete.WhereOr)
	del = del.Returning(doc.Returning...).OrderBy(doc.OrderBy...).Limit(doc.Limit)
	return raw[query.DeleteClause](del, doc)
}

func buildCreateTable(doc *Document, d dialect.Dialect) (query.CreateTable, error) {
	t := query.NewCreateTable().Dialect(d)
	if doc.CreateTable != "" {
		t = t.CreateTable(doc.CreateTable)
	}

	if doc.CreateTableIfNotExists != "" {
		t = t.CreateTableIfNotExists(doc.CreateTableIfNotExists)
	}

	t = fold(t, doc.Column, query.CreateTable.Column)
	t = t.PrimaryKey(doc.PrimaryKey...)
	t = fold(t, doc.Constraint, query.CreateTable.Constraint)
	t = fold(t, doc.ForeignKey, query.CreateTable.ForeignKey)
	return raw[query.CreateTableClause](t, doc)
}

func buildAlterTable(doc *Document, d dialect.Dialect) (query.AlterTable, error) {
	a := query.NewAlterTable().Dialect(d).AlterTable(doc.AlterTable)
	for i, action := range doc.Actions {
		set := 0
		for _, v := range []string{action.Add, action.Drop, action.Alter, action.Rename} {
			if v != "" {
				set++
			}
		}

		if set != 1 {
			return a, errors.Errorf("action %d: exactly one of add, drop, alter or rename must be set", i+1)
		}

		a = a.Add(action.Add).Drop(action.Drop).Alter(action.Alter).Rename(action.Rename)
	}

	return raw[query.AlterTableClause](a, doc)
}

func buildDropTable(doc *Document, d dialect.Dialect) (query.DropTable, error) {
	t := query.NewDropTable().Dialect(d).DropTable(doc.DropTable...)
	if len(doc.DropTableIfExists) > 0 {
		t = t.DropTableIfExists(doc.DropTableIfExists...)
	}

	if doc.Cascade {
		t = t.Cascade()
	}

	if doc.Restrict {
		t = t.Restrict()
	}

	return raw[query.DropTableClause](t, doc)
}

func buildCreateIndex(doc *Document, d dialect.Dialect) (query.CreateIndex, error) {
	i := query.NewCreateIndex().Dialect(d).CreateIndex(doc.CreateIndex).On(doc.On).Using(doc.Using.Last())
	if doc.Unique {
		i = i.Unique()
	}

	if doc.Concurrently {
		i = i.Concurrently()
	}

	if doc.IfNotExists {
		i = i.IfNotExists()
	}

	if doc.Only {
		i = i.Only()
	}

	i = i.Column(doc.Column...).Include(doc.Include...)
	i = fold(i, doc.Where, query.CreateIndex.Where)
	return raw[query.CreateIndexClause](i, doc)
}

func buildDropIndex(doc *Document, d dialect.Dialect) (query.DropIndex, error) {
	i := query.NewDropIndex().Dialect(d).DropIndex(doc.DropIndex...).On(doc.On)
	if doc.IfExists {
		i = i.IfExists()
	}

	if doc.Concurrently {
		i = i.Concurrently()
	}

	return raw[query.DropIndexClause](i, doc)
}

func buildValues(doc *Document, d dialect.Dialect) (query.Values, error) {
	v := query.NewValues().Dialect(d).Values(doc.Values...).OrderBy(doc.OrderBy...).Limit(doc.Limit).Offset(doc.Offset)
	return raw[query.ValuesClause](v, doc)
}

func buildTransaction(doc *Document, d dialect.Dialect) (query.Transaction, error) {
	t := query.NewTransaction().Dialect(d)
	if doc.Begin.Set {
		t = t.Begin(doc.Begin.Values...)
	}

	if doc.StartTransaction.Set {
		t = t.StartTransaction(doc.StartTransaction.Values...)
	}

	t = t.SetTransaction(doc.SetTransaction...)
	for i, cmd := range doc.Commands {
		if cmd != nil && cmd.control() {
			t = control(t, cmd)
			continue
		}

		stmt, err := build(cmd, d, "")
		if err != nil {
			return t, errors.Wrapf(err, "command %d", i+1)
		}

		t = t.Command(stmt)
	}

	if doc.Commit {
		t = t.Commit()
	}

	if doc.End {
		t = t.End()
	}

	return raw[query.TransactionClause](t, doc)
}

func control(t query.Transaction, cmd *Document) query.Transaction {
	if cmd.Savepoint != "" {
		t = t.Savepoint(cmd.Savepoint)
	}

	if cmd.ReleaseSavepoint != "" {
		t = t.ReleaseSavepoint(cmd.ReleaseSavepoint)
	}

	if cmd.Rollback.Set {
		t = t.Rollback(cmd.Rollback.Values...)
	}

	return t
}
