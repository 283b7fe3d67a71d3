package table

import (
	"context"
	"errors"
	"fmt"
	"reflect"

	kdb "github.com/opst/extlite/pkg/db"
	xe "github.com/opst/extlite/pkg/errors"
)

type dao[T kdb.Model] struct {
	exec  kdb.Executor
	meta  *meta
	stmts statements
}

// New creates a DAO for T over exec.
//
// # Returns
//
// - kdb.DAO[T]
//
// - error: when T can not be mapped to a table (not a struct, key column is not mapped, ...).
func New[T kdb.Model](exec kdb.Executor) (kdb.DAO[T], error) {
	m, err := newMeta[T]()
	if err != nil {
		return nil, err
	}
	return &dao[T]{
		exec:  exec,
		meta:  m,
		stmts: buildStatements(m, exec.Placeholder),
	}, nil
}

// Must is New which panics on error.
//
// Use it where a Model type is fixed at compile time, like in main.
func Must[T kdb.Model](exec kdb.Executor) kdb.DAO[T] {
	d, err := New[T](exec)
	if err != nil {
		panic(err)
	}
	return d
}

func (d *dao[T]) Find(ctx context.Context) ([]T, error) {
	return d.query(ctx, d.stmts.selectAll)
}

func (d *dao[T]) Get(ctx context.Context, key any) (T, error) {
	found, err := d.query(ctx, d.stmts.selectOne, key)
	if err != nil {
		return *new(T), err
	}
	if len(found) == 0 {
		return *new(T), xe.Wrap(kdb.Missing{Table: d.meta.table, Key: fmt.Sprint(key)})
	}
	return found[0], nil
}

func (d *dao[T]) Create(ctx context.Context, record *T) error {
	if record == nil {
		return xe.New("record is nil")
	}
	rv := reflect.ValueOf(record).Elem()

	stmt := d.stmts.insertWithKey
	cols := d.meta.writable(true)
	if rv.Field(d.meta.key.field).IsZero() {
		stmt = d.stmts.insertWithoutKey
		cols = d.meta.writable(false)
	}

	stored, err := d.query(ctx, stmt, d.meta.values(rv, cols)...)
	if err != nil {
		return err
	}
	if len(stored) == 0 {
		return xe.Errorf("%s: insert returned no rows", d.meta.table)
	}
	*record = stored[0]
	return nil
}

func (d *dao[T]) Update(ctx context.Context, record T) error {
	nonKey := d.meta.writable(false)
	if len(nonKey) == 0 {
		return xe.Errorf("%s: nothing to update except key", d.meta.table)
	}
	rv := reflect.ValueOf(record)
	key := rv.Field(d.meta.key.field).Interface()
	args := append(d.meta.values(rv, nonKey), key)

	n, err := d.exec.Exec(ctx, d.stmts.update, args...)
	if err != nil {
		return xe.Wrap(d.exec.Classify(err))
	}
	if n == 0 {
		return xe.Wrap(kdb.Missing{Table: d.meta.table, Key: fmt.Sprint(key)})
	}
	return nil
}

func (d *dao[T]) Delete(ctx context.Context, key any) error {
	n, err := d.exec.Exec(ctx, d.stmts.delete, key)
	if err != nil {
		return xe.Wrap(d.exec.Classify(err))
	}
	if n == 0 {
		return xe.Wrap(kdb.Missing{Table: d.meta.table, Key: fmt.Sprint(key)})
	}
	return nil
}

func (d *dao[T]) query(ctx context.Context, stmt string, args ...any) ([]T, error) {
	rows, err := d.exec.Query(ctx, stmt, args...)
	if err != nil {
		return nil, xe.Wrap(d.exec.Classify(err))
	}
	defer rows.Close()

	ret, err := d.scanAll(rows)
	if err != nil {
		return nil, xe.Wrap(d.exec.Classify(err))
	}
	return ret, nil
}

var errUnmappedColumn = errors.New("column is not mapped")

func (d *dao[T]) scanAll(rows kdb.Rows) ([]T, error) {
	cols := rows.Columns()
	fields := make([]int, len(cols))
	for nth, c := range cols {
		f, ok := d.meta.fieldFor(c.Name)
		if !ok {
			return nil, fmt.Errorf(
				`%w: field for column "%s" is not found in type "%s"`,
				errUnmappedColumn, c.Name, d.meta.typ,
			)
		}
		fields[nth] = f
	}

	ret := []T{}
	for rows.Next() {
		elem := new(T)
		re := reflect.ValueOf(elem).Elem()

		ptrs := make([]any, len(fields))
		for nth, f := range fields {
			ptrs[nth] = re.Field(f).Addr().Interface()
		}
		if err := rows.Scan(ptrs...); err != nil {
			return nil, fmt.Errorf("scanning %s into %s: %w", describe(cols), d.meta.typ, err)
		}
		ret = append(ret, *elem)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return ret, nil
}

func describe(cols []kdb.Column) string {
	s := "("
	for nth, c := range cols {
		if nth != 0 {
			s += ", "
		}
		s += c.Name + " " + c.Type
	}
	return s + ")"
}
