// SQLite backend, over database/sql and modernc.org/sqlite (pure go).
package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"strings"

	kdb "github.com/opst/extlite/pkg/db"
	xe "github.com/opst/extlite/pkg/errors"
	"modernc.org/sqlite"
	sqlite3 "modernc.org/sqlite/lib"
)

const Driver = "sqlite"

type database struct {
	db   *sql.DB
	exec *executor
}

// New opens a SQLite database.
//
// # Args
//
// - ctx: context for the first ping.
//
// - dsn: file path or URI, like "extlite.db" or "file:extlite.db?_pragma=foreign_keys(1)".
// ":memory:" opens a private in-memory database; then the connection pool is limited to
// a single connection, because each connection would see its own database.
func New(ctx context.Context, dsn string) (kdb.Database, error) {
	db, err := sql.Open(Driver, dsn)
	if err != nil {
		return nil, xe.Wrap(err)
	}
	if strings.Contains(dsn, ":memory:") || strings.Contains(dsn, "mode=memory") {
		db.SetMaxOpenConns(1)
	}
	if err := db.PingContext(ctx); err != nil {
		db.Close()
		return nil, xe.Wrap(err)
	}
	return &database{db: db, exec: &executor{db: db}}, nil
}

func (d *database) Driver() string {
	return Driver
}

func (d *database) Executor() kdb.Executor {
	return d.exec
}

func (d *database) Ping(ctx context.Context) error {
	return d.db.PingContext(ctx)
}

func (d *database) Close() error {
	return d.db.Close()
}

type executor struct {
	db *sql.DB
}

var _ kdb.Executor = &executor{}

func (e *executor) Query(ctx context.Context, query string, args ...any) (kdb.Rows, error) {
	rows, err := e.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	return newRows(rows)
}

func (e *executor) Exec(ctx context.Context, query string, args ...any) (int64, error) {
	res, err := e.db.ExecContext(ctx, query, args...)
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (e *executor) Placeholder(int) string {
	return "?"
}

func (e *executor) Classify(err error) error {
	return classify(err)
}

func classify(err error) error {
	var serr *sqlite.Error
	if !errors.As(err, &serr) {
		return err
	}
	switch serr.Code() {
	case sqlite3.SQLITE_CONSTRAINT_UNIQUE,
		sqlite3.SQLITE_CONSTRAINT_PRIMARYKEY,
		sqlite3.SQLITE_CONSTRAINT_FOREIGNKEY:
		return kdb.Conflict{Cause: err}
	}
	return err
}

// sql.Rows as kdb.Rows
type sqlRows struct {
	base    *sql.Rows
	columns []kdb.Column
}

func newRows(rows *sql.Rows) (*sqlRows, error) {
	types, err := rows.ColumnTypes()
	if err != nil {
		rows.Close()
		return nil, err
	}
	cols := make([]kdb.Column, len(types))
	for nth, ct := range types {
		cols[nth] = kdb.Column{Name: ct.Name(), Type: ct.DatabaseTypeName()}
	}
	return &sqlRows{base: rows, columns: cols}, nil
}

func (r *sqlRows) Columns() []kdb.Column {
	return r.columns
}

func (r *sqlRows) Next() bool {
	return r.base.Next()
}

func (r *sqlRows) Scan(dest ...any) error {
	return r.base.Scan(dest...)
}

func (r *sqlRows) Err() error {
	return r.base.Err()
}

func (r *sqlRows) Close() {
	r.base.Close()
}
