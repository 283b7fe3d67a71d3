package db

import "context"

// Model is a record type which is stored in a table.
//
// Implement it on the value receiver, so both T and *T are Models.
//
//	type Note struct {
//		Id    int64  `sql:"id"`
//		Title string `sql:"title"`
//	}
//
//	func (Note) TableName() string { return "notes" }
//	func (Note) KeyColumn() string { return "id" }
type Model interface {
	// name of the table where records are stored.
	TableName() string

	// name of the primary key column.
	KeyColumn() string
}

// DAO is a data access object for a Model.
type DAO[T Model] interface {
	// Find returns all records in the order of the key.
	Find(ctx context.Context) ([]T, error)

	// Get returns the record for the key.
	//
	// # Returns
	//
	// - T: found record
	//
	// - error: ErrMissing (wrapped) when no record has the key.
	Get(ctx context.Context, key any) (T, error)

	// Create inserts a new record.
	//
	// When the key field of record is its zero value, the key column is left to the database
	// (serial, autoincrement, ...). After insertion, record is overwritten with the stored row.
	//
	// # Returns
	//
	// - error: ErrConflict (wrapped) when the record violates a unique constraint.
	Create(ctx context.Context, record *T) error

	// Update overwrites the record which has the same key as record.
	//
	// # Returns
	//
	// - error: ErrMissing (wrapped) when no record has the key, or
	// ErrConflict (wrapped) when it violates a unique constraint.
	Update(ctx context.Context, record T) error

	// Delete removes the record for the key.
	//
	// # Returns
	//
	// - error: ErrMissing (wrapped) when no record has the key.
	Delete(ctx context.Context, key any) error
}

// Column describes a column in a result set.
type Column struct {
	Name string

	// type name in the database, like "int8" or "TEXT". Used in messages only.
	Type string
}

// Rows is a result set of a query.
type Rows interface {
	Columns() []Column
	Next() bool
	Scan(dest ...any) error
	Err() error
	Close()
}

// Executor sends SQL to a database.
//
// It hides the difference between drivers from DAOs.
type Executor interface {
	// send a query which returns rows.
	Query(ctx context.Context, sql string, args ...any) (Rows, error)

	// send a command, and returns the number of affected rows.
	Exec(ctx context.Context, sql string, args ...any) (int64, error)

	// Placeholder returns the n-th (1-origin) bind parameter notation of the driver.
	Placeholder(nth int) string

	// Classify converts a driver specific error into an error of this package
	// (ErrConflict, ...), if possible. Otherwise, it returns err as is.
	Classify(err error) error
}

// Database is a connection to a database.
type Database interface {
	// driver name, "postgres" or "sqlite".
	Driver() string

	Executor() Executor

	Ping(ctx context.Context) error

	Close() error
}
