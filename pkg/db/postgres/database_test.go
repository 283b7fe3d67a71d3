package postgres

import (
	"errors"
	"testing"

	"github.com/jackc/pgconn"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgtype"
	kdb "github.com/opst/extlite/pkg/db"
)

func TestClassify(t *testing.T) {
	t.Run("unique violation is a conflict", func(t *testing.T) {
		pgerr := &pgconn.PgError{Code: pgerrcode.UniqueViolation, ConstraintName: "notes_title_key"}
		err := classify(pgerr)

		if !errors.Is(err, kdb.ErrConflict) {
			t.Fatalf("not a conflict: %v", err)
		}
		var c kdb.Conflict
		if !errors.As(err, &c) || c.Constraint != "notes_title_key" {
			t.Errorf("unexpected conflict: %+v", c)
		}
	})

	t.Run("other errors are passed through", func(t *testing.T) {
		pgerr := &pgconn.PgError{Code: pgerrcode.UndefinedTable}
		if err := classify(pgerr); err != error(pgerr) {
			t.Errorf("error is changed: %v", err)
		}

		plain := errors.New("plain")
		if err := classify(plain); err != plain {
			t.Errorf("error is changed: %v", err)
		}
	})
}

func TestPlaceholder(t *testing.T) {
	e := &executor{}
	if got := e.Placeholder(3); got != "$3" {
		t.Errorf("Placeholder(3) = %s", got)
	}
}

func TestPgOID2String(t *testing.T) {
	if got := pgOID2String(pgtype.Int8OID); got != "int8" {
		t.Errorf("int8: %s", got)
	}
	if got := pgOID2String(pgtype.TimestamptzOID); got != "timestamptz" {
		t.Errorf("timestamptz: %s", got)
	}
	if got := pgOID2String(0); got != "undefined oid(0)" {
		t.Errorf("unknown: %s", got)
	}
}
