package db

import (
	"errors"
	"fmt"
)

var (
	// requested record is not found.
	ErrMissing = errors.New("missing")

	// record conflicts with another record (unique or primary key constraint).
	ErrConflict = errors.New("conflict")
)

// requested record is missing.
type Missing struct {
	Table string
	Key   string
}

var _ error = Missing{}

func (m Missing) Error() string {
	return fmt.Sprintf("%s is not found in %s", m.Key, m.Table)
}

func (m Missing) Unwrap() error {
	return ErrMissing
}

// record violates a constraint.
type Conflict struct {
	// name of the violated constraint, if known.
	Constraint string
	Cause      error
}

var _ error = Conflict{}

func (c Conflict) Error() string {
	if c.Constraint == "" {
		return fmt.Sprintf("conflict: %s", c.Cause)
	}
	return fmt.Sprintf("conflict on %s: %s", c.Constraint, c.Cause)
}

func (c Conflict) Unwrap() []error {
	return []error{ErrConflict, c.Cause}
}
