// this package provide "mock" implementation of database for testing.
package mocks

import (
	"context"
	"errors"

	kdb "github.com/opst/extlite/pkg/db"
)

type CallLog[T any] []T

type DAO[T kdb.Model] struct {
	Impl struct {
		Find   func(context.Context) ([]T, error)
		Get    func(context.Context, any) (T, error)
		Create func(context.Context, *T) error
		Update func(context.Context, T) error
		Delete func(context.Context, any) error
	}
	Calls struct {
		Find   int
		Get    CallLog[any]
		Create CallLog[T]
		Update CallLog[T]
		Delete CallLog[any]
	}
}

func NewDAO[T kdb.Model]() *DAO[T] {
	return &DAO[T]{}
}

var errNotImplemented = errors.New("[MOCK] not implemented")

func (m *DAO[T]) Find(ctx context.Context) ([]T, error) {
	m.Calls.Find++
	if m.Impl.Find == nil {
		return nil, errNotImplemented
	}
	return m.Impl.Find(ctx)
}

func (m *DAO[T]) Get(ctx context.Context, key any) (T, error) {
	m.Calls.Get = append(m.Calls.Get, key)
	if m.Impl.Get == nil {
		return *new(T), errNotImplemented
	}
	return m.Impl.Get(ctx, key)
}

// Create records a copy of the record as passed.
func (m *DAO[T]) Create(ctx context.Context, record *T) error {
	m.Calls.Create = append(m.Calls.Create, *record)
	if m.Impl.Create == nil {
		return errNotImplemented
	}
	return m.Impl.Create(ctx, record)
}

func (m *DAO[T]) Update(ctx context.Context, record T) error {
	m.Calls.Update = append(m.Calls.Update, record)
	if m.Impl.Update == nil {
		return errNotImplemented
	}
	return m.Impl.Update(ctx, record)
}

func (m *DAO[T]) Delete(ctx context.Context, key any) error {
	m.Calls.Delete = append(m.Calls.Delete, key)
	if m.Impl.Delete == nil {
		return errNotImplemented
	}
	return m.Impl.Delete(ctx, key)
}
