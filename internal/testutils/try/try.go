// helpers to unwrap (value, error) pairs in tests.
//
//	got := try.To(dao.Find(ctx)).OrFatal(t)
package try

// something have method `Fatal`.
//
// For example in standard libraries: *testing.T, log.Logger
type Fataler interface {
	Fatal(...any)
}

// a pair of (T, error).
type Either[T any] struct {
	value T
	err   error
}

func To[T any](value T, err error) Either[T] {
	return Either[T]{value: value, err: err}
}

func (e Either[T]) Get() (T, error) {
	if e.err != nil {
		return *new(T), e.err
	}
	return e.value, nil
}

// OrFatal returns the value when no error.
//
// Otherwise, it calls ftl.Fatal(err).
// If ftl has "Helper()" method (like *testing.T), also that is called before `Fatal`.
func (e Either[T]) OrFatal(ftl Fataler) T {
	if e.err == nil {
		return e.value
	}
	if hlp, ok := ftl.(interface{ Helper() }); ok {
		hlp.Helper()
	}
	ftl.Fatal(e.err)
	return *new(T)
}

func (e Either[T]) OrDefault(d T) T {
	if e.err != nil {
		return d
	}
	return e.value
}
