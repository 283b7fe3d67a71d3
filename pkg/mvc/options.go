package mvc

import (
	"net/url"

	"github.com/opst/extlite/pkg/mvc/bind"
)

// Binder populates a bean from request parameters.
type Binder interface {
	Bind(bean any, params url.Values) error
}

// BinderFunc is a function as Binder.
type BinderFunc func(bean any, params url.Values) error

func (f BinderFunc) Bind(bean any, params url.Values) error {
	return f(bean, params)
}

type Config struct {
	Resolver Resolver
	Binder   Binder
	Observer Observer
}

func DefaultConfig() Config {
	return Config{
		Resolver: DefaultResolver(),
		Binder:   BinderFunc(bind.Populate),
		Observer: nopObserver{},
	}
}

type Option func(*Config) *Config

// WithResolver sets the template path resolver.
func WithResolver(r Resolver) Option {
	return func(c *Config) *Config {
		c.Resolver = r
		return c
	}
}

// WithBinder replaces the binder used by Context.Bind.
func WithBinder(b Binder) Option {
	return func(c *Config) *Config {
		if b != nil {
			c.Binder = b
		}
		return c
	}
}

// WithObserver sets the observer of dispatches.
func WithObserver(o Observer) Option {
	return func(c *Config) *Config {
		if o != nil {
			c.Observer = o
		}
		return c
	}
}

func configure(options ...Option) Config {
	c := DefaultConfig()
	for _, opt := range options {
		c = *opt(&c)
	}
	return c
}
