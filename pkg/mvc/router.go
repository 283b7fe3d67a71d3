package mvc

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"path"
	"strings"
	"sync"

	"github.com/labstack/echo/v4"
	xe "github.com/opst/extlite/pkg/errors"
)

var (
	// ErrInvalidController is returned when a controller has no usable name.
	ErrInvalidController = errors.New("invalid controller")

	// ErrDuplicateController is returned when a name is registered twice.
	ErrDuplicateController = errors.New("controller is already registered")
)

// Route is an entry of dispatch table.
type Route struct {
	Controller string
	Action     Action
	Methods    []string
	Path       string
	View       string
}

// Router mounts controllers onto an echo server.
type Router struct {
	e      *echo.Echo
	prefix string
	opts   []Option
	conf   Config

	mux         sync.Mutex
	controllers []string
}

// NewRouter creates Router mounting controllers under prefix.
//
// options are applied to all controllers registered to the Router.
func NewRouter(e *echo.Echo, prefix string, options ...Option) *Router {
	prefix = path.Clean("/" + prefix)
	if prefix == "/" {
		prefix = ""
	}
	return &Router{
		e:      e,
		prefix: prefix,
		opts:   options,
		conf:   configure(options...),
	}
}

// Register mounts ctrl at "<prefix>/<name>/*" for GET and POST.
//
// If ctrl implements Initializer, its Init is called before mounting.
// When it fails, ctrl is not mounted.
func (r *Router) Register(ctx context.Context, ctrl Controller) error {
	name := ctrl.Name()
	if name == "" || strings.ContainsAny(name, "/*:?#") {
		return fmt.Errorf("%w: name %q", ErrInvalidController, name)
	}

	r.mux.Lock()
	defer r.mux.Unlock()

	for _, c := range r.controllers {
		if c == name {
			return fmt.Errorf("%w: %s", ErrDuplicateController, name)
		}
	}

	if i, ok := ctrl.(Initializer); ok {
		if err := i.Init(ctx); err != nil {
			return xe.WrapWithNote("controller "+name, err)
		}
	}

	r.e.Match(
		[]string{http.MethodGet, http.MethodPost},
		r.prefix+"/"+name+"/*",
		Dispatch(ctrl, r.opts...),
	)
	r.controllers = append(r.controllers, name)
	return nil
}

// Routes lists the dispatch table, in the order of registration.
func (r *Router) Routes() []Route {
	r.mux.Lock()
	defer r.mux.Unlock()

	routes := make([]Route, 0, len(r.controllers)*len(Actions()))
	for _, name := range r.controllers {
		for _, a := range Actions() {
			routes = append(routes, Route{
				Controller: name,
				Action:     a,
				Methods:    []string{http.MethodGet, http.MethodPost},
				Path:       r.prefix + "/" + name + "/" + string(a),
				View:       r.conf.Resolver.Path(name, string(a)),
			})
		}
	}
	return routes
}
