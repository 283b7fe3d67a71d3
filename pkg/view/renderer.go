// Package view renders templates for forwarded requests.
package view

import (
	"context"
	"errors"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"
	"github.com/labstack/echo/v4"
	"github.com/opst/extlite/pkg/utils/filewatch"
)

// ErrViewMissing is returned when a template is not found.
var ErrViewMissing = errors.New("view is missing")

// Renderer is echo.Renderer of html/template.
//
// Template names given by Render are paths in its file system.
// Each template is parsed at the first use, and cached.
type Renderer struct {
	fsys  fs.FS
	funcs template.FuncMap

	mux   sync.RWMutex
	cache map[string]*template.Template
}

var _ echo.Renderer = &Renderer{}

type Option func(*Renderer) *Renderer

// WithFuncs adds functions available in templates.
func WithFuncs(funcs template.FuncMap) Option {
	return func(r *Renderer) *Renderer {
		for k, v := range funcs {
			r.funcs[k] = v
		}
		return r
	}
}

// New creates Renderer reading templates from fsys.
func New(fsys fs.FS, options ...Option) *Renderer {
	r := &Renderer{
		fsys:  fsys,
		funcs: template.FuncMap{},
		cache: map[string]*template.Template{},
	}
	for _, opt := range options {
		r = opt(r)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	tpl, err := r.lookup(name)
	if err != nil {
		return err
	}
	return tpl.Execute(w, data)
}

func (r *Renderer) lookup(name string) (*template.Template, error) {
	name = strings.TrimPrefix(path.Clean(name), "/")

	r.mux.RLock()
	tpl, ok := r.cache[name]
	r.mux.RUnlock()
	if ok {
		return tpl, nil
	}

	r.mux.Lock()
	defer r.mux.Unlock()
	if tpl, ok := r.cache[name]; ok {
		return tpl, nil
	}

	src, err := fs.ReadFile(r.fsys, name)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, fmt.Errorf("%w: %s", ErrViewMissing, name)
	} else if err != nil {
		return nil, err
	}

	tpl, err = template.New(path.Base(name)).Funcs(r.funcs).Parse(string(src))
	if err != nil {
		return nil, fmt.Errorf("%s: %w", name, err)
	}

	// shared parts, like "_layout.html", in the directory of the template and its parent.
	for _, dir := range commonDirs(name) {
		parts, err := fs.Glob(r.fsys, path.Join(dir, "_*"+path.Ext(name)))
		if err != nil {
			return nil, err
		}
		for _, p := range parts {
			src, err := fs.ReadFile(r.fsys, p)
			if err != nil {
				return nil, err
			}
			if _, err := tpl.New(path.Base(p)).Parse(string(src)); err != nil {
				return nil, fmt.Errorf("%s: %w", p, err)
			}
		}
	}

	r.cache[name] = tpl
	return tpl, nil
}

// commonDirs lists directories of shared parts of a template:
// the parent of its directory (views base) and its directory (controller).
func commonDirs(name string) []string {
	dir := path.Dir(name)
	if parent := path.Dir(dir); parent != dir {
		return []string{parent, dir}
	}
	return []string{dir}
}

// Invalidate forgets all cached templates.
func (r *Renderer) Invalidate() {
	r.mux.Lock()
	defer r.mux.Unlock()
	clear(r.cache)
}

// Watch invalidates cached templates whenever files under dir are changed, until ctx is done.
func (r *Renderer) Watch(ctx context.Context, dir string) error {
	return filewatch.Watch(ctx, func(fsnotify.Event) { r.Invalidate() }, dir)
}
