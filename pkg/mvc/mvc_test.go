package mvc_test

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opst/extlite/pkg/mvc"
)

// controller is a Controller for tests.
type controller struct {
	name string
	Impl struct {
		Init  func(ctx context.Context) error
		Hooks map[mvc.Action]func(c *mvc.Context) error
	}
	Calls struct {
		Init  int
		Hooks []mvc.Action
	}
}

func newController(name string) *controller {
	c := &controller{name: name}
	c.Impl.Hooks = map[mvc.Action]func(c *mvc.Context) error{}
	return c
}

func (c *controller) call(a mvc.Action, ctx *mvc.Context) error {
	c.Calls.Hooks = append(c.Calls.Hooks, a)
	if h, ok := c.Impl.Hooks[a]; ok {
		return h(ctx)
	}
	return nil
}

func (c *controller) Name() string                 { return c.name }
func (c *controller) Index(ctx *mvc.Context) error  { return c.call(mvc.Index, ctx) }
func (c *controller) Add(ctx *mvc.Context) error    { return c.call(mvc.Add, ctx) }
func (c *controller) Create(ctx *mvc.Context) error { return c.call(mvc.Create, ctx) }
func (c *controller) Edit(ctx *mvc.Context) error   { return c.call(mvc.Edit, ctx) }
func (c *controller) Save(ctx *mvc.Context) error   { return c.call(mvc.Save, ctx) }
func (c *controller) Delete(ctx *mvc.Context) error { return c.call(mvc.Delete, ctx) }
func (c *controller) Detail(ctx *mvc.Context) error { return c.call(mvc.Detail, ctx) }

// initController is a controller with Init.
type initController struct {
	*controller
}

func (c initController) Init(ctx context.Context) error {
	c.Calls.Init += 1
	if c.Impl.Init == nil {
		return nil
	}
	return c.Impl.Init(ctx)
}

type rendered struct {
	Name string
	Data map[string]any
}

// renderer records templates to be rendered.
type renderer struct {
	Calls []rendered
	Err   error
}

func (r *renderer) Render(w io.Writer, name string, data any, _ echo.Context) error {
	m, _ := data.(map[string]any)
	r.Calls = append(r.Calls, rendered{Name: name, Data: m})
	if r.Err != nil {
		return r.Err
	}
	_, err := fmt.Fprintf(w, "<p>%s</p>", name)
	return err
}

type observed struct {
	Controller string
	Action     string
	Outcome    mvc.Outcome
}

type observer struct {
	mux   sync.Mutex
	Calls []observed
}

func (o *observer) Observe(controller string, action string, outcome mvc.Outcome, elapsed time.Duration) {
	o.mux.Lock()
	defer o.mux.Unlock()
	o.Calls = append(o.Calls, observed{Controller: controller, Action: action, Outcome: outcome})
}
