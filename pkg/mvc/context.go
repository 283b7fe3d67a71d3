package mvc

import (
	"net/http"
	"net/url"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

// ForwardKey is the request attribute which flags a forward.
func ForwardKey(controller string) string {
	return controller + ".forward"
}

// TargetViewKey is the request attribute which names the view to be forwarded.
func TargetViewKey(controller string) string {
	return controller + ".targetView"
}

// Context is the state of a dispatch.
//
// It lives only during a request.
type Context struct {
	echo       echo.Context
	controller string
	action     string
	binder     Binder

	status int
	model  map[string]any
}

func newContext(ec echo.Context, controller string, action string, binder Binder) *Context {
	return &Context{
		echo:       ec,
		controller: controller,
		action:     action,
		binder:     binder,
		status:     http.StatusOK,
		model:      map[string]any{},
	}
}

// Echo returns the underlying echo.Context.
func (c *Context) Echo() echo.Context {
	return c.echo
}

func (c *Context) Request() *http.Request {
	return c.echo.Request()
}

// name of the controller handling this request.
func (c *Context) ControllerName() string {
	return c.controller
}

// name of the requested action, the last segment of the request path.
func (c *Context) Action() string {
	return c.action
}

// Param returns a value from the query string or the submitted form.
func (c *Context) Param(key string) string {
	return c.echo.FormValue(key)
}

// Params returns all values from the query string and the submitted form.
func (c *Context) Params() (url.Values, error) {
	return c.echo.FormParams()
}

// Attr returns a request attribute.
func (c *Context) Attr(key string) any {
	return c.echo.Get(key)
}

// Set stores a request attribute, which is also passed to the template.
func (c *Context) Set(key string, value any) {
	c.echo.Set(key, value)
	c.model[key] = value
}

// Model returns the attributes passed to the template.
//
// Besides attributes by Set, it has "Controller" and "Action" unless they are Set.
func (c *Context) Model() map[string]any {
	m := make(map[string]any, len(c.model)+2)
	m["Controller"] = c.controller
	m["Action"] = c.action
	for k, v := range c.model {
		m[k] = v
	}
	return m
}

// Bind populates bean with request parameters.
func (c *Context) Bind(bean any) error {
	params, err := c.Params()
	if err != nil {
		return err
	}
	return c.binder.Bind(bean, params)
}

// Forward requests rendering with the template named as the action.
func (c *Context) Forward() {
	c.ForwardTo(c.action)
}

// ForwardTo requests rendering with another template of this controller.
//
// view is a template name without extension.
func (c *Context) ForwardTo(view string) {
	c.echo.Set(ForwardKey(c.controller), true)
	c.echo.Set(TargetViewKey(c.controller), view)
}

// SetStatus sets the status code used when forwarding. default = 200
func (c *Context) SetStatus(code int) {
	c.status = code
}

// Redirect responds "303 See Other" to another action of this controller.
//
// It is visible to the client, unlike Forward.
func (c *Context) Redirect(action Action, query url.Values) error {
	to := path.Join(path.Dir(strings.TrimRight(c.echo.Request().URL.Path, "/")), string(action))
	if len(query) != 0 {
		to += "?" + query.Encode()
	}
	return c.echo.Redirect(http.StatusSeeOther, to)
}

// forwarding reads the forward flags.
//
// Attributes of wrong types are taken as absent.
func (c *Context) forwarding() (bool, string) {
	forward, _ := c.echo.Get(ForwardKey(c.controller)).(bool)
	if !forward {
		return false, ""
	}
	if view, _ := c.echo.Get(TargetViewKey(c.controller)).(string); view != "" {
		return true, view
	}
	return true, c.action
}
