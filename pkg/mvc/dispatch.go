package mvc

import (
	"time"

	"github.com/labstack/echo/v4"
)

// DefaultResponse is the body for requests to unknown actions.
const DefaultResponse = "query By Default"

// Dispatch creates a handler which dispatches requests to actions of ctrl.
//
// The action is chosen by the last segment of the request path.
//
// Responses are "text/html; charset=UTF-8" unless the action writes one with its own type.
func Dispatch(ctrl Controller, options ...Option) echo.HandlerFunc {
	conf := configure(options...)
	name := ctrl.Name()

	return func(ec echo.Context) error {
		begin := time.Now()
		resp := ec.Response()
		resp.Before(func() {
			if resp.Header().Get(echo.HeaderContentType) == "" {
				resp.Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
			}
		})

		c := newContext(ec, name, LastSegment(ec.Request().URL.Path), conf.Binder)
		label := "-"
		if _, ok := ParseAction(c.action); ok {
			label = c.action
		}

		outcome, err := dispatch(c, ctrl, conf.Resolver)
		conf.Observer.Observe(name, label, outcome, time.Since(begin))
		return err
	}
}

func dispatch(c *Context, ctrl Controller, resolver Resolver) (Outcome, error) {
	action, ok := ParseAction(c.action)
	if !ok {
		c.echo.Response().Header().Set(echo.HeaderContentType, echo.MIMETextHTMLCharsetUTF8)
		if err := c.echo.String(c.status, DefaultResponse); err != nil {
			return OutcomeError, err
		}
		return OutcomeDefault, nil
	}

	if err := hookFor(ctrl, action)(c); err != nil {
		return OutcomeError, err
	}

	forward, view := c.forwarding()
	if !forward {
		return OutcomeWritten, nil
	}
	if c.echo.Response().Committed {
		c.echo.Logger().Warnf(
			"%s/%s: forward to %s is ignored. response is already written",
			c.controller, c.action, view,
		)
		return OutcomeWritten, nil
	}

	if err := c.echo.Render(c.status, resolver.Path(c.controller, view), c.Model()); err != nil {
		return OutcomeError, err
	}
	return OutcomeForward, nil
}
