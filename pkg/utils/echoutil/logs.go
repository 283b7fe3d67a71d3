package echoutil

import (
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/gommon/log"
)

// LogHandlerFunc is a middleware logging requests and responses.
//
// Lines are tagged with the request id, when middleware.RequestID runs before.
func LogHandlerFunc(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		meth := c.Request().Method
		path := c.Request().URL
		rid := c.Response().Header().Get(echo.HeaderXRequestID)
		if rid == "" {
			rid = "-"
		}

		BEGIN := time.Now()
		c.Logger().Infof("< request [%s] %s %s", rid, meth, path)

		err := next(c)

		c.Logger().Infof(
			"> response [%s] status = %d (for %s %s) in %v / error = %+v",
			rid, c.Response().Status, meth, path, time.Since(BEGIN), err,
		)
		return err
	}
}

// SetLevel sets log level of e.
//
// loglevel is one of "debug", "info", "warn", "error" or "off" (case insensitive).
// Empty or unknown values fall back to "warn".
func SetLevel(e *echo.Echo, loglevel string) {
	switch strings.ToLower(loglevel) {
	case "debug":
		e.Logger.SetLevel(log.DEBUG)
	case "info":
		e.Logger.SetLevel(log.INFO)
	case "warn", "":
		e.Logger.SetLevel(log.WARN)
	case "error":
		e.Logger.SetLevel(log.ERROR)
	case "off":
		e.Logger.SetLevel(log.OFF)
	default:
		e.Logger.SetLevel(log.WARN)
		e.Logger.Warnf("unknown loglevel: %s . fall-backed to warn", loglevel)
	}
}
