// errors which controllers return to make HTTP error responses.
package errors

import (
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	kdb "github.com/opst/extlite/pkg/db"
)

// ErrorMessage is a human readable explanation of an error response.
type ErrorMessage struct {
	Reason string
	Advice string
	Cause  error
}

func (e ErrorMessage) String() string {
	lines := []string{e.Reason}
	if e.Advice != "" {
		lines = append(lines, e.Advice)
	}
	return strings.Join(lines, "\n")
}

func (e ErrorMessage) Error() string {
	if e.Cause == nil {
		return e.String()
	}
	return fmt.Sprintf("%s\n caused by: %s", e.String(), e.Cause.Error())
}

func (e ErrorMessage) Unwrap() error {
	return e.Cause
}

type ErrorMessageOption func(in *ErrorMessage) *ErrorMessage

func WithAdvice(advice string) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if advice != "" {
			in.Advice = advice
		}
		return in
	}
}

func WithError(err error) ErrorMessageOption {
	return func(in *ErrorMessage) *ErrorMessage {
		if err != nil {
			in.Cause = err
		}
		return in
	}
}

func NewErrorMessage(code int, reason string, opts ...ErrorMessageOption) *echo.HTTPError {
	msg := ErrorMessage{Reason: reason}
	for _, opt := range opts {
		msg = *opt(&msg)
	}

	return echo.NewHTTPError(code, msg).SetInternal(msg)
}

func BadRequest(advice string, err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusBadRequest,
		"bad request",
		WithAdvice(advice),
		WithError(err),
	)
}

func NotFound(options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusNotFound, "not found", options...)
}

func Conflict(reason string, options ...ErrorMessageOption) *echo.HTTPError {
	return NewErrorMessage(http.StatusConflict, reason, options...)
}

func InternalServerError(err error) *echo.HTTPError {
	return NewErrorMessage(
		http.StatusInternalServerError,
		"unexpected error",
		WithError(err),
	)
}

// FromDB converts an error from DAO into *echo.HTTPError.
//
// - kdb.ErrMissing -> 404 Not Found
//
// - kdb.ErrConflict -> 409 Conflict
//
// - others -> 500 Internal Server Error
//
// When err is nil, it returns nil.
func FromDB(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, kdb.ErrMissing):
		return NotFound(WithError(err))
	case errors.Is(err, kdb.ErrConflict):
		return Conflict(
			"conflicted",
			WithAdvice("the record may be modified by others. reload and try again."),
			WithError(err),
		)
	}
	return InternalServerError(err)
}

// ErrorHandler creates echo.HTTPErrorHandler which logs errors and responds them as plain text.
//
// For 5xx errors, the cause is not exposed to clients.
func ErrorHandler(e *echo.Echo) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			c.Logger().Errorf("error after response is committed: %+v", err)
			return
		}

		code := http.StatusInternalServerError
		body := "unexpected error"

		if herr := new(echo.HTTPError); errors.As(err, &herr) {
			code = herr.Code
			switch m := herr.Message.(type) {
			case ErrorMessage:
				body = m.String()
			case string:
				body = m
			default:
				body = http.StatusText(code)
			}
		}

		if code < http.StatusInternalServerError {
			c.Logger().Warnf("%s %s: %d: %+v", c.Request().Method, c.Request().URL, code, err)
		} else {
			c.Logger().Errorf("%s %s: %d: %+v", c.Request().Method, c.Request().URL, code, err)
		}

		// bodies may contain request data. they should never be taken as markup.
		c.Response().Header().Set(echo.HeaderContentType, echo.MIMETextPlainCharsetUTF8)
		if c.Request().Method == http.MethodHead {
			err = c.NoContent(code)
		} else {
			err = c.String(code, body)
		}
		if err != nil {
			e.Logger.Error(err)
		}
	}
}
