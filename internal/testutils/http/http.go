package http

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
)

type RequestOption func(req *http.Request) *http.Request

func WithContext(ctx context.Context) RequestOption {
	return func(req *http.Request) *http.Request {
		return req.WithContext(ctx)
	}
}

func WithHeader(key string, value string, values ...string) RequestOption {
	return func(req *http.Request) *http.Request {
		req.Header.Add(key, value)
		for _, v := range values {
			req.Header.Add(key, v)
		}
		return req
	}
}

// = WithHeader("Content-Type", ctyp)
func ContentType(ctyp string) RequestOption {
	return WithHeader("Content-Type", ctyp)
}

func newRequest(method string, target string, data io.Reader, reqopts []RequestOption) *http.Request {
	req := httptest.NewRequest(method, target, data)
	for _, opt := range reqopts {
		req = opt(req)
	}
	return req
}

// Get builds an echo.Context of GET request.
func Get(e *echo.Echo, target string, reqopts ...RequestOption) (echo.Context, *httptest.ResponseRecorder) {
	resp := httptest.NewRecorder()
	return e.NewContext(newRequest(http.MethodGet, target, nil, reqopts), resp), resp
}

func Post(e *echo.Echo, target string, data io.Reader, reqopts ...RequestOption) (echo.Context, *httptest.ResponseRecorder) {
	resp := httptest.NewRecorder()
	return e.NewContext(newRequest(http.MethodPost, target, data, reqopts), resp), resp
}

// PostForm builds an echo.Context of POST request submitting form as
// application/x-www-form-urlencoded.
func PostForm(e *echo.Echo, target string, form url.Values, reqopts ...RequestOption) (echo.Context, *httptest.ResponseRecorder) {
	reqopts = append([]RequestOption{ContentType(echo.MIMEApplicationForm)}, reqopts...)
	return Post(e, target, strings.NewReader(form.Encode()), reqopts...)
}

func Delete(e *echo.Echo, target string, reqopts ...RequestOption) (echo.Context, *httptest.ResponseRecorder) {
	resp := httptest.NewRecorder()
	return e.NewContext(newRequest(http.MethodDelete, target, nil, reqopts), resp), resp
}

// Serve sends a request through e, with its routes and middlewares.
func Serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	resp := httptest.NewRecorder()
	e.ServeHTTP(resp, req)
	return resp
}
