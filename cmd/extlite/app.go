package main

import (
	"context"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/opst/extlite/cmd/extlite/controllers"
	kconf "github.com/opst/extlite/pkg/configs/app"
	kdb "github.com/opst/extlite/pkg/db"
	"github.com/opst/extlite/pkg/db/connect"
	"github.com/opst/extlite/pkg/db/table"
	"github.com/opst/extlite/pkg/metrics"
	"github.com/opst/extlite/pkg/mvc"
	"github.com/opst/extlite/pkg/utils/echoutil"
	"github.com/opst/extlite/pkg/view"
	weberr "github.com/opst/extlite/pkg/web/errors"
	"github.com/prometheus/client_golang/prometheus"
)

// app is a server ready to start.
type app struct {
	e        *echo.Echo
	router   *mvc.Router
	database kdb.Database
	renderer *view.Renderer
}

func (a *app) Close() error {
	return a.database.Close()
}

// newApp builds a server from conf.
//
// database is opened with conf.DB unless it is given.
func newApp(ctx context.Context, conf *kconf.Config, database kdb.Database, reg *prometheus.Registry) (*app, error) {
	e := echo.New()
	e.HideBanner = true
	echoutil.SetLevel(e, conf.LogLevel)
	e.HTTPErrorHandler = weberr.ErrorHandler(e)
	e.Use(
		middleware.Recover(),
		middleware.RequestIDWithConfig(middleware.RequestIDConfig{Generator: uuid.NewString}),
		echoutil.LogHandlerFunc,
	)

	if database == nil {
		d, err := connect.Open(ctx, conf.DB)
		if err != nil {
			return nil, err
		}
		database = d
	}

	root := "."
	if filepath.IsAbs(conf.Views.Base) {
		root = "/"
	}
	renderer := view.New(os.DirFS(root))
	e.Renderer = renderer

	observer, err := metrics.NewDispatch(reg)
	if err != nil {
		database.Close()
		return nil, err
	}
	e.GET("/metrics", metrics.Handler(reg))
	e.GET("/healthz", healthHandler(database))

	router := mvc.NewRouter(
		e, conf.Server.Prefix,
		mvc.WithResolver(mvc.Resolver{Base: conf.Views.Base, Ext: conf.Views.Ext}),
		mvc.WithObserver(observer),
	)

	for _, ctrl := range []mvc.Controller{
		controllers.NewNotes(table.Must[controllers.Note](database.Executor())),
	} {
		if err := router.Register(ctx, ctrl); err != nil {
			database.Close()
			return nil, err
		}
	}

	return &app{e: e, router: router, database: database, renderer: renderer}, nil
}

// healthHandler responds 200 when the database is reachable, otherwise 503.
func healthHandler(database kdb.Database) echo.HandlerFunc {
	return func(c echo.Context) error {
		if err := database.Ping(c.Request().Context()); err != nil {
			return weberr.NewErrorMessage(
				http.StatusServiceUnavailable,
				"database is unavailable",
				weberr.WithAdvice("database: "+database.Driver()),
				weberr.WithError(err),
			)
		}
		return c.String(http.StatusOK, "ok ("+database.Driver()+")")
	}
}
