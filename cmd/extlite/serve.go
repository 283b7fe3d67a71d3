package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	kconf "github.com/opst/extlite/pkg/configs/app"
	"github.com/opst/extlite/pkg/utils/filewatch"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/spf13/cobra"
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the server",
	Long: `Start the server with controllers.

The server quits when the config file is modified. Restart it to take the new config.`,
	Run: func(cmd *cobra.Command, args []string) {
		configPath, _ := cmd.Flags().GetString("config-path")
		loglevel, _ := cmd.Flags().GetString("loglevel")
		cert, _ := cmd.Flags().GetString("cert")
		key, _ := cmd.Flags().GetString("certkey")

		conf, err := loadConfig(configPath, loglevel)
		if err != nil {
			log.Fatalf("can not read configration: %s", err)
		}

		ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
		defer stop()

		reg := prometheus.NewRegistry()
		reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))

		a, err := newApp(ctx, conf, nil, reg)
		if err != nil {
			log.Fatalf("can not start server: %s", err)
		}
		defer a.Close()

		if conf.Views.Watch {
			if err := a.renderer.Watch(ctx, conf.Views.Base); err != nil {
				log.Fatalf("can not watch views: %s", err)
			}
		}

		watched, cancel, err := filewatch.UntilModifyContext(ctx, configPath)
		if err != nil {
			log.Fatalf("can not watch configration: %s", err)
		}
		defer cancel()
		context.AfterFunc(watched, func() {
			a.e.Logger.Warnf("shutting down: %s", context.Cause(watched))
			graceful, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if err := a.e.Shutdown(graceful); err != nil {
				a.e.Logger.Errorf("error on shutdown: %s", err)
			}
		})

		a.e.Logger.Infof("database: %s", a.database.Driver())
		for _, r := range a.router.Routes() {
			a.e.Logger.Infof("route: %v %s -> %s", r.Methods, r.Path, r.View)
		}

		addr := ":" + conf.Server.Port
		if cert != "" && key != "" {
			err = a.e.StartTLS(addr, cert, key)
		} else {
			err = a.e.Start(addr)
		}
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			a.e.Logger.Fatal(err)
		}
	},
}

// loadConfig reads config file. When loglevel is not empty, it overrides the config.
func loadConfig(path string, loglevel string) (*kconf.Config, error) {
	conf, err := kconf.LoadConfig(path)
	if err != nil {
		return nil, err
	}
	if loglevel != "" {
		conf.LogLevel = loglevel
	}
	return conf, nil
}

func init() {
	serveCmd.Flags().String("cert", "", "certification file for TLS")
	serveCmd.Flags().String("certkey", "", "key of certification file for TLS")
	rootCmd.AddCommand(serveCmd)
}
