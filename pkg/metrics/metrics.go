// Package metrics exports dispatches as prometheus metrics.
package metrics

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/opst/extlite/pkg/mvc"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "extlite"

// Dispatch counts dispatches and measures their duration.
//
// It is mvc.Observer.
type Dispatch struct {
	total    *prometheus.CounterVec
	duration *prometheus.HistogramVec
}

var _ mvc.Observer = &Dispatch{}

// NewDispatch creates Dispatch and registers its metrics to reg.
func NewDispatch(reg prometheus.Registerer) (*Dispatch, error) {
	d := &Dispatch{
		total: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Name:      "dispatch_total",
				Help:      "Count of dispatched requests, by controller, action and outcome.",
			},
			[]string{"controller", "action", "outcome"},
		),
		duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "dispatch_duration_seconds",
				Help:      "Duration of dispatches including rendering, by controller and action.",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"controller", "action"},
		),
	}

	for _, c := range []prometheus.Collector{d.total, d.duration} {
		if err := reg.Register(c); err != nil {
			return nil, err
		}
	}
	return d, nil
}

func (d *Dispatch) Observe(controller string, action string, outcome mvc.Outcome, elapsed time.Duration) {
	d.total.WithLabelValues(controller, action, string(outcome)).Inc()
	d.duration.WithLabelValues(controller, action).Observe(elapsed.Seconds())
}

// Handler serves metrics gathered from g, in the prometheus exposition format.
func Handler(g prometheus.Gatherer) echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(g, promhttp.HandlerOpts{}))
}
