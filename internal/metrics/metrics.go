// Package metrics exposes Prometheus metrics for the HTTP API and the loaded ontology.
package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"evalgo.org/ontomapper/internal/ontology"
)

const namespace = "ontomapper"

// Registry owns a private Prometheus registry and the service metrics.
type Registry struct {
	registry *prometheus.Registry

	RequestsTotal   *prometheus.CounterVec
	RequestDuration *prometheus.HistogramVec

	Triples          prometheus.Gauge
	Subjects         prometheus.Gauge
	Predicates       prometheus.Gauge
	LoadFailures     prometheus.Counter
	DocumentsCreated *prometheus.CounterVec
}

// New creates a Registry with Go runtime and process collectors attached.
func New() *Registry {
	r := &Registry{
		registry: prometheus.NewRegistry(),

		RequestsTotal: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "requests_total",
				Help:      "Total number of HTTP requests",
			},
			[]string{"method", "route", "status"},
		),

		RequestDuration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Subsystem: "http",
				Name:      "request_duration_seconds",
				Help:      "HTTP request latency",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"method", "route"},
		),

		Triples: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ontology",
			Name:      "triples",
			Help:      "Number of triples in the loaded ontology",
		}),

		Subjects: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ontology",
			Name:      "subjects",
			Help:      "Number of distinct subjects in the loaded ontology",
		}),

		Predicates: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Subsystem: "ontology",
			Name:      "predicates",
			Help:      "Number of distinct predicates in the loaded ontology",
		}),

		LoadFailures: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "ontology",
			Name:      "load_failures_total",
			Help:      "Ontology sources that failed to load",
		}),

		DocumentsCreated: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: namespace,
				Subsystem: "generate",
				Name:      "documents_total",
				Help:      "Documents generated from graph payloads",
			},
			[]string{"format"},
		),
	}

	r.registry.MustRegister(
		r.RequestsTotal,
		r.RequestDuration,
		r.Triples,
		r.Subjects,
		r.Predicates,
		r.LoadFailures,
		r.DocumentsCreated,
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	return r
}

// PrometheusRegistry returns the underlying Prometheus registry.
func (r *Registry) PrometheusRegistry() *prometheus.Registry {
	return r.registry
}

// ObserveStore records the size of the loaded store and the number of failed sources.
func (r *Registry) ObserveStore(stats ontology.Stats, failures int) {
	r.Triples.Set(float64(stats.TotalTriples))
	r.Subjects.Set(float64(stats.UniqueSubjects))
	r.Predicates.Set(float64(stats.UniquePredicates))
	r.LoadFailures.Add(float64(failures))
}

// ObserveDocument counts one generated document of the given format.
func (r *Registry) ObserveDocument(format string) {
	r.DocumentsCreated.WithLabelValues(format).Inc()
}

// statusCoder is implemented by handler errors that carry their own status.
type statusCoder interface {
	StatusCode() int
}

// errorStatus resolves the status a handler error will be rendered with.
// The error handler has not run yet when the middleware sees err.
func errorStatus(err error, status int) int {
	var sc statusCoder
	var he *echo.HTTPError
	switch {
	case errors.As(err, &sc):
		return sc.StatusCode()
	case errors.As(err, &he):
		return he.Code
	case status < http.StatusBadRequest:
		return http.StatusInternalServerError
	default:
		return status
	}
}

// Handler serves the registry in the Prometheus exposition format.
func (r *Registry) Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(r.registry, promhttp.HandlerOpts{
		EnableOpenMetrics: true,
	}))
}

// Middleware records request counts and latency per route template.
func (r *Registry) Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				status = errorStatus(err, status)
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}

			method := c.Request().Method
			r.RequestsTotal.WithLabelValues(method, route, strconv.Itoa(status)).Inc()
			r.RequestDuration.WithLabelValues(method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
