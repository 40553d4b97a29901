package middleware

import (
	"net/http"
	"strconv"
	"time"
	Error "warehouse/packages/common/errors"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var registry = prometheus.NewRegistry()

var (
	httpRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"method", "route", "status"},
	)

	httpRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)
)

func init() {
	registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	registry.MustRegister(collectors.NewGoCollector())
	registry.MustRegister(httpRequestsTotal)
	registry.MustRegister(httpRequestDuration)
}

// Records count and duration of handled requests.
//
// Requests are labeled with route template (e.g. /orders/:id),
// not with actual path, so ids don't blow up the label cardinality.
func Metrics(next echo.HandlerFunc) echo.HandlerFunc {
	return func(ctx echo.Context) error {
		start := time.Now()

		err := next(ctx)

		labels := []string{ctx.Request().Method, routeLabel(ctx), strconv.Itoa(responseStatus(ctx, err))}

		httpRequestsTotal.WithLabelValues(labels...).Inc()
		httpRequestDuration.WithLabelValues(labels...).Observe(time.Since(start).Seconds())

		return err
	}
}

// Status which client will receive.
// Returned error isn't written yet, error handler will do it later.
func responseStatus(ctx echo.Context, err error) int {
	if err == nil || ctx.Response().Committed {
		return ctx.Response().Status
	}

	switch e := err.(type) {
	case *echo.HTTPError:
		return e.Code
	case *Error.Status:
		return e.Status()
	}

	return http.StatusInternalServerError
}

func routeLabel(ctx echo.Context) string {
	if route := ctx.Path(); route != "" {
		return route
	}
	return "unknown"
}

// Serves collected metrics in Prometheus text format.
func MetricsHandler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.HandlerFor(registry, promhttp.HandlerOpts{}))
}
