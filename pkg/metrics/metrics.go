package metrics

import (
	"errors"
	"net/http"
	"strconv"
	"sync"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequestsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "http_requests_total",
			Help:      "HTTP requests processed, by service, method, route and status.",
		},
		[]string{"service", "method", "route", "status"},
	)

	HTTPRequestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "shareit",
			Name:      "http_request_duration_seconds",
			Help:      "HTTP request latency.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"service", "method", "route"},
	)

	BookingsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "shareit",
			Name:      "bookings_total",
			Help:      "Bookings created or decided, by resulting status.",
		},
		[]string{"status"},
	)

	registerOnce sync.Once
)

// Register adds the collectors to the default registry. Safe to call twice.
func Register() {
	registerOnce.Do(func() {
		prometheus.MustRegister(HTTPRequestsTotal, HTTPRequestDuration, BookingsTotal)
	})
}

// Handler serves the default registry.
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}

// Middleware records request counts and latency per matched route.
func Middleware(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			status := c.Response().Status
			if err != nil {
				status = http.StatusInternalServerError
				var he *echo.HTTPError
				if errors.As(err, &he) {
					status = he.Code
				}
			}

			method := c.Request().Method
			HTTPRequestsTotal.WithLabelValues(service, method, route, strconv.Itoa(status)).Inc()
			HTTPRequestDuration.WithLabelValues(service, method, route).Observe(time.Since(start).Seconds())
			return err
		}
	}
}
