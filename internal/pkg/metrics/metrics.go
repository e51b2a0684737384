package metrics

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// Result label values
const (
	ResultSuccess = "success"
	ResultFailure = "failure"
)

var (
	// CodesRequested counts verification code requests. result is "success" or the error reason.
	CodesRequested = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forestbar_auth_codes_requested_total",
			Help: "Total number of verification code requests",
		},
		[]string{"result"},
	)

	// CodesVerified counts code verification attempts by result.
	CodesVerified = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forestbar_auth_codes_verified_total",
			Help: "Total number of verification code checks",
		},
		[]string{"result"},
	)

	// Authentications counts bearer credential checks by result.
	Authentications = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "forestbar_auth_authentications_total",
			Help: "Total number of credential authentications",
		},
		[]string{"result"},
	)

	// HTTPRequestDuration measures HTTP request latencies.
	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "forestbar_http_request_duration_seconds",
			Help:    "HTTP request latency",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path", "status"},
	)
)

// Middleware observes request latency labelled by the route template, not the raw path
func Middleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			status := c.Response().Status
			if err != nil {
				if he, ok := err.(*echo.HTTPError); ok {
					status = he.Code
				}
			}

			path := c.Path()
			if path == "" {
				path = "unmatched"
			}

			HTTPRequestDuration.
				WithLabelValues(c.Request().Method, path, strconv.Itoa(status)).
				Observe(time.Since(start).Seconds())
			return err
		}
	}
}

// Handler exposes the default registry for scraping
func Handler() echo.HandlerFunc {
	return echo.WrapHandler(promhttp.Handler())
}
