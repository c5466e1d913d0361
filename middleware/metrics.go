package middleware

import (
	"errors"
	"net/http"
	"time"

	"datetime_api_go/metrics"

	"github.com/labstack/echo/v4"
)

// Metrics records the route pattern, status code and latency of every request.
// Route patterns (not raw paths) are used as labels to keep cardinality bounded.
func Metrics(recorder *metrics.Recorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			code := c.Response().Status
			if err != nil {
				var he *echo.HTTPError
				if errors.As(err, &he) {
					code = he.Code
				} else {
					code = http.StatusInternalServerError
				}
			}

			route := c.Path()
			if route == "" {
				route = "unmatched"
			}
			recorder.ObserveRequest(route, code, time.Since(start))
			return err
		}
	}
}
