package middleware

import (
	"fmt"
	"time"

	"github.com/labstack/echo/v4"
)

const (
	HeaderService     = "X-Service"
	HeaderProcessTime = "X-Process-Time"
)

// ServiceHeaders stamps every response with the service name and the time
// spent handling the request, in seconds.
func ServiceHeaders(service string) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			res := c.Response()
			res.Before(func() {
				h := res.Header()
				h.Set(HeaderService, service)
				h.Set(HeaderProcessTime, fmt.Sprintf("%.4f", time.Since(start).Seconds()))
			})
			return next(c)
		}
	}
}
