package middleware

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/hospadmin/hospadmin/internal/platform/session"
)

// Logger emits one structured line per request. Authenticated requests carry
// the session account and role, so a hospital's activity can be traced
// without parsing paths.
func Logger(logger zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()
			rid, _ := c.Get("request_id").(string)

			err := next(c)

			evt := logger.Info()
			if err != nil {
				evt = logger.Error().Err(err)
			}

			evt.
				Str("request_id", rid).
				Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", c.Response().Status).
				Dur("latency", time.Since(start)).
				Str("remote_ip", c.RealIP())

			if user := session.FromContext(c.Request().Context()); user != nil {
				evt.Str("account_id", user.ID.String()).Str("role", user.Role)
			}

			evt.Msg("request")
			return err
		}
	}
}
