package loggingmw

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Skotchmaster/shop_catalog/internal/logging"
)

func RequestLogger(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			rid := req.Header.Get(echo.HeaderXRequestID)
			if rid == "" {
				rid = c.Response().Header().Get(echo.HeaderXRequestID)
			}

			lc := base.With().
				Str("method", req.Method).
				Str("path", c.Path()).
				Str("url", req.URL.Path).
				Str("remote_ip", c.RealIP()).
				Str("user_agent", req.UserAgent())
			if rid != "" {
				lc = lc.Str("request_id", rid)
			}
			l := lc.Logger()

			c.SetRequest(req.WithContext(logging.IntoContext(req.Context(), l)))

			start := time.Now()
			err := next(c)
			dur := time.Since(start)

			if err != nil {
				c.Echo().HTTPErrorHandler(err, c)
			}
			status := c.Response().Status

			switch {
			case status >= 500:
				l.Error().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Err(err).Msg("request completed")
			case status >= 400 || err != nil:
				l.Warn().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Err(err).Msg("request completed")
			default:
				l.Info().Int("status", status).Int64("duration_ms", dur.Milliseconds()).Int64("bytes", c.Response().Size).Msg("request completed")
			}
			return nil
		}
	}
}
