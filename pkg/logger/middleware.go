package logger

import (
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

const contextKey = "logger"

// Middleware logs one line per request and stores a logger tagged with the
// request id in the echo.Context. It must run after middleware.RequestID.
func Middleware(base zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			req := c.Request()

			requestID := req.Header.Get(echo.HeaderXRequestID)
			if requestID == "" {
				requestID = c.Response().Header().Get(echo.HeaderXRequestID)
			}
			reqLog := base.With().Str("request_id", requestID).Logger()
			c.Set(contextKey, reqLog)
			c.SetRequest(req.WithContext(reqLog.WithContext(req.Context())))

			err := next(c)
			if err != nil {
				c.Error(err)
			}

			status := c.Response().Status
			evt := reqLog.Info()
			switch {
			case status >= 500:
				evt = reqLog.Error().Err(err)
			case status >= 400:
				evt = reqLog.Warn()
			}
			evt.Str("method", req.Method).
				Str("path", req.URL.Path).
				Int("status", status).
				Dur("latency", time.Since(start)).
				Str("ip", c.RealIP()).
				Msg("request")
			return nil
		}
	}
}

// FromContext returns the request logger, or the singleton when the
// middleware did not run.
func FromContext(c echo.Context) zerolog.Logger {
	if l, ok := c.Get(contextKey).(zerolog.Logger); ok {
		return l
	}
	if initialized {
		return instance
	}
	return zerolog.Nop()
}
