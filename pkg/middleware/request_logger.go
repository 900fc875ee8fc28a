package middleware

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMw "github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
)

// RequestIDMiddleware assigns an X-Request-Id when the caller did not send one.
func RequestIDMiddleware() echo.MiddlewareFunc {
	return echoMw.RequestIDWithConfig(echoMw.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	})
}

// RequestID returns the id set by RequestIDMiddleware.
func RequestID(c echo.Context) string {
	if id := c.Response().Header().Get(echo.HeaderXRequestID); id != "" {
		return id
	}
	return c.Request().Header.Get(echo.HeaderXRequestID)
}

// RequestLogger logs one line per request.
func RequestLogger(logger zerolog.Logger) echo.MiddlewareFunc {
	return echoMw.RequestLoggerWithConfig(echoMw.RequestLoggerConfig{
		LogStatus:    true,
		LogURI:       true,
		LogMethod:    true,
		LogLatency:   true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogError:     true,
		HandleError:  true,
		LogValuesFunc: func(c echo.Context, v echoMw.RequestLoggerValues) error {
			ev := logger.Info()
			if v.Status >= 500 {
				ev = logger.Error().Err(v.Error)
			} else if v.Status >= 400 {
				ev = logger.Warn()
			}
			ev.Str("request_id", v.RequestID).
				Str("method", v.Method).
				Str("uri", v.URI).
				Int("status", v.Status).
				Dur("latency", v.Latency).
				Str("remote_ip", v.RemoteIP).
				Str("user_id", c.Request().Header.Get(UserIDHeader)).
				Msg("request")
			return nil
		},
	})
}
