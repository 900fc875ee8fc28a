package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
)

// ErrorResponse is the body written for every failed request.
type ErrorResponse struct {
	Error string `json:"error"`
}

// NewErrorHandler returns an echo.HTTPErrorHandler that writes
// {"error": msg}. Errors that are not *echo.HTTPError become 500 and are
// logged with the request id.
func NewErrorHandler(logger zerolog.Logger) echo.HTTPErrorHandler {
	return func(err error, c echo.Context) {
		if c.Response().Committed {
			return
		}

		code := http.StatusInternalServerError
		msg := http.StatusText(code)

		var he *echo.HTTPError
		if errors.As(err, &he) {
			code = he.Code
			switch m := he.Message.(type) {
			case string:
				msg = m
			case error:
				msg = m.Error()
			default:
				msg = http.StatusText(code)
			}
		} else {
			logger.Error().
				Err(err).
				Str("request_id", RequestID(c)).
				Str("path", c.Request().URL.Path).
				Msg("unhandled error")
		}

		if c.Request().Method == http.MethodHead {
			_ = c.NoContent(code)
			return
		}
		_ = c.JSON(code, ErrorResponse{Error: msg})
	}
}
