package middleware

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/labstack/echo/v4"
)

// UserIDHeader identifies the acting user on every domain request.
const UserIDHeader = "X-Sharer-User-Id"

// UserID parses the acting user id from UserIDHeader. A missing or
// non-numeric header is a 400.
func UserID(c echo.Context) (int64, error) {
	raw := strings.TrimSpace(c.Request().Header.Get(UserIDHeader))
	if raw == "" {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "missing "+UserIDHeader+" header")
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+UserIDHeader+" header")
	}
	return id, nil
}

// PathID parses a positive int64 path parameter.
func PathID(c echo.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "invalid "+name)
	}
	return id, nil
}

// Page parses from/size query parameters. from must be >= 0 and size > 0.
func Page(c echo.Context, defaultSize int) (from, size int, err error) {
	from, size = 0, defaultSize
	if raw := c.QueryParam("from"); raw != "" {
		from, err = strconv.Atoi(raw)
		if err != nil || from < 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "from must be a non-negative integer")
		}
	}
	if raw := c.QueryParam("size"); raw != "" {
		size, err = strconv.Atoi(raw)
		if err != nil || size <= 0 {
			return 0, 0, echo.NewHTTPError(http.StatusBadRequest, "size must be a positive integer")
		}
	}
	return from, size, nil
}
