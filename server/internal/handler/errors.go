package handler

import (
	"errors"
	"net/http"

	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
)

const defaultPageSize = 20

var (
	notFoundErrs = []error{
		service.ErrUserNotFound,
		service.ErrItemNotFound,
		service.ErrBookingNotFound,
		service.ErrRequestNotFound,
		service.ErrNotOwner,
		service.ErrOwnBooking,
		service.ErrAccessDenied,
	}
	badRequestErrs = []error{
		service.ErrValidation,
		service.ErrItemUnavailable,
		service.ErrBookingDates,
		service.ErrBookingDecided,
		service.ErrUnknownState,
		service.ErrCommentNotAllowed,
	}
)

// toHTTPError maps service errors to status codes. Anything unrecognised is
// returned as is and becomes a logged 500.
func toHTTPError(err error) error {
	for _, target := range notFoundErrs {
		if errors.Is(err, target) {
			return echo.NewHTTPError(http.StatusNotFound, err.Error())
		}
	}
	for _, target := range badRequestErrs {
		if errors.Is(err, target) {
			return echo.NewHTTPError(http.StatusBadRequest, err.Error())
		}
	}
	if errors.Is(err, service.ErrEmailExists) {
		return echo.NewHTTPError(http.StatusConflict, err.Error())
	}
	return err
}
