package handler

import (
	"net/http"
	"strconv"

	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/server/internal/dto"
	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	svc service.BookingService
}

func NewBookingHandler(svc service.BookingService) *BookingHandler {
	return &BookingHandler{svc: svc}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo) {
	bookings := e.Group("/bookings")
	bookings.POST("", h.CreateBooking)
	bookings.GET("", h.ListBookerBookings)
	bookings.GET("/owner", h.ListOwnerBookings)
	bookings.GET("/:id", h.GetBooking)
	bookings.PATCH("/:id", h.DecideBooking)
}

func (h *BookingHandler) CreateBooking(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	var req dto.BookingInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.ItemID == nil || req.Start == nil || req.End == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "itemId, start and end are required")
	}

	booking, err := h.svc.CreateBooking(c.Request().Context(), userID, *req.ItemID, *req.Start, *req.End)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) DecideBooking(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	approved, err := strconv.ParseBool(c.QueryParam("approved"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "approved must be true or false")
	}

	booking, err := h.svc.DecideBooking(c.Request().Context(), userID, bookingID, approved)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) GetBooking(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	bookingID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	booking, err := h.svc.GetBooking(c.Request().Context(), userID, bookingID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponse(booking))
}

func (h *BookingHandler) ListBookerBookings(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListBookerBookings(c.Request().Context(), userID, c.QueryParam("state"), from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}

func (h *BookingHandler) ListOwnerBookings(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}

	bookings, err := h.svc.ListOwnerBookings(c.Request().Context(), userID, c.QueryParam("state"), from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToBookingResponses(bookings))
}
