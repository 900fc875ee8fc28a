package handler

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/Eursukkul/shareit/gateway/internal/dto"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type BookingHandler struct {
	server Forwarder
}

func NewBookingHandler(server Forwarder) *BookingHandler {
	return &BookingHandler{server: server}
}

func (h *BookingHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	bookings := e.Group("/bookings", mw...)
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
	var req dto.BookingCreate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPost, "/bookings", nil, userID, req)
	if succeeded(resp, err) {
		h.server.InvalidateItem(c.Request().Context(), *req.ItemID)
	}
	return relay(c, resp, err)
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

	query := url.Values{"approved": {strconv.FormatBool(approved)}}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPatch, idPath("/bookings", bookingID), query, userID, nil)
	if succeeded(resp, err) {
		if itemID := bookingItemID(resp.Body); itemID > 0 {
			h.server.InvalidateItem(c.Request().Context(), itemID)
		}
	}
	return relay(c, resp, err)
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
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, idPath("/bookings", bookingID), nil, userID, nil)
	return relay(c, resp, err)
}

func (h *BookingHandler) ListBookerBookings(c echo.Context) error {
	return h.list(c, "/bookings")
}

func (h *BookingHandler) ListOwnerBookings(c echo.Context) error {
	return h.list(c, "/bookings/owner")
}

func (h *BookingHandler) list(c echo.Context, path string) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	state := c.QueryParam("state")
	if !dto.ValidBookingState(state) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown state: UNSUPPORTED_STATUS")
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}

	query := pageQuery(from, size)
	if state == "" {
		state = "ALL"
	}
	query.Set("state", strings.ToUpper(state))
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, path, query, userID, nil)
	return relay(c, resp, err)
}
