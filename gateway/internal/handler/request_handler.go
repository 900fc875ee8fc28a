package handler

import (
	"net/http"

	"github.com/Eursukkul/shareit/gateway/internal/dto"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	server Forwarder
}

func NewRequestHandler(server Forwarder) *RequestHandler {
	return &RequestHandler{server: server}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	requests := e.Group("/requests", mw...)
	requests.POST("", h.CreateRequest)
	requests.GET("", h.ListOwnRequests)
	requests.GET("/all", h.ListOtherRequests)
	requests.GET("/:id", h.GetRequest)
}

func (h *RequestHandler) CreateRequest(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.RequestCreate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPost, "/requests", nil, userID, req)
	return relay(c, resp, err)
}

func (h *RequestHandler) ListOwnRequests(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, "/requests", nil, userID, nil)
	return relay(c, resp, err)
}

func (h *RequestHandler) ListOtherRequests(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, "/requests/all", pageQuery(from, size), userID, nil)
	return relay(c, resp, err)
}

func (h *RequestHandler) GetRequest(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	requestID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, idPath("/requests", requestID), nil, userID, nil)
	return relay(c, resp, err)
}
