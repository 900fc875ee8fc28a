package handler

import (
	"net/http"

	"github.com/Eursukkul/shareit/gateway/internal/dto"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	server Forwarder
}

func NewUserHandler(server Forwarder) *UserHandler {
	return &UserHandler{server: server}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	users := e.Group("/users", mw...)
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.UserCreate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPost, "/users", nil, 0, req)
	return relay(c, resp, err)
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.UserUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPatch, idPath("/users", id), nil, 0, req)
	if succeeded(resp, err) {
		h.server.FlushItems(c.Request().Context())
	}
	return relay(c, resp, err)
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, idPath("/users", id), nil, 0, nil)
	return relay(c, resp, err)
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, "/users", nil, 0, nil)
	return relay(c, resp, err)
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodDelete, idPath("/users", id), nil, 0, nil)
	if succeeded(resp, err) {
		h.server.FlushItems(c.Request().Context())
	}
	return relay(c, resp, err)
}
