package handler

import (
	"net/http"

	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/server/internal/dto"
	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
)

type UserHandler struct {
	svc service.UserService
}

func NewUserHandler(svc service.UserService) *UserHandler {
	return &UserHandler{svc: svc}
}

func (h *UserHandler) RegisterRoutes(e *echo.Echo) {
	users := e.Group("/users")
	users.POST("", h.CreateUser)
	users.GET("", h.ListUsers)
	users.GET("/:id", h.GetUser)
	users.PATCH("/:id", h.UpdateUser)
	users.DELETE("/:id", h.DeleteUser)
}

func (h *UserHandler) CreateUser(c echo.Context) error {
	var req dto.UserInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil || req.Email == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name and email are required")
	}

	user, err := h.svc.CreateUser(c.Request().Context(), *req.Name, *req.Email)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) UpdateUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	var req dto.UserInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	user, err := h.svc.UpdateUser(c.Request().Context(), id, service.UserPatch{Name: req.Name, Email: req.Email})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) GetUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	user, err := h.svc.GetUser(c.Request().Context(), id)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

func (h *UserHandler) ListUsers(c echo.Context) error {
	users, err := h.svc.ListUsers(c.Request().Context())
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToUserResponses(users))
}

func (h *UserHandler) DeleteUser(c echo.Context) error {
	id, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}

	if err := h.svc.DeleteUser(c.Request().Context(), id); err != nil {
		return toHTTPError(err)
	}
	return c.NoContent(http.StatusOK)
}
