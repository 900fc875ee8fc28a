package handler

import (
	"net/http"
	"strings"

	"github.com/Eursukkul/shareit/gateway/internal/dto"
	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	server Forwarder
}

func NewItemHandler(server Forwarder) *ItemHandler {
	return &ItemHandler{server: server}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo, mw ...echo.MiddlewareFunc) {
	items := e.Group("/items", mw...)
	items.POST("", h.CreateItem)
	items.GET("", h.ListOwnerItems)
	items.GET("/search", h.SearchItems)
	items.GET("/:id", h.GetItem)
	items.PATCH("/:id", h.UpdateItem)
	items.POST("/:id/comment", h.AddComment)
}

func (h *ItemHandler) CreateItem(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	var req dto.ItemCreate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPost, "/items", nil, userID, req)
	return relay(c, resp, err)
}

func (h *ItemHandler) UpdateItem(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.ItemUpdate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPatch, idPath("/items", itemID), nil, userID, req)
	if succeeded(resp, err) {
		h.server.InvalidateItem(c.Request().Context(), itemID)
	}
	return relay(c, resp, err)
}

func (h *ItemHandler) GetItem(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	resp, err := h.server.GetItem(c.Request().Context(), userID, itemID)
	return relay(c, resp, err)
}

func (h *ItemHandler) ListOwnerItems(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, "/items", pageQuery(from, size), userID, nil)
	return relay(c, resp, err)
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}
	text := c.QueryParam("text")
	if strings.TrimSpace(text) == "" {
		return c.JSON(http.StatusOK, []struct{}{})
	}

	query := pageQuery(from, size)
	query.Set("text", text)
	resp, err := h.server.Do(c.Request().Context(), http.MethodGet, "/items/search", query, userID, nil)
	return relay(c, resp, err)
}

func (h *ItemHandler) AddComment(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}
	itemID, err := middleware.PathID(c, "id")
	if err != nil {
		return err
	}
	var req dto.CommentCreate
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}
	resp, err := h.server.Do(c.Request().Context(), http.MethodPost, idPath("/items", itemID)+"/comment", nil, userID, req)
	if succeeded(resp, err) {
		h.server.InvalidateItem(c.Request().Context(), itemID)
	}
	return relay(c, resp, err)
}
