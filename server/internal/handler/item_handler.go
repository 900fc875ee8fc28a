package handler

import (
	"net/http"

	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/server/internal/dto"
	"github.com/Eursukkul/shareit/server/internal/models"
	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
)

type ItemHandler struct {
	svc service.ItemService
}

func NewItemHandler(svc service.ItemService) *ItemHandler {
	return &ItemHandler{svc: svc}
}

func (h *ItemHandler) RegisterRoutes(e *echo.Echo) {
	items := e.Group("/items")
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

	var req dto.ItemInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	if req.Name == nil || req.Description == nil || req.Available == nil {
		return echo.NewHTTPError(http.StatusBadRequest, "name, description and available are required")
	}

	item := &models.Item{
		Name:        *req.Name,
		Description: *req.Description,
		Available:   *req.Available,
		RequestID:   req.RequestID,
	}
	if err := h.svc.CreateItem(c.Request().Context(), userID, item); err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
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

	var req dto.ItemInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	item, err := h.svc.UpdateItem(c.Request().Context(), userID, itemID, service.ItemPatch{
		Name:        req.Name,
		Description: req.Description,
		Available:   req.Available,
	})
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponse(item))
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

	d, err := h.svc.GetItem(c.Request().Context(), userID, itemID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemDetailsResponse(&d.Item, d.LastBooking, d.NextBooking, d.Comments))
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

	list, err := h.svc.ListOwnerItems(c.Request().Context(), userID, from, size)
	if err != nil {
		return toHTTPError(err)
	}

	resp := make([]dto.ItemDetailsResponse, len(list))
	for i := range list {
		d := &list[i]
		resp[i] = dto.ToItemDetailsResponse(&d.Item, d.LastBooking, d.NextBooking, d.Comments)
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *ItemHandler) SearchItems(c echo.Context) error {
	if _, err := middleware.UserID(c); err != nil {
		return err
	}
	from, size, err := middleware.Page(c, defaultPageSize)
	if err != nil {
		return err
	}

	items, err := h.svc.SearchItems(c.Request().Context(), c.QueryParam("text"), from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemResponses(items))
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

	var req dto.CommentInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	comment, err := h.svc.AddComment(c.Request().Context(), userID, itemID, req.Text)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToCommentResponse(comment))
}
