package handler

import (
	"net/http"

	"github.com/Eursukkul/shareit/pkg/middleware"
	"github.com/Eursukkul/shareit/server/internal/dto"
	"github.com/Eursukkul/shareit/server/internal/service"
	"github.com/labstack/echo/v4"
)

type RequestHandler struct {
	svc service.RequestService
}

func NewRequestHandler(svc service.RequestService) *RequestHandler {
	return &RequestHandler{svc: svc}
}

func (h *RequestHandler) RegisterRoutes(e *echo.Echo) {
	requests := e.Group("/requests")
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

	var req dto.ItemRequestInput
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	request, err := h.svc.CreateRequest(c.Request().Context(), userID, req.Description)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(request))
}

func (h *RequestHandler) ListOwnRequests(c echo.Context) error {
	userID, err := middleware.UserID(c)
	if err != nil {
		return err
	}

	requests, err := h.svc.ListOwnRequests(c.Request().Context(), userID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponses(requests))
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

	requests, err := h.svc.ListOtherRequests(c.Request().Context(), userID, from, size)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponses(requests))
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

	request, err := h.svc.GetRequest(c.Request().Context(), userID, requestID)
	if err != nil {
		return toHTTPError(err)
	}
	return c.JSON(http.StatusOK, dto.ToItemRequestResponse(request))
}
