package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/model"
	"risible/backend/internal/service"
)

type CategoryHandler struct {
	service service.CategoryService
}

type categoryRequest struct {
	Name  string `json:"name"`
	Color string `json:"color"`
}

type reorderCategoriesRequest struct {
	OrderedIDs []int64 `json:"orderedIds"`
}

type categoryResponse struct {
	ID        int64  `json:"id"`
	Name      string `json:"name"`
	Color     string `json:"color,omitempty"`
	SortOrder int    `json:"sortOrder"`
}

func NewCategoryHandler(service service.CategoryService) *CategoryHandler {
	return &CategoryHandler{service: service}
}

func (h *CategoryHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/categories", h.Create)
	g.GET("/categories", h.List)
	g.PUT("/categories/reorder", h.Reorder)
	g.PUT("/categories/:id", h.Update)
	g.DELETE("/categories/:id", h.Delete)
}

func (h *CategoryHandler) Create(c echo.Context) error {
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	category, err := h.service.Create(c.Request().Context(), req.Name, req.Color)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toCategoryResponse(category))
}

func (h *CategoryHandler) List(c echo.Context) error {
	categories, err := h.service.List(c.Request().Context())
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]categoryResponse, 0, len(categories))
	for _, category := range categories {
		response = append(response, toCategoryResponse(category))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *CategoryHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req categoryRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	category, err := h.service.Update(c.Request().Context(), id, req.Name, req.Color)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toCategoryResponse(category))
}

func (h *CategoryHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func (h *CategoryHandler) Reorder(c echo.Context) error {
	var req reorderCategoriesRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Reorder(c.Request().Context(), req.OrderedIDs); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toCategoryResponse(category model.Category) categoryResponse {
	return categoryResponse{
		ID:        category.ID,
		Name:      category.Name,
		Color:     category.Color,
		SortOrder: category.SortOrder,
	}
}
