package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/model"
	"risible/backend/internal/service"
)

type ItemHandler struct {
	service service.ItemService
}

type itemResponse struct {
	ID          int64   `json:"id"`
	FeedID      int64   `json:"feedId"`
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	PublishedAt string  `json:"publishedAt"`
	CreatedAt   string  `json:"createdAt"`
}

func NewItemHandler(service service.ItemService) *ItemHandler {
	return &ItemHandler{service: service}
}

func (h *ItemHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/items", h.List)
	g.GET("/items/:id", h.Get)
}

func (h *ItemHandler) List(c echo.Context) error {
	feedID, err := parseOptionalID(c, "feedId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	categoryID, err := parseOptionalID(c, "categoryId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	from, err := parseOptionalTime(c, "from")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	to, err := parseOptionalTime(c, "to")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	limit, err := parseOptionalInt(c, "limit")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	offset, err := parseOptionalInt(c, "offset")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	items, err := h.service.List(c.Request().Context(), service.ItemQuery{
		FeedID:     feedID,
		CategoryID: categoryID,
		From:       from,
		To:         to,
		Limit:      limit,
		Offset:     offset,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]itemResponse, 0, len(items))
	for _, item := range items {
		response = append(response, toItemResponse(item))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *ItemHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	item, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toItemResponse(item))
}

func toItemResponse(item model.Item) itemResponse {
	return itemResponse{
		ID:          item.ID,
		FeedID:      item.FeedID,
		Title:       item.Title,
		Link:        item.Link,
		Description: item.Description,
		ImageURL:    item.ImageURL,
		PublishedAt: item.PublishedAt.UTC().Format(time.RFC3339),
		CreatedAt:   item.CreatedAt.UTC().Format(time.RFC3339),
	}
}
