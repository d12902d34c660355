package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/model"
	"risible/backend/internal/service"
)

type FeedHandler struct {
	service service.FeedService
}

type createFeedRequest struct {
	URL        string `json:"url"`
	CategoryID *int64 `json:"categoryId"`
	Nickname   string `json:"nickname"`
}

type updateFeedRequest struct {
	Nickname               *string `json:"nickname"`
	CategoryID             *int64  `json:"categoryId"`
	ClearCategory          bool    `json:"clearCategory"`
	RefreshIntervalSeconds *int    `json:"refreshIntervalSeconds"`
	ClearRefreshInterval   bool    `json:"clearRefreshInterval"`
	Paused                 *bool   `json:"paused"`
	NotifyEnabled          *bool   `json:"notifyEnabled"`
}

type feedResponse struct {
	ID                     int64   `json:"id"`
	CategoryID             *int64  `json:"categoryId,omitempty"`
	Title                  string  `json:"title"`
	DisplayName            string  `json:"displayName"`
	URL                    string  `json:"url"`
	Nickname               *string `json:"nickname,omitempty"`
	RefreshIntervalSeconds *int    `json:"refreshIntervalSeconds,omitempty"`
	Paused                 bool    `json:"paused"`
	NotifyEnabled          bool    `json:"notifyEnabled"`
	LastSyncedAt           *string `json:"lastSyncedAt,omitempty"`
	CreatedAt              string  `json:"createdAt"`
	UpdatedAt              string  `json:"updatedAt"`
}

type feedPreviewResponse struct {
	Title string               `json:"title"`
	Items []parsedItemResponse `json:"items"`
}

type parsedItemResponse struct {
	Title       string  `json:"title"`
	Link        string  `json:"link"`
	Description *string `json:"description,omitempty"`
	ImageURL    *string `json:"imageUrl,omitempty"`
	PublishedAt string  `json:"publishedAt"`
}

func NewFeedHandler(service service.FeedService) *FeedHandler {
	return &FeedHandler{service: service}
}

func (h *FeedHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/feeds", h.Create)
	g.GET("/feeds/preview", h.Preview)
	g.GET("/feeds", h.List)
	g.GET("/feeds/:id", h.Get)
	g.PUT("/feeds/:id", h.Update)
	g.DELETE("/feeds/:id", h.Delete)
}

func (h *FeedHandler) Create(c echo.Context) error {
	var req createFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Subscribe(c.Request().Context(), req.URL, req.CategoryID, req.Nickname)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusCreated, toFeedResponse(feed))
}

func (h *FeedHandler) Preview(c echo.Context) error {
	rawURL := c.QueryParam("url")
	if rawURL == "" {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	parsed, err := h.service.Preview(c.Request().Context(), rawURL)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedPreviewResponse(parsed))
}

func (h *FeedHandler) List(c echo.Context) error {
	categoryID, err := parseOptionalID(c, "categoryId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feeds, err := h.service.List(c.Request().Context(), categoryID)
	if err != nil {
		return writeServiceError(c, err)
	}
	response := make([]feedResponse, 0, len(feeds))
	for _, feed := range feeds {
		response = append(response, toFeedResponse(feed))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *FeedHandler) Get(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Get(c.Request().Context(), id)
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponse(feed))
}

func (h *FeedHandler) Update(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	var req updateFeedRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	feed, err := h.service.Update(c.Request().Context(), id, service.FeedUpdate{
		Nickname:               req.Nickname,
		CategoryID:             req.CategoryID,
		ClearCategory:          req.ClearCategory,
		RefreshIntervalSeconds: req.RefreshIntervalSeconds,
		ClearRefreshInterval:   req.ClearRefreshInterval,
		Paused:                 req.Paused,
		NotifyEnabled:          req.NotifyEnabled,
	})
	if err != nil {
		return writeServiceError(c, err)
	}
	return c.JSON(http.StatusOK, toFeedResponse(feed))
}

func (h *FeedHandler) Delete(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}

func toFeedResponse(feed model.Feed) feedResponse {
	resp := feedResponse{
		ID:                     feed.ID,
		CategoryID:             feed.CategoryID,
		Title:                  feed.Title,
		DisplayName:            feed.DisplayName(),
		URL:                    feed.URL,
		Nickname:               feed.Nickname,
		RefreshIntervalSeconds: feed.RefreshIntervalSeconds,
		Paused:                 feed.Paused,
		NotifyEnabled:          feed.NotifyEnabled,
		CreatedAt:              feed.CreatedAt.UTC().Format(time.RFC3339),
		UpdatedAt:              feed.UpdatedAt.UTC().Format(time.RFC3339),
	}
	if feed.LastSyncedAt != nil {
		formatted := feed.LastSyncedAt.UTC().Format(time.RFC3339)
		resp.LastSyncedAt = &formatted
	}
	return resp
}

func toFeedPreviewResponse(parsed *model.ParsedFeed) feedPreviewResponse {
	items := make([]parsedItemResponse, 0, len(parsed.Items))
	for _, item := range parsed.Items {
		items = append(items, parsedItemResponse{
			Title:       item.Title,
			Link:        item.Link,
			Description: item.Description,
			ImageURL:    item.ImageURL,
			PublishedAt: item.PublishedAt.UTC().Format(time.RFC3339),
		})
	}
	return feedPreviewResponse{Title: parsed.Title, Items: items}
}
