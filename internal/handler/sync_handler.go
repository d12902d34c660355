package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/model"
	"risible/backend/internal/service"
)

type SyncHandler struct {
	service service.SyncService
}

type syncStatusResponse struct {
	IsSyncing    bool    `json:"isSyncing"`
	LastSyncedAt *string `json:"lastSyncedAt,omitempty"`
}

type syncErrorResponse struct {
	FeedID    int64  `json:"feedId"`
	FeedTitle string `json:"feedTitle"`
	FeedURL   string `json:"feedUrl"`
	Kind      string `json:"kind"`
	Message   string `json:"message"`
	At        string `json:"at"`
}

func NewSyncHandler(service service.SyncService) *SyncHandler {
	return &SyncHandler{service: service}
}

func (h *SyncHandler) RegisterRoutes(g *echo.Group) {
	g.POST("/sync", h.SyncAll)
	g.POST("/sync/categories/:id", h.SyncCategory)
	g.GET("/sync/status", h.Status)
	g.GET("/sync/errors", h.Errors)
	g.DELETE("/sync/errors/:feedId", h.DismissError)
}

// SyncAll triggers a full pass and blocks until it finishes. A pass already
// in flight answers 409.
func (h *SyncHandler) SyncAll(c echo.Context) error {
	if err := h.service.SyncAll(c.Request().Context()); err != nil {
		return writeServiceError(c, err)
	}
	return h.Errors(c)
}

func (h *SyncHandler) SyncCategory(c echo.Context) error {
	id, err := parseIDParam(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	if err := h.service.SyncCategory(c.Request().Context(), id); err != nil {
		return writeServiceError(c, err)
	}
	return h.Errors(c)
}

func (h *SyncHandler) Status(c echo.Context) error {
	status := h.service.Status()
	resp := syncStatusResponse{IsSyncing: status.IsSyncing}
	if status.LastSyncedAt != nil {
		formatted := status.LastSyncedAt.UTC().Format(time.RFC3339)
		resp.LastSyncedAt = &formatted
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *SyncHandler) Errors(c echo.Context) error {
	errs := h.service.Errors()
	response := make([]syncErrorResponse, 0, len(errs))
	for _, e := range errs {
		response = append(response, toSyncErrorResponse(e))
	}
	return c.JSON(http.StatusOK, response)
}

func (h *SyncHandler) DismissError(c echo.Context) error {
	feedID, err := parseIDParam(c, "feedId")
	if err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}
	h.service.DismissError(feedID)
	return c.NoContent(http.StatusNoContent)
}

func toSyncErrorResponse(e model.SyncError) syncErrorResponse {
	return syncErrorResponse{
		FeedID:    e.FeedID,
		FeedTitle: e.FeedTitle,
		FeedURL:   e.FeedURL,
		Kind:      e.Kind,
		Message:   e.Message,
		At:        e.At.UTC().Format(time.RFC3339),
	}
}
