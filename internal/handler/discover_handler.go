package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/service"
)

// DiscoverHandler serves the built-in subscription suggestions.
type DiscoverHandler struct{}

func NewDiscoverHandler() *DiscoverHandler {
	return &DiscoverHandler{}
}

func (h *DiscoverHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/discover/feeds", h.List)
}

func (h *DiscoverHandler) List(c echo.Context) error {
	return c.JSON(http.StatusOK, service.CuratedFeeds())
}
