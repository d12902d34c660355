package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/service"
)

type SettingsHandler struct {
	service service.SettingsService
}

type settingsResponse struct {
	DefaultRefreshIntervalSeconds int  `json:"defaultRefreshIntervalSeconds"`
	GlobalPause                   bool `json:"globalPause"`
}

type updateSettingsRequest struct {
	DefaultRefreshIntervalSeconds *int  `json:"defaultRefreshIntervalSeconds"`
	GlobalPause                   *bool `json:"globalPause"`
}

func NewSettingsHandler(service service.SettingsService) *SettingsHandler {
	return &SettingsHandler{service: service}
}

func (h *SettingsHandler) RegisterRoutes(g *echo.Group) {
	g.GET("/settings", h.Get)
	g.PUT("/settings", h.Update)
}

func (h *SettingsHandler) Get(c echo.Context) error {
	ctx := c.Request().Context()
	return c.JSON(http.StatusOK, settingsResponse{
		DefaultRefreshIntervalSeconds: h.service.DefaultRefreshInterval(ctx),
		GlobalPause:                   h.service.GlobalPause(ctx),
	})
}

func (h *SettingsHandler) Update(c echo.Context) error {
	var req updateSettingsRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	}

	ctx := c.Request().Context()
	if req.DefaultRefreshIntervalSeconds != nil {
		if err := h.service.SetDefaultRefreshInterval(ctx, *req.DefaultRefreshIntervalSeconds); err != nil {
			return writeServiceError(c, err)
		}
	}
	if req.GlobalPause != nil {
		if err := h.service.SetGlobalPause(ctx, *req.GlobalPause); err != nil {
			return writeServiceError(c, err)
		}
	}
	return h.Get(c)
}
