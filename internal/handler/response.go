package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/fetcher"
	"risible/backend/internal/service"
)

type errorResponse struct {
	Error string `json:"error"`
}

// writeServiceError maps service-layer failures onto HTTP statuses. Fetch
// failures surface as 502 with the fetch taxonomy's user message.
func writeServiceError(c echo.Context, err error) error {
	switch {
	case errors.Is(err, service.ErrInvalid):
		return c.JSON(http.StatusBadRequest, errorResponse{Error: "invalid request"})
	case errors.Is(err, service.ErrNotFound):
		return c.JSON(http.StatusNotFound, errorResponse{Error: "resource not found"})
	case errors.Is(err, service.ErrConflict):
		return c.JSON(http.StatusConflict, errorResponse{Error: "conflict"})
	case errors.Is(err, service.ErrSyncInProgress):
		return c.JSON(http.StatusConflict, errorResponse{Error: "sync already in progress"})
	}
	if fetcher.IsFetchError(err) {
		return c.JSON(http.StatusBadGateway, errorResponse{Error: fetcher.Message(err)})
	}
	return c.JSON(http.StatusInternalServerError, errorResponse{Error: "internal error"})
}
