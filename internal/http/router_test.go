package http_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"

	"risible/backend/internal/handler"
	internalhttp "risible/backend/internal/http"
)

func hasRoute(e *echo.Echo, method, path string) bool {
	for _, r := range e.Routes() {
		if r.Method == method && r.Path == path {
			return true
		}
	}
	return false
}

func TestNewRouter_RegistersRoutes(t *testing.T) {
	e := internalhttp.NewRouter(
		handler.NewCategoryHandler(nil),
		handler.NewFeedHandler(nil),
		handler.NewItemHandler(nil),
		handler.NewSyncHandler(nil),
		handler.NewSettingsHandler(nil),
		handler.NewDiscoverHandler(),
		handler.NewOPMLHandler(nil),
		"",
	)

	require.NotNil(t, e)
	require.True(t, hasRoute(e, http.MethodGet, "/api/feeds"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/items"))
	require.True(t, hasRoute(e, http.MethodPost, "/api/sync"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/discover/feeds"))
	require.True(t, hasRoute(e, http.MethodGet, "/api/opml/export"))
	// No static dir configured, so no catch-all route.
	require.False(t, hasRoute(e, http.MethodGet, "/*"))
}
