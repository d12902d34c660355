package handler_test

import (
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"risible/backend/internal/handler"
)

func assertRoute(t *testing.T, routes []*echo.Route, method, path string) {
	t.Helper()
	for _, r := range routes {
		if r.Method == method && r.Path == path {
			return
		}
	}
	t.Fatalf("route not found: %s %s", method, path)
}

func TestHandler_RegisterRoutes(t *testing.T) {
	e := newTestEcho()
	g := e.Group("")

	handler.NewCategoryHandler(nil).RegisterRoutes(g)
	handler.NewFeedHandler(nil).RegisterRoutes(g)
	handler.NewItemHandler(nil).RegisterRoutes(g)
	handler.NewSyncHandler(nil).RegisterRoutes(g)
	handler.NewSettingsHandler(nil).RegisterRoutes(g)
	handler.NewDiscoverHandler().RegisterRoutes(g)
	handler.NewOPMLHandler(nil).RegisterRoutes(g)

	routes := e.Routes()

	assertRoute(t, routes, http.MethodPost, "/categories")
	assertRoute(t, routes, http.MethodGet, "/categories")
	assertRoute(t, routes, http.MethodPut, "/categories/reorder")
	assertRoute(t, routes, http.MethodPut, "/categories/:id")
	assertRoute(t, routes, http.MethodDelete, "/categories/:id")

	assertRoute(t, routes, http.MethodPost, "/feeds")
	assertRoute(t, routes, http.MethodGet, "/feeds")
	assertRoute(t, routes, http.MethodGet, "/feeds/preview")
	assertRoute(t, routes, http.MethodGet, "/feeds/:id")
	assertRoute(t, routes, http.MethodPut, "/feeds/:id")
	assertRoute(t, routes, http.MethodDelete, "/feeds/:id")

	assertRoute(t, routes, http.MethodGet, "/items")
	assertRoute(t, routes, http.MethodGet, "/items/:id")

	assertRoute(t, routes, http.MethodPost, "/sync")
	assertRoute(t, routes, http.MethodPost, "/sync/categories/:id")
	assertRoute(t, routes, http.MethodGet, "/sync/status")
	assertRoute(t, routes, http.MethodGet, "/sync/errors")
	assertRoute(t, routes, http.MethodDelete, "/sync/errors/:feedId")

	assertRoute(t, routes, http.MethodGet, "/settings")
	assertRoute(t, routes, http.MethodPut, "/settings")

	assertRoute(t, routes, http.MethodGet, "/discover/feeds")

	assertRoute(t, routes, http.MethodPost, "/opml/import")
	assertRoute(t, routes, http.MethodGet, "/opml/export")
}
