package http

import (
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"risible/backend/internal/handler"
)

// NewRouter wires every handler under /api and optionally serves a static
// frontend build from staticDir.
func NewRouter(
	categoryHandler *handler.CategoryHandler,
	feedHandler *handler.FeedHandler,
	itemHandler *handler.ItemHandler,
	syncHandler *handler.SyncHandler,
	settingsHandler *handler.SettingsHandler,
	discoverHandler *handler.DiscoverHandler,
	opmlHandler *handler.OPMLHandler,
	staticDir string,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	api := e.Group("/api")
	categoryHandler.RegisterRoutes(api)
	feedHandler.RegisterRoutes(api)
	itemHandler.RegisterRoutes(api)
	syncHandler.RegisterRoutes(api)
	settingsHandler.RegisterRoutes(api)
	discoverHandler.RegisterRoutes(api)
	opmlHandler.RegisterRoutes(api)

	registerStatic(e, staticDir)

	return e
}
