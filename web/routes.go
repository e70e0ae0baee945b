package web

import (
	"hackerstories/web/api"
	"hackerstories/web/pages"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// setupRoutes configures all application routes
func setupRoutes(s *rweb.Server, stories api.Stories) {
	// Page routes - HTML responses
	s.Get("/", func(ctx rweb.Context) error {
		app := mountApp(ctx, stories)
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(app.RenderPage())
	})

	// Partial - the List component only, swapped in by the page script on each keystroke
	s.Get("/partials/stories", func(ctx rweb.Context) error {
		app := mountApp(ctx, stories)
		ctx.Response().SetHeader("Content-Type", "text/html; charset=utf-8")
		return ctx.WriteHTML(app.RenderList())
	})

	// Health check endpoint
	s.Get("/health", api.Health)

	// API v1 routes - JSON responses
	s.Get("/api/v1/stories", stories.ListStories) // Filtered stories (JSON or msgpack)
	s.Get("/api/v1/search", stories.GetSearch)    // Current search text of the session
	s.Put("/api/v1/search", stories.UpdateSearch) // Replace the search text
}

// mountApp builds the root container for the request's session and applies
// a ?search= change, if any, through the root's own callback.
// A GET with ?search= therefore changes the session's state. The page's
// plain GET form relies on this when scripts are off, and the partial
// route is how the script reports each keystroke.
func mountApp(ctx rweb.Context, stories api.Stories) pages.App {
	app := pages.NewApp(stories.Records, stories.SessionState(ctx))
	if term, ok := api.SearchParam(ctx); ok {
		app.HandleSearchChange(term)
	}
	logger.Debug("Root mounted", "path", ctx.Request().Path())
	return app
}
