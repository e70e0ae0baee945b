package web

import (
	"hackerstories/config"
	"hackerstories/models"
	"hackerstories/web/api"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// NewServer creates and configures the RWeb server.
// Stories are seeded once here; every session gets its own search state.
func NewServer(cfg config.Config) *rweb.Server {
	s := rweb.NewServer(rweb.ServerOptions{
		Address: cfg.Server.Address,
		Verbose: cfg.Server.Verbose,
	})

	// Apply middleware
	s.Use(rweb.RequestInfo)          // Logs request info
	s.Use(CorsMiddleware)            // Custom CORS middleware
	s.Use(SessionMiddleware)         // Session id cookie
	s.Use(SecurityHeadersMiddleware) // Security headers
	s.Use(LoggingMiddleware)         // Request logging

	stories := api.Stories{
		Records: models.SeedStories(),
		States:  models.NewSearchStates(cfg.Search.Default),
	}
	setupRoutes(s, stories)

	// Unmount search states of sessions that stopped coming back
	stories.States.StartSweeper(cfg.Search.SessionTTL)

	// Serve static files using embedded FS
	SetupStaticFiles(s)

	return s
}

// Run starts the server
func Run(s *rweb.Server, address string) error {
	logger.Info("Hacker Stories server starting", "address", address)
	return s.Run()
}
