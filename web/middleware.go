package web

import (
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
)

// sessionCookie names the cookie that ties a browser to its search state
const sessionCookie = "session_id"

// CorsMiddleware handles CORS headers for cross-origin requests
func CorsMiddleware(c rweb.Context) error {
	c.Response().SetHeader("Access-Control-Allow-Origin", "*")
	c.Response().SetHeader("Access-Control-Allow-Methods", "GET, PUT, OPTIONS")
	c.Response().SetHeader("Access-Control-Allow-Headers", "Content-Type, X-Body-Encoding")

	// Handle preflight OPTIONS requests
	if c.Request().Method() == "OPTIONS" {
		c.SetStatus(http.StatusOK)
		return nil
	}

	return c.Next()
}

// SessionMiddleware makes sure every request carries a session id.
// Unknown or malformed cookies are replaced with a fresh one.
func SessionMiddleware(c rweb.Context) error {
	sessionID, err := c.GetCookie(sessionCookie)
	if err != nil || !validSessionID(sessionID) {
		sessionID = uuid.New().String()
		if err := c.SetCookie(sessionCookie, sessionID); err != nil {
			logger.LogErr(err, "failed to set session cookie")
		}
	}

	c.Set("session_id", sessionID)
	return c.Next()
}

// SecurityHeadersMiddleware adds security headers to responses
func SecurityHeadersMiddleware(c rweb.Context) error {
	c.Response().SetHeader("X-Content-Type-Options", "nosniff")
	c.Response().SetHeader("X-Frame-Options", "DENY")
	c.Response().SetHeader("Referrer-Policy", "strict-origin-when-cross-origin")

	// Only our own assets; oninput handlers need inline script
	csp := []string{
		"default-src 'self'",
		"script-src 'self' 'unsafe-inline'",
		"style-src 'self'",
		"img-src 'self' data:",
		"connect-src 'self'",
	}
	c.Response().SetHeader("Content-Security-Policy", strings.Join(csp, "; "))

	return c.Next()
}

// LoggingMiddleware provides detailed request logging
func LoggingMiddleware(c rweb.Context) error {
	start := time.Now()

	logger.Debug("Request started",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
	)

	err := c.Next()

	logger.Debug("Request completed",
		"method", c.Request().Method(),
		"path", c.Request().Path(),
		"duration", time.Since(start),
		"error", err,
	)

	return err
}

func validSessionID(id string) bool {
	_, err := uuid.Parse(id)
	return err == nil
}
