package web

import (
	"embed"
	"io"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/rohanthewiz/logger"
	"github.com/rohanthewiz/rweb"
	"github.com/rohanthewiz/serr"
)

//go:embed all:static
var staticFiles embed.FS

// faviconSVG is served for /favicon.ico so no icon file is needed
const faviconSVG = `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 500 500"><rect width="500" height="500" rx="40" fill="#b5400a"/><text x="250" y="320" font-family="Arial,sans-serif" font-weight="900" font-size="220" fill="white" text-anchor="middle">HS</text></svg>`

// SetupStaticFiles configures static file serving using embedded files
func SetupStaticFiles(s *rweb.Server) {
	staticFS, err := fs.Sub(staticFiles, "static")
	if err != nil {
		logger.LogErr(serr.Wrap(err, "failed to get static subdirectory"), "static files disabled")
		return
	}

	s.Get("/favicon.ico", func(c rweb.Context) error {
		c.Response().SetHeader("Content-Type", "image/svg+xml")
		c.Response().SetHeader("Cache-Control", "public, max-age=86400")
		return c.Bytes([]byte(faviconSVG))
	})

	s.Get("/static/*", func(c rweb.Context) error {
		name := strings.TrimPrefix(c.Request().Path(), "/static/")

		content, err := readStatic(staticFS, name)
		if err != nil {
			c.SetStatus(http.StatusNotFound)
			return nil
		}

		if contentType := getContentType(name); contentType != "" {
			c.Response().SetHeader("Content-Type", contentType)
		}
		// Pages reference assets with a ?v= version, so an hour is plenty
		c.Response().SetHeader("Cache-Control", "public, max-age=3600")

		return c.Bytes(content)
	})
}

// readStatic returns the content of a regular file in fsys.
// Directories and anything outside fsys are reported as errors.
func readStatic(fsys fs.FS, name string) ([]byte, error) {
	name = path.Clean(name)
	if !fs.ValidPath(name) {
		return nil, serr.New("invalid static path " + name)
	}

	file, err := fsys.Open(name)
	if err != nil {
		return nil, serr.Wrap(err, "failed to open static file")
	}
	defer file.Close()

	stat, err := file.Stat()
	if err != nil {
		return nil, serr.Wrap(err, "failed to stat static file")
	}
	if stat.IsDir() {
		return nil, serr.New("static path is a directory: " + name)
	}

	content, err := io.ReadAll(file)
	if err != nil {
		return nil, serr.Wrap(err, "failed to read static file")
	}
	return content, nil
}

// getContentType returns the content type based on file extension
func getContentType(name string) string {
	switch {
	case strings.HasSuffix(name, ".css"):
		return "text/css; charset=utf-8"
	case strings.HasSuffix(name, ".js"):
		return "application/javascript"
	case strings.HasSuffix(name, ".svg"):
		return "image/svg+xml"
	case strings.HasSuffix(name, ".png"):
		return "image/png"
	default:
		return ""
	}
}
