package api

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"go-marketing-backend/pkg/logger"

	"github.com/gin-gonic/gin"
)

// RegisterStatic serves the prebuilt site from buildDir at the root, with an
// index.html fallback for client-side routes. When the directory is missing
// the server runs in API-only mode.
func RegisterStatic(r *gin.Engine, buildDir string) {
	info, err := os.Stat(buildDir)
	if err != nil || !info.IsDir() {
		logger.Log.Warn("Build directory not found, running API-only", "dir", buildDir)
		r.NoRoute(func(c *gin.Context) {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
		})
		return
	}

	logger.Log.Info("Serving static site", "dir", buildDir)
	index := filepath.Join(buildDir, "index.html")

	r.NoRoute(func(c *gin.Context) {
		if strings.HasPrefix(c.Request.URL.Path, "/api/") {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}
		if c.Request.Method != http.MethodGet && c.Request.Method != http.MethodHead {
			c.JSON(http.StatusNotFound, gin.H{"detail": "Not Found"})
			return
		}

		// Resolve inside the build dir only.
		rel := filepath.Clean(strings.TrimPrefix(c.Request.URL.Path, "/"))
		if rel == "." || strings.HasPrefix(rel, "..") {
			c.File(index)
			return
		}

		full := filepath.Join(buildDir, rel)
		if stat, err := os.Stat(full); err == nil && !stat.IsDir() {
			c.File(full)
			return
		}

		// SPA fallback: unknown paths get the app shell.
		c.File(index)
	})
}
