package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// Paths that only vulnerability scanners probe. Rejected with a plain 404
// before any other processing.
var (
	suspectPrefixes = []string{"/.", "/wp-", "/wp/", "/xmlrpc.php", "/telescope"}
	suspectExact    = map[string]bool{
		"/.git":        true,
		"/.git/config": true,
		"/.env":        true,
		"/info.php":    true,
		"/phpinfo.php": true,
	}
	suspectExts = []string{".php", ".phps", ".bak", ".env", ".git", ".sql"}
)

var cachedAssetExts = []string{".css", ".js", ".png", ".jpg", ".jpeg", ".svg", ".ico", ".webmanifest"}

// Hardening blocks scanner paths and sets security and cache headers.
func Hardening() gin.HandlerFunc {
	return func(c *gin.Context) {
		if isSuspiciousPath(c.Request.URL.Path, c.Request.URL.RawQuery) {
			c.String(http.StatusNotFound, "Not found")
			c.Abort()
			return
		}

		// Security headers
		proto := c.GetHeader("X-Forwarded-Proto")
		if proto == "" {
			proto = c.Request.URL.Scheme
		}
		if proto == "https" {
			c.Header("Strict-Transport-Security", "max-age=31536000; includeSubDomains; preload")
		}
		c.Header("X-Content-Type-Options", "nosniff")
		c.Header("X-Frame-Options", "DENY")
		c.Header("Referrer-Policy", "no-referrer-when-downgrade")

		// Cache fingerprinted static assets aggressively
		if isCacheableAsset(c.Request.URL.Path) {
			c.Header("Cache-Control", "public, max-age=31536000, immutable")
		}

		c.Next()
	}
}

func isSuspiciousPath(path, rawQuery string) bool {
	p := strings.ToLower(path)
	for _, prefix := range suspectPrefixes {
		if strings.HasPrefix(p, prefix) {
			return true
		}
	}
	if suspectExact[p] {
		return true
	}
	for _, ext := range suspectExts {
		if strings.HasSuffix(p, ext) {
			return true
		}
	}
	return strings.Contains(strings.ToLower(rawQuery), "rest_route=")
}

func isCacheableAsset(path string) bool {
	if strings.HasPrefix(path, "/static/") || strings.HasPrefix(path, "/favicon") {
		return true
	}
	for _, ext := range cachedAssetExts {
		if strings.HasSuffix(path, ext) {
			return true
		}
	}
	return false
}
