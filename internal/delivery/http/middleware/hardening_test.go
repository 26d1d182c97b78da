package middleware_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"go-marketing-backend/internal/delivery/http/middleware"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func newHardenedRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(middleware.Hardening())
	r.GET("/api/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "healthy"}) })
	r.GET("/static/app.js", func(c *gin.Context) { c.String(200, "ok") })
	return r
}

func get(r *gin.Engine, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestHardeningBlocksScannerPaths(t *testing.T) {
	r := newHardenedRouter()

	blocked := []string{
		"/wp-login.php",
		"/wp/",
		"/xmlrpc.php",
		"/.env",
		"/.git/config",
		"/phpinfo.php",
		"/backup.sql",
		"/site.bak",
		"/index.PHP",
		"/telescope/requests",
		"/?rest_route=/wp/v2/users",
	}
	for _, path := range blocked {
		w := get(r, path)
		assert.Equal(t, http.StatusNotFound, w.Code, "path %s should be blocked", path)
	}
}

func TestHardeningPassesNormalTraffic(t *testing.T) {
	r := newHardenedRouter()

	w := get(r, "/api/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "nosniff", w.Header().Get("X-Content-Type-Options"))
	assert.Equal(t, "DENY", w.Header().Get("X-Frame-Options"))
}

func TestHardeningHSTSOnlyOverHTTPS(t *testing.T) {
	r := newHardenedRouter()

	w := get(r, "/api/health")
	assert.Empty(t, w.Header().Get("Strict-Transport-Security"))

	req := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	req.Header.Set("X-Forwarded-Proto", "https")
	w = httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Contains(t, w.Header().Get("Strict-Transport-Security"), "max-age=")
}

func TestHardeningCachesStaticAssets(t *testing.T) {
	r := newHardenedRouter()

	w := get(r, "/static/app.js")
	assert.Contains(t, w.Header().Get("Cache-Control"), "immutable")

	w = get(r, "/api/health")
	assert.Empty(t, w.Header().Get("Cache-Control"))
}

func TestTrustedHost(t *testing.T) {
	gin.SetMode(gin.TestMode)

	newRouter := func(hosts []string) *gin.Engine {
		r := gin.New()
		r.Use(middleware.TrustedHost(hosts))
		r.GET("/healthz", func(c *gin.Context) { c.JSON(200, gin.H{"ok": true}) })
		r.GET("/api/health", func(c *gin.Context) { c.JSON(200, gin.H{"status": "healthy"}) })
		return r
	}

	request := func(r *gin.Engine, host, path string) *httptest.ResponseRecorder {
		req := httptest.NewRequest(http.MethodGet, path, nil)
		req.Host = host
		w := httptest.NewRecorder()
		r.ServeHTTP(w, req)
		return w
	}

	t.Run("empty allowlist allows everything", func(t *testing.T) {
		r := newRouter(nil)
		assert.Equal(t, http.StatusOK, request(r, "anything.example", "/api/health").Code)
	})

	t.Run("exact and wildcard matches allowed", func(t *testing.T) {
		r := newRouter([]string{"example.com", "*.herokuapp.com"})
		assert.Equal(t, http.StatusOK, request(r, "example.com", "/api/health").Code)
		assert.Equal(t, http.StatusOK, request(r, "example.com:443", "/api/health").Code)
		assert.Equal(t, http.StatusOK, request(r, "myapp.herokuapp.com", "/api/health").Code)
	})

	t.Run("unknown host rejected", func(t *testing.T) {
		r := newRouter([]string{"example.com"})
		w := request(r, "evil.example", "/api/health")
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Contains(t, w.Body.String(), "Invalid host header")
	})

	t.Run("healthz bypasses host filtering", func(t *testing.T) {
		r := newRouter([]string{"example.com"})
		assert.Equal(t, http.StatusOK, request(r, "10.0.0.5", "/healthz").Code)
	})
}
