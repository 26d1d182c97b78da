package api

import (
	"net/http"
	"time"

	"go-marketing-backend/config"

	"github.com/gin-gonic/gin"
)

// SystemHandler serves health and deployment-metadata endpoints.
type SystemHandler struct {
	cfg *config.Config
}

func NewSystemHandler(api *gin.RouterGroup, cfg *config.Config) {
	handler := &SystemHandler{cfg: cfg}

	api.GET("/health", handler.Health)
	api.GET("/version", handler.Version)
}

func (h *SystemHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
	})
}

func (h *SystemHandler) Version(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"release": h.cfg.ReleaseVersion,
		"commit":  h.cfg.ReleaseCommit,
		"time":    time.Now().UTC().Format(time.RFC3339),
	})
}

// Healthz is the unauthenticated liveness probe, mounted at the root so
// infrastructure can reach it past host filtering.
func Healthz(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true})
}
