package api

import (
	"net/http"
	"strings"

	"go-marketing-backend/internal/domain"
	"go-marketing-backend/pkg/apperror"
	"go-marketing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

// StatusHandler exposes the demo in-memory status-check log.
type StatusHandler struct {
	store domain.StatusStore
}

func NewStatusHandler(api *gin.RouterGroup, store domain.StatusStore) {
	handler := &StatusHandler{store: store}

	api.POST("/status", handler.CreateStatusCheck)
	api.GET("/status", handler.ListStatusChecks)
}

func (h *StatusHandler) CreateStatusCheck(c *gin.Context) {
	var req domain.StatusCheckCreate
	if err := c.ShouldBind(&req); err != nil {
		detail := strings.Join(validation.FormatValidationErrors(err), "; ")
		c.Error(apperror.UnprocessableEntity(detail))
		return
	}

	c.JSON(http.StatusOK, h.store.Append(req.ClientName))
}

func (h *StatusHandler) ListStatusChecks(c *gin.Context) {
	checks := h.store.List()
	if checks == nil {
		checks = []domain.StatusCheck{}
	}
	c.JSON(http.StatusOK, checks)
}
