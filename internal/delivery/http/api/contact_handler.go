package api

import (
	"errors"
	"net/http"
	"strings"

	"go-marketing-backend/internal/domain"
	"go-marketing-backend/pkg/apperror"
	"go-marketing-backend/pkg/validation"

	"github.com/gin-gonic/gin"
)

type ContactHandler struct {
	contactUC domain.ContactUsecase
}

// NewContactHandler registers the contact routes (public, no auth required)
func NewContactHandler(api *gin.RouterGroup, contactUC domain.ContactUsecase) {
	handler := &ContactHandler{
		contactUC: contactUC,
	}

	api.POST("/contact", handler.SubmitContact)
}

// SubmitContact accepts a contact form submission as JSON or url-encoded
// form, validates it, and acknowledges immediately. Delivery runs in the
// background unless synchronous-debug dispatch is enabled.
func (h *ContactHandler) SubmitContact(c *gin.Context) {
	var req domain.ContactRequest
	if err := c.ShouldBind(&req); err != nil {
		detail := strings.Join(validation.FormatValidationErrors(err), "; ")
		c.Error(apperror.UnprocessableEntity(detail))
		return
	}

	sub, err := h.contactUC.SubmitContact(c.Request.Context(), &req)
	if err != nil {
		// A missing transport configuration is an operator problem, logged
		// distinctly from a runtime send failure.
		if errors.Is(err, domain.ErrNoTransportConfigured) {
			c.Error(apperror.New(http.StatusInternalServerError, "Contact service is not configured. Please try again later.", err))
			return
		}
		c.Error(apperror.New(http.StatusInternalServerError, "Failed to send message. Please try again later.", err))
		return
	}

	c.JSON(http.StatusOK, domain.ContactResponse{
		Success:   true,
		Message:   "Thank you for your message! We'll get back to you soon.",
		ContactID: sub.ID,
	})
}
