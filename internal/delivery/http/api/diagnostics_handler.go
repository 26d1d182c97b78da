package api

import (
	"net/http"
	"time"

	"go-marketing-backend/internal/delivery/http/response"
	"go-marketing-backend/pkg/apperror"
	"go-marketing-backend/pkg/crm"
	"go-marketing-backend/pkg/notify"

	"github.com/gin-gonic/gin"
)

// DiagnosticsHandler exposes operator endpoints that perform a real send
// through a single transport (or the CRM) and echo the raw outcome. Not for
// end users.
type DiagnosticsHandler struct {
	relay notify.Transport
	smtp  notify.Transport
	crm   *crm.Client
	loc   *time.Location
}

func NewDiagnosticsHandler(api *gin.RouterGroup, relay, smtp notify.Transport, crmClient *crm.Client, loc *time.Location) {
	handler := &DiagnosticsHandler{relay: relay, smtp: smtp, crm: crmClient, loc: loc}

	api.GET("/test-relay", handler.TestRelay)
	api.POST("/test-relay", handler.TestRelay)
	api.GET("/test-smtp", handler.TestSMTP)
	api.POST("/test-smtp", handler.TestSMTP)
	api.GET("/test-crm", handler.TestCRM)
}

func (h *DiagnosticsHandler) TestRelay(c *gin.Context) {
	h.testTransport(c, h.relay)
}

func (h *DiagnosticsHandler) TestSMTP(c *gin.Context) {
	h.testTransport(c, h.smtp)
}

func (h *DiagnosticsHandler) testTransport(c *gin.Context, t notify.Transport) {
	if !t.Configured() {
		c.Error(apperror.New(http.StatusInternalServerError, t.Name()+" transport is not configured", nil))
		return
	}

	msg := h.sampleMessage(c.Request.Method)
	if err := t.Send(c.Request.Context(), msg); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, t.Name()+" send failed: "+err.Error(), err))
		return
	}

	response.Success(c, http.StatusOK, "Test message sent", gin.H{
		"transport": t.Name(),
	})
}

func (h *DiagnosticsHandler) TestCRM(c *gin.Context) {
	if !h.crm.Configured() {
		c.Error(apperror.New(http.StatusInternalServerError, "crm is not configured", nil))
		return
	}

	ctx := c.Request.Context()
	contactID, err := h.crm.CreateContact(ctx, crm.ContactInput{
		FirstName: "Test",
		LastName:  "User",
		Email:     "test@example.com",
	})
	if err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "crm contact creation failed: "+err.Error(), err))
		return
	}

	if err := h.crm.CreateTask(ctx, contactID, "Follow up: Test User", "Service interest: Testing"); err != nil {
		c.Error(apperror.New(http.StatusInternalServerError, "crm task creation failed: "+err.Error(), err))
		return
	}

	response.Success(c, http.StatusOK, "CRM contact and task created", gin.H{
		"contact_id": contactID,
	})
}

func (h *DiagnosticsHandler) sampleMessage(method string) notify.Message {
	return notify.Message{
		Name:    "Test User (" + method + ")",
		Company: "Operations",
		Service: "Testing",
		Email:   "test@example.com",
		Phone:   "+1 (555) 000-0000",
		Time:    notify.Timestamp(h.loc),
		Body:    "Server test from " + method + " transport diagnostics.",
	}
}
