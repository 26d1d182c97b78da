package api

import (
	"time"

	"go-marketing-backend/config"
	"go-marketing-backend/internal/delivery/http/middleware"
	"go-marketing-backend/internal/domain"
	"go-marketing-backend/pkg/crm"
	"go-marketing-backend/pkg/notify"

	"github.com/gin-gonic/gin"
)

type RouterDeps struct {
	ContactUC      domain.ContactUsecase
	StatusStore    domain.StatusStore
	RelayTransport notify.Transport
	SMTPTransport  notify.Transport
	CRMClient      *crm.Client
	LocalTime      *time.Location
	Config         *config.Config
}

func NewRouter(deps RouterDeps) *gin.Engine {
	r := gin.New()

	// Global Middlewares. Hardening runs first so scanner paths get their
	// 404 before any other processing (CORS preflight and host checks
	// included).
	r.Use(middleware.Hardening())
	r.Use(middleware.TrustedHost(deps.Config.AllowedHosts))
	r.Use(middleware.HTTPSRedirect())
	r.Use(middleware.CORSMiddleware(deps.Config.AllowedOrigins))
	r.Use(gin.Recovery())
	r.Use(gin.Logger())
	r.Use(middleware.RequestID())
	r.Use(middleware.ErrorHandler())

	// Lightweight liveness probe for infra
	r.GET("/healthz", Healthz)

	api := r.Group("/api")

	NewSystemHandler(api, deps.Config)
	NewContactHandler(api, deps.ContactUC)
	NewStatusHandler(api, deps.StatusStore)
	NewDiagnosticsHandler(api, deps.RelayTransport, deps.SMTPTransport, deps.CRMClient, deps.LocalTime)

	// Everything else is the prebuilt site
	RegisterStatic(r, deps.Config.BuildDir)

	return r
}
