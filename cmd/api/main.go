package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-marketing-backend/config"
	"go-marketing-backend/internal/delivery/http/api"
	"go-marketing-backend/internal/usecase"
	"go-marketing-backend/pkg/crm"
	"go-marketing-backend/pkg/logger"
	"go-marketing-backend/pkg/notify"
	"go-marketing-backend/pkg/validation"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load Config
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// 2. Setup Logger
	logger.Init()
	logger.Log.Info("Starting marketing backend", "port", cfg.Port, "dispatch_mode", cfg.DispatchMode)

	// 3. Register custom binding validators (phone digit rule)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		validation.RegisterValidators(v)
	}

	// 4. Local timezone for notification timestamps
	loc, err := time.LoadLocation(cfg.LocalTZ)
	if err != nil {
		logger.Log.Warn("Unknown LOCAL_TZ, falling back to UTC", "tz", cfg.LocalTZ)
		loc = time.UTC
	}

	// 5. Setup notification transports and dispatch policy
	relay := notify.NewRelaySender(cfg)
	smtpSender := notify.NewSMTPSender(cfg)
	dispatcher := notify.NewDispatcher(notify.ParseMode(cfg.DispatchMode), relay, smtpSender)
	if !dispatcher.Available() {
		logger.Log.Warn("No notification transport available - contact form submissions will be rejected")
	}

	// 6. Setup CRM client (best-effort, may be unconfigured)
	crmClient := crm.NewClient(cfg)

	// 7. Setup UseCases
	contactUC := usecase.NewContactUsecase(dispatcher, crmClient, loc, cfg.SyncDispatch)
	statusStore := usecase.NewStatusStore()

	// 8. Setup Router
	router := api.NewRouter(api.RouterDeps{
		ContactUC:      contactUC,
		StatusStore:    statusStore,
		RelayTransport: relay,
		SMTPTransport:  smtpSender,
		CRMClient:      crmClient,
		LocalTime:      loc,
		Config:         cfg,
	})

	// 9. Start Server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: router,
	}

	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Log.Error("Listen failed", "error", err)
		}
	}()

	// Graceful Shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Log.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		logger.Log.Error("Server forced to shutdown", "error", err)
	}

	logger.Log.Info("Server exiting")
}
