package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"metagrow/internal/config"
	"metagrow/internal/metrics"
	"metagrow/internal/middleware"
	"metagrow/internal/modules/admin"
	"metagrow/internal/modules/contact"
	"metagrow/internal/modules/mailer"
	"metagrow/internal/modules/notify"
	jwtsvc "metagrow/internal/pkg/jwt"
	"metagrow/internal/repository"
)

const shutdownTimeout = 15 * time.Second

func main() {
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatal(err)
	}

	logger, err := newLogger(cfg.AppEnv)
	if err != nil {
		log.Fatal(err)
	}
	defer func() { _ = logger.Sync() }()

	var m mailer.Mailer
	if cfg.MailConfigured() {
		smtp, err := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword, cfg.MailSendTimeout)
		if err != nil {
			logger.Fatal("init smtp mailer", zap.Error(err))
		}
		m = smtp
		logger.Info("smtp mailer configured", zap.String("host", cfg.SMTPHost))
	} else {
		logger.Warn("smtp credentials missing, email notifications disabled")
	}

	contacts := repository.NewContactRepository()
	dispatcher := notify.NewDispatcher(m, cfg.ContactRecipient, cfg.MailFrom, cfg.MailSendTimeout, logger)
	hub := admin.NewHub()
	sessions := jwtsvc.New(cfg.SessionSecret, cfg.SessionTTL)
	creds := admin.NewStaticCredentials(cfg.AdminUsername, cfg.AdminPassword)

	contactService := contact.NewService(contacts, dispatcher, hub, logger)
	contactHandler := contact.NewHandler(contactService)
	adminHandler := admin.NewHandler(contactService, creds, sessions, hub, cfg.SessionTTL, cfg.CookieSecure, logger)

	if config.IsProdLike(cfg.AppEnv) {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(middleware.RequestLogger(logger))
	r.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	api := r.Group("/api")
	contactHandler.RegisterRoutes(api, admin.RequireAdmin(sessions))
	adminHandler.RegisterRoutes(r)

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(metrics.Handler()))

	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	go func() {
		logger.Info("server listening", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server failed", zap.Error(err))
		}
	}()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	<-ctx.Done()

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown", zap.Error(err))
	}
	// Join the fire-and-forget mail sends so a slow provider cannot leave
	// dangling work behind the exiting process.
	if err := dispatcher.Shutdown(shutdownCtx); err != nil {
		logger.Warn("notification dispatcher did not drain", zap.Error(err))
	}
	hub.Close()
}

func newLogger(appEnv string) (*zap.Logger, error) {
	if appEnv == "dev" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
