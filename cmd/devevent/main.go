// @title DevEvent API
// @version 1.0
// @description Developer event listing and booking API.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Organizer token: "Bearer <jwt>"
package main

import (
	"context"
	"errors"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/getsentry/sentry-go"

	"devevent/config"
	_ "devevent/docs"
	"devevent/internal/adapters/auth"
	"devevent/internal/adapters/email"
	"devevent/internal/adapters/eventsapi"
	"devevent/internal/adapters/storage"
	httpdelivery "devevent/internal/delivery/http"
	"devevent/internal/delivery/http/controllers"
	"devevent/internal/domain"
	"devevent/internal/repository/postgres"
	"devevent/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	logger := config.NewLogger(cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "err", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	sentryEnabled := cfg.SentryDSN != ""
	if sentryEnabled {
		if err := sentry.Init(sentry.ClientOptions{
			Dsn:         cfg.SentryDSN,
			Environment: cfg.Environment,
		}); err != nil {
			return err
		}
		defer sentry.Flush(2 * time.Second)
	}

	db, err := postgres.Open(ctx, cfg.DBUrl)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := postgres.Migrate(db, logger); err != nil {
		return err
	}
	logger.Info("database ready")

	assets, err := storage.NewS3AssetStore(storage.S3Config{
		Bucket:          cfg.AssetBucket,
		Region:          cfg.AssetRegion,
		Endpoint:        cfg.AssetEndpoint,
		PublicBaseURL:   cfg.AssetPublicBaseURL,
		AccessKeyID:     cfg.AWSAccessKeyID,
		SecretAccessKey: cfg.AWSSecretAccessKey,
	})
	if err != nil {
		return err
	}

	mailer, err := email.NewMailer(email.MailerConfig{
		Provider:    cfg.EmailProvider,
		FromAddress: cfg.EmailFromAddress,
		FromName:    cfg.EmailFromName,
		SES: email.SESConfig{
			Region:          cfg.SESRegion,
			AccessKeyID:     cfg.AWSAccessKeyID,
			SecretAccessKey: cfg.AWSSecretAccessKey,
		},
	}, logger)
	if err != nil {
		return err
	}
	renderer, err := email.NewTemplateRenderer()
	if err != nil {
		return err
	}

	eventRepo := postgres.NewEventRepository(db)
	bookingRepo := postgres.NewBookingRepository(db)

	eventService := services.NewEventService(eventRepo, assets, logger, cfg.ContextTimeout)
	emailService := services.NewEmailService(mailer, renderer)
	bookingService := services.NewBookingService(eventRepo, bookingRepo, emailService, cfg.BaseURL, logger, cfg.ContextTimeout)

	feed := eventsapi.NewHTTPEventFeed(cfg.BaseURL, &http.Client{Timeout: cfg.ContextTimeout})
	page, err := controllers.NewPageController(logger, feed)
	if err != nil {
		return err
	}

	var verifier domain.TokenVerifier
	if cfg.OrganizerJWTSecret != "" {
		verifier = auth.NewJWTVerifier(cfg.OrganizerJWTSecret)
	} else {
		logger.Warn("ORGANIZER_JWT_SECRET not set, event creation is unauthenticated")
	}

	router := httpdelivery.NewRouter(httpdelivery.Controllers{
		Events:   controllers.NewEventController(logger, eventService, cfg.MaxUploadBytes),
		Bookings: controllers.NewBookingController(logger, bookingService),
		Page:     page,
		Health:   controllers.NewHealthController(logger, db),
	}, httpdelivery.RouterOptions{
		Logger:            logger,
		AllowedOrigins:    cfg.AllowedOrigins,
		OrganizerVerifier: verifier,
		Sentry:            sentryEnabled,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "addr", srv.Addr, "env", cfg.Environment)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancelShutdown()
	return srv.Shutdown(shutdownCtx)
}
