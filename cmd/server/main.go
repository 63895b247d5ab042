// @title Party Invite API
// @version 1.0
// @description RSVP, guestbook, photo links and the food poll.
// @BasePath /
package main

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"partyinvite/config"
	_ "partyinvite/docs"
	"partyinvite/internal/adapters/email"
	httpdelivery "partyinvite/internal/delivery/http"
	"partyinvite/internal/delivery/http/controllers"
	"partyinvite/internal/delivery/http/middleware"
	"partyinvite/internal/delivery/graphql"
	"partyinvite/internal/repository/sqlstore"
	"partyinvite/internal/services"
)

const shutdownTimeout = 10 * time.Second

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("config load failed", "error", err)
		os.Exit(1)
	}
	logger := config.NewLogger(os.Stdout, cfg.Environment, cfg.LogLevel)
	slog.SetDefault(logger)

	if err := run(cfg, logger); err != nil {
		logger.Error("server stopped", "error", err)
		os.Exit(1)
	}
}

func run(cfg *config.Config, logger *slog.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	startCtx, cancel := context.WithTimeout(ctx, cfg.BackupTimeout)
	defer cancel()

	db, dialect, err := sqlstore.Open(startCtx, cfg.DBUrl, cfg.SQLitePath)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := sqlstore.CreateSchema(startCtx, db, dialect); err != nil {
		return err
	}
	logger.Info("database schema ready", "dialect", dialect)

	// Repositories
	guestRepo := sqlstore.NewGuestRepository(db)
	pollRepo := sqlstore.NewPollRepository(db)
	commentRepo := sqlstore.NewCommentRepository(db)
	photoRepo := sqlstore.NewPhotoRepository(db)
	backupRepo := sqlstore.NewBackupRepository(db, dialect)

	// Email
	mailer := email.NewMailer(email.MailerConfig{
		Provider:    cfg.Mail.Provider,
		FromAddress: cfg.Mail.FromAddress,
		FromName:    cfg.Mail.FromName,
		SES: email.SESConfig{
			Region:             cfg.Mail.AWSRegion,
			AccessKeyID:        cfg.Mail.AWSAccessKeyID,
			SecretAccessKey:    cfg.Mail.AWSSecretAccessKey,
			InsecureSkipVerify: cfg.Mail.InsecureSkipVerify,
		},
	}, logger)
	emailService := services.NewEmailService(mailer, email.NewTemplateRenderer(), logger)

	// Services
	pollService := services.NewPollService(pollRepo, guestRepo, cfg.StoreTimeout, logger)
	guestService := services.NewGuestService(guestRepo, emailService, cfg.Mail.HostEmail, cfg.StoreTimeout, logger)
	commentService := services.NewCommentService(commentRepo, guestRepo, cfg.StoreTimeout)
	photoService := services.NewPhotoService(photoRepo, guestRepo, cfg.StoreTimeout)
	backupService := services.NewBackupService(backupRepo, cfg.BackupTimeout)

	seeded, err := pollService.EnsureDefaultOptions(startCtx)
	if err != nil {
		return err
	}
	if seeded > 0 {
		logger.Info("seeded default poll options", "count", seeded)
	}

	schema, err := graphql.NewSchema(pollService)
	if err != nil {
		return err
	}

	mux := httpdelivery.NewRouter(httpdelivery.Handlers{
		Poll:      controllers.NewPollController(logger, pollService),
		Guests:    controllers.NewGuestController(logger, guestService),
		Guestbook: controllers.NewGuestbookController(logger, commentService, photoService),
		Backup:    controllers.NewBackupController(logger, backupService),
		GraphQL:   graphql.NewHandler(&schema),
		Static:    controllers.NewStaticHandler(cfg.StaticDir),
	})
	handler := middleware.RequestID(
		middleware.LoggingMiddleware(logger,
			middleware.CORS(cfg.AllowedOrigins, mux)))

	server := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("listening", "port", cfg.Port, "env", cfg.Environment)
		errCh <- server.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancelShutdown := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancelShutdown()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return nil
}
