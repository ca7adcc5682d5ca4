// @title           Ledgerly Import API
// @version         1.0
// @description     Imports Tally ledger exports into the Ledgerly masters.
// @BasePath        /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT.
package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"go.uber.org/zap"

	_ "ledgerly/docs"
	"ledgerly/internal/config"
	"ledgerly/internal/email/noop"
	"ledgerly/internal/email/ses"
	"ledgerly/internal/handler"
	"ledgerly/internal/logger"
	"ledgerly/internal/metrics"
	"ledgerly/internal/port"
	"ledgerly/internal/repository/postgres"
	"ledgerly/internal/router"
	"ledgerly/internal/service"
	s3storage "ledgerly/internal/storage/s3"
	"ledgerly/internal/tally"
)

const shutdownTimeout = 15 * time.Second

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	zlog, err := logger.New(cfg.Log)
	if err != nil {
		return fmt.Errorf("failed to build logger: %w", err)
	}
	defer func() { _ = zlog.Sync() }()

	if cfg.Server.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := postgres.NewDB(ctx, &cfg.DB)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	// Initialize repositories
	importStore := postgres.NewImportStore(db)
	masterRepo := postgres.NewMasterRepo(db)

	// Initialize storage (only needed when uploads are archived)
	var storage port.ObjectStorage
	if cfg.Import.ArchiveUploads {
		storage, err = s3storage.NewS3Client(ctx, &cfg.S3)
		if err != nil {
			return fmt.Errorf("failed to initialize S3 client: %w", err)
		}
	}

	emailSender, err := newEmailSender(ctx, cfg, zlog)
	if err != nil {
		return err
	}

	reg := prometheus.NewRegistry()
	reg.MustRegister(collectors.NewGoCollector(), collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	m := metrics.New(reg)

	// Initialize services
	importSvc := service.NewImportService(service.ImportDeps{
		Parser:  tally.NewParser(),
		Store:   importStore,
		Storage: storage,
		Email:   emailSender,
		Metrics: m,
		Logger:  zlog.Named("import"),
	}, cfg.Import, cfg.S3.Bucket)
	masterSvc := service.NewMasterService(masterRepo)
	authSvc := service.NewAuthService(cfg.JWT)

	// Setup router
	r := router.Setup(zlog, cfg.CORS.AllowedOrigins, authSvc, m, router.Handlers{
		Import: handler.NewImportHandler(importSvc, cfg.Import),
		Master: handler.NewMasterHandler(masterSvc),
		Health: handler.NewHealthHandler(db),
	})

	srv := &http.Server{
		Addr:         cfg.Server.Port,
		Handler:      r,
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
	}

	errCh := make(chan error, 1)
	go func() {
		zlog.Info("server starting",
			zap.String("addr", cfg.Server.Port),
			zap.String("commit_policy", string(cfg.Import.CommitPolicy)),
		)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	zlog.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func newEmailSender(ctx context.Context, cfg *config.Config, zlog *zap.Logger) (port.EmailSender, error) {
	switch cfg.Email.Provider {
	case "ses":
		sender, err := ses.NewSESSender(ctx, cfg.Email.Region, cfg.Email.FromAddress, cfg.Email.FromName, cfg.Email.FrontendURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize SES sender: %w", err)
		}
		return sender, nil
	case "noop", "":
		return noop.NewNoopSender(zlog.Named("email")), nil
	default:
		return nil, fmt.Errorf("unknown email provider %q; allowed: ses, noop", cfg.Email.Provider)
	}
}
