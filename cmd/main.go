package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"pauta-midia/internal/adapter/genai"
	httpadapter "pauta-midia/internal/adapter/http"
	"pauta-midia/internal/adapter/memory"
	"pauta-midia/internal/adapter/postgres"
	"pauta-midia/internal/adapter/usecase"
	"pauta-midia/internal/config"
	"pauta-midia/internal/config/configs"
	"pauta-midia/internal/core/audit"
	"pauta-midia/internal/core/locale"
	"pauta-midia/internal/core/port"
	"pauta-midia/internal/db"
)

const seedCampaigns = 12

// main is the entry point of the media-plan tracker. It loads configuration,
// opens the configured store (optionally running migrations), wires the use
// case and starts the HTTP server. On receiving a termination signal it
// gracefully shuts down the server.
func main() {
	exitCode := 1
	defer func() {
		if r := recover(); r != nil {
			panic(r)
		} else {
			os.Exit(exitCode)
		}
	}()

	// Load configuration from .env and environment variables.
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", slog.Any("error", err))
		return
	}

	logger := slog.New(cfg.Log.Handler(os.Stdout)).With(slog.String("env", cfg.Env))
	slog.SetDefault(logger)

	formatter, err := locale.Parse(cfg.Locale.Tag, cfg.Locale.Currency)
	if err != nil {
		logger.Error("invalid locale", slog.Any("error", err))
		return
	}

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	var (
		campaigns port.CampaignRepository
		documents port.DocumentRepository
	)
	switch cfg.Storage.Kind() {
	case configs.StorageMemory:
		store := memory.NewStore()
		campaigns, documents = store, store
		logger.Warn("using in-memory storage, data is lost on restart")
	default:
		if cfg.Psql.RunMigrations {
			if err = db.Migrate(cfg.Psql.Addr.String()); err != nil {
				logger.Error("migration error", slog.Any("error", err))
				return
			}
			logger.Info("migrations applied successfully")
		}

		pool, err := db.NewPostgresPool(ctx, cfg.Psql)
		if err != nil {
			logger.Error("database connection error", slog.Any("error", err))
			return
		}
		defer pool.Close()
		campaigns = postgres.NewCampaignRepository(pool)
		documents = postgres.NewDocumentRepository(pool)
	}

	var images port.ImageEditor
	if cfg.GenAI.Enabled() {
		editor, err := genai.NewImageEditor(ctx, cfg.GenAI)
		if err != nil {
			logger.Error("image editor init error", slog.Any("error", err))
			return
		}
		images = editor
	} else {
		logger.Info("image editing disabled, GENAI_API_KEY not set")
	}

	svc := usecase.NewCampaignUseCase(campaigns, documents, audit.New(formatter), images, nil, logger)

	if cfg.Storage.Seed {
		n, err := db.Seed(ctx, svc, time.Now(), seedCampaigns)
		if err != nil {
			logger.Error("seed error", slog.Any("error", err))
			return
		}
		logger.Info("demo campaigns seeded", slog.Int("count", n))
	}

	handler := httpadapter.NewHandler(svc, formatter, logger)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.HTTP.Port),
		Handler:           handler.Router(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		logger.Info("server listening", slog.Int("port", int(cfg.HTTP.Port)), slog.String("storage", cfg.Storage.Kind()))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error("server error", slog.Any("error", err))
			cancel()
		}
	}()

	<-ctx.Done()
	exitCode = 0

	shutdownCtx, stop := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer stop()
	if err = srv.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown error", slog.Any("error", err))
		exitCode = 1
	} else {
		logger.Info("server gracefully stopped")
	}
}
