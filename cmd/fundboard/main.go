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

	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"

	"fundboard/internal/config"
	apphttp "fundboard/internal/http"
	"fundboard/internal/ledger"
	"fundboard/internal/ledger/csvfile"
	gsheet "fundboard/internal/ledger/google"
	"fundboard/internal/ledger/xlsx"
)

func main() {
	_ = godotenv.Load()

	// Setup structured logging
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		logger.Error("Invalid configuration", "error", err)
		os.Exit(1)
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		source   ledger.Source
		exporter ledger.Exporter
	)
	switch cfg.SourceBackend {
	case "sheets":
		cli, err := gsheet.NewFromEnv(ctx)
		if err != nil {
			logger.Error("Failed to initialize Google Sheets client", "error", err, "backend", cfg.SourceBackend)
			os.Exit(1)
		}
		source = cli
		// Sheets is read-only; exports land in the local export dir.
		exporter = xlsx.NewExporter(cfg.ExportDir)
	case "csv":
		source = csvfile.NewSource(cfg.SourcePath)
		exporter = csvfile.NewExporter(cfg.ExportDir)
	default:
		source = xlsx.NewSource(cfg.SourcePath)
		exporter = xlsx.NewExporter(cfg.ExportDir)
	}
	logger.Info("Initialized ledger source", "backend", cfg.SourceBackend, "path", cfg.SourcePath)

	srv := apphttp.NewServer(":"+cfg.Port, source, exporter)

	// Configure server timeouts and limits
	srv.ReadTimeout = 10 * time.Second
	srv.WriteTimeout = 30 * time.Second
	srv.IdleTimeout = 60 * time.Second
	srv.MaxHeaderBytes = 1 << 16 // 64KB

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		logger.Info("Starting fundboard server", "port", cfg.Port, "backend", cfg.SourceBackend)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		logger.Info("Shutdown signal received")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		logger.Error("Server error", "error", err)
		os.Exit(1)
	}
	logger.Info("Server stopped gracefully")
}
