package main

import (
	"context"
	"errors"
	"flag"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"sleuth/internal/configuration"
	"sleuth/internal/corpus"
	"sleuth/internal/engine"
	"sleuth/internal/journal"
	"sleuth/internal/metrics"
	"sleuth/internal/score"
	"sleuth/internal/server"
	"strings"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

// prepareLogger configures the global slog logger.
// Accepts a level name ("debug", "info", "warn", "error") and sets JSON output on os.Stdout.
// Unknown levels fall back to Info.
func prepareLogger(level string) {
	var logLevel slog.Level

	switch strings.ToLower(level) {
	case "debug":
		logLevel = slog.LevelDebug
	case "info":
		logLevel = slog.LevelInfo
	case "warn", "warning":
		logLevel = slog.LevelWarn
	case "error":
		logLevel = slog.LevelError
	default:
		logLevel = slog.LevelInfo
	}

	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: logLevel,
	})

	logger := slog.New(handler)
	slog.SetDefault(logger)
}

// openJournal returns the configured audit journal, or a no-op one when no file is set.
func openJournal(config configuration.JournalConfig) journal.Repository {
	if config.File == "" {
		return journal.Nop{}
	}
	return journal.New(config.File, config.MaxSize, config.MaxBackups)
}

// The application exits with code 1 when the configuration, the corpus or the weights cannot be loaded.
func main() {
	configPath := flag.String("config", "/etc/sleuth/config.yaml", "configuration file")
	flag.Parse()
	config, err := configuration.LoadConfig(*configPath)
	if err != nil {
		slog.Error("Unable to load configuration", "error", err)
		os.Exit(1)
	}
	prepareLogger(config.Logger.Level)

	appCtx, appCancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer appCancel()

	c, err := corpus.Open(config.Corpus.File)
	if err != nil {
		slog.Error("Unable to load corpus", "file", config.Corpus.File, "error", err)
		os.Exit(1)
	}

	weights, err := score.DefaultWeights().With(config.Engine.Weights)
	if err != nil {
		slog.Error("Unable to apply evidence weights", "error", err)
		os.Exit(1)
	}

	registry := prometheus.NewRegistry()
	registry.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	journalRepo := openJournal(config.Journal)
	e := engine.New(c,
		engine.WithWeights(weights),
		engine.WithStrictIdentifiers(config.Engine.StrictIdentifiers),
		engine.WithWorkers(config.Engine.Workers),
		engine.WithCacheWindow(config.Cache.Window),
		engine.WithRecorder(journalRepo),
		engine.WithObserver(metrics.NewCollector(registry)),
		engine.WithLogger(slog.Default()),
	)
	slog.Info("Corpus loaded",
		"suspects", len(c.Suspects),
		"crimes", len(c.Crimes),
		"facts", len(c.Facts),
		"rules", len(c.Rules),
	)

	srv := server.NewServer(
		config.Server.Address,
		config.Server.ReadTimeout,
		config.Server.WriteTimeout,
		server.NewApiV1Router(e, registry),
	)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server failed", "error", err)
			appCancel()
		}
	}()
	slog.Info("Server listening " + config.Server.Address)
	<-appCtx.Done()

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), time.Second*10)
	defer shutdownCancel()

	err = srv.Shutdown(shutdownCtx)
	if err != nil {
		slog.Error("Server shutdown", "error", err)
	}
	slog.Info("Server stopped")

	if err := journalRepo.Close(); err != nil {
		slog.Error("Journal close", "error", err)
	}
}
