package main

import (
	"context"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/api"
	"github.com/genome-ingest-server/internal/config"
	"github.com/genome-ingest-server/internal/database"
	"github.com/genome-ingest-server/internal/knowledge"
	"github.com/genome-ingest-server/internal/progress"
	"github.com/genome-ingest-server/internal/repository"
	"github.com/genome-ingest-server/internal/service"
	"github.com/genome-ingest-server/internal/uploadlog"
)

func main() {
	configManager, err := config.NewManager()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	if err := configManager.Validate(); err != nil {
		logrus.Fatalf("Configuration validation failed: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := newLogger(cfg.Logging.Level, cfg.Logging.Format)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Info("Shutdown signal received, gracefully shutting down")
		cancel()
	}()

	// Apply pending schema migrations before serving traffic.
	runner, err := database.NewMigrationRunner(database.URL(cfg.Database), cfg.Database.MigrationsPath, logger)
	if err != nil {
		logger.Fatalf("Failed to create migration runner: %v", err)
	}
	if err := runner.Up(); err != nil {
		logger.Fatalf("Failed to run migrations: %v", err)
	}
	runner.Close()

	db, err := database.NewConnection(ctx, cfg.Database, logger)
	if err != nil {
		logger.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	tracker, err := progress.NewRedisTracker(cfg.Progress, logger)
	if err != nil {
		logger.Fatalf("Failed to connect progress tracker: %v", err)
	}
	defer tracker.Close()

	audit, err := uploadlog.NewPostgresStoreFromURL(database.URL(cfg.Database))
	if err != nil {
		logger.Fatalf("Failed to open upload log: %v", err)
	}
	defer audit.Close()

	kb := knowledge.NewBase()
	logger.WithField("annotations", kb.Size()).Info("Clinical knowledge base loaded")

	parserService, err := service.NewParserService(kb, cfg.Parser, logger)
	if err != nil {
		logger.Fatalf("Failed to create parser service: %v", err)
	}

	server := api.NewServer(cfg, api.Deps{
		Parser:   parserService,
		Risk:     service.NewRiskEngine(logger),
		Store:    repository.NewVariantRepository(db.Pool, logger),
		Progress: tracker,
		Audit:    audit,
		Checks: map[string]api.HealthChecker{
			"database": db.Health,
			"redis":    tracker.Health,
		},
	}, logger)

	logger.WithFields(logrus.Fields{
		"host": cfg.Server.Host,
		"port": cfg.Server.Port,
	}).Info("Starting genome ingest server")

	if err := server.Start(ctx); err != nil {
		logger.Fatalf("Server failed: %v", err)
	}

	logger.Info("Server stopped")
}

func newLogger(level, format string) *logrus.Logger {
	logger := logrus.New()

	if parsed, err := logrus.ParseLevel(strings.ToLower(level)); err == nil {
		logger.SetLevel(parsed)
	}

	if format == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	} else {
		logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}

	return logger
}
