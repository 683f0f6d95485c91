// Package main provides a command line upload client. It validates and
// parses a raw genotype export locally, then streams it to a genome ingest
// server in chunked batches.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/genome-ingest-server/internal/config"
	"github.com/genome-ingest-server/internal/knowledge"
	"github.com/genome-ingest-server/internal/service"
	"github.com/genome-ingest-server/internal/uploader"
)

func main() {
	if len(os.Args) < 3 {
		fmt.Fprintf(os.Stderr, "usage: %s <genome-file> <user-id> [data-source]\n", filepath.Base(os.Args[0]))
		os.Exit(2)
	}
	filePath, userID := os.Args[1], os.Args[2]
	dataSource := ""
	if len(os.Args) > 3 {
		dataSource = os.Args[3]
	}

	configManager, err := config.NewManager()
	if err != nil {
		logrus.Fatalf("Failed to load configuration: %v", err)
	}
	cfg := configManager.GetConfig()

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	content, err := os.ReadFile(filePath)
	if err != nil {
		logger.Fatalf("Failed to read %s: %v", filePath, err)
	}

	parser, err := service.NewParserService(knowledge.NewBase(), cfg.Parser, logger)
	if err != nil {
		logger.Fatalf("Failed to create parser: %v", err)
	}

	variants, err := parser.ParseRaw(filepath.Base(filePath), content)
	if err != nil {
		logger.Fatalf("File rejected: %v", err)
	}
	logger.WithField("variants", len(variants)).Info("File parsed")

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)
	go func() {
		<-sigChan
		logger.Warn("Interrupted, aborting upload")
		cancel()
	}()

	submitter := uploader.NewHTTPSubmitter(cfg.Upload, logger,
		uploader.WithHeader("X-User-ID", userID))

	coord := uploader.NewCoordinator(submitter, logger,
		uploader.WithChunkSize(cfg.Upload.ChunkSize),
		uploader.WithBatchSize(cfg.Upload.BatchSize),
		uploader.WithRetryPolicy(uploader.NewLinearRetryPolicy(cfg.Upload.MaxRetries, cfg.Upload.BackoffStep)),
		uploader.WithChunkCallback(func(chunkIndex, totalChunks int) {
			fmt.Printf("chunk %d/%d uploaded\n", chunkIndex, totalChunks)
		}),
	)

	result, err := coord.Upload(ctx, variants, dataSource)
	if err != nil {
		logger.Fatalf("Upload failed: %v", err)
	}

	fmt.Printf("upload complete: %d of %d variants saved\n", result.VariantsSaved, result.TotalVariants)
}
