package main

import (
	"fmt"
	"log"

	catalognoop "tradeos/internal/catalog/noop"
	"tradeos/internal/config"
	"tradeos/internal/extract"
	"tradeos/internal/extract/gemini"
	"tradeos/internal/extract/openai"
	"tradeos/internal/handler"
	"tradeos/internal/router"
	"tradeos/internal/service"
	s3storage "tradeos/internal/storage/s3"
)

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

	// Initialize storage
	s3Client, err := s3storage.NewS3Client(&cfg.S3)
	if err != nil {
		return fmt.Errorf("failed to initialize S3 client: %w", err)
	}

	// Initialize extraction providers: Gemini variants first, GPT fallback
	orchestrator := extract.NewOrchestrator(
		gemini.NewExtractor(&cfg.Extract.Gemini),
		openai.NewExtractor(&cfg.Extract.OpenAI),
	)

	// Catalog reads go through the Notion collaborator in production; the
	// noop reader keeps duplicate detection quiet when none is wired.
	catalog := catalognoop.NewNoopReader()

	// Initialize services
	extractSvc := service.NewExtractService(orchestrator, catalog)
	fileSvc := service.NewFileService(s3Client, &cfg.S3)

	// Initialize handlers
	extractH := handler.NewExtractHandler(extractSvc)
	fileH := handler.NewFileHandler(fileSvc)
	healthH := handler.NewHealthHandler()

	// Setup router
	r := router.Setup(cfg, extractH, fileH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
