package main

import (
	"fmt"
	"log"

	"github.com/joho/godotenv"

	"billex/internal/config"
	"billex/internal/document"
	"billex/internal/extract"
	"billex/internal/handler"
	"billex/internal/llm/openai"
	"billex/internal/router"
)

func main() {
	if err := run(); err != nil {
		log.Fatal(err)
	}
}

func run() error {
	// .env is optional; real environment variables win
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	model := openai.NewClient(&cfg.Model)
	processor := document.NewProcessor(&cfg.Fetcher)
	extractor := extract.NewService(model)

	billH := handler.NewBillHandler(processor, extractor)
	healthH := handler.NewHealthHandler()

	r := router.Setup(cfg, billH, healthH)

	log.Printf("Server starting on %s", cfg.Server.Port)
	if err := r.Run(cfg.Server.Port); err != nil {
		return fmt.Errorf("server failed: %w", err)
	}

	return nil
}
