package main

import (
	"fmt"
	"log"
	"os"

	"github.com/platecost/backend/config"
	httpDelivery "github.com/platecost/backend/internal/delivery/http"
	"github.com/platecost/backend/internal/infrastructure/catalog"
	"github.com/platecost/backend/internal/infrastructure/units"
	"github.com/platecost/backend/internal/usecase"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting PlateCost Backend v1.0.0")
	log.Printf("Environment: %s", cfg.Server.Environment)
	log.Printf("Port: %s", cfg.Server.Port)

	// Initialize infrastructure dependencies
	registry := units.NewRegistry()

	memCatalog := catalog.NewMemoryCatalog()
	if cfg.Catalog.Path != "" {
		if err := memCatalog.LoadFile(cfg.Catalog.Path); err != nil {
			log.Fatalf("Failed to load catalog from %s: %v", cfg.Catalog.Path, err)
		}
		log.Printf("Catalog loaded from %s (%d products)", cfg.Catalog.Path, memCatalog.Size())
	} else {
		log.Printf("WARNING: no catalog path configured - starting with an empty catalog")
	}

	// Initialize usecase layer
	summarizer := usecase.NewSummarizerService(memCatalog, memCatalog, registry)

	log.Printf("Rate limit: %.0f req/s per client (burst %d)", cfg.RateLimit.PerClient, cfg.RateLimit.Burst)

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(summarizer)

	// Setup router
	router := httpDelivery.SetupRouter(cfg, handler)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Server.Port)
	log.Printf("Server listening on %s", addr)

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func init() {
	// Set log flags for better debugging
	log.SetFlags(log.Ldate | log.Ltime | log.Lshortfile)
	log.SetOutput(os.Stdout)
}
