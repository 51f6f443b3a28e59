package main

import (
	"fmt"
	"log"
	"net/http"
	"os"

	"solar-proposal/internal/api/handlers"
	"solar-proposal/internal/api/middleware"
	"solar-proposal/internal/config"

	"github.com/gin-gonic/gin"
	"github.com/rs/cors"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	cfg := config.Default()
	if path := os.Getenv("CONFIG_FILE"); path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			log.Fatalf("Failed to load config %s: %v", path, err)
		}
		cfg = loaded
		log.Printf("Loaded config from %s", path)
	}

	cat, err := cfg.Catalog()
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}
	engine, err := cfg.Engine()
	if err != nil {
		log.Fatalf("Failed to build engine: %v", err)
	}

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Apply middleware
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	proposalHandler := handlers.NewProposalHandler(engine)
	zoneHandler := handlers.NewZoneHandler(cat)
	strategyHandler := handlers.NewStrategyHandler()
	catalogHandler := handlers.NewCatalogHandler(cat)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/proposals", proposalHandler.CreateProposal)

		api.GET("/zones/:postcode", zoneHandler.GetZone)
		api.GET("/strategies", strategyHandler.ListStrategies)
		api.GET("/catalog", catalogHandler.GetCatalog)
	}

	// CORS sits outside the gin chain so preflight requests short-circuit
	// before routing.
	corsHandler := cors.New(cors.Options{
		AllowedOrigins: allowedOrigins(),
		AllowedMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowedHeaders: []string{"Content-Type"},
	}).Handler(router)

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := http.ListenAndServe(addr, corsHandler); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

func allowedOrigins() []string {
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		return []string{origins}
	}
	return []string{"*"}
}
