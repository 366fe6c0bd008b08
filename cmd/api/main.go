package main

import (
	"fmt"
	"log"
	"os"

	"solar-feasibility/internal/api/handlers"
	"solar-feasibility/internal/api/middleware"
	"solar-feasibility/internal/data"

	"github.com/gin-gonic/gin"
)

func main() {
	// Get configuration from environment
	port := os.Getenv("API_PORT")
	if port == "" {
		port = "8080"
	}

	// Location catalog: built-in regions, or a LOCATIONS_FILE override.
	catalog, err := data.OpenCatalog()
	if err != nil {
		log.Fatalf("Failed to load location catalog: %v", err)
	}
	log.Printf("Location catalog: %d regions", len(catalog.All()))

	// Set up Gin router
	if os.Getenv("API_ENV") == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.Default()

	// Apply middleware
	router.Use(middleware.CORS())
	router.Use(middleware.Logger())
	router.Use(middleware.ErrorHandler())

	// Initialize handlers
	simulateHandler := handlers.NewSimulateHandler(catalog)
	ratesHandler := handlers.NewRatesHandler()
	catalogHandler := handlers.NewCatalogHandler(catalog)
	rankHandler := handlers.NewRankHandler(catalog)

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API routes
	api := router.Group("/api/v1")
	{
		api.POST("/simulate", simulateHandler.RunSimulation)
		api.POST("/rates/blend", ratesHandler.BlendRates)

		api.GET("/locations", catalogHandler.ListLocations)
		api.GET("/modules", catalogHandler.ListModuleTypes)
		api.GET("/arrays", catalogHandler.ListArrayTypes)

		api.GET("/rank", rankHandler.RankLocations)
	}

	// Serve static files from web/dist (if it exists)
	staticDir := os.Getenv("STATIC_DIR")
	if staticDir == "" {
		staticDir = "./web/dist"
	}

	if _, err := os.Stat(staticDir); err == nil {
		router.Static("/assets", staticDir+"/assets")
		router.StaticFile("/favicon.ico", staticDir+"/favicon.ico")

		// Serve index.html for all non-API routes (SPA routing)
		router.NoRoute(func(c *gin.Context) {
			path := c.Request.URL.Path
			if len(path) >= 4 && path[:4] == "/api" {
				c.JSON(404, gin.H{"error": "Not found"})
			} else {
				c.File(staticDir + "/index.html")
			}
		})
		log.Printf("Serving static files from %s", staticDir)
	} else {
		log.Printf("Static directory %s not found, skipping static file serving", staticDir)
	}

	// Start server
	addr := fmt.Sprintf(":%s", port)
	log.Printf("Starting API server on %s", addr)
	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
