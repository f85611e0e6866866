package main

import (
	"log"

	"togather/internal/api"
	"togather/internal/cache"
	"togather/internal/config"
	"togather/internal/maps"
	"togather/internal/metrics"
	"togather/internal/service/meeting"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.GoogleAPIKey == "" {
		log.Fatal("GOOGLE_MAPS_API_KEY is not set")
	}

	// Register metrics
	collector, err := metrics.NewCollector(nil)
	if err != nil {
		log.Fatalf("Failed to register metrics: %v", err)
	}

	// Initialize optional travel time cache
	travelCache := cache.New(cfg.RedisUrl, cfg.TravelCacheTTL)

	// One Google client serves all four provider roles
	client := maps.NewGoogleClient(cfg.GoogleAPIKey, cfg.MapsBaseURL, travelCache, collector)
	service := meeting.NewService(client, client, client, client)

	// Setup and run API server
	runAPIServer(cfg, service, collector)
}

func runAPIServer(cfg config.Config, service *meeting.Service, collector *metrics.Collector) {
	// Initialize Gin router
	r := gin.Default()

	// Configure API routes
	api.SetupRouter(r, service, collector)

	// Start the server
	if err := r.Run(cfg.Port); err != nil {
		log.Fatalf("Server exited: %v", err)
	}
}
