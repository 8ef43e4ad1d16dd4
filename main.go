package main

import (
	"log"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"cafeapi/config"
	"cafeapi/controller"
	"cafeapi/database"
	"cafeapi/route"
)

func main() {
	cfg := config.Load()

	cafeStore, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("Failed to open store: %v", err)
	}

	// Set Gin mode
	if cfg.GinMode == "release" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		log.Println("Running in debug mode")
	}

	// Initialize router
	router := gin.Default()

	// Configure CORS; the web front-end runs on port 5001 by convention
	origins := []string{"http://localhost:5001", "http://127.0.0.1:5001"}
	origins = append(origins, cfg.AllowedOrigins...)
	corsConfig := cors.Config{
		AllowOrigins:  origins,
		AllowMethods:  []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type"},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	router.Use(cors.New(corsConfig))
	log.Println("CORS configured")

	// Setup routes
	ctl := controller.NewCafeController(cafeStore)
	route.CafeRoutes(router, ctl)
	log.Println("Routes configured successfully")

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
