package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"github.com/PrVille/json-mock-data-api-sub000/internal/app"
	"github.com/PrVille/json-mock-data-api-sub000/internal/config"
	"github.com/PrVille/json-mock-data-api-sub000/internal/database"

	_ "github.com/PrVille/json-mock-data-api-sub000/docs/api" // Swagger docs
)

// @title JSON Mock Data API
// @version 1.0.0
// @description Multi-tenant mock-data REST API with a shared public sandbox
// @termsOfService http://swagger.io/terms/

// @contact.name API Support
// @contact.url https://github.com/PrVille/json-mock-data-api-sub000

// @license.name MIT

// @host localhost:3000
// @BasePath /api
// @schemes http https

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization

func main() {
	// Load .env when present; real deployments set the environment directly
	_ = godotenv.Load()

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Connect to database
	db, err := database.Connect(cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close(db)

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	srv := app.New(cfg, db, app.Options{Metrics: true})

	// Graceful shutdown
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		log.Println("Gracefully shutting down...")
		_ = srv.Shutdown()
	}()

	// Start server
	log.Printf("Starting server on port %s", cfg.Port)
	if err := srv.Listen(":" + cfg.Port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}

	log.Println("Server stopped")
}
