package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"textile-market-backend/config"
	"textile-market-backend/internal/api"
	"textile-market-backend/internal/labeler"
	"textile-market-backend/internal/storage"
	"textile-market-backend/internal/store"
)

func main() {
	// Setup logger
	logger := log.New(os.Stdout, "textile-backend ", log.LstdFlags)

	// Load .env if present; real environment variables win either way.
	if err := godotenv.Load(); err != nil {
		logger.Println("no .env file found, using environment variables")
	}

	// Load configuration
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "./config/config.yaml" // Default path for local development
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		logger.Fatalf("failed to load configuration from %s: %v", configPath, err)
	}
	logger.Printf("configuration loaded from %s", configPath)

	// Prepare the uploads directory
	files, err := storage.New(cfg.Storage.UploadsDir)
	if err != nil {
		logger.Fatalf("failed to prepare uploads directory: %v", err)
	}
	logger.Printf("uploads directory ready at %s", files.Dir())

	// In-memory store; records live until process restart by design.
	appStore := store.NewMemoryStore()
	logger.Println("data store initialized")

	labels := labeler.NewRandom()

	// Initialize router
	router := api.NewRouter(appStore, files, labels, &cfg.Server)
	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.Server.Port),
		Handler: router,
	}

	// Start the server in a goroutine
	go func() {
		logger.Printf("HTTP server starting on port %d", cfg.Server.Port)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatalf("HTTP server ListenAndServe: %v", err)
		}
	}()

	// Setup signal handling for graceful shutdown
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, syscall.SIGINT, syscall.SIGTERM)

	// Block until a signal is received.
	<-stop
	logger.Println("Shutdown signal received, stopping server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Fatalf("HTTP server Shutdown: %v", err)
	}

	logger.Println("Server gracefully stopped")
}
