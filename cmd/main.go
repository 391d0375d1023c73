package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"sitegen_ai_server/api"
	"sitegen_ai_server/config"
	"sitegen_ai_server/internal/ai"
	internalapi "sitegen_ai_server/internal/api"
	"sitegen_ai_server/internal/store"
)

func main() {
	// --- Load .env file ---
	// Environment variables must be in place BEFORE viper loads config.
	err := godotenv.Load()
	if err != nil {
		// .env commonly does not exist in production; only warn on other errors.
		if !os.IsNotExist(err) {
			log.Printf("Warning: Error loading .env file: %v", err)
		} else {
			log.Println("Info: .env file not found, relying on system environment variables.")
		}
	} else {
		log.Println("Info: Loaded environment variables from .env file.")
	}

	// --- Configuration Loading ---
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatalf("Cannot load config: %v", err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// --- Dependency Initialization ---
	aiGenerator := ai.NewGenerator(cfg.OpenAIKey, cfg.PlannerModelID,
		time.Duration(cfg.PlanTimeoutSec)*time.Second)

	siteStore := store.New(time.Duration(cfg.SiteTTLHours) * time.Hour)
	go siteStore.Sweep(ctx, time.Duration(cfg.StoreSweepMinutes)*time.Minute)

	limiter := internalapi.NewRateLimiter(cfg.RateLimitPerWindow,
		time.Duration(cfg.RateLimitWindowSec)*time.Second)

	apiHandler := internalapi.NewAPIHandler(aiGenerator, siteStore)

	// --- Start API Server ---
	appEnv := os.Getenv("APP_ENV")
	if appEnv == "production" {
		gin.SetMode(gin.ReleaseMode)
	} else {
		gin.SetMode(gin.DebugMode)
		log.Println("Running in Gin Debug Mode")
	}

	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.Recovery())

	api.RegisterRoutes(router, apiHandler, limiter)

	server := &http.Server{
		Addr:    cfg.ServerAddress,
		Handler: router,
		// Set timeouts to prevent slow client attacks
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 90 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		log.Printf("Starting API server on %s\n", cfg.ServerAddress)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("API server listen error: %s\n", err)
		}
		log.Println("API server has stopped listening.")
	}()

	// --- Graceful Shutdown ---
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	sig := <-quit
	log.Printf("Received signal: %s. Shutting down server...", sig)

	shutdownCtx, serverCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer serverCancel()

	// Stop the store sweeper and any in-flight planning calls.
	cancel()

	log.Println("Shutting down API server...")
	if err := server.Shutdown(shutdownCtx); err != nil {
		log.Printf("API server forced shutdown error: %v", err)
	} else {
		log.Println("API server gracefully stopped.")
	}

	log.Println("Application exiting.")
}
