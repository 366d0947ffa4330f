package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"orbi-food/internal/auth"
	"orbi-food/internal/config"
	"orbi-food/internal/database"
	"orbi-food/internal/handler"
	"orbi-food/internal/repository"
	"orbi-food/internal/router"
	"orbi-food/internal/service"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	// Initialize logger
	logger := config.NewLogger(cfg.Logger)
	logger.Info().Msg("starting orbi-food API server")

	// Create context for application lifecycle
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Initialize database connection pool
	pool, err := database.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		return fmt.Errorf("failed to initialize database: %w", err)
	}
	defer pool.Close()

	// Initialize repositories
	categoryRepo := repository.NewCategoryRepository(pool, logger)
	shopRepo := repository.NewShopRepository(pool, logger)
	menuRepo := repository.NewMenuRepository(pool, logger)
	zoneRepo := repository.NewZoneRepository(pool, logger)

	// Initialize admin auth gate
	tokens, err := auth.NewTokenService(cfg.Auth.JWTSecret, auth.WithTTL(cfg.Auth.TokenTTL))
	if err != nil {
		return fmt.Errorf("failed to initialize token service: %w", err)
	}
	verifier := auth.VerifierFromConfig(cfg.Auth.AdminPassword, cfg.Auth.AdminPasswordHash)
	gate := auth.NewGate(verifier, tokens, logger)

	// Initialize services
	catalogService := service.NewCatalogService(categoryRepo, shopRepo, menuRepo, zoneRepo, logger)
	adminService := service.NewAdminService(shopRepo, menuRepo, logger)

	// Initialize HTTP handlers
	publicHandler := handler.NewPublicHandler(catalogService, logger)
	adminHandler := handler.NewAdminHandler(adminService, gate, logger)

	// Initialize router
	mux := router.New(publicHandler, adminHandler, gate, cfg.CORS.AllowedOrigins, logger)

	// Create HTTP server
	server := &http.Server{
		Addr:         cfg.Server.Address(),
		Handler:      mux,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	// Channel to listen for errors from the server
	serverErrors := make(chan error, 1)

	go func() {
		logger.Info().
			Str("address", cfg.Server.Address()).
			Strs("allowed_origins", cfg.CORS.AllowedOrigins).
			Msg("HTTP server started")
		serverErrors <- server.ListenAndServe()
	}()

	// Channel to listen for interrupt signals
	shutdown := make(chan os.Signal, 1)
	signal.Notify(shutdown, os.Interrupt, syscall.SIGTERM)

	// Block until we receive a signal or an error
	select {
	case err := <-serverErrors:
		return fmt.Errorf("server error: %w", err)

	case sig := <-shutdown:
		logger.Info().
			Str("signal", sig.String()).
			Msg("shutdown signal received, starting graceful shutdown")

		shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer shutdownCancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			logger.Error().Err(err).Msg("failed to shutdown server gracefully")
			if closeErr := server.Close(); closeErr != nil {
				logger.Error().Err(closeErr).Msg("failed to close server")
			}
			return fmt.Errorf("server shutdown failed: %w", err)
		}

		logger.Info().Msg("server shutdown completed")
	}

	return nil
}
