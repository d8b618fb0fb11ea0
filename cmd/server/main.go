package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/freshcart/backend/config"
	httpDelivery "github.com/freshcart/backend/internal/delivery/http"
	"github.com/freshcart/backend/internal/infrastructure/cache"
	"github.com/freshcart/backend/internal/infrastructure/catalog"
	"github.com/freshcart/backend/internal/infrastructure/generator"
	"github.com/freshcart/backend/internal/logging"
	"github.com/freshcart/backend/internal/usecase"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "freshcart: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("failed to load configuration: %w", err)
	}

	logger := logging.Setup(cfg.Log.Level, cfg.Log.Format)
	logger.Info().
		Str("environment", cfg.Server.Environment).
		Str("port", cfg.Server.Port).
		Str("catalog", cfg.Catalog.Path).
		Msg("starting FreshCart backend v1.0.0")

	// Matching rules: stock table unless a rules file is configured
	rules := usecase.DefaultRules()
	if cfg.Matching.RulesFile != "" {
		rules, err = usecase.LoadRules(cfg.Matching.RulesFile)
		if err != nil {
			return err
		}
		logger.Info().Str("file", cfg.Matching.RulesFile).Msg("matching rules loaded")
	}
	rules.MaxResults = cfg.Matching.MaxResults

	// Initialize infrastructure dependencies
	memoryCache := cache.NewMemoryCache()
	defer memoryCache.Close()

	catalogStore := catalog.NewFileStore(cfg.Catalog.Path)

	generatorClient := generator.NewClient(generator.Config{
		APIKey:            cfg.Generator.APIKey,
		BaseURL:           cfg.Generator.BaseURL,
		Model:             cfg.Generator.Model,
		RequestsPerMinute: cfg.Generator.RequestsPerMinute,
		Timeout:           cfg.Generator.Timeout,
		Logger:            logger.With().Str("component", "generator").Logger(),
	})

	// Enable debug mode in development environment
	if cfg.Server.Environment == "development" {
		generatorClient.SetDebug(true)
	}

	// Initialize usecase layer
	matcher := usecase.NewMatchingService(usecase.MatchConfig{
		Rules:              rules,
		Workers:            cfg.Matching.Workers,
		EnableDebugLogging: cfg.Matching.EnableDebugLogging,
		Logger:             logger.With().Str("component", "matcher").Logger(),
	})

	recipeService := usecase.NewRecipeService(
		memoryCache,
		catalogStore,
		generatorClient,
		matcher,
		usecase.RecipeServiceConfig{
			CatalogTTL: cfg.Catalog.CacheTTL,
			Logger:     logger.With().Str("component", "recipes").Logger(),
		},
	)

	logger.Info().
		Int("max_results", rules.MaxResults).
		Int("workers", cfg.Matching.Workers).
		Bool("debug", cfg.Matching.EnableDebugLogging).
		Msg("matcher configured")

	// Create HTTP handler with dependencies
	handler := httpDelivery.NewHandler(recipeService, logger)
	limiter := httpDelivery.NewIPRateLimiter(cfg.RateLimit.PerIP)
	defer limiter.Stop()

	router := httpDelivery.SetupRouter(cfg, handler, limiter, logger)

	srv := &http.Server{
		Addr:              fmt.Sprintf(":%s", cfg.Server.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		logger.Info().Str("addr", srv.Addr).Msg("server listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("failed to start server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	logger.Info().Msg("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
