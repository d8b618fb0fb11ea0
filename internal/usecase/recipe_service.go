package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/freshcart/backend/internal/domain"
)

// RecipeServiceConfig holds configuration for the recipe service
type RecipeServiceConfig struct {
	CatalogTTL time.Duration
	Logger     zerolog.Logger
}

// RecipeService turns a dish name into per-ingredient product suggestions
type RecipeService struct {
	cache      domain.CacheRepository
	catalog    domain.CatalogRepository
	generator  domain.IngredientGenerator
	matcher    *MatchingService
	catalogTTL time.Duration
	logger     zerolog.Logger
}

// NewRecipeService creates a new recipe service with dependencies
func NewRecipeService(
	cache domain.CacheRepository,
	catalog domain.CatalogRepository,
	generator domain.IngredientGenerator,
	matcher *MatchingService,
	config RecipeServiceConfig,
) *RecipeService {
	catalogTTL := config.CatalogTTL
	if catalogTTL == 0 {
		catalogTTL = 5 * time.Minute
	}

	return &RecipeService{
		cache:      cache,
		catalog:    catalog,
		generator:  generator,
		matcher:    matcher,
		catalogTTL: catalogTTL,
		logger:     config.Logger,
	}
}

// Recipe looks up products for every ingredient of a dish.
// Flow: generate ingredient list -> parse -> load cooking catalog -> match
func (s *RecipeService) Recipe(ctx context.Context, dish string) (*domain.RecipeResult, error) {
	dish = strings.TrimSpace(dish)
	if dish == "" {
		return nil, fmt.Errorf("%w: dish name required", domain.ErrInvalidRequest)
	}

	text, err := s.generator.GenerateIngredients(ctx, dish)
	if err != nil {
		return nil, err
	}

	ingredients, err := ParseIngredientList(text)
	if err != nil {
		return nil, err
	}

	s.logger.Info().Str("dish", dish).Int("ingredients", len(ingredients)).Msg("ingredients generated")

	results, err := s.MatchIngredients(ctx, ingredients)
	if err != nil {
		return nil, err
	}

	return &domain.RecipeResult{Dish: dish, Ingredients: results}, nil
}

// MatchIngredients matches a caller-supplied list against the cooking catalog
func (s *RecipeService) MatchIngredients(ctx context.Context, ingredients []string) ([]domain.MatchResult, error) {
	if ingredients == nil {
		return nil, fmt.Errorf("%w: ingredients required", domain.ErrInvalidRequest)
	}

	products, err := s.cookingCatalog(ctx)
	if err != nil {
		return nil, err
	}

	start := time.Now()
	results, err := s.matcher.MatchAll(ctx, ingredients, products)
	if err != nil {
		return nil, err
	}

	s.logger.Debug().
		Int("ingredients", len(ingredients)).
		Int("catalog_size", len(products)).
		Dur("elapsed", time.Since(start)).
		Msg("ingredients matched")

	return results, nil
}

// cookingCatalog returns the snapshot of cooking products, from cache when fresh.
// The snapshot is shared read-only between requests.
func (s *RecipeService) cookingCatalog(ctx context.Context) ([]domain.Product, error) {
	categories := domain.CookingCategories()
	key := catalogCacheKey(categories)

	if cached, err := s.cache.Get(ctx, key); err == nil {
		if products, ok := cached.([]domain.Product); ok {
			return products, nil
		}
	} else if !errors.Is(err, domain.ErrCacheMiss) {
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache read failed")
	}

	products, err := s.catalog.ListByCategories(ctx, categories)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrCatalogUnavailable, err)
	}
	if products == nil {
		products = []domain.Product{}
	}

	if err := s.cache.Set(ctx, key, products, s.catalogTTL); err != nil {
		// Log but don't fail if caching fails
		s.logger.Warn().Err(err).Str("key", key).Msg("catalog cache write failed")
	}

	return products, nil
}

// catalogCacheKey builds the cache key for a category set.
// Format: "catalog:{category}|{category}..."
func catalogCacheKey(categories []domain.Category) string {
	names := make([]string, len(categories))
	for i, c := range categories {
		names[i] = string(c)
	}
	return "catalog:" + strings.Join(names, "|")
}
