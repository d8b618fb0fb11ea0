package domain

import (
	"context"
	"time"
)

// CacheRepository defines the interface for caching operations
type CacheRepository interface {
	Get(ctx context.Context, key string) (interface{}, error)
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) (bool, error)
}

// CatalogRepository reads products from the storefront catalog
type CatalogRepository interface {
	ListByCategories(ctx context.Context, categories []Category) ([]Product, error)
}

// IngredientGenerator turns a dish name into the raw model text listing its ingredients
type IngredientGenerator interface {
	GenerateIngredients(ctx context.Context, dish string) (string, error)
}
