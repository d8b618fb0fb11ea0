package domain

import "errors"

var (
	// ErrInvalidRequest is returned when request parameters are invalid
	ErrInvalidRequest = errors.New("invalid request parameters")

	// ErrNoIngredients is returned when the generator output holds no usable ingredient
	ErrNoIngredients = errors.New("no ingredients in generator output")

	// ErrGeneratorFailure is returned when the ingredient generator request fails
	ErrGeneratorFailure = errors.New("ingredient generator request failed")

	// ErrCatalogUnavailable is returned when the product catalog cannot be read
	ErrCatalogUnavailable = errors.New("product catalog unavailable")

	// ErrRateLimited is returned when rate limit is exceeded
	ErrRateLimited = errors.New("rate limit exceeded")

	// ErrCacheMiss is returned when data is not found in cache
	ErrCacheMiss = errors.New("cache miss")
)
