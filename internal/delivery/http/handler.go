package http

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/freshcart/backend/internal/domain"
)

// RecipeService is the use case behind the recipe endpoints
type RecipeService interface {
	Recipe(ctx context.Context, dish string) (*domain.RecipeResult, error)
	MatchIngredients(ctx context.Context, ingredients []string) ([]domain.MatchResult, error)
}

// Handler holds dependencies for HTTP handlers
type Handler struct {
	recipes RecipeService
	logger  zerolog.Logger
}

// NewHandler creates a new HTTP handler. A nil service makes recipe endpoints answer 501.
func NewHandler(recipes RecipeService, logger zerolog.Logger) *Handler {
	return &Handler{recipes: recipes, logger: logger}
}

// HealthCheck returns the health status of the API
func (h *Handler) HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "healthy",
		"service": "freshcart-backend",
		"version": "1.0.0",
	})
}

// Recipe generates the ingredients of a dish and matches them to catalog products
func (h *Handler) Recipe(c *gin.Context) {
	if h.recipes == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"message": "Recipe service not configured"})
		return
	}

	var req domain.RecipeRequest
	if err := c.ShouldBindJSON(&req); err != nil || strings.TrimSpace(req.Dish) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Dish name required"})
		return
	}

	result, err := h.recipes.Recipe(c.Request.Context(), req.Dish)
	if err != nil {
		h.logger.Error().Err(err).Str("dish", req.Dish).Msg("recipe generation failed")
		if errors.Is(err, domain.ErrInvalidRequest) {
			c.JSON(http.StatusBadRequest, gin.H{"message": "Dish name required"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Recipe generation failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"dish": result.Dish, "ingredients": result.Ingredients})
}

// MatchIngredients matches a caller-supplied ingredient list to catalog products
func (h *Handler) MatchIngredients(c *gin.Context) {
	if h.recipes == nil {
		c.JSON(http.StatusNotImplemented, gin.H{"message": "Recipe service not configured"})
		return
	}

	var req domain.MatchRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Ingredients == nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Ingredient list required"})
		return
	}

	results, err := h.recipes.MatchIngredients(c.Request.Context(), req.Ingredients)
	if err != nil {
		h.logger.Error().Err(err).Int("ingredients", len(req.Ingredients)).Msg("ingredient matching failed")
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Ingredient matching failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"ingredients": results})
}
