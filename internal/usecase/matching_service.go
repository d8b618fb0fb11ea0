package usecase

import (
	"context"
	"fmt"
	"runtime"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/freshcart/backend/internal/domain"
)

// MatchConfig holds configuration for the matching service
type MatchConfig struct {
	Rules              Rules
	Tokenizer          Tokenizer
	Workers            int
	EnableDebugLogging bool
	Logger             zerolog.Logger
}

// MatchingService matches recipe ingredients to catalog products.
// It keeps no state between calls and is safe for concurrent use.
type MatchingService struct {
	scorer             *Scorer
	negationMarkers    []string
	maxResults         int
	workers            int
	enableDebugLogging bool
	logger             zerolog.Logger
}

// NewMatchingService creates a new matching service with the given configuration.
// A zero Rules value is replaced by DefaultRules.
func NewMatchingService(config MatchConfig) *MatchingService {
	rules := config.Rules
	if rules.TermWeight == 0 && rules.MaxResults == 0 {
		rules = DefaultRules()
	}
	if rules.MaxResults <= 0 {
		rules.MaxResults = DefaultRules().MaxResults
	}

	workers := config.Workers
	if workers <= 0 {
		workers = runtime.NumCPU()
	}

	// The debug flag opts the matcher into debug output even when the
	// service-wide level is higher
	logger := config.Logger
	if config.EnableDebugLogging {
		logger = logger.Level(zerolog.DebugLevel)
	}

	return &MatchingService{
		scorer:             NewScorer(rules, config.Tokenizer),
		negationMarkers:    rules.NegationMarkers,
		maxResults:         rules.MaxResults,
		workers:            workers,
		enableDebugLogging: config.EnableDebugLogging,
		logger:             logger,
	}
}

// MatchAll matches every ingredient against the catalog. Results come back
// in input order. Both slices must be non-nil; empty slices are fine.
func (s *MatchingService) MatchAll(
	ctx context.Context,
	ingredients []string,
	catalog []domain.Product,
) ([]domain.MatchResult, error) {
	if ingredients == nil {
		return nil, fmt.Errorf("%w: ingredient list is nil", domain.ErrInvalidRequest)
	}
	if catalog == nil {
		return nil, fmt.Errorf("%w: catalog is nil", domain.ErrInvalidRequest)
	}

	results := make([]domain.MatchResult, len(ingredients))

	var g errgroup.Group
	g.SetLimit(s.workers)

	for i, ingredient := range ingredients {
		if err := ctx.Err(); err != nil {
			break
		}
		i, ingredient := i, ingredient
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			results[i] = s.MatchIngredient(ingredient, catalog)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// The loop may have stopped early without any worker seeing the cancellation
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	return results, nil
}

// MatchIngredient ranks the catalog products for a single ingredient
func (s *MatchingService) MatchIngredient(ingredient string, catalog []domain.Product) domain.MatchResult {
	result := domain.MatchResult{Name: ingredient, Products: []domain.Product{}}

	ing := s.scorer.Prepare(ingredient)
	if ing.Raw == "" {
		return result
	}

	if s.enableDebugLogging {
		s.logger.Debug().Str("ingredient", ing.Raw).Strs("tokens", ing.Tokens).Msg("matching ingredient")
	}

	candidates := make([]domain.ScoredCandidate, 0, len(catalog))
	for i, product := range catalog {
		if IsNegated(ing.Raw, product.Name, s.negationMarkers) {
			if s.enableDebugLogging {
				s.logger.Debug().Str("ingredient", ing.Raw).Str("product", product.Name).Msg("negated variant excluded")
			}
			continue
		}

		score := s.scorer.Score(ing, product)
		if score == 0 {
			continue
		}

		if s.enableDebugLogging {
			s.logger.Debug().
				Str("ingredient", ing.Raw).
				Str("product", product.Name).
				Str("category", string(product.Category)).
				Int("score", score).
				Msg("scored candidate")
		}

		candidates = append(candidates, domain.ScoredCandidate{Product: product, Score: score, Index: i})
	}

	result.Products = Rank(candidates, s.maxResults)
	return result
}
