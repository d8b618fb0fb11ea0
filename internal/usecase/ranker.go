package usecase

import (
	"cmp"
	"slices"

	"github.com/freshcart/backend/internal/domain"
)

// Rank keeps candidates with a positive score and returns at most limit
// products, best first. Equal scores keep catalog order (lower Index first);
// candidates sharing an Index are ordered by name.
func Rank(candidates []domain.ScoredCandidate, limit int) []domain.Product {
	eligible := make([]domain.ScoredCandidate, 0, len(candidates))
	for _, c := range candidates {
		if c.Score > 0 {
			eligible = append(eligible, c)
		}
	}

	slices.SortFunc(eligible, func(a, b domain.ScoredCandidate) int {
		if c := cmp.Compare(b.Score, a.Score); c != 0 {
			return c
		}
		if c := cmp.Compare(a.Index, b.Index); c != 0 {
			return c
		}
		return cmp.Compare(a.Product.Name, b.Product.Name)
	})

	if limit >= 0 && len(eligible) > limit {
		eligible = eligible[:limit]
	}

	products := make([]domain.Product, len(eligible))
	for i, c := range eligible {
		products[i] = c.Product
	}
	return products
}
