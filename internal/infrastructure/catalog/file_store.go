package catalog

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"slices"

	"github.com/freshcart/backend/internal/domain"
)

// FileStore reads the product catalog from a JSON file holding an array of products.
// The file is re-read on every call; callers cache snapshots.
type FileStore struct {
	path string
}

// NewFileStore creates a catalog store backed by the JSON file at path
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// ListByCategories returns the products whose category is in categories, in file order
func (s *FileStore) ListByCategories(ctx context.Context, categories []domain.Category) ([]domain.Product, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	all, err := s.load()
	if err != nil {
		return nil, err
	}

	products := make([]domain.Product, 0, len(all))
	for _, p := range all {
		if slices.Contains(categories, p.Category) {
			products = append(products, p)
		}
	}

	return products, nil
}

func (s *FileStore) load() ([]domain.Product, error) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("read catalog %s: %w", s.path, err)
	}

	var products []domain.Product
	if err := json.Unmarshal(data, &products); err != nil {
		return nil, fmt.Errorf("decode catalog %s: %w", s.path, err)
	}

	return products, nil
}
