package usecase

import (
	"encoding/json"
	"fmt"
	"regexp"

	"github.com/freshcart/backend/internal/domain"
)

// jsonArrayPattern matches the outermost JSON array in model output, across lines
var jsonArrayPattern = regexp.MustCompile(`(?s)\[.*\]`)

// ParseIngredientList extracts ingredient names from raw generator text.
// The model is asked for a JSON array but may wrap it in prose or code fences,
// so the first "[" through the last "]" is decoded. String elements are
// returned exactly as generated and in order, blanks included; other
// element types are dropped. An empty array yields an empty, non-nil list.
func ParseIngredientList(text string) ([]string, error) {
	span := jsonArrayPattern.FindString(text)
	if span == "" {
		return nil, fmt.Errorf("%w: no JSON array found", domain.ErrNoIngredients)
	}

	var raw []interface{}
	if err := json.Unmarshal([]byte(span), &raw); err != nil {
		return nil, fmt.Errorf("%w: decode array: %v", domain.ErrNoIngredients, err)
	}

	ingredients := make([]string, 0, len(raw))
	for _, item := range raw {
		if name, ok := item.(string); ok {
			ingredients = append(ingredients, name)
		}
	}

	return ingredients, nil
}
