package usecase

import "strings"

// IsNegated reports whether productName is a "without" variant of the
// ingredient, e.g. "eggless" or "sugar-free" for "egg" and "sugar".
// The raw ingredient is used as-is (lowercased), never stemmed.
func IsNegated(rawIngredient, productName string, markers []string) bool {
	raw := strings.ToLower(strings.TrimSpace(rawIngredient))
	if raw == "" {
		return false
	}

	name := strings.ToLower(productName)
	for _, marker := range markers {
		if strings.Contains(name, raw+marker) || strings.Contains(name, raw+"-"+marker) {
			return true
		}
	}
	return false
}
