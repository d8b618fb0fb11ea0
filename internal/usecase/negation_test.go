package usecase

import "testing"

func TestIsNegated(t *testing.T) {
	markers := DefaultRules().NegationMarkers

	tests := []struct {
		name       string
		ingredient string
		product    string
		want       bool
	}{
		{"concatenated marker", "egg", "Eggless Cake Mix", true},
		{"hyphenated marker", "egg", "Egg-Free Mayonnaise", true},
		{"free concatenated", "sugar", "Sugarfree Gold Pellets", true},
		{"substitute hyphenated", "sugar", "Sugar-Substitute Drops", true},
		{"alternative", "milk", "Oat Milkalternative", true},
		{"case insensitive", "EGG ", "EGGLESS MUFFIN", true},
		{"plain product", "egg", "Farm Eggs", false},
		{"space separated marker is not negation", "sugar", "Sugar Substitute", false},
		{"marker elsewhere in name", "egg", "Farm Eggs - Cage Free", false},
		{"stem would match but raw does not", "chillies", "Chilliless Sauce", false},
		{"empty ingredient", "", "Eggless Cake", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsNegated(tt.ingredient, tt.product, markers); got != tt.want {
				t.Errorf("IsNegated(%q, %q) = %v, want %v", tt.ingredient, tt.product, got, tt.want)
			}
		})
	}
}

func TestIsNegated_NoMarkers(t *testing.T) {
	if IsNegated("egg", "Eggless Cake", nil) {
		t.Error("IsNegated() with no markers = true, want false")
	}
}
