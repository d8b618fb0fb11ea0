package domain

// Category is a storefront aisle. Catalog products carry exactly one.
type Category string

// Cooking categories offered to the recipe matcher
const (
	CategoryBakeryDairy      Category = "Bakery, Cakes & Dairy"
	CategoryGrainsOilMasala  Category = "Foodgrains, Oil & Masala"
	CategoryFruitsVegetables Category = "Fruits & Vegetables"
	CategoryEggsMeatFish     Category = "Eggs, Meat & Fish"
)

// CookingCategories returns the aisles that hold recipe ingredients
func CookingCategories() []Category {
	return []Category{
		CategoryBakeryDairy,
		CategoryGrainsOilMasala,
		CategoryFruitsVegetables,
		CategoryEggsMeatFish,
	}
}

// Product represents a catalog item as stored by the storefront
type Product struct {
	ID              string   `json:"id"`
	Name            string   `json:"productName"`
	Brand           string   `json:"brand,omitempty"`
	Category        Category `json:"category,omitempty"`
	Price           float64  `json:"price"`
	DiscountedPrice float64  `json:"discountedPrice,omitempty"`
	Unit            string   `json:"unit,omitempty"`
	ImageURL        string   `json:"imageUrl,omitempty"`
}

// ScoredCandidate pairs a product with its relevance score for one ingredient.
// Index is the product's position in the catalog snapshot.
type ScoredCandidate struct {
	Product Product
	Score   int
	Index   int
}

// MatchResult holds the ranked products for a single ingredient
type MatchResult struct {
	Name     string    `json:"name"`
	Products []Product `json:"matchedProducts"`
}

// RecipeRequest is the body of a recipe lookup
type RecipeRequest struct {
	Dish string `json:"dish"`
}

// MatchRequest is the body of a direct ingredient match
type MatchRequest struct {
	Ingredients []string `json:"ingredients"`
}

// RecipeResult is the assembled answer for a dish
type RecipeResult struct {
	Dish        string        `json:"dish,omitempty"`
	Ingredients []MatchResult `json:"ingredients"`
}
