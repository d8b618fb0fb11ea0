package usecase

import (
	"regexp"
	"strings"

	"github.com/freshcart/backend/internal/domain"
)

// Ingredient is a prepared ingredient: its lowercased raw text, its tokens
// and its whole-word pattern. It is built once per ingredient and shared
// read-only across every product scored against it.
type Ingredient struct {
	Raw       string
	Tokens    []string
	wholeWord *regexp.Regexp
}

// Scorer computes relevance scores from a Rules table
type Scorer struct {
	rules     Rules
	tokenizer Tokenizer
}

// NewScorer creates a scorer; a nil tokenizer falls back to SuffixStemmer
func NewScorer(rules Rules, tokenizer Tokenizer) *Scorer {
	if tokenizer == nil {
		tokenizer = SuffixStemmer{}
	}
	return &Scorer{rules: rules, tokenizer: tokenizer}
}

// Prepare normalizes a raw ingredient name for scoring
func (s *Scorer) Prepare(rawIngredient string) Ingredient {
	raw := strings.ToLower(strings.TrimSpace(rawIngredient))
	ing := Ingredient{
		Raw:    raw,
		Tokens: s.tokenizer.Tokens(raw),
	}
	if raw != "" {
		ing.wholeWord = regexp.MustCompile(`\b` + regexp.QuoteMeta(raw) + `\b`)
	}
	return ing
}

// Score returns the relevance of product for the ingredient. A product that
// shares no token with the ingredient scores 0 and no other rule is applied.
func (s *Scorer) Score(ing Ingredient, product domain.Product) int {
	name := strings.ToLower(strings.TrimSpace(product.Name))
	normalizedName := s.tokenizer.NormalizeName(product.Name)

	overlap := termOverlap(ing.Tokens, normalizedName)
	if overlap == 0 {
		return 0
	}
	score := s.rules.TermWeight * overlap

	for _, anchor := range s.rules.Anchors {
		if product.Category != "" && product.Category == anchor.Category && containsAny(ing.Raw, anchor.Keywords) {
			score += anchor.Bonus
		}
	}

	if strings.Contains(name, ing.Raw) {
		score += s.rules.ContainmentBonus
	}

	if ing.wholeWord != nil && ing.wholeWord.MatchString(name) {
		score += s.rules.WholeWordBonus
	}

	if strings.HasPrefix(name, ing.Tokens[0]) {
		score += s.rules.PrefixBonus
	}

	// Processed forms only compete when the ingredient itself names one
	if containsAny(name, s.rules.ProcessedMarkers) && !containsAny(ing.Raw, s.rules.ProcessedExemptions) {
		score -= s.rules.ProcessedPenalty
	}

	return score
}

// termOverlap counts tokens found inside name; repeated tokens count each time
func termOverlap(tokens []string, name string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(name, token) {
			count++
		}
	}
	return count
}

func containsAny(s string, words []string) bool {
	for _, w := range words {
		if strings.Contains(s, w) {
			return true
		}
	}
	return false
}
