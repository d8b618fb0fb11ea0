package usecase

import (
	"regexp"
	"strings"
)

// minTokenLength is the shortest term kept by Tokens
const minTokenLength = 3

// termSeparatorRegex splits ingredient names on whitespace and hyphen runs
var termSeparatorRegex = regexp.MustCompile(`[\s-]+`)

// Tokenizer turns names into comparable terms. The scorer depends only on
// this interface so the stemming strategy can be swapped out.
type Tokenizer interface {
	// Tokens returns the normalized terms of an ingredient name
	Tokens(name string) []string
	// NormalizeName returns the form of a product name that tokens are matched against
	NormalizeName(name string) string
}

// SuffixStemmer is a light plural/suffix stripper. It is a heuristic, not a stemmer:
// "tomatoes" becomes "tomatoe" and "chilli" becomes "chill", which is fine
// because tokens are only ever compared by substring.
type SuffixStemmer struct{}

// Tokens lowercases, splits, stems and drops short terms
func (SuffixStemmer) Tokens(name string) []string {
	cleaned := strings.ToLower(strings.TrimSpace(name))
	if cleaned == "" {
		return nil
	}

	var tokens []string
	for _, term := range termSeparatorRegex.Split(cleaned, -1) {
		term = Stem(term)
		if len(term) < minTokenLength {
			continue
		}
		tokens = append(tokens, term)
	}

	return tokens
}

// NormalizeName lowercases the whole product name and stems its final word
func (SuffixStemmer) NormalizeName(name string) string {
	return Stem(strings.ToLower(strings.TrimSpace(name)))
}

// Stem strips one trailing "ies", "s", "i" or "y", in that order of priority
func Stem(term string) string {
	for _, suffix := range []string{"ies", "s", "i", "y"} {
		if strings.HasSuffix(term, suffix) {
			return strings.TrimSuffix(term, suffix)
		}
	}
	return term
}
