package usecase

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/freshcart/backend/internal/domain"
)

func TestDefaultRules(t *testing.T) {
	rules := DefaultRules()

	require.NoError(t, rules.Validate())
	assert.Equal(t, 20, rules.TermWeight)
	assert.Equal(t, 10, rules.MaxResults)
	require.Len(t, rules.Anchors, 2)
	assert.Equal(t, domain.CategoryEggsMeatFish, rules.Anchors[0].Category)
	assert.Equal(t, 150, rules.Anchors[0].Bonus)
	assert.Equal(t, domain.CategoryGrainsOilMasala, rules.Anchors[1].Category)
	assert.Equal(t, 100, rules.Anchors[1].Bonus)
	assert.Equal(t, []string{"less", "free", "substitute", "alternative"}, rules.NegationMarkers)
}

func TestDefaultRules_Independent(t *testing.T) {
	a := DefaultRules()
	a.ProcessedMarkers[0] = "changed"
	a.Anchors[0].Keywords[0] = "changed"

	b := DefaultRules()
	assert.Equal(t, "masala", b.ProcessedMarkers[0])
	assert.Equal(t, "egg", b.Anchors[0].Keywords[0])
}

func TestRules_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Rules)
	}{
		{"zero term weight", func(r *Rules) { r.TermWeight = 0 }},
		{"zero max results", func(r *Rules) { r.MaxResults = 0 }},
		{"anchor without category", func(r *Rules) { r.Anchors[0].Category = "" }},
		{"anchor without keywords", func(r *Rules) { r.Anchors[1].Keywords = nil }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rules := DefaultRules()
			tt.mutate(&rules)
			assert.ErrorIs(t, rules.Validate(), domain.ErrInvalidRequest)
		})
	}
}

func writeRules(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "rules.yaml")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestLoadRules(t *testing.T) {
	t.Run("partial file keeps defaults", func(t *testing.T) {
		rules, err := LoadRules(writeRules(t, "prefix_bonus: 40\nmax_results: 3\n"))
		require.NoError(t, err)

		assert.Equal(t, 40, rules.PrefixBonus)
		assert.Equal(t, 3, rules.MaxResults)
		assert.Equal(t, 20, rules.TermWeight)
		assert.Len(t, rules.Anchors, 2)
	})

	t.Run("replaces anchors", func(t *testing.T) {
		rules, err := LoadRules(writeRules(t, `
anchors:
  - keywords: [paneer, milk, curd]
    category: "Bakery, Cakes & Dairy"
    bonus: 120
negation_markers: [less, free]
`))
		require.NoError(t, err)

		require.Len(t, rules.Anchors, 1)
		assert.Equal(t, domain.CategoryBakeryDairy, rules.Anchors[0].Category)
		assert.Equal(t, []string{"paneer", "milk", "curd"}, rules.Anchors[0].Keywords)
		assert.Equal(t, 120, rules.Anchors[0].Bonus)
		assert.Equal(t, []string{"less", "free"}, rules.NegationMarkers)
	})

	t.Run("invalid values rejected", func(t *testing.T) {
		_, err := LoadRules(writeRules(t, "max_results: 0\n"))
		assert.ErrorIs(t, err, domain.ErrInvalidRequest)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		_, err := LoadRules(writeRules(t, "anchors: [unterminated\n"))
		assert.Error(t, err)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadRules(filepath.Join(t.TempDir(), "missing.yaml"))
		assert.ErrorIs(t, err, os.ErrNotExist)
	})
}
