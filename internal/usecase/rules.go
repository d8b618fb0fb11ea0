package usecase

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/freshcart/backend/internal/domain"
)

// CategoryAnchor awards Bonus when the raw ingredient mentions any of
// Keywords and the product sits in Category.
type CategoryAnchor struct {
	Keywords []string        `yaml:"keywords"`
	Category domain.Category `yaml:"category"`
	Bonus    int             `yaml:"bonus"`
}

// Rules is the scoring table consumed by the Scorer and Ranker.
// Word lists are matched against lowercased text, so entries must be lowercase.
type Rules struct {
	TermWeight          int              `yaml:"term_weight"`
	Anchors             []CategoryAnchor `yaml:"anchors"`
	ContainmentBonus    int              `yaml:"containment_bonus"`
	WholeWordBonus      int              `yaml:"whole_word_bonus"`
	PrefixBonus         int              `yaml:"prefix_bonus"`
	ProcessedMarkers    []string         `yaml:"processed_markers"`
	ProcessedExemptions []string         `yaml:"processed_exemptions"`
	ProcessedPenalty    int              `yaml:"processed_penalty"`
	NegationMarkers     []string         `yaml:"negation_markers"`
	MaxResults          int              `yaml:"max_results"`
}

// DefaultRules returns the storefront's stock scoring table
func DefaultRules() Rules {
	return Rules{
		TermWeight: 20,
		Anchors: []CategoryAnchor{
			{
				Keywords: []string{"egg", "chicken", "meat", "fish"},
				Category: domain.CategoryEggsMeatFish,
				Bonus:    150,
			},
			{
				Keywords: []string{"oil", "masala", "dal", "rice", "atta"},
				Category: domain.CategoryGrainsOilMasala,
				Bonus:    100,
			},
		},
		ContainmentBonus:    50,
		WholeWordBonus:      60,
		PrefixBonus:         15,
		ProcessedMarkers:    []string{"masala", "powder", "mix", "paste", "ready", "instant"},
		ProcessedExemptions: []string{"masala", "powder"},
		ProcessedPenalty:    80,
		NegationMarkers:     []string{"less", "free", "substitute", "alternative"},
		MaxResults:          10,
	}
}

// Validate checks that the table can produce a usable ranking
func (r Rules) Validate() error {
	if r.TermWeight <= 0 {
		return fmt.Errorf("%w: term weight must be positive, got %d", domain.ErrInvalidRequest, r.TermWeight)
	}
	if r.MaxResults <= 0 {
		return fmt.Errorf("%w: max results must be positive, got %d", domain.ErrInvalidRequest, r.MaxResults)
	}
	for i, a := range r.Anchors {
		if a.Category == "" || len(a.Keywords) == 0 {
			return fmt.Errorf("%w: anchor %d needs a category and at least one keyword", domain.ErrInvalidRequest, i)
		}
	}
	return nil
}

// LoadRules reads a YAML rules file. Fields missing from the file keep
// their DefaultRules value.
func LoadRules(path string) (Rules, error) {
	rules := DefaultRules()

	data, err := os.ReadFile(path)
	if err != nil {
		return Rules{}, fmt.Errorf("read rules file: %w", err)
	}
	if err := yaml.Unmarshal(data, &rules); err != nil {
		return Rules{}, fmt.Errorf("decode rules file: %w", err)
	}
	if err := rules.Validate(); err != nil {
		return Rules{}, errors.Join(fmt.Errorf("rules file %s", path), err)
	}

	return rules, nil
}
