package services

import (
	"context"
	"errors"
	"math/rand"
	"strings"

	"caloriex-backend/models"
)

// ErrUpstream marks a source's network/store call failing, as opposed to a
// clean empty result. The generator falls through to the next source on it;
// it never reaches the end user as a hard failure.
var ErrUpstream = errors.New("food source upstream unavailable")

// CandidateQuery narrows what a source offers for one plan slot.
type CandidateQuery struct {
	MealType       string
	DietPreference string
	Limit          int
}

// FoodSource is the capability set all three providers implement.
type FoodSource interface {
	Name() string
	Search(ctx context.Context, term string, limit int) ([]models.FoodRecord, error)
	GetByID(ctx context.Context, id string) (*models.FoodRecord, error)
	Candidates(ctx context.Context, q CandidateQuery) ([]models.FoodRecord, error)
}

// Preferences whose plans should lean heavily on the regional table.
var indianLeaning = map[string]bool{
	"indian-vegetarian": true,
	"hindu-fasting":     true,
	"jain-diet":         true,
	"sattvic-diet":      true,
	"indian-regional":   true,
}

// sourceOrder returns the fallback chain for one slot pick. Indian-leaning
// preferences bias 80% toward the regional table, everything else 30%; the
// remaining mass prefers curated content with the international DB last.
func sourceOrder(dietPreference string, rng *rand.Rand, regional, custom, international FoodSource) []FoodSource {
	regionalBias := 0.3
	if indianLeaning[dietPreference] {
		regionalBias = 0.8
	}
	if rng.Float64() < regionalBias {
		return []FoodSource{regional, custom, international}
	}
	return []FoodSource{custom, regional, international}
}

// AllergyTokens splits the free-text allergies field into lowercase tokens.
func AllergyTokens(allergies string) []string {
	var tokens []string
	for _, tok := range strings.Split(allergies, ",") {
		tok = strings.ToLower(strings.TrimSpace(tok))
		if tok != "" && tok != "none" {
			tokens = append(tokens, tok)
		}
	}
	return tokens
}

func matchesAllergy(name string, tokens []string) bool {
	lower := strings.ToLower(name)
	for _, tok := range tokens {
		if strings.Contains(lower, tok) {
			return true
		}
	}
	return false
}

// slotSearchTerms seed international-DB candidate lookups per meal slot.
var slotSearchTerms = map[string][]string{
	"Breakfast": {"oatmeal", "eggs", "yogurt", "cereal", "pancake"},
	"Lunch":     {"rice bowl", "chicken salad", "sandwich", "lentil soup", "pasta"},
	"Snack":     {"nuts", "fruit", "granola bar", "hummus", "smoothie"},
	"Dinner":    {"grilled chicken", "salmon", "stir fry", "curry", "soup"},
}
