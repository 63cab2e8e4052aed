package utils

import (
	"fmt"
	"strings"

	"caloriex-backend/models"
)

// Per-condition rule tables. Same fail-open contract as the diet filters:
// unknown conditions are safe, and nothing here ever removes a food from a
// plan — violations only produce warnings.

var conditionAvoidKeywords = map[string][]string{
	"diabetes": {
		"sugar", "sweet", "jaggery", "honey", "gulab jamun", "jalebi",
		"cake", "pastry", "soda", "cola", "candy", "ice cream", "syrup",
	},
	"hypertension": {
		"pickle", "papad", "chips", "namkeen", "salted", "canned", "sausage",
		"bacon", "instant noodle", "soy sauce", "processed",
	},
	"heart-disease": {
		"fried", "butter", "ghee", "cream", "vanaspati", "red meat", "bacon",
		"sausage", "cake", "pastry",
	},
	"kidney-disease": {
		"banana", "potato", "tomato", "spinach", "orange", "dried fruit",
		"salted", "processed", "cola",
	},
	"thyroid": {
		"cabbage", "cauliflower", "broccoli", "kale", "soy", "millet", "radish",
	},
	"gout": {
		"organ meat", "liver", "kidney", "anchovy", "sardine", "mackerel",
		"prawn", "shrimp", "beer", "mushroom",
	},
	"ibs": {
		"onion", "garlic", "wheat", "rajma", "chole", "cabbage", "milk",
		"ice cream", "apple", "cauliflower",
	},
	"celiac": {
		"wheat", "roti", "chapati", "paratha", "naan", "bread", "pasta",
		"barley", "rye", "semolina", "suji", "maida",
	},
	"lactose-intolerance": {
		"milk", "cheese", "cream", "ice cream", "khoya", "condensed",
	},
}

// conditionThresholds are the optional numeric checks run when a record's
// nutrient properties are known. Zero means "no limit for this condition".
type conditionThresholds struct {
	MaxGlycemicIndex float64
	MaxSodium        float64 // mg per 100 g
	MaxSaturatedFat  float64 // g per 100 g
	MinFiber         float64 // g per 100 g
	MaxSugar         float64 // g per 100 g
	MaxPurine        float64 // mg per 100 g
	MaxOxalate       float64 // mg per 100 g
	AvoidGoitrogens  bool
	AvoidFODMAP      bool
	AvoidTyramine    bool
}

var conditionLimits = map[string]conditionThresholds{
	"diabetes":            {MaxGlycemicIndex: 55, MaxSugar: 10, MinFiber: 1},
	"hypertension":        {MaxSodium: 400, MaxSaturatedFat: 5},
	"heart-disease":       {MaxSaturatedFat: 4, MaxSodium: 500},
	"kidney-disease":      {MaxSodium: 300},
	"thyroid":             {AvoidGoitrogens: true},
	"gout":                {MaxPurine: 100},
	"ibs":                 {AvoidFODMAP: true},
	"migraine":            {AvoidTyramine: true},
	"kidney-stones":       {MaxOxalate: 50},
	"lactose-intolerance": {},
	"celiac":              {},
}

// Substitute suggestions attached to medical warnings (up to 3 per item).
var conditionRecommended = map[string][]string{
	"diabetes":            {"bitter gourd sabzi", "methi dal", "ragi roti", "sprout salad", "low-GI brown rice"},
	"hypertension":        {"steamed vegetables", "oats porridge", "banana", "unsalted curd", "fresh fruit salad"},
	"heart-disease":       {"grilled fish", "oats upma", "walnut", "olive oil salad", "steamed sprouts"},
	"kidney-disease":      {"white rice", "apple", "cabbage sabzi", "cucumber salad"},
	"thyroid":             {"cooked spinach", "egg", "plain rice", "moong dal"},
	"gout":                {"low-fat milk", "cherry", "plain rice", "cucumber salad"},
	"ibs":                 {"plain rice", "banana", "steamed carrot", "lactose-free curd"},
	"celiac":              {"rice", "jowar roti", "bajra roti", "poha"},
	"lactose-intolerance": {"soy milk", "coconut curd", "almond milk"},
}

// IsSafeForCondition checks the avoid-keyword list first, then the numeric
// threshold table when properties are supplied. Unknown condition = safe.
func IsSafeForCondition(foodName, condition string, props *models.FoodMedicalProperties) bool {
	cond := strings.ToLower(strings.TrimSpace(condition))
	if cond == "" || cond == "none" {
		return true
	}

	avoid, knownAvoid := conditionAvoidKeywords[cond]
	limits, knownLimits := conditionLimits[cond]
	if !knownAvoid && !knownLimits {
		return true
	}

	if containsAny(strings.ToLower(foodName), avoid) {
		return false
	}
	if props == nil {
		return true
	}

	switch {
	case limits.MaxGlycemicIndex > 0 && props.GlycemicIndex > limits.MaxGlycemicIndex:
		return false
	case limits.MaxSodium > 0 && props.Sodium > limits.MaxSodium:
		return false
	case limits.MaxSaturatedFat > 0 && props.SaturatedFat > limits.MaxSaturatedFat:
		return false
	case limits.MinFiber > 0 && props.Fiber > 0 && props.Fiber < limits.MinFiber:
		return false
	case limits.MaxSugar > 0 && props.Sugar > limits.MaxSugar:
		return false
	case limits.MaxPurine > 0 && props.Purine > limits.MaxPurine:
		return false
	case limits.MaxOxalate > 0 && props.Oxalate > limits.MaxOxalate:
		return false
	case limits.AvoidGoitrogens && props.IsGoitrogenic:
		return false
	case limits.AvoidFODMAP && props.IsFODMAP:
		return false
	case limits.AvoidTyramine && props.ContainsTyramine:
		return false
	}
	return true
}

// RecommendedForCondition returns up to limit substitute foods for a condition.
func RecommendedForCondition(condition string, limit int) []string {
	recs := conditionRecommended[strings.ToLower(strings.TrimSpace(condition))]
	if limit > 0 && len(recs) > limit {
		recs = recs[:limit]
	}
	return recs
}

// AnnotateWarnings attaches advisory warnings to every plan item that fails
// the diet filter or any medical-condition filter. The input days are not
// mutated; items that pass are carried over unchanged.
func AnnotateWarnings(days []models.DayPlan, dietPreference, dietSub string, conditions []string) []models.DayPlan {
	out := make([]models.DayPlan, len(days))
	for di, day := range days {
		meals := make([]models.MealEntry, len(day.Meals))
		for mi, meal := range day.Meals {
			items := make([]models.PlanItem, len(meal.Items))
			for ii, item := range meal.Items {
				items[ii] = item
				if w := buildWarning(item.Name, &item.Medical, dietPreference, dietSub, conditions); w != "" {
					items[ii].Warning = w
				}
			}
			meals[mi] = meal
			meals[mi].Items = items
		}
		out[di] = day
		out[di].Meals = meals
	}
	return out
}

func buildWarning(foodName string, props *models.FoodMedicalProperties, dietPreference, dietSub string, conditions []string) string {
	var parts []string
	if dietPreference != "" && !IsDietCompliantFor(foodName, dietPreference, dietSub) {
		parts = append(parts, fmt.Sprintf("may not suit your %s preference", dietPreference))
	}
	for _, cond := range conditions {
		cond = strings.ToLower(strings.TrimSpace(cond))
		if cond == "" || cond == "none" {
			continue
		}
		if IsSafeForCondition(foodName, cond, props) {
			continue
		}
		msg := fmt.Sprintf("not recommended for %s", cond)
		if recs := RecommendedForCondition(cond, 3); len(recs) > 0 {
			msg += fmt.Sprintf(" (try: %s)", strings.Join(recs, ", "))
		}
		parts = append(parts, msg)
	}
	return strings.Join(parts, "; ")
}
