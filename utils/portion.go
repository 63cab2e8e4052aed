package utils

import (
	"fmt"
	"math"
	"strings"

	"caloriex-backend/models"
)

// Category heuristics for foods whose records don't carry a serving size.
// Piece foods are atomic units — they get piece-count descriptions instead of
// fractionally scaled gram amounts.

type pieceFood struct {
	keywords []string
	gramsPer float64
}

var pieceFoods = []pieceFood{
	{[]string{"roti", "chapati", "phulka"}, 30},
	{[]string{"paratha", "naan", "kulcha", "bhakri", "thepla"}, 50},
	{[]string{"idli"}, 40},
	{[]string{"dosa", "uttapam", "cheela"}, 80},
	{[]string{"egg", "boiled egg", "omelette"}, 50},
}

var liquidKeywords = []string{
	"milk", "lassi", "buttermilk", "juice", "smoothie", "shake", "soup",
	"tea", "chai", "coffee", "dal", "sambar", "rasam", "kadhi",
}

var defaultPortions = []struct {
	keywords []string
	grams    float64
}{
	{[]string{"rice", "biryani", "pulao", "khichdi", "poha", "upma"}, 150},
	{[]string{"curry", "sabzi", "bhaji", "korma", "masala"}, 150},
	{[]string{"salad", "raita", "chutney"}, 100},
	{[]string{"nut", "almond", "cashew", "peanut", "makhana", "seed"}, 30},
	{[]string{"fruit", "banana", "apple", "mango", "papaya", "orange"}, 120},
}

// CalculatePortion maps a food record, diet goal and meal slot to a portion.
// Goal scaling is ±20%; snacks halve, lunch/dinner get a 10% bump.
func CalculatePortion(rec models.FoodRecord, dietGoal, mealType string) models.Portion {
	name := strings.ToLower(rec.Name)

	if pf, grams := matchPieceFood(name); pf {
		pieces := basePieces(dietGoal, mealType)
		return models.Portion{
			Amount:      float64(pieces) * grams,
			Unit:        "piece",
			Description: fmt.Sprintf("%d piece(s) (%.0f g)", pieces, float64(pieces)*grams),
		}
	}

	base := rec.ServingSizeG
	unit := "g"
	if base <= 0 {
		base = defaultPortionFor(name)
	}
	if containsAny(name, liquidKeywords) {
		unit = "ml"
		if rec.ServingSizeG <= 0 {
			base = 240
		}
	}

	amount := base * goalFactor(dietGoal) * slotFactor(mealType)
	amount = math.Round(amount)
	if amount < 1 {
		amount = 1
	}
	return models.Portion{
		Amount:      amount,
		Unit:        unit,
		Description: fmt.Sprintf("%.0f %s", amount, unit),
	}
}

func matchPieceFood(name string) (bool, float64) {
	for _, pf := range pieceFoods {
		if containsAny(name, pf.keywords) {
			return true, pf.gramsPer
		}
	}
	return false, 0
}

func basePieces(dietGoal, mealType string) int {
	pieces := 2
	switch dietGoal {
	case "weight-loss":
		pieces = 1
	case "weight-gain", "muscle-building":
		pieces = 3
	}
	if strings.EqualFold(mealType, "Snack") && pieces > 1 {
		pieces--
	}
	return pieces
}

func defaultPortionFor(name string) float64 {
	for _, dp := range defaultPortions {
		if containsAny(name, dp.keywords) {
			return dp.grams
		}
	}
	return 100
}

func goalFactor(dietGoal string) float64 {
	switch dietGoal {
	case "weight-loss":
		return 0.8
	case "weight-gain", "muscle-building":
		return 1.2
	}
	return 1.0
}

func slotFactor(mealType string) float64 {
	switch strings.ToLower(mealType) {
	case "snack":
		return 0.5
	case "lunch", "dinner":
		return 1.1
	}
	return 1.0
}

// Flat per-100g defaults used when a record carries no usable nutrient data.
var categoryDefaults = []struct {
	keywords []string
	n        models.Nutrition
}{
	{[]string{"rice", "bread", "roti", "chapati", "paratha", "biryani", "pulao"},
		models.Nutrition{Calories: 150, Protein: 4, Carbs: 30, Fat: 2}},
	{[]string{"dal", "curry", "sambar", "sabzi", "korma"},
		models.Nutrition{Calories: 120, Protein: 6, Carbs: 15, Fat: 4}},
	{[]string{"vegetable", "salad", "bhaji", "greens"},
		models.Nutrition{Calories: 80, Protein: 3, Carbs: 12, Fat: 2}},
	{[]string{"ghee", "butter", "oil", "fried"},
		models.Nutrition{Calories: 250, Protein: 2, Carbs: 5, Fat: 25}},
	{[]string{"chicken", "fish", "egg", "paneer", "tofu", "mutton"},
		models.Nutrition{Calories: 180, Protein: 18, Carbs: 3, Fat: 10}},
}

// NutritionForPortion scales per-100g values to the portion. The fallback
// ladder guarantees the result is never zero anywhere: (1) rebuild calories
// from macros at 4/4/9, (2) category defaults, (3) floor at 1 g per macro and
// 10 kcal — a zero here would silently corrupt daily totals downstream.
func NutritionForPortion(rec models.FoodRecord, portionAmount float64) models.Nutrition {
	if portionAmount <= 0 {
		portionAmount = 100
	}
	f := portionAmount / 100.0

	n := models.Nutrition{
		Calories: rec.Calories * f,
		Protein:  rec.Protein * f,
		Carbs:    rec.Carbs * f,
		Fat:      rec.Fat * f,
	}

	if n.Calories <= 0 {
		n.Calories = EnergyFromMacros(n.Protein, n.Carbs, n.Fat)
	}
	if n.Calories <= 0 || (n.Protein <= 0 && n.Carbs <= 0 && n.Fat <= 0) {
		def := categoryDefault(strings.ToLower(rec.Name))
		scaled := def.Scale(f)
		if n.Calories <= 0 {
			n.Calories = scaled.Calories
		}
		if n.Protein <= 0 {
			n.Protein = scaled.Protein
		}
		if n.Carbs <= 0 {
			n.Carbs = scaled.Carbs
		}
		if n.Fat <= 0 {
			n.Fat = scaled.Fat
		}
	}

	n.Calories = math.Max(n.Calories, 10)
	n.Protein = math.Max(n.Protein, 1)
	n.Carbs = math.Max(n.Carbs, 1)
	n.Fat = math.Max(n.Fat, 1)

	n.Calories = round1(n.Calories)
	n.Protein = round1(n.Protein)
	n.Carbs = round1(n.Carbs)
	n.Fat = round1(n.Fat)
	return n
}

// EnergyFromMacros reconstructs kcal at 4/4/9 per gram.
func EnergyFromMacros(proteinG, carbsG, fatG float64) float64 {
	if proteinG <= 0 && carbsG <= 0 && fatG <= 0 {
		return 0
	}
	return proteinG*4 + carbsG*4 + fatG*9
}

func categoryDefault(name string) models.Nutrition {
	for _, cd := range categoryDefaults {
		if containsAny(name, cd.keywords) {
			return cd.n
		}
	}
	return models.Nutrition{Calories: 100, Protein: 4, Carbs: 15, Fat: 3}
}

func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
