package services

import (
	"testing"

	"caloriex-backend/models"
)

func loggedEntry(meal, name string, qty, kcal, protein, carbs, fat float64) models.LoggedFood {
	return models.LoggedFood{
		MealType: meal,
		FoodName: name,
		Quantity: qty,
		Calories: kcal,
		Protein:  protein,
		Carbs:    carbs,
		Fat:      fat,
	}
}

func TestAggregateDayQuantityMath(t *testing.T) {
	entries := []models.LoggedFood{
		loggedEntry("Breakfast", "Idli", 2, 100, 3, 20, 0.5),
		loggedEntry("Breakfast", "Masala Chai", 1, 60, 1.5, 8, 2),
		loggedEntry("Lunch", "Dal Tadka", 1.5, 120, 6.5, 14, 4),
	}

	totals := AggregateDay(entries)

	bf := totals.Meals["Breakfast"]
	if bf.Calories != 260 {
		t.Errorf("breakfast calories = %v, want 260 (2x100 + 1x60)", bf.Calories)
	}
	if bf.Protein != 7.5 {
		t.Errorf("breakfast protein = %v, want 7.5", bf.Protein)
	}

	lunch := totals.Meals["Lunch"]
	if lunch.Calories != 180 {
		t.Errorf("lunch calories = %v, want 180 (1.5x120)", lunch.Calories)
	}

	if totals.Day.Calories != 440 {
		t.Errorf("day calories = %v, want 440", totals.Day.Calories)
	}
	if totals.Day.Carbs != 69 {
		t.Errorf("day carbs = %v, want 69", totals.Day.Carbs)
	}
}

func TestAggregateDayIdempotent(t *testing.T) {
	entries := []models.LoggedFood{
		loggedEntry("Dinner", "Khichdi", 1, 200, 8, 35, 5),
		loggedEntry("Snack", "Banana", 2, 89, 1.1, 23, 0.3),
	}

	a := AggregateDay(entries)
	b := AggregateDay(entries)
	if a.Day != b.Day {
		t.Errorf("same entries produced different day totals: %+v vs %+v", a.Day, b.Day)
	}
	for meal := range a.Meals {
		if a.Meals[meal] != b.Meals[meal] {
			t.Errorf("%s totals differ across runs", meal)
		}
	}
}

func TestAggregateDayEmpty(t *testing.T) {
	totals := AggregateDay(nil)
	if totals.Day != (models.Nutrition{}) {
		t.Errorf("empty log must total zero, got %+v", totals.Day)
	}
	if len(totals.Meals) != 0 {
		t.Errorf("empty log must have no meal buckets, got %d", len(totals.Meals))
	}
}

func TestRemainingGoesNegativeWhenExceeded(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000, Protein: 100, Carbs: 250, Fat: 65}
	consumed := models.Nutrition{Calories: 2350, Protein: 80, Carbs: 260, Fat: 50}

	r := Remaining(consumed, goal)
	if r.Calories != -350 {
		t.Errorf("remaining calories = %v, want -350 (overage must not be clamped)", r.Calories)
	}
	if r.Protein != 20 {
		t.Errorf("remaining protein = %v, want 20", r.Protein)
	}
	if r.Carbs != -10 {
		t.Errorf("remaining carbs = %v, want -10", r.Carbs)
	}
}

func TestProgressPercentClamped(t *testing.T) {
	goal := models.DailyGoal{Calories: 2000, Protein: 100, Carbs: 250, Fat: 65}

	pct := ProgressPercent(models.Nutrition{Calories: 500, Protein: 150, Carbs: 125, Fat: 0}, goal)
	if pct["calories"] != 25 {
		t.Errorf("calories progress = %v, want 25", pct["calories"])
	}
	if pct["protein"] != 100 {
		t.Errorf("protein progress = %v, want 100 (clamped)", pct["protein"])
	}
	if pct["carbs"] != 50 {
		t.Errorf("carbs progress = %v, want 50", pct["carbs"])
	}
	if pct["fat"] != 0 {
		t.Errorf("fat progress = %v, want 0", pct["fat"])
	}

	zero := ProgressPercent(models.Nutrition{Calories: 500}, models.DailyGoal{})
	if zero["calories"] != 0 {
		t.Errorf("zero goal must report 0 progress, got %v", zero["calories"])
	}
}
