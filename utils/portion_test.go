package utils

import (
	"strings"
	"testing"

	"caloriex-backend/models"
)

func TestNutritionForPortionNeverZero(t *testing.T) {
	records := []models.FoodRecord{
		{Name: "Steamed Rice", Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3},
		{Name: "Mystery Rice Dish"}, // no data at all
		{Name: "Protein Shake", Protein: 20, Carbs: 5},           // calories missing
		{Name: "Unknown Item"},                                   // no data, no category match
		{Name: "Ghee", Fat: 99.9},                                // single macro
		{Name: "Plain Water Chestnut", Calories: 0, Protein: 0},  // zeros
	}
	for _, rec := range records {
		for _, amount := range []float64{1, 30, 100, 250} {
			n := NutritionForPortion(rec, amount)
			if n.Calories <= 0 || n.Protein <= 0 || n.Carbs <= 0 || n.Fat <= 0 {
				t.Errorf("%s @ %vg produced a zero macro: %+v", rec.Name, amount, n)
			}
		}
	}
}

func TestNutritionForPortionScales(t *testing.T) {
	rec := models.FoodRecord{Name: "Dal Tadka", Calories: 120, Protein: 6.5, Carbs: 15, Fat: 4}
	n := NutritionForPortion(rec, 150)
	if n.Calories != 180 {
		t.Errorf("calories = %v, want 180", n.Calories)
	}
	if n.Protein != 9.8 { // 6.5*1.5 rounded to one decimal
		t.Errorf("protein = %v, want 9.8", n.Protein)
	}
}

func TestNutritionForPortionRebuildsCaloriesFromMacros(t *testing.T) {
	rec := models.FoodRecord{Name: "Custom Mix", Protein: 10, Carbs: 20, Fat: 5}
	n := NutritionForPortion(rec, 100)
	// 10*4 + 20*4 + 5*9 = 165
	if n.Calories != 165 {
		t.Errorf("reconstructed calories = %v, want 165", n.Calories)
	}
}

func TestNutritionForPortionCategoryDefaults(t *testing.T) {
	n := NutritionForPortion(models.FoodRecord{Name: "Veg Curry Special"}, 100)
	if n.Calories != 120 {
		t.Errorf("curry default calories = %v, want 120", n.Calories)
	}
	n = NutritionForPortion(models.FoodRecord{Name: "Jeera Rice"}, 100)
	if n.Calories != 150 {
		t.Errorf("rice default calories = %v, want 150", n.Calories)
	}
}

func TestCalculatePortionPieceFoods(t *testing.T) {
	rec := models.FoodRecord{Name: "Tandoori Roti"}
	p := CalculatePortion(rec, "maintenance", "Dinner")
	if p.Unit != "piece" {
		t.Fatalf("roti unit = %q, want piece", p.Unit)
	}
	if !strings.Contains(p.Description, "piece") {
		t.Errorf("piece description missing: %q", p.Description)
	}
	if p.Amount <= 0 {
		t.Errorf("piece portion amount must be positive, got %v", p.Amount)
	}
}

func TestCalculatePortionGoalScaling(t *testing.T) {
	rec := models.FoodRecord{Name: "Vegetable Pulao", ServingSizeG: 150}
	loss := CalculatePortion(rec, "weight-loss", "Breakfast")
	gain := CalculatePortion(rec, "weight-gain", "Breakfast")
	if loss.Amount != 120 { // 150 * 0.8
		t.Errorf("weight-loss portion = %v, want 120", loss.Amount)
	}
	if gain.Amount != 180 { // 150 * 1.2
		t.Errorf("weight-gain portion = %v, want 180", gain.Amount)
	}
}

func TestCalculatePortionSlotScaling(t *testing.T) {
	rec := models.FoodRecord{Name: "Fruit Bowl", ServingSizeG: 200}
	snack := CalculatePortion(rec, "maintenance", "Snack")
	lunch := CalculatePortion(rec, "maintenance", "Lunch")
	if snack.Amount != 100 { // x0.5
		t.Errorf("snack portion = %v, want 100", snack.Amount)
	}
	if lunch.Amount != 220 { // x1.1
		t.Errorf("lunch portion = %v, want 220", lunch.Amount)
	}
}

func TestCalculatePortionLiquidUnit(t *testing.T) {
	p := CalculatePortion(models.FoodRecord{Name: "Masala Chai"}, "maintenance", "Breakfast")
	if p.Unit != "ml" {
		t.Errorf("liquid unit = %q, want ml", p.Unit)
	}
	if p.Amount != 240 {
		t.Errorf("liquid default = %v, want 240", p.Amount)
	}
}
