package models

import (
	"gorm.io/gorm"
)

// LoggedFood is one entry of a user's daily log. Nutrition fields are
// per-unit snapshots taken at log time; day totals are quantity-weighted sums
// recomputed on read, never stored.
type LoggedFood struct {
	gorm.Model
	UserID   uint   `gorm:"index;not null"`
	Date     string `gorm:"type:varchar(10);index;not null"` // yyyy-MM-dd
	MealType string `gorm:"not null"`                        // Breakfast | Lunch | Snack | Dinner

	FoodID      string
	Source      string
	FoodName    string
	Quantity    float64 // units consumed
	ServingSize float64 // grams per unit

	Calories float64
	Protein  float64
	Carbs    float64
	Fat      float64
}
