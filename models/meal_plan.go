package models

import (
	"time"

	"gorm.io/gorm"
)

// Portion is the quantity actually consumed, derived from a per-100g record.
type Portion struct {
	Amount      float64 `json:"amount"` // > 0 whenever the food is included
	Unit        string  `json:"unit"`   // g | ml | piece | serving
	Description string  `json:"description"`
}

// PlanItem is one food inside one meal slot, with its provenance and a
// compliance warning when the advisory filters flagged it. Medical is the
// source record's nutrient profile, kept so the condition thresholds can be
// evaluated against the item after selection.
type PlanItem struct {
	FoodID    string                `json:"food_id"`
	Source    string                `json:"source"`
	Name      string                `json:"name"`
	Portion   Portion               `json:"portion"`
	Nutrition Nutrition             `json:"nutrition"`
	Medical   FoodMedicalProperties `json:"medical"`
	Warning   string                `json:"warning,omitempty"`
}

// MealEntry is one slot of a day. Totals are a display cache and always equal
// the sum over Items.
type MealEntry struct {
	MealType string     `json:"meal_type"`
	Time     string     `json:"time,omitempty"` // fixed serving time (intermittent fasting)
	Items    []PlanItem `json:"items"`
	Totals   Nutrition  `json:"totals"`
}

type DayPlan struct {
	Day   string      `json:"day"`
	Meals []MealEntry `json:"meals"`
}

// MealPlan is the generated 7-day plan persisted as a single record. The
// generation parameters are kept so a plan can be explained later.
type MealPlan struct {
	gorm.Model
	PlanID string `gorm:"type:varchar(36);uniqueIndex;not null"`
	UserID uint   `gorm:"index;not null"`

	DietPreference    string
	DietGoal          string
	CalorieGoal       int
	Period            string
	MedicalConditions string
	Allergies         string
	Source            string // generator variant tag
	GeneratedAt       time.Time

	Days []DayPlan `gorm:"serializer:json"`
}
