package models

import (
	"gorm.io/gorm"
)

// DailyGoal holds each user's daily macro targets. Created with defaults on
// first access, mutable by the user at any time.
type DailyGoal struct {
	gorm.Model
	UserID   uint    `gorm:"index;not null"`
	Calories float64 // kcal
	Protein  float64 // g
	Carbs    float64 // g
	Fat      float64 // g
}
