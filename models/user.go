package models

import (
	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Email    string `gorm:"uniqueIndex;not null"`
	Password string `gorm:"not null"`
	FullName string

	Gender            string  // "male" | "female", normalized at registration
	Age               int     // years
	Weight            float64 // kg
	Height            float64 // cm
	DietPreference    string  // e.g. "vegetarian", "keto", "jain-diet"
	DietGoal          string  // "weight-loss" | "weight-gain" | "muscle-building" | "lean-mass" | "keto" | "maintenance"
	MedicalConditions string  // comma-separated condition tags; "none" is exclusive of others
	Allergies         string  // free text, comma-separated tokens
	ActivityLevel     string  // "sedentary" … "extra-active"
	BloodType         string  // used by the blood-type diet only
	Region            string  // used by the indian-regional diet only
}
