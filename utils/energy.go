package utils

import (
	"errors"
	"math"
)

// activityFactors is the single source of truth for valid activity levels —
// also used for input validation on the profile form.
var activityFactors = map[string]float64{
	"sedentary":    1.2,
	"light":        1.375,
	"moderate":     1.55,
	"active":       1.725,
	"extra-active": 1.9,
}

// periodDays maps a plan period label to its day count.
var periodDays = map[string]int{
	"4-weeks":  28,
	"6-weeks":  42,
	"2-months": 60,
	"3-months": 90,
	"6-months": 180,
}

const kcalPerKg = 7700.0

var ErrInvalidProfile = errors.New("insufficient profile data")

// BMR computes basal metabolic rate via Mifflin-St Jeor. Gender must already
// be normalized to "male" or "female".
func BMR(weightKg, heightCm float64, ageYears int, gender string) (float64, error) {
	if weightKg <= 0 || heightCm <= 0 || ageYears <= 0 {
		return 0, ErrInvalidProfile
	}
	if heightCm < 50 || heightCm > 250 || weightKg < 10 || weightKg > 400 {
		return 0, ErrInvalidProfile
	}

	base := 10*weightKg + 6.25*heightCm - 5*float64(ageYears)
	switch gender {
	case "male":
		return base + 5, nil
	case "female":
		return base - 161, nil
	}
	return 0, ErrInvalidProfile
}

// TDEE multiplies BMR by the activity factor, rounded to the nearest kcal.
// Unknown levels fall back to moderate.
func TDEE(bmr float64, activityLevel string) int {
	factor, ok := activityFactors[activityLevel]
	if !ok {
		factor = activityFactors["moderate"]
	}
	return int(math.Round(bmr * factor))
}

// CalorieGoal derives the daily calorie target from TDEE and the diet goal.
// For weight change goals the total adjustment (goalWeight-currentWeight at
// 7700 kcal/kg) is spread over the period, then clamped: surplus capped at
// tdee+1000, deficit floored at max(1200, tdee-1000).
func CalorieGoal(currentWeight, goalWeight float64, tdee int, period, dietGoal string) int {
	days, ok := periodDays[period]
	if !ok {
		days = 90
	}

	switch dietGoal {
	case "muscle-building":
		if goalWeight > currentWeight {
			surplus := (goalWeight - currentWeight) * kcalPerKg / float64(days)
			if surplus > 1000 {
				surplus = 1000
			}
			return int(math.Round(float64(tdee) + surplus))
		}
		return tdee + 300
	case "keto":
		return int(math.Round(float64(tdee) * 0.9))
	case "maintenance", "lean-mass":
		return tdee
	}

	// weight-loss / weight-gain
	adjust := (goalWeight - currentWeight) * kcalPerKg / float64(days)
	goal := float64(tdee) + adjust

	ceiling := float64(tdee) + 1000
	floor := math.Max(1200, float64(tdee)-1000)
	if goal > ceiling {
		goal = ceiling
	}
	if goal < floor {
		goal = floor
	}
	return int(math.Round(goal))
}

// ValidActivityLevel reports whether the level is one the factor table knows.
func ValidActivityLevel(level string) bool {
	_, ok := activityFactors[level]
	return ok
}
