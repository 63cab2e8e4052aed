package services

import (
	"errors"
	"strings"

	"caloriex-backend/config"
	"caloriex-backend/models"
	"caloriex-backend/utils"
)

// ProfileInput is the profile-edit form. Zero values are "leave unchanged".
type ProfileInput struct {
	FullName          string  `json:"full_name"`
	Gender            string  `json:"gender"`
	Age               int     `json:"age"`
	Weight            float64 `json:"weight"`
	Height            float64 `json:"height"`
	DietPreference    string  `json:"diet_preference"`
	DietGoal          string  `json:"diet_goal"`
	MedicalConditions string  `json:"medical_conditions"`
	Allergies         string  `json:"allergies"`
	ActivityLevel     string  `json:"activity_level"`
	BloodType         string  `json:"blood_type"`
	Region            string  `json:"region"`
}

func GetUserProfile(userID uint) (map[string]interface{}, error) {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return nil, errors.New("user not found")
	}

	profile := map[string]interface{}{
		"id":                 user.ID,
		"email":              user.Email,
		"full_name":          user.FullName,
		"gender":             user.Gender,
		"age":                user.Age,
		"weight":             user.Weight,
		"height":             user.Height,
		"diet_preference":    user.DietPreference,
		"diet_goal":          user.DietGoal,
		"medical_conditions": user.MedicalConditions,
		"allergies":          user.Allergies,
		"activity_level":     user.ActivityLevel,
		"blood_type":         user.BloodType,
		"region":             user.Region,
	}

	if bmi, err := utils.CalculateBMI(user.Height, user.Weight); err == nil {
		profile["bmi"] = bmi
		profile["bmi_category"] = utils.BMICategory(bmi)
	}
	return profile, nil
}

func UpdateUserProfile(userID uint, input ProfileInput) error {
	var user models.User
	if err := config.DB.First(&user, userID).Error; err != nil {
		return errors.New("user not found")
	}

	if input.FullName != "" {
		user.FullName = input.FullName
	}
	if input.Gender != "" {
		gender := strings.ToLower(strings.TrimSpace(input.Gender))
		if gender != "male" && gender != "female" {
			return errors.New("gender must be male or female")
		}
		user.Gender = gender
	}
	if input.Age > 0 {
		user.Age = input.Age
	}
	if input.Weight > 0 {
		user.Weight = input.Weight
	}
	if input.Height > 0 {
		user.Height = input.Height
	}
	if input.DietPreference != "" {
		user.DietPreference = input.DietPreference
	}
	if input.DietGoal != "" {
		user.DietGoal = input.DietGoal
	}
	if input.MedicalConditions != "" {
		// "none" is exclusive of every other tag
		conds := strings.ToLower(input.MedicalConditions)
		if strings.Contains(conds, "none") {
			conds = "none"
		}
		user.MedicalConditions = conds
	}
	if input.Allergies != "" {
		user.Allergies = input.Allergies
	}
	if input.ActivityLevel != "" {
		if !utils.ValidActivityLevel(input.ActivityLevel) {
			return errors.New("unknown activity level")
		}
		user.ActivityLevel = input.ActivityLevel
	}
	if input.BloodType != "" {
		user.BloodType = strings.ToUpper(strings.TrimSpace(input.BloodType))
	}
	if input.Region != "" {
		user.Region = strings.ToLower(strings.TrimSpace(input.Region))
	}

	return config.DB.Save(&user).Error
}
