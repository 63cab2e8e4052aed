package config

import (
	"caloriex-backend/models"

	"gorm.io/gorm"
)

// SeedFoodData loads the starter regional composition table and the curated
// meal templates on an empty database. Nutrients are per 100 g.
func SeedFoodData(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.FoodItem{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&regionalSeed).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&models.MealTemplate{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		if err := db.Create(&templateSeed).Error; err != nil {
			return err
		}
	}
	return nil
}

var regionalSeed = []models.FoodItem{
	{Name: "Roti (whole wheat)", Category: "Breads", Keywords: "roti,chapati,bread,lunch,dinner", ServingSizeG: 30, Calories: 297, Protein: 11, Carbs: 59, Fat: 4, Fiber: 11, GlycemicIndex: 52, IsVegetarian: true, IsVegan: true, ContainsGluten: true},
	{Name: "Plain Dosa", Category: "South Indian", Keywords: "dosa,breakfast,south", ServingSizeG: 80, Calories: 168, Protein: 4, Carbs: 29, Fat: 4, GlycemicIndex: 66, IsVegetarian: true, IsVegan: true},
	{Name: "Idli", Category: "South Indian", Keywords: "idli,breakfast,south", ServingSizeG: 40, Calories: 132, Protein: 4, Carbs: 28, Fat: 0.4, GlycemicIndex: 68, IsVegetarian: true, IsVegan: true},
	{Name: "Poha", Category: "Breakfast", Keywords: "poha,breakfast,rice", ServingSizeG: 150, Calories: 130, Protein: 2.6, Carbs: 25, Fat: 2.2, GlycemicIndex: 64, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Steamed Rice", Category: "Rice", Keywords: "rice,lunch,dinner", ServingSizeG: 150, Calories: 130, Protein: 2.7, Carbs: 28, Fat: 0.3, GlycemicIndex: 73, IsVegetarian: true, IsVegan: true},
	{Name: "Vegetable Biryani", Category: "Rice", Keywords: "biryani,rice,lunch,dinner", ServingSizeG: 200, Calories: 145, Protein: 3.5, Carbs: 24, Fat: 4, Sodium: 380, IsVegetarian: true, ContainsOnionGarlic: true},
	{Name: "Dal Tadka", Category: "Lentils", Keywords: "dal,lentil,lunch,dinner", ServingSizeG: 150, Calories: 120, Protein: 6.5, Carbs: 15, Fat: 4, Fiber: 4, GlycemicIndex: 38, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Moong Dal Khichdi", Category: "Rice", Keywords: "khichdi,dal,rice,dinner", ServingSizeG: 200, Calories: 115, Protein: 5, Carbs: 20, Fat: 2, Fiber: 3, GlycemicIndex: 48, IsVegetarian: true, IsVegan: true},
	{Name: "Paneer Butter Masala", Category: "Curries", Keywords: "paneer,curry,dinner", ServingSizeG: 150, Calories: 210, Protein: 8, Carbs: 9, Fat: 16, SaturatedFat: 8, Sodium: 480, IsVegetarian: true, ContainsOnionGarlic: true},
	{Name: "Palak Paneer", Category: "Curries", Keywords: "paneer,spinach,curry,dinner", ServingSizeG: 150, Calories: 150, Protein: 7.5, Carbs: 6, Fat: 11, SaturatedFat: 5, IsVegetarian: true, ContainsOnionGarlic: true},
	{Name: "Chole (Chickpea Curry)", Category: "Curries", Keywords: "chole,chickpea,curry,lunch", ServingSizeG: 150, Calories: 160, Protein: 7, Carbs: 22, Fat: 5, Fiber: 6, GlycemicIndex: 32, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Rajma Curry", Category: "Curries", Keywords: "rajma,bean,curry,lunch", ServingSizeG: 150, Calories: 140, Protein: 7.5, Carbs: 20, Fat: 3.5, Fiber: 7, GlycemicIndex: 29, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Aloo Gobi", Category: "Vegetables", Keywords: "potato,cauliflower,sabzi,lunch,dinner", ServingSizeG: 150, Calories: 110, Protein: 3, Carbs: 14, Fat: 5, Fiber: 3, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true, ContainsRootVegetables: true},
	{Name: "Bhindi Sabzi", Category: "Vegetables", Keywords: "okra,bhindi,sabzi,lunch,dinner", ServingSizeG: 150, Calories: 90, Protein: 2.5, Carbs: 9, Fat: 5, Fiber: 4, IsVegetarian: true, IsVegan: true},
	{Name: "Curd (Dahi)", Category: "Dairy", Keywords: "curd,dahi,yogurt,snack,breakfast", ServingSizeG: 100, Calories: 60, Protein: 3.5, Carbs: 4.5, Fat: 3, IsVegetarian: true},
	{Name: "Sprout Salad", Category: "Salads", Keywords: "sprout,salad,snack,breakfast", ServingSizeG: 100, Calories: 100, Protein: 7, Carbs: 16, Fat: 1, Fiber: 6, GlycemicIndex: 25, IsVegetarian: true, IsVegan: true},
	{Name: "Makhana (Roasted)", Category: "Snacks", Keywords: "makhana,snack,fasting", ServingSizeG: 30, Calories: 347, Protein: 9.7, Carbs: 77, Fat: 0.1, GlycemicIndex: 45, IsVegetarian: true, IsVegan: true},
	{Name: "Sabudana Khichdi", Category: "Fasting", Keywords: "sabudana,fasting,breakfast", ServingSizeG: 150, Calories: 180, Protein: 1.5, Carbs: 32, Fat: 5, GlycemicIndex: 67, IsVegetarian: true, ContainsRootVegetables: true},
	{Name: "Chicken Curry", Category: "Non-Veg Curries", Keywords: "chicken,curry,dinner,lunch", ServingSizeG: 150, Calories: 180, Protein: 15, Carbs: 5, Fat: 11, SaturatedFat: 3.5, Sodium: 420, ContainsOnionGarlic: true},
	{Name: "Egg Bhurji", Category: "Eggs", Keywords: "egg,bhurji,breakfast", ServingSizeG: 100, Calories: 155, Protein: 11, Carbs: 2, Fat: 11, SaturatedFat: 3.3, ContainsOnionGarlic: true},
	{Name: "Fish Fry", Category: "Non-Veg", Keywords: "fish,fry,dinner", ServingSizeG: 120, Calories: 220, Protein: 19, Carbs: 6, Fat: 13, SaturatedFat: 2.5, Sodium: 450},
	{Name: "Masala Chai", Category: "Beverages", Keywords: "tea,chai,snack,breakfast", ServingSizeG: 240, Calories: 45, Protein: 1.5, Carbs: 7, Fat: 1.3, Sugar: 6, IsVegetarian: true},
	{Name: "Banana", Category: "Fruits", Keywords: "banana,fruit,snack", ServingSizeG: 120, Calories: 89, Protein: 1.1, Carbs: 23, Fat: 0.3, Fiber: 2.6, Sugar: 12, GlycemicIndex: 51, IsVegetarian: true, IsVegan: true},
	{Name: "Oats Porridge", Category: "Breakfast", Keywords: "oats,porridge,breakfast", ServingSizeG: 200, Calories: 71, Protein: 2.5, Carbs: 12, Fat: 1.5, Fiber: 1.7, GlycemicIndex: 55, IsVegetarian: true, ContainsGluten: true},
}

var templateSeed = []models.MealTemplate{
	{Name: "Poha with Peanuts", MealType: "Breakfast", DietPreference: "", ServingSizeG: 200, Calories: 135, Protein: 4, Carbs: 23, Fat: 3.5, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Idli Sambar Plate", MealType: "Breakfast", DietPreference: "vegetarian", ServingSizeG: 250, Calories: 120, Protein: 5, Carbs: 23, Fat: 1, IsVegetarian: true, IsVegan: true},
	{Name: "Keto Paneer Scramble", MealType: "Breakfast", DietPreference: "keto", ServingSizeG: 150, Calories: 220, Protein: 14, Carbs: 4, Fat: 17, IsVegetarian: true},
	{Name: "Dal Rice Thali", MealType: "Lunch", DietPreference: "", ServingSizeG: 350, Calories: 125, Protein: 5, Carbs: 22, Fat: 2, IsVegetarian: true, IsVegan: true, ContainsOnionGarlic: true},
	{Name: "Jain Sabzi Roti Thali", MealType: "Lunch", DietPreference: "jain-diet", ServingSizeG: 300, Calories: 140, Protein: 5, Carbs: 24, Fat: 3, IsVegetarian: true, IsVegan: true, ContainsGluten: true},
	{Name: "Grilled Chicken Bowl", MealType: "Lunch", DietPreference: "high-protein", ServingSizeG: 300, Calories: 160, Protein: 17, Carbs: 12, Fat: 5},
	{Name: "Fruit and Nut Bowl", MealType: "Snack", DietPreference: "", ServingSizeG: 120, Calories: 150, Protein: 4, Carbs: 20, Fat: 7, IsVegetarian: true, IsVegan: true},
	{Name: "Roasted Makhana Mix", MealType: "Snack", DietPreference: "hindu-fasting", ServingSizeG: 40, Calories: 330, Protein: 9, Carbs: 70, Fat: 2, IsVegetarian: true, IsVegan: true},
	{Name: "Vegetable Khichdi Bowl", MealType: "Dinner", DietPreference: "", ServingSizeG: 300, Calories: 110, Protein: 4.5, Carbs: 19, Fat: 2, IsVegetarian: true, IsVegan: true},
	{Name: "Keto Palak Paneer Plate", MealType: "Dinner", DietPreference: "keto", ServingSizeG: 250, Calories: 170, Protein: 9, Carbs: 5, Fat: 13, IsVegetarian: true, ContainsOnionGarlic: true},
}
