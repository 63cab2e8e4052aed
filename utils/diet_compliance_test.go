package utils

import (
	"testing"

	"caloriex-backend/models"
)

func TestIsDietCompliantAvoidLists(t *testing.T) {
	cases := []struct {
		food string
		pref string
		want bool
	}{
		{"Chicken Curry", "vegetarian", false},
		{"Paneer Tikka", "vegetarian", true},
		{"Paneer Tikka", "vegan", false},
		{"Tofu Stir Fry", "vegan", true},
		{"Egg Bhurji", "eggetarian", true},
		{"Mutton Keema", "eggetarian", false},
		{"Onion Pakora", "jain-diet", false},
		{"Dal Tadka", "jain-diet", true},
		{"Whole Wheat Roti", "gluten-free", false},
		{"Steamed Rice", "gluten-free", true},
		{"Steamed Rice", "keto", false},
		{"Grilled Paneer", "keto", true},
		{"Anything At All", "non-vegetarian", true},
	}
	for _, tc := range cases {
		if got := IsDietCompliant(tc.food, tc.pref); got != tc.want {
			t.Errorf("IsDietCompliant(%q, %q) = %v, want %v", tc.food, tc.pref, got, tc.want)
		}
	}
}

func TestIsDietCompliantAllowLists(t *testing.T) {
	// hindu-fasting uses an allow-list: only fasting staples pass
	if IsDietCompliant("Chicken Biryani", "hindu-fasting") {
		t.Error("biryani should not pass the fasting allow-list")
	}
	if !IsDietCompliant("Sabudana Khichdi", "hindu-fasting") {
		t.Error("sabudana should pass the fasting allow-list")
	}
	if !IsDietCompliant("Fruit Salad", "hindu-fasting") {
		t.Error("fruit should pass the fasting allow-list")
	}
}

func TestIsDietCompliantUnknownPreferenceFailsOpen(t *testing.T) {
	if !IsDietCompliant("Deep Fried Butter", "carnivore-hybrid-2000") {
		t.Error("unknown preference must be compliant (fail-open)")
	}
}

func TestBloodTypeDietDefaultsToO(t *testing.T) {
	// wheat is on the O avoid list, which is the default sub-value
	if IsDietCompliantFor("Wheat Porridge", "blood-type", "") {
		t.Error("wheat should fail blood-type with default group O")
	}
	if !IsDietCompliantFor("Wheat Porridge", "blood-type", "A") {
		t.Error("wheat is fine for group A")
	}
	if IsDietCompliantFor("Chicken Salad", "blood-type", "A") {
		t.Error("meat should fail blood-type A")
	}
}

func TestRegionalDietSubLists(t *testing.T) {
	if !IsDietCompliantFor("Masala Dosa", "indian-regional", "south") {
		t.Error("dosa should pass the south regional list")
	}
	if IsDietCompliantFor("Masala Dosa", "indian-regional", "") {
		t.Error("dosa is not on the default (north) regional list")
	}
	if !IsDietCompliantFor("Rajma Chawal", "indian-regional", "north") {
		t.Error("rajma should pass the north regional list")
	}
}

func TestDietCompliantStructuredPathWins(t *testing.T) {
	// name sounds non-veg, but the structured tags say vegetarian — the
	// tagged record is judged on its flags, not the keyword heuristics
	rec := models.FoodRecord{
		Name: "Veg Mock Chicken Nuggets",
		Diet: models.FoodDietProperties{Tagged: true, IsVegetarian: true},
	}
	if !DietCompliant(rec, "vegetarian", "") {
		t.Error("tagged vegetarian record should pass regardless of name")
	}

	// untagged record with the same name falls back to keywords and fails
	rec.Diet = models.FoodDietProperties{}
	if DietCompliant(rec, "vegetarian", "") {
		t.Error("untagged record should fall back to keyword matching")
	}
}

func TestDietCompliantHinduFastingKeepsAllowList(t *testing.T) {
	// being vegetarian is not enough for fasting days — the allow-list
	// decides, even on tagged records
	paneer := models.FoodRecord{
		Name: "Paneer Butter Masala",
		Diet: models.FoodDietProperties{Tagged: true, IsVegetarian: true},
	}
	if DietCompliant(paneer, "hindu-fasting", "") {
		t.Error("tagged vegetarian food outside the fasting allow-list must fail")
	}

	sabudana := models.FoodRecord{
		Name: "Sabudana Khichdi",
		Diet: models.FoodDietProperties{Tagged: true, IsVegetarian: true},
	}
	if !DietCompliant(sabudana, "hindu-fasting", "") {
		t.Error("allow-listed fasting food should pass")
	}
}

func TestDietCompliantJainFlags(t *testing.T) {
	rec := models.FoodRecord{
		Name: "Mixed Veg Sabzi",
		Diet: models.FoodDietProperties{
			Tagged:                 true,
			IsVegetarian:           true,
			ContainsRootVegetables: true,
		},
	}
	if DietCompliant(rec, "jain-diet", "") {
		t.Error("root vegetables must fail the jain structured check")
	}
	rec.Diet.ContainsRootVegetables = false
	if !DietCompliant(rec, "jain-diet", "") {
		t.Error("clean vegetarian record should pass the jain structured check")
	}
}
