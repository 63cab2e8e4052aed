package utils

import (
	"strings"

	"caloriex-backend/models"
)

// Keyword sets per diet preference. A food is non-compliant when its
// lowercased name contains any avoid keyword, or an allow-list exists for the
// preference and the name matches none of its keywords. Unknown preferences
// are always compliant (fail-open) — the filters are advisory, never gating.

var meatKeywords = []string{
	"chicken", "mutton", "lamb", "beef", "pork", "fish", "prawn", "shrimp",
	"crab", "keema", "bacon", "ham", "sausage", "salami", "meat", "tuna",
	"salmon", "anchovy", "gelatin",
}

var dairyKeywords = []string{
	"milk", "paneer", "cheese", "curd", "yogurt", "yoghurt", "ghee", "butter",
	"cream", "khoya", "lassi", "buttermilk", "dahi", "whey",
}

var dietAvoidKeywords = map[string][]string{
	"vegetarian":        append([]string{"egg", "omelette"}, meatKeywords...),
	"indian-vegetarian": append([]string{"egg", "omelette"}, meatKeywords...),
	"eggetarian":        meatKeywords,
	"vegan": append(append([]string{"egg", "omelette", "honey"}, meatKeywords...),
		dairyKeywords...),
	"jain-diet": append([]string{
		"egg", "onion", "garlic", "potato", "carrot", "beetroot", "radish",
		"ginger", "turnip", "mushroom", "yam", "honey",
	}, meatKeywords...),
	"sattvic-diet": append([]string{
		"egg", "onion", "garlic", "mushroom", "tea", "coffee", "vinegar",
		"fried", "pickle",
	}, meatKeywords...),
	"gluten-free": {
		"wheat", "roti", "chapati", "paratha", "naan", "bread", "pasta",
		"noodle", "seitan", "barley", "rye", "semolina", "suji", "maida",
		"vermicelli", "dalia",
	},
	"keto": {
		"rice", "roti", "chapati", "bread", "sugar", "potato", "pasta",
		"noodle", "banana", "mango", "jaggery", "honey", "biryani", "idli",
		"dosa", "poha",
	},
	"low-carb": {
		"rice", "sugar", "bread", "potato", "noodle", "jaggery", "sweet",
	},
	"dairy-free": dairyKeywords,
	"nut-free": {
		"peanut", "almond", "cashew", "walnut", "pistachio", "hazelnut",
		"nut", "praline",
	},
	"paleo": {
		"rice", "wheat", "bread", "roti", "dal", "lentil", "bean", "chickpea",
		"rajma", "soy", "milk", "paneer", "cheese", "sugar", "peanut",
	},
	"mediterranean": {
		"ghee", "fried", "processed", "sausage", "bacon", "sugar",
	},
	// no food-level restriction; the generator handles slot suppression
	"intermittent-fasting": {},
	"non-vegetarian":       {},
}

var dietAllowKeywords = map[string][]string{
	"hindu-fasting": {
		"fruit", "banana", "apple", "milk", "curd", "sabudana", "makhana",
		"potato", "kuttu", "rajgira", "singhara", "peanut", "dry fruit",
		"almond", "dates", "coconut",
	},
	"high-protein": {
		"chicken", "egg", "fish", "paneer", "dal", "lentil", "soy", "tofu",
		"sprout", "chickpea", "rajma", "milk", "curd", "quinoa", "nut",
	},
}

// Blood-type diet sub-lists (avoid), keyed by blood group. Defaults to "O"
// when the profile does not say.
var bloodTypeAvoid = map[string][]string{
	"O":  {"wheat", "corn", "lentil", "cabbage", "cauliflower", "coffee"},
	"A":  append([]string{}, meatKeywords...),
	"B":  {"chicken", "corn", "peanut", "tomato", "wheat", "sesame"},
	"AB": {"chicken", "corn", "banana", "coffee", "smoked", "pickled"},
}

// Indian regional diet allow-lists of regional staples, keyed by region.
// Defaults to "north".
var regionalAllow = map[string][]string{
	"north":   {"roti", "paratha", "dal", "paneer", "rajma", "chole", "lassi", "sarson", "makki"},
	"south":   {"rice", "idli", "dosa", "sambar", "rasam", "upma", "uttapam", "coconut", "curd"},
	"east":    {"rice", "fish", "dal", "posto", "litti", "sattu", "mustard", "machher"},
	"west":    {"bhakri", "thepla", "dhokla", "poha", "sabudana", "bajra", "jowar", "srikhand"},
	"central": {"poha", "dal", "bafla", "roti", "jowar", "bhutte"},
}

// IsDietCompliant is the keyword path for preferences without an extra
// dimension. Blood-type and indian-regional fall back to their default
// sub-value here.
func IsDietCompliant(foodName, dietPreference string) bool {
	return IsDietCompliantFor(foodName, dietPreference, "")
}

// IsDietCompliantFor checks a food name against a preference, with sub
// selecting the blood group or region where the preference needs one.
func IsDietCompliantFor(foodName, dietPreference, sub string) bool {
	name := strings.ToLower(foodName)

	switch dietPreference {
	case "blood-type":
		group := strings.ToUpper(strings.TrimSpace(sub))
		avoid, ok := bloodTypeAvoid[group]
		if !ok {
			avoid = bloodTypeAvoid["O"]
		}
		return !containsAny(name, avoid)
	case "indian-regional":
		region := strings.ToLower(strings.TrimSpace(sub))
		allow, ok := regionalAllow[region]
		if !ok {
			allow = regionalAllow["north"]
		}
		if containsAny(name, dietAvoidKeywords["vegetarian"]) {
			return false
		}
		return containsAny(name, allow)
	}

	avoid, known := dietAvoidKeywords[dietPreference]
	allow, hasAllow := dietAllowKeywords[dietPreference]
	if !known && !hasAllow {
		return true // unrecognized preference: fail open
	}
	if containsAny(name, avoid) {
		return false
	}
	if hasAllow && !containsAny(name, allow) {
		return false
	}
	return true
}

// DietCompliant is the primary, structured-properties path. Tagged records
// are judged on their flags; untagged legacy records fall through to the
// keyword heuristics.
func DietCompliant(rec models.FoodRecord, dietPreference, sub string) bool {
	if !rec.Diet.Tagged {
		return IsDietCompliantFor(rec.Name, dietPreference, sub)
	}

	switch dietPreference {
	case "vegetarian", "indian-vegetarian", "eggetarian":
		return rec.Diet.IsVegetarian
	case "vegan":
		return rec.Diet.IsVegan
	case "jain-diet":
		return rec.Diet.IsVegetarian &&
			!rec.Diet.ContainsOnionGarlic &&
			!rec.Diet.ContainsRootVegetables
	case "sattvic-diet":
		return rec.Diet.IsVegetarian && !rec.Diet.ContainsOnionGarlic
	case "gluten-free":
		return !rec.Diet.ContainsGluten
	}
	// flags don't answer keto/paleo/blood-type or allow-list preferences
	// like hindu-fasting; those stay on the keyword rules.
	return IsDietCompliantFor(rec.Name, dietPreference, sub)
}

func containsAny(name string, keywords []string) bool {
	for _, kw := range keywords {
		if strings.Contains(name, kw) {
			return true
		}
	}
	return false
}
