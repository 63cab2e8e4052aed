package models

import (
	"gorm.io/gorm"
)

// Source tags carried as provenance on every record and plan item.
const (
	SourceRegional      = "regional"
	SourceInternational = "international"
	SourceCustom        = "custom"
	SourceTemplate      = "template"
)

// FoodItem is one row of the regional packaged/cooked-food composition table.
// Nutrient values are per 100 g unless ServingSizeG says otherwise.
type FoodItem struct {
	gorm.Model
	Name        string `gorm:"not null;index"`
	Category    string
	Description string
	Keywords    string // comma-separated search tags

	ServingSizeG  float64 // standard serving in grams, 0 when unknown
	Calories      float64
	Protein       float64
	Carbs         float64
	Fat           float64
	Fiber         float64
	Sugar         float64
	Sodium        float64 // mg
	SaturatedFat  float64
	GlycemicIndex float64

	IsVegetarian           bool
	IsVegan                bool
	ContainsGluten         bool
	ContainsOnionGarlic    bool
	ContainsRootVegetables bool
}

// CustomFood is an operator- or user-curated catalog entry.
type CustomFood struct {
	gorm.Model
	CreatedBy   uint `gorm:"index"` // 0 = operator-curated, visible to everyone
	Name        string
	Category    string
	Description string

	ServingSizeG float64
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64
	Fiber        float64
	Sugar        float64
	Sodium       float64

	IsVegetarian        bool
	IsVegan             bool
	ContainsGluten      bool
	ContainsOnionGarlic bool
}

// MealTemplate is a curated ready-made slot suggestion ("poha breakfast",
// "dal-rice lunch") with its combined nutrition.
type MealTemplate struct {
	gorm.Model
	Name           string
	MealType       string // Breakfast | Lunch | Snack | Dinner
	DietPreference string // empty = any
	Description    string

	ServingSizeG float64
	Calories     float64
	Protein      float64
	Carbs        float64
	Fat          float64

	IsVegetarian        bool
	IsVegan             bool
	ContainsGluten      bool
	ContainsOnionGarlic bool
}

// FoodDietProperties is the structured dietary tag bag checked by the
// compliance filters before any keyword heuristics. Tagged=false means the
// record is legacy/untagged and only name matching applies.
type FoodDietProperties struct {
	Tagged                 bool `json:"tagged"`
	IsVegetarian           bool `json:"is_vegetarian"`
	IsVegan                bool `json:"is_vegan"`
	ContainsGluten         bool `json:"contains_gluten"`
	ContainsOnionGarlic    bool `json:"contains_onion_garlic"`
	ContainsRootVegetables bool `json:"contains_root_vegetables"`
}

// FoodMedicalProperties holds the nutrient facts the per-condition threshold
// table inspects. Zero values mean "not reported".
type FoodMedicalProperties struct {
	GlycemicIndex    float64 `json:"glycemic_index"`
	Sodium           float64 `json:"sodium"` // mg per 100 g
	SaturatedFat     float64 `json:"saturated_fat"`
	Fiber            float64 `json:"fiber"`
	Sugar            float64 `json:"sugar"`
	Purine           float64 `json:"purine"`
	Oxalate          float64 `json:"oxalate"`
	IsGoitrogenic    bool    `json:"is_goitrogenic"`
	IsFODMAP         bool    `json:"is_fodmap"`
	ContainsTyramine bool    `json:"contains_tyramine"`
}

// FoodRecord is the source-neutral shape every adapter returns. Macros are
// per 100 g. A record with all-zero macros is treated as missing data and gets
// heuristic fallbacks before it is ever used in a plan or log.
type FoodRecord struct {
	ID          string `json:"id"`
	Source      string `json:"source"`
	Name        string `json:"name"`
	Category    string `json:"category"`
	Description string `json:"description"`

	ServingSizeG float64 `json:"serving_size_g"`
	Calories     float64 `json:"calories"`
	Protein      float64 `json:"protein"`
	Carbs        float64 `json:"carbs"`
	Fat          float64 `json:"fat"`

	Diet    FoodDietProperties    `json:"diet"`
	Medical FoodMedicalProperties `json:"medical"`
}

// Nutrition is a computed macro snapshot for one portion or one logged unit.
type Nutrition struct {
	Calories float64 `json:"calories"`
	Protein  float64 `json:"protein"`
	Carbs    float64 `json:"carbs"`
	Fat      float64 `json:"fat"`
}

func (n Nutrition) Add(o Nutrition) Nutrition {
	return Nutrition{
		Calories: n.Calories + o.Calories,
		Protein:  n.Protein + o.Protein,
		Carbs:    n.Carbs + o.Carbs,
		Fat:      n.Fat + o.Fat,
	}
}

func (n Nutrition) Scale(f float64) Nutrition {
	return Nutrition{
		Calories: n.Calories * f,
		Protein:  n.Protein * f,
		Carbs:    n.Carbs * f,
		Fat:      n.Fat * f,
	}
}
