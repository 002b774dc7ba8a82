package models

// NutrientData maps a nutrient key to an accumulated amount in that
// nutrient's unit.
type NutrientData map[string]float64

// DietType is the user's dietary preference.
type DietType string

const (
	DietVegan      DietType = "vegan"
	DietVegetarian DietType = "vegetarian"
	DietEggitarian DietType = "eggitarian"
	DietNonVeg     DietType = "non-veg"
)

// FoodCategory classifies a single food item.
type FoodCategory string

const (
	CategoryVegan      FoodCategory = "vegan"
	CategoryVegetarian FoodCategory = "vegetarian"
	CategoryEgg        FoodCategory = "egg"
	CategoryNonVeg     FoodCategory = "non-veg"
)

type ActivityLevel string

const (
	ActivityLow      ActivityLevel = "low"
	ActivityModerate ActivityLevel = "moderate"
	ActivityHigh     ActivityLevel = "high"
)

// NutrientGoal is a tracked nutrient with a daily target and display
// metadata. Custom goals are user-created and deletable; builtins are not.
type NutrientGoal struct {
	Label       string  `json:"label"`
	Key         string  `json:"key"`
	Unit        string  `json:"unit"`
	Goal        float64 `json:"goal"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
	IsCustom    bool    `json:"isCustom,omitempty"`
}

// FoodItem is one entry in the food database. Seed items have fixed ids;
// user-created items carry the "custom-" id prefix and may be edited or
// deleted.
type FoodItem struct {
	ID        string       `json:"id"`
	Name      string       `json:"name"`
	Diet      FoodCategory `json:"dietType"`
	Nutrients NutrientData `json:"nutrients"`
}

type UserProfile struct {
	Name          string        `json:"name"`
	Age           int           `json:"age"`
	Weight        float64       `json:"weight"` // kg
	ActivityLevel ActivityLevel `json:"activityLevel"`
	DietType      DietType      `json:"dietType"`
}

// DailyRecord is one persisted day of intake.
type DailyRecord struct {
	Date   string       `json:"date"` // YYYY-MM-DD
	Totals NutrientData `json:"totals"`
	Water  float64      `json:"water"` // ml
}

// HistoryMap keys daily records by their YYYY-MM-DD date.
type HistoryMap map[string]DailyRecord

// Nutrition DTOs
type AddGoalRequest struct {
	Label       string  `json:"label"`
	Unit        string  `json:"unit"`
	Goal        float64 `json:"goal"`
	Color       string  `json:"color"`
	Icon        string  `json:"icon"`
	Description string  `json:"description"`
}

type FoodRequest struct {
	Name      string       `json:"name"`
	Diet      FoodCategory `json:"dietType"`
	Nutrients NutrientData `json:"nutrients"`
}

type WaterRequest struct {
	Delta float64 `json:"delta"` // ml, may be negative
}
