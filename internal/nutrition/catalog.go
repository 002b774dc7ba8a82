package nutrition

import (
	"math"
	"strings"

	"github.com/arnold/nutritrack-api/internal/models"
)

// activityCalorieFactors maps activity level to daily kcal per kg of body
// weight. This is the single source of truth for valid activity levels —
// also used for profile validation.
var activityCalorieFactors = map[models.ActivityLevel]float64{
	models.ActivityLow:      28,
	models.ActivityModerate: 33,
	models.ActivityHigh:     38,
}

func ValidActivityLevel(level models.ActivityLevel) bool {
	_, ok := activityCalorieFactors[level]
	return ok
}

func ValidDietType(diet models.DietType) bool {
	switch diet {
	case models.DietVegan, models.DietVegetarian, models.DietEggitarian, models.DietNonVeg:
		return true
	}
	return false
}

func ValidFoodCategory(cat models.FoodCategory) bool {
	switch cat {
	case models.CategoryVegan, models.CategoryVegetarian, models.CategoryEgg, models.CategoryNonVeg:
		return true
	}
	return false
}

// MergeGoals appends custom goals after the builtins. Key collisions are
// rejected at creation time, so the merged catalog has unique keys.
func MergeGoals(builtins, customs []models.NutrientGoal) []models.NutrientGoal {
	merged := make([]models.NutrientGoal, 0, len(builtins)+len(customs))
	merged = append(merged, builtins...)
	merged = append(merged, customs...)
	return merged
}

// PersonalizeGoals adjusts the macro targets for the given profile. With no
// profile the goals pass through unchanged. Calories scale with weight and
// activity level; protein with weight; carbs and fats are derived from the
// calorie target at 4 and 9 kcal/g.
func PersonalizeGoals(profile *models.UserProfile, goals []models.NutrientGoal) []models.NutrientGoal {
	if profile == nil {
		return goals
	}

	dailyCals := profile.Weight * activityCalorieFactors[profile.ActivityLevel]
	proteinFactor := 1.6
	if profile.ActivityLevel == models.ActivityHigh {
		proteinFactor = 2.0
	}

	out := make([]models.NutrientGoal, len(goals))
	for i, goal := range goals {
		switch goal.Key {
		case "calories":
			goal.Goal = math.Round(dailyCals)
		case "protein":
			goal.Goal = math.Round(profile.Weight * proteinFactor)
		case "carbs":
			goal.Goal = math.Round(dailyCals * 0.5 / 4)
		case "fats":
			goal.Goal = math.Round(dailyCals * 0.25 / 9)
		}
		out[i] = goal
	}
	return out
}

// WaterGoal is the daily water target in ml: 35 ml per kg of body weight,
// or a flat 2500 without a profile.
func WaterGoal(profile *models.UserProfile) float64 {
	if profile == nil {
		return 2500
	}
	return math.Round(profile.Weight * 35)
}

// DeriveGoalKey normalizes a goal label into its catalog key: lowercased,
// whitespace runs collapsed to single hyphens.
func DeriveGoalKey(label string) string {
	return strings.Join(strings.Fields(strings.ToLower(label)), "-")
}

// NewCustomGoal builds a custom goal from the request, filling the defaults
// the form leaves blank. The caller checks the derived key for collisions.
func NewCustomGoal(req models.AddGoalRequest) models.NutrientGoal {
	goal := models.NutrientGoal{
		Label:       strings.TrimSpace(req.Label),
		Key:         DeriveGoalKey(req.Label),
		Unit:        req.Unit,
		Goal:        req.Goal,
		Color:       req.Color,
		Icon:        req.Icon,
		Description: req.Description,
		IsCustom:    true,
	}
	if goal.Unit == "" {
		goal.Unit = "g"
	}
	if goal.Color == "" {
		goal.Color = "bg-emerald-500"
	}
	if goal.Icon == "" {
		goal.Icon = "fa-vial"
	}
	if goal.Description == "" {
		goal.Description = "Custom tracked nutrient."
	}
	return goal
}
