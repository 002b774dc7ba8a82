package nutrition

import (
	"sort"

	"github.com/arnold/nutritrack-api/internal/models"
)

// macro nutrients use a higher recommendation threshold than micros.
var macroKeys = map[string]bool{"protein": true, "carbs": true, "fats": true}

// dietAdmits reports whether a food category is acceptable under the given
// diet preference. Vegan admits only vegan; vegetarian adds dairy;
// eggitarian excludes only meat; non-veg admits everything.
func dietAdmits(diet models.DietType, category models.FoodCategory) bool {
	switch diet {
	case models.DietVegan:
		return category == models.CategoryVegan
	case models.DietVegetarian:
		return category == models.CategoryVegan || category == models.CategoryVegetarian
	case models.DietEggitarian:
		return category != models.CategoryNonVeg
	default:
		return true
	}
}

// Recommend ranks foods for a deficient nutrient: foods below a minimum
// contribution (5% of the goal target for macros, 3% for everything else,
// no floor when the nutrient has no goal) or outside the diet preference
// are dropped; the rest sort by descending contribution. The sort is stable
// so ties keep catalog order.
func Recommend(nutrientKey string, diet models.DietType, goals []models.NutrientGoal, foods []models.FoodItem) []models.FoodItem {
	if diet == "" {
		diet = models.DietVegetarian
	}

	threshold := 0.0
	for _, goal := range goals {
		if goal.Key == nutrientKey {
			if macroKeys[nutrientKey] {
				threshold = goal.Goal * 0.05
			} else {
				threshold = goal.Goal * 0.03
			}
			break
		}
	}

	matched := make([]models.FoodItem, 0, len(foods))
	for _, food := range foods {
		if food.Nutrients[nutrientKey] < threshold {
			continue
		}
		if !dietAdmits(diet, food.Diet) {
			continue
		}
		matched = append(matched, food)
	}

	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].Nutrients[nutrientKey] > matched[j].Nutrients[nutrientKey]
	})
	return matched
}
