package nutrition

import (
	"strings"

	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/google/uuid"
)

// customFoodPrefix marks user-created foods; seed ids never carry it, so
// the two id spaces are disjoint by construction.
const customFoodPrefix = "custom-"

func IsCustomFoodID(id string) bool {
	return strings.HasPrefix(id, customFoodPrefix)
}

func NewCustomFoodID() string {
	return customFoodPrefix + uuid.NewString()
}

// MergeFoods returns the working food database: seed items followed by
// custom items.
func MergeFoods(seed, custom []models.FoodItem) []models.FoodItem {
	merged := make([]models.FoodItem, 0, len(seed)+len(custom))
	merged = append(merged, seed...)
	merged = append(merged, custom...)
	return merged
}

// LookupFood finds a food by id in the merged database.
func LookupFood(foods []models.FoodItem, id string) (models.FoodItem, bool) {
	for _, f := range foods {
		if f.ID == id {
			return f, true
		}
	}
	return models.FoodItem{}, false
}
