package nutrition

import "github.com/arnold/nutritrack-api/internal/models"

// ToggleFood flips membership of id in the ledger: present ids are removed
// (all occurrences — membership, not a counter), absent ids are appended.
func ToggleFood(ids []string, id string) []string {
	if containsID(ids, id) {
		out := make([]string, 0, len(ids))
		for _, existing := range ids {
			if existing != id {
				out = append(out, existing)
			}
		}
		return out
	}
	return append(append([]string(nil), ids...), id)
}

func containsID(ids []string, id string) bool {
	for _, existing := range ids {
		if existing == id {
			return true
		}
	}
	return false
}

// SumTotals folds every ledger entry's nutrients into one map. Ids with no
// matching food are skipped — they are custom foods deleted while still
// referenced.
func SumTotals(ids []string, foods []models.FoodItem) models.NutrientData {
	index := make(map[string]models.FoodItem, len(foods))
	for _, f := range foods {
		index[f.ID] = f
	}

	totals := models.NutrientData{}
	for _, id := range ids {
		food, ok := index[id]
		if !ok {
			continue
		}
		for key, amount := range food.Nutrients {
			totals[key] += amount
		}
	}
	return totals
}

// TotalsEqual reports structural equality of two totals maps, treating nil
// and empty as equal. It is the idempotence guard that keeps recomputation
// from re-writing identical history records.
func TotalsEqual(a, b models.NutrientData) bool {
	if len(a) != len(b) {
		return false
	}
	for key, value := range a {
		if other, ok := b[key]; !ok || other != value {
			return false
		}
	}
	return true
}
