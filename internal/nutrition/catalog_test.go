package nutrition

import (
	"testing"

	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPersonalizeGoalsNoProfilePassesThrough(t *testing.T) {
	base := BuiltinGoals()
	got := PersonalizeGoals(nil, base)

	require.Len(t, got, len(base))
	for i, goal := range got {
		assert.Equal(t, base[i].Key, goal.Key)
		assert.Equal(t, base[i].Goal, goal.Goal)
	}
}

func TestPersonalizeGoalsModerateActivity(t *testing.T) {
	profile := &models.UserProfile{
		Name:          "Asha",
		Weight:        70,
		ActivityLevel: models.ActivityModerate,
		DietType:      models.DietVegetarian,
	}

	byKey := map[string]float64{}
	for _, goal := range PersonalizeGoals(profile, BuiltinGoals()) {
		byKey[goal.Key] = goal.Goal
	}

	assert.Equal(t, float64(2310), byKey["calories"]) // 70 * 33
	assert.Equal(t, float64(112), byKey["protein"])   // 70 * 1.6
	assert.Equal(t, float64(289), byKey["carbs"])     // 0.5 * 2310 / 4
	assert.Equal(t, float64(64), byKey["fats"])       // 0.25 * 2310 / 9
	// untouched by personalization
	assert.Equal(t, float64(18), byKey["iron"])
	assert.Equal(t, float64(30), byKey["fiber"])
}

func TestPersonalizeGoalsHighActivityProteinFactor(t *testing.T) {
	profile := &models.UserProfile{
		Name:          "Ravi",
		Weight:        80,
		ActivityLevel: models.ActivityHigh,
		DietType:      models.DietNonVeg,
	}

	for _, goal := range PersonalizeGoals(profile, BuiltinGoals()) {
		switch goal.Key {
		case "calories":
			assert.Equal(t, float64(3040), goal.Goal) // 80 * 38
		case "protein":
			assert.Equal(t, float64(160), goal.Goal) // 80 * 2.0
		}
	}
}

func TestDeriveGoalKey(t *testing.T) {
	tests := []struct {
		label string
		want  string
	}{
		{"Vitamin C", "vitamin-c"},
		{"Omega 3 Fatty Acids", "omega-3-fatty-acids"},
		{"  Magnesium  ", "magnesium"},
		{"Folate\tTotal", "folate-total"},
	}
	for _, tc := range tests {
		assert.Equal(t, tc.want, DeriveGoalKey(tc.label))
	}
}

func TestNewCustomGoalDefaults(t *testing.T) {
	goal := NewCustomGoal(models.AddGoalRequest{Label: "Vitamin C", Goal: 90})

	assert.Equal(t, "vitamin-c", goal.Key)
	assert.Equal(t, "g", goal.Unit)
	assert.Equal(t, "Custom tracked nutrient.", goal.Description)
	assert.True(t, goal.IsCustom)
}

func TestWaterGoal(t *testing.T) {
	assert.Equal(t, float64(2500), WaterGoal(nil))

	profile := &models.UserProfile{Weight: 70}
	assert.Equal(t, float64(2450), WaterGoal(profile)) // 70 * 35
}

func TestMergeGoalsKeepsOrder(t *testing.T) {
	customs := []models.NutrientGoal{{Label: "Vitamin C", Key: "vitamin-c", Goal: 90, IsCustom: true}}
	merged := MergeGoals(BuiltinGoals(), customs)

	require.Len(t, merged, len(builtinGoals)+1)
	assert.Equal(t, "calories", merged[0].Key)
	assert.Equal(t, "vitamin-c", merged[len(merged)-1].Key)
}
