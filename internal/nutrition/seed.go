package nutrition

import "github.com/arnold/nutritrack-api/internal/models"

// builtinGoals is the fixed goal catalog. Targets are the un-personalized
// defaults; PersonalizeGoals adjusts calories/protein/carbs/fats when a
// profile exists.
var builtinGoals = []models.NutrientGoal{
	{Label: "Calories", Key: "calories", Unit: "kcal", Goal: 2000, Color: "bg-slate-800", Icon: "fa-fire", Description: "Total daily energy intake."},
	{Label: "Protein", Key: "protein", Unit: "g", Goal: 60, Color: "bg-emerald-500", Icon: "fa-dumbbell", Description: "Essential for muscle repair and enzyme production."},
	{Label: "Fiber", Key: "fiber", Unit: "g", Goal: 30, Color: "bg-teal-600", Icon: "fa-leaf", Description: "Crucial for digestive health and blood sugar control."},
	{Label: "Iron", Key: "iron", Unit: "mg", Goal: 18, Color: "bg-rose-700", Icon: "fa-magnet", Description: "Transports oxygen in your blood. Vital for energy."},
	{Label: "Calcium", Key: "calcium", Unit: "mg", Goal: 1000, Color: "bg-sky-500", Icon: "fa-bone", Description: "Maintains bone density and nerve signaling."},
	{Label: "Vitamin B12", Key: "vitaminB12", Unit: "mcg", Goal: 2.4, Color: "bg-indigo-600", Icon: "fa-brain", Description: "Vital for nerve tissue health and brain function."},
	{Label: "Vitamin D", Key: "vitaminD", Unit: "IU", Goal: 600, Color: "bg-amber-500", Icon: "fa-sun", Description: "Supports immune system and bone health."},
	{Label: "Zinc", Key: "zinc", Unit: "mg", Goal: 11, Color: "bg-indigo-400", Icon: "fa-shield-halved", Description: "Supports immune function and DNA synthesis."},
	{Label: "Carbs", Key: "carbs", Unit: "g", Goal: 250, Color: "bg-orange-400", Icon: "fa-wheat-awn", Description: "Primary energy source for the body."},
	{Label: "Fats", Key: "fats", Unit: "g", Goal: 70, Color: "bg-yellow-500", Icon: "fa-droplet", Description: "Used for hormone production and nutrient absorption."},
}

// seedFoods is the static food database. Seed entries are immutable and
// keep their short ids; custom foods live alongside them under the
// "custom-" prefix.
var seedFoods = []models.FoodItem{
	// protein focus
	{ID: "p1", Name: "Tofu (Extra Firm, 100g)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 83, "protein": 10, "carbs": 2, "fats": 5, "fiber": 1, "iron": 2, "calcium": 350, "vitaminB12": 0, "vitaminD": 100, "zinc": 1.6}},
	{ID: "p2", Name: "Grilled Paneer (100g)", Diet: models.CategoryVegetarian, Nutrients: models.NutrientData{"calories": 265, "protein": 18, "carbs": 1, "fats": 20, "fiber": 0, "iron": 0.2, "calcium": 208, "vitaminB12": 0.1, "vitaminD": 0, "zinc": 2.5}},
	{ID: "p3", Name: "Boiled Eggs (2 large)", Diet: models.CategoryEgg, Nutrients: models.NutrientData{"calories": 156, "protein": 13, "carbs": 1.2, "fats": 11, "fiber": 0, "iron": 1.2, "calcium": 50, "vitaminB12": 1.2, "vitaminD": 88, "zinc": 1.1}},
	{ID: "p4", Name: "Chicken Breast (100g)", Diet: models.CategoryNonVeg, Nutrients: models.NutrientData{"calories": 165, "protein": 31, "carbs": 0, "fats": 3.6, "fiber": 0, "iron": 1, "calcium": 15, "vitaminB12": 0.3, "vitaminD": 0, "zinc": 1.0}},
	{ID: "p5", Name: "Chickpeas (1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 269, "protein": 15, "carbs": 45, "fats": 4, "fiber": 12, "iron": 4.7, "calcium": 80, "vitaminB12": 0, "vitaminD": 0, "zinc": 2.5}},

	// iron focus
	{ID: "i1", Name: "Cooked Spinach (1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 41, "protein": 5, "carbs": 7, "fats": 0.5, "fiber": 4.3, "iron": 6.4, "calcium": 245, "vitaminB12": 0, "vitaminD": 0, "zinc": 0.8}},
	{ID: "i2", Name: "Lentils (Cooked, 1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 230, "protein": 18, "carbs": 40, "fats": 0.8, "fiber": 16, "iron": 6.6, "calcium": 38, "vitaminB12": 0, "vitaminD": 0, "zinc": 2.4}},
	{ID: "i3", Name: "Dates (5 pcs)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 133, "protein": 1, "carbs": 36, "fats": 0.2, "fiber": 3.3, "iron": 1.5, "calcium": 32, "vitaminB12": 0, "vitaminD": 0, "zinc": 0.3}},
	{ID: "i4", Name: "Lean Beef (100g)", Diet: models.CategoryNonVeg, Nutrients: models.NutrientData{"calories": 250, "protein": 26, "carbs": 0, "fats": 15, "fiber": 0, "iron": 2.7, "calcium": 18, "vitaminB12": 2.6, "vitaminD": 7, "zinc": 4.8}},

	// fiber focus
	{ID: "f1", Name: "Oats (Cooked, 1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 150, "protein": 6, "carbs": 27, "fats": 3, "fiber": 4, "iron": 1.7, "calcium": 20, "vitaminB12": 0, "vitaminD": 0, "zinc": 1.0}},
	{ID: "f2", Name: "Brown Rice (1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 218, "protein": 4.5, "carbs": 46, "fats": 1.6, "fiber": 3.5, "iron": 0.8, "calcium": 20, "vitaminB12": 0, "vitaminD": 0, "zinc": 1.2}},
	{ID: "f3", Name: "Steamed Broccoli (1 Cup)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 55, "protein": 3.7, "carbs": 11, "fats": 0.6, "fiber": 5.1, "iron": 1, "calcium": 62, "vitaminB12": 0, "vitaminD": 0, "zinc": 0.4}},
	{ID: "f4", Name: "Large Apple (with skin)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 116, "protein": 0.6, "carbs": 31, "fats": 0.4, "fiber": 5.4, "iron": 0.3, "calcium": 13, "vitaminB12": 0, "vitaminD": 0, "zinc": 0.1}},

	// calcium focus
	{ID: "c1", Name: "Whole Milk (1 Cup)", Diet: models.CategoryVegetarian, Nutrients: models.NutrientData{"calories": 149, "protein": 8, "carbs": 12, "fats": 8, "fiber": 0, "iron": 0.1, "calcium": 300, "vitaminB12": 1.1, "vitaminD": 120, "zinc": 1.0}},
	{ID: "c2", Name: "Sesame Seeds (2 tbsp)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 104, "protein": 3.2, "carbs": 4.2, "fats": 9, "fiber": 2.1, "iron": 2.6, "calcium": 176, "vitaminB12": 0, "vitaminD": 0, "zinc": 1.4}},
	{ID: "c3", Name: "Almonds (28g)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 164, "protein": 6, "carbs": 6, "fats": 14, "fiber": 3.5, "iron": 1.1, "calcium": 76, "vitaminB12": 0, "vitaminD": 0, "zinc": 0.9}},

	// vitamin B12 / D focus
	{ID: "b1", Name: "Salmon Fillet (100g)", Diet: models.CategoryNonVeg, Nutrients: models.NutrientData{"calories": 208, "protein": 22, "carbs": 0, "fats": 13, "fiber": 0, "iron": 0.3, "calcium": 9, "vitaminB12": 2.8, "vitaminD": 526, "zinc": 0.4}},
	{ID: "b2", Name: "Nutritional Yeast (2 tbsp)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 45, "protein": 8, "carbs": 3, "fats": 0.5, "fiber": 4, "iron": 0.5, "calcium": 10, "vitaminB12": 15, "vitaminD": 0, "zinc": 2.0}},
	{ID: "b3", Name: "UV Mushrooms (100g)", Diet: models.CategoryVegan, Nutrients: models.NutrientData{"calories": 22, "protein": 3, "carbs": 3, "fats": 0.3, "fiber": 1, "iron": 0.5, "calcium": 5, "vitaminB12": 0, "vitaminD": 400, "zinc": 0.5}},
	{ID: "b4", Name: "Sardines (100g)", Diet: models.CategoryNonVeg, Nutrients: models.NutrientData{"calories": 208, "protein": 25, "carbs": 0, "fats": 11, "fiber": 0, "iron": 2.9, "calcium": 382, "vitaminB12": 8.9, "vitaminD": 270, "zinc": 1.3}},
}

// BuiltinGoals returns a fresh copy of the builtin goal catalog.
func BuiltinGoals() []models.NutrientGoal {
	return append([]models.NutrientGoal(nil), builtinGoals...)
}

// SeedFoods returns the static food database. Callers must treat the
// nutrient maps as read-only.
func SeedFoods() []models.FoodItem {
	return append([]models.FoodItem(nil), seedFoods...)
}
