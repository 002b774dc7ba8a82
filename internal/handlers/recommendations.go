package handlers

import "github.com/gofiber/fiber/v2"

// GetRecommendations ranks foods for a nutrient under the user's diet
// preference.
func GetRecommendations(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	return c.JSON(tracker.Recommend(c.Params("nutrient")))
}
