package handlers

import (
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetGoals returns the merged goal catalog, personalized when a profile
// exists.
func GetGoals(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	goals, err := tracker.Goals()
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(goals)
}

// AddGoal creates a custom nutrient goal.
func AddGoal(c *fiber.Ctx) error {
	var req models.AddGoalRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	goal, err := tracker.AddGoal(req)
	if err != nil {
		return nutritionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(goal)
}

// DeleteGoal removes a custom goal by key.
func DeleteGoal(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	if err := tracker.DeleteGoal(c.Params("key")); err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
