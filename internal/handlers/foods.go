package handlers

import (
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetFoods returns the working food database (seed ++ custom).
func GetFoods(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	return c.JSON(tracker.Foods())
}

// CreateFood adds a custom food and toggles it onto today's plate.
func CreateFood(c *fiber.Ctx) error {
	var req models.FoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	food, err := tracker.CreateFood(req)
	if err != nil {
		return nutritionError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(food)
}

// UpdateFood edits a custom food.
func UpdateFood(c *fiber.Ctx) error {
	var req models.FoodRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	food, err := tracker.UpdateFood(c.Params("id"), req)
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(food)
}

// DeleteFood removes a custom food.
func DeleteFood(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	if err := tracker.DeleteFood(c.Params("id")); err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}
