package handlers

import (
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetToday returns the current day's snapshot: plate, totals, goals,
// water, and achieved goal keys.
func GetToday(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	snap, err := tracker.Today()
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(snap)
}

// ToggleFood flips a food in or out of today's plate.
func ToggleFood(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	snap, err := tracker.Toggle(c.Params("id"))
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(snap)
}

// AddWater applies a signed ml delta to today's water log.
func AddWater(c *fiber.Ctx) error {
	var req models.WaterRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	snap, err := tracker.AddWater(req.Delta)
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(snap)
}

// ResetDay clears today's intake, water, and achievement state.
func ResetDay(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	snap, err := tracker.ResetDay()
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(snap)
}

// ResetAll wipes the user's entire tracked state.
func ResetAll(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	if err := tracker.ResetAll(); err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(fiber.Map{"success": true})
}

// GetHistory returns the full date → record map.
func GetHistory(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	return c.JSON(tracker.History())
}
