package handlers

import (
	"github.com/arnold/nutritrack-api/internal/models"
	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the saved body/activity profile, or null when the
// user has not completed one (default goals apply then).
func GetProfile(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	return c.JSON(fiber.Map{"profile": tracker.Profile()})
}

// SaveProfile stores the profile and re-derives the personalized goals.
func SaveProfile(c *fiber.Ctx) error {
	var profile models.UserProfile
	if err := c.BodyParser(&profile); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": "Invalid request body",
		})
	}

	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	if err := tracker.SaveProfile(profile); err != nil {
		return nutritionError(c, err)
	}

	goals, err := tracker.Goals()
	if err != nil {
		return nutritionError(c, err)
	}
	return c.JSON(fiber.Map{
		"profile": profile,
		"goals":   goals,
	})
}
