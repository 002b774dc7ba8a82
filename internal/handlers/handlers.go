package handlers

import (
	"errors"

	"github.com/arnold/nutritrack-api/internal/middleware"
	"github.com/arnold/nutritrack-api/internal/nutrition"
	"github.com/arnold/nutritrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// Wired from main at startup.
var (
	Sessions *nutrition.Manager
	Insights *services.InsightService
)

// session resolves the caller's nutrition tracker.
func session(c *fiber.Ctx) (*nutrition.Tracker, error) {
	return Sessions.Session(middleware.GetUserID(c))
}

// nutritionError maps core errors onto HTTP responses.
func nutritionError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, nutrition.ErrDuplicateGoalKey):
		return c.Status(fiber.StatusConflict).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, nutrition.ErrGoalNotFound), errors.Is(err, nutrition.ErrFoodNotFound):
		return c.Status(fiber.StatusNotFound).JSON(fiber.Map{
			"error": err.Error(),
		})
	case errors.Is(err, nutrition.ErrValidation),
		errors.Is(err, nutrition.ErrBuiltinGoal),
		errors.Is(err, nutrition.ErrSeedFood):
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"error": err.Error(),
		})
	default:
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"error": "Something went wrong",
		})
	}
}
