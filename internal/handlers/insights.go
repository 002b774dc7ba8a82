package handlers

import (
	"errors"

	"github.com/arnold/nutritrack-api/internal/services"
	"github.com/gofiber/fiber/v2"
)

// GenerateInsight runs the AI daily summary over the current snapshot.
// Failures are transient: the client keeps whatever insight it already
// has. The response echoes the revision the insight was computed from so
// stale results arriving after a reset can be discarded.
func GenerateInsight(c *fiber.Ctx) error {
	tracker, err := session(c)
	if err != nil {
		return nutritionError(c, err)
	}

	snap, err := tracker.Today()
	if err != nil {
		return nutritionError(c, err)
	}

	insight, err := Insights.Generate(c.Context(), snap)
	if err != nil {
		if errors.Is(err, services.ErrInsightsDisabled) {
			return c.Status(fiber.StatusServiceUnavailable).JSON(fiber.Map{
				"error": "AI insights are not configured",
			})
		}
		return c.Status(fiber.StatusBadGateway).JSON(fiber.Map{
			"error": "AI analysis failed",
		})
	}

	return c.JSON(fiber.Map{
		"insight":  insight,
		"revision": snap.Revision,
	})
}
