package routes

import (
	"github.com/arnold/nutritrack-api/internal/handlers"
	"github.com/arnold/nutritrack-api/internal/middleware"
	"github.com/gofiber/fiber/v2"
)

func Setup(app *fiber.App) {
	api := app.Group("/api")

	auth := api.Group("/auth")
	auth.Post("/register", handlers.Register)
	auth.Post("/login", handlers.Login)

	protected := api.Group("/", middleware.Protected())

	protected.Get("/me", handlers.GetMe)
	protected.Get("/profile", handlers.GetProfile)
	protected.Put("/profile", handlers.SaveProfile)

	goals := protected.Group("/goals")
	goals.Get("/", handlers.GetGoals)
	goals.Post("/", handlers.AddGoal)
	goals.Delete("/:key", handlers.DeleteGoal)

	foods := protected.Group("/foods")
	foods.Get("/", handlers.GetFoods)
	foods.Post("/", handlers.CreateFood)
	foods.Put("/:id", handlers.UpdateFood)
	foods.Delete("/:id", handlers.DeleteFood)

	today := protected.Group("/today")
	today.Get("/", handlers.GetToday)
	today.Post("/foods/:id/toggle", handlers.ToggleFood)
	today.Post("/water", handlers.AddWater)
	today.Post("/reset", handlers.ResetDay)

	protected.Post("/reset", handlers.ResetAll)
	protected.Get("/history", handlers.GetHistory)
	protected.Get("/recommendations/:nutrient", handlers.GetRecommendations)
	protected.Post("/insights", handlers.GenerateInsight)

	// Notifications
	notifications := protected.Group("/notifications")
	notifications.Get("/", handlers.GetNotifications)
	notifications.Put("/:id/read", handlers.MarkNotificationRead)
	notifications.Post("/read-all", handlers.MarkAllRead)

	// Device token for push notifications
	protected.Post("/device-token", handlers.RegisterDeviceToken)
}
