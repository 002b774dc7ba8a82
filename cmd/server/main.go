package main

import (
	"time"

	"github.com/arnold/nutritrack-api/internal/config"
	"github.com/arnold/nutritrack-api/internal/database"
	"github.com/arnold/nutritrack-api/internal/handlers"
	"github.com/arnold/nutritrack-api/internal/logger"
	"github.com/arnold/nutritrack-api/internal/middleware"
	"github.com/arnold/nutritrack-api/internal/nutrition"
	"github.com/arnold/nutritrack-api/internal/routes"
	"github.com/arnold/nutritrack-api/internal/services"
	"github.com/arnold/nutritrack-api/internal/store"
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	cfg := config.Load()
	log := logger.New("nutritrack-api", cfg.LogLevel)

	middleware.Init(cfg.JWTSecret)

	if err := database.Connect(cfg); err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	if err := database.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	if err := services.InitPush(cfg.FCMServiceAccount, log); err != nil {
		log.Fatal().Err(err).Msg("failed to initialize push service")
	}

	notifier := services.NewAchievementNotifier(services.Push, log)
	handlers.Sessions = nutrition.NewManager(store.NewGormStore(database.DB), time.Now, notifier, log)
	handlers.Insights = services.NewInsightService(cfg.GeminiAPIKey)

	app := fiber.New()
	app.Use(recover.New())
	routes.Setup(app)

	log.Info().Str("port", cfg.Port).Msg("starting server")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
