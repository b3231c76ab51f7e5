package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
	"gorm.io/gorm"
	"visorhr.com/internal/config"
	"visorhr.com/internal/infra"
	"visorhr.com/internal/session"
)

func NewServer(cfg *config.Config, db *gorm.DB, sessions session.Store, media *infra.MediaStore) (*fiber.App, error) {
	app := fiber.New(fiber.Config{
		AppName: cfg.Server.AppName,
	})

	app.Use(logger.New())
	app.Use(cors.New(cors.Config{
		AllowCredentials: true,
		AllowOriginsFunc: func(origin string) bool { return true },
	}))

	app.Get("/health", func(c *fiber.Ctx) error {
		return c.Status(fiber.StatusOK).JSON(fiber.Map{
			"status":  "ok",
			"message": "Service is healthy",
		})
	})

	router := NewRouter(app, cfg, db, sessions, media)
	if err := router.RegisterRoutes(); err != nil {
		return nil, err
	}

	return app, nil
}
