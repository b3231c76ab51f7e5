package main

import (
	"context"
	"log"

	"visorhr.com/internal/api"
	"visorhr.com/internal/config"
	"visorhr.com/internal/infra"
	"visorhr.com/internal/session"
)

func main() {
	cfg := config.LoadConfig()

	pg, err := infra.NewPostgresClient(cfg.Database)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	rdb := infra.NewRedisClient(cfg.Redis)
	if _, err := rdb.Ping(context.Background()).Result(); err != nil {
		log.Fatalf("Failed to connect to Redis: %v", err)
	}

	media, err := infra.NewMediaStore(cfg.Media.Root)
	if err != nil {
		log.Fatalf("Failed to prepare media storage: %v", err)
	}

	sessions := session.NewRedisStore(rdb)

	app, err := api.NewServer(cfg, pg.DB, sessions, media)
	if err != nil {
		log.Fatalf("Failed to set up server: %v", err)
	}

	log.Printf("Server starting on port %s", cfg.Server.Port)
	if err := app.Listen(cfg.Server.Port); err != nil {
		log.Fatalf("Server failed to start: %v", err)
	}
}
