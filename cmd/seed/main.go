package main

import (
	"context"
	"os"

	"eventpro/internal/config"
	"eventpro/internal/database"
	"eventpro/internal/pkg/logger"
	"eventpro/internal/seed"
)

func main() {
	cfg, err := config.Load()
	log := logger.New(cfg.Log.Level, "text", os.Stdout)
	if err != nil {
		log.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	db, err := database.Open(cfg.DB.URL, log)
	if err != nil {
		log.Error("db connection failed", "error", err)
		os.Exit(1)
	}
	defer database.Close(db)

	rep, err := seed.Run(context.Background(), db, log)
	if err != nil {
		log.Error("seed failed", "error", err)
		os.Exit(1)
	}
	log.Info("seed completed",
		"users_created", rep.Users,
		"event_types_created", rep.EventTypes,
		"admin", seed.AdminEmail,
	)
}
