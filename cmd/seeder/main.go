package main

import (
	"staff-scheduler/config"
	"staff-scheduler/internal/database"
	"staff-scheduler/internal/logging"
)

func main() {
	cfg := config.Load()
	log := logging.New(cfg.LogLevel, cfg.LogFormat)

	log.Info("Starting database seeding...")

	db, err := config.ConnectDB(cfg, log)
	if err != nil {
		log.WithError(err).Fatal("Database connection failed")
	}

	if err := database.SeedAll(db, log); err != nil {
		log.WithError(err).Fatal("Seeding failed")
	}
	log.Info("Seeding finished")
}
