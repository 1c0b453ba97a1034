package main

import (
	"context"
	"time"

	"noteauth/internal/config"
	"noteauth/internal/db"
	"noteauth/internal/logger"
	"noteauth/internal/model"
	"noteauth/internal/repository"
	"noteauth/internal/seed"
)

// seed prepares a persistent database (DB_DRIVER=mysql) with both schemas
// and the default users. The in-memory default is seeded by the auth API
// itself on startup.
func main() {
	cfg := config.Load()
	log := logger.New("seed", cfg.LogLevel)

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("failed to connect to database")
	}
	log.Info().Str("driver", cfg.DBDriver).Msg("connected to database")

	if err := gormDB.AutoMigrate(&model.User{}, &model.Note{}); err != nil {
		log.Fatal().Err(err).Msg("failed to run migrations")
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	seeded, err := seed.Users(ctx, repository.NewUserRepository(gormDB), seed.DefaultUsers(time.Now().UTC()))
	if err != nil {
		log.Fatal().Err(err).Msg("failed to seed users")
	}
	if seeded == 0 {
		log.Info().Msg("users already present, nothing seeded")
		return
	}
	log.Info().Int("seeded", seeded).Msg("seed completed")
}
