package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/labstack/echo/v4"

	"noteauth/docs/noteapi"
	"noteauth/internal/auth"
	"noteauth/internal/config"
	"noteauth/internal/db"
	"noteauth/internal/handler"
	"noteauth/internal/logger"
	"noteauth/internal/metrics"
	"noteauth/internal/model"
	"noteauth/internal/repository"
	"noteauth/internal/router"
	"noteauth/internal/server"
	"noteauth/internal/service"
)

// @title Note API
// @version 1.0
// @description Per-user note storage.
// @host localhost:5001
// @BasePath /api/v1
// @schemes http
func main() {
	cfg := config.Load()
	log := logger.New(router.NoteDocsInstance, cfg.LogLevel)

	if cfg.SwaggerHost != "" {
		noteapi.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(&model.Note{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	noteService := service.NewNoteService(repository.NewNoteRepository(gormDB))
	jwtService := auth.NewJWTService(cfg.Security.Issuer, cfg.Security.Audience, cfg.Security.Secret)

	e := echo.New()
	router.RegisterNotes(
		e,
		cfg,
		log,
		metrics.New(router.NoteDocsInstance),
		jwtService,
		handler.NewNoteHandler(noteService),
	)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	log.Info().Bool("require_auth", cfg.NoteRequireAuth).Msg("note api starting")
	if err := server.Run(ctx, e, ":"+cfg.NoteServerPort, log); err != nil {
		log.Fatal().Err(err).Msg("note api")
	}
}
