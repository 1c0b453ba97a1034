package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"

	"noteauth/docs/authapi"
	"noteauth/internal/auth"
	"noteauth/internal/cache"
	"noteauth/internal/config"
	"noteauth/internal/db"
	"noteauth/internal/handler"
	"noteauth/internal/logger"
	"noteauth/internal/metrics"
	"noteauth/internal/model"
	"noteauth/internal/repository"
	"noteauth/internal/router"
	"noteauth/internal/seed"
	"noteauth/internal/server"
	"noteauth/internal/service"
)

// @title Auth API
// @version 1.0
// @description Issues bearer tokens and administers users.
// @host localhost:5000
// @BasePath /api/v1
// @schemes http
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	cfg := config.Load()
	log := logger.New(router.AuthDocsInstance, cfg.LogLevel)

	if cfg.SwaggerHost != "" {
		authapi.SwaggerInfo.Host = cfg.SwaggerHost
	}

	gormDB, err := db.Open(cfg.DBDriver, cfg.DatabaseDSN())
	if err != nil {
		log.Fatal().Err(err).Msg("database init")
	}
	if err := gormDB.AutoMigrate(&model.User{}); err != nil {
		log.Fatal().Err(err).Msg("auto-migrate")
	}

	userRepo := repository.NewUserRepository(gormDB)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	seeded, err := seed.Users(ctx, userRepo, seed.DefaultUsers(time.Now().UTC()))
	if err != nil {
		log.Fatal().Err(err).Msg("seed users")
	}
	log.Info().Int("seeded", seeded).Msg("users ready")

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)
	defer cacheClient.Close()

	jwtService := auth.NewJWTService(cfg.Security.Issuer, cfg.Security.Audience, cfg.Security.Secret)
	authService := service.NewAuthService(userRepo, jwtService)
	userService := service.NewUserService(userRepo, cacheClient)

	e := echo.New()
	router.RegisterAuth(
		e,
		log,
		metrics.New(router.AuthDocsInstance),
		jwtService,
		handler.NewLoginHandler(authService),
		handler.NewUserHandler(userService),
	)

	if err := server.Run(ctx, e, ":"+cfg.AuthServerPort, log); err != nil {
		log.Fatal().Err(err).Msg("auth api")
	}
}

