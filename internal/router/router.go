package router

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	"noteauth/internal/auth"
	"noteauth/internal/config"
	"noteauth/internal/errors"
	"noteauth/internal/handler"
	"noteauth/internal/logger"
	"noteauth/internal/metrics"
	"noteauth/internal/model"
)

const (
	AuthDocsInstance = "authapi"
	NoteDocsInstance = "noteapi"

	apiPrefix = "/api/v1"
)

// RegisterAuth wires middleware and routes of the auth API.
func RegisterAuth(
	e *echo.Echo,
	log zerolog.Logger,
	m *metrics.Metrics,
	jwtService *auth.JWTService,
	loginHandler *handler.LoginHandler,
	userHandler *handler.UserHandler,
) {
	registerCommon(e, log, m, AuthDocsInstance)

	api := e.Group(apiPrefix)
	api.POST("/login", loginHandler.Login)

	users := api.Group("/users",
		auth.JWTMiddleware(jwtService),
		auth.RequireRole(model.RoleAdministrator.String()),
	)
	users.GET("", userHandler.ListUsers)
	users.GET("/:id", userHandler.GetUser)
	users.PUT("/:id", userHandler.UpdateUser)
}

// RegisterNotes wires middleware and routes of the note API. The note group
// requires a bearer token of any role when cfg.NoteRequireAuth is set.
func RegisterNotes(
	e *echo.Echo,
	cfg *config.Config,
	log zerolog.Logger,
	m *metrics.Metrics,
	jwtService *auth.JWTService,
	noteHandler *handler.NoteHandler,
) {
	registerCommon(e, log, m, NoteDocsInstance)

	var guards []echo.MiddlewareFunc
	if cfg.NoteRequireAuth {
		guards = append(guards, auth.JWTMiddleware(jwtService))
	}

	notes := e.Group(apiPrefix+"/users/:userId/notes", guards...)
	notes.POST("", noteHandler.CreateNote)
	notes.GET("", noteHandler.ListNotes)
	notes.GET("/:id", noteHandler.GetNote).Name = handler.RouteGetNote
	notes.PUT("/:id", noteHandler.UpdateNote)
	notes.DELETE("/:id", noteHandler.DeleteNote)
}

func registerCommon(e *echo.Echo, log zerolog.Logger, m *metrics.Metrics, docsInstance string) {
	e.HideBanner = true
	e.HTTPErrorHandler = errors.NewHTTPErrorHandler(e, log)
	e.Validator = NewCustomValidator()

	e.Use(middleware.RequestID())
	e.Use(logger.RequestLogger(log))
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())
	e.Use(m.Middleware())

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})
	e.GET("/metrics", m.Handler())
	e.GET("/swagger/*", echoSwagger.EchoWrapHandler(echoSwagger.InstanceName(docsInstance)))
}
