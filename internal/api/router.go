package api

import (
	"net/http"
	"time"

	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/projecthub/projecthub-api/internal/api/handler"
	"github.com/projecthub/projecthub-api/internal/api/middleware"
	"github.com/projecthub/projecthub-api/internal/core/ports"
	"github.com/projecthub/projecthub-api/internal/core/service"
	"github.com/projecthub/projecthub-api/internal/infrastructure/config"
	mongodb "github.com/projecthub/projecthub-api/internal/infrastructure/db/mongo"
	redisdb "github.com/projecthub/projecthub-api/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
// The activity recorder is constructed in main so its worker lifecycle is
// tied to the process context.
func NewRouter(cfg *config.Config, db *mongo.Database, rdb *redis.Client, activities ports.ActivityRecorder, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("projecthub"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(db)
	projectRepo := mongodb.NewProjectRepository(db)
	taskRepo := mongodb.NewTaskRepository(db)
	activityRepo := mongodb.NewActivityRepository(db)

	hasher := service.NewBcryptHasher(0)
	tokens := service.NewJwtTokenService(cfg.Jwt)
	limiter := redisdb.NewLoginLimiter(rdb, 0, 15*time.Minute, log)

	authService := service.NewAuthService(userRepo, hasher, tokens, limiter, log)
	projectService := service.NewProjectService(projectRepo, activities, log)
	taskService := service.NewTaskService(taskRepo, projectRepo, activities, log)
	activityService := service.NewActivityService(activityRepo, log)

	authHandler := handler.NewAuthHandler(authService)
	projectHandler := handler.NewProjectHandler(projectService, activityService)
	taskHandler := handler.NewTaskHandler(taskService)

	// --- Validation gate (pre-authentication) ---
	// Register/login bodies are schema-checked before their handlers run;
	// everything else passes through untouched.
	gate := middleware.NewGate().
		On(http.MethodPost, "/api/auth/register", handler.RegisterBodyCheck()).
		On(http.MethodPost, "/api/auth/login", handler.LoginBodyCheck())
	e.Use(gate.Middleware())

	// --- Auth routes (no bearer token) ---
	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)

	// --- Protected routes ---
	protected := e.Group("/api", middleware.Auth(tokens))
	protected.POST("/projects", projectHandler.Create)
	protected.GET("/projects", projectHandler.List)
	protected.GET("/projects/:id", projectHandler.Get)
	protected.PATCH("/projects/:id", projectHandler.Update)
	protected.DELETE("/projects/:id", projectHandler.Delete)
	protected.GET("/projects/:id/activities", projectHandler.Activities)
	protected.POST("/projects/:id/tasks", taskHandler.Create)
	protected.GET("/projects/:id/tasks", taskHandler.List)
	protected.GET("/projects/:id/tasks/:taskId", taskHandler.Get)
	protected.PATCH("/projects/:id/tasks/:taskId", taskHandler.Update)
	protected.DELETE("/projects/:id/tasks/:taskId", taskHandler.Delete)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	healthDepsHandler := handler.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	return e
}
