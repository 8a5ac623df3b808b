package api

import (
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/icehawks/roster-system/docs"
	"github.com/icehawks/roster-system/internal/api/handler"
	"github.com/icehawks/roster-system/internal/api/middleware"
	"github.com/icehawks/roster-system/internal/core/domain"
	"github.com/icehawks/roster-system/internal/core/ports"
	"github.com/icehawks/roster-system/internal/core/service"
	"github.com/icehawks/roster-system/internal/infrastructure/config"
	"github.com/icehawks/roster-system/internal/infrastructure/db/postgres"
	"github.com/icehawks/roster-system/internal/infrastructure/http/handlers"
)

// NewRouter builds the Echo instance with all routes registered.
//
// Route protection comes in three tiers: public reads, gate-only routes that
// need any authenticated caller, and filtered routes that also require one of
// the allowed role codes.
func NewRouter(pool *pgxpool.Pool, rdb *goredis.Client, limiter ports.LoginLimiter, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echomiddleware.CORSWithConfig(echomiddleware.CORSConfig{
		AllowOrigins: cfg.CORSOrigins,
	}))
	e.Use(echoprometheus.NewMiddleware("roster"))

	// --- Dependencies ---
	tokens := service.NewTokenCodec(cfg.JWTSecret, cfg.TokenTTL)

	authRepo := postgres.NewAuthRepository(pool)
	authService := service.NewAuthService(authRepo, tokens, limiter, log)
	authHandler := handler.NewAuthHandler(authService)

	roleService := service.NewRoleService(postgres.NewRoleRepository(pool), log)
	roleHandler := handler.NewRoleHandler(roleService)

	userService := service.NewUserService(postgres.NewUserRepository(pool), log)
	userHandler := handler.NewUserHandler(userService)

	teamService := service.NewTeamService(postgres.NewTeamRepository(pool), log)
	teamHandler := handler.NewTeamHandler(teamService)

	playerService := service.NewPlayerService(postgres.NewPlayerRepository(pool), log)
	playerHandler := handler.NewPlayerHandler(playerService)

	trainingService := service.NewTrainingService(postgres.NewTrainingRepository(pool), log)
	trainingHandler := handler.NewTrainingHandler(trainingService)

	matchService := service.NewMatchService(postgres.NewMatchRepository(pool), log)
	matchHandler := handler.NewMatchHandler(matchService)

	gate := middleware.Auth(tokens, authService)
	adminOnly := middleware.RequireRoles(domain.RoleAdmin)

	v1 := e.Group("/api/v1")

	// --- Auth ---
	v1.POST("/auth/register", authHandler.Register)
	v1.POST("/auth/login", authHandler.Login)
	v1.GET("/auth/me", authHandler.Me, gate)

	// --- Roles ---
	v1.GET("/roles", roleHandler.List)
	v1.GET("/roles/:id", roleHandler.Get)
	v1.POST("/roles", roleHandler.Create, gate, adminOnly)
	v1.PUT("/roles/:id", roleHandler.Update, gate, adminOnly)
	v1.DELETE("/roles/:id", roleHandler.Delete, gate, adminOnly)

	// --- Users (directory requires authentication, edits require ADMIN) ---
	v1.GET("/users", userHandler.List, gate)
	v1.GET("/users/:id", userHandler.Get, gate)
	v1.PUT("/users/:id", userHandler.Update, gate, adminOnly)

	// --- Teams ---
	v1.GET("/teams", teamHandler.List)
	v1.GET("/teams/:id", teamHandler.Get)
	v1.POST("/teams", teamHandler.Create, gate, adminOnly)
	v1.PUT("/teams/:id", teamHandler.Update, gate, adminOnly)
	v1.DELETE("/teams/:id", teamHandler.Delete, gate, adminOnly)

	// --- Players ---
	v1.GET("/players", playerHandler.List)
	v1.GET("/players/:id", playerHandler.Get)
	v1.POST("/players", playerHandler.Create, gate, adminOnly)
	v1.PUT("/players/:id", playerHandler.Update, gate, adminOnly)
	v1.DELETE("/players/:id", playerHandler.Delete, gate, adminOnly)

	// --- Trainings (coaches manage their own schedule) ---
	coachOrAdmin := middleware.RequireRoles(domain.RoleAdmin, domain.RoleCoach)
	v1.GET("/trainings", trainingHandler.List)
	v1.GET("/trainings/:id", trainingHandler.Get)
	v1.POST("/trainings", trainingHandler.Create, gate, coachOrAdmin)
	v1.PUT("/trainings/:id", trainingHandler.Update, gate, coachOrAdmin)
	v1.DELETE("/trainings/:id", trainingHandler.Delete, gate, coachOrAdmin)

	// --- Matches (fixtures are the manager's domain) ---
	managerOrAdmin := middleware.RequireRoles(domain.RoleAdmin, domain.RoleManager)
	v1.GET("/matches", matchHandler.List)
	v1.GET("/matches/:id", matchHandler.Get)
	v1.POST("/matches", matchHandler.Create, gate, managerOrAdmin)
	v1.PUT("/matches/:id", matchHandler.Update, gate, managerOrAdmin)
	v1.DELETE("/matches/:id", matchHandler.Delete, gate, managerOrAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := handlers.NewHealthHandler()
	healthDepsHandler := handlers.NewHealthDependenciesHandler(pool, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Operational endpoints ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
