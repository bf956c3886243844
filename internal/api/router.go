package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/itm-space/backend-resources/internal/api/handler"
	"github.com/itm-space/backend-resources/internal/api/middleware"
	"github.com/itm-space/backend-resources/internal/core/domain"
	"github.com/itm-space/backend-resources/internal/core/service"
	"github.com/itm-space/backend-resources/internal/infrastructure/config"
	mongoaudit "github.com/itm-space/backend-resources/internal/infrastructure/db/mongo"
	redisinfra "github.com/itm-space/backend-resources/internal/infrastructure/db/redis"
	"github.com/itm-space/backend-resources/internal/infrastructure/identity"
	"github.com/itm-space/backend-resources/pkg/keycloak"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(kc *keycloak.Client, db *mongo.Database, rdb *goredis.Client, cfg *config.Config, log zerolog.Logger) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echoprometheus.NewMiddleware("backend_resources"))

	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Dependencies ---
	gateway := identity.NewGateway(kc, cfg.Keycloak.Realm, log)
	auditRepo := mongoaudit.NewAuditRepository(db)
	userService := service.NewUserService(gateway, auditRepo, log)
	userHandler := handler.NewUserHandler(userService)

	limiter := redisinfra.NewFixedWindowLimiter(rdb, cfg.RateLimit.CreateLimit, cfg.RateLimit.CreateWindow)

	// --- User routes (moderators only) ---
	users := e.Group("/api/users", middleware.Auth(cfg.JWTSecret), middleware.RBAC(domain.RoleModerator))
	users.POST("", userHandler.Create, middleware.RateLimit(limiter, log))
	users.GET("/:id", userHandler.Get)

	// --- Health probes and metrics (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(kc, db, rdb)

	e.GET("/health", healthHandler.Liveness)           // liveness  – is the process alive?
	e.GET("/health/ready", readinessHandler.Readiness) // readiness – are dependencies up?
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
