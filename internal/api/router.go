package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	goredis "github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoswagger "github.com/swaggo/echo-swagger"
	"go.mongodb.org/mongo-driver/mongo"

	_ "github.com/crmsuite/user-management-api/docs"
	"github.com/crmsuite/user-management-api/internal/api/handler"
	"github.com/crmsuite/user-management-api/internal/api/middleware"
	"github.com/crmsuite/user-management-api/internal/core/domain"
	"github.com/crmsuite/user-management-api/internal/core/ports"
	"github.com/crmsuite/user-management-api/internal/core/service"
	mongodb "github.com/crmsuite/user-management-api/internal/infrastructure/db/mongo"
	redisdb "github.com/crmsuite/user-management-api/internal/infrastructure/db/redis"
	httphandlers "github.com/crmsuite/user-management-api/internal/infrastructure/http/handlers"
	"github.com/crmsuite/user-management-api/internal/pkg/config"
)

// Dependencies carries everything the router needs; the whole object graph is
// constructed here at startup rather than reached through package globals.
type Dependencies struct {
	Config *config.Config
	DB     *mongo.Database
	Redis  *goredis.Client
	Audit  ports.AuditRecorder
	Logger zerolog.Logger
}

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(deps Dependencies) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(deps.Logger)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("usermgmt"))

	// --- Dependencies ---
	userRepo := mongodb.NewUserRepository(deps.DB)
	auditRepo := mongodb.NewAuditRepository(deps.DB)
	banlist := redisdb.NewBanList(deps.Redis, deps.Config.JWTTTL)

	userService := service.NewUserService(userRepo, auditRepo, banlist, deps.Audit, deps.Logger)
	authService := service.NewAuthService(userRepo, deps.Config.JWTSecret, deps.Config.JWTTTL)

	userHandler := handler.NewUserHandler(userService, deps.Logger)
	authHandler := handler.NewAuthHandler(authService)

	authenticate := middleware.Auth(deps.Config.JWTSecret, banlist)
	isAdmin := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)

	// --- User routes ---
	users := e.Group("/api/users")
	users.GET("/managers", userHandler.ListManagers)
	users.GET("/:id", userHandler.GetByID)
	users.PATCH("/managers/ban/:id", userHandler.Ban, authenticate, isAdmin)
	users.PATCH("/managers/unban/:id", userHandler.Unban, authenticate, isAdmin)
	users.DELETE("/managers/:id", userHandler.Delete, authenticate, isAdmin)
	users.GET("/managers/:id/audit", userHandler.Audit, authenticate, isAdmin)

	// --- Health probes (no auth required) ---
	healthHandler := httphandlers.NewHealthHandler()
	healthDepsHandler := httphandlers.NewHealthDependenciesHandler(deps.DB, deps.Redis)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", healthDepsHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoswagger.WrapHandler)

	return e
}
