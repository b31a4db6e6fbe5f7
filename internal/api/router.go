package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/jobportel/job-board-api/internal/api/handler"
	"github.com/jobportel/job-board-api/internal/api/middleware"
	"github.com/jobportel/job-board-api/internal/core/domain"
	"github.com/jobportel/job-board-api/internal/core/service"
	mongorepo "github.com/jobportel/job-board-api/internal/infrastructure/db/mongo"
	redisinfra "github.com/jobportel/job-board-api/internal/infrastructure/db/redis"
	healthhandlers "github.com/jobportel/job-board-api/internal/infrastructure/http/handlers"
	"github.com/jobportel/job-board-api/internal/infrastructure/storage"
	"github.com/jobportel/job-board-api/internal/pkg/config"
	"github.com/jobportel/job-board-api/internal/realtime"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *mongo.Database,
	rdb *redis.Client,
	hub *realtime.Hub,
	resumes *storage.ResumeStore,
	cfg *config.Config,
	log zerolog.Logger,
) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.Validator = handler.NewValidator()
	e.HTTPErrorHandler = NewHTTPErrorHandler(log)

	// --- Global middleware ---
	e.Use(echomiddleware.Recover())
	e.Use(echomiddleware.RequestID())
	e.Use(echomiddleware.Logger())
	e.Use(echoprometheus.NewMiddleware("jobboard"))

	limiter := redisinfra.NewRateLimiter(rdb, cfg.RateLimit.Max, cfg.RateLimit.Window)
	e.Use(middleware.RateLimit(limiter, log))

	// --- Dependencies ---
	userRepo := mongorepo.NewUserRepository(db)
	jobRepo := mongorepo.NewJobRepository(db)

	authService := service.NewAuthService(userRepo, cfg.JWTSecret, cfg.TokenTTL)
	jobService := service.NewJobService(jobRepo, hub, log)

	authHandler := handler.NewAuthHandler(authService, resumes)
	resumeHandler := handler.NewResumeHandler(userRepo, resumes)
	jobHandler := handler.NewJobHandler(jobService)
	wsHandler := handler.NewWSHandler(hub, log)

	authenticate := middleware.Auth(cfg.JWTSecret)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Auth routes ---
	e.POST("/auth/register", authHandler.Register)
	e.POST("/auth/login", authHandler.Login)
	e.GET("/auth/resume/:userId", resumeHandler.Get)

	// --- Job routes ---
	e.POST("/jobs", jobHandler.Create, authenticate, adminOnly)
	e.GET("/jobs", jobHandler.List)
	e.GET("/jobs/:id", jobHandler.Get)
	e.POST("/jobs/:id/apply", jobHandler.Apply, authenticate)

	// --- Real-time job feed ---
	e.GET("/ws/jobs", wsHandler.Subscribe)

	// --- Health probes (no auth required) ---
	healthHandler := healthhandlers.NewHealthHandler()
	healthDepsHandler := healthhandlers.NewHealthDependenciesHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)            // liveness  – is the process alive?
	e.GET("/health/ready", healthDepsHandler.Readiness) // readiness – are dependencies up?

	// --- Metrics ---
	e.GET("/metrics", echoprometheus.NewHandler())

	return e
}
