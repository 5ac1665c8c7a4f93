package api

import (
	"github.com/labstack/echo-contrib/echoprometheus"
	"github.com/labstack/echo/v4"
	echomiddleware "github.com/labstack/echo/v4/middleware"
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	echoSwagger "github.com/swaggo/echo-swagger"
	"gorm.io/gorm"

	_ "github.com/campusdesk/grievance-system/docs"
	"github.com/campusdesk/grievance-system/internal/api/handler"
	"github.com/campusdesk/grievance-system/internal/api/middleware"
	"github.com/campusdesk/grievance-system/internal/core/domain"
	"github.com/campusdesk/grievance-system/internal/core/ports"
	"github.com/campusdesk/grievance-system/internal/core/service"
	"github.com/campusdesk/grievance-system/internal/infrastructure/db/postgres"
	redisstore "github.com/campusdesk/grievance-system/internal/infrastructure/db/redis"
)

// NewRouter builds and returns the Echo instance with all routes registered.
func NewRouter(
	db *gorm.DB,
	rdb *redis.Client,
	notifier ports.Notifier,
	images ports.ImageStore,
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
	e.Use(echoprometheus.NewMiddleware("grievance"))

	// --- Repositories ---
	userRepo := postgres.NewUserRepository(db)
	studentRepo := postgres.NewStudentRepository(db)
	authorityRepo := postgres.NewAuthorityRepository(db)
	grievanceRepo := postgres.NewGrievanceRepository(db)
	settingsRepo := postgres.NewSettingsRepository(db)
	tokens := redisstore.NewTokenStore(rdb)

	// --- Services ---
	authService := service.NewAuthService(userRepo, settingsRepo, tokens)
	directoryService := service.NewDirectoryService(studentRepo, authorityRepo, settingsRepo, log)
	grievanceService := service.NewGrievanceService(grievanceRepo, studentRepo, authorityRepo, settingsRepo, notifier, log)
	statsService := service.NewStatsService(grievanceRepo, studentRepo, authorityRepo)
	settingsService := service.NewSettingsService(settingsRepo, log)

	// --- Handlers ---
	authHandler := handler.NewAuthHandler(authService)
	registrationHandler := handler.NewRegistrationHandler(directoryService, images)
	grievanceHandler := handler.NewGrievanceHandler(grievanceService, images)
	directoryHandler := handler.NewDirectoryHandler(directoryService, images)
	statsHandler := handler.NewStatsHandler(statsService)
	settingsHandler := handler.NewSettingsHandler(settingsService)

	authed := middleware.Auth(tokens)
	adminOnly := middleware.RBAC(domain.RoleAdmin)

	// --- Public routes ---
	e.POST("/login", authHandler.Login)
	e.POST("/register-student", registrationHandler.RegisterStudent)
	e.POST("/register-authority", registrationHandler.RegisterAuthority)

	// --- Grievance lifecycle ---
	e.GET("/grievances", grievanceHandler.List, authed)
	e.POST("/grievances", grievanceHandler.Create, authed)
	e.PATCH("/grievances/:id", grievanceHandler.Update, authed)
	e.DELETE("/grievances/:id", grievanceHandler.Delete, authed)

	// --- Dashboard ---
	e.GET("/stats", statsHandler.Dashboard, authed)

	// --- Admin: directory, settings, credentials ---
	e.GET("/students", directoryHandler.ListStudents, authed, adminOnly)
	e.PUT("/students/:student_id", directoryHandler.UpdateStudent, authed, adminOnly)
	e.DELETE("/students/:student_id", directoryHandler.DeleteStudent, authed, adminOnly)

	e.GET("/authorities", directoryHandler.ListAuthorities, authed, adminOnly)
	e.PUT("/authorities/:employee_id", directoryHandler.UpdateAuthority, authed, adminOnly)
	e.DELETE("/authorities/:employee_id", directoryHandler.DeleteAuthority, authed, adminOnly)

	e.GET("/settings", settingsHandler.Get, authed)
	e.POST("/settings", settingsHandler.Update, authed, adminOnly)

	e.POST("/admin/change-password", authHandler.ChangePassword, authed, adminOnly)

	// --- Health probes (no auth required) ---
	healthHandler := handler.NewHealthHandler()
	readinessHandler := handler.NewReadinessHandler(db, rdb)

	e.GET("/health", healthHandler.Liveness)
	e.GET("/health/ready", readinessHandler.Readiness)

	// --- Observability & docs ---
	e.GET("/metrics", echoprometheus.NewHandler())
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	return e
}
