package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/janhvi13092005/doc-talk-connect/config"
	deliveryHttp "github.com/janhvi13092005/doc-talk-connect/internal/delivery/http"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/handler"
	"github.com/janhvi13092005/doc-talk-connect/internal/delivery/http/middleware"
	"github.com/janhvi13092005/doc-talk-connect/internal/infrastructure/cache"
	"github.com/janhvi13092005/doc-talk-connect/internal/infrastructure/database"
	"github.com/janhvi13092005/doc-talk-connect/internal/observability/metrics"
	"github.com/janhvi13092005/doc-talk-connect/internal/repository"
	"github.com/janhvi13092005/doc-talk-connect/internal/service"
	"github.com/janhvi13092005/doc-talk-connect/internal/usecase"
	"github.com/janhvi13092005/doc-talk-connect/pkg/jwt"
	"github.com/janhvi13092005/doc-talk-connect/pkg/validator"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

const shutdownTimeout = 10 * time.Second

// App holds all dependencies for the application
type App struct {
	Config      *config.Config
	DB          *gorm.DB
	RedisClient *redis.Client
	Server      *http.Server
}

// New creates a new App instance with all dependencies initialized
func New(cfg *config.Config) (*App, error) {
	app := &App{Config: cfg}

	// Setup logger
	setupLogger(cfg.App)

	// Initialize database
	db, err := database.NewPostgresConnection(cfg.DB, cfg.App.IsDevelopment())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	app.DB = db
	logrus.Info("Database connected successfully")

	// Initialize Redis
	redisClient, err := cache.NewRedisClient(cfg.Redis)
	if err != nil {
		app.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}
	app.RedisClient = redisClient
	logrus.Info("Redis connected successfully")

	// Initialize all layers
	app.Server = initializeServer(cfg, db, redisClient)

	return app, nil
}

// setupLogger configures the logrus logger
func setupLogger(cfg config.AppConfig) {
	logrus.SetFormatter(&logrus.JSONFormatter{})
	logrus.SetOutput(os.Stdout)
	if cfg.IsDevelopment() {
		logrus.SetLevel(logrus.DebugLevel)
		return
	}
	logrus.SetLevel(logrus.InfoLevel)
}

// initializeServer creates and configures the HTTP server
func initializeServer(cfg *config.Config, db *gorm.DB, redisClient *redis.Client) *http.Server {
	// Initialize logger
	log := logrus.StandardLogger()

	// Initialize JWT service
	jwtService := jwt.NewJWTService(cfg.JWT)

	// Initialize validator
	customValidator := validator.NewValidator()

	// Initialize metrics on the default registry served at /metrics
	bookingMetrics := metrics.NewBookingMetrics(nil)

	// Initialize repositories
	userRepo := repository.NewUserRepository()
	profileRepo := repository.NewProfileRepository()
	doctorRepo := repository.NewDoctorRepository()
	appointmentRepo := repository.NewAppointmentRepository()
	auditLogRepo := repository.NewAuditLogRepository()

	// Initialize services
	auditService := service.NewAuditService(db, log, auditLogRepo)
	sessions := service.NewSessionStore(redisClient, log)
	cancelGuard := service.NewCancellationGuard(redisClient, log, cfg.Booking.CancelLockTTL)
	window := usecase.NewBookingWindow(cfg.App.Location())

	// Initialize usecases
	authUsecase := usecase.NewAuthUsecase(db, log, userRepo, profileRepo, auditService, jwtService, sessions)
	doctorUsecase := usecase.NewDoctorUsecase(db, log, doctorRepo, window)
	appointmentUsecase := usecase.NewAppointmentUsecase(db, log, appointmentRepo, doctorRepo, auditService, cancelGuard, bookingMetrics, window)
	adminAppointmentUsecase := usecase.NewAdminAppointmentUsecase(db, log, appointmentRepo, auditService)
	profileUsecase := usecase.NewProfileUsecase(db, log, profileRepo, auditService)
	emergencyUsecase := usecase.NewEmergencyUsecase(log, bookingMetrics)
	auditLogUsecase := usecase.NewAuditLogUsecase(db, log, auditLogRepo)
	homeUsecase := usecase.NewHomeUsecase(log, doctorUsecase)

	// Initialize handlers
	authHandler := handler.NewAuthHandler(authUsecase, customValidator)
	doctorHandler := handler.NewDoctorHandler(doctorUsecase)
	appointmentHandler := handler.NewAppointmentHandler(appointmentUsecase, customValidator)
	profileHandler := handler.NewProfileHandler(profileUsecase, customValidator)
	emergencyHandler := handler.NewEmergencyHandler(emergencyUsecase, customValidator)
	adminHandler := handler.NewAdminHandler(adminAppointmentUsecase, customValidator)
	auditLogHandler := handler.NewAuditLogHandler(auditLogUsecase)
	viewHandler := handler.NewViewHandler(homeUsecase, doctorUsecase, appointmentUsecase, profileUsecase)

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(jwtService, sessions, log)
	corsMiddleware := middleware.NewCORSMiddleware()
	accessLogMiddleware := middleware.NewAccessLogMiddleware(log, bookingMetrics)

	// Initialize router
	router := deliveryHttp.NewRouter(
		authHandler,
		doctorHandler,
		appointmentHandler,
		profileHandler,
		emergencyHandler,
		adminHandler,
		auditLogHandler,
		viewHandler,
		authMiddleware,
		corsMiddleware,
		accessLogMiddleware,
	)
	httpRouter := router.Setup()

	// Create server
	serverAddr := fmt.Sprintf(":%s", cfg.App.Port)
	return &http.Server{
		Addr:              serverAddr,
		Handler:           httpRouter,
		ReadHeaderTimeout: 10 * time.Second,
	}
}

// Run starts the HTTP server and handles graceful shutdown
func (app *App) Run() {
	// Start server in goroutine
	go func() {
		logrus.Infof("Server starting on port %s", app.Config.App.Port)
		logrus.Infof("Environment: %s", app.Config.App.Env)
		if err := app.Server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logrus.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal
	app.waitForShutdown()
}

// waitForShutdown blocks until an interrupt signal is received
func (app *App) waitForShutdown() {
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logrus.Info("Shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	// Shutdown HTTP server gracefully
	if err := app.Server.Shutdown(ctx); err != nil {
		logrus.Errorf("Server forced to shutdown: %v", err)
	}

	app.Close()

	logrus.Info("Server shutdown complete")
}

// Close closes all connections (database, redis, etc.)
func (app *App) Close() {
	if app.DB != nil {
		sqlDB, err := app.DB.DB()
		if err == nil {
			sqlDB.Close()
		}
	}

	if app.RedisClient != nil {
		app.RedisClient.Close()
	}
}
