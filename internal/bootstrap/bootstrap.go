package bootstrap

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/lmshub/lms-backend/internal/app/controllers"
	appMigrations "github.com/lmshub/lms-backend/internal/app/migrations"
	appRepos "github.com/lmshub/lms-backend/internal/app/repositories"
	appRoutes "github.com/lmshub/lms-backend/internal/app/routes"
	appServices "github.com/lmshub/lms-backend/internal/app/services"
	"github.com/lmshub/lms-backend/internal/config"
	"github.com/lmshub/lms-backend/internal/db"
	appMiddleware "github.com/lmshub/lms-backend/internal/middleware"
	pkgAuth "github.com/lmshub/lms-backend/internal/pkg/auth"
	"github.com/lmshub/lms-backend/internal/pkg/helpers"
	"github.com/lmshub/lms-backend/internal/pkg/logger"
	"github.com/lmshub/lms-backend/internal/seed"
	"github.com/lmshub/lms-backend/internal/store"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                    store.Store
	Repos                    *appRepos.Repositories
	DashboardService         appServices.DashboardService
	RecommendationService    appServices.RecommendationService
	CourseService            appServices.CourseService
	ChatService              appServices.ChatService
	DashboardController      *appControllers.DashboardController
	RecommendationController *appControllers.RecommendationController
	CourseController         *appControllers.CourseController
	ChatController           *appControllers.ChatController
	HelloController          *appControllers.HelloController
	AuthMiddleware           *appMiddleware.AuthMiddleware
	JWTService               *pkgAuth.JWTService
	Logger                   zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, zerolog.Logger{}, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	lgr := log.Logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds demo records on an empty store.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		dbPool.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")

	recordStore := store.NewPostgresStore(dbPool, lgr)
	if err := seed.CreateDefaultData(context.Background(), recordStore, lgr); err != nil {
		// Log the error but don't necessarily fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes the record store, repositories, services
// and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Store = store.NewPostgresStore(dbPool, lgr)
	deps.Repos = appRepos.NewRepositories(deps.Store)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.DashboardService = appServices.NewDashboardService(
		deps.Repos.Enrollments,
		deps.Repos.Courses,
		deps.Repos.Progress,
		cfg.Dashboard.RecentActivityLimit,
		lgr,
	)
	deps.RecommendationService = appServices.NewRecommendationService(
		deps.Repos.Enrollments,
		deps.Repos.Courses,
		cfg.Recommendations.CandidatePoolSize,
		cfg.Recommendations.MaxResults,
		lgr,
	)
	deps.CourseService = appServices.NewCourseService(
		deps.Repos.Courses,
		deps.Repos.Enrollments,
		lgr,
	)
	deps.ChatService = appServices.NewChatService()

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.DashboardController = appControllers.NewDashboardController(deps.DashboardService)
	deps.RecommendationController = appControllers.NewRecommendationController(deps.RecommendationService)
	deps.CourseController = appControllers.NewCourseController(deps.CourseService)
	deps.ChatController = appControllers.NewChatController(deps.ChatService)
	deps.HelloController = appControllers.NewHelloController(deps.Repos.Users)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies, lgr zerolog.Logger) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
		lgr.Info().Msg("Setting Gin mode to release")
	} else {
		gin.SetMode(gin.DebugMode)
		lgr.Info().Msg("Setting Gin mode to debug")
	}

	router := gin.New()
	router.Use(appMiddleware.RequestLogger(lgr))
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(router,
		deps.DashboardController,
		deps.RecommendationController,
		deps.CourseController,
		deps.ChatController,
		deps.HelloController,
		deps.AuthMiddleware,
	)

	// Test endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
