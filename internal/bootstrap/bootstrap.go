package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/skillsynergy/api/internal/app/controllers"
	appMigrations "github.com/skillsynergy/api/internal/app/migrations"
	appRoutes "github.com/skillsynergy/api/internal/app/routes"
	appServices "github.com/skillsynergy/api/internal/app/services"
	appStorage "github.com/skillsynergy/api/internal/app/storage"
	"github.com/skillsynergy/api/internal/config"
	"github.com/skillsynergy/api/internal/db"
	appMiddleware "github.com/skillsynergy/api/internal/middleware"
	"github.com/skillsynergy/api/internal/pkg/logger"
	"github.com/skillsynergy/api/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Store                appStorage.Storage
	UserService          appServices.UserService
	AssessmentService    appServices.AssessmentService
	CatalogService       appServices.CatalogService
	JobService           appServices.JobService
	MentorService        appServices.MentorService
	CommunityService     appServices.CommunityService
	UserController       *appControllers.UserController
	AssessmentController *appControllers.AssessmentController
	CatalogController    *appControllers.CatalogController
	RoadmapController    *appControllers.RoadmapController
	JobController        *appControllers.JobController
	MentorController     *appControllers.MentorController
	CommunityController  *appControllers.CommunityController
	Logger               zerolog.Logger
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
// A .env file in the working directory is applied before the config is read
// so its variables participate in the env overlay.
func LoadConfigAndSetupLogger() (*config.Config, zerolog.Logger, error) {
	if err := godotenv.Load(); err != nil && !os.IsNotExist(err) {
		logger.Warn().Err(err).Msg("Failed to load .env file")
	}

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

// SetupStorage builds the configured store. For the postgres driver it
// connects, migrates and seeds; the returned pool is nil for the memory
// driver.
func SetupStorage(cfg *config.Config, lgr zerolog.Logger) (appStorage.Storage, *pgxpool.Pool, error) {
	switch cfg.Storage.Driver {
	case config.DriverMemory:
		lgr.Info().Msg("Using in-memory storage")
		return appStorage.NewMemStorage(), nil, nil

	case config.DriverPostgres:
		dbPool, err := setupDatabase(cfg, lgr)
		if err != nil {
			return nil, nil, err
		}
		return appStorage.NewPostgresStorage(dbPool), dbPool, nil

	default:
		return nil, nil, fmt.Errorf("unknown storage driver %q", cfg.Storage.Driver)
	}
}

func setupDatabase(cfg *config.Config, lgr zerolog.Logger) (*pgxpool.Pool, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	lgr.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool, lgr); err != nil {
		// Seed failures are not fatal; the schema is in place either way.
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes services and controllers on top of the store.
func BuildDependencies(store appStorage.Storage, lgr zerolog.Logger) *Dependencies {
	deps := &Dependencies{Store: store, Logger: lgr}

	deps.UserService = appServices.NewUserService(store)
	deps.AssessmentService = appServices.NewAssessmentService(store)
	deps.CatalogService = appServices.NewCatalogService(store)
	deps.JobService = appServices.NewJobService(store)
	deps.MentorService = appServices.NewMentorService(store)
	deps.CommunityService = appServices.NewCommunityService(store)

	deps.UserController = appControllers.NewUserController(deps.UserService)
	deps.AssessmentController = appControllers.NewAssessmentController(deps.AssessmentService)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.RoadmapController = appControllers.NewRoadmapController(deps.CatalogService)
	deps.JobController = appControllers.NewJobController(deps.JobService)
	deps.MentorController = appControllers.NewMentorController(deps.MentorService)
	deps.CommunityController = appControllers.NewCommunityController(deps.CommunityService)

	return deps
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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.UserController,
		deps.AssessmentController,
		deps.CatalogController,
		deps.RoadmapController,
		deps.JobController,
		deps.MentorController,
		deps.CommunityController,
	)

	return router
}
