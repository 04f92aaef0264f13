// Package bootstrap wires configuration, storage and HTTP dependencies
package bootstrap

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/tanish/hostelhub/internal/app/controllers"
	appMigrations "github.com/tanish/hostelhub/internal/app/migrations"
	appRepos "github.com/tanish/hostelhub/internal/app/repositories"
	appRoutes "github.com/tanish/hostelhub/internal/app/routes"
	appServices "github.com/tanish/hostelhub/internal/app/services"
	"github.com/tanish/hostelhub/internal/config"
	"github.com/tanish/hostelhub/internal/db"
	appMiddleware "github.com/tanish/hostelhub/internal/middleware"
	pkgAuth "github.com/tanish/hostelhub/internal/pkg/auth"
	"github.com/tanish/hostelhub/internal/pkg/helpers"
	"github.com/tanish/hostelhub/internal/pkg/logger"
	"github.com/tanish/hostelhub/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService           *appServices.AuthService
	HostelService         *appServices.HostelService
	ComplaintService      *appServices.ComplaintService
	FoodRequestService    *appServices.FoodRequestService
	LostItemService       *appServices.LostItemService
	AuthController        *appControllers.AuthController
	HostelController      *appControllers.HostelController
	ComplaintController   *appControllers.ComplaintController
	FoodRequestController *appControllers.FoodRequestController
	LostItemController    *appControllers.LostItemController
	AuthMiddleware        *appMiddleware.AuthMiddleware
	Repos                 *appRepos.Repositories
	JWTService            *pkgAuth.JWTService
	Logger                zerolog.Logger
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
// creates any seed data.
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

	if err := seed.CreateDefaultData(context.Background(), cfg, dbPool, lgr); err != nil {
		// Log the error but don't fail the startup
		lgr.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(dbPool)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		StudentSecret:  cfg.JWT.StudentSecret,
		WardenSecret:   cfg.JWT.WardenSecret,
		SupportSecret:  cfg.JWT.SupportSecret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.WardenRepository,
		deps.Repos.StudentRepository,
		deps.Repos.SupportDeptRepository,
		deps.JWTService,
		lgr,
	)
	deps.HostelService = appServices.NewHostelService(
		deps.Repos.HostelRepository,
		deps.Repos.WardenRepository,
	)
	deps.ComplaintService = appServices.NewComplaintService(deps.Repos.ComplaintRepository, lgr)
	deps.FoodRequestService = appServices.NewFoodRequestService(
		deps.Repos.FoodRequestRepository,
		deps.Repos.StudentRepository,
		lgr,
	)
	deps.LostItemService = appServices.NewLostItemService(deps.Repos.LostItemRepository, lgr)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.HostelController = appControllers.NewHostelController(deps.HostelService, lgr)
	deps.ComplaintController = appControllers.NewComplaintController(deps.ComplaintService, lgr)
	deps.FoodRequestController = appControllers.NewFoodRequestController(deps.FoodRequestService, lgr)
	deps.LostItemController = appControllers.NewLostItemController(deps.LostItemService, lgr)

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
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestLogger())

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.HostelController,
		deps.ComplaintController,
		deps.FoodRequestController,
		deps.LostItemController,
		deps.AuthMiddleware,
	)

	return router
}
