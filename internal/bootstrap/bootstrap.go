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
	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/kaan/degreeplan/internal/app/controllers"
	appMigrations "github.com/kaan/degreeplan/internal/app/migrations"
	appRepos "github.com/kaan/degreeplan/internal/app/repositories"
	appRoutes "github.com/kaan/degreeplan/internal/app/routes"
	appServices "github.com/kaan/degreeplan/internal/app/services"
	"github.com/kaan/degreeplan/internal/config"
	"github.com/kaan/degreeplan/internal/db"
	appMiddleware "github.com/kaan/degreeplan/internal/middleware"
	pkgAuth "github.com/kaan/degreeplan/internal/pkg/auth"
	"github.com/kaan/degreeplan/internal/pkg/helpers"
	"github.com/kaan/degreeplan/internal/pkg/logger"
	"github.com/kaan/degreeplan/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       *appServices.AuthService
	CatalogService    *appServices.CatalogService
	ProgramService    *appServices.ProgramService
	PlanService       *appServices.PlanService
	AuthController    *appControllers.AuthController
	CatalogController *appControllers.CatalogController
	ProgramController *appControllers.ProgramController
	PlanController    *appControllers.PlanController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	Redis             *redis.Client
	Logger            zerolog.Logger
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

// SetupDatabase establishes the database connection and runs migrations.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.PostgresDB, error) {
	lgr.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Pool.Ping(ctx); err != nil {
		lgr.Error().Err(err).Msg("Failed to ping database")
		database.Close()
		return nil, err
	}
	lgr.Info().Msg("Database connection successfully established.")

	lgr.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(database.Pool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		lgr.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		database.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		lgr.Error().Err(err).Msg("Database migration error")
		database.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	lgr.Info().Msg("Database migrations successfully applied.")
	return database, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, database *db.PostgresDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	// Redis is optional; without it catalog reads always hit Postgres.
	var rdb *redis.Client
	if cfg.Redis.Enabled {
		var err error
		rdb, err = db.NewRedisClient(cfg)
		if err != nil {
			lgr.Warn().Err(err).Msg("Redis unavailable, continuing without catalog cache")
			rdb = nil
		}
	}
	deps.Redis = rdb

	cacheTTL := helpers.ParseDuration(cfg.Redis.CacheTTL, 15*time.Minute)
	deps.Repos = appRepos.NewRepositories(database, rdb, cacheTTL)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:       cfg.JWT.Secret,
		AccessTokenExp:  helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 1*time.Hour),
		RefreshTokenExp: helpers.ParseDuration(cfg.JWT.RefreshTokenExpiration, 720*time.Hour),
		TokenIssuer:     cfg.JWT.Issuer,
	})

	deps.AuthService = appServices.NewAuthService(
		deps.Repos.UserRepository,
		deps.Repos.TokenRepository,
		deps.JWTService,
		lgr,
	)
	deps.CatalogService = appServices.NewCatalogService(deps.Repos.CourseRepository, lgr)
	deps.ProgramService = appServices.NewProgramService(deps.Repos.ProgramRepository, lgr)
	deps.PlanService = appServices.NewPlanService(
		deps.Repos.PlanRepository,
		deps.Repos.CourseRepository,
		deps.Repos.ProgramRepository,
		lgr,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, lgr)
	deps.CatalogController = appControllers.NewCatalogController(deps.CatalogService)
	deps.ProgramController = appControllers.NewProgramController(deps.ProgramService)
	deps.PlanController = appControllers.NewPlanController(deps.PlanService, lgr)

	// Seed reference data after the dependency graph is ready.
	if cfg.Seed.DemoData {
		if err := seed.CreateDefaultData(context.Background(), deps.Repos, lgr); err != nil {
			lgr.Error().Err(err).Msg("Failed to seed default data, proceeding anyway...")
		}
	}

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
	router.Use(appMiddleware.RequestLogger(lgr), gin.Recovery())

	appRoutes.SetupSwagger(router)

	appRoutes.SetupRouter(router,
		deps.AuthController,
		deps.CatalogController,
		deps.ProgramController,
		deps.PlanController,
		deps.AuthMiddleware,
	)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
