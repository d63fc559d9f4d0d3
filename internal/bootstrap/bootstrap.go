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
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	_ "github.com/ardhiancalwa/Schola/docs" // swagger docs registration
	appControllers "github.com/ardhiancalwa/Schola/internal/app/controllers"
	appMigrations "github.com/ardhiancalwa/Schola/internal/app/migrations"
	appRepos "github.com/ardhiancalwa/Schola/internal/app/repositories"
	appRoutes "github.com/ardhiancalwa/Schola/internal/app/routes"
	appServices "github.com/ardhiancalwa/Schola/internal/app/services"
	"github.com/ardhiancalwa/Schola/internal/config"
	"github.com/ardhiancalwa/Schola/internal/db"
	"github.com/ardhiancalwa/Schola/internal/middleware"
	pkgAuth "github.com/ardhiancalwa/Schola/internal/pkg/auth"
	"github.com/ardhiancalwa/Schola/internal/pkg/filestorage"
	"github.com/ardhiancalwa/Schola/internal/pkg/genai"
	"github.com/ardhiancalwa/Schola/internal/pkg/helpers"
	"github.com/ardhiancalwa/Schola/internal/pkg/logger"
	"github.com/ardhiancalwa/Schola/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos       *appRepos.Repositories
	Services    *appServices.Services
	Controllers *appControllers.Controllers
	JWTService  *pkgAuth.JWTService
	FileStorage *filestorage.LocalStorage
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to load configuration")
		return nil, err
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().Str("logLevel", cfg.Logging.Level).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	logger.Info().Msg("Establishing database connection...")
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to connect to database")
		return nil, err
	}
	dbPool := database.Pool

	logger.Info().Msg("Running database migrations...")
	migrator := appMigrations.NewMigrator(dbPool)

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		logger.Error().Str("path", migrationsDir).Msg("Migrations directory not found")
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	if err := migrator.MigrateFromDirectory(migrationsDir); err != nil {
		logger.Error().Err(err).Msg("Database migration error")
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations successfully applied.")

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		logger.Error().Err(err).Msg("Failed to create default data, proceeding anyway...")
	}

	return dbPool, nil
}

// BuildDependencies initializes application repositories, services, and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		logger.Error().Err(err).Msg("Failed to initialize file storage")
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}
	deps.FileStorage = storage

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: helpers.ParseDuration(cfg.JWT.AccessTokenExpiration, 24*time.Hour),
		TokenIssuer:    cfg.JWT.Issuer,
	})

	// A missing API key leaves the generator nil; AI endpoints then report
	// the service as not configured instead of failing at startup.
	var generator appServices.TextGenerator
	if cfg.Gemini.APIKey != "" {
		generator = genai.NewClient(cfg.Gemini.APIKey)
	} else {
		logger.Warn().Msg("GEMINI_API_KEY not set, material analysis disabled")
	}

	deps.Services = appServices.NewServices(
		deps.Repos,
		deps.JWTService,
		deps.FileStorage,
		generator,
		appServices.SummarizerConfig{
			Models:           cfg.Gemini.Models,
			MaxAttempts:      cfg.Gemini.MaxAttempts,
			RateLimitBackoff: helpers.ParseDuration(cfg.Gemini.RateLimitBackoff, 35*time.Second),
			ParseBackoff:     helpers.ParseDuration(cfg.Gemini.ParseBackoff, 3*time.Second),
			MaxPromptChars:   cfg.Gemini.MaxPromptChars,
		},
	)

	deps.Controllers = appControllers.NewControllers(deps.Services)

	return deps, nil
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Logger(), gin.Recovery())
	router.Use(middleware.ErrorHandlerMiddleware())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler, ginSwagger.URL("/swagger/doc.json"), ginSwagger.DefaultModelsExpandDepth(1)))

	appRoutes.SetupRoutes(router, deps.Controllers, deps.JWTService)

	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}
