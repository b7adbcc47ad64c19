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

	"github.com/erenyalcin/campushare/internal/app/controllers"
	"github.com/erenyalcin/campushare/internal/app/migrations"
	"github.com/erenyalcin/campushare/internal/app/repositories"
	"github.com/erenyalcin/campushare/internal/app/routes"
	"github.com/erenyalcin/campushare/internal/app/services"
	"github.com/erenyalcin/campushare/internal/config"
	"github.com/erenyalcin/campushare/internal/db"
	"github.com/erenyalcin/campushare/internal/middleware"
	"github.com/erenyalcin/campushare/internal/pkg/auth"
	"github.com/erenyalcin/campushare/internal/pkg/filestorage"
	"github.com/erenyalcin/campushare/internal/pkg/logger"
	"github.com/erenyalcin/campushare/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos              *repositories.Repositories
	JWTService         *auth.JWTService
	FileStorage        filestorage.FileStorage
	AuthService        services.AuthService
	CatalogService     services.CatalogService
	ResourceService    services.ResourceService
	TaxonomyService    services.TaxonomyService
	AuthController     *controllers.AuthController
	ResourceController *controllers.ResourceController
	TaxonomyController *controllers.TaxonomyController
	AuthMiddleware     *middleware.AuthMiddleware
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger() (*config.Config, error) {
	configPath := filepath.Join("configs", "config.yaml")
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to load configuration: %w", err)
	}

	logger.Configure(logger.Config{
		Level:  logger.LogLevel(strings.ToLower(cfg.Logging.Level)),
		Pretty: strings.ToLower(cfg.Logging.Format) == "text",
	})

	logger.Info().
		Str("logLevel", cfg.Logging.Level).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds default data.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := dbPool.Ping(ctx); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	logger.Info().Msg("Database connection established")

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := migrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(context.Background(), migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}

	if err := seed.CreateDefaultData(context.Background(), dbPool); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("seeding default data failed: %w", err)
	}

	return dbPool, nil
}

// BuildDependencies wires repositories, services, controllers and
// middleware together.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	repos := repositories.NewRepositories(dbPool)

	accessTokenExp, err := time.ParseDuration(cfg.JWT.AccessTokenExpiration)
	if err != nil {
		return nil, fmt.Errorf("invalid JWT access token expiration %q: %w", cfg.JWT.AccessTokenExpiration, err)
	}
	jwtService := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      cfg.JWT.Secret,
		AccessTokenExp: accessTokenExp,
		TokenIssuer:    cfg.JWT.Issuer,
	})

	fileStorage, err := buildFileStorage(cfg)
	if err != nil {
		return nil, err
	}

	authService := services.NewAuthService(repos.UserRepository, jwtService)
	catalogService := services.NewCatalogService(repos.ResourceRepository)
	resourceService := services.NewResourceService(
		repos.ResourceRepository,
		repos.CourseRepository,
		repos.SubjectRepository,
		repos.SessionRepository,
		fileStorage,
	)
	taxonomyService := services.NewTaxonomyService(
		repos.CourseRepository,
		repos.SubjectRepository,
		repos.SessionRepository,
		repos.TagRepository,
	)

	authMiddleware := middleware.NewAuthMiddleware(jwtService, routes.LoginPath)

	return &Dependencies{
		Repos:              repos,
		JWTService:         jwtService,
		FileStorage:        fileStorage,
		AuthService:        authService,
		CatalogService:     catalogService,
		ResourceService:    resourceService,
		TaxonomyService:    taxonomyService,
		AuthController:     controllers.NewAuthController(authService, cfg.Server.Mode == "release"),
		ResourceController: controllers.NewResourceController(catalogService, resourceService, routes.CatalogPath),
		TaxonomyController: controllers.NewTaxonomyController(taxonomyService),
		AuthMiddleware:     authMiddleware,
	}, nil
}

// buildFileStorage selects the storage backend from configuration.
func buildFileStorage(cfg *config.Config) (filestorage.FileStorage, error) {
	switch cfg.Storage.Backend {
	case "minio":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		storage, err := filestorage.NewMinIOStorage(ctx, filestorage.MinIOConfig{
			Endpoint:        cfg.Storage.MinIO.Endpoint,
			AccessKeyID:     cfg.Storage.MinIO.AccessKeyID,
			SecretAccessKey: cfg.Storage.MinIO.SecretAccessKey,
			Bucket:          cfg.Storage.MinIO.Bucket,
			UseSSL:          cfg.Storage.MinIO.UseSSL,
		})
		if err != nil {
			return nil, fmt.Errorf("failed to initialize minio storage: %w", err)
		}
		logger.Info().Str("endpoint", cfg.Storage.MinIO.Endpoint).Msg("Using MinIO file storage")
		return storage, nil
	default:
		storage, err := filestorage.NewLocalStorage(cfg.Server.StoragePath, cfg.Server.BaseURL)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize local storage: %w", err)
		}
		logger.Info().Str("path", cfg.Server.StoragePath).Msg("Using local file storage")
		return storage, nil
	}
}

// SetupRouter builds the gin engine with all routes registered.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if cfg.Server.Mode == "release" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(requestLogger())

	routes.SetupRouter(
		router,
		deps.AuthController,
		deps.ResourceController,
		deps.TaxonomyController,
		deps.AuthMiddleware,
	)

	return router
}

// requestLogger logs each request with method, path, status and latency.
func requestLogger() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		logger.Info().
			Str("method", c.Request.Method).
			Str("path", c.Request.URL.Path).
			Int("status", c.Writer.Status()).
			Dur("latency", time.Since(start)).
			Str("clientIP", c.ClientIP()).
			Msg("Request handled")
	}
}
