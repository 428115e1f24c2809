package bootstrap

import (
	"context"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	appControllers "github.com/sudo-disha/digital-library/internal/app/controllers"
	appMigrations "github.com/sudo-disha/digital-library/internal/app/migrations"
	appRepos "github.com/sudo-disha/digital-library/internal/app/repositories"
	appRoutes "github.com/sudo-disha/digital-library/internal/app/routes"
	appServices "github.com/sudo-disha/digital-library/internal/app/services"
	"github.com/sudo-disha/digital-library/internal/config"
	"github.com/sudo-disha/digital-library/internal/db"
	appMiddleware "github.com/sudo-disha/digital-library/internal/middleware"
	pkgAuth "github.com/sudo-disha/digital-library/internal/pkg/auth"
	"github.com/sudo-disha/digital-library/internal/pkg/filestorage"
	"github.com/sudo-disha/digital-library/internal/pkg/logger"
	"github.com/sudo-disha/digital-library/internal/pkg/visitors"
	"github.com/sudo-disha/digital-library/internal/seed"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	AuthService       appServices.AuthService
	StudentService    appServices.StudentService
	TeacherService    appServices.TeacherService
	BookService       appServices.BookService
	ContentService    appServices.ContentService
	AuthController    *appControllers.AuthController
	StudentController *appControllers.StudentController
	TeacherController *appControllers.TeacherController
	BookController    *appControllers.BookController
	ContentController *appControllers.ContentController
	VisitorController *appControllers.VisitorController
	AuthMiddleware    *appMiddleware.AuthMiddleware
	Repos             *appRepos.Repositories
	JWTService        *pkgAuth.JWTService
	FileStorage       *filestorage.LocalStorage
	Counter           visitors.Counter
}

// LoadConfigAndSetupLogger loads configuration and initializes the logger.
func LoadConfigAndSetupLogger(configPath string) (*config.Config, error) {
	cfg, err := config.LoadConfig(configPath)
	if err != nil {
		return nil, err
	}

	logLevel := logger.LogLevel(strings.ToLower(cfg.Logging.Level))
	prettyLog := strings.ToLower(cfg.Logging.Format) == "text"

	logger.Configure(logger.Config{
		Level:  logLevel,
		Pretty: prettyLog,
	})

	logger.Info().
		Str("logLevel", string(logLevel)).
		Str("logFormat", cfg.Logging.Format).
		Msg("Logger configured")
	return cfg, nil
}

// SetupDatabase establishes the database connection, runs migrations and
// seeds the bootstrap admin.
func SetupDatabase(cfg *config.Config) (*pgxpool.Pool, error) {
	database, err := db.NewPostgresDB(cfg)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	dbPool := database.Pool

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	migrationsDir := "migrations"
	if _, err := os.Stat(migrationsDir); os.IsNotExist(err) {
		dbPool.Close()
		return nil, fmt.Errorf("migrations directory not found at %s: %w", migrationsDir, err)
	}

	migrator := appMigrations.NewMigrator(dbPool)
	if err := migrator.MigrateFromDirectory(ctx, migrationsDir); err != nil {
		dbPool.Close()
		return nil, fmt.Errorf("database migrations failed: %w", err)
	}
	logger.Info().Msg("Database migrations applied")

	if err := seed.CreateBootstrapAdmin(ctx, dbPool, cfg); err != nil {
		logger.Error().Err(err).Msg("Failed to seed bootstrap admin, proceeding anyway")
	}

	return dbPool, nil
}

// BuildDependencies initializes repositories, services and controllers.
func BuildDependencies(cfg *config.Config, dbPool *pgxpool.Pool) (*Dependencies, error) {
	deps := &Dependencies{}

	deps.Repos = appRepos.NewRepositories(dbPool)

	var err error
	deps.FileStorage, err = filestorage.NewLocalStorage(cfg.Server.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize file storage: %w", err)
	}

	deps.Counter = setupCounter(cfg)

	deps.JWTService = pkgAuth.NewJWTService(pkgAuth.JWTConfig{
		SecretKey:   cfg.JWT.Secret,
		TokenExpiry: cfg.TokenExpiry(),
		TokenIssuer: cfg.JWT.Issuer,
	})

	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.BookService = appServices.NewBookService(deps.Repos.BookRepository)
	deps.ContentService = appServices.NewContentService(deps.Repos.ContentRepository, deps.Repos.TeacherRepository)
	deps.AuthService = appServices.NewAuthService(
		deps.Repos.StudentRepository,
		deps.Repos.TeacherRepository,
		deps.Repos.AdminRepository,
		deps.JWTService,
	)

	deps.AuthMiddleware = appMiddleware.NewAuthMiddleware(deps.JWTService)

	limits := appControllers.UploadLimits{
		MaxImageBytes:       cfg.Uploads.MaxImageBytes,
		MaxDocumentBytes:    cfg.Uploads.MaxDocumentBytes,
		MaxVideoBytes:       cfg.Uploads.MaxVideoBytes,
		MaxSpreadsheetBytes: cfg.Uploads.MaxSpreadsheetBytes,
	}

	deps.AuthController = appControllers.NewAuthController(deps.AuthService, deps.FileStorage, limits)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService, limits)
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService, deps.FileStorage, limits)
	deps.BookController = appControllers.NewBookController(deps.BookService, deps.FileStorage, limits)
	deps.ContentController = appControllers.NewContentController(deps.ContentService, deps.FileStorage, limits)
	deps.VisitorController = appControllers.NewVisitorController(deps.Counter)

	return deps, nil
}

// setupCounter selects the visitor counter backend. Redis makes the count
// survive restarts; without an address the in-process counter is used.
func setupCounter(cfg *config.Config) visitors.Counter {
	if cfg.Redis.Addr == "" {
		logger.Info().Msg("Visitor counter using in-memory backend")
		return visitors.NewMemoryCounter()
	}

	counter, err := visitors.NewRedisCounter(cfg.Redis.Addr, cfg.Redis.Password, cfg.Redis.DB)
	if err != nil {
		logger.Error().Err(err).Str("addr", cfg.Redis.Addr).
			Msg("Redis unreachable, visitor counter falling back to memory")
		return visitors.NewMemoryCounter()
	}

	logger.Info().Str("addr", cfg.Redis.Addr).Msg("Visitor counter using redis backend")
	return counter
}

// SetupRouter configures the Gin engine with middleware and routes.
func SetupRouter(cfg *config.Config, deps *Dependencies) *gin.Engine {
	if strings.ToLower(cfg.Server.Mode) == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())

	appRoutes.SetupRouter(
		router,
		deps.AuthController,
		deps.StudentController,
		deps.TeacherController,
		deps.BookController,
		deps.ContentController,
		deps.VisitorController,
		deps.AuthMiddleware,
		deps.Counter,
		deps.FileStorage.BasePath(),
		cfg.RequestTimeout(),
	)

	return router
}
