package bootstrap

import (
	"context"
	"net/http"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	appControllers "github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/controllers"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/linker"
	appRepos "github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/repositories"
	appRoutes "github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/routes"
	appServices "github.com/Africa-AI-Engineers/smart-classroom-api/internal/app/services"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/config"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/db"
	appMiddleware "github.com/Africa-AI-Engineers/smart-classroom-api/internal/middleware"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/helpers"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/logger"
	"github.com/Africa-AI-Engineers/smart-classroom-api/internal/pkg/validation"
)

// Dependencies holds all the application dependencies
type Dependencies struct {
	Repos               *appRepos.Repositories
	LinkMaintainer      *linker.Maintainer
	TeacherService      *appServices.TeacherService
	StudentService      *appServices.StudentService
	ClassroomService    *appServices.ClassroomService
	TeacherController   *appControllers.TeacherController
	StudentController   *appControllers.StudentController
	ClassroomController *appControllers.ClassroomController
	Logger              zerolog.Logger
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

	lgr := log.Logger // Get the configured global logger
	lgr.Info().Str("logLevel", string(logLevel)).Str("logFormat", cfg.Logging.Format).Msg("Logger configured")
	return cfg, lgr, nil
}

// SetupDatabase establishes the document store connection.
func SetupDatabase(cfg *config.Config, lgr zerolog.Logger) (*db.MongoDB, error) {
	lgr.Info().Str("database", cfg.MongoDB.Database).Msg("Establishing document store connection...")
	database, err := db.NewMongoDB(cfg)
	if err != nil {
		lgr.Error().Err(err).Msg("Failed to connect to document store")
		return nil, err
	}
	lgr.Info().Msg("Document store connection successfully established.")
	return database, nil
}

// BuildDependencies initializes repositories, the link maintainer, services
// and controllers. The maintainer is started here; the server shuts it down.
func BuildDependencies(cfg *config.Config, database *db.MongoDB, lgr zerolog.Logger) (*Dependencies, error) {
	deps := &Dependencies{Logger: lgr}

	deps.Repos = appRepos.NewRepositories(database.Database)

	deps.LinkMaintainer = linker.New(
		deps.Repos.TeacherRepository,
		deps.Repos.StudentRepository,
		deps.Repos.OutboxRepository,
		linker.Config{
			Workers:           cfg.Linker.Workers,
			QueueSize:         cfg.Linker.QueueSize,
			MaxAttempts:       cfg.Linker.MaxAttempts,
			RetryBackoff:      helpers.ParseDuration(cfg.Linker.RetryBackoff, 100*time.Millisecond),
			OpTimeout:         helpers.ParseDuration(cfg.Linker.OpTimeout, 10*time.Second),
			ReconcileInterval: helpers.ParseDuration(cfg.Linker.ReconcileInterval, 30*time.Second),
		},
		lgr,
	)
	deps.LinkMaintainer.Start()

	// Initialize services
	deps.TeacherService = appServices.NewTeacherService(deps.Repos.TeacherRepository)
	deps.StudentService = appServices.NewStudentService(deps.Repos.StudentRepository)
	deps.ClassroomService = appServices.NewClassroomService(
		deps.Repos.ClassroomRepository,
		deps.Repos.QuizRepository,
		deps.LinkMaintainer,
		lgr,
	)

	// Initialize controllers
	deps.TeacherController = appControllers.NewTeacherController(deps.TeacherService)
	deps.StudentController = appControllers.NewStudentController(deps.StudentService)
	deps.ClassroomController = appControllers.NewClassroomController(deps.ClassroomService)

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

	// Install the objectid rule on gin's binding validator
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		if err := validation.RegisterRules(v); err != nil {
			lgr.Error().Err(err).Msg("Failed to register validation rules")
		}
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(appMiddleware.RequestID())
	router.Use(appMiddleware.RequestLogger(lgr))

	// Setup API routes using the dependencies
	appRoutes.SetupRouter(router,
		deps.TeacherController,
		deps.StudentController,
		deps.ClassroomController,
	)

	// Health endpoint
	router.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong", "status": "success"})
	})

	return router
}

// ShutdownDependencies drains the link maintainer so queued back-reference
// appends settle before the store connection goes away.
func ShutdownDependencies(ctx context.Context, deps *Dependencies) error {
	return deps.LinkMaintainer.Shutdown(ctx)
}
