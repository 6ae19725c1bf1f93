// Package app provides the dependency injection container for the application.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/runoshun/todoboard/internal/board"
	"github.com/runoshun/todoboard/internal/domain"
	"github.com/runoshun/todoboard/internal/infra/config"
	"github.com/runoshun/todoboard/internal/infra/idgen"
	"github.com/runoshun/todoboard/internal/infra/jsonstore"
	"github.com/runoshun/todoboard/internal/infra/logging"
	"github.com/runoshun/todoboard/internal/infra/redisstore"
	"github.com/runoshun/todoboard/internal/infra/remote"
	"github.com/runoshun/todoboard/internal/server"
	"github.com/runoshun/todoboard/internal/usecase"
)

// Config holds the application paths.
type Config struct {
	WorkDir  string // Directory searched for the project config file
	StateDir string // Directory for the log file and the default JSON store
}

// Container provides dependency injection for the application.
// It holds all port implementations and provides factory methods for use cases.
type Container struct {
	// Ports (interfaces bound to implementations)
	Service       domain.TaskService
	ConfigLoader  domain.ConfigLoader
	ConfigManager domain.ConfigManager
	Diagnostics   domain.Logger // File log used by the board

	// Pointer fields
	AppConfig *domain.Config
	Logger    *slog.Logger // Request log of the development server
	logFile   *logging.Logger

	// Configuration
	Config Config
}

// New creates a new Container for the given working directory.
// Configuration errors are returned; unknown keys only produce warnings.
func New(dir string) (*Container, error) {
	cfg := Config{
		WorkDir:  dir,
		StateDir: config.DefaultStateDir(),
	}

	configLoader := config.NewLoader(dir)
	appConfig, err := configLoader.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logFile := logging.New(cfg.StateDir, logging.ParseLevel(appConfig.Log.Level))

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: logging.ParseLevel(appConfig.Log.Level),
	}))

	return &Container{
		Service:       remote.NewClient(appConfig.Server.BaseURL, appConfig.Server.Timeout),
		ConfigLoader:  configLoader,
		ConfigManager: config.NewManager(dir),
		Diagnostics:   logFile,
		AppConfig:     appConfig,
		Logger:        logger,
		logFile:       logFile,
		Config:        cfg,
	}, nil
}

// NewWithDeps creates a new Container with custom dependencies for testing.
func NewWithDeps(cfg Config, appConfig *domain.Config, service domain.TaskService, diagnostics domain.Logger, logger *slog.Logger) *Container {
	if appConfig == nil {
		appConfig = domain.NewDefaultConfig()
	}
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &Container{
		Service:     service,
		Diagnostics: diagnostics,
		AppConfig:   appConfig,
		Logger:      logger,
		Config:      cfg,
	}
}

// UseBaseURL points the task service at another backend, keeping the
// configured timeout.
func (c *Container) UseBaseURL(baseURL string) {
	c.AppConfig.Server.BaseURL = baseURL
	c.Service = remote.NewClient(baseURL, c.AppConfig.Server.Timeout)
}

// SetLogOutput replaces the request logger's destination.
func (c *Container) SetLogOutput(w io.Writer) {
	c.Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: logging.ParseLevel(c.AppConfig.Log.Level),
	}))
}

// LogPath returns the diagnostic log file, or "" when logging to a writer.
func (c *Container) LogPath() string {
	if c.logFile == nil {
		return ""
	}
	return c.logFile.Path()
}

// Close releases the log file.
func (c *Container) Close() error {
	if c.logFile == nil {
		return nil
	}
	return c.logFile.Close()
}

// BoardStore returns a new board store over the task service.
func (c *Container) BoardStore() *board.Store {
	if client, ok := c.Service.(*remote.Client); ok && c.Diagnostics != nil {
		c.Diagnostics.Info("board", "backend: "+client.BaseURL())
	}
	return board.NewStore(c.Service, c.Diagnostics, board.Options{
		DeleteTarget: c.AppConfig.Board.DeleteTarget,
	})
}

// TaskRepository opens the storage backend for the development server.
// The returned close function releases it.
func (c *Container) TaskRepository(ctx context.Context, sc domain.ServeConfig) (domain.TaskRepository, func() error, error) {
	switch sc.Store {
	case domain.StoreRedis:
		store, err := redisstore.New(ctx, sc.RedisURL, redisstore.DefaultPrefix)
		if err != nil {
			return nil, nil, err
		}
		return store, store.Close, nil

	case domain.StoreJSON, "":
		path := sc.Path
		if path == "" {
			if c.Config.StateDir == "" {
				return nil, nil, errors.New("no store path: set [serve] path or --path")
			}
			path = domain.StorePath(c.Config.StateDir)
		}
		store := jsonstore.New(path)
		if err := store.Initialize(); err != nil {
			return nil, nil, fmt.Errorf("initialize store %s: %w", path, err)
		}
		return store, func() error { return nil }, nil
	}
	return nil, nil, fmt.Errorf("%w: %q", domain.ErrInvalidStore, sc.Store)
}

// Server returns a development server over repo.
func (c *Container) Server(repo domain.TaskRepository) *server.Server {
	return server.New(repo, idgen.UUID{}, c.Logger)
}

// UseCase factory methods

// ListTasksUseCase returns a new ListTasks use case.
func (c *Container) ListTasksUseCase() *usecase.ListTasks {
	return usecase.NewListTasks(c.Service)
}

// ShowTaskUseCase returns a new ShowTask use case.
func (c *Container) ShowTaskUseCase() *usecase.ShowTask {
	return usecase.NewShowTask(c.Service)
}

// CreateTaskUseCase returns a new CreateTask use case.
func (c *Container) CreateTaskUseCase() *usecase.CreateTask {
	return usecase.NewCreateTask(c.Service)
}

// UpdateTaskUseCase returns a new UpdateTask use case.
func (c *Container) UpdateTaskUseCase() *usecase.UpdateTask {
	return usecase.NewUpdateTask(c.Service)
}

// DeleteTaskUseCase returns a new DeleteTask use case.
func (c *Container) DeleteTaskUseCase() *usecase.DeleteTask {
	return usecase.NewDeleteTask(c.Service)
}

// ShowConfigUseCase returns a new ShowConfig use case.
func (c *Container) ShowConfigUseCase() *usecase.ShowConfig {
	return usecase.NewShowConfig(c.ConfigManager, c.ConfigLoader)
}

// InitConfigUseCase returns a new InitConfig use case.
func (c *Container) InitConfigUseCase() *usecase.InitConfig {
	return usecase.NewInitConfig(c.ConfigManager)
}
