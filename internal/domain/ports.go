package domain

import "context"

// TaskService is the remote /todo resource as seen by the client.
type TaskService interface {
	// List returns every task in the service's order.
	List(ctx context.Context) ([]Task, error)

	// Create creates a task and returns it with its assigned id.
	Create(ctx context.Context, payload TaskPayload) (Task, error)

	// Update replaces the fields of the task with the given id.
	Update(ctx context.Context, id string, payload TaskPayload) (Task, error)

	// Delete removes the task with the given id.
	Delete(ctx context.Context, id string) error
}

// TaskRepository persists tasks for the development backend.
// Implementations return ErrTaskNotFound for unknown ids.
type TaskRepository interface {
	// List returns every task in creation order.
	List(ctx context.Context) ([]Task, error)

	// Get retrieves a task by id.
	Get(ctx context.Context, id string) (Task, error)

	// Create stores a new task. The caller assigns the id.
	Create(ctx context.Context, task Task) error

	// Update replaces an existing task.
	Update(ctx context.Context, task Task) error

	// Delete removes a task by id.
	Delete(ctx context.Context, id string) error
}

// IDGenerator produces ids for newly created tasks.
type IDGenerator interface {
	NewID() string
}

// Logger writes diagnostics. It is the console of the interactive board.
type Logger interface {
	Debug(category, msg string)
	Info(category, msg string)
	Warn(category, msg string)
	Error(category, msg string)
}

// ConfigLoader loads configuration from files.
type ConfigLoader interface {
	// Load returns the merged configuration (defaults, global, project, env).
	Load() (*Config, error)
}

// ConfigManager inspects and initializes configuration files.
type ConfigManager interface {
	// GetGlobalConfigInfo returns information about the global config file.
	GetGlobalConfigInfo() ConfigInfo

	// GetProjectConfigInfo returns information about the project config file.
	GetProjectConfigInfo() ConfigInfo

	// InitGlobalConfig writes the template to the global config path.
	InitGlobalConfig() (string, error)

	// InitProjectConfig writes the template to the project config path.
	InitProjectConfig() (string, error)
}

// ConfigInfo describes a configuration file on disk.
type ConfigInfo struct {
	Path    string
	Content string
	Exists  bool
}
