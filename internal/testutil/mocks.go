// Package testutil provides shared test utilities and mock implementations.
package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/runoshun/todoboard/internal/domain"
)

// UpdateCall records one MockTaskService.Update invocation.
type UpdateCall struct {
	ID      string
	Payload domain.TaskPayload
}

// MockTaskService is a test double for domain.TaskService.
// It keeps tasks in memory and records every call.
// Fields are ordered to minimize memory padding.
type MockTaskService struct {
	ListErr   error
	CreateErr error
	UpdateErr error
	DeleteErr error
	Tasks     []domain.Task
	Creates   []domain.TaskPayload
	Updates   []UpdateCall
	Deletes   []string
	ListCalls int
	NextIDN   int
	mu        sync.Mutex
}

// NewMockTaskService creates a MockTaskService holding copies of tasks.
func NewMockTaskService(tasks ...domain.Task) *MockTaskService {
	return &MockTaskService{
		Tasks:   append([]domain.Task(nil), tasks...),
		NextIDN: 1,
	}
}

// List returns a copy of the stored tasks.
func (m *MockTaskService) List(_ context.Context) ([]domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.ListCalls++
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.Task{}, m.Tasks...), nil
}

// Create appends a task with the next sequential id ("task-1", "task-2", ...).
func (m *MockTaskService) Create(_ context.Context, payload domain.TaskPayload) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Creates = append(m.Creates, payload)
	if m.CreateErr != nil {
		return domain.Task{}, m.CreateErr
	}
	if m.NextIDN == 0 {
		m.NextIDN = 1
	}
	task := payload.ToTask(fmt.Sprintf("task-%d", m.NextIDN))
	m.NextIDN++
	m.Tasks = append(m.Tasks, task)
	return task, nil
}

// Update replaces the fields of a stored task.
func (m *MockTaskService) Update(_ context.Context, id string, payload domain.TaskPayload) (domain.Task, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Updates = append(m.Updates, UpdateCall{ID: id, Payload: payload})
	if m.UpdateErr != nil {
		return domain.Task{}, m.UpdateErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == id {
			m.Tasks[i] = payload.ToTask(id)
			return m.Tasks[i], nil
		}
	}
	return domain.Task{}, domain.ErrTaskNotFound
}

// Delete removes a stored task.
func (m *MockTaskService) Delete(_ context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Deletes = append(m.Deletes, id)
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := domain.FindTask(m.Tasks, id); !ok {
		return domain.ErrTaskNotFound
	}
	m.Tasks = domain.RemoveTask(m.Tasks, id)
	return nil
}

// MockTaskRepository is a test double for domain.TaskRepository.
// Fields are ordered to minimize memory padding.
type MockTaskRepository struct {
	ListErr   error
	GetErr    error
	CreateErr error
	UpdateErr error
	DeleteErr error
	Tasks     []domain.Task
}

// NewMockTaskRepository creates a MockTaskRepository holding copies of tasks.
func NewMockTaskRepository(tasks ...domain.Task) *MockTaskRepository {
	return &MockTaskRepository{Tasks: append([]domain.Task(nil), tasks...)}
}

// List returns a copy of the stored tasks.
func (m *MockTaskRepository) List(_ context.Context) ([]domain.Task, error) {
	if m.ListErr != nil {
		return nil, m.ListErr
	}
	return append([]domain.Task{}, m.Tasks...), nil
}

// Get retrieves a task by id.
func (m *MockTaskRepository) Get(_ context.Context, id string) (domain.Task, error) {
	if m.GetErr != nil {
		return domain.Task{}, m.GetErr
	}
	task, ok := domain.FindTask(m.Tasks, id)
	if !ok {
		return domain.Task{}, domain.ErrTaskNotFound
	}
	return task, nil
}

// Create appends a task.
func (m *MockTaskRepository) Create(_ context.Context, task domain.Task) error {
	if m.CreateErr != nil {
		return m.CreateErr
	}
	m.Tasks = append(m.Tasks, task)
	return nil
}

// Update replaces a stored task.
func (m *MockTaskRepository) Update(_ context.Context, task domain.Task) error {
	if m.UpdateErr != nil {
		return m.UpdateErr
	}
	for i := range m.Tasks {
		if m.Tasks[i].ID == task.ID {
			m.Tasks[i] = task
			return nil
		}
	}
	return domain.ErrTaskNotFound
}

// Delete removes a stored task.
func (m *MockTaskRepository) Delete(_ context.Context, id string) error {
	if m.DeleteErr != nil {
		return m.DeleteErr
	}
	if _, ok := domain.FindTask(m.Tasks, id); !ok {
		return domain.ErrTaskNotFound
	}
	m.Tasks = domain.RemoveTask(m.Tasks, id)
	return nil
}

// MockIDGenerator is a test double for domain.IDGenerator.
type MockIDGenerator struct {
	Prefix string
	n      int
}

// NewID returns Prefix followed by a sequence number starting at 1.
func (m *MockIDGenerator) NewID() string {
	m.n++
	return fmt.Sprintf("%s%d", m.Prefix, m.n)
}

// LogEntry is one message recorded by MockLogger.
type LogEntry struct {
	Level    string
	Category string
	Msg      string
}

// MockLogger is a test double for domain.Logger.
type MockLogger struct {
	Entries []LogEntry
	mu      sync.Mutex
}

func (m *MockLogger) record(level, category, msg string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.Entries = append(m.Entries, LogEntry{Level: level, Category: category, Msg: msg})
}

// Debug records a debug message.
func (m *MockLogger) Debug(category, msg string) { m.record("DEBUG", category, msg) }

// Info records an info message.
func (m *MockLogger) Info(category, msg string) { m.record("INFO", category, msg) }

// Warn records a warning.
func (m *MockLogger) Warn(category, msg string) { m.record("WARN", category, msg) }

// Error records an error.
func (m *MockLogger) Error(category, msg string) { m.record("ERROR", category, msg) }

// ByLevel returns the recorded entries with the given level.
func (m *MockLogger) ByLevel(level string) []LogEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []LogEntry
	for _, e := range m.Entries {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

// Compile-time interface checks.
var (
	_ domain.TaskService    = (*MockTaskService)(nil)
	_ domain.TaskRepository = (*MockTaskRepository)(nil)
	_ domain.IDGenerator    = (*MockIDGenerator)(nil)
	_ domain.Logger         = (*MockLogger)(nil)
)

// MockConfigLoader is a test double for domain.ConfigLoader.
type MockConfigLoader struct {
	Config  *domain.Config
	LoadErr error
}

// Load returns Config, or a default config when Config is nil.
func (m *MockConfigLoader) Load() (*domain.Config, error) {
	if m.LoadErr != nil {
		return nil, m.LoadErr
	}
	if m.Config == nil {
		return domain.NewDefaultConfig(), nil
	}
	return m.Config, nil
}

// MockConfigManager is a test double for domain.ConfigManager.
type MockConfigManager struct {
	InitErr       error
	GlobalInfo    domain.ConfigInfo
	ProjectInfo   domain.ConfigInfo
	InitedGlobal  bool
	InitedProject bool
}

// GetGlobalConfigInfo returns GlobalInfo.
func (m *MockConfigManager) GetGlobalConfigInfo() domain.ConfigInfo { return m.GlobalInfo }

// GetProjectConfigInfo returns ProjectInfo.
func (m *MockConfigManager) GetProjectConfigInfo() domain.ConfigInfo { return m.ProjectInfo }

// InitGlobalConfig records the call and returns GlobalInfo.Path.
func (m *MockConfigManager) InitGlobalConfig() (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitedGlobal = true
	return m.GlobalInfo.Path, nil
}

// InitProjectConfig records the call and returns ProjectInfo.Path.
func (m *MockConfigManager) InitProjectConfig() (string, error) {
	if m.InitErr != nil {
		return "", m.InitErr
	}
	m.InitedProject = true
	return m.ProjectInfo.Path, nil
}

var (
	_ domain.ConfigLoader  = (*MockConfigLoader)(nil)
	_ domain.ConfigManager = (*MockConfigManager)(nil)
)
