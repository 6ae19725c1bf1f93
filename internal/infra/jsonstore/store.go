// Package jsonstore provides a JSON file-based implementation of TaskRepository.
package jsonstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"syscall"

	"github.com/runoshun/todoboard/internal/domain"
)

// storeData represents the JSON file structure.
// Tasks are kept in creation order.
type storeData struct {
	Tasks []domain.Task `json:"tasks"`
	Meta  meta          `json:"meta"`
}

// meta contains store metadata.
type meta struct {
	Version int `json:"version"`
}

const storeVersion = 1

// Store implements domain.TaskRepository using a JSON file.
type Store struct {
	path     string
	lockPath string
}

// New creates a new Store for the given file path.
// The file does not need to exist; it will be created on first write.
func New(path string) *Store {
	return &Store{
		path:     path,
		lockPath: path + ".lock",
	}
}

// Path returns the store file path.
func (s *Store) Path() string {
	return s.path
}

// List returns every task in creation order.
func (s *Store) List(_ context.Context) ([]domain.Task, error) {
	var tasks []domain.Task
	err := s.withLock(func(data *storeData) error {
		tasks = append([]domain.Task{}, data.Tasks...)
		return nil
	})
	return tasks, err
}

// Get retrieves a task by id.
func (s *Store) Get(_ context.Context, id string) (domain.Task, error) {
	var task domain.Task
	err := s.withLock(func(data *storeData) error {
		t, ok := domain.FindTask(data.Tasks, id)
		if !ok {
			return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
		}
		task = t
		return nil
	})
	return task, err
}

// Create appends a new task.
func (s *Store) Create(_ context.Context, task domain.Task) error {
	if task.ID == "" {
		return domain.ErrEmptyID
	}
	return s.withLockWrite(func(data *storeData) error {
		if _, ok := domain.FindTask(data.Tasks, task.ID); ok {
			return fmt.Errorf("task %s already exists", task.ID)
		}
		data.Tasks = append(data.Tasks, task)
		return nil
	})
}

// Update replaces an existing task in place.
func (s *Store) Update(_ context.Context, task domain.Task) error {
	return s.withLockWrite(func(data *storeData) error {
		for i := range data.Tasks {
			if data.Tasks[i].ID == task.ID {
				data.Tasks[i] = task
				return nil
			}
		}
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, task.ID)
	})
}

// Delete removes a task by id.
func (s *Store) Delete(_ context.Context, id string) error {
	return s.withLockWrite(func(data *storeData) error {
		if _, ok := domain.FindTask(data.Tasks, id); !ok {
			return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
		}
		data.Tasks = domain.RemoveTask(data.Tasks, id)
		return nil
	})
}

// IsInitialized checks if the store file exists.
func (s *Store) IsInitialized() bool {
	_, err := os.Stat(s.path)
	return err == nil
}

// Initialize creates an empty store file if it doesn't exist.
func (s *Store) Initialize() error {
	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return fmt.Errorf("create directory: %w", err)
	}

	if _, err := os.Stat(s.path); err == nil {
		return nil // Already exists
	}

	return s.write(emptyData())
}

func emptyData() *storeData {
	return &storeData{
		Tasks: []domain.Task{},
		Meta:  meta{Version: storeVersion},
	}
}

// withLock executes fn with a shared (read) lock.
func (s *Store) withLock(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_SH)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	return fn(data)
}

// withLockWrite executes fn with an exclusive (write) lock and writes the result.
func (s *Store) withLockWrite(fn func(*storeData) error) error {
	lock, err := s.acquireLock(syscall.LOCK_EX)
	if err != nil {
		return err
	}
	defer s.releaseLock(lock)

	data, err := s.read()
	if err != nil {
		return err
	}

	if err := fn(data); err != nil {
		return err
	}

	return s.write(data)
}

func (s *Store) acquireLock(lockType int) (*os.File, error) {
	dir := filepath.Dir(s.lockPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("create lock directory: %w", err)
	}

	lock, err := os.OpenFile(s.lockPath, os.O_CREATE|os.O_RDWR, 0o600)
	if err != nil {
		return nil, fmt.Errorf("open lock file: %w", err)
	}

	if err := syscall.Flock(int(lock.Fd()), lockType); err != nil {
		_ = lock.Close()
		return nil, fmt.Errorf("acquire lock: %w", err)
	}

	return lock, nil
}

func (s *Store) releaseLock(lock *os.File) {
	_ = syscall.Flock(int(lock.Fd()), syscall.LOCK_UN)
	_ = lock.Close()
}

// read loads the store file. A missing file reads as an empty store.
func (s *Store) read() (*storeData, error) {
	content, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return emptyData(), nil
		}
		return nil, fmt.Errorf("read store file: %w", err)
	}

	var data storeData
	if err := json.Unmarshal(content, &data); err != nil {
		return nil, fmt.Errorf("parse store file: %w", err)
	}

	if data.Tasks == nil {
		data.Tasks = []domain.Task{}
	}

	return &data, nil
}

func (s *Store) write(data *storeData) error {
	content, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store data: %w", err)
	}

	// Write to temp file first, then rename for atomicity
	tmpPath := s.path + ".tmp"
	if err := os.WriteFile(tmpPath, content, 0o600); err != nil {
		return fmt.Errorf("write temp file: %w", err)
	}

	if err := os.Rename(tmpPath, s.path); err != nil {
		_ = os.Remove(tmpPath) // Clean up
		return fmt.Errorf("rename temp file: %w", err)
	}

	return nil
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)
