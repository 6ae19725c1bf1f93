// Package redisstore provides a Redis implementation of TaskRepository.
//
// Tasks are stored as JSON in one hash keyed by id; a list beside it keeps
// creation order.
package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/runoshun/todoboard/internal/domain"
)

// DefaultPrefix namespaces the keys used by the store.
const DefaultPrefix = "todoboard"

// maxTxRetries bounds optimistic transaction retries on concurrent writes.
const maxTxRetries = 10

var errTaskExists = errors.New("task already exists")

// Store implements domain.TaskRepository on Redis.
type Store struct {
	client   *redis.Client
	tasksKey string
	orderKey string
}

// Ensure Store implements TaskRepository.
var _ domain.TaskRepository = (*Store)(nil)

// New connects to the Redis server at url and verifies the connection.
func New(ctx context.Context, url, prefix string) (*Store, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("invalid Redis URL: %w", err)
	}

	client := redis.NewClient(opt)

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	return NewWithClient(client, prefix), nil
}

// NewWithClient wraps an existing client. An empty prefix uses DefaultPrefix.
func NewWithClient(client *redis.Client, prefix string) *Store {
	if prefix == "" {
		prefix = DefaultPrefix
	}
	return &Store{
		client:   client,
		tasksKey: prefix + ":tasks",
		orderKey: prefix + ":order",
	}
}

// List returns every task in creation order.
func (s *Store) List(ctx context.Context) ([]domain.Task, error) {
	ids, err := s.client.LRange(ctx, s.orderKey, 0, -1).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read task order: %w", err)
	}
	tasks := make([]domain.Task, 0, len(ids))
	if len(ids) == 0 {
		return tasks, nil
	}

	values, err := s.client.HMGet(ctx, s.tasksKey, ids...).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to read tasks: %w", err)
	}
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue // Removed between LRANGE and HMGET
		}
		task, err := decode(raw)
		if err != nil {
			return nil, fmt.Errorf("task %s: %w", ids[i], err)
		}
		tasks = append(tasks, task)
	}
	return tasks, nil
}

// Get retrieves a task by id.
func (s *Store) Get(ctx context.Context, id string) (domain.Task, error) {
	raw, err := s.client.HGet(ctx, s.tasksKey, id).Result()
	if errors.Is(err, redis.Nil) {
		return domain.Task{}, fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	if err != nil {
		return domain.Task{}, fmt.Errorf("failed to read task: %w", err)
	}
	return decode(raw)
}

// Create stores a new task and appends its id to the order list. The
// existence check and both writes run in one optimistic transaction.
func (s *Store) Create(ctx context.Context, task domain.Task) error {
	if task.ID == "" {
		return domain.ErrEmptyID
	}
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.tasksKey, task.ID).Result()
		if err != nil {
			return err
		}
		if exists {
			return fmt.Errorf("%w: %s", errTaskExists, task.ID)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.tasksKey, task.ID, data)
			pipe.RPush(ctx, s.orderKey, task.ID)
			return nil
		})
		return err
	}

	err = s.watch(ctx, txf)
	if err != nil && !errors.Is(err, errTaskExists) {
		return fmt.Errorf("failed to store task: %w", err)
	}
	return err
}

// Update replaces an existing task. The existence check and the write run
// in one optimistic transaction.
func (s *Store) Update(ctx context.Context, task domain.Task) error {
	data, err := json.Marshal(task)
	if err != nil {
		return fmt.Errorf("failed to marshal task: %w", err)
	}

	txf := func(tx *redis.Tx) error {
		exists, err := tx.HExists(ctx, s.tasksKey, task.ID).Result()
		if err != nil {
			return err
		}
		if !exists {
			return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, task.ID)
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.HSet(ctx, s.tasksKey, task.ID, data)
			return nil
		})
		return err
	}

	err = s.watch(ctx, txf)
	if err != nil && !errors.Is(err, domain.ErrTaskNotFound) {
		return fmt.Errorf("failed to update task: %w", err)
	}
	return err
}

// watch runs txf with the tasks hash watched, retrying when a concurrent
// writer invalidates the transaction.
func (s *Store) watch(ctx context.Context, txf func(*redis.Tx) error) error {
	var err error
	for range maxTxRetries {
		err = s.client.Watch(ctx, txf, s.tasksKey)
		if !errors.Is(err, redis.TxFailedErr) {
			return err
		}
	}
	return err
}

// Delete removes a task and its order entry atomically.
func (s *Store) Delete(ctx context.Context, id string) error {
	var removed *redis.IntCmd
	_, err := s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		removed = pipe.HDel(ctx, s.tasksKey, id)
		pipe.LRem(ctx, s.orderKey, 0, id)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if removed.Val() == 0 {
		return fmt.Errorf("%w: %s", domain.ErrTaskNotFound, id)
	}
	return nil
}

// Close closes the underlying client.
func (s *Store) Close() error {
	return s.client.Close()
}

func decode(raw string) (domain.Task, error) {
	var task domain.Task
	if err := json.Unmarshal([]byte(raw), &task); err != nil {
		return domain.Task{}, fmt.Errorf("failed to unmarshal task: %w", err)
	}
	return task, nil
}
