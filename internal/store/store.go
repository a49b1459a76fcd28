// Package store persists the task list as a single serialized value
// in a key-value store.
package store

import (
	"context"
	"errors"
	"fmt"

	"tido/internal/config"
	"tido/internal/task"
)

// ErrCorrupt indicates persisted data that cannot be deserialized.
var ErrCorrupt = errors.New("corrupt task data")

// Store loads and saves the full task list. There are no partial
// updates; every save rewrites the entire list under one key.
type Store interface {
	// Load returns the persisted task list in insertion order.
	// A store with no persisted data returns an empty list, not an error.
	Load(ctx context.Context) ([]task.Task, error)

	// Save persists the entire task list, replacing any previous value.
	Save(ctx context.Context, tasks []task.Task) error

	// Close releases any resources held by the store.
	Close() error
}

// Open creates the store selected by the configuration.
func Open(ctx context.Context, cfg *config.Config) (Store, error) {
	switch cfg.Store.Backend {
	case config.BackendFile:
		return NewFileStore(cfg.TasksPath()), nil
	case config.BackendRedis:
		return OpenRedisStore(ctx, cfg.Store)
	default:
		return nil, fmt.Errorf("unknown store backend: %s", cfg.Store.Backend)
	}
}
