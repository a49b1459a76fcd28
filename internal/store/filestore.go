package store

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"tido/internal/task"
)

// FileStore keeps the task list as one JSON file on disk, the local
// equivalent of a single key in a key-value store.
type FileStore struct {
	path string
}

// NewFileStore creates a store backed by the given file path.
// The file is not touched until the first Load or Save.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Load implements Store. A missing file means no tasks yet.
func (s *FileStore) Load(ctx context.Context) ([]task.Task, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var tasks []task.Task
	if err := json.Unmarshal(data, &tasks); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrCorrupt, s.path, err)
	}
	return tasks, nil
}

// Save implements Store. The parent directory is created on demand.
func (s *FileStore) Save(ctx context.Context, tasks []task.Task) error {
	if tasks == nil {
		tasks = []task.Task{}
	}
	data, err := json.MarshalIndent(tasks, "", "  ")
	if err != nil {
		return err
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0700); err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0600)
}

// Close implements Store.
func (s *FileStore) Close() error { return nil }
