// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"sync"

	"tido/internal/task"
)

// FakeStore is an in-memory implementation of store.Store for testing.
type FakeStore struct {
	mu    sync.RWMutex
	tasks []task.Task

	// Saves counts the number of Save calls.
	Saves int

	// Error injection for testing
	LoadErr  error
	SaveErr  error
	CloseErr error
}

// NewFakeStore creates an empty FakeStore.
func NewFakeStore() *FakeStore {
	return &FakeStore{}
}

// Seed replaces the persisted list.
func (f *FakeStore) Seed(tasks []task.Task) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]task.Task(nil), tasks...)
}

// Saved returns a copy of the last persisted list.
func (f *FakeStore) Saved() []task.Task {
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]task.Task(nil), f.tasks...)
}

// Load implements store.Store.
func (f *FakeStore) Load(ctx context.Context) ([]task.Task, error) {
	if f.LoadErr != nil {
		return nil, f.LoadErr
	}
	f.mu.RLock()
	defer f.mu.RUnlock()
	return append([]task.Task(nil), f.tasks...), nil
}

// Save implements store.Store.
func (f *FakeStore) Save(ctx context.Context, tasks []task.Task) error {
	if f.SaveErr != nil {
		return f.SaveErr
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append([]task.Task(nil), tasks...)
	f.Saves++
	return nil
}

// Close implements store.Store.
func (f *FakeStore) Close() error { return f.CloseErr }
