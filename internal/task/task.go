// Package task defines the task record.
package task

import "github.com/google/uuid"

// Task is a single to-do item. The Completed flag is carried and
// persisted but no operation currently toggles it.
type Task struct {
	ID          string `json:"id"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
}

// New creates a task with a freshly generated identifier.
// The description is stored verbatim; trimming and validation are the
// caller's responsibility.
func New(description string) Task {
	return NewWithID(uuid.NewString(), description)
}

// NewWithID creates a task with a caller-supplied identifier.
func NewWithID(id, description string) Task {
	return Task{ID: id, Description: description}
}
