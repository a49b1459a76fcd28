// Package manager owns the task list and its externally observable
// representations. Every mutation is synchronously persisted and
// followed by a full re-render, so the rendered view and the
// persisted state can never diverge from the in-memory list.
package manager

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"

	"tido/internal/prompt"
	"tido/internal/store"
	"tido/internal/task"
	"tido/internal/view"
)

// ErrEmptyDescription is returned when an add or edit is abandoned
// because the description is empty after trimming. The user has
// already been notified via the prompter when this is returned.
var ErrEmptyDescription = errors.New("empty task description")

// Action identifies a per-item affordance.
type Action string

const (
	ActionEdit   Action = "edit"
	ActionDelete Action = "delete"
)

// Manager is the single authority over the task list. It is
// constructed once per process with its dependencies injected and
// holds all mutable state as fields.
type Manager struct {
	store    store.Store
	renderer view.Renderer
	prompter prompt.Prompter
	log      zerolog.Logger
	tasks    []task.Task
}

// New creates a Manager. The list is empty until Init loads the
// persisted state.
func New(st store.Store, r view.Renderer, p prompt.Prompter, log zerolog.Logger) *Manager {
	return &Manager{
		store:    st,
		renderer: r,
		prompter: p,
		log:      log,
	}
}

// Init loads the persisted list. A store with no data yields an empty
// list; data that cannot be deserialized is a startup error.
func (m *Manager) Init(ctx context.Context) error {
	tasks, err := m.store.Load(ctx)
	if err != nil {
		return fmt.Errorf("load tasks: %w", err)
	}
	m.tasks = tasks
	m.log.Debug().Int("count", len(tasks)).Msg("loaded task list")
	return nil
}

// Tasks returns a copy of the current list in insertion order.
func (m *Manager) Tasks() []task.Task {
	out := make([]task.Task, len(m.tasks))
	copy(out, m.tasks)
	return out
}

// Add appends a new task with a fresh identifier at the tail. The
// description is trimmed first; an empty result alerts the user and
// returns ErrEmptyDescription without mutating anything.
func (m *Manager) Add(ctx context.Context, description string) (task.Task, error) {
	description = strings.TrimSpace(description)
	if description == "" {
		m.prompter.Alert("task description cannot be empty")
		return task.Task{}, ErrEmptyDescription
	}

	t := task.New(description)
	m.tasks = append(m.tasks, t)
	if err := m.persist(ctx); err != nil {
		return task.Task{}, err
	}
	m.Render()
	return t, nil
}

// Delete removes the task with the given id. An unmatched id removes
// nothing, but the list is persisted and re-rendered regardless.
func (m *Manager) Delete(ctx context.Context, id string) error {
	kept := make([]task.Task, 0, len(m.tasks))
	for _, t := range m.tasks {
		if t.ID != id {
			kept = append(kept, t)
		}
	}
	m.tasks = kept

	if err := m.persist(ctx); err != nil {
		return err
	}
	m.Render()
	return nil
}

// Edit replaces the description of the task with the given id. An
// unmatched id is a silent no-op with no side effects. An empty
// trimmed description alerts the user and leaves the record unchanged.
func (m *Manager) Edit(ctx context.Context, id, description string) error {
	i := m.find(id)
	if i < 0 {
		return nil
	}

	description = strings.TrimSpace(description)
	if description == "" {
		m.prompter.Alert("task description cannot be empty")
		return ErrEmptyDescription
	}

	m.tasks[i].Description = description
	if err := m.persist(ctx); err != nil {
		return err
	}
	m.Render()
	return nil
}

// Dispatch maps a per-item affordance to the matching operation,
// collecting the user's confirmation or replacement text first.
func (m *Manager) Dispatch(ctx context.Context, action Action, id string) error {
	switch action {
	case ActionDelete:
		if !m.prompter.Confirm("Delete this task?") {
			return nil
		}
		return m.Delete(ctx, id)
	case ActionEdit:
		i := m.find(id)
		if i < 0 {
			return nil
		}
		text, ok := m.prompter.Input("New description", m.tasks[i].Description)
		if !ok {
			return nil
		}
		return m.Edit(ctx, id, text)
	default:
		return fmt.Errorf("unknown action: %s", action)
	}
}

// Render rebuilds the visual list from the in-memory sequence.
func (m *Manager) Render() {
	m.renderer.Render(m.Tasks())
}

// SetRenderer replaces the render target. Interactive surfaces that
// redraw themselves every frame swap in a discarding renderer.
func (m *Manager) SetRenderer(r view.Renderer) {
	m.renderer = r
}

func (m *Manager) persist(ctx context.Context) error {
	if err := m.store.Save(ctx, m.tasks); err != nil {
		return fmt.Errorf("save tasks: %w", err)
	}
	m.log.Debug().Int("count", len(m.tasks)).Msg("persisted task list")
	return nil
}

// find returns the index of the task with the given id, or -1.
func (m *Manager) find(id string) int {
	for i, t := range m.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
