// Package tui implements the interactive terminal surface for the
// task list.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"tido/internal/manager"
	"tido/internal/task"
	"tido/internal/view"
)

type mode int

const (
	modeList mode = iota
	modeAdd
	modeEdit
	modeConfirmDelete
)

var (
	titleStyle       = lipgloss.NewStyle().Bold(true).MarginBottom(1)
	selectedStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("212"))
	placeholderStyle = lipgloss.NewStyle().Faint(true).Italic(true)
	statusStyle      = lipgloss.NewStyle().Faint(true).MarginTop(1)
)

// Model is the Bubble Tea model for the task list surface. The view
// is rebuilt from the manager's list on every frame; the manager
// still persists synchronously on every mutation.
type Model struct {
	mgr     *manager.Manager
	tasks   []task.Task
	cursor  int
	mode    mode
	input   textinput.Model
	status  string
	editID  string
	pending *task.Task
}

// Run opens the interactive surface over the given manager. The
// surface redraws itself, so the manager's render target is discarded
// for the duration.
func Run(mgr *manager.Manager) error {
	mgr.SetRenderer(view.NewTextRenderer(io.Discard))

	program := tea.NewProgram(NewModel(mgr))
	_, err := program.Run()
	return err
}

// NewModel creates the initial model from the manager's current list.
func NewModel(mgr *manager.Manager) Model {
	ti := textinput.New()
	ti.Placeholder = "Task description"
	ti.CharLimit = 256
	ti.Width = 40

	tasks := mgr.Tasks()
	return Model{
		mgr:    mgr,
		tasks:  tasks,
		cursor: clampCursor(0, len(tasks)),
		input:  ti,
		status: "Press 'a' to add, 'e' to edit, 'd' to delete, 'q' to quit.",
	}
}

func (m Model) Init() tea.Cmd {
	return nil
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch m.mode {
		case modeAdd:
			return m.updateAddMode(msg)
		case modeEdit:
			return m.updateEditMode(msg)
		case modeConfirmDelete:
			return m.updateDeleteConfirm(msg.String())
		}
		return m.updateListMode(msg.String())
	case tea.WindowSizeMsg:
		m.input.Width = msg.Width - 10
	}
	return m, nil
}

func (m Model) updateListMode(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "ctrl+c", "q":
		return m, tea.Quit
	case "down", "j":
		if len(m.tasks) > 0 {
			m.cursor = clampCursor(m.cursor+1, len(m.tasks))
		}
	case "up", "k":
		if len(m.tasks) > 0 {
			m.cursor = clampCursor(m.cursor-1, len(m.tasks))
		}
	case "a":
		m.mode = modeAdd
		m.input.SetValue("")
		m.input.Focus()
		m.status = "Enter adds, Esc cancels"
	case "e":
		if len(m.tasks) == 0 {
			return m, nil
		}
		t := m.tasks[m.cursor]
		m.mode = modeEdit
		m.editID = t.ID
		m.input.SetValue(t.Description)
		m.input.CursorEnd()
		m.input.Focus()
		m.status = "Enter saves, Esc cancels"
	case "d":
		if len(m.tasks) == 0 {
			return m, nil
		}
		t := m.tasks[m.cursor]
		m.mode = modeConfirmDelete
		m.pending = &t
		m.status = "y confirms, n cancels"
	}
	return m, nil
}

func (m Model) updateAddMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		_, err := m.mgr.Add(context.Background(), m.input.Value())
		if errors.Is(err, manager.ErrEmptyDescription) {
			m.status = "Task description cannot be empty"
			return m, nil
		}
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		// Stay in add mode with a cleared input, like the input box
		// keeping focus after a submit.
		m.refresh()
		m.cursor = clampCursor(len(m.tasks)-1, len(m.tasks))
		m.input.SetValue("")
		m.status = "Added task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateEditMode(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.mode = modeList
		m.input.Blur()
		m.status = "Cancelled"
		return m, nil
	case "enter":
		err := m.mgr.Edit(context.Background(), m.editID, m.input.Value())
		if errors.Is(err, manager.ErrEmptyDescription) {
			m.status = "Task description cannot be empty"
			return m, nil
		}
		if err != nil {
			m.status = fmt.Sprintf("save failed: %v", err)
			return m, nil
		}
		m.refresh()
		m.mode = modeList
		m.input.Blur()
		m.status = "Updated task"
		return m, nil
	default:
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
}

func (m Model) updateDeleteConfirm(key string) (tea.Model, tea.Cmd) {
	switch key {
	case "y":
		if err := m.mgr.Delete(context.Background(), m.pending.ID); err != nil {
			m.status = fmt.Sprintf("delete failed: %v", err)
		} else {
			m.status = "Deleted task"
		}
		m.pending = nil
		m.mode = modeList
		m.refresh()
	case "n", "esc":
		m.pending = nil
		m.mode = modeList
		m.status = "Cancelled"
	}
	return m, nil
}

// refresh rebuilds the visible list from the manager's state.
func (m *Model) refresh() {
	m.tasks = m.mgr.Tasks()
	m.cursor = clampCursor(m.cursor, len(m.tasks))
}

func (m Model) View() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render("tido"))
	b.WriteString("\n")

	if len(m.tasks) == 0 {
		b.WriteString(placeholderStyle.Render(view.Placeholder))
		b.WriteString("\n")
	} else {
		for i, t := range m.tasks {
			line := fmt.Sprintf("  %s", t.Description)
			if i == m.cursor && m.mode == modeList {
				line = selectedStyle.Render(fmt.Sprintf("> %s", t.Description))
			}
			b.WriteString(line)
			b.WriteString("\n")
		}
	}

	switch m.mode {
	case modeAdd:
		b.WriteString("\nAdd: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeEdit:
		b.WriteString("\nEdit: ")
		b.WriteString(m.input.View())
		b.WriteString("\n")
	case modeConfirmDelete:
		b.WriteString(fmt.Sprintf("\nDelete %q? (y/n)\n", m.pending.Description))
	}

	b.WriteString(statusStyle.Render(m.status))
	b.WriteString("\n")
	return b.String()
}

func clampCursor(cursor, n int) int {
	if n == 0 {
		return 0
	}
	if cursor < 0 {
		return 0
	}
	if cursor >= n {
		return n - 1
	}
	return cursor
}
