// Package view renders the task list.
package view

import (
	"fmt"
	"io"
	"strings"

	"tido/internal/task"
)

// Placeholder is the single line shown instead of an empty list.
const Placeholder = "no tasks yet"

// Renderer rebuilds the visual task list from scratch. Rendering the
// same list twice produces the same output; there is no diffing.
type Renderer interface {
	Render(tasks []task.Task)
}

// TextRenderer writes the list as plain text, one numbered line per
// task, in list order.
type TextRenderer struct {
	w       io.Writer
	showIDs bool
}

// NewTextRenderer creates a renderer writing to w.
func NewTextRenderer(w io.Writer) *TextRenderer {
	return &TextRenderer{w: w}
}

// ShowIDs toggles an identifier column after each description.
func (r *TextRenderer) ShowIDs(on bool) {
	r.showIDs = on
}

// Render implements Renderer. An empty list renders exactly one
// placeholder line and zero task lines.
func (r *TextRenderer) Render(tasks []task.Task) {
	if len(tasks) == 0 {
		fmt.Fprintln(r.w, Placeholder)
		return
	}
	for i, t := range tasks {
		if r.showIDs {
			fmt.Fprintf(r.w, "%4d  %s  (%s)\n", i+1, normalizeDescription(t.Description), t.ID)
		} else {
			fmt.Fprintf(r.w, "%4d  %s\n", i+1, normalizeDescription(t.Description))
		}
	}
}

// normalizeDescription normalizes a description for display.
// - Empty or whitespace-only descriptions become "(untitled)"
// - Newlines are replaced with spaces
func normalizeDescription(description string) string {
	description = strings.ReplaceAll(description, "\r", " ")
	description = strings.ReplaceAll(description, "\n", " ")

	if strings.TrimSpace(description) == "" {
		return "(untitled)"
	}
	return description
}
