package commands

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"tido/internal/task"
)

// ErrRefRequired indicates no task reference was provided.
var ErrRefRequired = errors.New("task reference required")

// ResolveRef resolves a task reference against the current list.
//
// Resolution rules:
//  1. All digits -> 1-based list position (out of range is an error)
//  2. Exact identifier match
//  3. Unique identifier prefix (ambiguous prefixes are an error)
//  4. Otherwise -> error: task not found
func ResolveRef(tasks []task.Task, ref string) (task.Task, error) {
	ref = strings.TrimSpace(ref)
	if ref == "" {
		return task.Task{}, ErrRefRequired
	}

	// Case 1: All digits -> positional reference
	if isAllDigits(ref) {
		num, err := strconv.Atoi(ref)
		if err != nil || num < 1 || num > len(tasks) {
			return task.Task{}, fmt.Errorf("task number out of range: %s", ref)
		}
		return tasks[num-1], nil
	}

	// Case 2: Exact identifier match
	for _, t := range tasks {
		if t.ID == ref {
			return t, nil
		}
	}

	// Case 3: Unique identifier prefix
	var matches []task.Task
	for _, t := range tasks {
		if strings.HasPrefix(t.ID, ref) {
			matches = append(matches, t)
		}
	}
	switch len(matches) {
	case 0:
		return task.Task{}, fmt.Errorf("task not found: %s", ref)
	case 1:
		return matches[0], nil
	default:
		return task.Task{}, fmt.Errorf("ambiguous task reference: %s", ref)
	}
}

// isAllDigits returns true if s consists only of ASCII digits and is non-empty.
func isAllDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if !unicode.IsDigit(r) {
			return false
		}
	}
	return true
}
