package commands_test

import (
	"errors"
	"strings"
	"testing"

	"tido/internal/commands"
	"tido/internal/task"
)

func refTasks() []task.Task {
	return []task.Task{
		task.NewWithID("aaa-111", "first"),
		task.NewWithID("aab-222", "second"),
		task.NewWithID("bcd-333", "third"),
	}
}

func TestResolveRef_Position(t *testing.T) {
	got, err := commands.ResolveRef(refTasks(), "2")
	if err != nil {
		t.Fatalf("ResolveRef failed: %v", err)
	}
	if got.ID != "aab-222" {
		t.Errorf("expected aab-222, got %s", got.ID)
	}
}

func TestResolveRef_PositionOutOfRange(t *testing.T) {
	for _, ref := range []string{"0", "4", "99"} {
		_, err := commands.ResolveRef(refTasks(), ref)
		if err == nil || !strings.Contains(err.Error(), "out of range") {
			t.Errorf("ResolveRef(%q): expected out of range error, got %v", ref, err)
		}
	}
}

func TestResolveRef_ExactID(t *testing.T) {
	got, err := commands.ResolveRef(refTasks(), "bcd-333")
	if err != nil {
		t.Fatalf("ResolveRef failed: %v", err)
	}
	if got.Description != "third" {
		t.Errorf("expected third, got %s", got.Description)
	}
}

func TestResolveRef_UniquePrefix(t *testing.T) {
	got, err := commands.ResolveRef(refTasks(), "bc")
	if err != nil {
		t.Fatalf("ResolveRef failed: %v", err)
	}
	if got.ID != "bcd-333" {
		t.Errorf("expected bcd-333, got %s", got.ID)
	}
}

func TestResolveRef_AmbiguousPrefix(t *testing.T) {
	_, err := commands.ResolveRef(refTasks(), "aa")
	if err == nil || !strings.Contains(err.Error(), "ambiguous") {
		t.Errorf("expected ambiguous error, got %v", err)
	}
}

func TestResolveRef_NotFound(t *testing.T) {
	_, err := commands.ResolveRef(refTasks(), "zzz")
	if err == nil || !strings.Contains(err.Error(), "not found") {
		t.Errorf("expected not found error, got %v", err)
	}
}

func TestResolveRef_Empty(t *testing.T) {
	_, err := commands.ResolveRef(refTasks(), "   ")
	if !errors.Is(err, commands.ErrRefRequired) {
		t.Errorf("expected ErrRefRequired, got %v", err)
	}
}

func TestResolveRef_EmptyList(t *testing.T) {
	_, err := commands.ResolveRef(nil, "1")
	if err == nil {
		t.Error("expected error resolving against empty list")
	}
}
