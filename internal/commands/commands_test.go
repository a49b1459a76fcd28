package commands_test

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"tido/internal/commands"
	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
	"tido/internal/prompt"
	"tido/internal/task"
	"tido/internal/testutil"
	"tido/internal/view"
)

// runCommand is a helper to run a command over a FakeStore, feeding
// the dialogs from input.
func runCommand(t *testing.T, cmd commands.Command, st *testutil.FakeStore, input string, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:   t.TempDir(),
		Quiet: quiet,
	}

	ctx := context.Background()

	var mgr *manager.Manager
	if st != nil {
		renderTarget := io.Writer(&outBuf)
		if quiet {
			renderTarget = io.Discard
		}
		prompter := prompt.NewTerminal(strings.NewReader(input), &outBuf, &errBuf)
		mgr = manager.New(st, view.NewTextRenderer(renderTarget), prompter, zerolog.Nop())
		if err := mgr.Init(ctx); err != nil {
			t.Fatalf("Init failed: %v", err)
		}
	}

	code = cmd.Run(ctx, cfg, mgr, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seededStore(tasks ...task.Task) *testutil.FakeStore {
	st := testutil.NewFakeStore()
	st.Seed(tasks)
	return st
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, "", nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "tido 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, "", nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if !strings.Contains(stdout, "Usage:") {
		t.Error("help output should contain 'Usage:'")
	}
}

// Tests for list command
func TestListCommand_Empty(t *testing.T) {
	cmd := &commands.ListCmd{}
	stdout, stderr, code := runCommand(t, cmd, testutil.NewFakeStore(), "", nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "no tasks yet\n" {
		t.Errorf("expected placeholder, got %q", stdout)
	}
}

func TestListCommand_WithTasks(t *testing.T) {
	st := seededStore(
		task.NewWithID("a", "Buy milk"),
		task.NewWithID("b", "Buy eggs"),
	)

	cmd := &commands.ListCmd{}
	stdout, _, code := runCommand(t, cmd, st, "", nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  Buy milk\n   2  Buy eggs\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_ShowIDs(t *testing.T) {
	st := seededStore(task.NewWithID("abc-123", "Buy milk"))

	cmd := &commands.ListCmd{}
	cmd.SetShowIDs(true)
	stdout, _, code := runCommand(t, cmd, st, "", nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  Buy milk  (abc-123)\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
}

func TestListCommand_UnexpectedArgument(t *testing.T) {
	cmd := &commands.ListCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeStore(), "", []string{"extra"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: unexpected argument: extra\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

// Tests for add command
func TestAddCommand(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, "", []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	// The success output is the re-rendered list.
	if stdout != "   1  Buy milk\n" {
		t.Errorf("expected re-rendered list, got %q", stdout)
	}

	saved := st.Saved()
	if len(saved) != 1 || saved[0].Description != "Buy milk" {
		t.Errorf("expected task persisted, got %+v", saved)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	st := testutil.NewFakeStore()

	cmd := &commands.AddCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, "", []string{"Buy milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if st.Saves != 1 {
		t.Errorf("expected the mutation persisted regardless of quiet, got %d saves", st.Saves)
	}
}

func TestAddCommand_EmptyDescription(t *testing.T) {
	for _, args := range [][]string{nil, {"  ", "\t"}} {
		st := testutil.NewFakeStore()

		cmd := &commands.AddCmd{}
		_, stderr, code := runCommand(t, cmd, st, "", args, false)

		if code != exitcode.UserError {
			t.Errorf("args %v: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if stderr != "error: task description cannot be empty\n" {
			t.Errorf("args %v: unexpected stderr: %q", args, stderr)
		}
		if st.Saves != 0 {
			t.Errorf("args %v: expected no persist", args)
		}
	}
}

// Tests for rm command
func TestRmCommand_Confirmed(t *testing.T) {
	st := seededStore(
		task.NewWithID("a", "first"),
		task.NewWithID("b", "second"),
	)

	cmd := &commands.RmCmd{}
	stdout, stderr, code := runCommand(t, cmd, st, "y\n", []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	expected := "Delete this task? [y/N]: " + "   1  second\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if len(st.Saved()) != 1 {
		t.Errorf("expected one task left, got %+v", st.Saved())
	}
}

func TestRmCommand_Declined(t *testing.T) {
	st := seededStore(task.NewWithID("a", "first"))

	cmd := &commands.RmCmd{}
	_, _, code := runCommand(t, cmd, st, "n\n", []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if st.Saves != 0 {
		t.Errorf("expected no persist after declined confirmation, got %d saves", st.Saves)
	}
}

func TestRmCommand_Force(t *testing.T) {
	st := seededStore(task.NewWithID("a", "first"))

	cmd := &commands.RmCmd{}
	cmd.SetForce(true)
	stdout, _, code := runCommand(t, cmd, st, "", []string{"a"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if strings.Contains(stdout, "[y/N]") {
		t.Error("expected no confirmation dialog with --force")
	}
	if len(st.Saved()) != 0 {
		t.Errorf("expected empty list, got %+v", st.Saved())
	}
}

func TestRmCommand_RefRequired(t *testing.T) {
	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeStore(), "", nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}

func TestRmCommand_NotFound(t *testing.T) {
	st := seededStore(task.NewWithID("a", "first"))

	cmd := &commands.RmCmd{}
	_, stderr, code := runCommand(t, cmd, st, "y\n", []string{"zzz"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: zzz\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	if st.Saves != 0 {
		t.Error("expected no persist for unresolvable ref")
	}
}

// Tests for edit command
func TestEditCommand_InlineText(t *testing.T) {
	st := seededStore(
		task.NewWithID("a", "old"),
		task.NewWithID("b", "other"),
	)

	cmd := &commands.EditCmd{}
	stdout, _, code := runCommand(t, cmd, st, "", []string{"1", "new", "text"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	expected := "   1  new text\n   2  other\n"
	if stdout != expected {
		t.Errorf("expected %q, got %q", expected, stdout)
	}
	if st.Saved()[0].Description != "new text" {
		t.Errorf("expected edit persisted, got %+v", st.Saved())
	}
}

func TestEditCommand_Prompted(t *testing.T) {
	st := seededStore(task.NewWithID("a", "old"))

	cmd := &commands.EditCmd{}
	stdout, _, code := runCommand(t, cmd, st, "brand new\n", []string{"a"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "New description [old]: ") {
		t.Errorf("expected prompt showing current text, got %q", stdout)
	}
	if st.Saved()[0].Description != "brand new" {
		t.Errorf("expected edit persisted, got %+v", st.Saved())
	}
}

func TestEditCommand_EmptyText(t *testing.T) {
	st := seededStore(task.NewWithID("a", "old"))

	cmd := &commands.EditCmd{}
	_, stderr, code := runCommand(t, cmd, st, "", []string{"a", "   "}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task description cannot be empty\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
	if st.Saved()[0].Description != "old" {
		t.Errorf("expected record unchanged, got %+v", st.Saved())
	}
}

func TestEditCommand_RefRequired(t *testing.T) {
	cmd := &commands.EditCmd{}
	_, stderr, code := runCommand(t, cmd, testutil.NewFakeStore(), "", nil, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task reference required\n" {
		t.Errorf("unexpected stderr: %q", stderr)
	}
}
