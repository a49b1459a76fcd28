package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"strings"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
)

func init() {
	Register(&EditCmd{})
}

// EditCmd implements the edit command.
type EditCmd struct{}

func (c *EditCmd) Name() string      { return "edit" }
func (c *EditCmd) Aliases() []string { return nil }
func (c *EditCmd) Synopsis() string  { return "Edit a task's description" }
func (c *EditCmd) Usage() string     { return "tido edit <ref> [new description...]" }
func (c *EditCmd) NeedsStore() bool  { return true }

func (c *EditCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *EditCmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	t, err := ResolveRef(mgr.Tasks(), args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if len(args) > 1 {
		// Replacement text given on the command line.
		err = mgr.Edit(ctx, t.ID, strings.Join(args[1:], " "))
	} else {
		// No text: dispatch so the prompter collects it.
		err = mgr.Dispatch(ctx, manager.ActionEdit, t.ID)
	}
	if err != nil {
		if errors.Is(err, manager.ErrEmptyDescription) {
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
