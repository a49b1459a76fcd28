package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
)

func init() {
	Register(&RmCmd{})
}

// RmCmd implements the rm command.
type RmCmd struct {
	force bool
}

// SetForce skips the confirmation dialog (for testing).
func (c *RmCmd) SetForce(on bool) {
	c.force = on
}

func (c *RmCmd) Name() string      { return "rm" }
func (c *RmCmd) Aliases() []string { return []string{"del"} }
func (c *RmCmd) Synopsis() string  { return "Delete a task" }
func (c *RmCmd) Usage() string     { return "tido rm [--force] <ref>" }
func (c *RmCmd) NeedsStore() bool  { return true }

func (c *RmCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.force, "force", false, "")
	fs.BoolVar(&c.force, "f", false, "")
}

func (c *RmCmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(errOut, "error: task reference required")
		return exitcode.UserError
	}

	t, err := ResolveRef(mgr.Tasks(), args[0])
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if c.force {
		err = mgr.Delete(ctx, t.ID)
	} else {
		// Dispatch gates the removal on the confirmation dialog; a
		// declined confirmation is a successful no-op.
		err = mgr.Dispatch(ctx, manager.ActionDelete, t.ID)
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
