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
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string      { return "add" }
func (c *AddCmd) Aliases() []string { return []string{"new"} }
func (c *AddCmd) Synopsis() string  { return "Add a task" }
func (c *AddCmd) Usage() string     { return "tido add <description...>" }
func (c *AddCmd) NeedsStore() bool  { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	description := strings.Join(args, " ")

	// The manager trims, validates, persists and re-renders; the
	// empty-description alert has already reached the user when the
	// sentinel comes back.
	if _, err := mgr.Add(ctx, description); err != nil {
		if errors.Is(err, manager.ErrEmptyDescription) {
			return exitcode.UserError
		}
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
