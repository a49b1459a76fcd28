package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
	"tido/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the ui command, which opens the interactive list.
type UICmd struct{}

func (c *UICmd) Name() string      { return "ui" }
func (c *UICmd) Aliases() []string { return nil }
func (c *UICmd) Synopsis() string  { return "Open the interactive list" }
func (c *UICmd) Usage() string     { return "tido ui" }
func (c *UICmd) NeedsStore() bool  { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	if err := tui.Run(mgr); err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.StorageError
	}
	return exitcode.Success
}
