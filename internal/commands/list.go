package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
	"tido/internal/view"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
// Handles both `tido` (no args) and `tido list`.
type ListCmd struct {
	ids bool
}

// SetShowIDs toggles the identifier column (for testing).
func (c *ListCmd) SetShowIDs(on bool) {
	c.ids = on
}

func (c *ListCmd) Name() string      { return "list" }
func (c *ListCmd) Aliases() []string { return []string{"ls"} }
func (c *ListCmd) Synopsis() string  { return "List tasks" }
func (c *ListCmd) Usage() string     { return "tido list [--ids]" }
func (c *ListCmd) NeedsStore() bool  { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.ids, "ids", false, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	// The initial render: rebuild the full list onto stdout.
	r := view.NewTextRenderer(out)
	r.ShowIDs(c.ids)
	r.Render(mgr.Tasks())
	return exitcode.Success
}
