package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"tido/internal/config"
	"tido/internal/exitcode"
	"tido/internal/manager"
)

func init() {
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string      { return "help" }
func (c *HelpCmd) Aliases() []string { return nil }
func (c *HelpCmd) Synopsis() string  { return "Print usage" }
func (c *HelpCmd) Usage() string     { return "tido help" }
func (c *HelpCmd) NeedsStore() bool  { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  tido                             List tasks
  tido list [common flags] [--ids] List tasks, optionally with identifiers
  tido add [common flags] <description...>
  tido edit [common flags] <ref> [new description...]
  tido rm [common flags] [--force] <ref>
  tido ui [common flags]           Open the interactive list
  tido help
  tido version

A <ref> is a 1-based list position or a task identifier (a unique
prefix is enough).

Common flags:
  --config <dir>   Override data directory
  --quiet          Suppress the list output after a change
  --debug          Print debug logs to stderr

Environment:
  TIDO_STORE       Storage backend: file (default) or redis
  TIDO_REDIS_ADDR  Redis address when TIDO_STORE=redis
`
