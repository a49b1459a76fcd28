// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"flag"
	"io"

	"tido/internal/config"
	"tido/internal/manager"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsStore returns true if the command operates on the task
	// list. Commands like help and version return false.
	NeedsStore() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (data dir, store settings).
	// mgr is nil if NeedsStore() returns false, otherwise it has
	// already loaded the persisted list.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, mgr *manager.Manager, args []string, out, errOut io.Writer) int
}
