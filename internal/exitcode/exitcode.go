// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty description, not found).
	UserError = 1

	// ConfigError indicates a configuration error.
	ConfigError = 2

	// StorageError indicates a persistence error (unreachable or corrupt store).
	StorageError = 3
)
