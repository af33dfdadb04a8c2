// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion. An out-of-range index is
	// reported to the user but still exits with Success.
	Success = 0

	// UserError indicates a user error (unknown command, bad or missing args).
	UserError = 1

	// ConfigError indicates the config file could not be read.
	ConfigError = 2

	// StorageError indicates the task file could not be written.
	StorageError = 3
)
