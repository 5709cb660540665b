// Package cmd provides the autocomplete CLI's commands, grounded on
// Aman-CERP-amanmcp's cmd/amanmcp/cmd package layout: a NewRootCmd
// constructor, one file per subcommand, and an Execute entry point.
package cmd

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"
)

// Exit codes spec.md §6's CLI subsection names.
const (
	exitSuccess    = 0
	exitUsageError = 1
	exitIOError    = 2
)

var cliLog = slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelInfo}))

// NewRootCmd builds the autocomplete root command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "autocomplete",
		Short:         "Build and query a top-k query-completion index",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newBuildCmd())
	root.AddCommand(newQueryCmd())
	root.AddCommand(newNormalizeCmd())
	return root
}

// Execute runs the root command and returns the process exit code spec.md
// §6 specifies, rather than calling os.Exit itself, so main stays a single
// line.
func Execute() int {
	root := NewRootCmd()
	if err := root.Execute(); err != nil {
		cliLog.Error(err.Error())
		return classify(err)
	}
	return exitSuccess
}

// classify maps an error to spec.md §6's usage-error/I/O-error exit codes.
func classify(err error) int {
	var ue *usageError
	if errors.As(err, &ue) {
		return exitUsageError
	}
	return exitIOError
}

// usageError marks an error as a CLI usage mistake (exit 1) rather than a
// build/query I/O failure (exit 2).
type usageError struct{ err error }

func (e *usageError) Error() string { return e.err.Error() }
func (e *usageError) Unwrap() error { return e.err }

func newUsageError(format string, args ...any) error {
	return &usageError{err: fmt.Errorf(format, args...)}
}
