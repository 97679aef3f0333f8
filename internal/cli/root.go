// Package cli provides the command-line interface for csvsift.
package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"csvsift/internal/cli/commands"
)

// Execute runs the root command and returns the exit code.
func Execute() int {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		// Print error to stderr (SilenceErrors prevents Cobra from doing this)
		_, _ = fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 2 // Usage or runtime error
	}
	return 0
}

// NewRootCommand creates the root cobra command.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "csvsift",
		Short: "Extract and downsample rows from zipped CSV drops",
		Long: `csvsift works over folders of dated, zipped CSV files.

It locates archives by composing a filename glob from a prefix, a date or
date range, a postfix and an extension, reads the CSV member of each
archive, and writes one consolidated CSV.

  find     keep rows whose column compares against a value
  sample   keep one row per minimum time interval, by timestamp column
  inspect  list matching archives and their columns

Archives are processed one at a time, in date order. Any read or parse
failure aborts the run; header drift between archives is only warned
about, and the first archive's header wins.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Add subcommands
	rootCmd.AddCommand(commands.NewFindCommand())
	rootCmd.AddCommand(commands.NewSampleCommand())
	rootCmd.AddCommand(commands.NewInspectCommand())
	rootCmd.AddCommand(commands.NewValidateCommand())
	rootCmd.AddCommand(commands.NewVersionCommand())

	return rootCmd
}
