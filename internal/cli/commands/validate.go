package commands

import (
	"fmt"

	"github.com/spf13/cobra"

	"csvsift/pkg/config"
)

// NewValidateCommand creates the validate command.
func NewValidateCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <config-file>",
		Short: "Validate a run configuration file",
		Long: `Validate a YAML run configuration file without processing any archives.

Checks the same things a find or sample run would before opening a file:
folders present, delimiters normalizable, the date selection complete and
parseable, and any output column spec sane.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load(args[0])
			if err != nil {
				return err
			}
			if err := config.Validate(cfg); err != nil {
				return fmt.Errorf("%s: %w", args[0], err)
			}

			fmt.Fprintf(cmd.OutOrStdout(), "%s is valid: %d day(s) selected in %s\n",
				args[0], len(cfg.Dates()), cfg.FileFolder)
			return nil
		},
	}
}
