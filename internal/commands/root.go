package commands

import (
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/buildinfo"
)

// NewRootCommand creates the root CLI command with all subcommands registered.
func NewRootCommand() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:     "budgetreport",
		Short:   "Monthly budget vs actual reports",
		Version: buildinfo.String(),
		CompletionOptions: cobra.CompletionOptions{
			DisableDefaultCmd: true,
		},
		SilenceUsage: true,
	}

	rootCmd.AddCommand(newInitCommand())
	rootCmd.AddCommand(newReportCommand())
	rootCmd.AddCommand(newBudgetCommand())
	rootCmd.AddCommand(newTxnCommand())
	rootCmd.AddCommand(newLogCommand())

	return rootCmd
}
