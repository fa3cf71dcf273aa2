package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/reportlog"
)

func newLogCommand() *cobra.Command {
	var dir string
	var last int

	cmd := &cobra.Command{
		Use:   "log",
		Short: "Show problems recorded by earlier report builds",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			entries, err := reportlog.Open(p.dir).Entries()
			if err != nil {
				return err
			}
			if len(entries) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No problems recorded.")
				return nil
			}
			if last > 0 && len(entries) > last {
				entries = entries[len(entries)-last:]
			}
			fmt.Fprintln(cmd.OutOrStdout(), logTable(entries))
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")
	cmd.Flags().IntVar(&last, "last", 20, "show only the most recent entries (0 for all)")

	return cmd
}

func logTable(entries []reportlog.Entry) string {
	rows := make([][]string, 0, len(entries))
	for _, e := range entries {
		row := ""
		if e.Row >= 0 {
			row = strconv.Itoa(e.Row)
		}
		rows = append(rows, []string{e.Timestamp.Local().Format(time.DateTime), e.Kind, row, e.Category, e.Details})
	}
	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("When", "Kind", "Row", "Category", "Details").
		Rows(rows...).
		String()
}
