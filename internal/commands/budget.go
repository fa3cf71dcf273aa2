package commands

import (
	"fmt"
	"strconv"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/model"
	"github.com/cleared-dev/budgetreport/internal/money"
	"github.com/cleared-dev/budgetreport/internal/report"
)

func newBudgetCommand() *cobra.Command {
	budgetCmd := &cobra.Command{
		Use:   "budget",
		Short: "Budget operations",
	}
	budgetCmd.AddCommand(newBudgetListCommand())
	budgetCmd.AddCommand(newBudgetSetCommand())
	return budgetCmd
}

func newBudgetListCommand() *cobra.Command {
	var dir string

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List budget names",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := openProject(dir)
			if err != nil {
				return err
			}
			for _, name := range p.budgets.Names() {
				fmt.Fprintln(cmd.OutOrStdout(), name)
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&dir, "dir", ".", "project directory")

	return cmd
}

func newBudgetSetCommand() *cobra.Command {
	var opts reportOptions
	var kind string

	cmd := &cobra.Command{
		Use:   "set <category> <month> <amount>",
		Short: "Set a category's budget for one month and show the updated report",
		Args:  cobra.ExactArgs(3),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBudgetSet(cmd, &opts, kind, args, time.Now())
		},
	}
	opts.register(cmd)
	cmd.Flags().StringVar(&kind, "kind", "", "category kind: income or expense (inferred from the chart when omitted)")

	return cmd
}

func runBudgetSet(cmd *cobra.Command, opts *reportOptions, kind string, args []string, now time.Time) error {
	month, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("parsing month %q: %w", args[1], err)
	}

	p, err := openProject(opts.dir)
	if err != nil {
		return err
	}
	k, err := categoryKind(p, args[0], kind)
	if err != nil {
		return err
	}
	amount, err := money.Parse(args[2], p.cfg.Currency.DecimalPlaces)
	if err != nil {
		return err
	}

	res, err := buildReport(cmd, p, opts, now)
	if err != nil {
		return err
	}

	key := model.CategoryKey{FullName: args[0], Kind: k}
	if err := res.SetBudget(p.budgets, key, month, amount); err != nil {
		return fmt.Errorf("setting budget: %w", err)
	}
	if err := p.budgets.Save(p.dir); err != nil {
		return err
	}
	if _, err := p.commit(fmt.Sprintf("budget: %s %s %d-%02d", res.Params.Budget, key, res.Params.Window.Year, month)); err != nil {
		return err
	}

	return report.Render(cmd.OutOrStdout(), res, p.cfg.Currency.DecimalPlaces)
}

// categoryKind returns the kind given on the command line, or the kind of the
// chart category named fullName when only one kind has that name.
func categoryKind(p *project, fullName, kind string) (model.CategoryKind, error) {
	if kind != "" {
		return model.ParseKind(kind)
	}

	var found []model.CategoryKind
	for _, k := range []model.CategoryKind{model.KindExpense, model.KindIncome} {
		if p.categories.Exists(model.CategoryKey{FullName: fullName, Kind: k}) {
			found = append(found, k)
		}
	}
	switch len(found) {
	case 0:
		return "", fmt.Errorf("no category named %q", fullName)
	case 1:
		return found[0], nil
	default:
		return "", fmt.Errorf("%q is both an income and an expense category; pass --kind", fullName)
	}
}
