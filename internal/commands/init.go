package commands

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"github.com/cleared-dev/budgetreport/internal/accounts"
	"github.com/cleared-dev/budgetreport/internal/budget"
	"github.com/cleared-dev/budgetreport/internal/config"
	"github.com/cleared-dev/budgetreport/internal/gitops"
	"github.com/cleared-dev/budgetreport/internal/model"
)

type initOptions struct {
	budget   string
	template string
	year     int
	git      bool
}

func newInitCommand() *cobra.Command {
	var opts initOptions

	cmd := &cobra.Command{
		Use:   "init [directory]",
		Short: "Initialize a new budget report project",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			dir := "."
			if len(args) > 0 {
				dir = args[0]
			}

			absDir, err := filepath.Abs(dir)
			if err != nil {
				return fmt.Errorf("resolving path: %w", err)
			}

			return runInit(cmd.OutOrStdout(), absDir, opts)
		},
	}

	cmd.Flags().StringVar(&opts.budget, "budget", "Household", "name of the starter budget")
	cmd.Flags().StringVar(&opts.template, "template", "household", "starter category chart")
	cmd.Flags().IntVar(&opts.year, "year", time.Now().Year(), "year of the starter budget")
	cmd.Flags().BoolVar(&opts.git, "git", false, "initialize a git repository and commit the new project")

	return cmd
}

func runInit(out io.Writer, dir string, opts initOptions) error {
	categories, err := accounts.DefaultChart(opts.template)
	if err != nil {
		return err
	}

	for _, d := range []string{"accounts", "budgets", "logs"} {
		if err := os.MkdirAll(filepath.Join(dir, d), 0o755); err != nil {
			return fmt.Errorf("creating directory %s: %w", d, err)
		}
	}

	cfg := config.Default(opts.budget)
	cfg.Git.Enabled = opts.git
	if err := config.Save(filepath.Join(dir, config.FileName), cfg); err != nil {
		return fmt.Errorf("writing config: %w", err)
	}

	chart := accounts.NewService(categories)
	if err := chart.Save(dir); err != nil {
		return fmt.Errorf("writing category chart: %w", err)
	}

	budgets := budget.NewService(starterBudget(chart, opts.budget, opts.year), cfg.Currency.DecimalPlaces)
	if err := budgets.Save(dir); err != nil {
		return fmt.Errorf("writing starter budget: %w", err)
	}

	gitignore := "logs/\n"
	if err := os.WriteFile(filepath.Join(dir, ".gitignore"), []byte(gitignore), 0o644); err != nil {
		return fmt.Errorf("writing .gitignore: %w", err)
	}

	if !opts.git {
		fmt.Fprintf(out, "Initialized budget report project at %s\n", dir)
		return nil
	}

	if err := gitops.Init(dir, out); err != nil {
		return fmt.Errorf("git init: %w", err)
	}
	hash, err := gitops.CommitAll(dir, "init: "+opts.budget+" budget", gitAuthor(cfg))
	if err != nil {
		return fmt.Errorf("initial commit: %w", err)
	}

	fmt.Fprintf(out, "Initialized budget report project at %s (%s)\n", dir, hash)
	return nil
}

func gitAuthor(cfg *config.Config) gitops.Author {
	return gitops.Author{Name: cfg.Git.AuthorName, Email: cfg.Git.AuthorEmail}
}

// starterAmounts are monthly amounts in minor units for the household chart.
var starterAmounts = map[model.CategoryKey]int64{
	{FullName: "Salary", Kind: model.KindIncome}:                400000,
	{FullName: "Auto:Fuel", Kind: model.KindExpense}:            15000,
	{FullName: "Auto:Insurance", Kind: model.KindExpense}:       9000,
	{FullName: "Dining", Kind: model.KindExpense}:               20000,
	{FullName: "Groceries", Kind: model.KindExpense}:            60000,
	{FullName: "Home:Rent", Kind: model.KindExpense}:            150000,
	{FullName: "Home:Utilities:Power", Kind: model.KindExpense}: 8000,
}

// starterBudget budgets every leaf category in starterAmounts for all twelve
// months of year.
func starterBudget(chart *accounts.Service, name string, year int) []model.BudgetEntry {
	var entries []model.BudgetEntry
	for _, c := range chart.All() {
		amount, ok := starterAmounts[c.Key()]
		if !ok || chart.HasVisibleChildren(c) {
			continue
		}
		for m := 1; m <= 12; m++ {
			entries = append(entries, model.BudgetEntry{Budget: name, Category: c.Key(), Year: year, Month: m, Amount: amount})
		}
	}
	return entries
}
