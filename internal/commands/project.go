package commands

import (
	"fmt"
	"path/filepath"

	"github.com/cleared-dev/budgetreport/internal/accounts"
	"github.com/cleared-dev/budgetreport/internal/budget"
	"github.com/cleared-dev/budgetreport/internal/config"
	"github.com/cleared-dev/budgetreport/internal/gitops"
	"github.com/cleared-dev/budgetreport/internal/transactions"
)

// project is an opened budgetreport directory.
type project struct {
	dir          string
	cfg          *config.Config
	categories   *accounts.Service
	budgets      *budget.Service
	transactions *transactions.Service
}

func openProject(dir string) (*project, error) {
	absDir, err := filepath.Abs(dir)
	if err != nil {
		return nil, fmt.Errorf("resolving path: %w", err)
	}

	cfg, err := config.Load(filepath.Join(absDir, config.FileName))
	if err != nil {
		return nil, err
	}
	places := cfg.Currency.DecimalPlaces

	cats, err := accounts.Load(absDir)
	if err != nil {
		return nil, err
	}
	budgets, err := budget.Load(absDir, places)
	if err != nil {
		return nil, err
	}

	return &project{
		dir:          absDir,
		cfg:          cfg,
		categories:   cats,
		budgets:      budgets,
		transactions: transactions.NewService(absDir, cats, places),
	}, nil
}

// commit records the project's changes when git integration is enabled.
// Returns the short hash, or "" when nothing was committed.
func (p *project) commit(message string) (string, error) {
	if !p.cfg.Git.Enabled || !gitops.IsRepo(p.dir) {
		return "", nil
	}
	return gitops.CommitAll(p.dir, message, gitAuthor(p.cfg))
}
