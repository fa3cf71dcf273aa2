// Package report builds budget-vs-actual reports from the category, budget,
// and transaction stores and renders them as tables.
package report

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"slices"

	"github.com/cleared-dev/budgetreport/internal/budget"
	"github.com/cleared-dev/budgetreport/internal/config"
	"github.com/cleared-dev/budgetreport/internal/model"
	"github.com/cleared-dev/budgetreport/internal/rollup"
)

// Row titles of the synthetic header rows.
const (
	RootTitle    = "Income-Expenses"
	IncomeTitle  = "Income"
	ExpenseTitle = "Expenses"
)

// ErrUnknownBudget is returned when the selected budget does not exist.
var ErrUnknownBudget = errors.New("unknown budget")

// CategorySource supplies the categories to report on.
type CategorySource interface {
	PreOrder(kind model.CategoryKind) (ordered, skipped []model.Category)
	HasVisibleChildren(c model.Category) bool
}

// BudgetSource supplies monthly budgeted amounts.
type BudgetSource interface {
	Names() []string
	Amount(budget string, category model.CategoryKey, year, month int) (int64, bool)
}

// TransactionSource supplies the transactions booked to a category.
type TransactionSource interface {
	Range(key model.CategoryKey, start, end int) ([]model.Transaction, error)
}

// Sources are the stores a report reads from.
type Sources struct {
	Categories   CategorySource
	Budgets      BudgetSource
	Transactions TransactionSource
}

// Params selects what a report covers and how it is laid out.
type Params struct {
	Name            string
	Budget          string
	Window          config.Window
	SubtotalByMonth bool
	SubtotalParents bool
}

// Layout returns the column layout for p.
func (p Params) Layout() rollup.Layout {
	return rollup.Layout{
		SubtotalByMonth: p.SubtotalByMonth,
		SubtotalParents: p.SubtotalParents,
		StartMonth:      p.Window.StartMonth,
		EndMonth:        p.Window.EndMonth,
	}
}

func (p Params) period() rollup.Period {
	return rollup.Period{Year: p.Window.Year, StartMonth: p.Window.StartMonth, Months: p.Window.Months()}
}

// Result is a built report.
type Result struct {
	Params      Params
	Tree        *rollup.Tree
	Diagnostics []Diagnostic
}

// Build assembles the report tree and fills its budget and actual ledgers.
//
// Problems confined to one category or transaction are collected as
// diagnostics and logged; the rest of the report is still built. Store read
// failures abort the build.
func Build(params Params, src Sources, logger *slog.Logger) (*Result, error) {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	names := src.Budgets.Names()
	if len(names) == 0 {
		return nil, budget.ErrNoBudgets
	}
	if !slices.Contains(names, params.Budget) {
		return nil, fmt.Errorf("%q: %w", params.Budget, ErrUnknownBudget)
	}

	b := &builder{
		res:    &Result{Params: params, Tree: rollup.NewTree()},
		src:    src,
		logger: logger.With("report", params.Name, "budget", params.Budget),
	}

	b.header(RootTitle, model.KindRoot, 0)
	b.section(IncomeTitle, model.KindIncome)
	b.section(ExpenseTitle, model.KindExpense)

	if err := b.fill(); err != nil {
		return nil, err
	}
	return b.res, nil
}

type builder struct {
	res    *Result
	src    Sources
	logger *slog.Logger
}

func (b *builder) header(title string, kind model.CategoryKind, level int) {
	n, err := b.res.Tree.AddHeader(title, kind, level)
	if err != nil {
		b.diagnose(n.Row, "", err)
	}
}

func (b *builder) section(title string, kind model.CategoryKind) {
	b.header(title, kind, 1)

	ordered, skipped := b.src.Categories.PreOrder(kind)
	for _, c := range skipped {
		b.diagnose(-1, c.Key().String(), fmt.Errorf("%s: %w", c.Key(), ErrSkippedCategory))
	}
	for _, c := range ordered {
		n, err := b.res.Tree.Add(rollup.Descriptor{
			FullName:    c.FullName,
			Kind:        c.Kind,
			HasChildren: b.src.Categories.HasVisibleChildren(c),
		})
		if err == nil {
			continue
		}
		row := -1
		if n != nil {
			row = n.Row
		}
		b.diagnose(row, c.Key().String(), err)
	}
}

// fill seeds budgets and actuals on every leaf category. Rollup rows derive
// their values from their descendants.
func (b *builder) fill() error {
	p := b.res.Params
	period := p.period()
	start, end := period.Range()

	for _, n := range b.res.Tree.Nodes() {
		if n.IsHeader() {
			continue
		}
		key := model.CategoryKey{FullName: n.FullName, Kind: n.Kind}
		if n.HasChildren {
			if err := b.checkRollup(n, key, start, end); err != nil {
				return err
			}
			continue
		}

		for m := p.Window.StartMonth; m <= p.Window.EndMonth; m++ {
			amount, ok := b.src.Budgets.Amount(p.Budget, key, p.Window.Year, m)
			if !ok {
				continue
			}
			if err := b.res.Tree.SetBudget(n.Row, m, amount); err != nil {
				b.diagnose(n.Row, key.String(), err)
			}
		}

		txns, err := b.src.Transactions.Range(key, start, end)
		if err != nil {
			return fmt.Errorf("reading transactions for %s: %w", key, err)
		}
		for _, err := range b.res.Tree.SeedActuals(n.Row, txns, period) {
			b.diagnose(n.Row, key.String(), err)
		}
	}
	return nil
}

// checkRollup reports budget amounts and transactions stored against a rollup
// category. Neither is counted.
func (b *builder) checkRollup(n *rollup.Node, key model.CategoryKey, start, end int) error {
	p := b.res.Params

	var months []int
	for m := p.Window.StartMonth; m <= p.Window.EndMonth; m++ {
		if _, ok := b.src.Budgets.Amount(p.Budget, key, p.Window.Year, m); ok {
			months = append(months, m)
		}
	}
	if len(months) > 0 {
		b.diagnose(n.Row, key.String(), fmt.Errorf("%s: budget for months %v ignored: %w", key, months, rollup.ErrRollupRow))
	}

	txns, err := b.src.Transactions.Range(key, start, end)
	if err != nil {
		return fmt.Errorf("reading transactions for %s: %w", key, err)
	}
	if len(txns) > 0 {
		b.diagnose(n.Row, key.String(), fmt.Errorf("%s: %d transactions not counted: %w", key, len(txns), rollup.ErrRollupRow))
	}
	return nil
}

func (b *builder) diagnose(row int, category string, err error) {
	d := Diagnostic{Kind: KindOf(err), Row: row, Category: category, Err: err}
	b.res.Diagnostics = append(b.res.Diagnostics, d)
	b.logger.Warn("report build problem", "kind", d.Kind, "row", row, "category", category, "err", err)
}
