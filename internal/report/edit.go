package report

import (
	"fmt"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// BudgetSink records a budget edit.
type BudgetSink interface {
	Set(e model.BudgetEntry)
}

// SetBudget changes one leaf category's budget for month in the built report
// and records the new amount in sink. The report's rollup rows update in place.
func (r *Result) SetBudget(sink BudgetSink, key model.CategoryKey, month int, amount int64) error {
	n, ok := r.Tree.Lookup(key.FullName, key.Kind)
	if !ok {
		return fmt.Errorf("%s: not on report", key)
	}
	if month < r.Params.Window.StartMonth || month > r.Params.Window.EndMonth {
		return fmt.Errorf("month %d outside report window %d..%d", month, r.Params.Window.StartMonth, r.Params.Window.EndMonth)
	}
	if err := r.Tree.SetBudget(n.Row, month, amount); err != nil {
		return err
	}
	sink.Set(model.BudgetEntry{
		Budget:   r.Params.Budget,
		Category: key,
		Year:     r.Params.Window.Year,
		Month:    month,
		Amount:   amount,
	})
	return nil
}
