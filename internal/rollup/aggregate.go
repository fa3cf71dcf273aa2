package rollup

import (
	"fmt"

	"github.com/cleared-dev/budgetreport/internal/dateint"
	"github.com/cleared-dev/budgetreport/internal/model"
)

// Period is the reporting window: Months consecutive months of Year starting
// at StartMonth. Windows never extend past December.
type Period struct {
	Year       int
	StartMonth int
	Months     int
}

// Range returns the half-open YYYYMMDD range covered by the period.
func (p Period) Range() (start, end int) {
	return dateint.MonthRange(p.Year, p.StartMonth, p.Months)
}

// EndMonth returns the last month in the period.
func (p Period) EndMonth() int {
	return min(p.StartMonth+p.Months-1, 12)
}

// Aggregate totals the transactions booked to key within p into monthly
// actual amounts. Income categories record the negated category-side value,
// so money received shows as a positive income actual; every other kind
// records the category-side value as is.
//
// Transactions whose month falls outside 1..12 are skipped and reported.
func Aggregate(key model.CategoryKey, txns []model.Transaction, p Period) (Ledger, []error) {
	start, end := p.Range()

	var l Ledger
	var errs []error
	for _, txn := range txns {
		if txn.Category != key || txn.Date < start || txn.Date >= end {
			continue
		}

		month := dateint.Month(txn.Date)
		if err := checkMonth(month); err != nil {
			errs = append(errs, fmt.Errorf("%s transaction on %d (month %d): %w", key, txn.Date, month, err))
			continue
		}

		value := txn.CategoryValue()
		if key.Kind == model.KindIncome {
			value = -value
		}
		l.add(month, value)
	}
	return l, errs
}

// SeedActuals aggregates txns into row's actual ledger and rolls the result
// up once. Aggregation errors are returned alongside any rollup error.
func (t *Tree) SeedActuals(row int, txns []model.Transaction, p Period) []error {
	n, err := t.Node(row)
	if err != nil {
		return []error{err}
	}
	l, errs := Aggregate(model.CategoryKey{FullName: n.FullName, Kind: n.Kind}, txns, p)
	if err := t.AddActual(row, l); err != nil {
		errs = append(errs, err)
	}
	return errs
}
