package transactions

import (
	"fmt"
	"time"

	"github.com/cleared-dev/budgetreport/internal/dateint"
	"github.com/cleared-dev/budgetreport/internal/model"
)

// ValidationError describes a single invariant violation.
type ValidationError struct {
	Invariant   int
	Ref         string
	Description string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("invariant %d [%s]: %s", e.Invariant, e.Ref, e.Description)
}

// CategoryChecker looks up categories in the chart.
type CategoryChecker interface {
	Get(key model.CategoryKey) (model.Category, bool)
	HasVisibleChildren(c model.Category) bool
}

// ValidateTransactions enforces 5 invariants on the transactions stored for a
// given month.
func ValidateTransactions(txns []model.Transaction, categories CategoryChecker, year, month int) []ValidationError {
	var errs []ValidationError

	for _, txn := range txns {
		ref := txn.Reference
		if ref == "" {
			ref = fmt.Sprintf("%s %s", dateint.Format(txn.Date), txn.Category.FullName)
		}

		// Invariant 1: Booked to a real income or expense category.
		cat, ok := categories.Get(txn.Category)
		if txn.Category.Kind == model.KindRoot || !ok {
			errs = append(errs, ValidationError{
				Invariant:   1,
				Ref:         ref,
				Description: fmt.Sprintf("unknown category %s", txn.Category),
			})
		} else if categories.HasVisibleChildren(cat) {
			// Invariant 5: Reports only aggregate leaf categories.
			errs = append(errs, ValidationError{
				Invariant:   5,
				Ref:         ref,
				Description: fmt.Sprintf("%s has sub-categories; book to one of them", txn.Category),
			})
		}

		// Invariant 2: A real calendar date.
		y, m, d := dateint.Split(txn.Date)
		t := time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
		if t.Year() != y || int(t.Month()) != m || t.Day() != d {
			errs = append(errs, ValidationError{
				Invariant:   2,
				Ref:         ref,
				Description: fmt.Sprintf("invalid date %d", txn.Date),
			})
			continue
		}

		// Invariant 3: Date within month.
		if y != year || m != month {
			errs = append(errs, ValidationError{
				Invariant:   3,
				Ref:         ref,
				Description: fmt.Sprintf("date %s not in %04d-%02d", dateint.Format(txn.Date), year, month),
			})
		}

		// Invariant 4: Non-zero amount.
		if txn.Amount == 0 {
			errs = append(errs, ValidationError{
				Invariant:   4,
				Ref:         ref,
				Description: "amount is zero",
			})
		}
	}

	return errs
}
