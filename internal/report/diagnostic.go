package report

import (
	"errors"

	"github.com/cleared-dev/budgetreport/internal/rollup"
)

// ErrSkippedCategory marks a category left off the report because it or an
// ancestor is hidden, inactive, or missing.
var ErrSkippedCategory = errors.New("category or an ancestor is hidden, inactive, or missing")

// Diagnostic is a recoverable problem found while building a report.
type Diagnostic struct {
	Kind     string
	Row      int    // -1 when the problem has no row
	Category string // "" for header rows
	Err      error
}

func (d Diagnostic) Error() string { return d.Err.Error() }

func (d Diagnostic) Unwrap() error { return d.Err }

var kinds = []struct {
	err  error
	name string
}{
	{rollup.ErrDuplicateCategory, "duplicate-category"},
	{rollup.ErrMissingParentFrame, "missing-parent-frame"},
	{rollup.ErrOrphanParent, "orphan-parent"},
	{rollup.ErrMonthOutOfRange, "month-out-of-range"},
	{rollup.ErrRollupRow, "rollup-row"},
	{rollup.ErrNoSuchRow, "no-such-row"},
	{ErrSkippedCategory, "skipped-category"},
}

// KindOf returns the short diagnostic kind for err.
func KindOf(err error) string {
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.name
		}
	}
	return "error"
}
