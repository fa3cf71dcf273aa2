package rollup

import "github.com/cleared-dev/budgetreport/internal/model"

// Measure is one of the three value columns of a report.
type Measure int

const (
	MeasureBudget Measure = iota
	MeasureActual
	MeasureDifference
)

var measureNames = [...]string{"Budget", "Actual", "Difference"}

func (m Measure) String() string { return measureNames[m] }

// ShortMonths are the month labels used in per-month column headers.
var ShortMonths = [12]string{"Jan", "Feb", "March", "April", "May", "June", "July", "Aug", "Sept", "Oct", "Nov", "Dec"}

// Column addresses one value column. Month is 1..12 for a per-month column and
// 0 for the column covering the whole period.
type Column struct {
	Measure Measure
	Month   int
}

// Header returns the column title.
func (c Column) Header(l Layout) string {
	if !l.SubtotalByMonth {
		return c.Measure.String()
	}
	if c.Month == 0 {
		return c.Measure.String() + ": Total"
	}
	return c.Measure.String() + ": " + ShortMonths[c.Month-1]
}

// Layout controls which value columns a report shows.
type Layout struct {
	SubtotalByMonth bool // one Budget/Actual/Difference triple per month plus totals
	SubtotalParents bool // show values on rollup rows
	StartMonth      int
	EndMonth        int
}

// Columns returns the value columns in display order.
func (l Layout) Columns() []Column {
	var cols []Column
	if l.SubtotalByMonth {
		for m := l.StartMonth; m <= l.EndMonth; m++ {
			cols = append(cols, triple(m)...)
		}
	}
	return append(cols, triple(0)...)
}

func triple(month int) []Column {
	return []Column{
		{Measure: MeasureBudget, Month: month},
		{Measure: MeasureActual, Month: month},
		{Measure: MeasureDifference, Month: month},
	}
}

// CellValue returns the amount shown for n in column c. The second result is
// false when the cell is blank, which is the case for every value column of
// a rollup row unless the layout subtotals parents.
//
// Difference is positive when the row did better than budgeted: actual minus
// budget for Root and Income rows, budget minus actual for Expense rows.
func CellValue(n *Node, c Column, l Layout) (int64, bool) {
	if n.HasChildren && !l.SubtotalParents {
		return 0, false
	}

	budget, actual := n.budget.Total(), n.actual.Total()
	if l.SubtotalByMonth && c.Month != 0 {
		budget, actual = n.budget.Month(c.Month), n.actual.Month(c.Month)
	}

	switch c.Measure {
	case MeasureBudget:
		return budget, true
	case MeasureActual:
		return actual, true
	default:
		if n.Kind == model.KindExpense {
			return budget - actual, true
		}
		return actual - budget, true
	}
}
