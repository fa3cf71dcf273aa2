package model

// BudgetEntry is a single row in budgets.csv: the budgeted amount for one
// category in one month of a named budget.
type BudgetEntry struct {
	Budget   string
	Category CategoryKey
	Year     int
	Month    int   // 1..12
	Amount   int64 // minor units
}
