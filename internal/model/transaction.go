package model

// Transaction is one categorized transaction line.
type Transaction struct {
	Date        int         // YYYYMMDD
	Category    CategoryKey
	Amount      int64       // minor units, bank side: negative = outflow, positive = inflow
	Description string
	Reference   string
}

// CategoryValue returns the amount as seen by the category side of the split,
// which is the negation of the bank-side amount.
func (t Transaction) CategoryValue() int64 {
	return -t.Amount
}
