package rollup

// Ledger holds twelve monthly amounts and their running total, in minor units.
// The total always equals the sum of the months.
type Ledger struct {
	months [12]int64
	total  int64
}

// Month returns the amount for month 1..12, or zero outside that range.
func (l Ledger) Month(month int) int64 {
	if checkMonth(month) != nil {
		return 0
	}
	return l.months[month-1]
}

// Total returns the sum of all twelve months.
func (l Ledger) Total() int64 {
	return l.total
}

func (l *Ledger) add(month int, delta int64) {
	l.months[month-1] += delta
	l.total += delta
}

// addLedger adds sign * other, month by month.
func (l *Ledger) addLedger(other Ledger, sign int64) {
	for m := 1; m <= 12; m++ {
		l.add(m, sign*other.Month(m))
	}
}
