package rollup

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetreport/internal/model"
)

func TestAggregate_FiltersByCategoryAndRange(t *testing.T) {
	fuel := model.CategoryKey{FullName: "Auto:Fuel", Kind: model.KindExpense}
	other := model.CategoryKey{FullName: "Rent", Kind: model.KindExpense}

	txns := []model.Transaction{
		{Date: 20250105, Category: fuel, Amount: -4000},
		{Date: 20250120, Category: fuel, Amount: -2500},
		{Date: 20250210, Category: fuel, Amount: 500},   // refund
		{Date: 20250301, Category: fuel, Amount: -1000}, // after the period
		{Date: 20241231, Category: fuel, Amount: -9999}, // before the period
		{Date: 20250115, Category: other, Amount: -150000},
	}

	l, errs := Aggregate(fuel, txns, Period{Year: 2025, StartMonth: 1, Months: 2})
	require.Empty(t, errs)
	assert.Equal(t, int64(6500), l.Month(1))
	assert.Equal(t, int64(-500), l.Month(2))
	assert.Equal(t, int64(0), l.Month(3))
	assert.Equal(t, int64(6000), l.Total())
}

func TestAggregate_IncomeSign(t *testing.T) {
	salary := model.CategoryKey{FullName: "Salary", Kind: model.KindIncome}
	txns := []model.Transaction{
		{Date: 20250625, Category: salary, Amount: 350000},
		{Date: 20250630, Category: salary, Amount: -5000},
	}

	l, errs := Aggregate(salary, txns, Period{Year: 2025, StartMonth: 6, Months: 1})
	require.Empty(t, errs)
	assert.Equal(t, int64(345000), l.Month(6))
	assert.Equal(t, int64(345000), l.Total())
}

func TestAggregate_MonthOutOfRange(t *testing.T) {
	rent := model.CategoryKey{FullName: "Rent", Kind: model.KindExpense}
	txns := []model.Transaction{
		{Date: 20251315, Category: rent, Amount: -100},
		{Date: 20251201, Category: rent, Amount: -200},
	}

	l, errs := Aggregate(rent, txns, Period{Year: 2025, StartMonth: 1, Months: 12})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMonthOutOfRange)
	assert.Equal(t, int64(200), l.Month(12))
	assert.Equal(t, int64(200), l.Total())
}

func TestAggregate_PeriodPastDecember(t *testing.T) {
	rent := model.CategoryKey{FullName: "Rent", Kind: model.KindExpense}
	txns := []model.Transaction{
		{Date: 20251215, Category: rent, Amount: -100},
		{Date: 20260105, Category: rent, Amount: -100},
	}

	p := Period{Year: 2025, StartMonth: 11, Months: 6}
	assert.Equal(t, 12, p.EndMonth())

	l, errs := Aggregate(rent, txns, p)
	require.Empty(t, errs)
	assert.Equal(t, int64(100), l.Total())
}

func TestLedger_MonthOutsideRange(t *testing.T) {
	var l Ledger
	l.add(1, 5)
	assert.Equal(t, int64(0), l.Month(0))
	assert.Equal(t, int64(0), l.Month(13))
	assert.Equal(t, int64(5), l.Month(1))
}

func TestSeedActuals(t *testing.T) {
	tree := sampleTree(t)
	power := row(t, tree, "Home:Utilities:Power", model.KindExpense)
	key := model.CategoryKey{FullName: "Home:Utilities:Power", Kind: model.KindExpense}

	txns := []model.Transaction{
		{Date: 20250204, Category: key, Amount: -9000},
		{Date: 20250305, Category: key, Amount: -8500},
		{Date: 20251399, Category: key, Amount: -1}, // bad month
	}
	errs := tree.SeedActuals(power, txns, Period{Year: 2025, StartMonth: 1, Months: 12})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrMonthOutOfRange)

	home := row(t, tree, "Home", model.KindExpense)
	n, err := tree.Node(home)
	require.NoError(t, err)
	assert.Equal(t, int64(17500), n.Actual().Total())

	root, err := tree.Node(0)
	require.NoError(t, err)
	assert.Equal(t, int64(-17500), root.Actual().Total())
	assertConsistent(t, tree)
}

func TestSeedActuals_NoSuchRow(t *testing.T) {
	tree := sampleTree(t)
	errs := tree.SeedActuals(99, nil, Period{Year: 2025, StartMonth: 1, Months: 12})
	require.Len(t, errs, 1)
	assert.ErrorIs(t, errs[0], ErrNoSuchRow)
}
