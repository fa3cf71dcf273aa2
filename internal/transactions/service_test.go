package transactions

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cleared-dev/budgetreport/internal/model"
)

func TestAddAndReadMonth(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, chart(), 2)

	require.NoError(t, svc.Add(
		model.Transaction{Date: 20250301, Category: rent, Amount: -80000, Description: "March rent"},
		model.Transaction{Date: 20250315, Category: salary, Amount: 200000},
	))
	require.NoError(t, svc.Add(model.Transaction{Date: 20250320, Category: fuel, Amount: -4500}))

	path := filepath.Join(dir, "2025", "03", "transactions.csv")
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), Header+"\n")
	assert.Contains(t, string(data), "2025-03-01,Rent,expense,-800.00,March rent,")

	// A fresh service reads from disk rather than its cache.
	fresh := NewService(dir, chart(), 2)
	txns, err := fresh.ReadMonth(2025, 3)
	require.NoError(t, err)
	require.Len(t, txns, 3)
	assert.Equal(t, int64(-4500), txns[2].Amount)
}

func TestAdd_ValidationFails(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, chart(), 2)

	err := svc.Add(
		model.Transaction{Date: 20250301, Category: rent, Amount: -1},
		model.Transaction{Date: 20250401, Category: rent, Amount: -1},
	)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "validation failed")

	_, err = os.Stat(filepath.Join(dir, "2025", "03", "transactions.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist, "nothing written on failure")
}

func TestAdd_RollupCategoryRejected(t *testing.T) {
	svc := NewService(t.TempDir(), chart(), 2)

	err := svc.Add(model.Transaction{Date: 20250301, Category: auto, Amount: -5000})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invariant 5")
	assert.Contains(t, err.Error(), "has sub-categories")
}

func TestReadMonth_Missing(t *testing.T) {
	svc := NewService(t.TempDir(), chart(), 2)
	txns, err := svc.ReadMonth(2025, 7)
	require.NoError(t, err)
	assert.Nil(t, txns)
}

func TestRange(t *testing.T) {
	dir := t.TempDir()
	svc := NewService(dir, chart(), 2)

	require.NoError(t, svc.Add(model.Transaction{Date: 20241215, Category: rent, Amount: -1}))
	require.NoError(t, svc.Add(model.Transaction{Date: 20250101, Category: rent, Amount: -2}))
	require.NoError(t, svc.Add(model.Transaction{Date: 20250102, Category: salary, Amount: 3}))
	require.NoError(t, svc.Add(model.Transaction{Date: 20250228, Category: rent, Amount: -4}))
	require.NoError(t, svc.Add(model.Transaction{Date: 20250301, Category: rent, Amount: -5}))

	got, err := svc.Range(rent, 20250101, 20250301)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(-2), got[0].Amount)
	assert.Equal(t, int64(-4), got[1].Amount)

	got, err = svc.Range(rent, 20241201, 20260101)
	require.NoError(t, err)
	assert.Len(t, got, 4)
}

func TestRange_BadFile(t *testing.T) {
	dir := t.TempDir()
	monthDir := filepath.Join(dir, "2025", "01")
	require.NoError(t, os.MkdirAll(monthDir, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(monthDir, "transactions.csv"), []byte(Header+"\nbad,row\n"), 0o644))

	svc := NewService(dir, chart(), 2)
	_, err := svc.Range(rent, 20250101, 20250201)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading transactions")
}
