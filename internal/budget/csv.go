package budget

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/budgetreport/internal/model"
	"github.com/cleared-dev/budgetreport/internal/money"
)

// Header is the CSV header for budgets.csv.
const Header = "budget,category,kind,year,month,amount"

const (
	numFields   = 6
	colBudget   = 0
	colCategory = 1
	colKind     = 2
	colYear     = 3
	colMonth    = 4
	colAmount   = 5
)

// ReadEntries reads budgets.csv. Amounts are decimal strings with at most
// places fractional digits.
func ReadEntries(r io.Reader, places int32) ([]model.BudgetEntry, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading budgets CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var entries []model.BudgetEntry
	for i, rec := range records[1:] {
		e, err := UnmarshalEntry(rec, places)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		entries = append(entries, e)
	}
	return entries, nil
}

// WriteEntries writes budgets.csv (including header).
func WriteEntries(w io.Writer, entries []model.BudgetEntry, places int32) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, e := range entries {
		if err := cw.Write(MarshalEntry(e, places)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalEntry converts a BudgetEntry to a CSV row.
func MarshalEntry(e model.BudgetEntry, places int32) []string {
	row := make([]string, numFields)
	row[colBudget] = e.Budget
	row[colCategory] = e.Category.FullName
	row[colKind] = string(e.Category.Kind)
	row[colYear] = strconv.Itoa(e.Year)
	row[colMonth] = strconv.Itoa(e.Month)
	row[colAmount] = money.Format(e.Amount, places)
	return row
}

// UnmarshalEntry converts a CSV row to a BudgetEntry.
func UnmarshalEntry(record []string, places int32) (model.BudgetEntry, error) {
	if len(record) != numFields {
		return model.BudgetEntry{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	kind, err := model.ParseKind(record[colKind])
	if err != nil {
		return model.BudgetEntry{}, err
	}

	year, err := strconv.Atoi(record[colYear])
	if err != nil {
		return model.BudgetEntry{}, fmt.Errorf("parsing year %q: %w", record[colYear], err)
	}

	month, err := strconv.Atoi(record[colMonth])
	if err != nil {
		return model.BudgetEntry{}, fmt.Errorf("parsing month %q: %w", record[colMonth], err)
	}
	if month < 1 || month > 12 {
		return model.BudgetEntry{}, fmt.Errorf("month %d not in 1..12", month)
	}

	amount, err := money.Parse(record[colAmount], places)
	if err != nil {
		return model.BudgetEntry{}, err
	}

	return model.BudgetEntry{
		Budget:   record[colBudget],
		Category: model.CategoryKey{FullName: record[colCategory], Kind: kind},
		Year:     year,
		Month:    month,
		Amount:   amount,
	}, nil
}
