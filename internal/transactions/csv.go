package transactions

import (
	"encoding/csv"
	"fmt"
	"io"
	"strings"

	"github.com/cleared-dev/budgetreport/internal/dateint"
	"github.com/cleared-dev/budgetreport/internal/model"
	"github.com/cleared-dev/budgetreport/internal/money"
)

// Header is the CSV header for transactions.csv.
const Header = "date,category,kind,amount,description,reference"

const (
	numFields   = 6
	colDate     = 0
	colCategory = 1
	colKind     = 2
	colAmount   = 3
	colDesc     = 4
	colRef      = 5
)

// ReadTransactions reads all rows from a transactions.csv reader.
func ReadTransactions(r io.Reader, places int32) ([]model.Transaction, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading transactions CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	// Skip header row.
	var txns []model.Transaction
	for i, rec := range records[1:] {
		txn, err := UnmarshalTransaction(rec, places)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		txns = append(txns, txn)
	}
	return txns, nil
}

// WriteTransactions writes rows to a transactions.csv writer (including header).
func WriteTransactions(w io.Writer, txns []model.Transaction, places int32) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn, places)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// AppendTransactions appends rows to an existing transactions.csv writer (no header).
func AppendTransactions(w io.Writer, txns []model.Transaction, places int32) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	for i, txn := range txns {
		if err := cw.Write(MarshalTransaction(txn, places)); err != nil {
			return fmt.Errorf("writing row %d: %w", i, err)
		}
	}
	return cw.Error()
}

// MarshalTransaction converts a Transaction to a CSV row.
func MarshalTransaction(txn model.Transaction, places int32) []string {
	row := make([]string, numFields)
	row[colDate] = dateint.Format(txn.Date)
	row[colCategory] = txn.Category.FullName
	row[colKind] = string(txn.Category.Kind)
	row[colAmount] = money.Format(txn.Amount, places)
	row[colDesc] = txn.Description
	row[colRef] = txn.Reference
	return row
}

// UnmarshalTransaction converts a CSV row to a Transaction.
func UnmarshalTransaction(record []string, places int32) (model.Transaction, error) {
	if len(record) != numFields {
		return model.Transaction{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	date, err := dateint.Parse(record[colDate])
	if err != nil {
		return model.Transaction{}, fmt.Errorf("parsing date %q: %w", record[colDate], err)
	}

	kind, err := model.ParseKind(record[colKind])
	if err != nil {
		return model.Transaction{}, err
	}

	amount, err := money.Parse(record[colAmount], places)
	if err != nil {
		return model.Transaction{}, err
	}

	return model.Transaction{
		Date:        date,
		Category:    model.CategoryKey{FullName: record[colCategory], Kind: kind},
		Amount:      amount,
		Description: record[colDesc],
		Reference:   record[colRef],
	}, nil
}
