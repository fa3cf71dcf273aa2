package transactions

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cleared-dev/budgetreport/internal/dateint"
	"github.com/cleared-dev/budgetreport/internal/model"
)

// Service stores transactions in one CSV file per month:
// <repoRoot>/YYYY/MM/transactions.csv.
type Service struct {
	repoRoot   string
	categories CategoryChecker
	places     int32
	months     map[int][]model.Transaction // YYYYMM -> rows, filled on first read
}

// NewService creates a transaction Service.
func NewService(repoRoot string, categories CategoryChecker, places int32) *Service {
	return &Service{
		repoRoot:   repoRoot,
		categories: categories,
		places:     places,
		months:     make(map[int][]model.Transaction),
	}
}

// Add validates txns together with the month's existing rows and appends them
// to the month's transactions.csv. All txns must fall in the same month.
func (s *Service) Add(txns ...model.Transaction) error {
	if len(txns) == 0 {
		return nil
	}
	year, month, _ := dateint.Split(txns[0].Date)

	existing, err := s.ReadMonth(year, month)
	if err != nil {
		return err
	}

	// Existing rows were validated when written; only report on the new ones.
	if verrs := ValidateTransactions(txns, s.categories, year, month); len(verrs) > 0 {
		msgs := make([]string, len(verrs))
		for i, ve := range verrs {
			msgs[i] = ve.Error()
		}
		return fmt.Errorf("validation failed: %s", strings.Join(msgs, "; "))
	}

	path := s.monthPath(year, month)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating transactions dir: %w", err)
	}

	isNew := false
	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		isNew = true
	}

	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("opening transactions: %w", err)
	}
	defer f.Close()

	write := AppendTransactions
	if isNew {
		write = WriteTransactions
	}
	if err := write(f, txns, s.places); err != nil {
		return fmt.Errorf("writing transactions: %w", err)
	}

	s.months[year*100+month] = append(slices.Clip(existing), txns...)
	return nil
}

// ReadMonth reads all transactions for a given year/month.
func (s *Service) ReadMonth(year, month int) ([]model.Transaction, error) {
	key := year*100 + month
	if txns, ok := s.months[key]; ok {
		return txns, nil
	}

	path := s.monthPath(year, month)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		s.months[key] = nil
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening transactions %s: %w", path, err)
	}
	defer f.Close()

	txns, err := ReadTransactions(f, s.places)
	if err != nil {
		return nil, fmt.Errorf("reading transactions %s: %w", path, err)
	}
	s.months[key] = txns
	return txns, nil
}

// Range returns the transactions booked to key dated in [start, end).
func (s *Service) Range(key model.CategoryKey, start, end int) ([]model.Transaction, error) {
	year, month, _ := dateint.Split(start)

	var out []model.Transaction
	for dateint.Date(year, month, 1) < end {
		txns, err := s.ReadMonth(year, month)
		if err != nil {
			return nil, err
		}
		for _, txn := range txns {
			if txn.Category == key && txn.Date >= start && txn.Date < end {
				out = append(out, txn)
			}
		}

		month++
		if month > 12 {
			year, month = year+1, 1
		}
	}
	return out, nil
}

func (s *Service) monthPath(year, month int) string {
	return filepath.Join(s.repoRoot, fmt.Sprintf("%04d", year), fmt.Sprintf("%02d", month), "transactions.csv")
}
