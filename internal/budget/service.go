package budget

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// budgetsFile is the budget store path relative to a project root.
const budgetsFile = "budgets/budgets.csv"

// ErrNoBudgets is returned when a project has no monthly budgets at all.
var ErrNoBudgets = errors.New("no monthly budgets have been created")

type entryKey struct {
	budget   string
	category model.CategoryKey
	year     int
	month    int
}

// Service looks up budgeted amounts by budget name, category, and month.
type Service struct {
	entries []model.BudgetEntry
	index   map[entryKey]int
	places  int32
}

// NewService creates a Service from entries. A later entry for the same
// budget, category, and month replaces an earlier one.
func NewService(entries []model.BudgetEntry, places int32) *Service {
	s := &Service{index: make(map[entryKey]int, len(entries)), places: places}
	for _, e := range entries {
		s.Set(e)
	}
	return s
}

// Load reads budgets/budgets.csv from a project root. A missing file yields
// an empty Service.
func Load(repoRoot string, places int32) (*Service, error) {
	path := filepath.Join(repoRoot, budgetsFile)
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return NewService(nil, places), nil
	}
	if err != nil {
		return nil, fmt.Errorf("opening budgets %s: %w", path, err)
	}
	defer f.Close()

	entries, err := ReadEntries(f, places)
	if err != nil {
		return nil, fmt.Errorf("reading budgets %s: %w", path, err)
	}
	return NewService(entries, places), nil
}

// Names returns the budget names, sorted.
func (s *Service) Names() []string {
	seen := make(map[string]bool)
	var names []string
	for _, e := range s.entries {
		if !seen[e.Budget] {
			seen[e.Budget] = true
			names = append(names, e.Budget)
		}
	}
	slices.Sort(names)
	return names
}

// Has reports whether a budget with the given name exists.
func (s *Service) Has(name string) bool {
	return slices.Contains(s.Names(), name)
}

// Amount returns the budgeted amount for a category in one month.
func (s *Service) Amount(budget string, category model.CategoryKey, year, month int) (int64, bool) {
	i, ok := s.index[entryKey{budget: budget, category: category, year: year, month: month}]
	if !ok {
		return 0, false
	}
	return s.entries[i].Amount, true
}

// Set adds or replaces a monthly amount.
func (s *Service) Set(e model.BudgetEntry) {
	k := entryKey{budget: e.Budget, category: e.Category, year: e.Year, month: e.Month}
	if i, ok := s.index[k]; ok {
		s.entries[i] = e
		return
	}
	s.index[k] = len(s.entries)
	s.entries = append(s.entries, e)
}

// Entries returns all entries in insertion order.
func (s *Service) Entries() []model.BudgetEntry {
	return s.entries
}

// Save writes budgets/budgets.csv.
func (s *Service) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, filepath.Dir(budgetsFile))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating budgets dir: %w", err)
	}

	f, err := os.Create(filepath.Join(repoRoot, budgetsFile))
	if err != nil {
		return fmt.Errorf("creating budgets file: %w", err)
	}
	defer f.Close()

	if err := WriteEntries(f, s.entries, s.places); err != nil {
		return fmt.Errorf("writing budgets: %w", err)
	}
	return nil
}
