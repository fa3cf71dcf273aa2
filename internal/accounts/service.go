package accounts

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// chartFile is the category chart path relative to a project root.
const chartFile = "accounts/chart-of-categories.csv"

// Service provides in-memory lookup over the category chart.
type Service struct {
	categories []model.Category
	byKey      map[model.CategoryKey]model.Category
	children   map[model.CategoryKey][]model.Category
}

// NewService creates a Service from a slice of categories. When a key appears
// more than once the first row wins for lookups; every row is still walked.
func NewService(categories []model.Category) *Service {
	byKey := make(map[model.CategoryKey]model.Category, len(categories))
	children := make(map[model.CategoryKey][]model.Category)
	for _, c := range categories {
		if _, ok := byKey[c.Key()]; !ok {
			byKey[c.Key()] = c
		}
		if p := c.ParentName(); p != "" {
			pk := model.CategoryKey{FullName: p, Kind: c.Kind}
			children[pk] = append(children[pk], c)
		}
	}
	return &Service{categories: categories, byKey: byKey, children: children}
}

// Load reads accounts/chart-of-categories.csv from a project root.
func Load(repoRoot string) (*Service, error) {
	path := filepath.Join(repoRoot, chartFile)
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening category chart: %w", err)
	}
	defer f.Close()

	cats, err := ReadCategories(f)
	if err != nil {
		return nil, fmt.Errorf("reading category chart: %w", err)
	}
	return NewService(cats), nil
}

// All returns all categories in file order.
func (s *Service) All() []model.Category {
	return s.categories
}

// Get returns a category by key.
func (s *Service) Get(key model.CategoryKey) (model.Category, bool) {
	c, ok := s.byKey[key]
	return c, ok
}

// Exists reports whether a category exists.
func (s *Service) Exists(key model.CategoryKey) bool {
	_, ok := s.byKey[key]
	return ok
}

// ByKind returns all categories of the given kind in file order.
func (s *Service) ByKind(kind model.CategoryKind) []model.Category {
	var result []model.Category
	for _, c := range s.categories {
		if c.Kind == kind {
			result = append(result, c)
		}
	}
	return result
}

// Visible reports whether c belongs on a report: it and every ancestor must
// exist, be active, and not be hidden.
func (s *Service) Visible(c model.Category) bool {
	for {
		if !c.Active || c.Hidden {
			return false
		}
		p := c.ParentName()
		if p == "" {
			return true
		}
		parent, ok := s.byKey[model.CategoryKey{FullName: p, Kind: c.Kind}]
		if !ok {
			return false
		}
		c = parent
	}
}

// HasVisibleChildren reports whether c has at least one active, non-hidden
// immediate sub-category.
func (s *Service) HasVisibleChildren(c model.Category) bool {
	for _, child := range s.children[c.Key()] {
		if child.Active && !child.Hidden {
			return true
		}
	}
	return false
}

// PreOrder returns the visible categories of kind in hierarchical pre-order:
// every parent directly precedes its subtree and siblings sort by name. The
// chart file order is not trusted. Categories left out because they or an
// ancestor are missing, inactive, or hidden are returned as skipped.
func (s *Service) PreOrder(kind model.CategoryKind) (ordered, skipped []model.Category) {
	for _, c := range s.ByKind(kind) {
		if s.Visible(c) {
			ordered = append(ordered, c)
		} else {
			skipped = append(skipped, c)
		}
	}
	slices.SortStableFunc(ordered, func(a, b model.Category) int {
		return slices.Compare(
			strings.Split(a.FullName, model.PathSeparator),
			strings.Split(b.FullName, model.PathSeparator),
		)
	})
	return ordered, skipped
}

// Save writes the chart to accounts/chart-of-categories.csv.
func (s *Service) Save(repoRoot string) error {
	dir := filepath.Join(repoRoot, filepath.Dir(chartFile))
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("creating accounts dir: %w", err)
	}

	f, err := os.Create(filepath.Join(repoRoot, chartFile))
	if err != nil {
		return fmt.Errorf("creating category chart file: %w", err)
	}
	defer f.Close()

	if err := WriteCategories(f, s.categories); err != nil {
		return fmt.Errorf("writing category chart: %w", err)
	}
	return nil
}
