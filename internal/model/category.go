package model

import (
	"fmt"
	"strings"
)

// CategoryKind classifies a report row.
type CategoryKind string

const (
	// KindRoot is the synthetic Income-Expenses net row.
	KindRoot    CategoryKind = "root"
	KindIncome  CategoryKind = "income"
	KindExpense CategoryKind = "expense"
)

// ParseKind converts a CSV kind column to a CategoryKind.
func ParseKind(s string) (CategoryKind, error) {
	switch k := CategoryKind(strings.ToLower(strings.TrimSpace(s))); k {
	case KindRoot, KindIncome, KindExpense:
		return k, nil
	default:
		return "", fmt.Errorf("unknown category kind %q", s)
	}
}

// PathSeparator separates segments of a category's full name ("Auto:Fuel").
const PathSeparator = ":"

// Category represents a row in chart-of-categories.csv.
type Category struct {
	FullName    string
	Kind        CategoryKind
	Active      bool
	Hidden      bool
	Description string
}

// Key returns the composite lookup key for the category.
func (c Category) Key() CategoryKey {
	return CategoryKey{FullName: c.FullName, Kind: c.Kind}
}

// ShortName returns the last path segment: "Auto:Fuel" -> "Fuel".
func (c Category) ShortName() string {
	i := strings.LastIndex(c.FullName, PathSeparator)
	return c.FullName[i+1:]
}

// ParentName returns the full name of the parent category, or "" at top level.
func (c Category) ParentName() string {
	i := strings.LastIndex(c.FullName, PathSeparator)
	if i < 0 {
		return ""
	}
	return c.FullName[:i]
}

// Depth returns the number of path separators in the full name.
func (c Category) Depth() int {
	return strings.Count(c.FullName, PathSeparator)
}

// CategoryKey identifies a category. The same full name may exist once per kind.
type CategoryKey struct {
	FullName string
	Kind     CategoryKind
}

func (k CategoryKey) String() string {
	return fmt.Sprintf("%s (%s)", k.FullName, k.Kind)
}
