package accounts

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// Header is the CSV header for chart-of-categories.csv.
const Header = "full_name,kind,active,hidden,description"

const (
	numFields = 5
	colName   = 0
	colKind   = 1
	colActive = 2
	colHidden = 3
	colDesc   = 4
)

// ReadCategories reads chart-of-categories.csv.
func ReadCategories(r io.Reader) ([]model.Category, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = numFields

	records, err := cr.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("reading categories CSV: %w", err)
	}

	if len(records) == 0 {
		return nil, nil
	}

	var categories []model.Category
	for i, rec := range records[1:] {
		cat, err := UnmarshalCategory(rec)
		if err != nil {
			return nil, fmt.Errorf("row %d: %w", i+2, err)
		}
		categories = append(categories, cat)
	}
	return categories, nil
}

// WriteCategories writes chart-of-categories.csv.
func WriteCategories(w io.Writer, categories []model.Category) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write(strings.Split(Header, ",")); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for i, cat := range categories {
		if err := cw.Write(MarshalCategory(cat)); err != nil {
			return fmt.Errorf("writing row %d: %w", i+2, err)
		}
	}
	return cw.Error()
}

// MarshalCategory converts a Category to a CSV row.
func MarshalCategory(cat model.Category) []string {
	row := make([]string, numFields)
	row[colName] = cat.FullName
	row[colKind] = string(cat.Kind)
	row[colActive] = strconv.FormatBool(cat.Active)
	row[colHidden] = strconv.FormatBool(cat.Hidden)
	row[colDesc] = cat.Description
	return row
}

// UnmarshalCategory converts a CSV row to a Category. Empty active/hidden
// columns default to active and visible.
func UnmarshalCategory(record []string) (model.Category, error) {
	if len(record) != numFields {
		return model.Category{}, fmt.Errorf("expected %d fields, got %d", numFields, len(record))
	}

	name := strings.TrimSpace(record[colName])
	if name == "" || strings.HasPrefix(name, model.PathSeparator) || strings.HasSuffix(name, model.PathSeparator) ||
		strings.Contains(name, model.PathSeparator+model.PathSeparator) {
		return model.Category{}, fmt.Errorf("invalid category name %q", record[colName])
	}

	kind, err := model.ParseKind(record[colKind])
	if err != nil {
		return model.Category{}, err
	}
	if kind == model.KindRoot {
		return model.Category{}, fmt.Errorf("category %q: kind %q is reserved", name, kind)
	}

	active, err := parseBool(record[colActive], true)
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing active %q: %w", record[colActive], err)
	}

	hidden, err := parseBool(record[colHidden], false)
	if err != nil {
		return model.Category{}, fmt.Errorf("parsing hidden %q: %w", record[colHidden], err)
	}

	return model.Category{
		FullName:    name,
		Kind:        kind,
		Active:      active,
		Hidden:      hidden,
		Description: record[colDesc],
	}, nil
}

func parseBool(s string, def bool) (bool, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return def, nil
	}
	return strconv.ParseBool(s)
}
