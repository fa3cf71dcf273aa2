package dateint

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Layout is the on-disk date format.
const Layout = "2006-01-02"

// Date returns the YYYYMMDD integer for a calendar date.
func Date(year, month, day int) int {
	return year*10000 + month*100 + day
}

// FromTime returns the YYYYMMDD integer for t.
func FromTime(t time.Time) int {
	return Date(t.Year(), int(t.Month()), t.Day())
}

// Split breaks a YYYYMMDD integer into its parts.
func Split(d int) (year, month, day int) {
	return d / 10000, (d / 100) % 100, d % 100
}

// Month returns the month component of a YYYYMMDD integer. The result is not
// range checked.
func Month(d int) int {
	return (d / 100) % 100
}

// Format returns a date integer as "2025-03-14".
func Format(d int) string {
	year, month, day := Split(d)
	return fmt.Sprintf("%04d-%02d-%02d", year, month, day)
}

// Parse parses "2025-03-14" into 20250314.
func Parse(s string) (int, error) {
	parts := strings.SplitN(strings.TrimSpace(s), "-", 3)
	if len(parts) != 3 {
		return 0, fmt.Errorf("invalid date format: %q", s)
	}

	year, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0, fmt.Errorf("invalid year in date %q: %w", s, err)
	}

	month, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0, fmt.Errorf("invalid month in date %q: %w", s, err)
	}

	day, err := strconv.Atoi(parts[2])
	if err != nil {
		return 0, fmt.Errorf("invalid day in date %q: %w", s, err)
	}

	return Date(year, month, day), nil
}

// MonthRange returns the half-open date range [start, end) covering count
// months of year beginning at startMonth. A range running past December ends
// on January 1st of the following year.
func MonthRange(year, startMonth, count int) (start, end int) {
	start = Date(year, startMonth, 1)
	if startMonth+count > 12 {
		return start, Date(year+1, 1, 1)
	}
	return start, Date(year, startMonth+count, 1)
}
