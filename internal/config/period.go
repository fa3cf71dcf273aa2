package config

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// Period selects the months a report covers.
type Period string

const (
	PeriodAutomatic Period = "automatic"  // January through the current month
	PeriodThisYear  Period = "this_year"  // all of the current year
	PeriodLastYear  Period = "last_year"  // all of the previous year
	PeriodThisMonth Period = "this_month" // the current month only
	PeriodLastMonth Period = "last_month" // the previous month only
	PeriodCustom    Period = "custom"     // year, start_month and end_month from config
)

var zeroTime time.Time

// ParsePeriod converts a config or flag value to a Period. Empty means automatic.
func ParsePeriod(s string) (Period, error) {
	switch p := Period(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PeriodAutomatic, nil
	case PeriodAutomatic, PeriodThisYear, PeriodLastYear, PeriodThisMonth, PeriodLastMonth, PeriodCustom:
		return p, nil
	default:
		return "", fmt.Errorf("unknown period %q", s)
	}
}

// Window is a resolved reporting range within a single year.
type Window struct {
	Year       int
	StartMonth int
	EndMonth   int
}

// Months returns the number of months in the window.
func (w Window) Months() int {
	return w.EndMonth - w.StartMonth + 1
}

// Window resolves the report period relative to now.
func (r ReportConfig) Window(now time.Time) (Window, error) {
	period, err := ParsePeriod(string(r.Period))
	if err != nil {
		return Window{}, err
	}

	year, month := now.Year(), int(now.Month())
	switch period {
	case PeriodThisYear:
		return Window{Year: year, StartMonth: 1, EndMonth: 12}, nil
	case PeriodLastYear:
		return Window{Year: year - 1, StartMonth: 1, EndMonth: 12}, nil
	case PeriodThisMonth:
		return Window{Year: year, StartMonth: month, EndMonth: month}, nil
	case PeriodLastMonth:
		if month == 1 {
			return Window{Year: year - 1, StartMonth: 12, EndMonth: 12}, nil
		}
		return Window{Year: year, StartMonth: month - 1, EndMonth: month - 1}, nil
	case PeriodCustom:
		w := Window{Year: r.Year, StartMonth: r.StartMonth, EndMonth: r.EndMonth}
		if w.Year <= 0 {
			return Window{}, errors.New("custom period needs a year")
		}
		if w.StartMonth < 1 || w.EndMonth > 12 || w.StartMonth > w.EndMonth {
			return Window{}, fmt.Errorf("custom period months %d..%d not within 1..12", w.StartMonth, w.EndMonth)
		}
		return w, nil
	default:
		return Window{Year: year, StartMonth: 1, EndMonth: month}, nil
	}
}
