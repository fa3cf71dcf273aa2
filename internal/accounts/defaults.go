package accounts

import (
	"fmt"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// DefaultChart returns the starter category chart for a template.
func DefaultChart(template string) ([]model.Category, error) {
	switch template {
	case "household":
		return householdChart(), nil
	default:
		return nil, fmt.Errorf("unknown chart template %q", template)
	}
}

func householdChart() []model.Category {
	income := func(name, desc string) model.Category {
		return model.Category{FullName: name, Kind: model.KindIncome, Active: true, Description: desc}
	}
	expense := func(name, desc string) model.Category {
		return model.Category{FullName: name, Kind: model.KindExpense, Active: true, Description: desc}
	}
	return []model.Category{
		income("Salary", "Take-home pay"),
		income("Interest", "Bank interest"),
		income("Other Income", ""),
		expense("Auto", ""),
		expense("Auto:Fuel", ""),
		expense("Auto:Insurance", ""),
		expense("Auto:Service", "Maintenance and repairs"),
		expense("Dining", "Restaurants and take-away"),
		expense("Groceries", ""),
		expense("Home", ""),
		expense("Home:Rent", ""),
		expense("Home:Utilities", ""),
		expense("Home:Utilities:Power", ""),
		expense("Home:Utilities:Water", ""),
		expense("Home:Utilities:Internet", ""),
		expense("Medical", ""),
		expense("Miscellaneous", ""),
	}
}
