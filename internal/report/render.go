package report

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/cleared-dev/budgetreport/internal/money"
	"github.com/cleared-dev/budgetreport/internal/rollup"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	headerStyle = lipgloss.NewStyle().Bold(true).Padding(0, 1)
	nameStyle   = lipgloss.NewStyle().Padding(0, 1)
	amountStyle = lipgloss.NewStyle().Padding(0, 1).Align(lipgloss.Right)
	rollupStyle = nameStyle.Bold(true)
)

// indentWidth is the number of spaces per category level.
const indentWidth = 2

// Render writes the report as a table: one row per tree node and a
// Budget/Actual/Difference column triple per month or for the whole period.
func Render(w io.Writer, res *Result, places int32) error {
	layout := res.Params.Layout()
	cols := layout.Columns()

	headers := make([]string, 0, len(cols)+1)
	headers = append(headers, "Category")
	for _, c := range cols {
		headers = append(headers, c.Header(layout))
	}

	nodes := res.Tree.Nodes()
	rows := make([][]string, 0, len(nodes))
	for _, n := range nodes {
		rows = append(rows, renderRow(n, cols, layout, places))
	}

	t := table.New().
		Border(lipgloss.NormalBorder()).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case col > 0:
				return amountStyle
			case row < len(nodes) && nodes[row].HasChildren:
				return rollupStyle
			default:
				return nameStyle
			}
		})

	if _, err := fmt.Fprintln(w, titleStyle.Render(Title(res.Params))); err != nil {
		return err
	}
	_, err := fmt.Fprintln(w, t.String())
	return err
}

func renderRow(n *rollup.Node, cols []rollup.Column, layout rollup.Layout, places int32) []string {
	row := make([]string, 0, len(cols)+1)
	row = append(row, strings.Repeat(" ", n.IndentLevel*indentWidth)+n.ShortName)
	for _, c := range cols {
		v, ok := rollup.CellValue(n, c, layout)
		if !ok {
			row = append(row, "")
			continue
		}
		row = append(row, money.Format(v, places))
	}
	return row
}

// Title returns the report heading: name, budget, and the covered months.
func Title(p Params) string {
	w := p.Window
	span := fmt.Sprintf("%s %d", rollup.ShortMonths[w.StartMonth-1], w.Year)
	if w.EndMonth != w.StartMonth {
		span = fmt.Sprintf("%s to %s %d", span, rollup.ShortMonths[w.EndMonth-1], w.Year)
	}
	return fmt.Sprintf("%s (%s): %s", p.Name, p.Budget, span)
}
