package rollup

import (
	"fmt"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// Node is one report row.
type Node struct {
	Row         int
	ShortName   string
	FullName    string // empty for header rows
	Kind        model.CategoryKind
	IndentLevel int
	HasChildren bool
	Parent      int // NoParent for Root

	budget Ledger
	actual Ledger
}

// Budget returns a copy of the budgeted ledger.
func (n *Node) Budget() Ledger { return n.budget }

// Actual returns a copy of the actual ledger.
func (n *Node) Actual() Ledger { return n.actual }

// IsHeader reports whether n is a synthetic Root/Income/Expense row.
func (n *Node) IsHeader() bool { return n.FullName == "" }

// propagationSign is the sign applied when child's delta moves into parent.
// Expenses reduce the net figure, so only the step into Root flips the sign.
func propagationSign(child, parent *Node) int64 {
	if parent.Kind == model.KindRoot && child.Kind == model.KindExpense {
		return -1
	}
	return 1
}

// SetBudget stores value as the budget for month on a leaf row and pushes the
// change up through every ancestor.
//
// If an ancestor cannot be found the walk stops there with ErrOrphanParent;
// rows already updated keep their new values.
func (t *Tree) SetBudget(row, month int, value int64) error {
	n, err := t.Node(row)
	if err != nil {
		return err
	}
	if err := checkMonth(month); err != nil {
		return fmt.Errorf("row %d month %d: %w", row, month, err)
	}
	if n.HasChildren {
		return fmt.Errorf("row %d (%s): %w", row, n.ShortName, ErrRollupRow)
	}

	delta := value - n.budget.Month(month)
	n.budget.add(month, delta)

	for child := n; child.Parent != NoParent; {
		parent, err := t.parentOf(child)
		if err != nil {
			return err
		}
		delta *= propagationSign(child, parent)
		parent.budget.add(month, delta)
		child = parent
	}
	return nil
}

// AddActual adds deltas to row's actual ledger and rolls them up to every
// ancestor.
func (t *Tree) AddActual(row int, deltas Ledger) error {
	n, err := t.Node(row)
	if err != nil {
		return err
	}
	n.actual.addLedger(deltas, 1)

	for child := n; child.Parent != NoParent; {
		parent, err := t.parentOf(child)
		if err != nil {
			return err
		}
		parent.actual.addLedger(deltas, propagationSign(child, parent))
		child = parent
	}
	return nil
}

func (t *Tree) parentOf(n *Node) (*Node, error) {
	// Parents are always inserted before their children.
	if n.Parent < 0 || n.Parent >= n.Row || n.Parent >= len(t.nodes) {
		return nil, fmt.Errorf("row %d (%s) parent %d: %w", n.Row, n.ShortName, n.Parent, ErrOrphanParent)
	}
	return t.nodes[n.Parent], nil
}
