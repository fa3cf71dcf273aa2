package rollup

import (
	"fmt"

	"github.com/cleared-dev/budgetreport/internal/model"
)

// Descriptor describes a real category being added to a Tree.
type Descriptor struct {
	FullName    string
	Kind        model.CategoryKind
	HasChildren bool // at least one active, visible sub-category
}

// IndentLevel returns the row depth for a category: levels 0 and 1 belong to
// the Root and section header rows, so real categories start at 2.
func (d Descriptor) IndentLevel() int {
	return 2 + model.Category{FullName: d.FullName}.Depth()
}

// Tree is the insertion-ordered list of report rows. Row indexes are stable
// for the life of the tree; a new report builds a new tree.
//
// Rows must be added in pre-order: Root, the Income header, income
// categories, the Expense header, then expense categories.
type Tree struct {
	nodes   []*Node
	byKey   map[model.CategoryKey]int
	tracker *ParentTracker
}

// NewTree creates an empty Tree.
func NewTree() *Tree {
	return &Tree{
		byKey:   make(map[model.CategoryKey]int),
		tracker: NewParentTracker(),
	}
}

// AddHeader appends a synthetic Root, Income, or Expense row. Header rows
// always have children.
//
// The node is appended even when the error is ErrMissingParentFrame.
func (t *Tree) AddHeader(name string, kind model.CategoryKind, indentLevel int) (*Node, error) {
	return t.appendNode(&Node{
		ShortName:   name,
		Kind:        kind,
		IndentLevel: indentLevel,
		HasChildren: true,
	})
}

// Add appends a real category. A category whose (full name, kind) is already
// present is rejected with ErrDuplicateCategory and the tree is unchanged.
//
// The node is appended even when the error is ErrMissingParentFrame.
func (t *Tree) Add(d Descriptor) (*Node, error) {
	key := model.CategoryKey{FullName: d.FullName, Kind: d.Kind}
	if _, ok := t.byKey[key]; ok {
		return nil, fmt.Errorf("%s: %w", key, ErrDuplicateCategory)
	}

	n, err := t.appendNode(&Node{
		ShortName:   model.Category{FullName: d.FullName}.ShortName(),
		FullName:    d.FullName,
		Kind:        d.Kind,
		IndentLevel: d.IndentLevel(),
		HasChildren: d.HasChildren,
	})
	t.byKey[key] = n.Row
	return n, err
}

func (t *Tree) appendNode(n *Node) (*Node, error) {
	n.Row = len(t.nodes)
	parent, err := t.tracker.Resolve(n.IndentLevel, n.HasChildren, n.Row)
	n.Parent = parent
	t.nodes = append(t.nodes, n)
	if err != nil {
		return n, fmt.Errorf("row %d (%s): %w", n.Row, n.ShortName, err)
	}
	return n, nil
}

// Len returns the number of rows.
func (t *Tree) Len() int {
	return len(t.nodes)
}

// Node returns the row at index i.
func (t *Tree) Node(i int) (*Node, error) {
	if i < 0 || i >= len(t.nodes) {
		return nil, fmt.Errorf("row %d: %w", i, ErrNoSuchRow)
	}
	return t.nodes[i], nil
}

// Lookup returns the row for a real category.
func (t *Tree) Lookup(fullName string, kind model.CategoryKind) (*Node, bool) {
	i, ok := t.byKey[model.CategoryKey{FullName: fullName, Kind: kind}]
	if !ok {
		return nil, false
	}
	return t.nodes[i], true
}

// Nodes returns all rows in display order.
func (t *Tree) Nodes() []*Node {
	return t.nodes
}
