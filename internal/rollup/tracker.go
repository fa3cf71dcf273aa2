package rollup

import "fmt"

// NoParent is the parent index of the Root row.
const NoParent = -1

type frame struct {
	level  int
	parent int
}

// ParentTracker maps a pre-order stream of (indent level, has children) pairs
// to parent row indexes. A fresh tracker is used for every tree build.
type ParentTracker struct {
	childLevel int // indent level expected for the next child
	parent     int // row children attach to
	stack      []frame
}

// NewParentTracker returns a tracker positioned before the Root row.
func NewParentTracker() *ParentTracker {
	return &ParentTracker{parent: NoParent}
}

// Resolve returns the parent row for the next node. nextRow is the row that
// node will occupy once appended.
//
// If the indent level steps back to a level with no saved frame, Resolve
// keeps the current frame and returns it together with ErrMissingParentFrame.
func (p *ParentTracker) Resolve(indentLevel int, hasChildren bool, nextRow int) (int, error) {
	var err error
	if indentLevel < p.childLevel {
		err = p.unwind(indentLevel)
	}

	parent := p.parent

	if hasChildren {
		p.stack = append(p.stack, frame{level: p.childLevel, parent: p.parent})
		p.parent = nextRow
		p.childLevel = indentLevel + 1
	}
	return parent, err
}

// unwind pops frames until one saved at indentLevel is on top and restores it.
// The matching frame stays on the stack so later siblings can return to it.
func (p *ParentTracker) unwind(indentLevel int) error {
	for len(p.stack) > 0 {
		top := p.stack[len(p.stack)-1]
		if top.level == indentLevel {
			p.childLevel = top.level
			p.parent = top.parent
			return nil
		}
		p.stack = p.stack[:len(p.stack)-1]
	}
	return fmt.Errorf("indent level %d: %w", indentLevel, ErrMissingParentFrame)
}
