package rollup

import "errors"

// Recoverable build and edit failures. None of them invalidate the rest of a
// tree; callers report them and carry on.
var (
	ErrDuplicateCategory  = errors.New("duplicate category")
	ErrMissingParentFrame = errors.New("no parent frame for indent level")
	ErrOrphanParent       = errors.New("parent row does not exist")
	ErrMonthOutOfRange    = errors.New("month out of range")
	ErrNoSuchRow          = errors.New("no such row")
	ErrRollupRow          = errors.New("rollup rows only total their sub-categories")
)

func checkMonth(month int) error {
	if month < 1 || month > 12 {
		return ErrMonthOutOfRange
	}
	return nil
}
