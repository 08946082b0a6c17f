package treeedit

import (
	"strings"

	"github.com/unixpickle/peanobrain/exprtree"
)

// A Script is an ordered sequence of edit operations.
//
// Order matters: each operation addresses the tree as
// produced by all operations before it. A Script is a
// short-lived value, built by a matcher or decoder and
// consumed once by Apply.
type Script []Op

// Apply runs every operation in order and returns the
// resulting tree. The input tree is not modified.
//
// Apply never fails for well-formed scripts; an error
// indicates a contract violation by whichever component
// emitted the script.
func (s Script) Apply(t *exprtree.Tree) (*exprtree.Tree, error) {
	res := t
	for _, op := range s {
		var err error
		if res, err = op.Apply(res); err != nil {
			return nil, err
		}
	}
	return res, nil
}

// String lists the operations in order.
func (s Script) String() string {
	strs := make([]string, len(s))
	for i, op := range s {
		strs[i] = op.String()
	}
	return "[" + strings.Join(strs, " ") + "]"
}
