package peanobrain

import (
	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/peanobrain/treeedit"
)

// Align derives the node correspondence between a tree
// and its Match successor.
//
// It re-runs the matching logic but records, for every
// original index, either the index it keeps in the
// successor or treeedit.None for deleted nodes. A merge
// pass then interleaves insertion-only pairs for the
// newly created "succ" nodes, so that every index of both
// trees is covered exactly once.
//
// The successor must be the tree produced by applying
// Match's script; anything else can trip the defensive
// *AlignmentError checks.
func Align(t, next *exprtree.Tree) (treeedit.Alignment, error) {
	pi := t.Parents()
	shift := treeedit.NewPositionMap(t.Len())
	mapped := make([]int, t.Len())
	done := make([]bool, t.Len())

	for i := 0; i < t.Len(); i++ {
		switch {
		case t.Labels[i] == exprtree.Add:
			right := t.Children[i][1]
			switch {
			case t.Labels[right] == exprtree.Zero:
				mapped[i], done[i] = treeedit.None, true
				shift.ShiftFrom(i, -1)
				mapped[right], done[right] = treeedit.None, true
				shift.ShiftFrom(right+1, -1)
			case t.Labels[right] == exprtree.Succ:
				shift.ShiftRange(i+1, right+1, 1)
				mapped[right], done[right] = treeedit.None, true
			case t.Labels[right] != exprtree.Add:
				shift.ShiftFrom(right, 1)
			}
		case t.Labels[i] == exprtree.Succ && (t.Labels[pi[i]] != exprtree.Add || pi[i] == i-1):
			if t.Labels[t.Children[i][0]].IsNumeral() {
				mapped[i], done[i] = treeedit.None, true
				shift.ShiftFrom(i, -1)
			}
		}
		if !done[i] {
			mapped[i] = shift.Of(i)
		}
	}

	var res treeedit.Alignment
	j := 0
	for i := 0; i < t.Len(); i++ {
		if mapped[i] == treeedit.None {
			res = append(res, treeedit.Pair{Left: i, Right: treeedit.None})
			continue
		}
		if mapped[i] < j {
			return nil, &AlignmentError{Left: i, Mapped: mapped[i], Cursor: j}
		}
		for ; j < mapped[i]; j++ {
			res = append(res, treeedit.Pair{Left: treeedit.None, Right: j})
		}
		res = append(res, treeedit.Pair{Left: i, Right: j})
		j++
	}
	if j != next.Len() {
		return nil, &AlignmentError{Left: t.Len(), Mapped: j, Cursor: next.Len()}
	}
	return res, nil
}
