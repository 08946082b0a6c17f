// Package peanobrain reduces symbolic addition
// expressions to normal form under the Peano axioms,
// +(m, 0) = m and +(m, succ(n)) = +(succ(m), n), by
// repeatedly emitting and applying tree-edit scripts. It
// also derives node alignments between derivation steps
// and decodes per-node predictor decisions into applicable
// scripts, which together form the training substrate for
// a learned edit predictor.
package peanobrain

import (
	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/peanobrain/treeedit"
)

// Match scans a tree in one forward pass and emits the
// edit script for a single reduction step.
//
// At every "+" node, the first matching rule wins:
//
//  1. right child "0": delete the "+" and the "0".
//  2. right child "succ": insert a "succ" over the left
//     child, delete the right "succ".
//  3. right child a positive numeral n: insert a "succ"
//     over the right child and replace n with n-1.
//
// A "succ" node that is not the right child of a "+" and
// whose child is a bare numeral n is resolved to
// (n+1) mod 10 by deleting the "succ" and replacing the
// numeral.
//
// All positions in the script are pre-shifted through the
// returned PositionMap, so the script applies cleanly in
// order. An empty script means the tree is in normal
// form.
func Match(t *exprtree.Tree) (treeedit.Script, treeedit.PositionMap) {
	pi := t.Parents()
	shift := treeedit.NewPositionMap(t.Len())
	var script treeedit.Script

	for i := 0; i < t.Len(); i++ {
		switch {
		case t.Labels[i] == exprtree.Add:
			right := t.Children[i][1]
			switch {
			case t.Labels[right] == exprtree.Zero:
				script = append(script, &treeedit.Deletion{Pos: shift.Of(i)})
				shift.ShiftFrom(i+1, -1)
				script = append(script, &treeedit.Deletion{Pos: shift.Of(right)})
				shift.ShiftFrom(right+1, -1)
			case t.Labels[right] == exprtree.Succ:
				script = append(script, &treeedit.Insertion{
					Pos:       shift.Of(i),
					ChildSlot: 0,
					Label:     exprtree.Succ,
					Span:      1,
				})
				shift.ShiftRange(i+1, right+1, 1)
				script = append(script, &treeedit.Deletion{Pos: shift.Of(right)})
			case t.Labels[right] != exprtree.Add:
				pred := exprtree.NumeralLabel(t.Labels[right].Digit() - 1)
				script = append(script, &treeedit.Insertion{
					Pos:       shift.Of(i),
					ChildSlot: 1,
					Label:     exprtree.Succ,
					Span:      1,
				})
				shift.ShiftFrom(right, 1)
				script = append(script, &treeedit.Replacement{Pos: shift.Of(right), Label: pred})
			}
		case t.Labels[i] == exprtree.Succ && (t.Labels[pi[i]] != exprtree.Add || pi[i] == i-1):
			child := t.Children[i][0]
			if l := t.Labels[child]; l.IsNumeral() {
				script = append(script, &treeedit.Deletion{Pos: shift.Of(i)})
				shift.ShiftFrom(i+1, -1)
				script = append(script, &treeedit.Replacement{
					Pos:   shift.Of(child),
					Label: exprtree.NumeralLabel((l.Digit() + 1) % 10),
				})
			}
		}
	}
	return script, shift
}
