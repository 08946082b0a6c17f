package peanobrain

import (
	"math"

	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/peanobrain/treeedit"
)

// NumSlots is the width of the child-slot and association
// score vectors: the maximum child count in the alphabet
// (the binary "+").
const NumSlots = 2

// Decisions holds a predictor's raw per-node output for
// one tree.
//
// Delta is the structural score: below -0.5 the node is
// deleted, above +0.5 a node is inserted at it, otherwise
// it is kept (and relabeled if the best label differs).
// Label, Slot and Assoc hold per-node score vectors over
// the alphabet, the child slots, and the child gaps.
type Decisions struct {
	Delta []float64
	Label [][]float64
	Slot  [][]float64
	Assoc [][]float64
}

// Decode converts per-node decisions into one well-formed
// edit script and applies it.
//
// The phase order is load-bearing: replacements first
// (they address the unedited tree), then insertions in
// ascending index order while tracking an insertion shift
// table, then deletions in descending order positioned
// through that table. Interleaving the phases would
// misalign positions for later operations.
func Decode(t *exprtree.Tree, d *Decisions) (treeedit.Script, *exprtree.Tree, error) {
	var script treeedit.Script

	for i := 0; i < t.Len(); i++ {
		if math.Abs(d.Delta[i]) > 0.5 {
			continue
		}
		if best := exprtree.Label(argmax(d.Label[i])); best != t.Labels[i] {
			script = append(script, &treeedit.Replacement{Pos: i, Label: best})
		}
	}

	shift := treeedit.NewPositionMap(t.Len())
	for i := 0; i < t.Len(); i++ {
		if d.Delta[i] <= 0.5 {
			continue
		}
		label := exprtree.Label(argmax(d.Label[i]))
		c := argmax(d.Slot[i])
		kids := t.Children[i]
		if c > len(kids) {
			return nil, nil, &InvalidDecisionError{Pos: i, ChildSlot: c, NumChildren: len(kids)}
		}
		span := 0
		for c+span < len(kids) && c+span < len(d.Assoc[i]) && d.Assoc[i][c+span] > 0.5 {
			span++
		}
		script = append(script, &treeedit.Insertion{
			Pos:       shift.Of(i),
			ChildSlot: c,
			Label:     label,
			Span:      span,
		})
		// The first index the insertion displaces: the
		// child at the slot, or one past the node's
		// rightmost descendant if no child is consumed.
		var j int
		if c < len(kids) {
			j = kids[c]
		} else {
			j = i
			for len(t.Children[j]) > 0 {
				sub := t.Children[j]
				j = sub[len(sub)-1]
			}
			j++
		}
		if j < t.Len() {
			shift.ShiftFrom(j, 1)
		}
	}

	for i := t.Len() - 1; i >= 0; i-- {
		if d.Delta[i] >= -0.5 {
			continue
		}
		script = append(script, &treeedit.Deletion{Pos: shift.Of(i)})
	}

	res, err := script.Apply(t)
	if err != nil {
		return nil, nil, err
	}
	return script, res, nil
}

func argmax(scores []float64) int {
	best := 0
	for i, s := range scores {
		if s > scores[best] {
			best = i
		}
	}
	return best
}
