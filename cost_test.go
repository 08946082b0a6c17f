package peanobrain

import (
	"testing"

	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/peanobrain/exprtree"
)

func TestCostIdealPredictions(t *testing.T) {
	c := anyvec32.CurrentCreator()
	tree := mustParse(t, "root(+(1, succ(0)))")
	targets := (&Sample{Tree: tree}).TargetSequence(c)

	// Confident, correct raw scores: the delta channel at
	// its hinge target and huge logits on the right
	// labels and slots.
	d := TargetDecisions(tree)
	for i, target := range targets {
		out := make([]float64, OutputCount)
		out[0] = d.Delta[i] * 2
		for k, x := range d.Label[i] {
			out[1+k] = x * 50
		}
		for k, x := range d.Slot[i] {
			out[1+exprtree.AlphabetSize+k] = x * 50
		}
		for k, x := range d.Assoc[i] {
			out[1+exprtree.AlphabetSize+NumSlots+k] = x*2 - 1
		}
		actual := anydiff.NewConst(c.MakeVectorData(c.MakeNumericList(out)))
		cost := editCost{}.Cost(anydiff.NewConst(target), actual, 1)
		if v := vectorData(cost.Output())[0]; v > 0.01 {
			t.Errorf("node %d: ideal prediction costs %f", i, v)
		}
	}
}

func TestCostWrongPredictions(t *testing.T) {
	c := anyvec32.CurrentCreator()
	tree := mustParse(t, "root(+(2, 0))")
	targets := (&Sample{Tree: tree}).TargetSequence(c)

	// The "+" node must be deleted; predicting a strong
	// keep there has to be expensive.
	out := make([]float64, OutputCount)
	actual := anydiff.NewConst(c.MakeVectorData(c.MakeNumericList(out)))
	cost := editCost{}.Cost(anydiff.NewConst(targets[1]), actual, 1)
	if v := vectorData(cost.Output())[0]; v < 0.5 {
		t.Errorf("wrong structural prediction costs only %f", v)
	}
}
