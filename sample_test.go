package peanobrain

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/unixpickle/anyvec/anyvec32"
	"github.com/unixpickle/peanobrain/exprtree"
)

func TestTargetDecisionsBaseCase(t *testing.T) {
	d := TargetDecisions(mustParse(t, "root(+(2, 0))"))
	if diff := cmp.Diff([]float64{0, -1, 0, -1}, d.Delta); diff != "" {
		t.Errorf("delta mismatch:\n%s", diff)
	}
}

func TestTargetDecisionsCarry(t *testing.T) {
	tree := mustParse(t, "root(+(1, succ(0)))")
	d := TargetDecisions(tree)
	if diff := cmp.Diff([]float64{0, 1, 0, -1, 0}, d.Delta); diff != "" {
		t.Errorf("delta mismatch:\n%s", diff)
	}
	if argmax(d.Label[1]) != int(exprtree.Succ) {
		t.Error("insert label should be succ")
	}
	if argmax(d.Slot[1]) != 0 {
		t.Error("carry should insert at slot 0")
	}
	if d.Assoc[1][0] != 1 || d.Assoc[1][1] != 0 {
		t.Errorf("bad association targets: %v", d.Assoc[1])
	}
}

func TestTargetDecisionsUnfolding(t *testing.T) {
	tree := mustParse(t, "root(+(1, 3))")
	d := TargetDecisions(tree)
	if diff := cmp.Diff([]float64{0, 1, 0, 0}, d.Delta); diff != "" {
		t.Errorf("delta mismatch:\n%s", diff)
	}
	if argmax(d.Slot[1]) != 1 {
		t.Error("unfolding should insert at slot 1")
	}
	if argmax(d.Label[3]) != int(exprtree.Two) {
		t.Error("right numeral should be replaced with its predecessor")
	}
}

func TestTargetDecisionsResolution(t *testing.T) {
	tree := mustParse(t, "root(succ(4))")
	d := TargetDecisions(tree)
	if diff := cmp.Diff([]float64{0, -1, 0}, d.Delta); diff != "" {
		t.Errorf("delta mismatch:\n%s", diff)
	}
	if argmax(d.Label[2]) != int(exprtree.Five) {
		t.Error("numeral should be replaced with its successor")
	}
}

func TestNodeFeatures(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	features := NodeFeatures(tree)
	if len(features) != tree.Len() {
		t.Fatalf("expected %d rows got %d", tree.Len(), len(features))
	}
	for i, f := range features {
		if len(f) != FeatureCount {
			t.Fatalf("row %d: expected width %d got %d", i, FeatureCount, len(f))
		}
		if f[tree.Label(i)] != 1 {
			t.Errorf("row %d: label one-hot missing", i)
		}
	}
	// "2" is the first child of "+".
	if features[2][exprtree.AlphabetSize*2] != 1 {
		t.Error("left-child flag missing")
	}
	// "0" is the second child of "+".
	if features[3][exprtree.AlphabetSize*2+1] != 1 {
		t.Error("right-child flag missing")
	}
}

func TestSequences(t *testing.T) {
	c := anyvec32.CurrentCreator()
	s := &Sample{Tree: mustParse(t, "root(+(1, succ(0)))")}
	ins := s.InputSequence(c)
	outs := s.TargetSequence(c)
	if len(ins) != 5 || len(outs) != 5 {
		t.Fatalf("expected 5 timesteps got %d and %d", len(ins), len(outs))
	}
	for i := range ins {
		if ins[i].Len() != FeatureCount {
			t.Errorf("input %d: expected width %d got %d", i, FeatureCount, ins[i].Len())
		}
		if outs[i].Len() != TargetWidth {
			t.Errorf("target %d: expected width %d got %d", i, TargetWidth, outs[i].Len())
		}
	}
	// Deleted nodes leave the label block unconstrained.
	row := vectorData(outs[3])
	for k := 1; k < 1+exprtree.AlphabetSize; k++ {
		if row[k] != 0 {
			t.Errorf("deleted node should have a zero label block, got %v", row)
			break
		}
	}
}

func TestGenerateSamples(t *testing.T) {
	rand.Seed(5)
	gen := &exprtree.Generator{MaxAdditions: 2, MaxNumeral: 5}
	samples, err := GenerateSamples(gen, 50, 10000)
	if err != nil {
		t.Fatal(err)
	}
	if samples.Len() != 50 {
		t.Fatalf("expected 50 samples got %d", samples.Len())
	}
	sub := samples.Slice(10, 20)
	if sub.Len() != 10 {
		t.Fatalf("expected 10 samples got %d", sub.Len())
	}
}
