package peanobrain

import (
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/peanobrain/exprtree"
)

const (
	// FeatureCount is the width of the per-node feature
	// vectors fed to the predictor: label one-hot, parent
	// label one-hot, child-slot flags, out-degree one-hot,
	// and a label one-hot per child slot.
	FeatureCount = exprtree.AlphabetSize*2 + NumSlots + 3 + NumSlots*exprtree.AlphabetSize

	// TargetWidth is the width of the per-node training
	// target vectors: structural delta, label one-hot,
	// child-slot one-hot, association targets.
	TargetWidth = 1 + exprtree.AlphabetSize + NumSlots + NumSlots
)

// NodeFeatures computes the fixed-width feature vector of
// every node in preorder. The features are degree-based
// and opaque to the edit machinery; only the predictor
// interprets them.
func NodeFeatures(t *exprtree.Tree) [][]float64 {
	pi := t.Parents()
	res := make([][]float64, t.Len())
	for i := range res {
		f := make([]float64, FeatureCount)
		f[t.Labels[i]] = 1
		if pi[i] >= 0 {
			f[exprtree.AlphabetSize+int(t.Labels[pi[i]])] = 1
			for slot, c := range t.Children[pi[i]] {
				if c == i && slot < NumSlots {
					f[exprtree.AlphabetSize*2+slot] = 1
				}
			}
		}
		deg := len(t.Children[i])
		if deg > 2 {
			deg = 2
		}
		f[exprtree.AlphabetSize*2+NumSlots+deg] = 1
		for slot, c := range t.Children[i] {
			if slot >= NumSlots {
				break
			}
			f[exprtree.AlphabetSize*2+NumSlots+3+slot*exprtree.AlphabetSize+int(t.Labels[c])] = 1
		}
		res[i] = f
	}
	return res
}

// TargetDecisions computes the ideal predictor output for
// one reduction step: the decisions that Decode turns
// back into exactly the script Match would emit.
func TargetDecisions(t *exprtree.Tree) *Decisions {
	n := t.Len()
	d := &Decisions{
		Delta: make([]float64, n),
		Label: make([][]float64, n),
		Slot:  make([][]float64, n),
		Assoc: make([][]float64, n),
	}
	for i := 0; i < n; i++ {
		d.Label[i] = oneHot(exprtree.AlphabetSize, int(t.Labels[i]))
		d.Slot[i] = make([]float64, NumSlots)
		d.Assoc[i] = make([]float64, NumSlots)
	}
	pi := t.Parents()
	for i := 0; i < n; i++ {
		switch {
		case t.Labels[i] == exprtree.Add:
			right := t.Children[i][1]
			switch {
			case t.Labels[right] == exprtree.Zero:
				d.Delta[i] = -1
				d.Delta[right] = -1
			case t.Labels[right] == exprtree.Succ:
				d.Delta[i] = 1
				d.Label[i] = oneHot(exprtree.AlphabetSize, int(exprtree.Succ))
				d.Slot[i][0] = 1
				d.Assoc[i][0] = 1
				d.Delta[right] = -1
			case t.Labels[right] != exprtree.Add:
				pred := exprtree.NumeralLabel(t.Labels[right].Digit() - 1)
				d.Delta[i] = 1
				d.Label[i] = oneHot(exprtree.AlphabetSize, int(exprtree.Succ))
				d.Slot[i][1] = 1
				d.Assoc[i][1] = 1
				d.Label[right] = oneHot(exprtree.AlphabetSize, int(pred))
			}
		case t.Labels[i] == exprtree.Succ && (t.Labels[pi[i]] != exprtree.Add || pi[i] == i-1):
			child := t.Children[i][0]
			if l := t.Labels[child]; l.IsNumeral() {
				d.Delta[i] = -1
				d.Label[child] = oneHot(exprtree.AlphabetSize,
					int(exprtree.NumeralLabel((l.Digit()+1)%10)))
			}
		}
	}
	return d
}

// A Sample is a single derivation step used as a training
// example: the predictor sees the tree and must score the
// edits that produce its successor, or no edits at all
// for a normal form.
type Sample struct {
	Tree *exprtree.Tree
}

// InputSequence generates the sample's input sequence,
// one feature vector per node in preorder.
func (s *Sample) InputSequence(c anyvec.Creator) []anyvec.Vector {
	features := NodeFeatures(s.Tree)
	res := make([]anyvec.Vector, len(features))
	for i, f := range features {
		res[i] = c.MakeVectorData(c.MakeNumericList(f))
	}
	return res
}

// TargetSequence generates the sample's supervision
// sequence, one packed target vector per node.
//
// The layout is [delta | label one-hot | slot one-hot |
// association]. An all-zero label block means the label
// is unconstrained (deleted node); an association entry
// of -1 means that child gap carries no constraint.
func (s *Sample) TargetSequence(c anyvec.Creator) []anyvec.Vector {
	d := TargetDecisions(s.Tree)
	res := make([]anyvec.Vector, s.Tree.Len())
	for i := range res {
		v := make([]float64, TargetWidth)
		v[0] = d.Delta[i]
		off := 1
		if d.Delta[i] > -0.5 {
			copy(v[off:], d.Label[i])
		}
		off += exprtree.AlphabetSize
		copy(v[off:], d.Slot[i])
		off += NumSlots
		for k := range d.Assoc[i] {
			v[off+k] = -1
		}
		if d.Delta[i] > 0.5 {
			slot := argmax(d.Slot[i])
			span := 0
			for slot+span < NumSlots && d.Assoc[i][slot+span] > 0.5 {
				v[off+slot+span] = 1
				span++
			}
			if gap := slot + span; gap < len(s.Tree.Children[i]) && gap < NumSlots {
				v[off+gap] = 0
			}
		}
		res[i] = c.MakeVectorData(c.MakeNumericList(v))
	}
	return res
}

// GenerateSamples reduces randomly generated expressions
// and flattens every trace entry, including the final
// normal form, into training samples.
func GenerateSamples(g *exprtree.Generator, count, maxSteps int) (SampleList, error) {
	var res SampleList
	for len(res) < count {
		trace, err := Reduce(g.Generate(), maxSteps)
		if err != nil {
			return nil, err
		}
		for _, t := range trace {
			res = append(res, &Sample{Tree: t})
			if len(res) == count {
				break
			}
		}
	}
	return res, nil
}

// A SampleList wraps a slice of Samples for training.
type SampleList []*Sample

// Len returns the number of samples.
func (s SampleList) Len() int {
	return len(s)
}

// Swap swaps two samples.
func (s SampleList) Swap(i, j int) {
	s[i], s[j] = s[j], s[i]
}

// Slice returns a subset of the sample list.
func (s SampleList) Slice(i, j int) anysgd.SampleList {
	return append(SampleList{}, s[i:j]...)
}

func oneHot(size, hot int) []float64 {
	res := make([]float64, size)
	res[hot] = 1
	return res
}
