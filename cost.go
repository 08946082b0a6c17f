package peanobrain

import (
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/peanobrain/exprtree"
)

// editCost is the training cost for per-node edit scores.
//
// The delta channel is pushed below -1 for deletions,
// above +1 for insertions and into [-0.25, 0.25] for kept
// nodes, with squared hinge penalties. Label and slot
// blocks pay log-softmax cross-entropy against their
// one-hot targets where the target constrains them, and
// association scores pay squared hinges on the entries
// the target marks as large or small.
type editCost struct{}

// Cost computes one cost per packed batch row.
func (editCost) Cost(desired, actual anydiff.Res, n int) anydiff.Res {
	c := desired.Output().Creator()
	des := vectorData(desired.Output())

	const (
		labelOff = 1
		slotOff  = labelOff + exprtree.AlphabetSize
		assocOff = slotOff + NumSlots
	)

	rows := make([]anydiff.Res, n)
	for r := 0; r < n; r++ {
		tgt := des[r*TargetWidth : (r+1)*TargetWidth]
		row := anydiff.Slice(actual, r*OutputCount, (r+1)*OutputCount)

		delta := anydiff.Slice(row, 0, 1)
		var terms []anydiff.Res
		switch {
		case tgt[0] < -0.5:
			terms = append(terms, squaredHinge(c, delta, -1, 1))
		case tgt[0] > 0.5:
			terms = append(terms, squaredHinge(c, delta, 1, 1))
		default:
			terms = append(terms,
				squaredHinge(c, delta, -1, -0.25),
				squaredHinge(c, delta, 1, -0.25))
		}

		if hasOneHot(tgt[labelOff:slotOff]) {
			block := anydiff.Slice(row, labelOff, slotOff)
			terms = append(terms, crossEntropy(c, block, tgt[labelOff:slotOff]))
		}
		if tgt[0] > 0.5 && hasOneHot(tgt[slotOff:assocOff]) {
			block := anydiff.Slice(row, slotOff, assocOff)
			terms = append(terms, crossEntropy(c, block, tgt[slotOff:assocOff]))
		}
		for k, at := range tgt[assocOff:] {
			if at < -0.5 {
				continue
			}
			score := anydiff.Slice(row, assocOff+k, assocOff+k+1)
			if at > 0.5 {
				terms = append(terms, squaredHinge(c, score, 1, 1))
			} else {
				terms = append(terms, squaredHinge(c, score, -1, 0))
			}
		}

		total := terms[0]
		for _, t := range terms[1:] {
			total = anydiff.Add(total, t)
		}
		rows[r] = total
	}
	return anydiff.Concat(rows...)
}

// squaredHinge computes relu(margin - sign*x)^2 for a
// length-1 result, pushing sign*x above margin.
func squaredHinge(c anyvec.Creator, x anydiff.Res, sign, margin float64) anydiff.Res {
	flipped := anydiff.Scale(x, c.MakeNumeric(-sign))
	shifted := anydiff.Add(flipped, scalarConst(c, margin))
	clipped := anydiff.ClipPos(shifted)
	return anydiff.Mul(clipped, clipped)
}

// crossEntropy computes -sum(target * logsoftmax(block))
// as a length-1 result.
func crossEntropy(c anyvec.Creator, block anydiff.Res, target []float64) anydiff.Res {
	logProbs := anydiff.LogSoftmax(block, len(target))
	picked := anydiff.Mul(logProbs, anydiff.NewConst(c.MakeVectorData(c.MakeNumericList(target))))
	sum := anydiff.SumCols(&anydiff.Matrix{Data: picked, Rows: 1, Cols: len(target)})
	return anydiff.Scale(sum, c.MakeNumeric(-1))
}

func scalarConst(c anyvec.Creator, x float64) anydiff.Res {
	return anydiff.NewConst(c.MakeVectorData(c.MakeNumericList([]float64{x})))
}

func hasOneHot(block []float64) bool {
	for _, x := range block {
		if x != 0 {
			return true
		}
	}
	return false
}
