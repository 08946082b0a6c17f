package peanobrain

import (
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anydiff/anyseq"
	"github.com/unixpickle/anynet/anys2s"
	"github.com/unixpickle/anynet/anysgd"
	"github.com/unixpickle/anyvec"
)

// Batch is a batch of fetched training samples.
type Batch struct {
	Ins  anyseq.Seq
	Outs anyseq.Seq
}

// A Trainer computes costs and gradients for a Network.
type Trainer struct {
	Network *Network

	// LastCost is set by every call to Gradient.
	LastCost anyvec.Numeric
}

// Fetch creates a *Batch from a SampleList.
func (t *Trainer) Fetch(s anysgd.SampleList) (anysgd.Batch, error) {
	c := t.Network.creator()
	var ins, outs [][]anyvec.Vector
	for i := 0; i < s.Len(); i++ {
		sample := s.(SampleList)[i]
		ins = append(ins, sample.InputSequence(c))
		outs = append(outs, sample.TargetSequence(c))
	}
	return &Batch{
		Ins:  anyseq.ConstSeqList(c, ins),
		Outs: anyseq.ConstSeqList(c, outs),
	}, nil
}

// TotalCost computes the cost for the *Batch.
func (t *Trainer) TotalCost(b anysgd.Batch) anydiff.Res {
	trainer, batch := t.tempTrainer(b)
	return trainer.TotalCost(batch)
}

// Gradient computes the cost gradient.
// It sets t.LastCost to the cost.
func (t *Trainer) Gradient(b anysgd.Batch) anydiff.Grad {
	trainer, batch := t.tempTrainer(b)
	res := trainer.Gradient(batch)
	t.LastCost = trainer.LastCost
	return res
}

func (t *Trainer) tempTrainer(b anysgd.Batch) (*anys2s.Trainer, *anys2s.Batch) {
	return &anys2s.Trainer{
			Func: func(s anyseq.Seq) anyseq.Seq {
				return t.Network.Apply(s)
			},
			Cost:    editCost{},
			Params:  t.Network.Parameters(),
			Average: true,
		}, &anys2s.Batch{
			Inputs:  b.(*Batch).Ins,
			Outputs: b.(*Batch).Outs,
		}
}
