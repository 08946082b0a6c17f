package peanobrain

import (
	"github.com/unixpickle/anydiff"
	"github.com/unixpickle/anydiff/anyseq"
	"github.com/unixpickle/anynet"
	"github.com/unixpickle/anynet/anyrnn"
	"github.com/unixpickle/anyvec"
	"github.com/unixpickle/peanobrain/exprtree"
	"github.com/unixpickle/peanobrain/treeedit"
	"github.com/unixpickle/serializer"
)

const (
	encoderOutSize = 64
	headHiddenSize = 64

	// OutputCount is the width of the per-node output:
	// structural delta, label scores, slot scores,
	// association scores.
	OutputCount = 1 + exprtree.AlphabetSize + NumSlots + NumSlots
)

func init() {
	var n Network
	serializer.RegisterTypedDeserializer(n.SerializerType(), DeserializeNetwork)
}

// A Network scores tree edits: for every node of an input
// tree it produces a structural delta, label scores, a
// child-slot distribution and association scores, which
// Decode turns into an edit script.
type Network struct {
	Encoder anyrnn.Block
	Out     anynet.Net
}

// DeserializeNetwork deserializes a Network.
func DeserializeNetwork(d []byte) (*Network, error) {
	var res Network
	err := serializer.DeserializeAny(d, &res.Encoder, &res.Out)
	if err != nil {
		return nil, err
	}
	return &res, nil
}

// NewNetwork creates a randomly-initialized Network.
func NewNetwork(c anyvec.Creator) *Network {
	return &Network{
		Encoder: anyrnn.Stack{
			anyrnn.NewLSTM(c, FeatureCount, encoderOutSize),
			anyrnn.NewLSTM(c, encoderOutSize, encoderOutSize),
		},
		Out: anynet.Net{
			anynet.NewFC(c, encoderOutSize, headHiddenSize),
			anynet.Tanh,
			anynet.NewFC(c, headHiddenSize, OutputCount),
		},
	}
}

// Apply maps a batch of per-node feature sequences to
// per-node decision score sequences.
func (n *Network) Apply(s anyseq.Seq) anyseq.Seq {
	return anyseq.Map(anyrnn.Map(s, n.Encoder), n.Out.Apply)
}

// Predict runs the network on a single tree and unpacks
// the raw scores into Decisions for Decode.
func (n *Network) Predict(t *exprtree.Tree) *Decisions {
	c := n.creator()
	sample := Sample{Tree: t}
	in := anyseq.ConstSeqList(c, [][]anyvec.Vector{sample.InputSequence(c)})
	out := anyseq.SeparateSeqs(n.Apply(in).Output())[0]

	res := &Decisions{
		Delta: make([]float64, t.Len()),
		Label: make([][]float64, t.Len()),
		Slot:  make([][]float64, t.Len()),
		Assoc: make([][]float64, t.Len()),
	}
	for i, vec := range out {
		row := vectorData(vec)
		res.Delta[i] = row[0]
		off := 1
		res.Label[i] = row[off : off+exprtree.AlphabetSize]
		off += exprtree.AlphabetSize
		res.Slot[i] = row[off : off+NumSlots]
		off += NumSlots
		res.Assoc[i] = row[off : off+NumSlots]
	}
	return res
}

// Step predicts and applies a single reduction step.
func (n *Network) Step(t *exprtree.Tree) (treeedit.Script, *exprtree.Tree, error) {
	return Decode(t, n.Predict(t))
}

// Parameters gets the parameters of the network.
func (n *Network) Parameters() []*anydiff.Var {
	return anynet.AllParameters(n.Encoder, n.Out)
}

// SerializerType returns the unique ID used to serialize
// a Network with the serializer package.
func (n *Network) SerializerType() string {
	return "github.com/unixpickle/peanobrain.Network"
}

// Serialize attempts to serialize the Network.
func (n *Network) Serialize() ([]byte, error) {
	return serializer.SerializeAny(n.Encoder, n.Out)
}

func (n *Network) creator() anyvec.Creator {
	return n.Parameters()[0].Vector.Creator()
}

// vectorData copies a vector into float64s regardless of
// the creator's numeric type.
func vectorData(v anyvec.Vector) []float64 {
	switch data := v.Data().(type) {
	case []float64:
		return data
	case []float32:
		res := make([]float64, len(data))
		for i, x := range data {
			res[i] = float64(x)
		}
		return res
	}
	panic("unsupported numeric type")
}
