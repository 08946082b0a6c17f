package exprtree

import "math/rand"

// DefaultMaxNumeral is the largest numeral generated when
// no maximum is configured.
const DefaultMaxNumeral = 9

// A Generator generates random addition expressions from
// a stochastic regular tree grammar.
//
// While the addition budget lasts, each new node is "+"
// with probability one half and a numeral otherwise; once
// the budget is exhausted, numerals are drawn uniformly.
// The literal "0" is never generated: zeros only appear
// through rewriting.
type Generator struct {
	// MaxAdditions bounds the number of "+" operators in
	// one expression.
	MaxAdditions int

	// MaxNumeral is the largest numeral to generate.
	// If it is 0, DefaultMaxNumeral is used. Values above
	// 9 wrap around modulo 10.
	MaxNumeral int
}

// Generate produces a well-formed tree: a root wrapper
// over an expression of "+" and numeral nodes.
func (g *Generator) Generate() *Tree {
	maxNum := g.MaxNumeral
	if maxNum == 0 {
		maxNum = DefaultMaxNumeral
	}
	if maxNum > 9 {
		maxNum = maxNum % 10
	}
	budget := g.MaxAdditions

	t := &Tree{
		Labels:   []Label{Root},
		Children: [][]int{{}},
	}

	// Stack of parent indices with a pending child slot.
	stk := []int{0}
	for len(stk) > 0 {
		p := stk[len(stk)-1]
		stk = stk[:len(stk)-1]

		var label Label
		if budget > 0 && rand.Intn(2) == 0 {
			label = Add
		} else {
			label = NumeralLabel(1 + rand.Intn(maxNum))
		}

		i := t.Len()
		t.Labels = append(t.Labels, label)
		t.Children = append(t.Children, []int{})
		t.Children[p] = append(t.Children[p], i)

		if label == Add {
			stk = append(stk, i, i)
			budget--
		}
	}
	return t
}
