package treeedit

// A PositionMap translates node indices of a pre-edit
// tree into positions valid after the operations emitted
// so far in one pass.
//
// It is an explicit value folded across a scan rather
// than ambient mutable state: a matcher records each
// operation's index shifts and reads translated positions
// through Of.
type PositionMap []int

// NewPositionMap creates an identity map for a tree of n
// nodes.
func NewPositionMap(n int) PositionMap {
	return make(PositionMap, n)
}

// Of returns the running position of original index i.
func (p PositionMap) Of(i int) int {
	return i + p[i]
}

// ShiftFrom adds delta to the shift of every index >= i.
func (p PositionMap) ShiftFrom(i, delta int) {
	for j := i; j < len(p); j++ {
		p[j] += delta
	}
}

// ShiftRange adds delta to the shift of every index in
// the half-open range [i, j).
func (p PositionMap) ShiftRange(i, j, delta int) {
	if j > len(p) {
		j = len(p)
	}
	for k := i; k < j; k++ {
		p[k] += delta
	}
}
