package treeedit

import (
	"fmt"
	"strings"
)

// None is the sentinel index marking the missing side of
// an alignment pair: an insertion has no left index and a
// deletion has no right index.
const None = -1

// A Pair matches a node of one tree to a node of its
// successor. Either side, but never both, may be None.
type Pair struct {
	Left  int
	Right int
}

// An Alignment is a node correspondence between a tree
// and its successor. Every index of both trees appears in
// exactly one pair, and pairs are preorder-monotonic in
// each coordinate.
type Alignment []Pair

// String lists the pairs in order.
func (a Alignment) String() string {
	strs := make([]string, len(a))
	for i, p := range a {
		strs[i] = fmt.Sprintf("(%d, %d)", p.Left, p.Right)
	}
	return "[" + strings.Join(strs, " ") + "]"
}
