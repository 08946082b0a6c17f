package exprtree

import (
	"strconv"
	"strings"
)

// A Tree is an ordered, labeled expression tree stored as
// a flat node list in preorder.
//
// Node 0 is always the "root" wrapper. Children carry
// indices greater than their parent, consistent with
// preorder numbering. Trees are value-like: nothing in
// this package mutates a Tree after construction, and all
// structural changes go through edit scripts.
type Tree struct {
	Labels   []Label
	Children [][]int
}

// NewLeaf creates a tree consisting of the root wrapper
// and a single leaf expression.
func NewLeaf(l Label) *Tree {
	return &Tree{
		Labels:   []Label{Root, l},
		Children: [][]int{{1}, {}},
	}
}

// Len returns the number of nodes.
func (t *Tree) Len() int {
	return len(t.Labels)
}

// Label returns the label of node i.
// It panics if i is out of range.
func (t *Tree) Label(i int) Label {
	t.check(i)
	return t.Labels[i]
}

// ChildrenOf returns the ordered child indices of node i.
// The slice is a copy and may be modified by the caller.
// It panics if i is out of range.
func (t *Tree) ChildrenOf(i int) []int {
	t.check(i)
	return append([]int{}, t.Children[i]...)
}

// Parents computes the index of each node's parent with a
// full pass over the tree. The root's entry is -1.
//
// The table is derived, not stored: it must be recomputed
// whenever a new tree is produced.
func (t *Tree) Parents() []int {
	pi := make([]int, t.Len())
	for i := range pi {
		pi[i] = -1
	}
	for i, kids := range t.Children {
		for _, j := range kids {
			pi[j] = i
		}
	}
	return pi
}

// Clone returns a deep copy of the tree.
func (t *Tree) Clone() *Tree {
	res := &Tree{
		Labels:   append([]Label{}, t.Labels...),
		Children: make([][]int, len(t.Children)),
	}
	for i, kids := range t.Children {
		res.Children[i] = append([]int{}, kids...)
	}
	return res
}

// Equal reports whether two trees have identical labels
// and structure.
func (t *Tree) Equal(t1 *Tree) bool {
	if t.Len() != t1.Len() {
		return false
	}
	for i, l := range t.Labels {
		if t1.Labels[i] != l {
			return false
		}
		if len(t.Children[i]) != len(t1.Children[i]) {
			return false
		}
		for j, c := range t.Children[i] {
			if t1.Children[i][j] != c {
				return false
			}
		}
	}
	return true
}

// String returns the expression in "label(child, ...)"
// form, e.g. "root(+(2, 0))".
func (t *Tree) String() string {
	if t.Len() == 0 {
		return ""
	}
	var sb strings.Builder
	t.writeNode(&sb, 0)
	return sb.String()
}

func (t *Tree) writeNode(sb *strings.Builder, i int) {
	sb.WriteString(t.Labels[i].String())
	if len(t.Children[i]) == 0 {
		return
	}
	sb.WriteByte('(')
	for j, c := range t.Children[i] {
		if j > 0 {
			sb.WriteString(", ")
		}
		t.writeNode(sb, c)
	}
	sb.WriteByte(')')
}

func (t *Tree) check(i int) {
	if i < 0 || i >= t.Len() {
		panic("node index out of range: " + strconv.Itoa(i))
	}
}
