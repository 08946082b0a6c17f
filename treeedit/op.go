// Package treeedit implements atomic structural edits on
// expression trees: deletions, insertions and label
// replacements, grouped into ordered scripts.
//
// Positions address nodes by preorder index. An operation
// sequenced after another one addresses the tree as it
// looks after the earlier operation has been applied;
// translating original indices into such running
// positions is what PositionMap is for.
package treeedit

import (
	"fmt"

	"github.com/unixpickle/peanobrain/exprtree"
)

// An Op is a single atomic tree edit.
type Op interface {
	// Apply produces the edited tree. The input tree is
	// not modified.
	Apply(t *exprtree.Tree) (*exprtree.Tree, error)

	// String describes the operation.
	String() string
}

// A Deletion removes the node at position Pos. The node's
// children are promoted into its place in the parent's
// child list, in order. The root wrapper cannot be
// deleted.
type Deletion struct {
	Pos int
}

// Apply removes the node and renumbers the survivors.
func (d *Deletion) Apply(t *exprtree.Tree) (*exprtree.Tree, error) {
	if d.Pos <= 0 || d.Pos >= t.Len() {
		return nil, &OutOfRangeError{Pos: d.Pos, Size: t.Len()}
	}
	nodes, parents := buildNodes(t)
	target := nodes[d.Pos]
	parent := nodes[parents[d.Pos]]
	for slot, c := range parent.kids {
		if c == target {
			promoted := append([]*linkNode{}, parent.kids[:slot]...)
			promoted = append(promoted, target.kids...)
			promoted = append(promoted, parent.kids[slot+1:]...)
			parent.kids = promoted
			break
		}
	}
	return flatten(nodes[0]), nil
}

func (d *Deletion) String() string {
	return fmt.Sprintf("del(%d)", d.Pos)
}

// An Insertion creates a new node as a child of Pos at
// child slot ChildSlot, absorbing Span consecutive
// existing children starting at that slot as its own
// children.
type Insertion struct {
	Pos       int
	ChildSlot int
	Label     exprtree.Label
	Span      int
}

// Apply inserts the new node and renumbers the tree.
func (ins *Insertion) Apply(t *exprtree.Tree) (*exprtree.Tree, error) {
	if ins.Pos < 0 || ins.Pos >= t.Len() {
		return nil, &OutOfRangeError{Pos: ins.Pos, Size: t.Len()}
	}
	nodes, _ := buildNodes(t)
	parent := nodes[ins.Pos]
	n := len(parent.kids)
	if ins.ChildSlot < 0 || ins.Span < 0 || ins.ChildSlot > n || ins.ChildSlot+ins.Span > n {
		return nil, &InvalidSpanError{
			Pos:         ins.Pos,
			ChildSlot:   ins.ChildSlot,
			Span:        ins.Span,
			NumChildren: n,
		}
	}
	fresh := &linkNode{
		label: ins.Label,
		kids:  append([]*linkNode{}, parent.kids[ins.ChildSlot:ins.ChildSlot+ins.Span]...),
	}
	kids := append([]*linkNode{}, parent.kids[:ins.ChildSlot]...)
	kids = append(kids, fresh)
	kids = append(kids, parent.kids[ins.ChildSlot+ins.Span:]...)
	parent.kids = kids
	return flatten(nodes[0]), nil
}

func (ins *Insertion) String() string {
	return fmt.Sprintf("ins(%d, %d, %s, %d)", ins.Pos, ins.ChildSlot, ins.Label, ins.Span)
}

// A Replacement swaps the label of the node at Pos in
// place. Children and arity are unaffected.
type Replacement struct {
	Pos   int
	Label exprtree.Label
}

// Apply relabels the node.
func (r *Replacement) Apply(t *exprtree.Tree) (*exprtree.Tree, error) {
	if r.Pos < 0 || r.Pos >= t.Len() {
		return nil, &OutOfRangeError{Pos: r.Pos, Size: t.Len()}
	}
	res := t.Clone()
	res.Labels[r.Pos] = r.Label
	return res, nil
}

func (r *Replacement) String() string {
	return fmt.Sprintf("rep(%d, %s)", r.Pos, r.Label)
}

// linkNode is the scratch representation used while a
// single operation rearranges the tree.
type linkNode struct {
	label exprtree.Label
	kids  []*linkNode
}

// buildNodes converts a flat tree into linked nodes,
// indexed by preorder position, along with the parent
// index of every node.
func buildNodes(t *exprtree.Tree) ([]*linkNode, []int) {
	nodes := make([]*linkNode, t.Len())
	for i, l := range t.Labels {
		nodes[i] = &linkNode{label: l}
	}
	for i, kids := range t.Children {
		for _, c := range kids {
			nodes[i].kids = append(nodes[i].kids, nodes[c])
		}
	}
	return nodes, t.Parents()
}

// flatten renumbers a linked tree back into preorder.
func flatten(root *linkNode) *exprtree.Tree {
	t := &exprtree.Tree{}
	var walk func(n *linkNode) int
	walk = func(n *linkNode) int {
		i := t.Len()
		t.Labels = append(t.Labels, n.label)
		t.Children = append(t.Children, []int{})
		for _, c := range n.kids {
			j := walk(c)
			t.Children[i] = append(t.Children[i], j)
		}
		return i
	}
	walk(root)
	return t
}
