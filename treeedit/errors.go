package treeedit

import "fmt"

// An OutOfRangeError is returned when an edit operation
// addresses a position outside the tree it is applied to.
type OutOfRangeError struct {
	Pos  int
	Size int
}

func (o *OutOfRangeError) Error() string {
	return fmt.Sprintf("position %d out of range for tree of %d nodes", o.Pos, o.Size)
}

// An InvalidSpanError is returned when an insertion's
// child slot or span exceeds the parent's child count.
type InvalidSpanError struct {
	Pos         int
	ChildSlot   int
	Span        int
	NumChildren int
}

func (i *InvalidSpanError) Error() string {
	return fmt.Sprintf("insertion at node %d: slot %d with span %d exceeds %d children",
		i.Pos, i.ChildSlot, i.Span, i.NumChildren)
}
