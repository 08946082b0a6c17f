package peanobrain

import "fmt"

// A NonTerminatingError is returned by Reduce when the
// step cap is exceeded, indicating a malformed input that
// violates the rule set's termination measure.
type NonTerminatingError struct {
	Steps int
}

func (n *NonTerminatingError) Error() string {
	return fmt.Sprintf("reduction did not terminate after %d steps", n.Steps)
}

// An AlignmentError is returned by Align when the
// computed successor index decreases. It signals a bug in
// the rule logic or a malformed input, never expected in
// correct operation.
type AlignmentError struct {
	Left   int
	Mapped int
	Cursor int
}

func (a *AlignmentError) Error() string {
	return fmt.Sprintf("alignment inconsistency at node %d: mapped index %d behind cursor %d",
		a.Left, a.Mapped, a.Cursor)
}

// An InvalidDecisionError is returned by Decode when a
// predicted insertion slot does not fit the node's actual
// child list.
type InvalidDecisionError struct {
	Pos         int
	ChildSlot   int
	NumChildren int
}

func (i *InvalidDecisionError) Error() string {
	return fmt.Sprintf("decision at node %d: insertion slot %d exceeds %d children",
		i.Pos, i.ChildSlot, i.NumChildren)
}
