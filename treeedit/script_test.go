package treeedit

import (
	"testing"

	"github.com/unixpickle/peanobrain/exprtree"
)

func mustParse(t *testing.T, s string) *exprtree.Tree {
	t.Helper()
	tree, err := exprtree.Parse(s)
	if err != nil {
		t.Fatal(err)
	}
	return tree
}

func applyOp(t *testing.T, tree *exprtree.Tree, op Op) *exprtree.Tree {
	t.Helper()
	res, err := op.Apply(tree)
	if err != nil {
		t.Fatalf("%s: %s", op, err)
	}
	return res
}

func TestDeletionPromotesChildren(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res := applyOp(t, tree, &Deletion{Pos: 1})
	if actual := res.String(); actual != "root(2, 0)" {
		t.Errorf("expected root(2, 0) got %s", actual)
	}
	if tree.String() != "root(+(2, 0))" {
		t.Error("input tree was modified")
	}
}

func TestDeletionLeaf(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res := applyOp(t, tree, &Deletion{Pos: 3})
	if actual := res.String(); actual != "root(+(2))" {
		t.Errorf("expected root(+(2)) got %s", actual)
	}
}

func TestDeletionErrors(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	for _, pos := range []int{0, -1, 4} {
		if _, err := (&Deletion{Pos: pos}).Apply(tree); err == nil {
			t.Errorf("expected error for deletion at %d", pos)
		} else if _, ok := err.(*OutOfRangeError); !ok {
			t.Errorf("expected *OutOfRangeError, got %T", err)
		}
	}
}

func TestInsertionAbsorbsSpan(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res := applyOp(t, tree, &Insertion{Pos: 1, ChildSlot: 0, Label: exprtree.Succ, Span: 1})
	if actual := res.String(); actual != "root(+(succ(2), 0))" {
		t.Errorf("expected root(+(succ(2), 0)) got %s", actual)
	}

	res = applyOp(t, tree, &Insertion{Pos: 1, ChildSlot: 1, Label: exprtree.Succ, Span: 1})
	if actual := res.String(); actual != "root(+(2, succ(0)))" {
		t.Errorf("expected root(+(2, succ(0))) got %s", actual)
	}
}

func TestInsertionEmptySpan(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res := applyOp(t, tree, &Insertion{Pos: 1, ChildSlot: 2, Label: exprtree.One, Span: 0})
	if actual := res.String(); actual != "root(+(2, 0, 1))" {
		t.Errorf("expected root(+(2, 0, 1)) got %s", actual)
	}
}

func TestInsertionInvalidSpan(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	bad := []*Insertion{
		{Pos: 1, ChildSlot: 1, Label: exprtree.Succ, Span: 2},
		{Pos: 1, ChildSlot: 3, Label: exprtree.Succ, Span: 0},
		{Pos: 2, ChildSlot: 0, Label: exprtree.Succ, Span: 1},
	}
	for _, ins := range bad {
		if _, err := ins.Apply(tree); err == nil {
			t.Errorf("expected error for %s", ins)
		} else if _, ok := err.(*InvalidSpanError); !ok {
			t.Errorf("expected *InvalidSpanError, got %T", err)
		}
	}
	if _, err := (&Insertion{Pos: 9, ChildSlot: 0, Span: 0}).Apply(tree); err == nil {
		t.Error("expected error for out-of-range insertion")
	}
}

func TestReplacement(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res := applyOp(t, tree, &Replacement{Pos: 2, Label: exprtree.Nine})
	if actual := res.String(); actual != "root(+(9, 0))" {
		t.Errorf("expected root(+(9, 0)) got %s", actual)
	}
	if _, err := (&Replacement{Pos: 4, Label: exprtree.Nine}).Apply(tree); err == nil {
		t.Error("expected error for out-of-range replacement")
	}
}

func TestScriptOrder(t *testing.T) {
	// The second deletion addresses the tree after the
	// first one: "0" sits at index 2 once "+" is gone.
	tree := mustParse(t, "root(+(2, 0))")
	script := Script{&Deletion{Pos: 1}, &Deletion{Pos: 2}}
	res, err := script.Apply(tree)
	if err != nil {
		t.Fatal(err)
	}
	if actual := res.String(); actual != "root(2)" {
		t.Errorf("expected root(2) got %s", actual)
	}
}

func TestEmptyScript(t *testing.T) {
	tree := mustParse(t, "root(+(2, 0))")
	res, err := Script{}.Apply(tree)
	if err != nil {
		t.Fatal(err)
	}
	if !res.Equal(tree) {
		t.Error("empty script should not change the tree")
	}
}
