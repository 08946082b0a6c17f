package exprtree

import (
	"math/rand"
	"testing"
)

func TestGenerateWellFormed(t *testing.T) {
	rand.Seed(123)
	gen := &Generator{MaxAdditions: 3, MaxNumeral: 9}
	for i := 0; i < 200; i++ {
		tree := gen.Generate()
		checkWellFormed(t, tree, 3)
	}
}

func TestGenerateNumeralBound(t *testing.T) {
	rand.Seed(123)
	gen := &Generator{MaxAdditions: 2, MaxNumeral: 3}
	for i := 0; i < 200; i++ {
		tree := gen.Generate()
		for _, l := range tree.Labels {
			if l.IsNumeral() && (l.Digit() < 1 || l.Digit() > 3) {
				t.Fatalf("numeral %s out of bounds", l)
			}
		}
	}
}

func checkWellFormed(t *testing.T, tree *Tree, maxAdditions int) {
	t.Helper()
	if tree.Labels[0] != Root || len(tree.Children[0]) != 1 {
		t.Fatalf("bad root in %s", tree)
	}
	additions := 0
	for i, l := range tree.Labels {
		if len(tree.Children[i]) != l.Arity() {
			t.Fatalf("node %d (%s) has %d children in %s", i, l,
				len(tree.Children[i]), tree)
		}
		switch {
		case l == Add:
			additions++
		case l == Zero:
			t.Fatalf("generated a literal 0 in %s", tree)
		case l == Succ:
			t.Fatalf("generated a succ in %s", tree)
		case l == Root && i != 0:
			t.Fatalf("nested root in %s", tree)
		}
		for _, c := range tree.Children[i] {
			if c <= i {
				t.Fatalf("child %d of node %d violates preorder in %s", c, i, tree)
			}
		}
	}
	if additions > maxAdditions {
		t.Fatalf("%d additions exceeds budget in %s", additions, tree)
	}
}
