package treeedit

import "testing"

func TestPositionMap(t *testing.T) {
	p := NewPositionMap(6)
	for i := 0; i < 6; i++ {
		if p.Of(i) != i {
			t.Fatalf("fresh map should be the identity at %d", i)
		}
	}
	p.ShiftFrom(3, -1)
	p.ShiftRange(1, 3, 1)
	expected := []int{0, 2, 3, 2, 3, 4}
	for i, x := range expected {
		if p.Of(i) != x {
			t.Errorf("index %d: expected %d got %d", i, x, p.Of(i))
		}
	}
	// Ranges past the end are clipped.
	p.ShiftRange(5, 100, 2)
	if p.Of(5) != 6 {
		t.Errorf("expected 6 got %d", p.Of(5))
	}
}
