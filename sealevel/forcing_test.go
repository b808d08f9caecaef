package sealevel

import "testing"

func TestZeroNoiseDegeneratesToConstant(t *testing.T) {
	f := New(2.5, 0., 1)
	for i := 0; i < 100; i++ {
		if sl := f.Advance(); sl != 2.5 {
			t.Fatalf("advance %d: got %f, want 2.5", i, sl)
		}
	}
	for i, sl := range f.History() {
		if sl != 2.5 {
			t.Fatalf("history %d: got %f, want 2.5", i, sl)
		}
	}
	if n := len(f.History()); n != 101 {
		t.Fatalf("history length %d, want 101", n)
	}
}

func TestSeedReproducibility(t *testing.T) {
	f1, f2 := New(0., 1., 42), New(0., 1., 42)
	for i := 0; i < 50; i++ {
		if a, b := f1.Advance(), f2.Advance(); a != b {
			t.Fatalf("advance %d: %f != %f for identical seeds", i, a, b)
		}
	}
}

func TestHistoryAppendOnly(t *testing.T) {
	f := New(0., 1., 7)
	var prev []float64
	for i := 0; i < 20; i++ {
		f.Advance()
		h := f.History()
		if len(h) != len(prev)+1 {
			t.Fatalf("advance %d: history grew %d -> %d", i, len(prev), len(h))
		}
		for j, v := range prev {
			if h[j] != v {
				t.Fatalf("advance %d rewrote history entry %d", i, j)
			}
		}
		prev = append(prev[:0:0], h...)
	}
}
