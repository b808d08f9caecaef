package fault

import "testing"

func TestFootwallUnaffected(t *testing.T) {
	const nr, nc, cw = 5, 20, 100.
	f, err := New(nr, nc, cw, .002, 60., 800., 10000.)
	if err != nil {
		t.Fatal(err)
	}
	inc := f.Subside(100.)
	for i, d := range inc {
		c := i % nc
		x := float64(c) * cw
		if x < 800. {
			if d != 0. {
				t.Fatalf("footwall cell %d (x=%f) subsided %g", i, x, d)
			}
		} else if d <= 0. {
			t.Fatalf("hangingwall cell %d (x=%f) subsidence %g, want > 0", i, x, d)
		}
	}
}

func TestHangingwallMonotone(t *testing.T) {
	const nr, nc, cw = 3, 30, 100.
	f, err := New(nr, nc, cw, .001, 45., 0., 5000.)
	if err != nil {
		t.Fatal(err)
	}
	cum, prev := 0., 0.
	for j := 0; j < 200; j++ {
		cum += f.Subside(50.)[nc + 10] // a fixed hangingwall node
		if cum < prev {
			t.Fatalf("step %d: cumulative subsidence decreased %f -> %f", j, prev, cum)
		}
		prev = cum
	}
	if cum <= 0. {
		t.Fatal("no cumulative subsidence for positive extension rate")
	}
}

func TestSubsidenceDecaysFromTrace(t *testing.T) {
	const nr, nc, cw = 1, 50, 100.
	f, err := New(nr, nc, cw, .002, 60., 0., 4000.)
	if err != nil {
		t.Fatal(err)
	}
	inc := f.Subside(1.)
	for c := 1; c < nc; c++ {
		if inc[c] >= inc[c-1] {
			t.Fatalf("subsidence not decaying away from the trace at col %d: %g >= %g", c, inc[c], inc[c-1])
		}
	}
}

func TestBadGeometry(t *testing.T) {
	if _, err := New(3, 3, 100., .001, 95., 0., 5000.); err == nil {
		t.Fatal("expected error for dip past vertical")
	}
	if _, err := New(3, 3, 100., .001, 60., 0., -1.); err == nil {
		t.Fatal("expected error for negative detachment depth")
	}
}
