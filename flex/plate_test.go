package flex

import (
	"math"
	"testing"
)

func almostEqual(a, b, tol float64) bool { return math.Abs(a-b) < tol }

func TestKei(t *testing.T) {
	// tabulated values of the kei Kelvin function
	for _, v := range []struct{ x, kei float64 }{
		{0., -math.Pi / 4.},
		{1., -.49499},
		{2., -.20240},
		{4., .00220},
	} {
		if got := kei(v.x); !almostEqual(got, v.kei, 1e-4) {
			t.Fatalf("kei(%f) = %f, want %f", v.x, got, v.kei)
		}
	}
	if got := kei(12.); math.Abs(got) > 1e-3 {
		t.Fatalf("kei(12) = %g, want near zero", got)
	}
}

func TestZeroLoadZeroDeflection(t *testing.T) {
	p, err := New(20, 20, 500., 5000.)
	if err != nil {
		t.Fatal(err)
	}
	for i, w := range p.Deflection(make([]float64, 400)) {
		if w != 0. {
			t.Fatalf("cell %d: deflection %g under zero load", i, w)
		}
	}
}

func TestPointLoadResponse(t *testing.T) {
	const nr, nc = 21, 21
	p, err := New(nr, nc, 1000., 10000.)
	if err != nil {
		t.Fatal(err)
	}
	load := make([]float64, nr*nc)
	ctr := 10*nc + 10
	load[ctr] = 1.e7 // [Pa]
	w := p.Deflection(load)

	if w[ctr] <= 0. {
		t.Fatalf("center deflection %g, want positive (downward) under load", w[ctr])
	}
	for i, ww := range w {
		if ww > w[ctr] {
			t.Fatalf("cell %d deflects %g > center %g", i, ww, w[ctr])
		}
	}
	// symmetry about the loaded cell
	if !almostEqual(w[ctr-1], w[ctr+1], 1e-12) || !almostEqual(w[ctr-nc], w[ctr+nc], 1e-12) {
		t.Fatal("point-load response not symmetric")
	}
	if !almostEqual(w[ctr-3], w[ctr+3], 1e-12) {
		t.Fatal("point-load response not symmetric at distance")
	}
}

func TestDeterministicInLoad(t *testing.T) {
	p, err := New(15, 15, 2000., 5000.)
	if err != nil {
		t.Fatal(err)
	}
	load := make([]float64, 225)
	for i := range load {
		load[i] = float64(i%7) * 1e6
	}
	w1, w2 := p.Deflection(load), p.Deflection(load)
	for i := range w1 {
		if w1[i] != w2[i] {
			t.Fatalf("cell %d: recompute differs %g != %g", i, w1[i], w2[i])
		}
	}
}
