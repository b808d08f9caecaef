package fluv

import (
	"math"
	"testing"
)

// rampDomain builds a 3-row strip draining west along the middle row: column
// 0 is the sink, the outer rows are high fixed walls.
func rampDomain(nc int, cw float64) (z []float64, core []bool) {
	z = make([]float64, 3*nc)
	core = make([]bool, 3*nc)
	for c := 0; c < nc; c++ {
		z[c] = 1000.      // north wall
		z[2*nc+c] = 1000. // south wall
		z[nc+c] = float64(c) * cw * .01
		core[nc+c] = c > 0
	}
	return z, core
}

func TestDrainageAreaOnRamp(t *testing.T) {
	const nc, cw = 10, 100.
	f, err := New(3, nc, cw, 0., .5, 1., 0.)
	if err != nil {
		t.Fatal(err)
	}
	z, core := rampDomain(nc, cw)
	_, _, aus, _ := f.RunStep(z, core, 1.)
	ca := cw * cw
	for c := 1; c < nc; c++ {
		if want := float64(nc-c) * ca; aus[nc+c] != want {
			t.Fatalf("col %d drainage area %f, want %f", c, aus[nc+c], want)
		}
	}
	// the sink node collects the full strip
	if want := float64(nc-1) * ca; aus[nc] != want {
		t.Fatalf("sink drainage area %f, want %f", aus[nc], want)
	}
}

func TestErodedMassReachesSink(t *testing.T) {
	const nc, cw, dt = 12, 100., 50.
	f, err := New(3, nc, cw, 1e-4, .5, 1., 0.) // no redeposition
	if err != nil {
		t.Fatal(err)
	}
	z, core := rampDomain(nc, cw)
	zn, _, _, qs := f.RunStep(z, core, dt)

	ca := cw * cw
	eroded := 0.
	for i, c := range core {
		if c {
			eroded += (z[i] - zn[i]) * ca
		}
	}
	if eroded <= 0. {
		t.Fatal("no erosion on a sloped strip")
	}
	if out := qs[nc] * dt; math.Abs(out-eroded)/eroded > 1e-9 {
		t.Fatalf("flux to sink %f, eroded volume %f", out, eroded)
	}
}

func TestDepressionNotErodedByFill(t *testing.T) {
	const nc, cw = 12, 100.
	f, err := New(3, nc, cw, 1e-4, .5, 1., 0.)
	if err != nil {
		t.Fatal(err)
	}
	z, core := rampDomain(nc, cw)
	pit := nc + 6
	z[pit] -= 5. // closed depression mid-ramp

	zn, ws, _, _ := f.RunStep(z, core, 50.)
	if zn[pit] < z[pit] {
		t.Fatalf("pit eroded from %f to %f", z[pit], zn[pit])
	}
	if ws[pit] <= z[pit] {
		t.Fatalf("pit water surface %f not raised above bed %f", ws[pit], z[pit])
	}
	// the filled surface drains monotonically along the middle row
	for c := 1; c < nc; c++ {
		if ws[nc+c] <= ws[nc+c-1] {
			t.Fatalf("water surface not draining at col %d: %f <= %f", c, ws[nc+c], ws[nc+c-1])
		}
	}
}

func TestFixedNodesHeldAndNoErosionOnFlat(t *testing.T) {
	const nc, cw = 8, 100.
	f, err := New(3, nc, cw, 1e-3, .5, 1., 1.)
	if err != nil {
		t.Fatal(err)
	}
	z := make([]float64, 3*nc)
	core := make([]bool, 3*nc)
	for i := range z {
		z[i] = 10.
		core[i] = i/nc == 1 && i%nc > 0
	}
	zn, _, _, _ := f.RunStep(z, core, 100.)
	for i := range z {
		if zn[i] != z[i] {
			t.Fatalf("cell %d moved from %f to %f on a flat surface", i, z[i], zn[i])
		}
	}
}
