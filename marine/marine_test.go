package marine

import (
	"math"
	"testing"
)

func TestStableDt(t *testing.T) {
	m, err := New(10, 10, 200., 100., 50.)
	if err != nil {
		t.Fatal(err)
	}
	if dtx := m.StableDt(); dtx != 100. {
		t.Fatalf("stable dt %f, want 100", dtx)
	}
	m0, _ := New(10, 10, 200., 0., 50.)
	if !math.IsInf(m0.StableDt(), 1) {
		t.Fatal("zero diffusivity should have no stability bound")
	}
}

func TestDiffuseConservesMass(t *testing.T) {
	const nr, nc, cw = 20, 20, 100.
	m, err := New(nr, nc, cw, 50., 30.)
	if err != nil {
		t.Fatal(err)
	}
	z := make([]float64, nr*nc)
	fixed := make([]bool, nr*nc)
	for i := range z {
		r, c := i/nc, i%nc
		fixed[i] = r == 0 || r == nr-1 || c == 0 || c == nc-1
	}
	// submerged interior mound away from the perimeter; no perimeter outflow
	for r := 8; r <= 12; r++ {
		for c := 8; c <= 12; c++ {
			z[r*nc+c] = 5.
		}
	}
	dt := .5 * m.StableDt()
	dz := m.Diffuse(z, fixed, 100., dt) // sea level far above everything

	sum, moved := 0., 0.
	for _, d := range dz {
		sum += d
		moved += math.Abs(d)
	}
	if moved == 0. {
		t.Fatal("no submarine transport of a submerged mound")
	}
	if math.Abs(sum) > 1e-9*moved {
		t.Fatalf("mass not conserved: residual %g of %g moved", sum, moved)
	}
}

func TestNoTransportAboveSeaLevel(t *testing.T) {
	const nr, nc = 10, 10
	m, err := New(nr, nc, 100., 100., 50.)
	if err != nil {
		t.Fatal(err)
	}
	z := make([]float64, nr*nc)
	fixed := make([]bool, nr*nc)
	for i := range z {
		z[i] = 10. + float64(i%nc) // subaerial slope
	}
	for i, d := range m.Diffuse(z, fixed, 0., 50.) {
		if d != 0. {
			t.Fatalf("cell %d moved %g above sea level", i, d)
		}
	}
}

func TestDepositNodeLocal(t *testing.T) {
	const nr, nc, cw = 5, 5, 100.
	m, err := New(nr, nc, cw, 100., 50.)
	if err != nil {
		t.Fatal(err)
	}
	qs := make([]float64, nr*nc)
	qs[7], qs[12] = 2000., 4000. // [m³/yr]
	dz := m.Deposit(qs, []int{12}, 10.)
	for i, d := range dz {
		switch i {
		case 12:
			if want := 4000. / (cw * cw) * 10.; d != want {
				t.Fatalf("cell 12 deposited %f, want %f", d, want)
			}
		default: // cell 7 carries flux but is not submarine
			if d != 0. {
				t.Fatalf("cell %d deposited %f, want 0", i, d)
			}
		}
	}
}
