package flex

import (
	"fmt"
	"math"
)

const (
	ymod   = 65.e9   // Young's modulus [Pa]
	nu     = .25     // Poisson's ratio
	rhom   = 3300.   // mantle density [kg/m³]
	gaccel = 9.80665 // gravitational acceleration [m/s²]
)

// Plate2D solves the two-dimensional thin-elastic-plate flexure equation on
// a uniform auxiliary raster by superposition of the analytic point-load
// response (the kei Kelvin function). Deflection is positive downward and
// fully recomputed on every call, never updated incrementally.
type Plate2D struct {
	kern   []float64 // point-load response by row/col offset, flattened (2R+1)²
	nr, nc int
	krad   int     // kernel truncation radius [cells]
	Alpha  float64 // flexural parameter [m]
}

// New builds the solver for an nr x nc auxiliary raster of spacing dx [m]
// with effective elastic thickness te [m].
func New(nr, nc int, dx, te float64) (*Plate2D, error) {
	if nr < 1 || nc < 1 || dx <= 0. {
		return nil, fmt.Errorf("flex.New: invalid raster %dx%d dx %g", nr, nc, dx)
	}
	if te <= 0. {
		return nil, fmt.Errorf("flex.New: invalid elastic thickness %g", te)
	}
	d := ymod * te * te * te / 12. / (1. - nu*nu) // flexural rigidity [N m]
	alpha := math.Pow(4.*d/rhom/gaccel, .25)
	coef := alpha * alpha / (2. * math.Pi * d) * dx * dx // per unit pressure [m/Pa]

	// the kei response is negligible beyond ~6 flexural parameters
	krad := int(math.Ceil(6. * alpha / dx))
	if dmax := nr + nc; krad > dmax {
		krad = dmax
	}
	nk := 2*krad + 1
	p := &Plate2D{
		kern:  make([]float64, nk*nk),
		nr:    nr,
		nc:    nc,
		krad:  krad,
		Alpha: alpha,
	}
	for dr := -krad; dr <= krad; dr++ {
		for dc := -krad; dc <= krad; dc++ {
			r := math.Sqrt(float64(dr*dr+dc*dc)) * dx
			p.kern[(dr+krad)*nk+(dc+krad)] = -coef * kei(r/alpha) // >0: load depresses the plate
		}
	}
	return p, nil
}

// Deflection recomputes the deflection field [m] under the given pressure
// load [Pa]. Deterministic in the load; an all-zero load yields an all-zero
// field.
func (p *Plate2D) Deflection(load []float64) []float64 {
	w := make([]float64, p.nr*p.nc)
	nk := 2*p.krad + 1
	for r := 0; r < p.nr; r++ {
		for c := 0; c < p.nc; c++ {
			q := load[r*p.nc+c]
			if q == 0. {
				continue
			}
			r0, r1 := r-p.krad, r+p.krad
			if r0 < 0 {
				r0 = 0
			}
			if r1 > p.nr-1 {
				r1 = p.nr - 1
			}
			c0, c1 := c-p.krad, c+p.krad
			if c0 < 0 {
				c0 = 0
			}
			if c1 > p.nc-1 {
				c1 = p.nc - 1
			}
			for rr := r0; rr <= r1; rr++ {
				krow := (rr - r + p.krad) * nk
				for cc := c0; cc <= c1; cc++ {
					w[rr*p.nc+cc] += q * p.kern[krow+cc-c+p.krad]
				}
			}
		}
	}
	return w
}
