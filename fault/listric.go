package fault

import (
	"fmt"
	"math"
)

// Listric is a kinematic model of extension along a listric normal fault:
// the fault dips at a configured angle at the surface and flattens
// exponentially toward a horizontal detachment. Horizontal motion of the
// hangingwall over the curved fault surface maps to a vertical subsidence
// profile; footwall nodes are unaffected.
//
// The fault trace runs parallel to the row axis; extension carries the
// hangingwall toward increasing column position. No bound check is applied
// for extension proceeding past the grid edge.
type Listric struct {
	rate []float64 // per-column subsidence rate [m/yr]
	nr   int
}

// New builds the model over an nr x nc raster with cell width cw: extension
// rate vx [m/yr], surface dip [deg], trace position x0 [m] on the column
// axis, detachment depth zd [m].
func New(nr, nc int, cw, vx, dip, x0, zd float64) (*Listric, error) {
	if nr < 1 || nc < 1 || cw <= 0. {
		return nil, fmt.Errorf("fault.New: invalid raster %dx%d cw %g", nr, nc, cw)
	}
	if vx < 0. {
		return nil, fmt.Errorf("fault.New: negative extension rate %g", vx)
	}
	if dip <= 0. || dip >= 90. || zd <= 0. {
		return nil, fmt.Errorf("fault.New: invalid fault geometry dip %g zd %g", dip, zd)
	}
	tand := math.Tan(dip * math.Pi / 180.)
	f := &Listric{rate: make([]float64, nc), nr: nr}
	for c := range f.rate {
		x := float64(c) * cw
		if x < x0 {
			continue // footwall
		}
		// fault plane z(x) = zd(1-exp(-(x-x0)tanδ/zd)); vertical drop rate
		// of the hangingwall is vx dz/dx
		f.rate[c] = vx * tand * math.Exp(-(x-x0)*tand/zd)
	}
	return f, nil
}

// Subside returns the incremental subsidence field for a step of dt:
// non-negative everywhere, zero on the footwall. Cumulative hangingwall
// subsidence is monotone non-decreasing for any positive extension rate.
func (f *Listric) Subside(dt float64) []float64 {
	nc := len(f.rate)
	inc := make([]float64, f.nr*nc)
	for r := 0; r < f.nr; r++ {
		for c := 0; c < nc; c++ {
			inc[r*nc+c] = f.rate[c] * dt
		}
	}
	return inc
}
