package marine

import (
	"fmt"
	"math"
)

// Marine moves sediment below sea level: shoreline deposition of the
// fluvial flux, then diffusive transport with a diffusivity that decays
// with depth below the wave base and is negligible above sea level.
type Marine struct {
	Kappa    float64 // surface marine diffusivity [m²/yr]
	Wavebase float64 // e-folding depth of transport decay [m]
	nr, nc   int
	cw, ca   float64
}

// New builds the submarine transporter over an nr x nc raster of cell
// width cw.
func New(nr, nc int, cw, kappa, wavebase float64) (*Marine, error) {
	if nr < 1 || nc < 1 || cw <= 0. {
		return nil, fmt.Errorf("marine.New: invalid raster %dx%d cw %g", nr, nc, cw)
	}
	if kappa < 0. {
		return nil, fmt.Errorf("marine.New: negative diffusivity %g", kappa)
	}
	if wavebase <= 0. {
		return nil, fmt.Errorf("marine.New: invalid wave-base depth %g", wavebase)
	}
	return &Marine{Kappa: kappa, Wavebase: wavebase, nr: nr, nc: nc, cw: cw, ca: cw * cw}, nil
}

// StableDt returns the explicit-scheme stability bound for Diffuse. The
// scheme does not self-enforce it; honoring the bound is the caller's
// obligation.
func (m *Marine) StableDt() float64 {
	if m.Kappa <= 0. {
		return math.Inf(1)
	}
	return m.cw * m.cw / 4. / m.Kappa
}

// Deposit converts each node's own sediment influx [m³/yr] into a deposition
// rate by its cell area and applies rate*dt to the listed submarine nodes.
// Strictly the node-local flux is used, never a network-accumulated value
// beyond the node's own cell, so no sediment is double-counted across the
// shoreline. Returns the elevation increment field.
func (m *Marine) Deposit(qs []float64, sea []int, dt float64) []float64 {
	dz := make([]float64, m.nr*m.nc)
	for _, i := range sea {
		if qs[i] > 0. {
			dz[i] = qs[i] / m.ca * dt
		}
	}
	return dz
}

// diffusivity at a node [m²/yr]: full kappa at sea level, decaying with
// depth over the wave base, zero above water.
func (m *Marine) diffusivity(z, sl float64) float64 {
	d := sl - z
	if d < 0. {
		return 0.
	}
	return m.Kappa * math.Exp(-d/m.Wavebase)
}

// Diffuse applies one explicit flux-form diffusion step across the whole
// grid and returns the elevation increment field; fixed nodes contribute
// fluxes but are not updated. Only numerically stable for dt at or below
// StableDt.
func (m *Marine) Diffuse(z []float64, fixed []bool, sl, dt float64) []float64 {
	n := m.nr * m.nc
	dz := make([]float64, n)
	flux := func(i, j int) float64 { // volumetric exchange i->j [m³/yr]
		// per-width flux D*(zi-zj)/cw over a face of width cw
		d := .5 * (m.diffusivity(z[i], sl) + m.diffusivity(z[j], sl))
		return d * (z[i] - z[j])
	}
	for r := 0; r < m.nr; r++ {
		for c := 0; c < m.nc; c++ {
			i := r*m.nc + c
			// east and south faces once each; antisymmetric exchange
			if c+1 < m.nc {
				f := flux(i, i+1) * dt / m.ca
				dz[i] -= f
				dz[i+1] += f
			}
			if r+1 < m.nr {
				f := flux(i, i+m.nc) * dt / m.ca
				dz[i] -= f
				dz[i+m.nc] += f
			}
		}
	}
	for i := range dz {
		if fixed[i] {
			dz[i] = 0.
		}
	}
	return dz
}
