package fluv

import (
	"fmt"
	"math"
)

// Fluv routes surface water over the land partition of a uniform raster and
// solves a detachment/transport-limited erosion-deposition law. One call to
// RunStep covers one model timestep; the law itself is integrated with an
// adaptive, internally sub-stepped explicit scheme that stays stable for the
// full dt by subdividing.
type Fluv struct {
	K, M, N, V float64
	nb         [][]int     // neighbour cell indices (5-8 at edges/corners)
	nbd        [][]float64 // neighbour distances
	nr, nc     int
	cw, ca     float64
}

// New builds the router/transporter over an nr x nc raster of cell width cw:
// erodibility k, area exponent m, slope exponent n, effective settling
// velocity v.
func New(nr, nc int, cw, k, m, n, v float64) (*Fluv, error) {
	if nr < 1 || nc < 1 || cw <= 0. {
		return nil, fmt.Errorf("fluv.New: invalid raster %dx%d cw %g", nr, nc, cw)
	}
	if k < 0. || v < 0. {
		return nil, fmt.Errorf("fluv.New: negative process parameter k %g v %g", k, v)
	}
	f := &Fluv{
		K: k, M: m, N: n, V: v,
		nr: nr, nc: nc,
		cw: cw, ca: cw * cw,
	}
	diag := cw * math.Sqrt2
	f.nb = make([][]int, nr*nc)
	f.nbd = make([][]float64, nr*nc)
	for r := 0; r < nr; r++ {
		for c := 0; c < nc; c++ {
			i := r*nc + c
			for dr := -1; dr <= 1; dr++ {
				for dc := -1; dc <= 1; dc++ {
					if dr == 0 && dc == 0 {
						continue
					}
					rr, cc := r+dr, c+dc
					if rr < 0 || rr >= nr || cc < 0 || cc >= nc {
						continue
					}
					f.nb[i] = append(f.nb[i], rr*nc+cc)
					if dr != 0 && dc != 0 {
						f.nbd[i] = append(f.nbd[i], diag)
					} else {
						f.nbd[i] = append(f.nbd[i], cw)
					}
				}
			}
		}
	}
	return f, nil
}

// receivers assigns every core node its steepest-descent neighbour on the
// filled water surface. Fixed-value nodes take no receiver.
func (f *Fluv) receivers(ws []float64, core []bool) (rcv []int, drcv []float64) {
	rcv = make([]int, len(ws))
	drcv = make([]float64, len(ws))
	for i := range rcv {
		rcv[i] = -1
		if !core[i] {
			continue
		}
		gmax := 0.
		for k, j := range f.nb[i] {
			if g := (ws[i] - ws[j]) / f.nbd[i][k]; g > gmax {
				gmax, rcv[i], drcv[i] = g, j, f.nbd[i][k]
			}
		}
	}
	return rcv, drcv
}

// RunStep operates only on nodes flagged core: (a) fills closed depressions
// on a separate water-surface field, (b) computes steepest-descent flow
// directions on the filled surface, (c) accumulates drainage area, and
// (d) integrates the erosion-deposition law over dt. Fixed-value nodes keep
// their elevation and act as flow sinks; flux routed into them is reported
// through qs. Elevation slopes, not water-surface slopes, drive detachment,
// so the fill operation never erodes a depression by itself.
//
// Returns updated elevations, the filled water surface, drainage area [m²]
// and per-node volumetric sediment influx [m³/yr] averaged over the step —
// the sole coupling channel into the submarine phase.
func (f *Fluv) RunStep(z []float64, core []bool, dt float64) (zn, ws, aus, qs []float64) {
	n := len(z)
	zn = make([]float64, n)
	copy(zn, z)

	var order []int
	ws, order = f.fill(zn, core)
	rcv, drcv := f.receivers(ws, core)

	// drainage area, donors before receivers
	aus = make([]float64, n)
	for _, i := range order {
		aus[i] += f.ca
		if j := rcv[i]; j > -1 {
			aus[j] += aus[i]
		}
	}

	// adaptive sub-stepped erosion-deposition
	qs = make([]float64, n)
	rate := make([]float64, n)
	qsin := make([]float64, n)
	remaining := dt
	for it := 0; remaining > dt*1e-9 && it < 10000; it++ {
		for i := range rate {
			rate[i] = 0.
			qsin[i] = 0.
		}
		for _, i := range order { // descending over the filled surface
			j := rcv[i]
			if j < 0 {
				continue
			}
			e := 0.
			if s := (zn[i] - zn[j]) / drcv[i]; s > 0. {
				e = f.K * math.Pow(aus[i], f.M) * math.Pow(s, f.N)
			}
			d := 0.
			if f.V > 0. && aus[i] > 0. {
				d = f.V * qsin[i] / aus[i]
				if dmax := qsin[i] / f.ca; d > dmax {
					d = dmax
				}
			}
			rate[i] = d - e
			if qsout := qsin[i] + (e-d)*f.ca; qsout > 0. {
				qsin[j] += qsout
			}
		}

		// limit the sub-step so no donor is let down past its receiver
		dts := remaining
		for _, i := range order {
			j := rcv[i]
			if j < 0 {
				continue
			}
			if g, rr := zn[i]-zn[j], rate[i]-rate[j]; g > 0. && rr < 0. {
				if t := -.9 * g / rr; t < dts {
					dts = t
				}
			}
		}
		if floor := remaining / 1000.; dts < floor {
			dts = floor
		}

		for _, i := range order {
			zn[i] += rate[i] * dts
		}
		for i, q := range qsin {
			qs[i] += q * dts
		}
		remaining -= dts
	}
	for i := range qs {
		qs[i] /= dt
	}
	return zn, ws, aus, qs
}
