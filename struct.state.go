package lem

import (
	"encoding/gob"
	"fmt"
	"os"
)

// State owns the mutable per-node fields of the model, stored as parallel
// row-major arrays. Created once from an externally supplied initial
// condition and mutated in place every step for the life of the run.
type State struct {
	Z     []float64 // surface elevation [m]
	Ws    []float64 // water-surface (filled) elevation [m]
	Dep   []float64 // cumulative deposit thickness (signed) [m]
	Hc    []float64 // crustal thickness above datum [m]
	Dsub  []float64 // cumulative tectonic subsidence [m]
	Aus   []float64 // drainage (upslope contributing) area [m²]
	Qs    []float64 // sediment influx [m³/yr]
	Fixed []bool    // boundary classification at last bookkeeping (true = fixed value)
	Sl    float64   // sea level at last bookkeeping [m]
	Step  int       // completed step count
}

// NewState builds the model state from the initial condition supplied by the
// external preprocessing stage: an elevation field over a grid with a single
// contiguous interior plus a perimeter. Only node count and the
// perimeter/interior partition are validated here; everything else is the
// supplier's responsibility. All derived fields zero-initialize.
func NewState(s *Structure, z []float64, datum float64) (*State, error) {
	if len(z) == 0 {
		return nil, fmt.Errorf("NewState: empty elevation field")
	}
	if len(z) != s.Ncell {
		return nil, fmt.Errorf("NewState: elevation field has %d nodes, grid has %d", len(z), s.Ncell)
	}
	np := 0
	for _, p := range s.Perim {
		if p {
			np++
		}
	}
	if np == 0 || np == s.Ncell {
		return nil, fmt.Errorf("NewState: boundary flags do not partition the grid (perimeter %d of %d)", np, s.Ncell)
	}
	st := &State{
		Z:     make([]float64, s.Ncell),
		Ws:    make([]float64, s.Ncell),
		Dep:   make([]float64, s.Ncell),
		Hc:    make([]float64, s.Ncell),
		Dsub:  make([]float64, s.Ncell),
		Aus:   make([]float64, s.Ncell),
		Qs:    make([]float64, s.Ncell),
		Fixed: make([]bool, s.Ncell),
	}
	copy(st.Z, z)
	copy(st.Ws, z)
	for i, zz := range z {
		st.Hc[i] = zz - datum
		st.Fixed[i] = s.Perim[i]
	}
	return st, nil
}

// SaveGob writes a snapshot of the full state.
func (st *State) SaveGob(fp string) error {
	f, err := os.Create(fp)
	if err != nil {
		return fmt.Errorf(" state.SaveGob %v", err)
	}
	if err := gob.NewEncoder(f).Encode(st); err != nil {
		return fmt.Errorf(" state.SaveGob %v", err)
	}
	return f.Close()
}

// LoadGobState restores a snapshot written by SaveGob.
func LoadGobState(fp string) (*State, error) {
	var st State
	f, err := os.Open(fp)
	if err != nil {
		return nil, err
	}
	if err := gob.NewDecoder(f).Decode(&st); err != nil {
		return nil, err
	}
	if err := f.Close(); err != nil {
		return nil, err
	}
	return &st, nil
}

// Checkandprint dumps the state fields as rasters for inspection.
func (st *State) Checkandprint(s *Structure, chkdirprfx string) {
	if s.GD == nil {
		return
	}
	z, dep, hc, dsub, aus, qs := s.GD.NullArray(-9999.), s.GD.NullArray(-9999.), s.GD.NullArray(-9999.), s.GD.NullArray(-9999.), s.GD.NullArray(-9999.), s.GD.NullArray(-9999.)
	fxd := s.GD.NullInt32(-9999)
	for i := range st.Z {
		z[i] = st.Z[i]
		dep[i] = st.Dep[i]
		hc[i] = st.Hc[i]
		dsub[i] = st.Dsub[i]
		aus[i] = st.Aus[i]
		qs[i] = st.Qs[i]
		if st.Fixed[i] {
			fxd[i] = 1
		} else {
			fxd[i] = 0
		}
	}
	writeFloats32(chkdirprfx+"state.z.bil", z)
	writeFloats32(chkdirprfx+"state.dep.bil", dep)
	writeFloats32(chkdirprfx+"state.hc.bil", hc)
	writeFloats32(chkdirprfx+"state.dsub.bil", dsub)
	writeFloats32(chkdirprfx+"state.aus.bil", aus)
	writeFloats32(chkdirprfx+"state.qs.bil", qs)
	writeInts(chkdirprfx+"state.fixed.bil", fxd)
}
