package lem

import "fmt"

// Parameter is the immutable run configuration, constructed once and passed
// to the Evaluator. All recognized options are scalars.
type Parameter struct {
	K            float64 // fluvial erodibility coefficient
	Mexp, Nexp   float64 // drainage area and slope exponents
	V            float64 // effective settling velocity (deposition parameter) [m/yr]
	SeaNoise     float64 // sea-level random-walk step scale [m]
	Wavebase     float64 // depth scale of submarine transport decay [m]
	Kappa        float64 // marine diffusivity [m²/yr]
	ExtRate      float64 // horizontal extension rate [m/yr]
	FaultDip     float64 // surface dip of the listric fault [deg]
	FaultX       float64 // fault trace position along the column axis [m]
	Zdetach      float64 // detachment (decollement) depth [m]
	Te           float64 // effective elastic thickness [m]
	Datum        float64 // crustal datum elevation [m]
	Uw           float64 // unit weight of crustal load [N/m³]
	Dt           float64 // timestep [yr]
	Nstep        int     // number of iterations
	Seed         int64   // RNG seed (sea-level forcing)
	PlotInterval int     // steps between field dumps (0 = never)
	SaveInterval int     // steps between gob snapshots (0 = never)
}

// DefaultParameter returns a workable parameter set for a km-scale island.
func DefaultParameter() *Parameter {
	return &Parameter{
		K:            1e-5,
		Mexp:         .5,
		Nexp:         1.,
		V:            1.,
		SeaNoise:     0.,
		Wavebase:     50.,
		Kappa:        100.,
		ExtRate:      .001,
		FaultDip:     60.,
		FaultX:       0.,
		Zdetach:      10000.,
		Te:           5000.,
		Datum:        0.,
		Uw:           26500.,
		Dt:           100.,
		Nstep:        1000,
		Seed:         1,
		PlotInterval: 100,
		SaveInterval: 500,
	}
}

// Check validates the configuration against the grid it will run over.
func (p *Parameter) Check(s *Structure) error {
	bad := func(nam string, v float64) error {
		return &ConfigError{nam, v}
	}
	switch {
	case p.K < 0.:
		return bad("erodibility K", p.K)
	case p.V < 0.:
		return bad("deposition parameter V", p.V)
	case p.SeaNoise < 0.:
		return bad("sea-level noise scale", p.SeaNoise)
	case p.Wavebase <= 0.:
		return bad("wave-base depth", p.Wavebase)
	case p.Kappa < 0.:
		return bad("marine diffusivity", p.Kappa)
	case p.FaultDip <= 0. || p.FaultDip >= 90.:
		return bad("fault dip", p.FaultDip)
	case p.Zdetach <= 0.:
		return bad("detachment depth", p.Zdetach)
	case p.Te <= 0.:
		return bad("elastic thickness", p.Te)
	case p.Uw < 0.: // zero disables the isostatic response
		return bad("unit weight", p.Uw)
	case p.Dt <= 0.:
		return bad("timestep", p.Dt)
	case p.Nstep <= 0:
		return bad("iteration count", float64(p.Nstep))
	}
	if s != nil {
		if s.Cw <= 0. {
			return &ConfigError{"cell width", s.Cw}
		}
		// the explicit submarine scheme does not self-enforce its stability
		// bound; flag the obvious case here rather than mid-run
		if p.Kappa > 0. {
			if dtx := s.Cw * s.Cw / 4. / p.Kappa; p.Dt > dtx {
				fmt.Printf("  WARNING dt=%g exceeds marine diffusion stability bound %g\n", p.Dt, dtx)
			}
		}
	}
	return nil
}
