package lem

import (
	"math"

	"github.com/maseology/lem/fault"
	"github.com/maseology/lem/flex"
	"github.com/maseology/lem/fluv"
	"github.com/maseology/lem/marine"
	"github.com/maseology/lem/sealevel"
)

// step phases, strictly ordered; each reads fields the previous wrote
const (
	phaseExtension   = "extension"
	phaseLoad        = "load-update"
	phaseFlexure     = "flexure"
	phaseSeaLevel    = "sea-level-update"
	phasePartition1  = "land-sea-partition-1"
	phaseFluvial     = "fluvial-erosion"
	phaseDeposition  = "submarine-deposition"
	phasePartition2  = "land-sea-partition-2"
	phaseDiffusion   = "submarine-diffusion"
	phaseBookkeeping = "bookkeeping"
)

// Evaluator owns the grid state for the duration of a run and sequences the
// process models through one timestep. Single-threaded; the state is never
// touched concurrently while a step is in progress.
type Evaluator struct {
	Strc *Structure
	Par  *Parameter
	S    *State

	slf *sealevel.Forcing
	flt *fault.Listric
	plt *flex.Plate2D
	flv *fluv.Fluv
	mar *marine.Marine

	xr   []int     // primary -> flexure grid index mapping, validated at build
	load []float64 // pressure load on the flexure grid [Pa]
	w0   []float64 // initial deflection baseline, captured once before the loop
	wnet []float64 // current net applied deflection (w - w0) on the primary grid
}

// flexXR builds the validated index mapping from the primary grid onto the
// auxiliary flexure grid. The two are taken index-compatible by row/column
// position — an approximation, not an exact geometric correspondence — and
// any disagreement in row/column count is fatal.
func flexXR(nr1, nc1, nr2, nc2 int) ([]int, error) {
	if nr1 != nr2 || nc1 != nc2 {
		return nil, &MismatchError{nr1, nc1, nr2, nc2}
	}
	xr := make([]int, nr1*nc1)
	for r := 0; r < nr1; r++ {
		for c := 0; c < nc1; c++ {
			xr[r*nc1+c] = r*nc2 + c
		}
	}
	return xr, nil
}

// NewEvaluator validates the configuration, builds the process models and
// captures the initial deflection baseline. sl0 is the starting sea level.
func NewEvaluator(strc *Structure, par *Parameter, st *State, sl0 float64) (*Evaluator, error) {
	if err := par.Check(strc); err != nil {
		return nil, err
	}
	flt, err := fault.New(strc.Nr, strc.Nc, strc.Cw, par.ExtRate, par.FaultDip, par.FaultX, par.Zdetach)
	if err != nil {
		return nil, err
	}
	plt, err := flex.New(strc.Nr, strc.Nc, strc.Cw, par.Te)
	if err != nil {
		return nil, err
	}
	flv, err := fluv.New(strc.Nr, strc.Nc, strc.Cw, par.K, par.Mexp, par.Nexp, par.V)
	if err != nil {
		return nil, err
	}
	mar, err := marine.New(strc.Nr, strc.Nc, strc.Cw, par.Kappa, par.Wavebase)
	if err != nil {
		return nil, err
	}
	xr, err := flexXR(strc.Nr, strc.Nc, strc.Nr, strc.Nc)
	if err != nil {
		return nil, err
	}
	ev := &Evaluator{
		Strc: strc,
		Par:  par,
		S:    st,
		slf:  sealevel.New(sl0, par.SeaNoise, par.Seed),
		flt:  flt,
		plt:  plt,
		flv:  flv,
		mar:  mar,
		xr:   xr,
		load: make([]float64, strc.Ncell),
		wnet: make([]float64, strc.Ncell),
	}
	ev.updateLoad()
	ev.w0 = plt.Deflection(ev.load) // baseline: zero net effect at t=0
	return ev, nil
}

// SeaLevel returns the forcing process (read-only use by callers).
func (ev *Evaluator) SeaLevel() *sealevel.Forcing { return ev.slf }

func (ev *Evaluator) updateLoad() {
	st, par := ev.S, ev.Par
	for i := range ev.load {
		ev.load[ev.xr[i]] = par.Uw * (st.Hc[i] - st.Dsub[i])
	}
}

func (ev *Evaluator) checkFinite(step int, phase string) error {
	chk := func(nam string, a []float64) error {
		for i, v := range a {
			if math.IsNaN(v) || math.IsInf(v, 0) {
				return &InstabilityError{step, phase, nam, i}
			}
		}
		return nil
	}
	if err := chk("elevation", ev.S.Z); err != nil {
		return err
	}
	if err := chk("deflection", ev.wnet); err != nil {
		return err
	}
	return chk("sediment flux", ev.S.Qs)
}

// RunStep advances the model one timestep of dt years. Deterministic given
// the current state and the forcing seed; mutates the state in place and
// returns only failure. A non-finite field value at the end of any phase
// aborts immediately — it signals a violated physical invariant, not a
// transient condition.
func (ev *Evaluator) RunStep(dt float64) error {
	st, s := ev.S, ev.Strc
	step := st.Step + 1

	// EXTENSION: incremental subsidence from the listric fault kinematics
	for i, d := range ev.flt.Subside(dt) {
		st.Dsub[i] += d
		st.Z[i] -= d
	}
	if err := ev.checkFinite(step, phaseExtension); err != nil {
		return err
	}

	// LOAD_UPDATE: pressure from crustal thickness less subsidence
	ev.updateLoad()
	if err := ev.checkFinite(step, phaseLoad); err != nil {
		return err
	}

	// FLEXURE: full recompute; consumers only ever see w - w0
	w := ev.plt.Deflection(ev.load)
	for i := range st.Z {
		wn := w[ev.xr[i]] - ev.w0[ev.xr[i]]
		st.Z[i] -= wn - ev.wnet[i]
		ev.wnet[i] = wn
	}
	if err := ev.checkFinite(step, phaseFlexure); err != nil {
		return err
	}

	// SEA_LEVEL_UPDATE
	sl := ev.slf.Advance()

	// LAND_SEA_PARTITION_1: nodes below sea level become fixed-value sinks
	p1 := partitionSeaLevel(s, st.Z, sl)
	core := make([]bool, s.Ncell)
	for i, fxd := range p1.Fixed {
		core[i] = !fxd
	}

	// FLUVIAL_EROSION over the land partition
	zpre := make([]float64, s.Ncell) // pre-surface-process elevation, for bookkeeping
	copy(zpre, st.Z)
	zn, ws, aus, qs := ev.flv.RunStep(st.Z, core, dt)
	copy(st.Z, zn)
	copy(st.Ws, ws)
	copy(st.Aus, aus)
	copy(st.Qs, qs)
	if err := ev.checkFinite(step, phaseFluvial); err != nil {
		return err
	}

	// SUBMARINE_DEPOSITION of the node-local fluvial flux
	for i, d := range ev.mar.Deposit(st.Qs, p1.Sea, dt) {
		st.Z[i] += d
	}
	if err := ev.checkFinite(step, phaseDeposition); err != nil {
		return err
	}

	// LAND_SEA_PARTITION_2: submarine nodes return to core; only the outer
	// perimeter held fixed
	p2 := partitionPerimeter(s)

	// SUBMARINE_DIFFUSION across the whole domain
	for i, d := range ev.mar.Diffuse(st.Z, p2.Fixed, sl, dt) {
		st.Z[i] += d
	}
	if err := ev.checkFinite(step, phaseDiffusion); err != nil {
		return err
	}

	// BOOKKEEPING: deposit and crustal thickness track the surface-process
	// elevation change, core nodes only, preserving
	// z = datum + hc - (dsub + (w - w0))
	for _, i := range p2.Land {
		d := st.Z[i] - zpre[i]
		st.Dep[i] += d
		st.Hc[i] += d
	}
	copy(st.Fixed, p1.Fixed)
	st.Sl = sl
	st.Step = step
	return ev.checkFinite(step, phaseBookkeeping)
}

// Decomposition returns the residual of the elevation decomposition
// invariant at node i; near-zero after every completed step for interior
// nodes.
func (ev *Evaluator) Decomposition(i int) float64 {
	st := ev.S
	return st.Z[i] - (ev.Par.Datum + st.Hc[i] - (st.Dsub[i] + ev.wnet[i]))
}
