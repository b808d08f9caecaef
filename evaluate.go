package lem

import (
	"fmt"

	"github.com/gosuri/uiprogress"
	"github.com/maseology/mmio"
)

// Evaluate drives the iteration loop: Nstep calls to RunStep with progress
// reporting, periodic gob snapshots and field dumps, and derived time series
// (sea level, land area, sediment discharged to sea) written at run end.
// Pass outdirprfx="" to suppress all output.
func (ev *Evaluator) Evaluate(outdirprfx string) error {
	par, st, s := ev.Par, ev.S, ev.Strc

	tt := mmio.NewTimer()
	uiprogress.Start()
	bar := uiprogress.AddBar(par.Nstep).AppendCompleted().PrependElapsed()

	landarea, seaflux := make([]float64, par.Nstep), make([]float64, par.Nstep)
	for j := 0; j < par.Nstep; j++ {
		if err := ev.RunStep(par.Dt); err != nil {
			uiprogress.Stop()
			return fmt.Errorf("Evaluate: %w", err)
		}
		bar.Incr()

		for i, fxd := range st.Fixed {
			if fxd {
				seaflux[j] += st.Qs[i] * par.Dt
			} else {
				landarea[j] += s.Ca
			}
		}

		if len(outdirprfx) > 0 {
			if par.SaveInterval > 0 && (j+1)%par.SaveInterval == 0 {
				if err := st.SaveGob(fmt.Sprintf("%s%d.state.gob", outdirprfx, j+1)); err != nil {
					return fmt.Errorf("Evaluate: %v", err)
				}
			}
			if par.PlotInterval > 0 && (j+1)%par.PlotInterval == 0 {
				writeFloats(fmt.Sprintf("%s%d.z.bin", outdirprfx, j+1), st.Z)
			}
		}
	}
	uiprogress.Stop()

	if len(outdirprfx) > 0 {
		writeFloats(outdirprfx+"sl.bin", ev.slf.History())
		writeFloats(outdirprfx+"landarea.bin", landarea)
		writeFloats(outdirprfx+"seaflux.bin", seaflux)
		writeFloats(outdirprfx+"z.bin", st.Z)
		writeFloats(outdirprfx+"dep.bin", st.Dep)
		writeFloats(outdirprfx+"aus.bin", st.Aus)
		writeFloats(outdirprfx+"qs.bin", st.Qs)
	}

	tt.Lap(fmt.Sprintf("run complete: %s steps", mmio.Thousands(int64(par.Nstep))))
	return nil
}
