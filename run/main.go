package main

import (
	"fmt"
	"log"
	"math"

	"github.com/maseology/lem"
	"github.com/maseology/mmio"
)

func main() {

	const (
		outPrfx = "out/island."
		restart = "" // e.g. "out/island.500.state.gob"
		nr, nc  = 120, 120
		cw      = 200. // [m]
		relief  = 300. // initial island crest height [m]
		sl0     = 0.   // initial sea level [m]
	)

	fmt.Println("")
	tt := mmio.NewTimer()
	defer tt.Lap("\nRun complete")
	mmio.MakeDir("out")

	strc, err := lem.NewStructure(nr, nc, cw)
	if err != nil {
		log.Fatalf(" structure build error: %v", err)
	}

	par := lem.DefaultParameter()
	par.SeaNoise = .5
	par.ExtRate = .002
	par.FaultX = float64(nc) / 3. * cw

	st, err := func() (*lem.State, error) {
		if len(restart) > 0 {
			return lem.LoadGobState(restart)
		}
		// stand-in for the offline island-growth preprocessing stage: a
		// smooth dome dropping below sea level toward the perimeter
		z := make([]float64, nr*nc)
		rc, cc := float64(nr-1)/2., float64(nc-1)/2.
		rmax := math.Min(rc, cc) * cw
		for i := range z {
			r, c := float64(i/nc), float64(i%nc)
			d := math.Sqrt(((r-rc)*(r-rc)+(c-cc)*(c-cc))) * cw
			z[i] = relief*math.Cos(math.Min(d/rmax, 1.)*math.Pi/2.) - 20.
		}
		return lem.NewState(strc, z, par.Datum)
	}()
	if err != nil {
		log.Fatalf(" state build error: %v", err)
	}

	ev, err := lem.NewEvaluator(strc, par, st, sl0)
	if err != nil {
		log.Fatalf(" evaluator build error: %v", err)
	}
	if err := ev.Evaluate(outPrfx); err != nil {
		log.Fatalf(" %v", err)
	}
	st.Checkandprint(strc, outPrfx)
}
