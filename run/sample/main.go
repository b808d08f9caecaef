package main

import (
	"log"
	"math"

	"github.com/maseology/lem"
	"github.com/maseology/mmaths"
	"github.com/maseology/mmio"
)

// samples erodibility, marine diffusivity and extension rate over a Latin
// hypercube and saves each realization's final topography
func main() {

	const (
		outdir  = "mc/"
		nsmpl   = 50
		nwrkrs  = 4
		nr, nc  = 60, 60
		cw      = 200.
		relief  = 300.
		nstep   = 200
	)

	mmio.MakeDir(outdir)

	gen := func(u []float64) (*lem.Evaluator, error) {
		strc, err := lem.NewStructure(nr, nc, cw)
		if err != nil {
			return nil, err
		}
		par := lem.DefaultParameter()
		par.Nstep = nstep
		par.K = mmaths.LogLinearTransform(1e-6, 1e-4, u[0])
		par.Kappa = mmaths.LinearTransform(10., 500., u[1])
		par.ExtRate = mmaths.LinearTransform(0., .005, u[2])
		par.FaultX = float64(nc) / 3. * cw

		z := make([]float64, nr*nc)
		rc, cc := float64(nr-1)/2., float64(nc-1)/2.
		rmax := math.Min(rc, cc) * cw
		for i := range z {
			r, c := float64(i/nc), float64(i%nc)
			d := math.Sqrt((r-rc)*(r-rc)+(c-cc)*(c-cc)) * cw
			z[i] = relief*math.Cos(math.Min(d/rmax, 1.)*math.Pi/2.) - 20.
		}
		st, err := lem.NewState(strc, z, par.Datum)
		if err != nil {
			return nil, err
		}
		return lem.NewEvaluator(strc, par, st, 0.)
	}

	lem.GenerateSamples(gen, nsmpl, 3, nwrkrs, outdir)
	log.Println("sampling complete")
}
